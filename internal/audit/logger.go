package audit

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

// Recorder persists one audit event.
type Recorder interface {
	Record(ev Event) error
}

// GormRecorder writes events to the audit_logs table.
type GormRecorder struct {
	db *gorm.DB
}

func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) Record(ev Event) error {
	row := models.AuditLog{
		SalonID:  ev.SalonID,
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		Metadata: encodeMetadata(ev.Metadata),
	}

	return r.db.Create(&row).Error
}

// LogRecorder writes events to the service log. Used when no database
// is configured.
type LogRecorder struct {
	log logrus.FieldLogger
}

func NewLogRecorder(log logrus.FieldLogger) *LogRecorder {
	return &LogRecorder{log: log}
}

func (r *LogRecorder) Record(ev Event) error {
	r.log.WithFields(logrus.Fields{
		"salon_id": ev.SalonID,
		"user_id":  ev.UserID,
		"action":   ev.Action,
		"entity":   ev.Entity,
		"metadata": encodeMetadata(ev.Metadata),
	}).Info("audit")
	return nil
}

func encodeMetadata(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}
