package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Filter selects audit entries of one salon. Zero fields are ignored.
type Filter struct {
	SalonID string
	Action  string
	Entity  string
	From    time.Time
	To      time.Time

	Page  int
	Limit int
}

// Normalize clamps paging to sane values.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxPageLimit {
		f.Limit = DefaultPageLimit
	}
	return f
}

// Store reads back what GormRecorder wrote.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalize()

	q := s.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("salon_id = ?", f.SalonID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
