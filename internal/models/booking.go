package models

const (
	StatusPending   = "PENDING"
	StatusSuccess   = "SUCCESS"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusFailed    = "FAILED"
)

type Booking struct {
	ID         ID        `gorm:"primaryKey;size:64" json:"id"`
	SalonID    ID        `gorm:"size:64;index" json:"salonId"`
	CustomerID ID        `gorm:"size:64;index" json:"customerId"`
	StaffID    ID        `gorm:"size:64;index" json:"staffId"`
	ServiceIDs []ID      `gorm:"serializer:json" json:"serviceIds"`
	StartTime  Timestamp `gorm:"type:timestamptz" json:"startTime"`
	Status     string    `gorm:"size:20" json:"status"`
	TotalPrice Amount    `json:"totalPrice"`
}
