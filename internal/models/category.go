package models

type Category struct {
	ID      ID     `gorm:"primaryKey;size:64" json:"id"`
	SalonID ID     `gorm:"size:64;index" json:"salonId"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Image   string `gorm:"size:255" json:"image"`
}
