package models

type Payment struct {
	ID            ID     `gorm:"primaryKey;size:64" json:"id"`
	SalonID       ID     `gorm:"size:64;index" json:"salonId"`
	BookingID     ID     `gorm:"size:64;index" json:"bookingId"`
	UserID        ID     `gorm:"size:64" json:"userId"`
	Amount        Amount `json:"amount"`
	Status        string `gorm:"size:20" json:"status"`
	PaymentMethod string `gorm:"size:30" json:"paymentMethod"`
}
