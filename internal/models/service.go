package models

// Service is a salon offering. Name and Image hold pipe-delimited step
// sequences ("Cut|Wash|Style", "a.jpg|b.jpg"); step i of Name pairs with
// segment i of Image.
type Service struct {
	ID          ID     `gorm:"primaryKey;size:64" json:"id"`
	SalonID     ID     `gorm:"size:64;index" json:"salonId"`
	CategoryID  ID     `gorm:"size:64;index" json:"categoryId"`
	Name        string `gorm:"size:500;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Image       string `gorm:"size:1000" json:"image"`
	Price       Amount `json:"price"`
	Duration    int    `json:"duration"`
}
