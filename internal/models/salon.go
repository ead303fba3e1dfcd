package models

type Salon struct {
	ID      ID       `gorm:"primaryKey;size:64" json:"id"`
	Name    string   `gorm:"size:150;not null" json:"name"`
	Address string   `gorm:"size:255" json:"address"`
	Phone   string   `gorm:"size:20" json:"phone"`
	Images  []string `gorm:"serializer:json" json:"images"`
	OwnerID ID       `gorm:"size:64" json:"ownerId"`
}
