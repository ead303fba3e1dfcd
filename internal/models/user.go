package models

const (
	RoleUser  = "USER"
	RoleStaff = "STAFF"
	RoleOwner = "OWNER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID       ID      `gorm:"primaryKey;size:64" json:"id"`
	SalonID  ID      `gorm:"size:64;index" json:"salonId"`
	FullName string  `gorm:"size:150" json:"fullName"`
	Email    string  `gorm:"size:150" json:"email"`
	Phone    string  `gorm:"size:20" json:"phone"`
	Role     string  `gorm:"size:20;default:'USER'" json:"role"`
	Rating   *Amount `json:"rating"`
}
