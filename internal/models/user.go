package models

import "time"

type UserRole string

const (
	RoleOwner UserRole = "OWNER"
	RoleUser  UserRole = "USER"
)

type User struct {
	ID           string   `gorm:"type:uuid;primaryKey"`
	Username     string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null;default:USER"`
	Verified     bool     `gorm:"not null;default:false"`

	// Adres / iletişim alanları (profil tamamlanana kadar boş kalabilir)
	Phone        string `gorm:"size:30"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	AddressLine1 string `gorm:"size:255"`
	AddressLine2 string `gorm:"size:255"`
	City         string `gorm:"size:100"`
	District     string `gorm:"size:100"`
	PostalCode   string `gorm:"size:20"`
	Country      string `gorm:"size:100;default:TR"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser: API'ye dönen profil alanları (hash asla dışarı çıkmaz)
type PublicUser struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	Role         UserRole `json:"role"`
	Phone        string   `json:"phone"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	AddressLine1 string   `json:"address_line1"`
	AddressLine2 string   `json:"address_line2"`
	City         string   `json:"city"`
	District     string   `json:"district"`
	PostalCode   string   `json:"postal_code"`
	Country      string   `json:"country"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		Role:         u.Role,
		Phone:        u.Phone,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		AddressLine1: u.AddressLine1,
		AddressLine2: u.AddressLine2,
		City:         u.City,
		District:     u.District,
		PostalCode:   u.PostalCode,
		Country:      u.Country,
	}
}
