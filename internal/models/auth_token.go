package models

import "time"

// AuthToken: "<id>|<secret>" formatındaki oturum token'ının sunucu tarafı kaydı.
// Secret düz halde tutulmaz, sadece bcrypt hash'i saklanır.
type AuthToken struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	UserID    string `gorm:"type:uuid;index;not null"`
	User      User
	Hash      string    `gorm:"size:255;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (t *AuthToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
