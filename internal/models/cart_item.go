package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem: anonim sepet satırı. Sepet cart_id cookie'si ile taşınır,
// sipariş tamamlanana kadar kullanıcıya bağlanmaz.
type CartItem struct {
	ID        uint            `gorm:"primaryKey"`
	CartID    string          `gorm:"type:uuid;index:idx_cart_product,unique;not null"`
	ProductID uint            `gorm:"index:idx_cart_product,unique;not null"`
	Title     string          `gorm:"size:140;not null"`
	Img       string          `gorm:"size:512"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Qty       int             `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
