package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusHazirlaniyor OrderStatus = "HAZIRLANIYOR"
	StatusKargoda      OrderStatus = "KARGODA"
	StatusTamamlandi   OrderStatus = "TAMAMLANDI"
	StatusIptalEdildi  OrderStatus = "IPTAL_EDILDI"
	StatusIadeEdildi   OrderStatus = "IADE_EDILDI"
)

var AllOrderStatuses = []OrderStatus{
	StatusHazirlaniyor,
	StatusKargoda,
	StatusTamamlandi,
	StatusIptalEdildi,
	StatusIadeEdildi,
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Order struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	UserID      string `gorm:"type:uuid;index;not null"`
	User        User
	Status      OrderStatus     `gorm:"size:20;not null;default:HAZIRLANIYOR;index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Note        string          `gorm:"size:500"`
	Meta        string          `gorm:"type:jsonb;default:'null'"` // kargo ücreti + adres snapshot'ı (JSON)
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem: sipariş anındaki ürün bilgisinin denormalize kopyası.
// Sipariş oluştuktan sonra değişmez.
type OrderItem struct {
	ID        string          `gorm:"type:uuid;primaryKey"`
	OrderID   string          `gorm:"type:uuid;index;not null"`
	ProductID uint            `gorm:"not null"`
	Title     string          `gorm:"size:140;not null"`
	ImageURL  string          `gorm:"size:512"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	LineTotal decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time
}

// AddressSnapshot: sipariş anındaki teslimat adresi. Kullanıcı sonradan
// adresini değiştirse bile siparişteki kopya sabit kalır.
type AddressSnapshot struct {
	Phone        string `json:"phone"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	District     string `json:"district"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
}

type OrderMeta struct {
	Shipping decimal.Decimal `json:"shipping"`
	Address  AddressSnapshot `json:"address"`
}

// SnapshotAddress sipariş oluşturulurken oturumdaki kullanıcının adresini
// donmuş kopyaya çevirir.
func SnapshotAddress(u PublicUser) AddressSnapshot {
	return AddressSnapshot{
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

func (o *Order) SetMeta(meta OrderMeta) error {
	b, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	o.Meta = string(b)
	return nil
}

func (o *Order) MetaValue() (OrderMeta, error) {
	var meta OrderMeta
	if o.Meta == "" || o.Meta == "null" {
		return meta, nil
	}
	err := json.Unmarshal([]byte(o.Meta), &meta)
	return meta, err
}
