package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"size:140;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Tag         string          `gorm:"size:80"`
	Category    string          `gorm:"size:80;index"`
	Stock       int             `gorm:"not null;default:0"`
	Images      string          `gorm:"type:jsonb;default:'[]'"` // string array (JSON)
	Active      bool            `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ImageList: jsonb kolonunu normalize edilmiş string listesine çözer.
// Bozuk veri sessizce boş listeye düşer.
func (p *Product) ImageList() []string {
	var raw []any
	if err := json.Unmarshal([]byte(p.Images), &raw); err != nil {
		return []string{}
	}
	return NormalizeImageList(raw)
}

func (p *Product) SetImageList(images []string) {
	b, err := json.Marshal(NormalizeStrings(images))
	if err != nil {
		p.Images = "[]"
		return
	}
	p.Images = string(b)
}

// NormalizeImageList: string olmayan elemanları atar, kalanları trimler,
// boşları eler.
func NormalizeImageList(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func NormalizeStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
