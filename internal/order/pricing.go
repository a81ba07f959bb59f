package order

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Kargo politikası: ara toplam eşiği geçerse kargo bedava, geçmezse sabit ücret.
var (
	FreeShippingThreshold = decimal.NewFromInt(1000)
	ShippingFee           = decimal.NewFromInt(49)
)

const (
	MinQty = 1
	MaxQty = 99

	maxTitleLen = 140
	maxNoteLen  = 500
)

// IncomingItem: checkout isteğindeki sepet satırı. Alan adları client
// tarafındaki sepet state'i ile aynı.
type IncomingItem struct {
	ProductID uint            `json:"productId"`
	Title     string          `json:"title"`
	Img       string          `json:"img"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Qty       int             `json:"qty"`
}

type PricedItem struct {
	ProductID uint
	Title     string
	Img       string
	UnitPrice decimal.Decimal
	Qty       int
	LineTotal decimal.Decimal
}

func ClampQty(n int) int {
	if n < MinQty {
		return MinQty
	}
	if n > MaxQty {
		return MaxQty
	}
	return n
}

// ClampMoney: negatif tutarları sıfırlar, kuruşa yuvarlar.
func ClampMoney(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}

// PriceItems: ham satırları temizler ve fiyatlandırır. Başlıksız, ürünsüz
// veya sıfır fiyatlı satırlar elenir; qty ve fiyat clamp'lenir.
func PriceItems(raw []IncomingItem) []PricedItem {
	items := make([]PricedItem, 0, len(raw))
	for _, x := range raw {
		title := strings.TrimSpace(x.Title)
		if title == "" || x.ProductID == 0 {
			continue
		}
		title = truncateRunes(title, maxTitleLen)

		qty := ClampQty(x.Qty)
		unitPrice := ClampMoney(x.UnitPrice)
		if !unitPrice.IsPositive() {
			continue
		}

		items = append(items, PricedItem{
			ProductID: x.ProductID,
			Title:     title,
			Img:       strings.TrimSpace(x.Img),
			UnitPrice: unitPrice,
			Qty:       qty,
			LineTotal: ClampMoney(unitPrice.Mul(decimal.NewFromInt(int64(qty)))),
		})
	}
	return items
}

// truncateRunes: karakter sayısına göre keser. Byte bazlı kesme Türkçe
// karakterleri ortadan bölüp geçersiz UTF-8 üretebilir.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// ShippingFor: subtotal >= eşik ise 0, değilse sabit ücret.
func ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	return ShippingFee
}

// Totals: subtotal = Σ line_total, total = subtotal + kargo.
func Totals(items []PricedItem) (subtotal, shipping, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal)
	}
	subtotal = ClampMoney(subtotal)
	shipping = ShippingFor(subtotal)
	total = ClampMoney(subtotal.Add(shipping))
	return subtotal, shipping, total
}
