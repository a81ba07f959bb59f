package order

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTotals(t *testing.T) {
	cases := []struct {
		name     string
		items    []IncomingItem
		subtotal string
		shipping string
		total    string
	}{
		{
			name: "eşik üstü kargo bedava",
			items: []IncomingItem{
				{ProductID: 1, Title: "Defne Sabunu", UnitPrice: dec("600"), Qty: 1},
				{ProductID: 2, Title: "Lavanta Yağı", UnitPrice: dec("450"), Qty: 1},
			},
			subtotal: "1050",
			shipping: "0",
			total:    "1050",
		},
		{
			name: "eşik altı sabit kargo",
			items: []IncomingItem{
				{ProductID: 2, Title: "Lavanta Yağı", UnitPrice: dec("450"), Qty: 1},
			},
			subtotal: "450",
			shipping: "49",
			total:    "499",
		},
		{
			name: "tam eşikte kargo bedava",
			items: []IncomingItem{
				{ProductID: 3, Title: "Set", UnitPrice: dec("500"), Qty: 2},
			},
			subtotal: "1000",
			shipping: "0",
			total:    "1000",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			priced := PriceItems(tc.items)
			require.Len(t, priced, len(tc.items))

			subtotal, shipping, total := Totals(priced)
			assert.True(t, subtotal.Equal(dec(tc.subtotal)), "subtotal: %s", subtotal)
			assert.True(t, shipping.Equal(dec(tc.shipping)), "shipping: %s", shipping)
			assert.True(t, total.Equal(dec(tc.total)), "total: %s", total)
		})
	}
}

func TestPriceItemsFiltersGarbage(t *testing.T) {
	priced := PriceItems([]IncomingItem{
		{ProductID: 1, Title: "Sabun", UnitPrice: dec("100"), Qty: 2},
		{ProductID: 0, Title: "Ürünsüz", UnitPrice: dec("100"), Qty: 1},
		{ProductID: 2, Title: "", UnitPrice: dec("100"), Qty: 1},
		{ProductID: 3, Title: "Bedava", UnitPrice: dec("0"), Qty: 1},
		{ProductID: 4, Title: "Negatif", UnitPrice: dec("-5"), Qty: 1},
	})

	require.Len(t, priced, 1)
	assert.Equal(t, uint(1), priced[0].ProductID)
	assert.True(t, priced[0].LineTotal.Equal(dec("200")))
}

func TestPriceItemsClampsQty(t *testing.T) {
	priced := PriceItems([]IncomingItem{
		{ProductID: 1, Title: "Sabun", UnitPrice: dec("10"), Qty: 150},
		{ProductID: 2, Title: "Krem", UnitPrice: dec("10"), Qty: -5},
	})

	require.Len(t, priced, 2)
	assert.Equal(t, 99, priced[0].Qty)
	assert.Equal(t, 1, priced[1].Qty)
}

func TestPriceItemsTruncatesLongTitle(t *testing.T) {
	priced := PriceItems([]IncomingItem{
		{ProductID: 1, Title: strings.Repeat("a", 300), UnitPrice: dec("10"), Qty: 1},
	})

	require.Len(t, priced, 1)
	assert.Len(t, priced[0].Title, 140)
}

// Türkçe karakterli uzun başlıklar karakter sınırında kesilmeli; byte
// bazlı kesme karakteri ortadan bölüp geçersiz UTF-8 üretirdi.
func TestPriceItemsTruncatesMultiByteTitle(t *testing.T) {
	priced := PriceItems([]IncomingItem{
		{ProductID: 1, Title: "a" + strings.Repeat("ş", 200), UnitPrice: dec("10"), Qty: 1},
	})

	require.Len(t, priced, 1)
	assert.True(t, utf8.ValidString(priced[0].Title))
	assert.Equal(t, 140, utf8.RuneCountInString(priced[0].Title))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "kısa", truncateRunes("kısa", 140))
	assert.Equal(t, "şef", truncateRunes("şeftali", 3))
	assert.True(t, utf8.ValidString(truncateRunes(strings.Repeat("ğ", 600), 500)))
}

func TestClampMoney(t *testing.T) {
	assert.True(t, ClampMoney(dec("-3")).IsZero())
	assert.True(t, ClampMoney(dec("10.999")).Equal(dec("11")))
	assert.True(t, ClampMoney(dec("10.004")).Equal(dec("10")))
}

func TestClampQty(t *testing.T) {
	assert.Equal(t, 1, ClampQty(0))
	assert.Equal(t, 1, ClampQty(-5))
	assert.Equal(t, 42, ClampQty(42))
	assert.Equal(t, 99, ClampQty(150))
}
