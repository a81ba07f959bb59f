package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(productID uint, title string, price string, qty int) Line {
	d, err := decimal.NewFromString(price)
	if err != nil {
		panic(err)
	}
	return Line{ProductID: productID, Title: title, Img: "/img.jpg", UnitPrice: d, Qty: qty}
}

func TestAddMergesSameProduct(t *testing.T) {
	var c Cart
	c.Add(line(1, "Defne Sabunu", "189.90", 1))
	c.Add(line(1, "Defne Sabunu", "189.90", 1))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Qty)
}

func TestAddRefreshesCachedFields(t *testing.T) {
	var c Cart
	c.Add(line(1, "Eski Başlık", "100", 1))
	c.Add(line(1, "Yeni Başlık", "120", 1))

	require.Len(t, c.Items, 1)
	assert.Equal(t, "Yeni Başlık", c.Items[0].Title)
	assert.True(t, c.Items[0].UnitPrice.Equal(decimal.NewFromInt(120)))
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(line(3, "Üçüncü değil birinci", "10", 1))
	c.Add(line(1, "İkinci", "10", 1))
	c.Add(line(3, "Üçüncü değil birinci", "10", 1))

	require.Len(t, c.Items, 2)
	assert.Equal(t, uint(3), c.Items[0].ProductID)
	assert.Equal(t, uint(1), c.Items[1].ProductID)
}

func TestAddClampsMergedQty(t *testing.T) {
	var c Cart
	c.Add(line(1, "Sabun", "10", 60))
	c.Add(line(1, "Sabun", "10", 60))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 99, c.Items[0].Qty)
}

func TestSetQtyClamps(t *testing.T) {
	var c Cart
	c.Add(line(1, "Sabun", "10", 1))

	c.SetQty(1, 150)
	assert.Equal(t, 99, c.Items[0].Qty)

	c.SetQty(1, -5)
	assert.Equal(t, 1, c.Items[0].Qty)
}

func TestSetQtyMissingLineIsNoop(t *testing.T) {
	var c Cart
	c.Add(line(1, "Sabun", "10", 3))

	c.SetQty(42, 5)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Qty)
}

func TestRemoveAndClear(t *testing.T) {
	var c Cart
	c.Add(line(1, "Sabun", "10", 1))
	c.Add(line(2, "Krem", "20", 1))

	c.Remove(1)
	require.Len(t, c.Items, 1)
	assert.Equal(t, uint(2), c.Items[0].ProductID)

	c.Clear()
	assert.Empty(t, c.Items)
}

func TestHydrateDropsGarbage(t *testing.T) {
	c := Hydrate([]Line{
		line(1, "Sabun", "10", 150),
		{ProductID: 0, Title: "Ürünsüz"},
		{ProductID: 2, Title: ""},
	})

	require.Len(t, c.Items, 1)
	assert.Equal(t, uint(1), c.Items[0].ProductID)
	assert.Equal(t, 99, c.Items[0].Qty)
}
