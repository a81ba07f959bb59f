package cart

import "github.com/shopspring/decimal"

// Line: sepet satırı. Ürün bilgisi (başlık, görsel, fiyat) sepete
// eklendiği andaki haliyle cache'lenir.
type Line struct {
	ProductID uint            `json:"product_id"`
	Title     string          `json:"title"`
	Img       string          `json:"img"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Qty       int             `json:"qty"`
}

// Cart: product id'ye göre tekil, ekleme sırasını koruyan satır listesi.
type Cart struct {
	Items []Line
}

func clampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > 99 {
		return 99
	}
	return qty
}

// Hydrate: kalıcı depodan gelen satırları ayıklar; ürünsüz veya başlıksız
// satırlar atılır, qty clamp'lenir.
func Hydrate(items []Line) Cart {
	c := Cart{Items: make([]Line, 0, len(items))}
	for _, x := range items {
		if x.ProductID == 0 || x.Title == "" {
			continue
		}
		x.Qty = clampQty(x.Qty)
		c.Items = append(c.Items, x)
	}
	return c
}

// Add: aynı ürün zaten sepetteyse miktarları toplar (clamp'li) ve
// cache'lenmiş başlık/görsel/fiyatı tazeler; yoksa sona ekler.
func (c *Cart) Add(line Line) {
	qty := clampQty(line.Qty)
	for i := range c.Items {
		if c.Items[i].ProductID == line.ProductID {
			c.Items[i].Qty = clampQty(c.Items[i].Qty + qty)
			c.Items[i].Title = line.Title
			c.Items[i].Img = line.Img
			c.Items[i].UnitPrice = line.UnitPrice
			return
		}
	}
	line.Qty = qty
	c.Items = append(c.Items, line)
}

// SetQty: [1,99] aralığına clamp'ler. Satır yoksa sessizce no-op;
// sıfır göndermek satırı silmez, silme için Remove kullanılır.
func (c *Cart) SetQty(productID uint, qty int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty = clampQty(qty)
			return
		}
	}
}

func (c *Cart) Remove(productID uint) {
	out := c.Items[:0]
	for _, x := range c.Items {
		if x.ProductID != productID {
			out = append(out, x)
		}
	}
	c.Items = out
}

func (c *Cart) Clear() {
	c.Items = nil
}
