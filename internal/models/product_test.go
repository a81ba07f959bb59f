package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageListNormalization(t *testing.T) {
	p := Product{Images: `["/a.jpg", "  /b.jpg  ", "", 42, null, "/c.jpg"]`}
	assert.Equal(t, []string{"/a.jpg", "/b.jpg", "/c.jpg"}, p.ImageList())
}

func TestImageListBrokenJSON(t *testing.T) {
	for _, raw := range []string{"", "null", "bozuk", `{"a":1}`} {
		p := Product{Images: raw}
		assert.Empty(t, p.ImageList(), "raw=%q", raw)
	}
}

func TestSetImageList(t *testing.T) {
	var p Product
	p.SetImageList([]string{" /a.jpg ", "", "/b.jpg"})
	assert.JSONEq(t, `["/a.jpg","/b.jpg"]`, p.Images)

	p.SetImageList(nil)
	assert.JSONEq(t, `[]`, p.Images)
}
