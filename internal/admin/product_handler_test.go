package admin

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	assert.Equal(t, "kısa", truncate("kısa", maxTitleLen))
	assert.Equal(t, "şef", truncate("şeftali", 3))

	long := truncate("ü"+strings.Repeat("ğ", 200), maxTitleLen)
	assert.True(t, utf8.ValidString(long))
	assert.Equal(t, maxTitleLen, utf8.RuneCountInString(long))
}

func TestClampStock(t *testing.T) {
	assert.Equal(t, 0, clampStock(-10))
	assert.Equal(t, 500, clampStock(500))
	assert.Equal(t, maxStock, clampStock(maxStock+1))
}
