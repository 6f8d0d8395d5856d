package revaluation

import (
	"strings"
	"sync"
	"unicode"
)

var snakeCache, studlyCache sync.Map

// ToSnake convert name to snake case, e.g. "DisplayPrice" -> "display_price",
// "ProductID" -> "product_id"
func ToSnake(name string) string {
	if name == "" {
		return ""
	}
	if v, ok := snakeCache.Load(name); ok {
		return v.(string)
	}

	var (
		runes = []rune(name)
		b     strings.Builder
	)
	b.Grow(len(name) + 4)
	for i, c := range runes {
		if unicode.IsUpper(c) && i > 0 && runes[i-1] != '_' {
			prev := runes[i-1]
			// "aB" or "1B" starts a word, "ABc" starts "Bc"
			if !unicode.IsUpper(prev) || (i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(c))
	}

	s := b.String()
	snakeCache.Store(name, s)
	return s
}

// ToStudly separates string on `_`, `-` and spaces and capitalizes each part,
// e.g. "order_item-data" -> "OrderItemData"
func ToStudly(s string) string {
	if s == "" {
		return ""
	}
	if v, ok := studlyCache.Load(s); ok {
		return v.(string)
	}
	var (
		b       strings.Builder
		toUpper = true
	)
	for _, c := range s {
		switch {
		case c == '_' || c == '-' || c == ' ':
			toUpper = true
			continue
		case toUpper:
			toUpper = false
			c = unicode.ToUpper(c)
		}
		b.WriteRune(c)
	}
	studly := b.String()
	studlyCache.Store(s, studly)
	return studly
}
