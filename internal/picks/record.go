package picks

import (
	"math"
	"strconv"
	"strings"
)

// Metadata field names holding product records, in priority order.
var productFields = []string{"products", "picks", "items"}

// Product is the strict form of a product record.
// Rating and Reviews are NaN when absent or unparsable.
type Product struct {
	Title       string
	URL         string
	SearchQuery string
	Rating      float64
	Reviews     float64
}

// ResolveProducts returns the first array-valued field among products,
// picks and items. Returns nil when meta is nil or no field holds an array.
func ResolveProducts(meta map[string]any) []any {
	if meta == nil {
		return nil
	}
	for _, field := range productFields {
		if list, ok := meta[field].([]any); ok {
			return list
		}
	}
	return nil
}

// ParseProducts coerces raw records into Products.
// Entries that are not mappings or lack a non-blank string title are dropped.
func ParseProducts(raw []any) []Product {
	products := make([]Product, 0, len(raw))
	for _, entry := range raw {
		rec, ok := asMap(entry)
		if !ok {
			continue
		}
		if p, ok := parseProduct(rec); ok {
			products = append(products, p)
		}
	}
	return products
}

// parseProduct builds a Product from one decoded record.
func parseProduct(rec map[string]any) (Product, bool) {
	title, _ := rec["title"].(string)
	if strings.TrimSpace(title) == "" {
		return Product{}, false
	}

	// review_count wins whenever the key is present, even if null.
	reviewsRaw, ok := rec["review_count"]
	if !ok {
		reviewsRaw = rec["reviews_count"]
	}

	return Product{
		Title:       strings.TrimSpace(title),
		URL:         trimmedString(rec["url"]),
		SearchQuery: trimmedString(rec["amazon_search_query"]),
		Rating:      toNumber(rec["rating"]),
		Reviews:     toNumber(reviewsRaw),
	}, true
}

// asMap accepts the mapping shapes produced by YAML and JSON decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = val
		}
		return out, true
	}
	return nil, false
}

func trimmedString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// toNumber coerces a rating or review count.
// Strings lose thousands separators and any character outside digits and
// the decimal point before parsing. Other types yield NaN.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint64:
		return float64(n)
	case uint32:
		return float64(n)
	case uint:
		return float64(n)
	case string:
		return parseNumericString(n)
	}
	return math.NaN()
}

func parseNumericString(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// usable reports whether v is a finite number strictly greater than zero.
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
