package picks

import (
	"net/url"
	"strings"
)

// Call-to-action labels and the marketplace used for search fallbacks.
const (
	LabelCheckPrice = "Check price →"
	LabelSearch     = "Search on Amazon →"

	MarketplaceHost = "amazon.co.uk"
	searchURLPrefix = "https://www.amazon.co.uk/s?k="
)

// CTA is the call-to-action target for one pick.
// An empty Href means no link can be offered.
type CTA struct {
	Href  string
	Label string
	Host  string
}

// BuildCTA resolves where the pick links to.
// A product URL wins; otherwise a marketplace search is built from the
// search query, the product title, then fallbackTitle.
func BuildCTA(p Product, fallbackTitle string) CTA {
	if link := strings.TrimSpace(p.URL); link != "" {
		return CTA{Href: link, Label: LabelCheckPrice, Host: hostname(link)}
	}

	cta := CTA{Label: LabelSearch, Host: MarketplaceHost}
	if query := searchQuery(p, fallbackTitle); query != "" {
		cta.Href = searchURLPrefix + encodeQueryComponent(query)
	}
	return cta
}

func searchQuery(p Product, fallbackTitle string) string {
	for _, candidate := range []string{p.SearchQuery, p.Title, fallbackTitle} {
		if q := strings.TrimSpace(candidate); q != "" {
			return q
		}
	}
	return ""
}

// encodeQueryComponent percent-encodes s for a query value, spaces as %20.
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// hostname returns the lowercased host of an absolute URL without a
// leading "www.". Returns "" when link is not an absolute URL.
func hostname(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
