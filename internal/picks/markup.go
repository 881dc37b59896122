package picks

import "strings"

// htmlEscaper covers the five characters that can break out of text content.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes s for use as element text.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// escapeAttr escapes s for use inside a double-quoted attribute value.
func escapeAttr(s string) string {
	return htmlEscaper.Replace(s)
}

// Attributes carried by every outbound pick link.
const (
	LinkRel    = "sponsored nofollow noopener"
	LinkTarget = "_blank"
)

// openWrapper starts a pick: pick, pick-row and pick-body stay open.
func openWrapper(initials string) string {
	return `<div class="pick">
  <div class="pick-row">
    <div class="pick-tile" aria-hidden="true">` + escapeHTML(initials) + `</div>
    <div class="pick-body">`
}

// ctaMarkup renders the call-to-action row and closes pick-body and pick-row.
// Without an href the row is rendered empty.
func ctaMarkup(cta CTA) string {
	var b strings.Builder
	if cta.Href == "" {
		b.WriteString(`      <div class="pick-cta-row"></div>`)
	} else {
		b.WriteString(`      <div class="pick-cta-row">
        <a class="pick-cta" href="` + escapeAttr(cta.Href) + `" rel="` + LinkRel + `" target="` + LinkTarget + `">` + escapeHTML(cta.Label) + `</a>
      </div>`)
	}
	b.WriteString(`
    </div>
  </div>`)
	return strings.TrimSpace(b.String())
}

// closeWrapper closes the pick element opened by openWrapper.
const closeWrapper = `</div>`
