package mdpicks

import "github.com/alnah/go-mdpicks/internal/picks"

// Input contains conversion parameters.
type Input struct {
	Markdown string         // Markdown content, optionally with frontmatter (required)
	Metadata map[string]any // replaces decoded frontmatter when non-nil
	CSS      string         // extra CSS appended after the style (optional)
	Fragment bool           // return body HTML only, without document or CSS
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML     []byte
	Title    string         // document title, empty when the metadata has none
	Picks    []Pick         // injected pick blocks, in document order
	Metadata map[string]any // metadata that drove the conversion
}

// Pick summarizes one injected pick block.
type Pick struct {
	Title      string // heading text
	Href       string // call-to-action target, empty when there is none
	Label      string // call-to-action text
	Host       string // display host of Href, e.g. "example.com"
	Rated      bool
	RatingText string // e.g. "★★★★☆ 4.6 (12,418 reviews)"; empty when not rated
}

// toPicks converts internal pick summaries to the public type.
func toPicks(in []picks.Pick) []Pick {
	if len(in) == 0 {
		return nil
	}
	out := make([]Pick, len(in))
	for i, p := range in {
		out[i] = Pick(p)
	}
	return out
}

// metadataTitle returns meta["title"] when it is a string.
func metadataTitle(meta map[string]any) string {
	title, _ := meta["title"].(string)
	return title
}
