package mdpicks

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-mdpicks/internal/picks"
)

// Extension injects pick blocks into documents parsed by a goldmark
// instance. Metadata is taken from WithMetadata, or from the document's own
// metadata when the parser context carries none.
var Extension goldmark.Extender = &picks.Extension{}

// WithMetadata attaches frontmatter metadata to a goldmark parser context.
func WithMetadata(pc parser.Context, meta map[string]any) {
	picks.WithMetadata(pc, meta)
}

// PicksFrom returns the picks injected while parsing with pc.
func PicksFrom(pc parser.Context) []Pick {
	return toPicks(picks.PicksFrom(pc))
}
