package picks

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// pickHeadingLevel is the heading depth that names a product.
const pickHeadingLevel = 3

var (
	metadataKey = parser.NewContextKey()
	picksKey    = parser.NewContextKey()
)

// Pick summarizes one injected block, in document order.
type Pick struct {
	Title      string // heading text as written
	Href       string
	Label      string
	Host       string
	Rated      bool
	RatingText string // empty when Rated is false
}

// WithMetadata attaches document metadata to a parser context.
func WithMetadata(pc parser.Context, meta map[string]any) {
	pc.Set(metadataKey, meta)
}

// MetadataFrom returns the metadata attached with WithMetadata, or nil.
func MetadataFrom(pc parser.Context) map[string]any {
	meta, _ := pc.Get(metadataKey).(map[string]any)
	return meta
}

// PicksFrom returns the picks injected while parsing with pc.
func PicksFrom(pc parser.Context) []Pick {
	picks, _ := pc.Get(picksKey).([]Pick)
	return picks
}

// Transformer is a parser.ASTTransformer injecting pick blocks.
// Metadata comes from the parser context and falls back to the
// document's own metadata.
type Transformer struct{}

// Transform implements parser.ASTTransformer.
func (t *Transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	meta := MetadataFrom(pc)
	if meta == nil {
		meta = doc.Meta()
	}
	products := ParseProducts(ResolveProducts(meta))
	pc.Set(picksKey, Rewrite(doc, reader.Source(), products))
}

// Rewrite injects a pick block after every level-3 heading of doc whose text
// matches a product title. Only the top-level children of doc are visited.
// Returns the injected picks; doc is untouched when none match.
func Rewrite(doc ast.Node, source []byte, products []Product) []Pick {
	index := indexProducts(products)
	if len(index) == 0 || doc.ChildCount() == 0 {
		return nil
	}

	nodes := make([]ast.Node, 0, doc.ChildCount())
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		nodes = append(nodes, c)
	}

	out := make([]ast.Node, 0, len(nodes))
	var picks []Pick
	for i := 0; i < len(nodes); i++ {
		node := nodes[i]
		out = append(out, node)

		heading, ok := node.(*ast.Heading)
		if !ok || heading.Level != pickHeadingLevel {
			continue
		}
		title := headingText(heading, source)
		if title == "" {
			continue
		}
		product, ok := index[Normalize(title)]
		if !ok {
			continue
		}

		var paragraph ast.Node
		if i+1 < len(nodes) && nodes[i+1].Kind() == ast.KindParagraph {
			paragraph = nodes[i+1]
			i++
		}

		b := buildBlock(product, title)
		out = append(out, b.nodes(paragraph)...)
		picks = append(picks, b.pick)
	}

	if len(picks) == 0 {
		return nil
	}

	doc.RemoveChildren(doc)
	for _, n := range out {
		doc.AppendChild(doc, n)
	}
	return picks
}

// indexProducts maps normalized titles to products; later entries win.
func indexProducts(products []Product) map[string]Product {
	index := make(map[string]Product, len(products))
	for _, p := range products {
		index[Normalize(p.Title)] = p
	}
	return index
}

// headingText concatenates the text and code span children of h.
// Links, emphasis and other inline nodes are not part of the text.
func headingText(h *ast.Heading, source []byte) string {
	var b strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			b.Write(resolveText(n.Segment.Value(source)))
		case *ast.String:
			b.Write(n.Value)
		case *ast.CodeSpan:
			for t := n.FirstChild(); t != nil; t = t.NextSibling() {
				if seg, ok := t.(*ast.Text); ok {
					b.Write(seg.Segment.Value(source))
				}
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// resolveText applies backslash escapes and character references the way
// the HTML renderer does, so "Tom &amp; Jerry" reads "Tom & Jerry".
func resolveText(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}

// block is the generated cluster for one matched heading.
type block struct {
	rating *PickMarkup
	open   *PickMarkup
	cta    *PickMarkup
	close  *PickMarkup
	pick   Pick
}

func buildBlock(p Product, headingTitle string) block {
	cta := BuildCTA(p, headingTitle)
	line, rated := ratingText(p)
	return block{
		rating: NewPickMarkup(BuildRatingLine(p)),
		open:   NewPickMarkup(openWrapper(BuildInitials(headingTitle))),
		cta:    NewPickMarkup(ctaMarkup(cta)),
		close:  NewPickMarkup(closeWrapper),
		pick: Pick{
			Title:      headingTitle,
			Href:       cta.Href,
			Label:      cta.Label,
			Host:       cta.Host,
			Rated:      rated,
			RatingText: line,
		},
	}
}

// nodes returns the nodes following the heading. A non-nil paragraph is
// moved as-is between the opening wrapper and the call-to-action.
func (b block) nodes(paragraph ast.Node) []ast.Node {
	if paragraph == nil {
		return []ast.Node{b.rating, b.open, b.cta, b.close}
	}
	return []ast.Node{b.rating, b.open, paragraph, b.cta, b.close}
}
