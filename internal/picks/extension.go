package picks

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Registration priorities for the transformer and the markup renderer.
const (
	transformerPriority = 999
	rendererPriority    = 500
)

// Extension registers the pick transformer and the PickMarkup renderer.
type Extension struct{}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(util.Prioritized(&Transformer{}, transformerPriority)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&markupRenderer{}, rendererPriority)),
	)
}

// Compile-time interface checks.
var (
	_ goldmark.Extender     = (*Extension)(nil)
	_ parser.ASTTransformer = (*Transformer)(nil)
	_ renderer.NodeRenderer = (*markupRenderer)(nil)
)
