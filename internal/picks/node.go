package picks

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// KindPickMarkup is the NodeKind of generated pick markup.
var KindPickMarkup = ast.NewNodeKind("PickMarkup")

// PickMarkup is a block holding already-escaped markup for a pick.
type PickMarkup struct {
	ast.BaseBlock
	Value string
}

// NewPickMarkup returns a PickMarkup node holding value.
func NewPickMarkup(value string) *PickMarkup {
	return &PickMarkup{Value: value}
}

// Kind implements ast.Node.
func (n *PickMarkup) Kind() ast.NodeKind {
	return KindPickMarkup
}

// Dump implements ast.Node.
func (n *PickMarkup) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Value": n.Value}, nil)
}

// markupRenderer writes PickMarkup values verbatim.
type markupRenderer struct{}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *markupRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindPickMarkup, r.renderPickMarkup)
}

func (r *markupRenderer) renderPickMarkup(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*PickMarkup)
	if _, err := w.WriteString(n.Value); err != nil {
		return ast.WalkStop, err
	}
	if err := w.WriteByte('\n'); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkSkipChildren, nil
}
