package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-mdpicks/internal/picks"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Rendered is the output of one Markdown conversion.
type Rendered struct {
	HTML  string // HTML fragment, without document wrapper
	Picks []picks.Pick
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string, meta map[string]any) (*Rendered, error)
}

// ConverterOptions tunes the goldmark renderer.
type ConverterOptions struct {
	HardWraps bool // render soft line breaks as <br>
}

// GoldmarkConverter converts Markdown to HTML using goldmark.
// It is safe for concurrent use: every call gets its own parser context.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM, footnotes,
// syntax highlighting and the picks extension.
func NewGoldmarkConverter(opts ConverterOptions) *GoldmarkConverter {
	rendererOpts := []goldmark.Option{}
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
			&picks.Extension{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		// WithUnsafe is not set: pick markup is rendered by its own node
		// renderer, and raw HTML in posts stays suppressed.
	}, rendererOpts...)...)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment, injecting pick blocks
// driven by meta. goldmark has no context support, so conversion runs in a
// goroutine and ToHTML returns as soon as ctx is done.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string, meta map[string]any) (*Rendered, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		rendered *Rendered
		err      error
	}

	done := make(chan result, 1)

	go func() {
		pc := parser.NewContext()
		picks.WithMetadata(pc, meta)

		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf, parser.WithContext(pc)); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{rendered: &Rendered{HTML: buf.String(), Picks: picks.PicksFrom(pc)}}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.rendered, r.err
	}
}
