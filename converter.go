package mdpicks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alnah/go-mdpicks/internal/assets"
	"github.com/alnah/go-mdpicks/internal/fileutil"
	"github.com/alnah/go-mdpicks/internal/frontmatter"
	"github.com/alnah/go-mdpicks/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter orchestrates the Markdown-to-HTML pipeline.
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	logger        *slog.Logger
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	style         string // resolved stylesheet, empty when disabled
}

// NewConverter creates a Converter with default configuration.
// Returns error if the asset path or the style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{timeout: defaultTimeout},
		logger:       slog.New(slog.DiscardHandler),
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if c.htmlConverter == nil {
		c.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{
			HardWraps: c.cfg.hardWraps,
		})
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the full pipeline on one document.
// The context is used for cancellation; the converter timeout bounds it.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	doc, err := frontmatter.Parse(input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	meta, source := doc.Meta, "frontmatter"
	if input.Metadata != nil {
		meta, source = input.Metadata, "input"
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, doc.Body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	rendered, err := c.htmlConverter.ToHTML(ctx, mdContent, meta)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title := metadataTitle(meta)
	htmlContent := rendered.HTML
	if !input.Fragment {
		htmlContent = pipeline.WrapDocument(title, htmlContent)
		htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, pipeline.JoinCSS(c.style, input.CSS))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	if c.cfg.audit {
		if err := pipeline.Audit(htmlContent, rendered.Picks); err != nil {
			return nil, err
		}
	}

	c.logger.DebugContext(ctx, "converted document",
		slog.String("metadata", source),
		slog.Int("picks", len(rendered.Picks)),
		slog.Int("bytes", len(htmlContent)),
		slog.Bool("fragment", input.Fragment),
	)

	return &ConvertResult{
		HTML:     []byte(htmlContent),
		Title:    title,
		Picks:    toPicks(rendered.Picks),
		Metadata: meta,
	}, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() error {
	if c.cfg.noStyle {
		return nil
	}

	input := c.cfg.styleInput
	switch {
	case input == "":
		input = assets.DefaultStyle
	case fileutil.IsCSS(input):
		c.style = input
		return nil
	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.style = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.style = css
	return nil
}
