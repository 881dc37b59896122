package mdpicks

import (
	"log/slog"
	"time"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout    time.Duration
	styleInput string // style name, file path or inline CSS
	noStyle    bool
	assetPath  string
	hardWraps  bool
	audit      bool
}

// defaultTimeout bounds a single conversion.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpicks: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle selects the stylesheet injected into full documents: a style
// name ("picks", "minimal" or one under the asset path), a path to a .css
// file, or inline CSS. Defaults to "picks".
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithoutStyle disables the built-in stylesheet. Input.CSS still applies.
func WithoutStyle() Option {
	return func(c *Converter) {
		c.cfg.noStyle = true
	}
}

// WithAssetPath adds a directory of custom styles/{name}.css files that
// take precedence over the built-in styles.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithHardWraps renders soft line breaks as <br>.
func WithHardWraps(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.hardWraps = enabled
	}
}

// WithAudit verifies the rendered pick markup after every conversion.
// A failed audit returns an *AuditError.
func WithAudit(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.audit = enabled
	}
}

// WithLogger sets the logger used for debug records. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}
