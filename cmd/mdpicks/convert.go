package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	mdpicks "github.com/alnah/go-mdpicks"
	"github.com/alnah/go-mdpicks/internal/config"
	"github.com/alnah/go-mdpicks/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadCSS          = errors.New("failed to read CSS file")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrConverterInit    = errors.New("failed to initialize converter")
	ErrConversionFailed = errors.New("conversion failed")
)

// File permission constants.
const (
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	css      string // extra CSS from --css
	fragment bool
}

// BatchError reports the failed documents of a batch. A single-document
// batch also matches the document's error, so the exit code reflects it.
type BatchError struct {
	Failed int
	Total  int
	Cause  error // set for single-document batches
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: %d of %d document(s)", ErrConversionFailed, e.Failed, e.Total)
}

func (e *BatchError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrConversionFailed, e.Cause}
	}
	return []error{ErrConversionFailed}
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	logger := newLogger(env, flags.common.quiet, flags.common.verbose)
	if env.MaxProcs != nil {
		env.MaxProcs(logger)
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Env fills what the config left empty, then CLI flags win.
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	css, err := readCSSFile(flags.style.css)
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := mdpicks.ResolvePoolSize(workers)
	logger.Debug("starting batch", "files", len(files), "pool", poolSize)

	opts := converterOptions(cfg, resolveTimeout(flags.timeout, envCfg), logger)
	pool := env.NewPool(poolSize, opts...)
	defer pool.Close()

	// Probe one converter so style and asset errors fail the run once,
	// not once per file.
	conv, err := pool.Acquire()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConverterInit, err)
	}
	pool.Release(conv)

	params := &conversionParams{css: css, fragment: cfg.Render.Fragment}
	results := convertBatch(ctx, pool, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if flags.summary {
		printPickSummary(results, env)
	}
	if failedCount > 0 {
		batchErr := &BatchError{Failed: failedCount, Total: len(results)}
		if len(results) == 1 {
			batchErr.Cause = results[0].Err
		}
		return batchErr
	}

	return nil
}

// loadConfig loads the named config, falling back to MDPICKS_CONFIG.
// Without either, defaults apply.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags over config values. Only set flags override.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.style.style != "" {
		cfg.CSS.Style = flags.style.style
	}
	if flags.style.noStyle {
		cfg.CSS.Disabled = true
	}
	if flags.style.assetPath != "" {
		cfg.Assets.BasePath = flags.style.assetPath
	}
	if flags.render.fragment {
		cfg.Render.Fragment = true
	}
	if flags.render.hardWraps {
		cfg.Render.HardWraps = true
	}
	if flags.render.audit {
		cfg.Audit.Enabled = true
	}
}

// converterOptions translates the merged config into converter options.
func converterOptions(cfg *config.Config, timeout time.Duration, logger *slog.Logger) []mdpicks.Option {
	opts := []mdpicks.Option{
		mdpicks.WithLogger(logger),
		mdpicks.WithHardWraps(cfg.Render.HardWraps),
		mdpicks.WithAudit(cfg.Audit.Enabled),
	}
	if timeout > 0 {
		opts = append(opts, mdpicks.WithTimeout(timeout))
	}
	if cfg.CSS.Disabled {
		opts = append(opts, mdpicks.WithoutStyle())
	} else if cfg.CSS.Style != "" {
		opts = append(opts, mdpicks.WithStyle(cfg.CSS.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, mdpicks.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}

// resolveTimeout returns the --timeout value, else MDPICKS_TIMEOUT.
// Zero keeps the converter default.
func resolveTimeout(flagTimeout time.Duration, envCfg *envConfig) time.Duration {
	if flagTimeout > 0 {
		return flagTimeout
	}
	return envCfg.Timeout
}

// resolveInputPath returns the input argument, else the configured default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir returns the --output value, else the configured default.
// Empty means next to each source file.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// readCSSFile returns the content of the --css file, or "" when unset.
func readCSSFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}
