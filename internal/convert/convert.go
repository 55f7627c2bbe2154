// Package convert runs one font conversion over a document file.
package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/bft-labs/sftype/internal/adapters/docfile"
	"github.com/bft-labs/sftype/internal/adapters/fonts"
	"github.com/bft-labs/sftype/internal/adapters/notify"
	"github.com/bft-labs/sftype/internal/app"
	"github.com/bft-labs/sftype/internal/cliconfig"
	"github.com/bft-labs/sftype/internal/ports"
)

// Run loads cfg.Document, converts its selection and writes the result to
// cfg.OutputPath(). Messages for the user go to out.
//
// Nothing is written when the selection is empty, in dry-run mode, or when
// the run aborts.
func Run(ctx context.Context, cfg cliconfig.Config, logger ports.Logger, out io.Writer) (app.Result, error) {
	format, err := cfg.OutputFormat()
	if err != nil {
		return app.Result{}, err
	}

	doc, err := docfile.Load(cfg.Document)
	if err != nil {
		return app.Result{}, fmt.Errorf("load document: %w", err)
	}
	if len(cfg.Selection) > 0 {
		if err := doc.Select(cfg.Selection); err != nil {
			return app.Result{}, err
		}
	}

	registry, err := NewRegistry(cfg, logger)
	if err != nil {
		return app.Result{}, err
	}

	runner := app.NewRunner(
		app.RunnerConfig{Concurrency: cfg.Concurrency},
		doc,
		registry,
		notify.New(out, logger),
		logger,
		nil,
	)

	res, err := runner.Run(ctx)
	stats := registry.Stats()
	logger.Debug("font registry",
		ports.Int("available", stats.Available),
		ports.Int("loaded", stats.Loaded),
		ports.Int("requests", stats.Requests),
		ports.Int("misses", stats.Misses),
	)
	if err != nil {
		return res, err
	}

	if res.EmptySelection || cfg.DryRun {
		logger.Info("document not written",
			ports.String("run_id", res.RunID),
			ports.Bool("empty_selection", res.EmptySelection),
			ports.Bool("dry_run", cfg.DryRun),
		)
		return res, nil
	}

	path := cfg.OutputPath()
	if err := docfile.Save(path, format, doc); err != nil {
		return res, fmt.Errorf("save document: %w", err)
	}
	logger.Info("document written",
		ports.String("run_id", res.RunID),
		ports.String("path", path),
		ports.String("format", string(format)),
	)
	return res, nil
}

// NewRegistry builds the font registry described by cfg: declared fonts,
// configured font directories and, unless disabled, the system directories.
func NewRegistry(cfg cliconfig.Config, logger ports.Logger) (*fonts.Registry, error) {
	declared, err := cliconfig.ParseFontSpecs(cfg.Fonts)
	if err != nil {
		return nil, err
	}
	registry := fonts.NewRegistry(logger, declared...)

	dirs := append([]string(nil), cfg.FontDirs...)
	if !cfg.NoSystemFonts {
		dirs = append(dirs, fonts.DefaultDirs()...)
	}
	if _, err := registry.Scan(dirs...); err != nil {
		return nil, fmt.Errorf("scan fonts: %w", err)
	}
	return registry, nil
}
