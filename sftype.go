// Package sftype rewrites the fonts of text layers in a design document.
//
// Each character of the selected text layers is assigned SF Pro (Latin and
// everything else) or Apple SD Gothic Neo (Hangul), with a style derived from
// its current weight. Latin characters also receive the SF Pro tracking for
// their font size.
//
// Example usage:
//
//	cfg := sftype.DefaultConfig()
//	cfg.Document = "landing.json"
//	cfg.Output = "landing.sf.json"
//	cfg.Fonts = []string{"SF Pro:Bold", "Apple SD Gothic Neo:Bold"}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	res, err := sftype.Convert(context.Background(), cfg, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Counts.Summary())
package sftype

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	logAdapter "github.com/bft-labs/sftype/internal/adapters/log"
	"github.com/bft-labs/sftype/internal/app"
	"github.com/bft-labs/sftype/internal/cliconfig"
	"github.com/bft-labs/sftype/internal/convert"
	"github.com/bft-labs/sftype/internal/domain"
)

// Config holds the configuration of a conversion.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// Result describes a finished conversion.
type Result = app.Result

// FontSpec names a font face by family and style.
type FontSpec = domain.FontSpec

// FontLoadError reports a font that could not be loaded.
type FontLoadError = domain.FontLoadError

// Convert runs one conversion over cfg.Document. User-visible messages are
// written to out; diagnostics go to the package logger.
func Convert(ctx context.Context, cfg Config, out io.Writer) (Result, error) {
	return convert.Run(ctx, cfg, logAdapter.NewZerologAdapterWithLogger(Logger()), out)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set Document before calling Convert.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Logger returns the package-level zerolog logger.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}

// Classify returns the font a character of the given weight is rewritten to.
func Classify(r rune, weight float64) FontSpec {
	return domain.Classify(weight, domain.ScriptOf(r))
}

// TrackingFor returns the SF Pro tracking in pixels for an integer font size.
func TrackingFor(size float64) (float64, bool) {
	return domain.TrackingFor(size)
}
