package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/sftype/internal/adapters/fonts"
	logAdapter "github.com/bft-labs/sftype/internal/adapters/log"
	"github.com/bft-labs/sftype/internal/cliconfig"
	"github.com/bft-labs/sftype/internal/convert"
	"github.com/bft-labs/sftype/internal/watch"
)

const helpDescription = `
Rewrite the fonts of selected text layers in a design document.

Every character is assigned SF Pro or Apple SD Gothic Neo by script, with a
style chosen from its current weight. Latin characters also get the SF Pro
tracking for their size.

Highlights:
  - Reads and writes JSON, YAML and TOML documents.
  - Discovers installed fonts; declare extra faces with --font.
  - Configure via file, env (SFTYPE_*), or flags.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  sftype --doc landing.json --out landing.sf.json
  sftype --doc landing.yaml --select 1:2,1:3 --dry-run
  sftype watch --doc landing.json --out build/landing.json
  sftype fonts --no-system-fonts --font-dir ./fonts
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "sftype",
		Short:         "Rewrite text layers to SF Pro and Apple SD Gothic Neo",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfgPath, &cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			_, err := convert.Run(ctx, cfg, adapter(), cmd.OutOrStdout())
			return err
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Convert the document again whenever it changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfgPath, &cfg); err != nil {
				return err
			}
			if err := cfg.ValidateWatch(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := adapter()
			out := cmd.OutOrStdout()
			w, err := watch.New(watch.Config{Path: cfg.Document, DebounceDelay: cfg.Debounce}, func(ctx context.Context) error {
				_, err := convert.Run(ctx, cfg, logger, out)
				return err
			}, logger)
			if err != nil {
				return err
			}
			return w.Watch(ctx)
		},
	}
	watchCmd.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after a change before converting")

	fontsCmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the fonts available for conversion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfgPath, &cfg); err != nil {
				return err
			}
			if _, err := cliconfig.ParseFontSpecs(cfg.Fonts); err != nil {
				return err
			}
			registry, err := convert.NewRegistry(cfg, adapter())
			if err != nil {
				return err
			}
			return printFonts(cmd.OutOrStdout(), registry)
		},
	}

	// Flags
	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.sftype/config.toml)")
	pf.StringSliceVar(&cfg.FontDirs, "font-dir", cfg.FontDirs, "additional directory to scan for fonts (repeatable)")
	pf.StringSliceVar(&cfg.Fonts, "font", cfg.Fonts, `declare an installed face as "Family:Style" (repeatable)`)
	pf.BoolVar(&cfg.NoSystemFonts, "no-system-fonts", cfg.NoSystemFonts, "do not scan the system font directories")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	for _, c := range []*cobra.Command{root, watchCmd} {
		f := c.Flags()
		f.StringVar(&cfg.Document, "doc", cfg.Document, "design document (.json, .yaml, .yml, .toml)")
		f.StringVar(&cfg.Output, "out", cfg.Output, "output document (default: overwrite --doc)")
		f.StringVar(&cfg.Format, "format", cfg.Format, "output format (default: from the output extension)")
		f.StringSliceVar(&cfg.Selection, "select", cfg.Selection, "node ids to convert, overriding the stored selection")
		f.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "max concurrent characters per layer (0 = unlimited)")
		f.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "convert without writing the result")
	}

	root.AddCommand(watchCmd, fontsCmd)

	if err := root.Execute(); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("sftype")
		os.Exit(1)
	}
}

// loadConfig applies the config file and SFTYPE_* environment beneath the
// flags set on cmd, then applies the log level.
func loadConfig(cmd *cobra.Command, cfgPath string, cfg *cliconfig.Config) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("load config: %s: %w", cfgPath, os.ErrNotExist)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	if err := cliconfig.SetLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}

	log := cliconfig.Logger()
	log.Debug().Interface("config", cfg).Msg("configuration")
	return nil
}

func adapter() *logAdapter.ZerologAdapter {
	return logAdapter.NewZerologAdapterWithLogger(cliconfig.Logger())
}

func printFonts(w io.Writer, registry *fonts.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FAMILY\tSTYLE\tSOURCE")
	for _, f := range registry.Fonts() {
		source := f.Source
		if source == "" {
			source = "declared"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Spec.Family, f.Spec.Style, source)
	}
	return tw.Flush()
}
