package convert

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bft-labs/sftype/internal/adapters/docfile"
	logadapter "github.com/bft-labs/sftype/internal/adapters/log"
	"github.com/bft-labs/sftype/internal/app"
	"github.com/bft-labs/sftype/internal/cliconfig"
	"github.com/bft-labs/sftype/internal/domain"
)

const designJSON = `{
  "name": "Landing",
  "selection": ["1:1"],
  "nodes": [
    {
      "id": "1:1",
      "type": "FRAME",
      "children": [
        {
          "id": "1:2",
          "type": "TEXT",
          "characters": "Hi 한글",
          "styles": [{"start": 0, "end": 5, "family": "Inter", "style": "Bold", "weight": 700, "size": 16}]
        }
      ]
    },
    {"id": "2:1", "type": "TEXT", "characters": "x"}
  ]
}
`

func setup(t *testing.T, fonts ...string) cliconfig.Config {
	t.Helper()
	dir := t.TempDir()
	doc := filepath.Join(dir, "design.json")
	if err := os.WriteFile(doc, []byte(designJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := cliconfig.DefaultConfig()
	cfg.Document = doc
	cfg.Output = filepath.Join(dir, "out.json")
	cfg.NoSystemFonts = true
	cfg.Fonts = fonts
	return cfg
}

var allFonts = []string{"Inter:Bold", "Inter:Regular", "SF Pro:Bold", "SF Pro:Regular", "Apple SD Gothic Neo:Bold"}

func TestRun(t *testing.T) {
	cfg := setup(t, allFonts...)
	var out bytes.Buffer

	res, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Phase != app.PhaseDone {
		t.Errorf("Phase = %v, want done", res.Phase)
	}
	want := domain.Counts{TotalLayers: 1, ProcessedLayers: 1, ChangedCharacters: 5}
	if res.Counts != want {
		t.Errorf("Counts = %+v, want %+v", res.Counts, want)
	}
	if got := out.String(); got != "Execution started\nLayers changed: 1, Characters changed: 5\n" {
		t.Errorf("output = %q", got)
	}

	written, err := docfile.Load(cfg.Output)
	if err != nil {
		t.Fatalf("Load(out) error = %v", err)
	}
	styles := written.Export().Nodes[0].Children[0].Styles
	wantStyles := []docfile.StyleRun{
		{Start: 0, End: 3, Family: "SF Pro", Style: "Bold", Weight: 700, Size: 16,
			LetterSpacing: &docfile.Spacing{Value: -0.31, Unit: "PIXELS"}},
		{Start: 3, End: 5, Family: "Apple SD Gothic Neo", Style: "Bold", Weight: 700, Size: 16},
	}
	if !reflect.DeepEqual(styles, wantStyles) {
		t.Errorf("styles = %+v, want %+v", styles, wantStyles)
	}

	// unselected text is untouched
	other := written.Export().Nodes[1]
	if other.Styles[0].Family != "Inter" {
		t.Errorf("unselected node changed to %q", other.Styles[0].Family)
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg := setup(t, allFonts...)
	if _, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &bytes.Buffer{}); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	cfg.Document = cfg.Output
	res, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if res.Counts.ChangedCharacters != 0 {
		t.Errorf("second run changed %d characters, want 0", res.Counts.ChangedCharacters)
	}
}

func TestRun_SelectionOverride(t *testing.T) {
	cfg := setup(t, allFonts...)
	cfg.Selection = []string{"2:1"}

	res, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Counts.ChangedCharacters != 1 || res.Counts.TotalLayers != 1 {
		t.Errorf("Counts = %+v, want one layer with one character", res.Counts)
	}
}

func TestRun_UnknownSelection(t *testing.T) {
	cfg := setup(t, allFonts...)
	cfg.Selection = []string{"9:9"}

	if _, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &bytes.Buffer{}); err == nil {
		t.Error("Run() with unknown selection should fail")
	}
}

func TestRun_DryRun(t *testing.T) {
	cfg := setup(t, allFonts...)
	cfg.DryRun = true

	res, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Counts.ChangedCharacters != 5 {
		t.Errorf("ChangedCharacters = %d, want 5", res.Counts.ChangedCharacters)
	}
	if cliconfig.FileExists(cfg.Output) {
		t.Error("dry run should not write the output")
	}
}

func TestRun_EmptySelection(t *testing.T) {
	cfg := setup(t, allFonts...)
	cfg.Document = filepath.Join(filepath.Dir(cfg.Document), "empty.json")
	if err := os.WriteFile(cfg.Document, []byte(`{"nodes": [{"id": "1", "type": "TEXT", "characters": "a"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer

	res, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.EmptySelection {
		t.Error("EmptySelection = false, want true")
	}
	if out.String() != app.EmptySelectionMessage+"\n" {
		t.Errorf("output = %q", out.String())
	}
	if cliconfig.FileExists(cfg.Output) {
		t.Error("empty selection should not write the output")
	}
}

func TestRun_MissingFont(t *testing.T) {
	cfg := setup(t, "Inter:Bold", "Inter:Regular", "SF Pro:Bold")
	var out bytes.Buffer

	res, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &out)
	var loadErr *domain.FontLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Run() error = %v, want FontLoadError", err)
	}
	if loadErr.Spec.Family != domain.FamilyKorean {
		t.Errorf("failed font = %v, want %s", loadErr.Spec, domain.FamilyKorean)
	}
	if res.Phase != app.PhaseAborted {
		t.Errorf("Phase = %v, want aborted", res.Phase)
	}
	if cliconfig.FileExists(cfg.Output) {
		t.Error("aborted run should not write the output")
	}
}

func TestRun_MissingDocument(t *testing.T) {
	cfg := setup(t)
	cfg.Document = filepath.Join(t.TempDir(), "missing.json")

	if _, err := Run(context.Background(), cfg, logadapter.NewNoopLogger(), &bytes.Buffer{}); err == nil {
		t.Error("Run() with missing document should fail")
	}
}

func TestNewRegistry(t *testing.T) {
	cfg := cliconfig.DefaultConfig()
	cfg.NoSystemFonts = true
	cfg.Fonts = []string{"SF Pro:Bold"}
	cfg.FontDirs = []string{filepath.Join(t.TempDir(), "none")}

	registry, err := NewRegistry(cfg, logadapter.NewNoopLogger())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	if got := registry.Stats().Available; got != 1 {
		t.Errorf("Available = %d, want 1", got)
	}

	cfg.Fonts = []string{":"}
	if _, err := NewRegistry(cfg, logadapter.NewNoopLogger()); err == nil {
		t.Error("NewRegistry() with invalid font should fail")
	}
}
