package sftype_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/sftype"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r      rune
		weight float64
		want   sftype.FontSpec
	}{
		{'A', 700, sftype.FontSpec{Family: "SF Pro", Style: "Bold"}},
		{'한', 700, sftype.FontSpec{Family: "Apple SD Gothic Neo", Style: "Bold"}},
		{'ㄱ', 300, sftype.FontSpec{Family: "Apple SD Gothic Neo", Style: "Light"}},
		{'|', 400, sftype.FontSpec{Family: "SF Pro", Style: "Regular"}},
	}
	for _, tt := range tests {
		if got := sftype.Classify(tt.r, tt.weight); got != tt.want {
			t.Errorf("Classify(%q, %v) = %v, want %v", tt.r, tt.weight, got, tt.want)
		}
	}
}

func TestTrackingFor(t *testing.T) {
	if v, ok := sftype.TrackingFor(16); !ok || v != -0.31 {
		t.Errorf("TrackingFor(16) = %v, %v, want -0.31", v, ok)
	}
	if _, ok := sftype.TrackingFor(16.5); ok {
		t.Error("TrackingFor(16.5) should be absent")
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "design.yaml")
	err := os.WriteFile(doc, []byte(`selection: ["t"]
nodes:
  - id: t
    type: TEXT
    characters: "ab"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg := sftype.DefaultConfig()
	cfg.Document = doc
	cfg.Output = filepath.Join(dir, "out.toml")
	cfg.NoSystemFonts = true
	cfg.Fonts = []string{"Inter:Regular", "SF Pro:Regular"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	var out bytes.Buffer
	res, err := sftype.Convert(context.Background(), cfg, &out)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if res.Counts.ChangedCharacters != 2 {
		t.Errorf("ChangedCharacters = %d, want 2", res.Counts.ChangedCharacters)
	}
	if _, err := os.Stat(cfg.Output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}
