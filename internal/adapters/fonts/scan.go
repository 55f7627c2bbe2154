package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

var fontExts = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
	".otc": true,
}

// DefaultDirs returns the system font directories for the current OS.
func DefaultDirs() []string {
	home, _ := os.UserHomeDir()

	var dirs []string
	switch runtime.GOOS {
	case "darwin":
		dirs = []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
	default:
		dirs = []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
	}
	return dirs
}

// Scan walks dirs and registers every face found in font files. Missing
// directories are skipped; unreadable or malformed files are logged and
// skipped. It returns the number of faces added.
func (r *Registry) Scan(dirs ...string) (int, error) {
	added := 0
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == dir && errors.Is(err, fs.ErrNotExist) {
					return fs.SkipDir
				}
				r.logger.Warn("skipping font path", ports.String("path", path), ports.Err(err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !fontExts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			specs, err := readFaces(path)
			if err != nil {
				r.logger.Warn("skipping font file", ports.String("path", path), ports.Err(err))
				return nil
			}
			for _, s := range specs {
				if !r.Has(s) {
					added++
				}
				r.Add(s, path)
			}
			return nil
		})
		if err != nil {
			return added, err
		}
	}

	r.logger.Debug("font scan finished", ports.Int("dirs", len(dirs)), ports.Int("added", added))
	return added, nil
}

func readFaces(path string) ([]domain.FontSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseFaces(data)
}

// parseFaces returns the faces in a single font or a font collection.
func parseFaces(data []byte) ([]domain.FontSpec, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}

	var (
		buf   sfnt.Buffer
		specs []domain.FontSpec
	)
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			return nil, err
		}
		spec, err := faceName(f, &buf)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// faceName prefers the typographic names and falls back to the legacy ones.
func faceName(f *sfnt.Font, buf *sfnt.Buffer) (domain.FontSpec, error) {
	family, err := name(f, buf, sfnt.NameIDTypographicFamily, sfnt.NameIDFamily)
	if err != nil {
		return domain.FontSpec{}, err
	}
	style, err := name(f, buf, sfnt.NameIDTypographicSubfamily, sfnt.NameIDSubfamily)
	if err != nil {
		return domain.FontSpec{}, err
	}
	return domain.FontSpec{Family: family, Style: style}, nil
}

func name(f *sfnt.Font, buf *sfnt.Buffer, ids ...sfnt.NameID) (string, error) {
	for _, id := range ids {
		s, err := f.Name(buf, id)
		if errors.Is(err, sfnt.ErrNotFound) || (err == nil && s == "") {
			continue
		}
		if err != nil {
			return "", err
		}
		return s, nil
	}
	return "", sfnt.ErrNotFound
}
