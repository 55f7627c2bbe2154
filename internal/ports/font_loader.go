package ports

import (
	"context"

	"github.com/bft-labs/sftype/internal/domain"
)

// FontLoader ensures a font face is usable before it is applied.
// Loading an already loaded face must be idempotent and cheap.
type FontLoader interface {
	// Load returns nil once the face can be applied, or an error if it is
	// not available (typically wrapping domain.ErrFontNotInstalled).
	Load(ctx context.Context, font domain.FontSpec) error
}
