// Package render defines the renderer contract shared by form compilers and a
// registry for discovering them by name.
package render

import (
	"context"

	"github.com/chauffeurkit/bookform/pkg/config"
)

// Renderer compiles a normalized definition into a complete document.
type Renderer interface {
	// Name identifies the renderer for registry lookups.
	Name() string
	// ContentType is the media type of the rendered output.
	ContentType() string
	// Render produces the self-contained document for a definition.
	Render(ctx context.Context, def *config.Definition, opts Options) ([]byte, error)
}
