// Package bookform compiles declarative booking-form definitions into
// self-contained embeddable wizard documents. The root package re-exports the
// common types and offers one-call compile helpers; the pkg tree carries the
// full surface.
package bookform

import (
	"context"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/render"
	"github.com/chauffeurkit/bookform/pkg/renderers/wizard"
)

// Definition aliases the normalized configuration consumed by every stage.
type Definition = config.Definition

// Options aliases the per-request render inputs.
type Options = render.Options

// Renderer aliases the pluggable document renderer contract.
type Renderer = render.Renderer

// NewRegistry returns an empty renderer registry with the wizard renderer
// pre-registered.
func NewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	renderer, err := wizard.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(renderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// Compile loads a definition file, normalizes it, and renders the wizard
// document. It is the simplest entry point for callers that just want the
// compiled form.
func Compile(ctx context.Context, path string, opts Options) ([]byte, error) {
	def, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return CompileDefinition(ctx, def, opts)
}

// CompileDefinition renders an already-normalized definition, bypassing the
// loader stage.
func CompileDefinition(ctx context.Context, def *Definition, opts Options) ([]byte, error) {
	renderer, err := wizard.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, def, opts)
}
