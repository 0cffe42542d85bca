// Package embedserver serves a compiled booking form plus the submission API
// behind it as one mountable component: document rendering, booking creation,
// checkout initiation, and Prometheus metrics.
package embedserver

import (
	"errors"
	"net/http"
)

// Component wires the renderer, definition, and services into an HTTP
// surface.
type Component struct {
	opts    Options
	metrics *metrics
}

// New constructs a component with default options plus any overrides. The
// definition and renderer are required; the booking store defaults to an
// in-memory one.
func New(fns ...OptionFn) (*Component, error) {
	opts := NewOptions(fns...)
	if opts.Definition == nil {
		return nil, errors.New("embedserver: a definition is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("embedserver: a renderer is required")
	}
	if opts.Bookings == nil {
		opts.Bookings = NewMemoryBookings()
	}
	return &Component{opts: opts, metrics: newMetrics()}, nil
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return c.opts
}

// Handler returns the fully-routed HTTP handler.
func (c *Component) Handler() http.Handler {
	return c.router()
}
