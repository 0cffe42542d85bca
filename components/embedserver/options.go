package embedserver

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/fare"
	"github.com/chauffeurkit/bookform/pkg/flow"
	"github.com/chauffeurkit/bookform/pkg/render"
)

// GuardFunc inspects a request before it reaches the form or API handlers.
// Returning an error rejects the request; errors implementing HTTPError pick
// their own status code, everything else maps to 403.
type GuardFunc func(r *http.Request) error

// HTTPError lets guard errors choose the response status.
type HTTPError interface {
	error
	StatusCode() int
}

// Options configure the embed server component.
type Options struct {
	FormPath     string
	BookingPath  string
	CheckoutPath string
	MetricsPath  string
	HealthPath   string

	// Guard runs before the form and API handlers; metrics and health stay
	// open.
	Guard GuardFunc

	// AllowedOrigins feeds the CORS layer; the compiled document is meant to
	// be iframed from customer sites.
	AllowedOrigins []string

	Definition *config.Definition
	Renderer   render.Renderer
	Estimator  fare.Estimator

	Bookings flow.BookingService
	Checkout flow.CheckoutService

	Logger *log.Logger
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the paths and CORS policy used when nothing is
// overridden. The booking and checkout paths match the endpoints advertised
// in the compiled payload.
func DefaultOptions() Options {
	return Options{
		FormPath:       "/form",
		BookingPath:    "/api/bookings",
		CheckoutPath:   "/api/checkout",
		MetricsPath:    "/metrics",
		HealthPath:     "/healthz",
		AllowedOrigins: []string{"*"},
	}
}

// NewOptions applies overrides over defaults and backfills anything left
// empty.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.FormPath == "" {
		opts.FormPath = "/form"
	}
	if opts.BookingPath == "" {
		opts.BookingPath = "/api/bookings"
	}
	if opts.CheckoutPath == "" {
		opts.CheckoutPath = "/api/checkout"
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	if opts.HealthPath == "" {
		opts.HealthPath = "/healthz"
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

func WithFormPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormPath = path
	}
}

func WithBookingPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.BookingPath = path
	}
}

func WithCheckoutPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CheckoutPath = path
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithAllowedOrigins(origins []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AllowedOrigins = append([]string{}, origins...)
	}
}

func WithDefinition(def *config.Definition) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Definition = def
	}
}

func WithRenderer(renderer render.Renderer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = renderer
	}
}

func WithEstimator(estimator fare.Estimator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Estimator = estimator
	}
}

func WithBookingService(svc flow.BookingService) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Bookings = svc
	}
}

func WithCheckoutService(svc flow.CheckoutService) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Checkout = svc
	}
}

func WithLogger(logger *log.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
