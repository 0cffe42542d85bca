package embedserver

import (
	"errors"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the component's routes on an existing router. Callers
// that use this instead of Handler bring their own CORS, recovery, and request
// logging.
func (c *Component) RegisterRoutes(r *mux.Router) {
	r.Handle(c.opts.FormPath, c.guarded(c.formHandler())).Methods(http.MethodGet, http.MethodHead)
	r.Handle(c.opts.BookingPath, c.guarded(c.bookingHandler())).Methods(http.MethodPost)
	r.Handle(c.opts.CheckoutPath, c.guarded(c.checkoutHandler())).Methods(http.MethodPost)
	r.Handle(c.opts.MetricsPath, promhttp.HandlerFor(c.metrics.registry, promhttp.HandlerOpts{}))
	r.Handle(c.opts.HealthPath, c.healthHandler()).Methods(http.MethodGet, http.MethodHead)
}

// router assembles the mux with CORS, panic recovery, and request logging
// around every route. The form is iframed cross-origin, so CORS headers apply
// to the API routes the embedded script calls.
func (c *Component) router() http.Handler {
	r := mux.NewRouter()
	c.RegisterRoutes(r)

	cors := handlers.CORS(
		handlers.AllowedOrigins(c.opts.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return handlers.RecoveryHandler()(cors(c.logRequests(r)))
}

// guarded runs the configured guard hook before the wrapped handler. The
// metrics and health routes stay unguarded.
func (c *Component) guarded(next http.Handler) http.Handler {
	if c.opts.Guard == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := c.opts.Guard(r); err != nil {
			code := http.StatusForbidden
			var httpErr HTTPError
			if errors.As(err, &httpErr) && httpErr.StatusCode() > 0 {
				code = httpErr.StatusCode()
			}
			writeError(w, code, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *Component) healthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

func (c *Component) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.opts.Logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
