package embedserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/fare"
	"github.com/chauffeurkit/bookform/pkg/flow"
	"github.com/chauffeurkit/bookform/pkg/render"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

type errorResponse struct {
	Error string `json:"error"`
}

type bookingResponse struct {
	ID string `json:"id"`
}

type checkoutRequest struct {
	BookingID string               `json:"booking_id"`
	Method    config.PaymentMethod `json:"method"`
	Amount    float64              `json:"amount"`
	Currency  string               `json:"currency"`
}

type checkoutResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// formHandler serves the compiled document. Locale and padding arrive as
// query parameters; an invalid padding value is rejected before rendering.
func (c *Component) formHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		padding, err := render.ValidatePadding(r.URL.Query().Get("padding"))
		if err != nil {
			c.metrics.rendersTotal.WithLabelValues("invalid").Inc()
			writeError(w, http.StatusBadRequest, err)
			return
		}

		doc, err := c.opts.Renderer.Render(r.Context(), c.opts.Definition, render.Options{
			Locale:  r.URL.Query().Get("locale"),
			Padding: padding,
		})
		if err != nil {
			c.metrics.rendersTotal.WithLabelValues("error").Inc()
			c.opts.Logger.Error("render failed", "err", err)
			writeError(w, http.StatusInternalServerError, errors.New("render failed"))
			return
		}

		c.metrics.rendersTotal.WithLabelValues("ok").Inc()
		w.Header().Set("Content-Type", c.opts.Renderer.ContentType())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
	})
}

// bookingHandler accepts a submission, re-validates it against the stored
// definition, and creates the booking. Client-side checks are advisory only.
func (c *Component) bookingHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var booking flow.Booking
		if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
			c.metrics.bookingsTotal.WithLabelValues("invalid").Inc()
			writeError(w, http.StatusBadRequest, errors.New("malformed booking payload"))
			return
		}

		if err := c.validateBooking(booking); err != nil {
			c.metrics.bookingsTotal.WithLabelValues("rejected").Inc()
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}

		// The submitted fare is advisory; the stored booking carries the
		// server-side quote.
		if quote, err := c.quoteBooking(booking); err == nil {
			booking.Fare = quote
		}

		id, err := c.opts.Bookings.CreateBooking(r.Context(), booking)
		if err != nil {
			c.metrics.bookingsTotal.WithLabelValues("error").Inc()
			c.opts.Logger.Error("create booking failed", "err", err)
			writeError(w, http.StatusBadGateway, errors.New("booking could not be created"))
			return
		}

		c.metrics.bookingsTotal.WithLabelValues("ok").Inc()
		c.opts.Logger.Info("booking created", "id", id, "type", booking.Type, "payment", booking.Payment)
		writeJSON(w, http.StatusCreated, bookingResponse{ID: id})
	})
}

// checkoutHandler exchanges a created booking for a provider redirect URL.
func (c *Component) checkoutHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			c.metrics.checkoutTotal.WithLabelValues("unknown", "invalid").Inc()
			writeError(w, http.StatusBadRequest, errors.New("malformed checkout payload"))
			return
		}
		if req.BookingID == "" || !req.Method.Valid() || req.Method == config.PaymentCash {
			c.metrics.checkoutTotal.WithLabelValues(string(req.Method), "rejected").Inc()
			writeError(w, http.StatusUnprocessableEntity, errors.New("checkout requires a booking id and an online payment method"))
			return
		}
		if c.opts.Checkout == nil {
			c.metrics.checkoutTotal.WithLabelValues(string(req.Method), "unavailable").Inc()
			writeError(w, http.StatusNotImplemented, errors.New("online payment is not configured"))
			return
		}

		redirectURL, err := c.opts.Checkout.InitiateCheckout(r.Context(), flow.CheckoutRequest{
			BookingID: req.BookingID,
			Method:    req.Method,
			Amount:    req.Amount,
			Currency:  req.Currency,
		})
		if err != nil {
			c.metrics.checkoutTotal.WithLabelValues(string(req.Method), "error").Inc()
			c.opts.Logger.Error("checkout failed", "booking", req.BookingID, "err", err)
			writeError(w, http.StatusBadGateway, errors.New("payment could not be initiated"))
			return
		}

		c.metrics.checkoutTotal.WithLabelValues(string(req.Method), "ok").Inc()
		writeJSON(w, http.StatusOK, checkoutResponse{RedirectURL: redirectURL})
	})
}

// validateBooking mirrors the wizard's step guards on the server side:
// enabled type, required visible fields, known route/vehicle, offered payment.
func (c *Component) validateBooking(booking flow.Booking) error {
	def := c.opts.Definition
	custom := def.Customizations

	if !custom.TypeEnabled(booking.Type) {
		return fmt.Errorf("booking type %q is not offered", booking.Type)
	}
	if !custom.PaymentOffered(booking.Payment) {
		return fmt.Errorf("payment method %q is not offered", booking.Payment)
	}
	if booking.Type == schema.BookingTypeFlatRate {
		if _, ok := def.RouteByID(booking.RouteID); !ok {
			return errors.New("flat rate bookings require a known route")
		}
	}
	if booking.VehicleID != "" {
		if _, ok := def.VehicleByID(booking.VehicleID); !ok {
			return fmt.Errorf("unknown vehicle %q", booking.VehicleID)
		}
	} else if len(def.Vehicles) > 0 {
		return errors.New("a vehicle selection is required")
	}

	for _, section := range []schema.BookingType{booking.Type, schema.SectionCommon} {
		for _, field := range def.Fields.Section(section) {
			if !field.Required || field.Key == "" {
				continue
			}
			if cond := field.Conditional; cond != nil && booking.Values[cond.FieldKey] != cond.Value {
				continue
			}
			if booking.Values[field.Key] == "" {
				return fmt.Errorf("missing required field %q", field.Key)
			}
		}
	}

	for name, qty := range booking.Extras {
		extra, ok := extraByName(custom.EnabledExtras(), name)
		if !ok {
			return fmt.Errorf("unknown extra option %q", name)
		}
		if qty < extra.Min || qty > extra.Max {
			return fmt.Errorf("extra option %q quantity out of range", name)
		}
	}
	return nil
}

// quoteBooking re-prices a submitted booking with the component's estimator.
func (c *Component) quoteBooking(booking flow.Booking) (fare.Quote, error) {
	def := c.opts.Definition
	in := fare.Input{
		Type:      booking.Type,
		Waypoints: booking.Waypoints,
		RouteID:   booking.RouteID,
		RoundTrip: booking.RoundTrip,
		Extras:    booking.Extras,
	}
	for _, field := range def.Fields.Section(booking.Type) {
		switch field.Role {
		case schema.RolePickupAddress:
			in.Pickup = booking.Values[field.Key]
		case schema.RoleDropoffAddress:
			in.Dropoff = booking.Values[field.Key]
		case schema.RoleRentalHours:
			in.RentalHours, _ = strconv.ParseFloat(booking.Values[field.Key], 64)
		}
	}
	return fare.NewCalculator(def, c.opts.Estimator).Quote(in)
}

func extraByName(extras []config.ExtraOption, name string) (config.ExtraOption, bool) {
	for _, extra := range extras {
		if extra.Name == name {
			return extra, true
		}
	}
	return config.ExtraOption{}, false
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(body)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}
