package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/fare"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// ErrSubmissionInProgress guards against duplicate submissions while one is
// already in flight.
var ErrSubmissionInProgress = errors.New("flow: submission already in progress")

// Booking is the collected payload handed to the booking service.
type Booking struct {
	Type            schema.BookingType  `json:"booking_type"`
	Values          map[string]string   `json:"values"`
	Waypoints       []string            `json:"waypoints,omitempty"`
	ReturnWaypoints []string            `json:"return_waypoints,omitempty"`
	RoundTrip       bool                `json:"round_trip"`
	Extras          map[string]int      `json:"extras,omitempty"`
	VehicleID       string              `json:"vehicle_id,omitempty"`
	RouteID         string              `json:"route_id,omitempty"`
	Payment         config.PaymentMethod `json:"payment_method"`
	Fare            fare.Quote          `json:"fare"`
}

// BookingService creates a booking record and returns its identifier. It is an
// external collaborator; the wizard only consumes the interface.
type BookingService interface {
	CreateBooking(ctx context.Context, booking Booking) (string, error)
}

// CheckoutRequest exchanges a booking for a provider redirect URL.
type CheckoutRequest struct {
	BookingID string
	Method    config.PaymentMethod
	Amount    float64
	Currency  string
}

// CheckoutService initiates a hosted checkout with an external payment
// provider and returns the redirect URL.
type CheckoutService interface {
	InitiateCheckout(ctx context.Context, req CheckoutRequest) (string, error)
}

// Result is the outcome of a successful submission. RedirectURL is set for
// card and PayPal payments; the embedding page navigates the top-level window
// there.
type Result struct {
	BookingID   string
	RedirectURL string
}

// Submit re-validates every guard, creates the booking, and dispatches the
// selected payment method. Cash advances straight to the confirmation step;
// card and PayPal return a provider redirect URL. Any failure surfaces an
// error message and leaves the session on the summary step with all entered
// data intact.
func (s *Session) Submit(ctx context.Context, bookings BookingService, checkout CheckoutService) (Result, error) {
	if s.submitting {
		return Result{}, ErrSubmissionInProgress
	}
	if s.step != StepSummary {
		return Result{}, fmt.Errorf("flow: submit from %s", s.step)
	}
	if bookings == nil {
		return Result{}, errors.New("flow: booking service is required")
	}

	for _, guard := range []func() error{s.guardTripDetails, s.guardVehicle, s.guardPassenger} {
		if err := guard(); err != nil {
			return Result{}, err
		}
	}

	quote, ok := s.Fare()
	if !ok {
		return Result{}, s.fail(StepSummary, nil)
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	booking := s.buildBooking(quote)
	bookingID, err := bookings.CreateBooking(ctx, booking)
	if err != nil {
		s.lastError = "flow: booking could not be created"
		return Result{}, fmt.Errorf("flow: create booking: %w", err)
	}

	if s.payment == config.PaymentCash {
		s.step = StepConfirmation
		s.lastError = ""
		return Result{BookingID: bookingID}, nil
	}

	if checkout == nil {
		s.lastError = "flow: online payment is unavailable"
		return Result{}, errors.New("flow: checkout service is required for " + string(s.payment))
	}
	redirectURL, err := checkout.InitiateCheckout(ctx, CheckoutRequest{
		BookingID: bookingID,
		Method:    s.payment,
		Amount:    quote.Total,
		Currency:  quote.Currency,
	})
	if err != nil {
		s.lastError = "flow: payment could not be initiated"
		return Result{}, fmt.Errorf("flow: initiate %s checkout: %w", s.payment, err)
	}

	s.lastError = ""
	return Result{BookingID: bookingID, RedirectURL: redirectURL}, nil
}

func (s *Session) buildBooking(quote fare.Quote) Booking {
	values := make(map[string]string)
	for _, section := range []schema.BookingType{s.bookingType, schema.SectionCommon} {
		for _, field := range s.VisibleFields(section) {
			if field.Key == "" {
				continue
			}
			if value := s.sectionValue(section, field.Key); value != "" {
				values[field.Key] = value
			}
		}
	}
	return Booking{
		Type:            s.bookingType,
		Values:          values,
		Waypoints:       nonEmpty(s.waypoints[s.bookingType]),
		ReturnWaypoints: nonEmpty(s.returnWaypoints[s.bookingType]),
		RoundTrip:       s.roundTrip,
		Extras:          s.Extras(),
		VehicleID:       s.vehicleID,
		RouteID:         s.routeID,
		Payment:         s.payment,
		Fare:            quote,
	}
}
