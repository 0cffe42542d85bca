// Package flow models the booking wizard's runtime session: step transitions
// with guards, conditional field visibility, fare recomputation, waypoint and
// extra-option management, and submission dispatch. The embedded browser
// script mirrors these semantics; this package is the authoritative model and
// backs server-side re-validation.
package flow

import (
	"fmt"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/fare"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// Step is one of the five wizard stages.
type Step int

const (
	StepTripDetails Step = iota + 1
	StepVehicle
	StepPassengerPayment
	StepSummary
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepTripDetails:
		return "trip-details"
	case StepVehicle:
		return "vehicle"
	case StepPassengerPayment:
		return "passenger-payment"
	case StepSummary:
		return "summary"
	case StepConfirmation:
		return "confirmation"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ValidationError is a recoverable step-guard failure. It never advances the
// wizard; the user fixes the named fields and retries.
type ValidationError struct {
	Step    Step
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("flow: step %s has unmet required fields", e.Step)
}

// Session is the ephemeral wizard state for one rendered document. It is
// created on load, mutated only by interaction handlers, and discarded on
// unload; nothing here persists.
type Session struct {
	def  *config.Definition
	calc *fare.Calculator

	step        Step
	bookingType schema.BookingType
	language    string

	// values holds entered field values per section so switching booking
	// types and back retains input. SectionCommon holds the passenger step.
	values map[schema.BookingType]map[string]string

	waypoints       map[schema.BookingType][]string
	returnWaypoints map[schema.BookingType][]string
	roundTrip       bool

	extras    map[string]int
	vehicleID string
	payment   config.PaymentMethod
	routeID   string

	lastError  string
	submitting bool
}

// NewSession creates the initial session state: step 1, the first enabled
// booking type active, and the default payment category pre-selected. A nil
// estimator selects the deterministic preview estimator.
func NewSession(def *config.Definition, estimator fare.Estimator) *Session {
	s := &Session{
		def:             def,
		calc:            fare.NewCalculator(def, estimator),
		step:            StepTripDetails,
		language:        def.Customizations.DefaultLanguage,
		values:          make(map[schema.BookingType]map[string]string),
		waypoints:       make(map[schema.BookingType][]string),
		returnWaypoints: make(map[schema.BookingType][]string),
		extras:          make(map[string]int),
	}
	if types := def.Customizations.EnabledTypes; len(types) > 0 {
		s.bookingType = types[0]
	}
	if method, ok := def.Customizations.DefaultPaymentMethod(); ok {
		s.payment = method
	}
	return s
}

// Step returns the current wizard stage.
func (s *Session) Step() Step { return s.step }

// BookingType returns the active booking type.
func (s *Session) BookingType() schema.BookingType { return s.bookingType }

// Language returns the active language.
func (s *Session) Language() string { return s.language }

// SetLanguage switches the active language; unknown languages are ignored.
func (s *Session) SetLanguage(lang string) {
	for _, known := range s.def.Customizations.Languages {
		if known == lang {
			s.language = lang
			return
		}
	}
}

// LastError returns the last surfaced validation or submission message.
func (s *Session) LastError() string { return s.lastError }

// Submitting reports whether a submission is in flight; the submit control is
// disabled while true.
func (s *Session) Submitting() bool { return s.submitting }

// SetBookingType switches the active booking type. Values entered under other
// types are retained, so switching back restores them.
func (s *Session) SetBookingType(t schema.BookingType) error {
	if !s.def.Customizations.TypeEnabled(t) {
		return fmt.Errorf("flow: booking type %q is not enabled", t)
	}
	s.bookingType = t
	if !t.SupportsRoundTrip() {
		s.roundTrip = false
		s.returnWaypoints[t] = nil
	}
	s.lastError = ""
	return nil
}

// SetValue records an entered value. The key is resolved against the active
// booking-type section first, then the common section.
func (s *Session) SetValue(key, value string) {
	section := s.bookingType
	if !s.def.Fields.HasField(section, key) && s.def.Fields.HasField(schema.SectionCommon, key) {
		section = schema.SectionCommon
	}
	if s.values[section] == nil {
		s.values[section] = make(map[string]string)
	}
	s.values[section][key] = value
}

// Value reads an entered value from the active section or the common section.
func (s *Session) Value(key string) string {
	if value, ok := s.values[s.bookingType][key]; ok {
		return value
	}
	return s.values[schema.SectionCommon][key]
}

// SetRouteID selects a flat-rate route.
func (s *Session) SetRouteID(id string) { s.routeID = id }

// RouteID returns the selected flat-rate route id.
func (s *Session) RouteID() string { return s.routeID }

// SelectVehicle picks a vehicle from the definition's snapshot.
func (s *Session) SelectVehicle(id string) error {
	if _, ok := s.def.VehicleByID(id); !ok {
		return fmt.Errorf("flow: unknown vehicle %q", id)
	}
	s.vehicleID = id
	return nil
}

// VehicleID returns the selected vehicle id.
func (s *Session) VehicleID() string { return s.vehicleID }

// SelectPayment picks an offered payment category.
func (s *Session) SelectPayment(method config.PaymentMethod) error {
	for _, offered := range s.def.Customizations.PaymentMethods() {
		if offered == method {
			s.payment = method
			return nil
		}
	}
	return fmt.Errorf("flow: payment method %q is not offered", method)
}

// Payment returns the selected payment category.
func (s *Session) Payment() config.PaymentMethod { return s.payment }

// Next advances one step when the current step's guard passes. Advancing past
// the summary goes through Submit instead.
func (s *Session) Next() error {
	switch s.step {
	case StepTripDetails:
		if err := s.guardTripDetails(); err != nil {
			return err
		}
		s.step = StepVehicle
	case StepVehicle:
		if err := s.guardVehicle(); err != nil {
			return err
		}
		s.step = StepPassengerPayment
	case StepPassengerPayment:
		if err := s.guardPassenger(); err != nil {
			return err
		}
		s.step = StepSummary
	case StepSummary:
		return fmt.Errorf("flow: submit from the summary step")
	default:
		return fmt.Errorf("flow: cannot advance from %s", s.step)
	}
	s.lastError = ""
	return nil
}

// Back returns to the immediately prior step from steps 2-4.
func (s *Session) Back() error {
	switch s.step {
	case StepVehicle, StepPassengerPayment, StepSummary:
		s.step--
		s.lastError = ""
		return nil
	}
	return fmt.Errorf("flow: cannot go back from %s", s.step)
}

// Edit jumps from the summary directly to one of the first three steps.
func (s *Session) Edit(target Step) error {
	if s.step != StepSummary {
		return fmt.Errorf("flow: edit is only available from the summary")
	}
	if target < StepTripDetails || target > StepPassengerPayment {
		return fmt.Errorf("flow: cannot edit step %s", target)
	}
	s.step = target
	s.lastError = ""
	return nil
}

func (s *Session) guardTripDetails() error {
	missing := s.MissingRequired(s.bookingType)
	if s.bookingType == schema.BookingTypeFlatRate && s.routeID == "" {
		missing = append([]string{"route"}, missing...)
	}
	if len(missing) > 0 {
		return s.fail(StepTripDetails, missing)
	}
	return nil
}

func (s *Session) guardVehicle() error {
	if len(s.def.Vehicles) == 0 {
		return nil
	}
	if s.vehicleID == "" {
		err := &ValidationError{Step: StepVehicle, Message: "flow: select a vehicle to continue"}
		s.lastError = err.Message
		return err
	}
	return nil
}

func (s *Session) guardPassenger() error {
	if missing := s.MissingRequired(schema.SectionCommon); len(missing) > 0 {
		return s.fail(StepPassengerPayment, missing)
	}
	return nil
}

func (s *Session) fail(step Step, fields []string) error {
	err := &ValidationError{Step: step, Fields: fields, Message: "flow: fill in all required fields"}
	s.lastError = err.Message
	return err
}
