package flow

import (
	"errors"
	"fmt"

	"github.com/chauffeurkit/bookform/pkg/fare"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// Waypoints returns the ordered waypoint list for the active booking type.
func (s *Session) Waypoints() []string {
	return append([]string(nil), s.waypoints[s.bookingType]...)
}

// ReturnWaypoints returns the return-leg waypoint list for the active booking
// type. It is only meaningful while round trip is enabled.
func (s *Session) ReturnWaypoints() []string {
	return append([]string(nil), s.returnWaypoints[s.bookingType]...)
}

// AddWaypoint appends an empty waypoint slot to the active booking type.
func (s *Session) AddWaypoint() int {
	s.waypoints[s.bookingType] = append(s.waypoints[s.bookingType], "")
	return len(s.waypoints[s.bookingType]) - 1
}

// SetWaypoint stores the geocoded value of one waypoint.
func (s *Session) SetWaypoint(index int, value string) error {
	list := s.waypoints[s.bookingType]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("flow: waypoint index %d out of range", index)
	}
	list[index] = value
	return nil
}

// RemoveWaypoint deletes one waypoint, preserving order of the rest.
func (s *Session) RemoveWaypoint(index int) error {
	list := s.waypoints[s.bookingType]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("flow: waypoint index %d out of range", index)
	}
	s.waypoints[s.bookingType] = append(list[:index], list[index+1:]...)
	return nil
}

// AddReturnWaypoint appends a return-leg waypoint slot. Round trip must be
// enabled.
func (s *Session) AddReturnWaypoint() (int, error) {
	if !s.roundTrip {
		return 0, errors.New("flow: return waypoints need round trip enabled")
	}
	s.returnWaypoints[s.bookingType] = append(s.returnWaypoints[s.bookingType], "")
	return len(s.returnWaypoints[s.bookingType]) - 1, nil
}

// SetReturnWaypoint stores the geocoded value of one return-leg waypoint.
func (s *Session) SetReturnWaypoint(index int, value string) error {
	list := s.returnWaypoints[s.bookingType]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("flow: return waypoint index %d out of range", index)
	}
	list[index] = value
	return nil
}

// RemoveReturnWaypoint deletes one return-leg waypoint.
func (s *Session) RemoveReturnWaypoint(index int) error {
	list := s.returnWaypoints[s.bookingType]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("flow: return waypoint index %d out of range", index)
	}
	s.returnWaypoints[s.bookingType] = append(list[:index], list[index+1:]...)
	return nil
}

// SetRoundTrip toggles the round-trip flag. Booking types that do not support
// round trips ignore the toggle; disabling clears the return waypoint list.
func (s *Session) SetRoundTrip(enabled bool) {
	if enabled && !s.bookingType.SupportsRoundTrip() {
		return
	}
	s.roundTrip = enabled
	if !enabled {
		s.returnWaypoints[s.bookingType] = nil
	}
}

// RoundTrip reports the round-trip flag.
func (s *Session) RoundTrip() bool { return s.roundTrip }

// ExtraQuantity returns the selected quantity for an extra option.
func (s *Session) ExtraQuantity(name string) int { return s.extras[name] }

// Extras returns a copy of the selected extra-option quantities.
func (s *Session) Extras() map[string]int {
	out := make(map[string]int, len(s.extras))
	for name, quantity := range s.extras {
		out[name] = quantity
	}
	return out
}

// StepExtra adjusts an extra-option quantity by delta, clamped to the option's
// [min, max]. Reaching min when min is zero removes the option from the
// selection entirely.
func (s *Session) StepExtra(name string, delta int) error {
	option, ok := s.extraOption(name)
	if !ok {
		return fmt.Errorf("flow: unknown extra option %q", name)
	}

	quantity, selected := s.extras[name]
	if !selected {
		quantity = option.Min
	}
	quantity += delta
	if quantity < option.Min {
		quantity = option.Min
	}
	if quantity > option.Max {
		quantity = option.Max
	}

	if quantity == 0 && option.Min == 0 {
		delete(s.extras, name)
		return nil
	}
	s.extras[name] = quantity
	return nil
}

func (s *Session) extraOption(name string) (extra struct {
	Min, Max int
}, ok bool) {
	for _, option := range s.def.Customizations.EnabledExtras() {
		if option.Name == name {
			extra.Min, extra.Max = option.Min, option.Max
			return extra, true
		}
	}
	return extra, false
}

// Fare computes the current fare from step-1 data. The second return value is
// false while required inputs are missing and the fare display should stay
// suppressed.
func (s *Session) Fare() (fare.Quote, bool) {
	quote, err := s.calc.Quote(s.fareInput())
	if err != nil {
		return fare.Quote{}, false
	}
	return quote, true
}

func (s *Session) fareInput() fare.Input {
	var hours float64
	for _, field := range s.def.Fields.Section(s.bookingType) {
		if field.Role == schema.RoleRentalHours {
			hours = parseHours(s.sectionValue(s.bookingType, field.Key))
		}
	}
	return fare.Input{
		Type:        s.bookingType,
		Pickup:      s.roleValue(schema.RolePickupAddress),
		Dropoff:     s.roleValue(schema.RoleDropoffAddress),
		Waypoints:   nonEmpty(s.waypoints[s.bookingType]),
		RentalHours: hours,
		RouteID:     s.routeID,
		RoundTrip:   s.roundTrip,
		Extras:      s.extras,
	}
}

func (s *Session) roleValue(role schema.FieldRole) string {
	for _, field := range s.def.Fields.Section(s.bookingType) {
		if field.Role == role {
			return s.sectionValue(s.bookingType, field.Key)
		}
	}
	return ""
}

func parseHours(raw string) float64 {
	var hours float64
	if _, err := fmt.Sscanf(raw, "%f", &hours); err != nil {
		return 0
	}
	return hours
}

func nonEmpty(values []string) []string {
	var out []string
	for _, value := range values {
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
