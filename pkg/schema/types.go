package schema

import "strings"

// BookingType selects one of the fixed booking categories. Each type owns an
// ordered field section; SectionCommon renders on every type's passenger step.
type BookingType string

const (
	SectionCommon              BookingType = "common"
	BookingTypeDistance        BookingType = "distance"
	BookingTypeHourly          BookingType = "hourly"
	BookingTypeFlatRate        BookingType = "flat_rate"
	BookingTypeOnDemand        BookingType = "on_demand"
	BookingTypeCharter         BookingType = "charter"
	BookingTypeAirportTransfer BookingType = "airport_transfer"
	BookingTypeEventShuttle    BookingType = "event_shuttle"
)

// BookingTypes returns the selectable booking types in their canonical order.
// SectionCommon is not selectable and therefore excluded.
func BookingTypes() []BookingType {
	return []BookingType{
		BookingTypeDistance,
		BookingTypeHourly,
		BookingTypeFlatRate,
		BookingTypeOnDemand,
		BookingTypeCharter,
		BookingTypeAirportTransfer,
		BookingTypeEventShuttle,
	}
}

// Valid reports whether t is a known selectable booking type.
func (t BookingType) Valid() bool {
	for _, known := range BookingTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// SupportsRoundTrip reports whether the round-trip toggle is offered. Hourly
// rentals are billed by time, so a return leg never changes the fare.
func (t BookingType) SupportsRoundTrip() bool {
	return t.Valid() && t != BookingTypeHourly
}

// SupportsNotes reports whether the free-text notes control is offered.
func (t BookingType) SupportsNotes() bool {
	return t == BookingTypeHourly
}

// DistanceBased reports whether the fare derives from estimated distance and
// duration rather than a fixed or hourly rate.
func (t BookingType) DistanceBased() bool {
	switch t {
	case BookingTypeDistance, BookingTypeOnDemand, BookingTypeCharter,
		BookingTypeAirportTransfer, BookingTypeEventShuttle:
		return true
	}
	return false
}

// Label returns a human-readable name for selector buttons and step titles.
func (t BookingType) Label() string {
	switch t {
	case BookingTypeDistance:
		return "Distance"
	case BookingTypeHourly:
		return "Hourly"
	case BookingTypeFlatRate:
		return "Flat Rate"
	case BookingTypeOnDemand:
		return "On Demand"
	case BookingTypeCharter:
		return "Charter"
	case BookingTypeAirportTransfer:
		return "Airport Transfer"
	case BookingTypeEventShuttle:
		return "Event Shuttle"
	}
	words := strings.Split(strings.ReplaceAll(string(t), "_", " "), " ")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

// FieldKind is the discriminant for renderer selection. Every kind maps to
// exactly one control representation; there is no fallback pattern matching on
// labels or keys.
type FieldKind string

const (
	KindShortText   FieldKind = "short-text"
	KindLongText    FieldKind = "long-text"
	KindDropdown    FieldKind = "dropdown"
	KindDateTime    FieldKind = "date-time"
	KindNumber      FieldKind = "number"
	KindCheckbox    FieldKind = "checkbox"
	KindRadio       FieldKind = "radio"
	KindVehicleType FieldKind = "vehicle-type"
)

// Valid reports whether k is a known field kind.
func (k FieldKind) Valid() bool {
	switch k {
	case KindShortText, KindLongText, KindDropdown, KindDateTime,
		KindNumber, KindCheckbox, KindRadio, KindVehicleType:
		return true
	}
	return false
}

// WantsOptions reports whether the kind requires an options list.
func (k FieldKind) WantsOptions() bool {
	switch k {
	case KindDropdown, KindRadio:
		return true
	}
	return false
}

// FieldRole marks fields with runtime behavior beyond their control kind:
// address fields mount a geocoder widget, rental-hours feeds the hourly fare.
type FieldRole string

const (
	RoleNone            FieldRole = ""
	RolePickupAddress   FieldRole = "pickup_address"
	RoleDropoffAddress  FieldRole = "dropoff_address"
	RoleWaypointAddress FieldRole = "waypoint_address"
	RoleRentalHours     FieldRole = "rental_hours"
)

// Address reports whether the role mounts a geocoder widget instead of a
// plain input.
func (r FieldRole) Address() bool {
	switch r {
	case RolePickupAddress, RoleDropoffAddress, RoleWaypointAddress:
		return true
	}
	return false
}

// InferRole derives a role from a submission key for configurations authored
// before roles were explicit. Explicit roles always win; this only backfills.
func InferRole(key string) FieldRole {
	switch {
	case strings.Contains(key, "pickup_location"):
		return RolePickupAddress
	case strings.Contains(key, "dropoff_location"):
		return RoleDropoffAddress
	case strings.Contains(key, "waypoint"):
		return RoleWaypointAddress
	case key == "rental_hours":
		return RoleRentalHours
	}
	return RoleNone
}

// Condition makes a field visible only while the controlling field's current
// value equals Value. Hidden fields drop out of the required-field check.
type Condition struct {
	FieldKey string `json:"fieldKey" yaml:"fieldKey"`
	Value    string `json:"value" yaml:"value"`
}

// FormField is a single input definition inside a booking-type section.
type FormField struct {
	ID          string     `json:"id" yaml:"id"`
	Key         string     `json:"key" yaml:"key"`
	Kind        FieldKind  `json:"type" yaml:"type"`
	Role        FieldRole  `json:"role,omitempty" yaml:"role,omitempty"`
	Label       string     `json:"label" yaml:"label"`
	Placeholder string     `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []string   `json:"options,omitempty" yaml:"options,omitempty"`
	Required    bool       `json:"required" yaml:"required"`
	Conditional *Condition `json:"conditionalLogic,omitempty" yaml:"conditionalLogic,omitempty"`
}

// FormStructure maps each booking-type section to its ordered field list.
type FormStructure map[BookingType][]FormField

// Section returns the ordered fields for a booking type, never nil.
func (s FormStructure) Section(t BookingType) []FormField {
	if s == nil {
		return nil
	}
	return s[t]
}

// Field finds a field by submission key inside one section.
func (s FormStructure) Field(t BookingType, key string) (FormField, bool) {
	for _, field := range s.Section(t) {
		if field.Key == key {
			return field, true
		}
	}
	return FormField{}, false
}

// HasField reports whether a section declares the given submission key.
func (s FormStructure) HasField(t BookingType, key string) bool {
	_, ok := s.Field(t, key)
	return ok
}
