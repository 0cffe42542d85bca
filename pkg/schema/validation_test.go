package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDefaultStructure(t *testing.T) {
	if err := Validate(DefaultStructure()); err != nil {
		t.Fatalf("default structure should validate, got %v", err)
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name      string
		structure FormStructure
		want      string
	}{
		{
			name: "unknown kind",
			structure: FormStructure{
				BookingTypeDistance: {{Key: "pickup", Kind: "slider"}},
			},
			want: `unknown field type "slider"`,
		},
		{
			name: "dropdown without options",
			structure: FormStructure{
				BookingTypeDistance: {{Key: "occasion", Kind: KindDropdown}},
			},
			want: "needs options",
		},
		{
			name: "bad key format",
			structure: FormStructure{
				BookingTypeDistance: {{Key: "Pickup Location", Kind: KindShortText}},
			},
			want: "lowercase/underscore",
		},
		{
			name: "duplicate key",
			structure: FormStructure{
				BookingTypeDistance: {
					{Key: "pickup", Kind: KindShortText},
					{Key: "pickup", Kind: KindShortText},
				},
			},
			want: "duplicate key",
		},
		{
			name: "condition references itself",
			structure: FormStructure{
				BookingTypeDistance: {
					{Key: "direction", Kind: KindDropdown, Options: []string{"a"},
						Conditional: &Condition{FieldKey: "direction", Value: "a"}},
				},
			},
			want: "cannot reference the field itself",
		},
		{
			name: "condition references missing field",
			structure: FormStructure{
				BookingTypeDistance: {
					{Key: "flight", Kind: KindShortText,
						Conditional: &Condition{FieldKey: "direction", Value: "From Airport"}},
				},
			},
			want: `references unknown field "direction"`,
		},
		{
			name: "condition controller without options",
			structure: FormStructure{
				BookingTypeDistance: {
					{Key: "direction", Kind: KindShortText},
					{Key: "flight", Kind: KindShortText,
						Conditional: &Condition{FieldKey: "direction", Value: "x"}},
				},
			},
			want: "neither options nor boolean values",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.structure)
			if err == nil {
				t.Fatalf("expected a violation containing %q", tc.want)
			}
			var structErr *StructureError
			if !errors.As(err, &structErr) {
				t.Fatalf("expected *StructureError, got %T", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestValidateCheckboxController(t *testing.T) {
	structure := FormStructure{
		BookingTypeDistance: {
			{Key: "child_seat", Kind: KindCheckbox},
			{Key: "seat_count", Kind: KindNumber,
				Conditional: &Condition{FieldKey: "child_seat", Value: "true"}},
		},
	}
	if err := Validate(structure); err != nil {
		t.Fatalf("checkbox controller should be allowed, got %v", err)
	}
}

func TestInferRole(t *testing.T) {
	tests := []struct {
		key  string
		want FieldRole
	}{
		{"pickup_location", RolePickupAddress},
		{"return_pickup_location", RolePickupAddress},
		{"dropoff_location", RoleDropoffAddress},
		{"waypoint_2", RoleWaypointAddress},
		{"rental_hours", RoleRentalHours},
		{"flight_number", RoleNone},
	}
	for _, tc := range tests {
		if got := InferRole(tc.key); got != tc.want {
			t.Errorf("InferRole(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestBookingTypeBehavior(t *testing.T) {
	if BookingTypeHourly.SupportsRoundTrip() {
		t.Error("hourly must not offer round trips")
	}
	if !BookingTypeHourly.SupportsNotes() {
		t.Error("hourly should offer notes")
	}
	if BookingTypeDistance.SupportsNotes() {
		t.Error("distance should not offer notes")
	}
	for _, bt := range []BookingType{BookingTypeCharter, BookingTypeAirportTransfer, BookingTypeEventShuttle} {
		if !bt.DistanceBased() {
			t.Errorf("%s should be distance based", bt)
		}
	}
	if BookingTypeFlatRate.DistanceBased() || BookingTypeHourly.DistanceBased() {
		t.Error("flat rate and hourly are not distance based")
	}
	if SectionCommon.Valid() {
		t.Error("the common section is not a selectable type")
	}
}
