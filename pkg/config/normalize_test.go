package config

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chauffeurkit/bookform/pkg/schema"
)

func TestNormalizeEmptyDefinition(t *testing.T) {
	def, err := Normalize(Definition{})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if def.Customizations.Title != "Book Your Ride" {
		t.Errorf("default title missing, got %q", def.Customizations.Title)
	}
	if diff := cmp.Diff([]string{"en"}, def.Customizations.Languages); diff != "" {
		t.Errorf("languages mismatch (-want +got):\n%s", diff)
	}
	if len(def.Fields.Section(schema.SectionCommon)) == 0 {
		t.Error("default common section missing")
	}
	if def.Pricing.Currency != "USD" {
		t.Errorf("default currency missing, got %q", def.Pricing.Currency)
	}
}

func TestNormalizeLoadedWinsOverDefaults(t *testing.T) {
	def, err := Normalize(Definition{
		Customizations: Customization{
			Title:        "Airport Rides",
			AccentColor:  "#A1B2C3",
			EnabledTypes: []schema.BookingType{schema.BookingTypeAirportTransfer},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if def.Customizations.Title != "Airport Rides" {
		t.Errorf("loaded title lost, got %q", def.Customizations.Title)
	}
	if def.Customizations.AccentColor != "#A1B2C3" {
		t.Errorf("valid accent replaced, got %q", def.Customizations.AccentColor)
	}
	if diff := cmp.Diff([]schema.BookingType{schema.BookingTypeAirportTransfer}, def.Customizations.EnabledTypes); diff != "" {
		t.Errorf("enabled types mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeSanitizesMarkup(t *testing.T) {
	def, err := Normalize(Definition{
		Customizations: Customization{
			Title: `Book <script>alert(1)</script> Now`,
		},
		Fields: schema.FormStructure{
			schema.BookingTypeDistance: {
				{Key: "pickup_location", Label: `<b>Pickup</b>`, Required: true},
			},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if strings.Contains(def.Customizations.Title, "<") {
		t.Errorf("title not sanitized: %q", def.Customizations.Title)
	}
	field, ok := def.Fields.Field(schema.BookingTypeDistance, "pickup_location")
	if !ok {
		t.Fatal("pickup_location field missing after normalize")
	}
	if field.Label != "Pickup" {
		t.Errorf("label not sanitized: %q", field.Label)
	}
}

func TestNormalizeFieldBackfills(t *testing.T) {
	def, err := Normalize(Definition{
		Fields: schema.FormStructure{
			schema.BookingTypeDistance: {
				{Key: "pickup_location", Label: "Pickup", Required: true},
				{Key: "rental_hours", Label: "Hours"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	pickup, _ := def.Fields.Field(schema.BookingTypeDistance, "pickup_location")
	if pickup.Kind != schema.KindShortText {
		t.Errorf("empty kind should default to short-text, got %q", pickup.Kind)
	}
	if pickup.Role != schema.RolePickupAddress {
		t.Errorf("role not inferred, got %q", pickup.Role)
	}
	if pickup.ID != "distance-pickup_location" {
		t.Errorf("id not backfilled, got %q", pickup.ID)
	}
	hours, _ := def.Fields.Field(schema.BookingTypeDistance, "rental_hours")
	if hours.Role != schema.RoleRentalHours {
		t.Errorf("rental hours role not inferred, got %q", hours.Role)
	}
}

func TestNormalizeInvalidAccentFallsBack(t *testing.T) {
	for _, raw := range []string{"blue", "#12", "#12345g", "rgb(1,2,3)"} {
		def, err := Normalize(Definition{Customizations: Customization{AccentColor: raw}})
		if err != nil {
			t.Fatalf("Normalize(%q): %v", raw, err)
		}
		if def.Customizations.AccentColor != DefaultAccentColor {
			t.Errorf("accent %q should fall back, got %q", raw, def.Customizations.AccentColor)
		}
	}
}

func TestNormalizeExtraOptionBounds(t *testing.T) {
	def, err := Normalize(Definition{
		Customizations: Customization{
			ExtraOptions: []ExtraOption{
				{Name: "Child Seat", Price: 5, Enabled: true, Min: -2, Max: 0},
				{Name: "", Price: 3, Enabled: true},
				{Name: "Champagne", Price: 30, Enabled: true, Min: 4, Max: 2},
			},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	extras := def.Customizations.ExtraOptions
	if len(extras) != 2 {
		t.Fatalf("nameless extra should be dropped, got %d extras", len(extras))
	}
	if extras[0].Min != 0 || extras[0].Max != 10 {
		t.Errorf("bounds not repaired: min=%d max=%d", extras[0].Min, extras[0].Max)
	}
	if extras[1].Max != extras[1].Min {
		t.Errorf("max below min should clamp to min: min=%d max=%d", extras[1].Min, extras[1].Max)
	}
}

func TestNormalizeLayoutEnums(t *testing.T) {
	def, err := Normalize(Definition{
		Customizations: Customization{
			Layout: LayoutSettings{
				ContainerStyle: "neon",
				ButtonStyle:    "ghost",
				ButtonPosition: "bottom",
				CornerRadius:   99,
			},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	layout := def.Customizations.Layout
	if layout.ContainerStyle != "shadow" || layout.ButtonStyle != "filled" || layout.ButtonPosition != "right" {
		t.Errorf("enum fallbacks wrong: %+v", layout)
	}
	if layout.CornerRadius != 32 {
		t.Errorf("corner radius should clamp to 32, got %d", layout.CornerRadius)
	}
}

func TestNormalizeDropsInvalidSnapshots(t *testing.T) {
	def, err := Normalize(Definition{
		Routes: []Route{
			{ID: "r1", RouteName: "Airport - Downtown", FixedPrice: 80},
			{ID: "", RouteName: "Orphan", FixedPrice: 10},
		},
		Vehicles: []Vehicle{
			{ID: "v1", Name: "Sedan"},
			{ID: "v2", Name: ""},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(def.Routes) != 1 || def.Routes[0].ID != "r1" {
		t.Errorf("invalid route kept: %+v", def.Routes)
	}
	if len(def.Vehicles) != 1 || def.Vehicles[0].ID != "v1" {
		t.Errorf("invalid vehicle kept: %+v", def.Vehicles)
	}
}

func TestSetTypeEnabled(t *testing.T) {
	custom := Customization{EnabledTypes: []schema.BookingType{schema.BookingTypeDistance}}

	if custom.SetTypeEnabled(schema.BookingTypeDistance, false) {
		t.Error("disabling the last enabled type must be a no-op")
	}
	if !custom.TypeEnabled(schema.BookingTypeDistance) {
		t.Fatal("last type was removed")
	}

	if !custom.SetTypeEnabled(schema.BookingTypeHourly, true) {
		t.Error("enabling a new type should report a change")
	}
	if custom.SetTypeEnabled(schema.BookingTypeHourly, true) {
		t.Error("enabling an already-enabled type should be a no-op")
	}
	if !custom.SetTypeEnabled(schema.BookingTypeDistance, false) {
		t.Error("disabling with another type still enabled should work")
	}
	if custom.SetTypeEnabled("teleport", true) {
		t.Error("unknown types must be rejected")
	}
}

func TestVisibleDefaultsTrue(t *testing.T) {
	if !Visible(nil) {
		t.Error("nil flag should mean visible")
	}
	off := false
	if Visible(&off) {
		t.Error("explicit false should mean hidden")
	}
}
