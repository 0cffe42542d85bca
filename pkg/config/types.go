package config

import "github.com/chauffeurkit/bookform/pkg/schema"

// Definition is the fully-populated configuration every compiler stage
// consumes. Produce one through Normalize (or Load); nothing downstream reads
// ambient defaults on its own.
type Definition struct {
	Fields         schema.FormStructure `json:"fields" yaml:"fields"`
	Customizations Customization        `json:"customizations" yaml:"customizations"`
	Pricing        Pricing              `json:"pricing" yaml:"pricing"`
	Routes         []Route              `json:"routes" yaml:"routes"`
	Vehicles       []Vehicle            `json:"vehicles" yaml:"vehicles"`
}

// Customization holds everything an account owner can change about the form
// short of the field schema itself.
type Customization struct {
	Title           string               `json:"title" yaml:"title"`
	LogoURL         string               `json:"logo_url" yaml:"logo_url"`
	Languages       []string             `json:"languages" yaml:"languages"`
	DefaultLanguage string               `json:"default_language" yaml:"default_language"`
	PaymentIcons    []string             `json:"payment_icons" yaml:"payment_icons"`
	AccentColor     string               `json:"accent_color" yaml:"accent_color"`
	EnabledTypes    []schema.BookingType `json:"enabled_types" yaml:"enabled_types"`
	HourlyNotes     []string             `json:"hourly_notes" yaml:"hourly_notes"`
	ExtraOptions    []ExtraOption        `json:"extra_options" yaml:"extra_options"`
	Layout          LayoutSettings       `json:"layout_settings" yaml:"layout_settings"`
}

// ExtraOption is an add-on service with a per-unit price and a quantity
// bounded by [Min, Max].
type ExtraOption struct {
	Name    string  `json:"name" yaml:"name"`
	Price   float64 `json:"price" yaml:"price"`
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Min     int     `json:"min" yaml:"min"`
	Max     int     `json:"max" yaml:"max"`
}

// LayoutSettings control presentation independent of form content. Optional
// booleans are pointers so a loaded `false` survives the merge over defaults.
type LayoutSettings struct {
	ContainerStyle string `json:"container_style" yaml:"container_style"` // "shadow" or "flat"
	CornerRadius   int    `json:"corner_radius" yaml:"corner_radius"`     // px
	LightBackground string `json:"light_background" yaml:"light_background"`
	DarkBackground  string `json:"dark_background" yaml:"dark_background"`
	DarkMode        *bool  `json:"dark_mode,omitempty" yaml:"dark_mode,omitempty"`
	ButtonStyle     string `json:"button_style" yaml:"button_style"`       // "filled" or "outline"
	ButtonPosition  string `json:"button_position" yaml:"button_position"` // "left", "center", "right"

	Visibility     ComponentVisibility `json:"components_visibility" yaml:"components_visibility"`
	WaypointButton WaypointButton      `json:"waypoint_button_config" yaml:"waypoint_button_config"`
}

// ComponentVisibility toggles optional chrome. A nil flag means "use the
// default", which is visible for everything.
type ComponentVisibility struct {
	BookingTypeSelector *bool `json:"booking_type_selector,omitempty" yaml:"booking_type_selector,omitempty"`
	LanguageSelector    *bool `json:"language_selector,omitempty" yaml:"language_selector,omitempty"`
	ProgressBar         *bool `json:"progress_bar,omitempty" yaml:"progress_bar,omitempty"`
	StepTitles          *bool `json:"step_titles,omitempty" yaml:"step_titles,omitempty"`
	FareDisplay         *bool `json:"fare_display,omitempty" yaml:"fare_display,omitempty"`
}

// WaypointButton configures the inline "add waypoint" affordance.
type WaypointButton struct {
	Enabled           *bool                `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	EnabledForTypes   []schema.BookingType `json:"enabled_for_types" yaml:"enabled_for_types"`
	DisplayAfterField string               `json:"display_after_field" yaml:"display_after_field"`
}

// Pricing is the read-only rate snapshot supplied by the persistence layer.
type Pricing struct {
	Currency    string  `json:"currency" yaml:"currency"`
	BaseFare    float64 `json:"base_fare" yaml:"base_fare"`
	CostPerKm   float64 `json:"cost_per_km" yaml:"cost_per_km"`
	CostPerMin  float64 `json:"cost_per_min" yaml:"cost_per_min"`
	CostPerHour float64 `json:"cost_per_hour" yaml:"cost_per_hour"`
}

// Route is a predefined origin-destination pairing with a fixed price.
type Route struct {
	ID         string  `json:"id" yaml:"id"`
	RouteName  string  `json:"route_name" yaml:"route_name"`
	FixedPrice float64 `json:"fixed_price" yaml:"fixed_price"`
}

// Vehicle is a selectable vehicle snapshot.
type Vehicle struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Model    string  `json:"model" yaml:"model"`
	RatePerKm float64 `json:"rate_per_km" yaml:"rate_per_km"`
	Capacity int     `json:"capacity" yaml:"capacity"`
	ImageURL string  `json:"image_url" yaml:"image_url"`
}

// Visible resolves an optional flag against its default.
func Visible(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

// RouteByID finds a flat-rate route.
func (d *Definition) RouteByID(id string) (Route, bool) {
	for _, route := range d.Routes {
		if route.ID == id {
			return route, true
		}
	}
	return Route{}, false
}

// VehicleByID finds a vehicle snapshot.
func (d *Definition) VehicleByID(id string) (Vehicle, bool) {
	for _, vehicle := range d.Vehicles {
		if vehicle.ID == id {
			return vehicle, true
		}
	}
	return Vehicle{}, false
}

// EnabledExtras returns the extra options offered to customers.
func (c Customization) EnabledExtras() []ExtraOption {
	var out []ExtraOption
	for _, extra := range c.ExtraOptions {
		if extra.Enabled {
			out = append(out, extra)
		}
	}
	return out
}

// WaypointsEnabledFor reports whether the waypoint affordance applies to a
// booking type.
func (c Customization) WaypointsEnabledFor(t schema.BookingType) bool {
	if !Visible(c.Layout.WaypointButton.Enabled) {
		return false
	}
	for _, enabled := range c.Layout.WaypointButton.EnabledForTypes {
		if enabled == t {
			return true
		}
	}
	return false
}

// TypeEnabled reports whether a booking type is offered.
func (c Customization) TypeEnabled(t schema.BookingType) bool {
	for _, enabled := range c.EnabledTypes {
		if enabled == t {
			return true
		}
	}
	return false
}
