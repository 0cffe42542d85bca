package config

import (
	"fmt"
	"regexp"
	"strings"

	"dario.cat/mergo"
	"github.com/microcosm-cc/bluemonday"

	"github.com/chauffeurkit/bookform/pkg/schema"
)

var (
	accentPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	// sanitizer strips markup from every user-authored string before it can
	// reach the compiled document.
	sanitizer = bluemonday.StrictPolicy()
)

// Normalize merges a loaded (possibly partial) definition over the compiled-in
// defaults and repairs the result until every invariant holds. Precedence is
// loaded over default, never the reverse. The returned value is the single
// authoritative configuration; consumers never reach for Defaults themselves.
func Normalize(loaded Definition) (*Definition, error) {
	def := Defaults()
	if err := mergo.Merge(&def, loaded, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("config: merge over defaults: %w", err)
	}

	normalizeCustomization(&def.Customizations)
	normalizeFields(def.Fields)
	normalizeSnapshots(&def)

	if err := schema.Validate(def.Fields); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &def, nil
}

func normalizeCustomization(c *Customization) {
	c.Title = sanitize(c.Title)
	if c.Title == "" {
		c.Title = Defaults().Customizations.Title
	}
	c.LogoURL = strings.TrimSpace(c.LogoURL)

	c.Languages = dedupeStrings(c.Languages)
	if len(c.Languages) == 0 {
		c.Languages = []string{"en"}
	}
	if !containsString(c.Languages, c.DefaultLanguage) {
		c.DefaultLanguage = c.Languages[0]
	}

	c.EnabledTypes = dedupeTypes(c.EnabledTypes)
	if len(c.EnabledTypes) == 0 {
		c.EnabledTypes = Defaults().Customizations.EnabledTypes
	}

	if !accentPattern.MatchString(strings.TrimSpace(c.AccentColor)) {
		c.AccentColor = DefaultAccentColor
	} else {
		c.AccentColor = strings.TrimSpace(c.AccentColor)
	}

	for i, note := range c.HourlyNotes {
		c.HourlyNotes[i] = sanitize(note)
	}

	extras := c.ExtraOptions[:0]
	for _, extra := range c.ExtraOptions {
		extra.Name = sanitize(extra.Name)
		if extra.Name == "" {
			continue
		}
		if extra.Min < 0 {
			extra.Min = 0
		}
		if extra.Max <= 0 {
			extra.Max = 10
		}
		if extra.Max < extra.Min {
			extra.Max = extra.Min
		}
		extras = append(extras, extra)
	}
	c.ExtraOptions = extras

	normalizeLayout(&c.Layout)
}

func normalizeLayout(layout *LayoutSettings) {
	if layout.ContainerStyle != "flat" {
		layout.ContainerStyle = "shadow"
	}
	if layout.ButtonStyle != "outline" {
		layout.ButtonStyle = "filled"
	}
	switch layout.ButtonPosition {
	case "left", "center", "right":
	default:
		layout.ButtonPosition = "right"
	}
	if layout.CornerRadius < 0 {
		layout.CornerRadius = 0
	}
	if layout.CornerRadius > 32 {
		layout.CornerRadius = 32
	}
	if !accentPattern.MatchString(layout.LightBackground) {
		layout.LightBackground = defaultLightBackground
	}
	if !accentPattern.MatchString(layout.DarkBackground) {
		layout.DarkBackground = defaultDarkBackground
	}
	layout.WaypointButton.EnabledForTypes = dedupeTypes(layout.WaypointButton.EnabledForTypes)
	layout.WaypointButton.DisplayAfterField = strings.TrimSpace(layout.WaypointButton.DisplayAfterField)
}

func normalizeFields(structure schema.FormStructure) {
	for section, fields := range structure {
		for i := range fields {
			field := &fields[i]
			field.Key = strings.TrimSpace(field.Key)
			field.Label = sanitize(field.Label)
			field.Placeholder = sanitize(field.Placeholder)
			for j, option := range field.Options {
				field.Options[j] = sanitize(option)
			}
			if field.Kind == "" {
				field.Kind = schema.KindShortText
			}
			if field.Role == schema.RoleNone {
				field.Role = schema.InferRole(field.Key)
			}
			if field.ID == "" && field.Key != "" {
				field.ID = string(section) + "-" + field.Key
			}
		}
		structure[section] = fields
	}
}

func normalizeSnapshots(def *Definition) {
	routes := def.Routes[:0]
	for _, route := range def.Routes {
		route.RouteName = sanitize(route.RouteName)
		if route.ID == "" || route.RouteName == "" {
			continue
		}
		routes = append(routes, route)
	}
	def.Routes = routes

	vehicles := def.Vehicles[:0]
	for _, vehicle := range def.Vehicles {
		vehicle.Name = sanitize(vehicle.Name)
		vehicle.Model = sanitize(vehicle.Model)
		if vehicle.ID == "" || vehicle.Name == "" {
			continue
		}
		vehicles = append(vehicles, vehicle)
	}
	def.Vehicles = vehicles

	if def.Pricing.Currency == "" {
		def.Pricing.Currency = "USD"
	}
}

// SetTypeEnabled flips a booking type on or off. Disabling the last enabled
// type is a no-op; the form always offers at least one type. It reports
// whether the set changed.
func (c *Customization) SetTypeEnabled(t schema.BookingType, enabled bool) bool {
	if !t.Valid() {
		return false
	}
	if enabled {
		if c.TypeEnabled(t) {
			return false
		}
		c.EnabledTypes = append(c.EnabledTypes, t)
		return true
	}
	if !c.TypeEnabled(t) {
		return false
	}
	if len(c.EnabledTypes) == 1 {
		return false
	}
	kept := c.EnabledTypes[:0]
	for _, existing := range c.EnabledTypes {
		if existing != t {
			kept = append(kept, existing)
		}
	}
	c.EnabledTypes = kept
	return true
}

func sanitize(raw string) string {
	return strings.TrimSpace(sanitizer.Sanitize(raw))
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, value := range in {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

func dedupeTypes(in []schema.BookingType) []schema.BookingType {
	seen := make(map[schema.BookingType]struct{}, len(in))
	var out []schema.BookingType
	for _, t := range in {
		if !t.Valid() {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
