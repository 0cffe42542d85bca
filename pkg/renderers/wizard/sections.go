package wizard

import (
	"strings"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/i18n"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// sectionBuilder assembles the per-booking-type field sections and the shared
// passenger section.
type sectionBuilder struct {
	def     *config.Definition
	fields  *fieldRenderer
	catalog i18n.Catalog
	locale  string
}

func newSectionBuilder(def *config.Definition, catalog i18n.Catalog, locale string, values map[string]string) *sectionBuilder {
	return &sectionBuilder{
		def:     def,
		fields:  newFieldRenderer(catalog, locale, def.Customizations, values),
		catalog: catalog,
		locale:  locale,
	}
}

// typeSections renders one hidden-by-default section per enabled booking
// type. The runtime toggles visibility on type switch instead of rebuilding.
func (s *sectionBuilder) typeSections() string {
	var b strings.Builder
	custom := s.def.Customizations
	for i, bookingType := range custom.EnabledTypes {
		b.WriteString(`<div class="bf-section`)
		if i > 0 {
			b.WriteString(" bf-hidden")
		}
		b.WriteString(`" data-booking-type="`)
		b.WriteString(esc(string(bookingType)))
		b.WriteString("\">\n")

		if bookingType == schema.BookingTypeFlatRate {
			s.writeRouteSelect(&b)
		}

		fields := s.def.Fields.Section(bookingType)
		anchor := s.waypointAnchorKey(bookingType, fields)
		for _, field := range fields {
			b.WriteString(s.fields.render(bookingType, field))
			if anchor != "" && field.Key == anchor {
				s.writeWaypointContainer(&b, bookingType)
			}
		}
		// No anchor field in this section: the affordance and its container
		// go at the end.
		if anchor == "" && custom.WaypointsEnabledFor(bookingType) {
			b.WriteString(`<button type="button" class="bf-add-waypoint" data-waypoint-add="`)
			b.WriteString(esc(string(bookingType)))
			b.WriteString(`">+ `)
			b.WriteString(esc(s.catalog.T(s.locale, "button.add_waypoint", "Add Waypoint")))
			b.WriteString("</button>\n")
			s.writeWaypointContainer(&b, bookingType)
		}

		b.WriteString("</div>\n")
	}
	return b.String()
}

// commonSection renders the passenger fields shared by every booking type.
func (s *sectionBuilder) commonSection() string {
	var b strings.Builder
	b.WriteString(`<div id="bf-common-fields">` + "\n")
	for _, field := range s.def.Fields.Section(schema.SectionCommon) {
		b.WriteString(s.fields.render(schema.SectionCommon, field))
	}
	b.WriteString("</div>\n")
	return b.String()
}

// waypointAnchorKey returns the configured display_after_field key when
// waypoints apply to this type and the field actually exists in the section.
func (s *sectionBuilder) waypointAnchorKey(bookingType schema.BookingType, fields []schema.FormField) string {
	custom := s.def.Customizations
	if !custom.WaypointsEnabledFor(bookingType) {
		return ""
	}
	after := custom.Layout.WaypointButton.DisplayAfterField
	for _, field := range fields {
		if field.Key != "" && field.Key == after {
			return after
		}
	}
	return ""
}

func (s *sectionBuilder) writeWaypointContainer(b *strings.Builder, bookingType schema.BookingType) {
	b.WriteString(`<div class="bf-waypoints" data-waypoint-container="`)
	b.WriteString(esc(string(bookingType)))
	b.WriteString("\"></div>\n")
}

func (s *sectionBuilder) writeRouteSelect(b *strings.Builder) {
	b.WriteString(`<div class="bf-field" id="bf-route-wrap" data-key="route">
    <label for="bf-route">`)
	b.WriteString(esc(s.catalog.T(s.locale, "route.label", "Route")))
	b.WriteString(` <span class="bf-required">*</span></label>
    <select class="bf-select" id="bf-route">
      <option value="">`)
	b.WriteString(esc(s.catalog.T(s.locale, "select.placeholder", "Select an option")))
	b.WriteString("</option>\n")
	for _, route := range s.def.Routes {
		b.WriteString(`      <option value="`)
		b.WriteString(esc(route.ID))
		b.WriteString(`">`)
		b.WriteString(esc(route.RouteName))
		b.WriteString("</option>\n")
	}
	b.WriteString("    </select>\n  </div>\n")
}
