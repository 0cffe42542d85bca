package wizard

import (
	"html"
	"strconv"
	"strings"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/i18n"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// fieldRenderer compiles one FormField into a markup fragment. Control ids
// follow "bf-<field id>" and the name attribute carries the submission key so
// the runtime can wire handlers without guessing.
type fieldRenderer struct {
	catalog i18n.Catalog
	locale  string
	custom  config.Customization
	values  map[string]string
}

func newFieldRenderer(catalog i18n.Catalog, locale string, custom config.Customization, values map[string]string) *fieldRenderer {
	return &fieldRenderer{catalog: catalog, locale: locale, custom: custom, values: values}
}

// render produces the wrapper, label, control, and any waypoint affordance for
// a field inside the given booking-type section.
func (r *fieldRenderer) render(section schema.BookingType, field schema.FormField) string {
	var b strings.Builder
	b.Grow(512)

	b.WriteString(`<div class="bf-field" id="field-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`" data-key="`)
	b.WriteString(esc(field.Key))
	b.WriteString(`" data-kind="`)
	b.WriteString(esc(string(field.Kind)))
	b.WriteString(`"`)
	if field.Required {
		b.WriteString(` data-required="true"`)
	}
	if cond := field.Conditional; cond != nil {
		b.WriteString(` data-cond-field="`)
		b.WriteString(esc(cond.FieldKey))
		b.WriteString(`" data-cond-value="`)
		b.WriteString(esc(cond.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">\n")

	r.writeLabel(&b, field)
	r.writeControl(&b, field)

	b.WriteString("</div>\n")

	if r.waypointAnchor(section, field) {
		b.WriteString(`<button type="button" class="bf-add-waypoint" data-waypoint-add="`)
		b.WriteString(esc(string(section)))
		b.WriteString(`">+ `)
		b.WriteString(esc(r.catalog.T(r.locale, "button.add_waypoint", "Add Waypoint")))
		b.WriteString("</button>\n")
	}

	return b.String()
}

func (r *fieldRenderer) writeLabel(b *strings.Builder, field schema.FormField) {
	if field.Label == "" || field.Kind == schema.KindCheckbox {
		return
	}
	b.WriteString(`    <label for="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`">`)
	b.WriteString(esc(field.Label))
	if field.Required {
		b.WriteString(` <span class="bf-required">*</span>`)
	} else {
		b.WriteString(` <span class="bf-optional">`)
		b.WriteString(esc(r.catalog.T(r.locale, "label.optional", "(Optional)")))
		b.WriteString(`</span>`)
	}
	b.WriteString("</label>\n")
}

func (r *fieldRenderer) writeControl(b *strings.Builder, field schema.FormField) {
	switch {
	case field.Role.Address():
		r.writeAddress(b, field)
	case field.Kind == schema.KindDateTime:
		r.writeDateTime(b, field)
	case field.Kind == schema.KindDropdown:
		r.writeSelect(b, field)
	case field.Kind == schema.KindRadio:
		r.writeRadios(b, field)
	case field.Kind == schema.KindCheckbox:
		r.writeCheckbox(b, field)
	case field.Kind == schema.KindLongText:
		r.writeTextarea(b, field)
	case field.Kind == schema.KindVehicleType:
		r.writeSelect(b, field)
	default:
		r.writeInput(b, field)
	}
}

// Address fields mount an external geocoder widget; the hidden input receives
// the resolved address on geocoder result/clear events. They never render a
// plain text box.
func (r *fieldRenderer) writeAddress(b *strings.Builder, field schema.FormField) {
	b.WriteString(`    <div class="bf-address-widget" data-geocoder="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`" data-placeholder="`)
	b.WriteString(esc(r.placeholder(field)))
	b.WriteString(`"></div>
    <input type="hidden" id="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(esc(field.Key))
	b.WriteString(`" value="`)
	b.WriteString(esc(r.values[field.Key]))
	b.WriteString("\">\n")
}

// Date/time fields are a composite control: a date button and a time button,
// each opening a popover the runtime builds (calendar grid, 30-minute slots).
// The hidden input carries a YYYY-MM-DDTHH:mm value.
func (r *fieldRenderer) writeDateTime(b *strings.Builder, field schema.FormField) {
	dateLabel := r.catalog.T(r.locale, "datetime.date", "Select date")
	timeLabel := r.catalog.T(r.locale, "datetime.time", "Select time")
	b.WriteString(`    <div class="bf-datetime" data-datetime="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`">
      <button type="button" class="bf-input bf-date-btn">`)
	b.WriteString(esc(dateLabel))
	b.WriteString(`</button>
      <button type="button" class="bf-input bf-time-btn">`)
	b.WriteString(esc(timeLabel))
	b.WriteString(`</button>
      <input type="hidden" id="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(esc(field.Key))
	b.WriteString(`" value="`)
	b.WriteString(esc(r.values[field.Key]))
	b.WriteString("\">\n    </div>\n")
}

func (r *fieldRenderer) writeSelect(b *strings.Builder, field schema.FormField) {
	b.WriteString(`    <select class="bf-select" id="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(esc(field.Key))
	b.WriteString(`">
      <option value="">`)
	b.WriteString(esc(r.catalog.T(r.locale, "select.placeholder", "Select an option")))
	b.WriteString("</option>\n")
	current := r.values[field.Key]
	for _, option := range field.Options {
		b.WriteString(`      <option value="`)
		b.WriteString(esc(option))
		b.WriteString(`"`)
		if option != "" && option == current {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(esc(r.translateOption(field, option)))
		b.WriteString("</option>\n")
	}
	b.WriteString("    </select>\n")
}

func (r *fieldRenderer) writeRadios(b *strings.Builder, field schema.FormField) {
	current := r.values[field.Key]
	for i, option := range field.Options {
		b.WriteString(`    <label class="bf-radio"><input type="radio" name="`)
		b.WriteString(esc(field.Key))
		b.WriteString(`" id="bf-`)
		b.WriteString(esc(field.ID))
		if i > 0 {
			b.WriteString("-")
			b.WriteString(strconv.Itoa(i))
		}
		b.WriteString(`" value="`)
		b.WriteString(esc(option))
		b.WriteString(`"`)
		if option != "" && option == current {
			b.WriteString(` checked`)
		}
		b.WriteString(`> `)
		b.WriteString(esc(r.translateOption(field, option)))
		b.WriteString("</label>\n")
	}
}

func (r *fieldRenderer) writeCheckbox(b *strings.Builder, field schema.FormField) {
	b.WriteString(`    <label class="bf-checkbox"><input type="checkbox" id="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(esc(field.Key))
	b.WriteString(`" value="true"`)
	if r.values[field.Key] == "true" {
		b.WriteString(` checked`)
	}
	b.WriteString(`> `)
	b.WriteString(esc(field.Label))
	if field.Required {
		b.WriteString(` <span class="bf-required">*</span>`)
	}
	b.WriteString("</label>\n")
}

func (r *fieldRenderer) writeTextarea(b *strings.Builder, field schema.FormField) {
	b.WriteString(`    <div class="bf-input-wrap">
      <textarea class="bf-textarea" id="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(esc(field.Key))
	b.WriteString(`" rows="3" placeholder="`)
	b.WriteString(esc(r.placeholder(field)))
	b.WriteString(`">`)
	b.WriteString(esc(r.values[field.Key]))
	b.WriteString(`</textarea>
      <button type="button" class="bf-clear" aria-label="Clear">&times;</button>
    </div>
`)
}

func (r *fieldRenderer) writeInput(b *strings.Builder, field schema.FormField) {
	inputType := "text"
	if field.Kind == schema.KindNumber {
		inputType = "number"
	}
	b.WriteString(`    <div class="bf-input-wrap">
      <input class="bf-input" type="`)
	b.WriteString(inputType)
	b.WriteString(`" id="bf-`)
	b.WriteString(esc(field.ID))
	b.WriteString(`" name="`)
	b.WriteString(esc(field.Key))
	b.WriteString(`" placeholder="`)
	b.WriteString(esc(r.placeholder(field)))
	b.WriteString(`" value="`)
	b.WriteString(esc(r.values[field.Key]))
	b.WriteString(`">
      <button type="button" class="bf-clear" aria-label="Clear">&times;</button>
    </div>
`)
}

// waypointAnchor reports whether the inline add-waypoint affordance belongs
// right after this field.
func (r *fieldRenderer) waypointAnchor(section schema.BookingType, field schema.FormField) bool {
	if !r.custom.WaypointsEnabledFor(section) {
		return false
	}
	return field.Key != "" && field.Key == r.custom.Layout.WaypointButton.DisplayAfterField
}

// placeholder resolves explicit placeholder, then the placeholder_<key>
// catalog entry, then "Enter <label>".
func (r *fieldRenderer) placeholder(field schema.FormField) string {
	return r.catalog.Placeholder(r.locale, field.Placeholder, field.Key, field.Label)
}

func (r *fieldRenderer) translateOption(field schema.FormField, option string) string {
	if field.Key == "" {
		return option
	}
	return r.catalog.T(r.locale, "option_"+field.Key+"_"+keyify(option), option)
}

func esc(raw string) string {
	return html.EscapeString(raw)
}

func keyify(raw string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "_"))
}

