package wizard

import (
	"strconv"
	"strings"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/i18n"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// chromeBuilder renders everything around the field sections: header, type
// selector, progress bar, the vehicle/payment/summary steps, and the shared
// action row.
type chromeBuilder struct {
	def     *config.Definition
	catalog i18n.Catalog
	locale  string
}

func newChromeBuilder(def *config.Definition, catalog i18n.Catalog, locale string) *chromeBuilder {
	return &chromeBuilder{def: def, catalog: catalog, locale: locale}
}

func (c *chromeBuilder) t(key, fallback string) string {
	return c.catalog.T(c.locale, key, fallback)
}

func (c *chromeBuilder) header() string {
	custom := c.def.Customizations
	var b strings.Builder
	b.WriteString(`<header class="bf-header">` + "\n")
	if custom.LogoURL != "" {
		b.WriteString(`  <img class="bf-logo" src="`)
		b.WriteString(esc(custom.LogoURL))
		b.WriteString(`" alt="">` + "\n")
	}
	if custom.Title != "" {
		b.WriteString(`  <h1 class="bf-title">`)
		b.WriteString(esc(custom.Title))
		b.WriteString("</h1>\n")
	}
	b.WriteString(c.languageSelector())
	b.WriteString("</header>\n")
	return b.String()
}

// typeSelector renders one button per enabled type. It collapses entirely
// when only one type is offered or the component is switched off.
func (c *chromeBuilder) typeSelector() string {
	custom := c.def.Customizations
	if len(custom.EnabledTypes) < 2 || !config.Visible(custom.Layout.Visibility.BookingTypeSelector) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="bf-type-selector">` + "\n")
	for i, bookingType := range custom.EnabledTypes {
		b.WriteString(`  <button type="button" class="bf-type-btn`)
		if i == 0 {
			b.WriteString(" bf-active")
		}
		b.WriteString(`" data-type="`)
		b.WriteString(esc(string(bookingType)))
		b.WriteString(`">`)
		b.WriteString(esc(bookingType.Label()))
		b.WriteString("</button>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

// languageSelector only appears with more than one configured language.
func (c *chromeBuilder) languageSelector() string {
	custom := c.def.Customizations
	if len(custom.Languages) < 2 || !config.Visible(custom.Layout.Visibility.LanguageSelector) {
		return ""
	}
	var b strings.Builder
	b.WriteString(`  <select class="bf-select bf-language" id="bf-language" aria-label="`)
	b.WriteString(esc(c.t("language.label", "Language")))
	b.WriteString("\">\n")
	for _, lang := range custom.Languages {
		b.WriteString(`    <option value="`)
		b.WriteString(esc(lang))
		b.WriteString(`"`)
		if lang == custom.DefaultLanguage {
			b.WriteString(` selected`)
		}
		b.WriteString(`>`)
		b.WriteString(esc(strings.ToUpper(lang)))
		b.WriteString("</option>\n")
	}
	b.WriteString("  </select>\n")
	return b.String()
}

// progress renders the four pre-confirmation steps. The confirmation step has
// no progress slot; it replaces the whole wizard body.
func (c *chromeBuilder) progress() string {
	if !config.Visible(c.def.Customizations.Layout.Visibility.ProgressBar) {
		return ""
	}
	labels := []struct {
		key, fallback string
	}{
		{"progress.trip", "Trip"},
		{"progress.vehicle", "Vehicle"},
		{"progress.passenger", "Passenger"},
		{"progress.summary", "Summary"},
	}
	var b strings.Builder
	b.WriteString(`<ol class="bf-progress">` + "\n")
	for i, label := range labels {
		b.WriteString(`  <li class="bf-progress-step`)
		if i == 0 {
			b.WriteString(" bf-active")
		}
		b.WriteString(`" data-step="`)
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(`">`)
		b.WriteString(esc(c.t(label.key, label.fallback)))
		b.WriteString("</li>\n")
	}
	b.WriteString("</ol>\n")
	return b.String()
}

// tripExtras renders the round-trip toggle, extra options, and hourly notes
// cluster shown on the trip details step. Round trip never applies to hourly
// bookings; notes only do.
func (c *chromeBuilder) tripExtras() string {
	custom := c.def.Customizations
	var b strings.Builder

	supportsRoundTrip := false
	for _, bookingType := range custom.EnabledTypes {
		if bookingType.SupportsRoundTrip() {
			supportsRoundTrip = true
			break
		}
	}
	if supportsRoundTrip {
		hidden := ""
		if len(custom.EnabledTypes) > 0 && !custom.EnabledTypes[0].SupportsRoundTrip() {
			hidden = " bf-hidden"
		}
		b.WriteString(`<div class="bf-field` + hidden + `" id="bf-roundtrip-wrap">
  <label class="bf-checkbox"><input type="checkbox" id="bf-roundtrip"> `)
		b.WriteString(esc(c.t("round_trip.label", "Round trip")))
		b.WriteString("</label>\n</div>\n")
	}

	if extras := custom.EnabledExtras(); len(extras) > 0 {
		b.WriteString(`<div class="bf-extras">
  <h3>`)
		b.WriteString(esc(c.t("extras.title", "Extra Options")))
		b.WriteString("</h3>\n")
		for _, extra := range extras {
			b.WriteString(`  <div class="bf-extra-row" data-extra="`)
			b.WriteString(esc(extra.Name))
			b.WriteString(`" data-min="`)
			b.WriteString(strconv.Itoa(extra.Min))
			b.WriteString(`" data-max="`)
			b.WriteString(strconv.Itoa(extra.Max))
			b.WriteString(`">
    <span>`)
			b.WriteString(esc(extra.Name))
			b.WriteString("</span>\n    <span class=\"bf-qty\">")
			b.WriteString(`<button type="button" class="bf-qty-dec">&minus;</button>`)
			b.WriteString(`<span class="bf-qty-count">0</span>`)
			b.WriteString(`<button type="button" class="bf-qty-inc">+</button>`)
			b.WriteString("</span>\n  </div>\n")
		}
		b.WriteString("</div>\n")
	}

	if len(custom.HourlyNotes) > 0 && c.hourlyEnabled() {
		hidden := ""
		if len(custom.EnabledTypes) > 0 && !custom.EnabledTypes[0].SupportsNotes() {
			hidden = " bf-hidden"
		}
		b.WriteString(`<div class="bf-notes` + hidden + `" id="bf-notes-wrap">
  <h3>`)
		b.WriteString(esc(c.t("notes.title", "Notes")))
		b.WriteString("</h3>\n  <ul>\n")
		for _, note := range custom.HourlyNotes {
			b.WriteString("    <li>")
			b.WriteString(esc(note))
			b.WriteString("</li>\n")
		}
		b.WriteString("  </ul>\n</div>\n")
	}

	return b.String()
}

func (c *chromeBuilder) hourlyEnabled() bool {
	return c.def.Customizations.TypeEnabled(schema.BookingTypeHourly)
}

// vehicles renders selectable cards; the step is skipped by the runtime when
// no vehicles are configured.
func (c *chromeBuilder) vehicles() string {
	if len(c.def.Vehicles) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="bf-vehicles">` + "\n")
	for _, vehicle := range c.def.Vehicles {
		b.WriteString(`  <button type="button" class="bf-vehicle-card" data-vehicle="`)
		b.WriteString(esc(vehicle.ID))
		b.WriteString("\">\n")
		if vehicle.ImageURL != "" {
			b.WriteString(`    <img src="`)
			b.WriteString(esc(vehicle.ImageURL))
			b.WriteString(`" alt="`)
			b.WriteString(esc(vehicle.Name))
			b.WriteString("\">\n")
		}
		b.WriteString(`    <strong>`)
		b.WriteString(esc(vehicle.Name))
		b.WriteString("</strong>\n")
		if vehicle.Model != "" {
			b.WriteString(`    <span>`)
			b.WriteString(esc(vehicle.Model))
			b.WriteString("</span>\n")
		}
		if vehicle.Capacity > 0 {
			b.WriteString(`    <span>`)
			b.WriteString(strconv.Itoa(vehicle.Capacity))
			b.WriteString(" seats</span>\n")
		}
		b.WriteString("  </button>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

// payments renders one button per offered payment category, derived from the
// configured provider icons.
func (c *chromeBuilder) payments() string {
	custom := c.def.Customizations
	methods := custom.PaymentMethods()
	if len(methods) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="bf-payments">
  <h3>`)
	b.WriteString(esc(c.t("payment.title", "Payment Method")))
	b.WriteString("</h3>\n")
	for _, method := range methods {
		b.WriteString(`  <button type="button" class="bf-payment-btn" data-payment="`)
		b.WriteString(esc(string(method)))
		b.WriteString(`">`)
		b.WriteString(esc(c.t("payment."+string(method), method.Label())))
		b.WriteString("</button>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}

func (c *chromeBuilder) fare() string {
	if !config.Visible(c.def.Customizations.Layout.Visibility.FareDisplay) {
		return ""
	}
	return `<div class="bf-fare bf-hidden" id="bf-fare"></div>` + "\n"
}

func (c *chromeBuilder) stepTitle(key, fallback string) string {
	if !config.Visible(c.def.Customizations.Layout.Visibility.StepTitles) {
		return ""
	}
	return `<h2 class="bf-step-title">` + esc(c.t(key, fallback)) + "</h2>\n"
}

func (c *chromeBuilder) confirmation() string {
	return `<p class="bf-confirmation">` + esc(c.t("confirmation.message", "Thank you! Your booking has been received.")) + "</p>\n"
}

func (c *chromeBuilder) actions() string {
	var b strings.Builder
	b.WriteString(`<p class="bf-error" id="bf-error" role="alert"></p>
<div class="bf-actions">
  <button type="button" class="bf-btn bf-btn-secondary bf-hidden" id="bf-back">`)
	b.WriteString(esc(c.t("button.back", "Back")))
	b.WriteString(`</button>
  <button type="button" class="bf-btn bf-btn-primary" id="bf-next">`)
	b.WriteString(esc(c.t("button.next", "Next")))
	b.WriteString("</button>\n</div>\n")
	return b.String()
}
