// Package wizard compiles a normalized definition into a self-contained
// multi-step booking document: markup, a compiled stylesheet, a JSON payload,
// and the inlined browser runtime. Output is deterministic for identical
// inputs.
package wizard

import (
	"context"
	"fmt"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/i18n"
	"github.com/chauffeurkit/bookform/pkg/render"
	"github.com/chauffeurkit/bookform/pkg/render/template"
	"github.com/chauffeurkit/bookform/pkg/runtime"
	"github.com/chauffeurkit/bookform/pkg/style"
)

// Renderer implements render.Renderer for the embeddable wizard document.
type Renderer struct {
	engine  *template.Engine
	catalog i18n.Catalog
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCatalog layers extra locales over the built-in catalog.
func WithCatalog(catalog i18n.Catalog) Option {
	return func(r *Renderer) {
		r.catalog = r.catalog.Merge(catalog)
	}
}

// New constructs the wizard renderer with its embedded template bundle.
func New(options ...Option) (*Renderer, error) {
	engine, err := template.New(template.WithFS(templatesFS()))
	if err != nil {
		return nil, fmt.Errorf("wizard: %w", err)
	}
	r := &Renderer{engine: engine, catalog: i18n.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Name() string { return "wizard" }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render compiles the full document.
func (r *Renderer) Render(ctx context.Context, def *config.Definition, opts render.Options) ([]byte, error) {
	if def == nil {
		return nil, fmt.Errorf("wizard: definition is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	custom := def.Customizations
	locale := opts.Locale
	if locale == "" {
		locale = custom.DefaultLanguage
	}
	padding, err := render.ValidatePadding(opts.Padding)
	if err != nil {
		return nil, err
	}

	payload, err := runtime.Build(def, r.catalog).JSON()
	if err != nil {
		return nil, err
	}

	sections := newSectionBuilder(def, r.catalog, locale, opts.Values)
	chrome := newChromeBuilder(def, r.catalog, locale)

	doc, err := r.engine.Render("document", map[string]any{
		"lang":            locale,
		"title":           custom.Title,
		"padding":         padding,
		"styles":          style.Compile(custom.Layout, custom.AccentColor),
		"payload":         string(payload),
		"script":          runtime.Script(),
		"header":          chrome.header(),
		"progress":        chrome.progress(),
		"typeSelector":    chrome.typeSelector(),
		"tripTitle":       chrome.stepTitle("step.trip_details", "Trip Details"),
		"typeSections":    sections.typeSections(),
		"tripExtras":      chrome.tripExtras(),
		"fare":            chrome.fare(),
		"vehicleTitle":    chrome.stepTitle("step.vehicle", "Choose Your Vehicle"),
		"vehicles":        chrome.vehicles(),
		"passengerTitle":  chrome.stepTitle("step.passenger", "Passenger Details"),
		"commonFields":    sections.commonSection(),
		"payments":        chrome.payments(),
		"summaryTitle":    chrome.stepTitle("step.summary", "Summary"),
		"confirmTitle":    chrome.stepTitle("step.confirmation", "Booking Confirmed"),
		"confirmation":    chrome.confirmation(),
		"actions":         chrome.actions(),
	})
	if err != nil {
		return nil, fmt.Errorf("wizard: %w", err)
	}
	return []byte(doc), nil
}
