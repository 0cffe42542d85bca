// Package runtime packages the normalized configuration into the serialized
// payload the embedded browser script consumes, and exposes that script. The
// script itself is static and versioned; per-form data travels only through
// the payload, never through string-interpolated source.
package runtime

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/i18n"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// ResizeMessageType is the only message the compiled document posts to its
// parent frame: {type: "form-resize", height: <px>}.
const ResizeMessageType = "form-resize"

// TypeInfo is the per-booking-type behavior summary the script needs without
// re-deriving schema rules.
type TypeInfo struct {
	Key           schema.BookingType `json:"key"`
	Label         string             `json:"label"`
	DistanceBased bool               `json:"distance_based"`
	RoundTrip     bool               `json:"round_trip"`
	Notes         bool               `json:"notes"`
	Waypoints     bool               `json:"waypoints"`
}

// Payload is the single serialized configuration value handed to the script.
type Payload struct {
	Version         int                          `json:"version"`
	DefaultType     schema.BookingType           `json:"default_type"`
	Types           []TypeInfo                   `json:"types"`
	Fields          schema.FormStructure         `json:"fields"`
	Languages       []string                     `json:"languages"`
	DefaultLanguage string                       `json:"default_language"`
	PaymentMethods  []config.PaymentMethod       `json:"payment_methods"`
	DefaultPayment  config.PaymentMethod         `json:"default_payment"`
	Extras          []config.ExtraOption         `json:"extras"`
	HourlyNotes     []string                     `json:"hourly_notes,omitempty"`
	Pricing         config.Pricing               `json:"pricing"`
	Routes          []config.Route               `json:"routes,omitempty"`
	Vehicles        []config.Vehicle             `json:"vehicles,omitempty"`
	Messages        map[string]map[string]string `json:"messages"`
	Endpoints       Endpoints                    `json:"endpoints"`
}

// Endpoints are the backend calls the script performs on submission. They are
// consumed as opaque URLs; the serving layer decides what stands behind them.
type Endpoints struct {
	Booking  string `json:"booking"`
	Checkout string `json:"checkout"`
}

// DefaultEndpoints match the paths the embed server component registers.
func DefaultEndpoints() Endpoints {
	return Endpoints{Booking: "/api/bookings", Checkout: "/api/checkout"}
}

// Build assembles the payload for one normalized definition.
func Build(def *config.Definition, catalog i18n.Catalog) Payload {
	custom := def.Customizations

	types := make([]TypeInfo, 0, len(custom.EnabledTypes))
	for _, t := range custom.EnabledTypes {
		types = append(types, TypeInfo{
			Key:           t,
			Label:         t.Label(),
			DistanceBased: t.DistanceBased(),
			RoundTrip:     t.SupportsRoundTrip(),
			Notes:         t.SupportsNotes(),
			Waypoints:     custom.WaypointsEnabledFor(t),
		})
	}

	defaultPayment, _ := custom.DefaultPaymentMethod()

	messages := make(map[string]map[string]string, len(custom.Languages))
	for _, lang := range custom.Languages {
		if catalogMessages, ok := catalog[lang]; ok {
			messages[lang] = catalogMessages
		}
	}
	if _, ok := messages["en"]; !ok {
		messages["en"] = catalog["en"]
	}

	defaultType := schema.BookingTypeDistance
	if len(custom.EnabledTypes) > 0 {
		defaultType = custom.EnabledTypes[0]
	}

	return Payload{
		Version:         1,
		DefaultType:     defaultType,
		Types:           types,
		Fields:          def.Fields,
		Languages:       custom.Languages,
		DefaultLanguage: custom.DefaultLanguage,
		PaymentMethods:  custom.PaymentMethods(),
		DefaultPayment:  defaultPayment,
		Extras:          custom.EnabledExtras(),
		HourlyNotes:     custom.HourlyNotes,
		Pricing:         def.Pricing,
		Routes:          def.Routes,
		Vehicles:        def.Vehicles,
		Messages:        messages,
		Endpoints:       DefaultEndpoints(),
	}
}

// JSON serializes the payload for embedding inside a script tag. HTML-relevant
// characters are escaped so the JSON can never terminate the surrounding tag.
func (p Payload) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("runtime: encode payload: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
