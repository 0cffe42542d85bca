package flow

import (
	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/fare"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// SummaryEntry is one label/value row on the summary step.
type SummaryEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary is the data the summary step renders before submission.
type Summary struct {
	BookingType schema.BookingType   `json:"booking_type"`
	Entries     []SummaryEntry       `json:"entries"`
	Waypoints   []string             `json:"waypoints,omitempty"`
	RoundTrip   bool                 `json:"round_trip"`
	Vehicle     string               `json:"vehicle,omitempty"`
	Payment     config.PaymentMethod `json:"payment"`
	Fare        *fare.Quote          `json:"fare,omitempty"`
}

// Snapshot assembles the summary from the currently visible fields and
// selections. Hidden conditional fields never appear.
func (s *Session) Snapshot() Summary {
	summary := Summary{
		BookingType: s.bookingType,
		Waypoints:   nonEmpty(s.waypoints[s.bookingType]),
		RoundTrip:   s.roundTrip,
		Payment:     s.payment,
	}

	for _, section := range []schema.BookingType{s.bookingType, schema.SectionCommon} {
		for _, field := range s.VisibleFields(section) {
			if field.Key == "" {
				continue
			}
			value := s.sectionValue(section, field.Key)
			if value == "" {
				continue
			}
			summary.Entries = append(summary.Entries, SummaryEntry{Label: field.Label, Value: value})
		}
	}

	if vehicle, ok := s.def.VehicleByID(s.vehicleID); ok {
		summary.Vehicle = vehicle.Name
	}
	if quote, ok := s.Fare(); ok {
		summary.Fare = &quote
	}
	return summary
}
