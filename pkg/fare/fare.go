// Package fare computes booking fares from the pricing snapshot. Distance and
// duration come from a pluggable Estimator; the default implementation derives
// a stable preview approximation from the addresses themselves rather than
// calling a routing engine.
package fare

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

// ErrIncomplete signals that required fare inputs are missing. Callers
// suppress the fare display instead of surfacing an error state.
var ErrIncomplete = errors.New("fare: missing required inputs")

// Estimate is a distance/duration pair for one trip leg sequence.
type Estimate struct {
	DistanceKm  float64
	DurationMin float64
}

// Estimator produces trip estimates. Swap in a routing-backed implementation
// for production pricing; HashEstimator serves previews.
type Estimator interface {
	Estimate(pickup, dropoff string, waypoints []string) (Estimate, error)
}

// HashEstimator derives a deterministic mock estimate from a hash of the
// concatenated addresses. Identical inputs always produce identical estimates,
// which keeps preview fares stable across renders. The exact mapping is not a
// contract.
type HashEstimator struct{}

func (HashEstimator) Estimate(pickup, dropoff string, waypoints []string) (Estimate, error) {
	pickup = strings.TrimSpace(pickup)
	dropoff = strings.TrimSpace(dropoff)
	if pickup == "" || dropoff == "" {
		return Estimate{}, ErrIncomplete
	}

	h := fnv.New64a()
	h.Write([]byte(pickup))
	for _, waypoint := range waypoints {
		h.Write([]byte{'|'})
		h.Write([]byte(strings.TrimSpace(waypoint)))
	}
	h.Write([]byte{'|'})
	h.Write([]byte(dropoff))
	sum := h.Sum64()

	distance := 2 + float64(sum%481)/10                    // 2.0 .. 50.0 km
	pace := 1.5 + float64((sum>>16)%100)/100               // 1.5 .. 2.49 min/km
	distance += 3 * float64(len(waypoints))                // each stop adds a detour
	return Estimate{DistanceKm: round2(distance), DurationMin: round2(distance * pace)}, nil
}

// Input carries everything step 1 contributes to a fare.
type Input struct {
	Type        schema.BookingType
	Pickup      string
	Dropoff     string
	Waypoints   []string
	RentalHours float64
	RouteID     string
	RoundTrip   bool
	// Extras maps extra-option name to selected quantity.
	Extras map[string]int
}

// Quote is a computed fare. Base already includes round-trip doubling;
// Extras is added on top.
type Quote struct {
	Currency    string  `json:"currency"`
	Base        float64 `json:"base"`
	Extras      float64 `json:"extras"`
	Total       float64 `json:"total"`
	DistanceKm  float64 `json:"distance_km,omitempty"`
	DurationMin float64 `json:"duration_min,omitempty"`
}

// Calculator prices bookings against one normalized definition.
type Calculator struct {
	pricing   config.Pricing
	routes    []config.Route
	extras    []config.ExtraOption
	estimator Estimator
}

// NewCalculator builds a calculator for a definition. A nil estimator selects
// the hash-based preview estimator.
func NewCalculator(def *config.Definition, estimator Estimator) *Calculator {
	if estimator == nil {
		estimator = HashEstimator{}
	}
	return &Calculator{
		pricing:   def.Pricing,
		routes:    def.Routes,
		extras:    def.Customizations.EnabledExtras(),
		estimator: estimator,
	}
}

// Quote computes the fare for the given inputs. ErrIncomplete means the fare
// cannot be shown yet; any other error is a real failure.
func (c *Calculator) Quote(in Input) (Quote, error) {
	quote := Quote{Currency: c.pricing.Currency}

	switch {
	case in.Type.DistanceBased():
		estimate, err := c.estimator.Estimate(in.Pickup, in.Dropoff, in.Waypoints)
		if err != nil {
			return Quote{}, err
		}
		quote.DistanceKm = estimate.DistanceKm
		quote.DurationMin = estimate.DurationMin
		quote.Base = c.pricing.BaseFare +
			estimate.DistanceKm*c.pricing.CostPerKm +
			estimate.DurationMin*c.pricing.CostPerMin

	case in.Type == schema.BookingTypeHourly:
		if in.RentalHours <= 0 {
			return Quote{}, ErrIncomplete
		}
		quote.Base = c.pricing.CostPerHour * in.RentalHours

	case in.Type == schema.BookingTypeFlatRate:
		route, ok := c.routeByID(in.RouteID)
		if !ok {
			return Quote{}, ErrIncomplete
		}
		quote.Base = route.FixedPrice

	default:
		return Quote{}, fmt.Errorf("fare: unsupported booking type %q", in.Type)
	}

	if in.RoundTrip && in.Type.SupportsRoundTrip() {
		quote.Base *= 2
	}

	for _, extra := range c.extras {
		quantity, selected := in.Extras[extra.Name]
		if !selected || quantity <= 0 {
			continue
		}
		quantity = clamp(quantity, extra.Min, extra.Max)
		quote.Extras += extra.Price * float64(quantity)
	}

	quote.Base = round2(quote.Base)
	quote.Extras = round2(quote.Extras)
	quote.Total = round2(quote.Base + quote.Extras)
	return quote, nil
}

func (c *Calculator) routeByID(id string) (config.Route, bool) {
	for _, route := range c.routes {
		if route.ID == id {
			return route, true
		}
	}
	return config.Route{}, false
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

// FormatAmount renders an amount the way the wizard displays fares.
func FormatAmount(currency string, amount float64) string {
	switch currency {
	case "USD":
		return fmt.Sprintf("$%.2f", amount)
	case "EUR":
		return fmt.Sprintf("€%.2f", amount)
	case "GBP":
		return fmt.Sprintf("£%.2f", amount)
	default:
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
}
