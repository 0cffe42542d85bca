package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/chauffeurkit/bookform/pkg/config"
	"github.com/chauffeurkit/bookform/pkg/schema"
)

func testDefinition(t *testing.T) *config.Definition {
	t.Helper()
	def, err := config.Normalize(config.Definition{
		Customizations: config.Customization{
			EnabledTypes: []schema.BookingType{
				schema.BookingTypeDistance,
				schema.BookingTypeHourly,
				schema.BookingTypeFlatRate,
				schema.BookingTypeAirportTransfer,
			},
			PaymentIcons: []string{"visa", "paypal", "cash"},
			ExtraOptions: []config.ExtraOption{
				{Name: "Child Seat", Price: 5, Enabled: true, Min: 0, Max: 2},
			},
		},
		Routes: []config.Route{{ID: "r1", RouteName: "Airport - Downtown", FixedPrice: 80}},
		Vehicles: []config.Vehicle{
			{ID: "v1", Name: "Sedan", Capacity: 3},
			{ID: "v2", Name: "Van", Capacity: 7},
		},
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return def
}

func fillTrip(s *Session) {
	s.SetValue("pickup_location", "1 Main St")
	s.SetValue("dropoff_location", "2 Oak Ave")
	s.SetValue("pickup_datetime", "2026-09-01T10:00")
}

func fillPassenger(s *Session) {
	s.SetValue("first_name", "Ada")
	s.SetValue("last_name", "Lovelace")
	s.SetValue("email", "ada@example.com")
	s.SetValue("phone", "+15550100")
}

type stubBookings struct {
	created []Booking
	err     error
}

func (s *stubBookings) CreateBooking(_ context.Context, booking Booking) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.created = append(s.created, booking)
	return "bk-1", nil
}

type stubCheckout struct {
	url string
	err error
}

func (s stubCheckout) InitiateCheckout(_ context.Context, req CheckoutRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url + req.BookingID, nil
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	if s.Step() != StepTripDetails {
		t.Errorf("initial step = %s", s.Step())
	}
	if s.BookingType() != schema.BookingTypeDistance {
		t.Errorf("initial type = %s", s.BookingType())
	}
	if s.Payment() != config.PaymentCash {
		t.Errorf("default payment = %s, want cash", s.Payment())
	}
}

func TestNextBlockedByMissingRequired(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	s.SetValue("pickup_location", "1 Main St")
	s.SetValue("pickup_datetime", "2026-09-01T10:00")
	// dropoff_location left empty

	err := s.Next()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if s.Step() != StepTripDetails {
		t.Errorf("failed guard must not advance, step = %s", s.Step())
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "dropoff_location" {
		t.Errorf("missing fields = %v", verr.Fields)
	}
	if s.LastError() == "" {
		t.Error("last error should be surfaced")
	}

	s.SetValue("dropoff_location", "2 Oak Ave")
	if err := s.Next(); err != nil {
		t.Fatalf("guard should pass after filling the field: %v", err)
	}
	if s.Step() != StepVehicle {
		t.Errorf("step = %s, want vehicle", s.Step())
	}
	if s.LastError() != "" {
		t.Error("last error should clear on success")
	}
}

func TestVehicleGuard(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	fillTrip(s)
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}

	if err := s.Next(); err == nil {
		t.Fatal("advancing without a vehicle should fail")
	}
	if err := s.SelectVehicle("v9"); err == nil {
		t.Fatal("unknown vehicle should be rejected")
	}
	if err := s.SelectVehicle("v1"); err != nil {
		t.Fatalf("SelectVehicle: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("Next after vehicle: %v", err)
	}
	if s.Step() != StepPassengerPayment {
		t.Errorf("step = %s", s.Step())
	}
}

func TestConditionalFieldSkipsRequirement(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	if err := s.SetBookingType(schema.BookingTypeAirportTransfer); err != nil {
		t.Fatalf("SetBookingType: %v", err)
	}
	s.SetValue("transfer_direction", "To Airport")
	s.SetValue("pickup_location", "1 Main St")
	s.SetValue("dropoff_location", "Airport T2")
	s.SetValue("pickup_datetime", "2026-09-01T10:00")

	// flight_number is conditional on "From Airport" and currently hidden.
	for _, field := range s.VisibleFields(schema.BookingTypeAirportTransfer) {
		if field.Key == "flight_number" {
			t.Fatal("flight_number should be hidden for To Airport")
		}
	}
	if missing := s.MissingRequired(schema.BookingTypeAirportTransfer); len(missing) != 0 {
		t.Errorf("hidden conditional field must not be required: %v", missing)
	}

	s.SetValue("transfer_direction", "From Airport")
	found := false
	for _, field := range s.VisibleFields(schema.BookingTypeAirportTransfer) {
		if field.Key == "flight_number" {
			found = true
		}
	}
	if !found {
		t.Error("flight_number should appear for From Airport")
	}
}

func TestFlatRateRequiresRoute(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	if err := s.SetBookingType(schema.BookingTypeFlatRate); err != nil {
		t.Fatalf("SetBookingType: %v", err)
	}
	s.SetValue("pickup_datetime", "2026-09-01T10:00")

	err := s.Next()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) == 0 || verr.Fields[0] != "route" {
		t.Errorf("route should lead the missing list: %v", verr.Fields)
	}

	s.SetRouteID("r1")
	if err := s.Next(); err != nil {
		t.Fatalf("Next with route: %v", err)
	}
}

func TestSetBookingTypeRetainsValues(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	fillTrip(s)

	if err := s.SetBookingType(schema.BookingTypeHourly); err != nil {
		t.Fatalf("SetBookingType: %v", err)
	}
	if s.Value("dropoff_location") != "" {
		t.Error("hourly section should not see the distance dropoff")
	}
	if err := s.SetBookingType(schema.BookingTypeDistance); err != nil {
		t.Fatalf("SetBookingType: %v", err)
	}
	if s.Value("dropoff_location") != "2 Oak Ave" {
		t.Error("switching back should restore entered values")
	}

	if err := s.SetBookingType(schema.BookingTypeCharter); err == nil {
		t.Error("disabled type should be rejected")
	}
}

func TestRoundTripRules(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	s.SetRoundTrip(true)
	if !s.RoundTrip() {
		t.Fatal("round trip should enable for distance")
	}
	if _, err := s.AddReturnWaypoint(); err != nil {
		t.Fatalf("AddReturnWaypoint: %v", err)
	}
	if err := s.SetReturnWaypoint(0, "3 Elm St"); err != nil {
		t.Fatalf("SetReturnWaypoint: %v", err)
	}

	s.SetRoundTrip(false)
	if len(s.ReturnWaypoints()) != 0 {
		t.Error("disabling round trip should clear return waypoints")
	}

	if err := s.SetBookingType(schema.BookingTypeHourly); err != nil {
		t.Fatalf("SetBookingType: %v", err)
	}
	s.SetRoundTrip(true)
	if s.RoundTrip() {
		t.Error("hourly must ignore the round-trip toggle")
	}
}

func TestRoundTripDoublesFare(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	fillTrip(s)

	oneWay, ok := s.Fare()
	if !ok {
		t.Fatal("fare should be available with pickup and dropoff set")
	}
	s.SetRoundTrip(true)
	roundTrip, ok := s.Fare()
	if !ok {
		t.Fatal("fare should remain available")
	}
	// The double is rounded to cents after doubling, so allow one cent of
	// drift against the rounded one-way base.
	if diff := roundTrip.Base - 2*oneWay.Base; diff > 0.011 || diff < -0.011 {
		t.Errorf("round trip base = %v, want about %v", roundTrip.Base, 2*oneWay.Base)
	}
}

func TestFareSuppressedWhileIncomplete(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	if _, ok := s.Fare(); ok {
		t.Error("fare should be suppressed with no addresses")
	}
	fillTrip(s)
	if _, ok := s.Fare(); !ok {
		t.Error("fare should appear once addresses are set")
	}
}

func TestStepExtraClamping(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	for i := 0; i < 5; i++ {
		if err := s.StepExtra("Child Seat", 1); err != nil {
			t.Fatalf("StepExtra: %v", err)
		}
	}
	if got := s.ExtraQuantity("Child Seat"); got != 2 {
		t.Errorf("quantity should clamp at max, got %d", got)
	}
	for i := 0; i < 5; i++ {
		_ = s.StepExtra("Child Seat", -1)
	}
	if got := s.ExtraQuantity("Child Seat"); got != 0 {
		t.Errorf("quantity should clamp at min, got %d", got)
	}
	if _, selected := s.Extras()["Child Seat"]; selected {
		t.Error("reaching a zero min should drop the selection")
	}
	if err := s.StepExtra("Jacuzzi", 1); err == nil {
		t.Error("unknown extras should be rejected")
	}
}

func TestWaypointEditing(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	idx := s.AddWaypoint()
	if err := s.SetWaypoint(idx, "Stop 1"); err != nil {
		t.Fatalf("SetWaypoint: %v", err)
	}
	s.AddWaypoint()
	if err := s.SetWaypoint(1, "Stop 2"); err != nil {
		t.Fatalf("SetWaypoint: %v", err)
	}
	if err := s.RemoveWaypoint(0); err != nil {
		t.Fatalf("RemoveWaypoint: %v", err)
	}
	wps := s.Waypoints()
	if len(wps) != 1 || wps[0] != "Stop 2" {
		t.Errorf("waypoints = %v", wps)
	}
	if err := s.SetWaypoint(5, "x"); err == nil {
		t.Error("out-of-range index should fail")
	}
}

func advanceToSummary(t *testing.T, s *Session) {
	t.Helper()
	fillTrip(s)
	if err := s.Next(); err != nil {
		t.Fatalf("to vehicle: %v", err)
	}
	if err := s.SelectVehicle("v1"); err != nil {
		t.Fatalf("SelectVehicle: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("to passenger: %v", err)
	}
	fillPassenger(s)
	if err := s.Next(); err != nil {
		t.Fatalf("to summary: %v", err)
	}
	if s.Step() != StepSummary {
		t.Fatalf("step = %s", s.Step())
	}
}

func TestEditFromSummary(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	advanceToSummary(t, s)

	if err := s.Edit(StepVehicle); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if s.Step() != StepVehicle {
		t.Errorf("step = %s", s.Step())
	}
	if err := s.Edit(StepTripDetails); err == nil {
		t.Error("edit should only be available from the summary")
	}
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := s.Edit(StepConfirmation); err == nil {
		t.Error("edit must not target the confirmation step")
	}
}

func TestSnapshotShowsVisibleDataOnly(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	advanceToSummary(t, s)

	summary := s.Snapshot()
	if summary.BookingType != schema.BookingTypeDistance {
		t.Errorf("snapshot type = %s", summary.BookingType)
	}
	if summary.Vehicle != "Sedan" {
		t.Errorf("snapshot vehicle = %q", summary.Vehicle)
	}
	if summary.Fare == nil {
		t.Error("snapshot fare missing")
	}
	labels := make(map[string]string)
	for _, entry := range summary.Entries {
		labels[entry.Label] = entry.Value
	}
	if labels["Pickup Location"] != "1 Main St" || labels["First Name"] != "Ada" {
		t.Errorf("snapshot entries = %v", summary.Entries)
	}
}

func TestSubmitCashConfirms(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	advanceToSummary(t, s)

	bookings := &stubBookings{}
	result, err := s.Submit(context.Background(), bookings, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.BookingID != "bk-1" || result.RedirectURL != "" {
		t.Errorf("result = %+v", result)
	}
	if s.Step() != StepConfirmation {
		t.Errorf("cash should confirm immediately, step = %s", s.Step())
	}
	if len(bookings.created) != 1 {
		t.Fatalf("bookings created = %d", len(bookings.created))
	}
	booking := bookings.created[0]
	if booking.Values["pickup_location"] != "1 Main St" || booking.Values["email"] != "ada@example.com" {
		t.Errorf("booking values = %v", booking.Values)
	}
	if booking.VehicleID != "v1" || booking.Payment != config.PaymentCash {
		t.Errorf("booking = %+v", booking)
	}
}

func TestSubmitCardRedirects(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	advanceToSummary(t, s)
	if err := s.SelectPayment(config.PaymentCreditCard); err != nil {
		t.Fatalf("SelectPayment: %v", err)
	}

	result, err := s.Submit(context.Background(), &stubBookings{}, stubCheckout{url: "https://pay.example/"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.RedirectURL != "https://pay.example/bk-1" {
		t.Errorf("redirect = %q", result.RedirectURL)
	}
	if s.Step() != StepSummary {
		t.Errorf("online payments confirm after redirect, step = %s", s.Step())
	}
}

func TestSubmitCheckoutFailureKeepsState(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	advanceToSummary(t, s)
	if err := s.SelectPayment(config.PaymentPayPal); err != nil {
		t.Fatalf("SelectPayment: %v", err)
	}

	_, err := s.Submit(context.Background(), &stubBookings{}, stubCheckout{err: errors.New("provider down")})
	if err == nil {
		t.Fatal("checkout failure should surface")
	}
	if s.Step() != StepSummary {
		t.Errorf("failure must keep the summary step, step = %s", s.Step())
	}
	if s.LastError() == "" {
		t.Error("failure should surface a message")
	}
	if s.Value("pickup_location") != "1 Main St" || s.Value("email") != "ada@example.com" {
		t.Error("entered data must survive a failed submission")
	}
	if s.Submitting() {
		t.Error("submitting flag should reset after failure")
	}

	// Retry against a healthy provider succeeds with the same data.
	result, err := s.Submit(context.Background(), &stubBookings{}, stubCheckout{url: "https://pay.example/"})
	if err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if result.RedirectURL == "" {
		t.Error("retry should produce a redirect")
	}
}

func TestSubmitBookingFailureKeepsState(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	advanceToSummary(t, s)

	_, err := s.Submit(context.Background(), &stubBookings{err: errors.New("db down")}, nil)
	if err == nil {
		t.Fatal("booking failure should surface")
	}
	if s.Step() != StepSummary {
		t.Errorf("failure must keep the summary step, step = %s", s.Step())
	}
}

func TestSubmitRequiresSummaryStep(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	if _, err := s.Submit(context.Background(), &stubBookings{}, nil); err == nil {
		t.Error("submitting from step 1 should fail")
	}
}

func TestSelectPaymentRejectsUnoffered(t *testing.T) {
	s := NewSession(testDefinition(t), nil)
	if err := s.SelectPayment("barter"); err == nil {
		t.Error("unknown payment method should be rejected")
	}
	if err := s.SelectPayment(config.PaymentPayPal); err != nil {
		t.Errorf("paypal is offered: %v", err)
	}
}
