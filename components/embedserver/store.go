package embedserver

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/chauffeurkit/bookform/pkg/flow"
)

// MemoryBookings is an in-process flow.BookingService, the default backing
// store for previews and tests. Production deployments inject their own.
type MemoryBookings struct {
	mu       sync.RWMutex
	bookings map[string]flow.Booking
}

// NewMemoryBookings constructs an empty store.
func NewMemoryBookings() *MemoryBookings {
	return &MemoryBookings{bookings: make(map[string]flow.Booking)}
}

// CreateBooking stores the booking under a fresh identifier.
func (m *MemoryBookings) CreateBooking(_ context.Context, booking flow.Booking) (string, error) {
	id := uuid.NewString()
	m.mu.Lock()
	m.bookings[id] = booking
	m.mu.Unlock()
	return id, nil
}

// Get looks up a stored booking.
func (m *MemoryBookings) Get(id string) (flow.Booking, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	return booking, ok
}

// Len reports the number of stored bookings.
func (m *MemoryBookings) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// SandboxCheckout is a flow.CheckoutService that fabricates redirect URLs
// instead of talking to a payment provider.
type SandboxCheckout struct {
	// BaseURL prefixes generated redirect URLs, e.g. a hosted sandbox page.
	BaseURL string
}

// InitiateCheckout returns a deterministic sandbox redirect for the booking.
func (s SandboxCheckout) InitiateCheckout(_ context.Context, req flow.CheckoutRequest) (string, error) {
	if req.BookingID == "" {
		return "", errors.New("embedserver: checkout requires a booking id")
	}
	base := s.BaseURL
	if base == "" {
		base = "https://checkout.invalid"
	}
	return base + "/pay/" + req.BookingID + "?method=" + string(req.Method), nil
}
