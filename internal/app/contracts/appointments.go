package contracts

import (
	"context"
	"time"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
)

type AppointmentClient interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
}

// SchedulingState tracks one booking flow instance.
//
//	Idle -> AwaitingAvailability -> Ready -> Submitting -> Confirmed
//	                     ^            |          |
//	                     +------------+          +-> back to Ready on failure
//
// Any provider/date change from Ready re-enters AwaitingAvailability.
type SchedulingState string

const (
	StateIdle                 SchedulingState = "idle"
	StateAwaitingAvailability SchedulingState = "awaiting_availability"
	StateReady                SchedulingState = "ready"
	StateSubmitting           SchedulingState = "submitting"
	StateConfirmed            SchedulingState = "confirmed"
)

// HourNone is the hour value reported by Selection while no hour has
// been chosen. Hour 0 is a real, bookable midnight slot.
const HourNone = -1

// SchedulingUsecase is the booking screen's view-model: it owns the
// provider/date/hour selection and the derived time buckets. All state
// is instance-scoped and discarded with the screen.
type SchedulingUsecase interface {
	LoadProviders(ctx context.Context) ([]responses.Provider, error)
	Providers() []responses.Provider

	// SelectProvider records the provider and refetches that day's
	// availability. The previous slot list is discarded immediately and
	// the hour selection resets to none: whatever hour was picked
	// referred to slots that no longer exist.
	SelectProvider(ctx context.Context, providerID string) error
	// SelectDate replaces the date wholesale, with the same discard and
	// hour-reset semantics as SelectProvider. Past-date prevention
	// belongs to the calendar widget, not here.
	SelectDate(ctx context.Context, date time.Time) error
	// SelectHour records the hour. Hours outside 0-23 and hours whose
	// slot is reported unavailable are rejected with an
	// invalid-selection error.
	SelectHour(hour int) error

	Schedule() responses.DaySchedule
	// Selection reports hour as HourNone until SelectHour has accepted
	// one.
	Selection() (providerID string, date time.Time, hour int)
	State() SchedulingState

	// Submit books the selected provider/date/hour. On failure the
	// selection is left untouched and the flow returns to Ready.
	Submit(ctx context.Context) (*responses.Appointment, error)
}
