package contracts

import (
	"context"
	"time"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
)

type ProviderClient interface {
	// FindAll lists every provider, preserving the server-determined
	// order.
	FindAll(ctx context.Context) ([]responses.Provider, error)
	// FindDayAvailability fetches the hourly slots for one provider on
	// the calendar day carried by date (its hour field is ignored).
	FindDayAvailability(ctx context.Context, providerID string, date time.Time) ([]responses.HourAvailability, error)
}
