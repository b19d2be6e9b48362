package appointments

import (
	"context"
	"sync"
	"time"

	"github.com/thiagothgb/gostack-mobile-2020/internal/app/config"
	"github.com/thiagothgb/gostack-mobile-2020/internal/app/contracts"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type schedulingUsecase struct {
	Log               *zap.Logger
	ProviderClient    contracts.ProviderClient
	AppointmentClient contracts.AppointmentClient
	limiter           *rate.Limiter

	mu               sync.Mutex
	state            contracts.SchedulingState
	providers        []responses.Provider
	selectedProvider string
	selectedDate     time.Time
	selectedHour     int
	slots            []responses.HourAvailability
	// fetchSeq tags every availability fetch; a response whose tag is
	// older than the latest issued fetch is discarded, so a slow reply
	// can never overwrite a newer selection's slots.
	fetchSeq uint64
}

func NewSchedulingUsecase(log *zap.Logger, providerClient contracts.ProviderClient, appointmentClient contracts.AppointmentClient, internalConfig *config.InternalConfig) contracts.SchedulingUsecase {
	return &schedulingUsecase{
		Log:               log,
		ProviderClient:    providerClient,
		AppointmentClient: appointmentClient,
		limiter: rate.NewLimiter(
			rate.Limit(internalConfig.App.AvailabilityRefetchPerSecond),
			internalConfig.App.AvailabilityRefetchBurst,
		),
		state:        contracts.StateIdle,
		selectedDate: time.Now(),
		selectedHour: contracts.HourNone,
	}
}

func (u *schedulingUsecase) LoadProviders(ctx context.Context) ([]responses.Provider, error) {
	result, err := u.ProviderClient.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.providers = result
	u.mu.Unlock()
	return result, nil
}

func (u *schedulingUsecase) Providers() []responses.Provider {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.providers
}

func (u *schedulingUsecase) SelectProvider(ctx context.Context, providerID string) error {
	u.mu.Lock()
	u.selectedProvider = providerID
	seq, date := u.invalidateAvailabilityLocked()
	u.mu.Unlock()

	return u.refetchAvailability(ctx, providerID, date, seq)
}

func (u *schedulingUsecase) SelectDate(ctx context.Context, date time.Time) error {
	u.mu.Lock()
	u.selectedDate = date
	seq, _ := u.invalidateAvailabilityLocked()
	providerID := u.selectedProvider
	u.mu.Unlock()

	return u.refetchAvailability(ctx, providerID, date, seq)
}

// invalidateAvailabilityLocked discards the current slots (stale data
// is dropped, never merged), resets the hour selection to none and
// issues a new fetch sequence number. Caller holds mu.
func (u *schedulingUsecase) invalidateAvailabilityLocked() (uint64, time.Time) {
	u.slots = nil
	u.selectedHour = contracts.HourNone
	u.state = contracts.StateAwaitingAvailability
	u.fetchSeq++
	return u.fetchSeq, u.selectedDate
}

func (u *schedulingUsecase) refetchAvailability(ctx context.Context, providerID string, date time.Time, seq uint64) error {
	if err := u.limiter.Wait(ctx); err != nil {
		u.mu.Lock()
		if seq == u.fetchSeq {
			u.state = contracts.StateReady
		}
		u.mu.Unlock()
		return exceptions.ErrRefetchInterrupted(err)
	}

	slots, err := u.ProviderClient.FindDayAvailability(ctx, providerID, date)

	u.mu.Lock()
	defer u.mu.Unlock()
	if seq != u.fetchSeq {
		u.Log.Debug("discarding stale day-availability response",
			zap.Uint64(constvars.LoggingFetchSeqKey, seq),
			zap.Uint64(constvars.LoggingLatestSeqKey, u.fetchSeq))
		return nil
	}

	u.state = contracts.StateReady
	if err != nil {
		return err
	}
	u.slots = slots
	return nil
}

func (u *schedulingUsecase) SelectHour(hour int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if hour < 0 || hour > 23 {
		return exceptions.ErrHourOutOfRange(hour)
	}
	for _, slot := range u.slots {
		if slot.Hour != hour {
			continue
		}
		if !slot.Available {
			return exceptions.ErrHourUnavailable(hour)
		}
		u.selectedHour = hour
		return nil
	}
	return exceptions.ErrHourUnavailable(hour)
}

func (u *schedulingUsecase) Schedule() responses.DaySchedule {
	u.mu.Lock()
	defer u.mu.Unlock()
	return PartitionDayAvailability(u.slots, u.selectedDate)
}

func (u *schedulingUsecase) Selection() (string, time.Time, int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.selectedProvider, u.selectedDate, u.selectedHour
}

func (u *schedulingUsecase) State() contracts.SchedulingState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *schedulingUsecase) Submit(ctx context.Context) (*responses.Appointment, error) {
	u.mu.Lock()
	if u.state != contracts.StateReady {
		u.mu.Unlock()
		return nil, exceptions.ErrSubmitNotReady()
	}
	if u.selectedProvider == "" {
		u.mu.Unlock()
		return nil, exceptions.ErrNoProviderSelected()
	}
	if u.selectedHour == contracts.HourNone {
		u.mu.Unlock()
		return nil, exceptions.ErrNoHourSelected()
	}
	providerID := u.selectedProvider
	composed := utils.ComposeAppointmentTime(u.selectedDate, u.selectedHour)
	u.state = contracts.StateSubmitting
	u.mu.Unlock()

	request := &requests.CreateAppointment{
		ProviderID: providerID,
		Date:       utils.FormatAppointmentDate(composed),
	}

	appointment, err := u.AppointmentClient.Create(ctx, request)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		// Retryable: the whole selection stays as it was.
		u.state = contracts.StateReady
		return nil, err
	}
	u.state = contracts.StateConfirmed
	return appointment, nil
}
