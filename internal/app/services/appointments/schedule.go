package appointments

import (
	"time"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/responses"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/utils"
)

// PartitionDayAvailability splits a day's raw slots into the morning
// (<12), afternoon (12-17) and night (>=18) buckets, attaching each
// slot's "HH:00" label. Pure: date is only a day/month/year carrier
// for the labels and is never modified; slot order within a bucket
// follows the input order.
func PartitionDayAvailability(slots []responses.HourAvailability, date time.Time) responses.DaySchedule {
	var schedule responses.DaySchedule
	for _, slot := range slots {
		option := responses.HourOption{
			Hour:      slot.Hour,
			Available: slot.Available,
			Label:     utils.FormatHourLabel(date, slot.Hour),
		}
		switch {
		case slot.Hour < 12:
			schedule.Morning = append(schedule.Morning, option)
		case slot.Hour < 18:
			schedule.Afternoon = append(schedule.Afternoon, option)
		default:
			schedule.Night = append(schedule.Night, option)
		}
	}
	return schedule
}
