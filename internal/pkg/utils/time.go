package utils

import (
	"time"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
)

// ComposeAppointmentTime takes the day/month/year from date and the
// given hour, with minutes forced to zero. The input date is never
// modified; a fresh value is built instead.
func ComposeAppointmentTime(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

// FormatAppointmentDate renders a point in time the way the upstream
// create-appointment endpoint expects it.
func FormatAppointmentDate(t time.Time) string {
	return t.Format(constvars.AppointmentDateLayout)
}

// FormatHourLabel renders a slot's "HH:00" display label. Only the
// day/month/year of date are used as carriers for the hour.
func FormatHourLabel(date time.Time, hour int) string {
	return ComposeAppointmentTime(date, hour).Format(constvars.HourLabelLayout)
}
