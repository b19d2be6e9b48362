package exceptions

import (
	"fmt"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
)

var (
	// HTTP plumbing
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusServiceUnavailable, constvars.ErrClientNetworkFailure, constvars.ErrDevFailedToSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevFailedToDecodeResponse, resource))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotBuildMultipart = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotBuildMultipart)
	}

	// Upstream rejections, one per operation so each carries its fixed
	// fallback alert.
	ErrListProvidersRejected = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, KindFromStatus(statusCode, false), statusCode, constvars.ErrClientLoadProviders, fmt.Sprintf(constvars.ErrDevUpstreamRejectedRequest, "providers"))
	}
	ErrDayAvailabilityRejected = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, KindFromStatus(statusCode, false), statusCode, constvars.ErrClientLoadAvailability, fmt.Sprintf(constvars.ErrDevUpstreamRejectedRequest, "day-availability"))
	}
	ErrCreateAppointmentRejected = func(err error, statusCode int) *CustomError {
		custom := BuildNewCustomError(err, KindFromStatus(statusCode, true), statusCode, constvars.ErrClientCreateAppointment, fmt.Sprintf(constvars.ErrDevUpstreamRejectedRequest, "appointments"))
		if custom.Kind == KindConflict {
			custom.ClientMessage = constvars.ErrClientSlotTaken
		}
		return custom
	}
	ErrUpdateProfileRejected = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, KindFromStatus(statusCode, false), statusCode, constvars.ErrClientUpdateProfile, fmt.Sprintf(constvars.ErrDevUpstreamRejectedRequest, "profile"))
	}
	ErrUpdateAvatarRejected = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, KindFromStatus(statusCode, false), statusCode, constvars.ErrClientUpdateAvatar, fmt.Sprintf(constvars.ErrDevUpstreamRejectedRequest, "avatar"))
	}

	// Scheduling
	ErrHourOutOfRange = func(hour int) *CustomError {
		return BuildNewCustomError(nil, KindInvalidSelection, constvars.StatusBadRequest, constvars.ErrClientHourNotSelectable, fmt.Sprintf("%s: %d", constvars.ErrDevHourOutOfRange, hour))
	}
	ErrHourUnavailable = func(hour int) *CustomError {
		return BuildNewCustomError(nil, KindInvalidSelection, constvars.StatusBadRequest, constvars.ErrClientHourNotSelectable, fmt.Sprintf("%s: %d", constvars.ErrDevHourUnavailable, hour))
	}
	ErrNoHourSelected = func() *CustomError {
		return BuildNewCustomError(nil, KindInvalidSelection, constvars.StatusBadRequest, constvars.ErrClientHourNotSelectable, constvars.ErrDevNoHourSelected)
	}
	ErrNoProviderSelected = func() *CustomError {
		return BuildNewCustomError(nil, KindInvalidSelection, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevNoProviderSelected)
	}
	ErrSubmitNotReady = func() *CustomError {
		return BuildNewCustomError(nil, KindInvalidSelection, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSubmitNotReady)
	}
	ErrRefetchInterrupted = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.StatusInternalServerError, constvars.ErrClientLoadAvailability, constvars.ErrDevRefetchLimiterWait)
	}

	// Profile
	ErrInputValidation = func(err error) *CustomError {
		custom := BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevValidationFailed)
		custom.Fields = BuildValidationErrors(err)
		return custom
	}
	ErrAvatarPick = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.StatusInternalServerError, constvars.ErrClientUpdateAvatar, constvars.ErrDevAvatarPickFailed)
	}

	// Session
	ErrSessionRead = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionFileRead)
	}
	ErrSessionWrite = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnknown, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionFileWrite)
	}
	ErrSessionEmpty = func() *CustomError {
		return BuildNewCustomError(nil, KindNotLoggedIn, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionEmpty)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotLoggedIn, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
)
