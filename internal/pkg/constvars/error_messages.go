package constvars

// Client messages are the fixed, user-facing alert texts. One per
// operation, plus kind-specific variants the screens may prefer.
const (
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please try again"
	ErrClientCannotProcessRequest          = "Cannot process the request"
	ErrClientNetworkFailure                = "Network error, check your connection and try again"
	ErrClientNotLoggedIn                   = "Your session has expired, please sign in again"

	ErrClientLoadProviders     = "Could not load the list of providers"
	ErrClientLoadAvailability  = "Could not load the availability for this day"
	ErrClientCreateAppointment = "An error occurred while creating the appointment, please try again"
	ErrClientSlotTaken         = "The selected time is no longer available"
	ErrClientUpdateProfile     = "An error occurred while updating your profile, please try again"
	ErrClientUpdateAvatar      = "Could not update your avatar, please try again"
	ErrClientHourNotSelectable = "This time cannot be selected"
)

const (
	ErrDevFailedToCreateHTTPRequest = "failed to create HTTP request"
	ErrDevFailedToSendHTTPRequest   = "failed to send HTTP request"
	ErrDevFailedToDecodeResponse    = "failed to decode %s response"
	ErrDevUpstreamRejectedRequest   = "upstream rejected %s request"
	ErrDevCannotMarshalJSON         = "cannot marshal request body to JSON"
	ErrDevCannotBuildMultipart      = "cannot build multipart request body"
	ErrDevValidationFailed          = "request validation failed"

	ErrDevHourOutOfRange      = "selected hour is outside 0-23"
	ErrDevHourUnavailable     = "selected hour is reported unavailable"
	ErrDevNoHourSelected      = "no hour selected for submission"
	ErrDevNoProviderSelected  = "no provider selected for submission"
	ErrDevSubmitNotReady      = "submission attempted outside the ready state"
	ErrDevAvatarPickFailed    = "avatar selection failed"
	ErrDevSessionFileRead     = "failed to read session file"
	ErrDevSessionFileWrite    = "failed to write session file"
	ErrDevSessionEmpty        = "no session stored"
	ErrDevAuthTokenInvalid    = "session token is invalid or expired"
	ErrDevRefetchLimiterWait  = "availability refetch limiter interrupted"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"eqfield":       "must match %s",
	"required_with": "is required when %s is present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":           true,
	"max":           true,
	"eqfield":       true,
	"required_with": true,
}
