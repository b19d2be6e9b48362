package constvars

const (
	// AppointmentDateLayout is the timestamp format the upstream API
	// expects on appointment creation.
	AppointmentDateLayout = "2006-01-02 15:04"
	// HourLabelLayout renders a slot hour as "HH:00".
	HourLabelLayout = "15:04"
)

const (
	EndpointProviders       = "/providers"
	EndpointDayAvailability = "/providers/%s/day-availability"
	EndpointAppointments    = "/appointments"
	EndpointProfile         = "/profile"
	EndpointUsersAvatar     = "/users/avatar"
)

const (
	QueryParamDay   = "day"
	QueryParamMonth = "month"
	QueryParamYear  = "year"
)

const (
	AvatarFormField = "avatar"

	// JWTClaimExpiry is the registered claim checked before attaching
	// the session token to outgoing requests.
	JWTClaimExpiry = "exp"
)

const (
	ScreenCreateAppointment  = "CreateAppointment"
	ScreenAppointmentCreated = "AppointmentCreated"
	ScreenProfile            = "Profile"
)
