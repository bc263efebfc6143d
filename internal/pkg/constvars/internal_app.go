package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_EMAIL_KEY       ContextKey = "identity_email"
)

const (
	REQUEST_ID_PREFIX = "DCTR_PRTL_"
)

const (
	RoleNone   = ""
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

const (
	ResourceUsers                = "users"
	ResourceBookings             = "bookings"
	ResourceDoctors              = "doctors"
	ResourceDrugs                = "drugs"
	ResourceAppointmentOptions   = "appointmentOptions"
	ResourceAppointmentSpecialty = "appointmentSpecialty"
)

const (
	// AccessTokenLifetime is fixed, tokens are never minted with a longer validity.
	AccessTokenLifetime = time.Hour

	// JWT claim carrying the identity.
	AccessTokenClaimEmail = "email"

	// Placeholder sent back when a token is refused at issuance.
	AccessTokenDeniedPlaceholder = ""
)

const (
	DefaultRequestTimeout = 10 * time.Second
	HealthCheckTimeout    = 3 * time.Second
)

const (
	ServerRunningMessage = "Doctors Portal Server Running"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
	HealthStatusUp       = "up"
	HealthStatusDown     = "down"
)

const (
	EventBookingCreated = "booking.created"
)
