package constvars

const (
	RedisKeyAppointmentOptionCatalog = "appointment_options:catalog"

	// booking:lock:<appointmentDate>:<email>:<treatment>
	RedisKeyBookingLockFormat = "booking:lock:%s:%s:%s"

	// limiter:<group>:<resource>:<windowID>
	RedisKeyResourceLimiterFormat = "limiter:%s:%s:%d"
)

const (
	LimiterGroupBookingAttempt = "BOOKING_ATTEMPT"
)
