package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Bookings
	GetBookingSuccessMessage    = "get booking successfully"
	DeleteBookingSuccessMessage = "booking deleted successfully"

	// Health
	HealthOKMessage       = "all dependencies are reachable"
	HealthDegradedMessage = "one or more dependencies are unreachable"
)

const (
	// BookingConflictMessageFormat is shown to the patient when the conflict triple already exists.
	BookingConflictMessageFormat = "You already have a booking on %s"

	// BookingInProgressMessageFormat is shown while another request for the same triple holds the lock.
	BookingInProgressMessageFormat = "Your booking on %s is still being processed, please try again shortly"
)
