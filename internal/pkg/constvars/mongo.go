package constvars

const (
	MongoCollectionAppointmentOptions = "appointmentOptions"
	MongoCollectionBookings           = "bookings"
	MongoCollectionUsers              = "users"
	MongoCollectionDoctors            = "doctors"
	MongoCollectionDrugs              = "drugs"
)

const (
	MongoIndexBookingConflictTriple = "uniq_booking_date_email_treatment"
	MongoIndexUserEmail             = "uniq_user_email"
)
