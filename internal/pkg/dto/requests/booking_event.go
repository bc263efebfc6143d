package requests

import "time"

// BookingCreatedEvent is the message body published after a booking is stored.
type BookingCreatedEvent struct {
	Event           string    `json:"event"`
	BookingID       string    `json:"bookingId"`
	AppointmentDate string    `json:"appointmentDate"`
	Treatment       string    `json:"treatment"`
	Slot            string    `json:"slot"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"createdAt"`
}
