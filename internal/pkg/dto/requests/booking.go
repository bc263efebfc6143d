package requests

import "github.com/goccy/go-json"

type CreateBooking struct {
	AppointmentDate string   `json:"appointmentDate" validate:"required,not_blank"`
	Treatment       string   `json:"treatment" validate:"required,not_blank"`
	Email           string   `json:"email" validate:"required,not_blank"`
	Slot            string   `json:"slot"`
	PatientName     string   `json:"patientName"`
	PatientPhone    string   `json:"patientPhone"`
	Price           *float64 `json:"price,omitempty"`

	// Extra carries every body field not listed above.
	Extra map[string]interface{} `json:"-"`
}

var createBookingFields = []string{
	"appointmentDate",
	"treatment",
	"email",
	"slot",
	"patientName",
	"patientPhone",
	"price",
}

func (r *CreateBooking) UnmarshalJSON(data []byte) error {
	type plain CreateBooking
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, name := range createBookingFields {
		delete(fields, name)
	}
	if len(fields) > 0 {
		r.Extra = fields
	}
	return nil
}

type ListBookings struct {
	IdentityEmail string
	Email         string
}
