package responses

import "github.com/goccy/go-json"

type Booking struct {
	ID              string   `json:"_id,omitempty"`
	AppointmentDate string   `json:"appointmentDate"`
	Treatment       string   `json:"treatment"`
	Slot            string   `json:"slot"`
	Email           string   `json:"email"`
	PatientName     string   `json:"patientName"`
	PatientPhone    string   `json:"patientPhone"`
	Price           *float64 `json:"price,omitempty"`

	Extra map[string]interface{} `json:"-"`
}

// MarshalJSON writes the known fields over Extra, so a stored extra key
// never shadows a schema field.
func (b Booking) MarshalJSON() ([]byte, error) {
	type plain Booking
	known, err := json.Marshal(plain(b))
	if err != nil || len(b.Extra) == 0 {
		return known, err
	}

	var knownFields map[string]interface{}
	if err := json.Unmarshal(known, &knownFields); err != nil {
		return nil, err
	}
	merged := make(map[string]interface{}, len(b.Extra)+len(knownFields))
	for key, value := range b.Extra {
		merged[key] = value
	}
	for key, value := range knownFields {
		merged[key] = value
	}
	return json.Marshal(merged)
}

// CreateBooking is the outcome of a booking attempt. A conflict is reported
// with Acknowledged false and a Message, never as a transport error.
type CreateBooking struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId,omitempty"`
	Message      string `json:"message,omitempty"`
}
