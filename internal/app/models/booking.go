package models

import (
	"doctors-portal-service/internal/pkg/dto/responses"
	"time"
)

type Booking struct {
	ID              string    `bson:"_id,omitempty"`
	AppointmentDate string    `bson:"appointmentDate"`
	Treatment       string    `bson:"treatment"`
	Slot            string    `bson:"slot"`
	Email           string    `bson:"email"`
	PatientName     string    `bson:"patientName"`
	PatientPhone    string    `bson:"patientPhone"`
	Price           *float64  `bson:"price,omitempty"`
	CreatedAt       time.Time `bson:"createdAt"`

	// Extra holds client fields outside the known schema, stored as received.
	Extra map[string]interface{} `bson:",inline"`
}

var bookingReservedFields = map[string]struct{}{
	"_id":             {},
	"appointmentDate": {},
	"treatment":       {},
	"slot":            {},
	"email":           {},
	"patientName":     {},
	"patientPhone":    {},
	"price":           {},
	"createdAt":       {},
}

// SetExtra copies extra into b.Extra, skipping keys the booking schema owns.
func (b *Booking) SetExtra(extra map[string]interface{}) {
	for key, value := range extra {
		if _, reserved := bookingReservedFields[key]; reserved {
			continue
		}
		if b.Extra == nil {
			b.Extra = make(map[string]interface{}, len(extra))
		}
		b.Extra[key] = value
	}
}

// BookingConflictKey is the triple a patient may hold at most one booking for.
type BookingConflictKey struct {
	AppointmentDate string
	Email           string
	Treatment       string
}

func (b Booking) ConflictKey() BookingConflictKey {
	return BookingConflictKey{
		AppointmentDate: b.AppointmentDate,
		Email:           b.Email,
		Treatment:       b.Treatment,
	}
}

func (b Booking) ConvertIntoResponse() responses.Booking {
	return responses.Booking{
		ID:              b.ID,
		AppointmentDate: b.AppointmentDate,
		Treatment:       b.Treatment,
		Slot:            b.Slot,
		Email:           b.Email,
		PatientName:     b.PatientName,
		PatientPhone:    b.PatientPhone,
		Price:           b.Price,
		Extra:           b.Extra,
	}
}
