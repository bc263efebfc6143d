package models

import "doctors-portal-service/internal/pkg/dto/responses"

// AppointmentOption is the catalog template of a treatment: the nominal
// time slots offered every day, independent of any date.
type AppointmentOption struct {
	ID    string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string   `json:"name" bson:"name"`
	Slots []string `json:"slots" bson:"slots"`
	Price *float64 `json:"price,omitempty" bson:"price,omitempty"`
}

// WithSlots returns a copy of the option carrying the given slots.
func (ao AppointmentOption) WithSlots(slots []string) AppointmentOption {
	ao.Slots = slots
	return ao
}

func (ao AppointmentOption) ConvertIntoResponse() responses.AppointmentOption {
	return responses.AppointmentOption{
		ID:    ao.ID,
		Name:  ao.Name,
		Slots: ao.Slots,
		Price: ao.Price,
	}
}

func (ao AppointmentOption) ConvertIntoSpecialtyResponse() responses.AppointmentSpecialty {
	return responses.AppointmentSpecialty{
		ID:   ao.ID,
		Name: ao.Name,
	}
}
