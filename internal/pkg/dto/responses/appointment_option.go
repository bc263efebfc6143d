package responses

type AppointmentOption struct {
	ID    string   `json:"_id,omitempty"`
	Name  string   `json:"name"`
	Slots []string `json:"slots"`
	Price *float64 `json:"price,omitempty"`
}

type AppointmentSpecialty struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}
