package responses

type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type AdminFlag struct {
	IsAdmin bool `json:"isAdmin"`
}

type DoctorFlag struct {
	IsDoctor bool `json:"isDoctor"`
}
