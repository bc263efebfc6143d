package requests

type SaveUser struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}
