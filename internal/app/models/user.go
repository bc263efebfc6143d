package models

import (
	"doctors-portal-service/internal/pkg/dto/responses"
)

type User struct {
	ID    string `bson:"_id,omitempty"`
	Name  string `bson:"name,omitempty"`
	Email string `bson:"email"`
	Role  string `bson:"role,omitempty"`
}

func (u *User) HasRole(role string) bool {
	return u != nil && u.Role == role
}

func (u User) ConvertIntoResponse() responses.User {
	return responses.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
