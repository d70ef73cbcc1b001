package v1

import (
	"github.com/fintrack/backend/internal/models"
)

// RegisterEditable represents all user configurable parameters for registration
type RegisterEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Name     string `json:"name" example:"Jane" default:""`
	Password string `json:"password" example:"correct horse battery staple"`
}

func (editable RegisterEditable) model() models.User {
	return models.User{
		Email: editable.Email,
		Name:  editable.Name,
	}
}

// LoginEditable represents the credentials for a login
type LoginEditable struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type AuthData struct {
	User  models.User `json:"user"`  // The authenticated user
	Token string      `json:"token"` // Bearer token for the Authorization header
}

type AuthResponse struct {
	Data  *AuthData `json:"data"`                                           // The user and their token
	Error *string   `json:"error" example:"the email must be set"` // The error, if any occurred
}
