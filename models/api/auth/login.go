package authapimodels

import (
	"strings"

	apimodels "job-tracker-backend/models/api"
)

type LoginRequest struct {
	Email    string `json:"email" label:"Email" validate:"required,email"`
	Password string `json:"password" label:"Password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type RegisterRequest struct {
	Email           string `json:"email" label:"Email" validate:"required,email"`
	Password        string `json:"password" label:"Password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirm_password" label:"Confirm password" validate:"eqfield=Password"`
}

func (r RegisterRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r RegisterRequest) GetEmail() string {
	return strings.TrimSpace(r.Email)
}

type Me struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	UserName    string `json:"user_name"`
	PhoneNumber string `json:"phone_number"`
}
