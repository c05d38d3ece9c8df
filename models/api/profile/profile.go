package profileapimodels

import (
	"strings"

	apimodels "job-tracker-backend/models/api"
)

type Profile struct {
	UserName    string  `json:"user_name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Resume      *string `json:"resume"`
	CoverLetter *string `json:"cover_letter"`
}

// ProfileData is the multipart profile form; resume/cover_letter files are optional parts.
type ProfileData struct {
	UserName    string `json:"username" form:"username" label:"Username" validate:"required,max=256"`
	PhoneNumber string `json:"phone_number" form:"phone_number" label:"Phone number" validate:"omitempty,max=20"`
}

func (r ProfileData) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r ProfileData) GetUserName() string {
	return strings.TrimSpace(r.UserName)
}
