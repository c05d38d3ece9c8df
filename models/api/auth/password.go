package authapimodels

import (
	apimodels "job-tracker-backend/models/api"
)

type PasswordRecovery struct {
	Email string `json:"email" label:"Email" validate:"required,email"` // reset code is sent here
}

func (r PasswordRecovery) Validate() error {
	return apimodels.ValidateStruct(r)
}

type PasswordResetRequest struct {
	ResetCode       string `json:"reset_code" label:"Reset code" validate:"required"`
	Password        string `json:"password" label:"Password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirm_password" label:"Confirm password" validate:"eqfield=Password"`
}

func (r PasswordResetRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" label:"Current password" validate:"required"`
	NewPassword     string `json:"new_password" label:"New password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirm_password" label:"Confirm new password" validate:"eqfield=NewPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" label:"New email" validate:"required,email"`
}

func (r ChangeEmailRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type DeleteAccountRequest struct {
	Password string `json:"password" label:"Password" validate:"required"`
}

func (r DeleteAccountRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}
