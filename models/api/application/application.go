package applicationapimodels

import (
	"strings"
	"time"

	"job-tracker-backend/models"
	apimodels "job-tracker-backend/models/api"
)

const (
	DateLayout          = "2006-01-02"
	InterviewDateLayout = "2006-01-02T15:04"
)

// ApplicationData is the create/edit form. Files come as multipart parts next to it.
type ApplicationData struct {
	JobTitle        string `json:"job_title" form:"job_title" label:"Job Title" validate:"required,max=60"`
	Company         string `json:"company" form:"company" label:"Company" validate:"required,max=60"`
	ApplicationDate string `json:"application_date" form:"application_date" label:"Application Date" validate:"required"`

	// edit only
	StatusID int    `json:"status_id" form:"status_id"`
	Version  *int64 `json:"version,omitempty" form:"version"`

	InterviewDate *string `json:"interview_date,omitempty" form:"interview_date"`
	Location      *string `json:"location,omitempty" form:"location" label:"Location" validate:"omitempty,max=60"`
	Memo          *string `json:"memo,omitempty" form:"memo" label:"Memo" validate:"omitempty,max=150"`
}

func (r ApplicationData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if _, err := r.GetApplicationDate(); err != nil {
		return models.NewValidationError("The Application Date field must be a date in %s format.", DateLayout)
	}
	if _, err := r.GetInterviewDate(); err != nil {
		return models.NewValidationError("The Interview Date field must be a date in %s format.", InterviewDateLayout)
	}
	return nil
}

// ValidateEdit also requires a known status.
func (r ApplicationData) ValidateEdit() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !models.ApplicationStatusID(r.StatusID).IsKnown() {
		return models.NewValidationError("The Status field is invalid.")
	}
	return nil
}

func (r ApplicationData) GetApplicationDate() (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(r.ApplicationDate))
}

// GetInterviewDate returns nil when the field was not supplied.
func (r ApplicationData) GetInterviewDate() (*time.Time, error) {
	if r.InterviewDate == nil || strings.TrimSpace(*r.InterviewDate) == "" {
		return nil, nil
	}
	value, err := time.Parse(InterviewDateLayout, strings.TrimSpace(*r.InterviewDate))
	if err != nil {
		return nil, err
	}
	return &value, nil
}

type ApplicationView struct {
	ID              string         `json:"id"`
	JobTitle        string         `json:"job_title"`
	Company         string         `json:"company"`
	ApplicationDate string         `json:"application_date"`
	StatusID        int            `json:"status_id"`
	StatusName      string         `json:"status_name"`
	CreatedAt       time.Time      `json:"created_at"`
	Version         int64          `json:"version"`
	Resume          *string        `json:"resume"`
	CoverLetter     *string        `json:"cover_letter"`
	Interview       *InterviewView `json:"interview"`
}

type InterviewView struct {
	InterviewDate *time.Time `json:"interview_date"`
	Location      *string    `json:"location"`
	Memo          *string    `json:"memo"`
}

type CreateResponse struct {
	ID string `json:"id"`
}

// UploadFiles holds the optional files posted with the form. Nil means not supplied.
type UploadFiles struct {
	Resume      []byte
	CoverLetter []byte
}
