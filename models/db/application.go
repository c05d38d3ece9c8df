package dbmodels

import (
	"time"

	applicationapimodels "job-tracker-backend/models/api/application"
)

type Application struct {
	ID              string `gorm:"primaryKey;type:varchar(19)"`
	UserID          string `gorm:"type:varchar(36);not null;index"`
	JobTitle        string `gorm:"type:varchar(60);not null"`
	Company         string `gorm:"type:varchar(60);not null"`
	ApplicationDate time.Time
	StatusID        int                `gorm:"not null;default:1;index"`
	Status          *ApplicationStatus `gorm:"foreignKey:StatusID"`
	DeleteFlag      bool               `gorm:"not null;default:false"`
	CreatedAt       time.Time
	Version         int64            `gorm:"not null;default:1"`
	File            *ApplicationFile `gorm:"foreignKey:ApplicationID"`
	Interview       *Interview       `gorm:"foreignKey:ApplicationID"`
}

func (r Application) ToModel() applicationapimodels.ApplicationView {
	result := applicationapimodels.ApplicationView{
		ID:              r.ID,
		JobTitle:        r.JobTitle,
		Company:         r.Company,
		ApplicationDate: r.ApplicationDate.Format(applicationapimodels.DateLayout),
		StatusID:        r.StatusID,
		CreatedAt:       r.CreatedAt,
		Version:         r.Version,
	}
	if r.Status != nil {
		result.StatusName = r.Status.Name
	}
	if r.File != nil {
		result.Resume = r.File.Resume
		result.CoverLetter = r.File.CoverLetter
	}
	if r.Interview != nil {
		result.Interview = &applicationapimodels.InterviewView{
			InterviewDate: r.Interview.InterviewDate,
			Location:      r.Interview.Location,
			Memo:          r.Interview.Memo,
		}
	}
	return result
}

// GetMemo returns the interview memo, empty when there is none.
func (r Application) GetMemo() (string, bool) {
	if r.Interview == nil || r.Interview.Memo == nil {
		return "", false
	}
	return *r.Interview.Memo, true
}
