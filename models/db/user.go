package dbmodels

import (
	"time"

	authapimodels "job-tracker-backend/models/api/auth"
	profileapimodels "job-tracker-backend/models/api/profile"
)

type User struct {
	BaseModel
	Email            string  `gorm:"type:varchar(256);not null;uniqueIndex"`
	UserName         string  `gorm:"type:varchar(256);not null;uniqueIndex"`
	PasswordHash     string  `gorm:"type:varchar(128)"`
	PhoneNumber      string  `gorm:"type:varchar(20)"`
	Resume           *string `gorm:"type:varchar(255)"`
	CoverLetter      *string `gorm:"type:varchar(255)"`
	ResetCode        string  `gorm:"type:varchar(64);index"`
	ResetCodeExpires time.Time
}

func (r User) ToProfile() profileapimodels.Profile {
	return profileapimodels.Profile{
		UserName:    r.UserName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Resume:      r.Resume,
		CoverLetter: r.CoverLetter,
	}
}

func (r User) ToMe() authapimodels.Me {
	return authapimodels.Me{
		ID:          r.ID,
		Email:       r.Email,
		UserName:    r.UserName,
		PhoneNumber: r.PhoneNumber,
	}
}
