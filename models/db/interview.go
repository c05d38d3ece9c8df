package dbmodels

import "time"

type Interview struct {
	ID            uint   `gorm:"primaryKey"`
	ApplicationID string `gorm:"type:varchar(19);not null;uniqueIndex"`
	InterviewDate *time.Time
	Location      *string `gorm:"type:varchar(60)"`
	Memo          *string `gorm:"type:varchar(150)"`
}
