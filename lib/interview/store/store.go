package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) error
	GetByApplicationID(applicationID string) (rec *dbmodels.Interview, err error)
	ExistsForApplication(applicationID string) (bool, error)
	Update(applicationID string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) GetByApplicationID(applicationID string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("application_id = ?", applicationID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ExistsForApplication(applicationID string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Update(applicationID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Interview{}).
		Where("application_id = ?", applicationID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("interview record not found")
	}
	return nil
}
