package applicationfilestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicationFile) error
	GetByApplicationID(applicationID string) (rec *dbmodels.ApplicationFile, err error)
	Update(applicationID string, updMap map[string]interface{}) error
	ExistsForUser(userID, fileName string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationFile) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) GetByApplicationID(applicationID string) (*dbmodels.ApplicationFile, error) {
	rec := dbmodels.ApplicationFile{}
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

func (i impl) Update(applicationID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ApplicationFile{}).
		Where("application_id = ?", applicationID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application file record not found")
	}
	return nil
}

// ExistsForUser reports whether fileName belongs to one of the user's applications.
func (i impl) ExistsForUser(userID, fileName string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.ApplicationFile{}).
		Joins("JOIN applications ON applications.id = application_files.application_id").
		Where("applications.user_id = ?", userID).
		Where("application_files.resume = ? OR application_files.cover_letter = ?", fileName, fileName).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
