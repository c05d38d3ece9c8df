package applicationstatusstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	List() (list []dbmodels.ApplicationStatus, err error)
	GetByID(id int) (rec *dbmodels.ApplicationStatus, err error)
	Count() (count int64, err error)
	CreateIfAbsent(rec dbmodels.ApplicationStatus) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) List() (list []dbmodels.ApplicationStatus, err error) {
	list = []dbmodels.ApplicationStatus{}
	err = i.db.
		Order("id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByID(id int) (*dbmodels.ApplicationStatus, error) {
	rec := dbmodels.ApplicationStatus{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.ApplicationStatus{}).
		Count(&count).
		Error
	return count, err
}

// CreateIfAbsent inserts rec unless a row with the same id exists.
func (i impl) CreateIfAbsent(rec dbmodels.ApplicationStatus) error {
	return i.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rec).
		Error
}
