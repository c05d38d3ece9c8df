package applicationsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) error
	ExistsID(id string) (bool, error)
	GetByID(userID, id string) (rec *dbmodels.Application, err error)
	ListActive(userID string) (list []dbmodels.Application, err error)
	ListHistory(userID string) (list []dbmodels.Application, err error)
	Update(userID, id string, version *int64, updMap map[string]interface{}) (updated bool, err error)
	SoftDelete(userID, id string) (deleted bool, err error)
	SoftDeleteByUser(userID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) error {
	return i.db.
		Omit("Status", "File", "Interview").
		Create(&rec).
		Error
}

func (i impl) ExistsID(id string) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID returns the user's application, soft deleted ones included.
func (i impl) GetByID(userID, id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.withRelations().
		Where("id = ?", id).
		Where("user_id = ?", userID).
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

func (i impl) ListActive(userID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.withRelations().
		Where("user_id = ?", userID).
		Where("status_id <> ?", int(models.ApplicationStatusRejected)).
		Where("delete_flag = ?", false).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListHistory(userID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.withRelations().
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update changes a live application. When version is set the row must still carry it.
// The version is bumped on every successful update.
func (i impl) Update(userID, id string, version *int64, updMap map[string]interface{}) (bool, error) {
	if len(updMap) == 0 {
		return true, nil
	}
	values := make(map[string]interface{}, len(updMap)+1)
	for k, v := range updMap {
		values[k] = v
	}
	values["version"] = gorm.Expr("version + 1")
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Where("delete_flag = ?", false)
	if version != nil {
		tx = tx.Where("version = ?", *version)
	}
	tx = tx.Updates(values)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) SoftDelete(userID, id string) (bool, error) {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Where("delete_flag = ?", false).
		Updates(map[string]interface{}{
			"delete_flag": true,
			"version":     gorm.Expr("version + 1"),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) SoftDeleteByUser(userID string) error {
	return i.db.
		Model(&dbmodels.Application{}).
		Where("user_id = ?", userID).
		Where("delete_flag = ?", false).
		Update("delete_flag", true).
		Error
}

func (i impl) withRelations() *gorm.DB {
	return i.db.
		Preload("Status").
		Preload("File").
		Preload("Interview")
}
