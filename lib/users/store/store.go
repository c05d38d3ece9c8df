package usersstore

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	FindByResetCode(code string) (rec *dbmodels.User, err error)
	ExistByEmail(email, excludeID string) (bool, error)
	ExistByUserName(userName, excludeID string) (bool, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ClearExpiredResetCodes(now time.Time) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	return i.first(i.db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))))
}

func (i impl) FindByResetCode(code string) (*dbmodels.User, error) {
	if code == "" {
		return nil, nil
	}
	return i.first(i.db.Where("reset_code = ?", code))
}

func (i impl) ExistByEmail(email, excludeID string) (bool, error) {
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	return i.exist(tx, excludeID)
}

func (i impl) ExistByUserName(userName, excludeID string) (bool, error) {
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("LOWER(user_name) = ?", strings.ToLower(strings.TrimSpace(userName)))
	return i.exist(tx, excludeID)
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.User{
		BaseModel: dbmodels.BaseModel{
			ID: id,
		},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) ClearExpiredResetCodes(now time.Time) (int64, error) {
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("reset_code <> ''").
		Where("reset_code_expires < ?", now).
		Update("reset_code", "")
	return tx.RowsAffected, tx.Error
}

func (i impl) first(tx *gorm.DB) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := tx.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) exist(tx *gorm.DB, excludeID string) (bool, error) {
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
