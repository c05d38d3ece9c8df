package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "job-tracker-backend/models/db"
)

func AutoMigrateDB() error {
	return Migrate(DB)
}

// Migrate creates or updates the schema on tx.
func Migrate(tx *gorm.DB) error {
	log.Info("running migrations")
	if err := tx.AutoMigrate(&dbmodels.ApplicationStatus{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApplicationStatus")
	}
	if err := tx.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "failed to migrate Application")
	}
	if err := tx.AutoMigrate(&dbmodels.ApplicationFile{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApplicationFile")
	}
	if err := tx.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "failed to migrate Interview")
	}
	if err := tx.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	log.Info("migrations finished")
	return nil
}
