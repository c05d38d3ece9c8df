package db

import (
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	applicationstatusstore "job-tracker-backend/lib/application-status/store"
	"job-tracker-backend/models"
	dbmodels "job-tracker-backend/models/db"
)

func InitPreload() error {
	return SeedApplicationStatuses(DB)
}

// SeedApplicationStatuses fills the status reference table. Safe to run repeatedly
// and from several instances at once: rows are keyed by their fixed ids.
func SeedApplicationStatuses(tx *gorm.DB) error {
	store := applicationstatusstore.NewInstance(tx)
	count, err := store.Count()
	if err != nil {
		return errors.Wrap(err, "failed to count application statuses")
	}
	if count >= int64(len(models.ApplicationStatusNames)) {
		log.Info("application statuses already filled")
		return nil
	}

	ids := make([]int, 0, len(models.ApplicationStatusNames))
	for id := range models.ApplicationStatusNames {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		rec := dbmodels.ApplicationStatus{
			ID:   id,
			Name: models.ApplicationStatusID(id).String(),
		}
		if err = store.CreateIfAbsent(rec); err != nil {
			log.
				WithError(err).
				WithField("status_id", id).
				Error("failed to add application status")
			return errors.Wrap(err, "failed to seed application statuses")
		}
	}
	log.Info("application statuses added")
	return nil
}
