package applications

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	applicationstatusstore "job-tracker-backend/lib/application-status/store"
	applicationsstore "job-tracker-backend/lib/applications/store"
	interviewstore "job-tracker-backend/lib/interview/store"
	"job-tracker-backend/lib/utils/helpers"
	"job-tracker-backend/lib/utils/lock"
	"job-tracker-backend/models"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

const statusBatchWait = 10 * time.Second

// UpdateStatuses applies each status change in its own transaction, in id order.
// The first failure stops the batch; changes committed before it are kept.
// Batches of one user do not interleave.
func (i impl) UpdateStatuses(ctx context.Context, userID string, statuses map[string]int) (results []applicationapimodels.StatusUpdateResult, err error) {
	ok, err := lock.WithDelay(ctx, "status-batch:"+userID, statusBatchWait, func() error {
		results = i.applyStatuses(ctx, userID, statuses)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrStatusUpdateBusy
	}
	return results, nil
}

func (i impl) applyStatuses(ctx context.Context, userID string, statuses map[string]int) []applicationapimodels.StatusUpdateResult {
	results := make([]applicationapimodels.StatusUpdateResult, 0, len(statuses))
	aborted := false
	for _, id := range helpers.SortedKeys(statuses) {
		result := applicationapimodels.StatusUpdateResult{
			ID:       id,
			StatusID: statuses[id],
		}
		if aborted || helpers.IsContextDone(ctx) {
			result.Outcome = applicationapimodels.StatusUpdateNotAttempted
			results = append(results, result)
			continue
		}
		outcome, err := i.applyStatus(userID, id, statuses[id])
		if err != nil {
			log.
				WithError(err).
				WithField("user_id", userID).
				WithField("application_id", id).
				WithField("status_id", statuses[id]).
				Error("failed to update application status, batch aborted")
			result.Outcome = applicationapimodels.StatusUpdateFailed
			result.Error = err.Error()
			aborted = true
		} else {
			result.Outcome = outcome
		}
		results = append(results, result)
	}
	return results
}

func (i impl) applyStatus(userID, id string, statusID int) (applicationapimodels.StatusUpdateOutcome, error) {
	rec, err := i.appStore.GetByID(userID, id)
	if err != nil {
		return applicationapimodels.StatusUpdateFailed, err
	}
	if !isActive(rec) {
		return applicationapimodels.StatusUpdateSkipped, nil
	}

	err = i.db.Transaction(func(tx *gorm.DB) error {
		status, err := applicationstatusstore.NewInstance(tx).GetByID(statusID)
		if err != nil {
			return err
		}
		if status == nil {
			return errors.Errorf("unknown status %d", statusID)
		}
		updated, err := applicationsstore.NewInstance(tx).Update(userID, id, nil, map[string]interface{}{
			"status_id": statusID,
		})
		if err != nil {
			return err
		}
		if !updated {
			return models.ErrApplicationNotFound
		}
		if models.ApplicationStatusID(statusID) == models.ApplicationStatusApply {
			return nil
		}
		store := interviewstore.NewInstance(tx)
		exist, err := store.ExistsForApplication(id)
		if err != nil {
			return err
		}
		if exist {
			return nil
		}
		return store.Create(dbmodels.Interview{ApplicationID: id})
	})
	if err != nil {
		return applicationapimodels.StatusUpdateFailed, err
	}
	return applicationapimodels.StatusUpdateApplied, nil
}

// isActive reports whether rec is on the active list, the only place statuses are changed from.
func isActive(rec *dbmodels.Application) bool {
	return rec != nil && !rec.DeleteFlag && models.ApplicationStatusID(rec.StatusID) != models.ApplicationStatusRejected
}
