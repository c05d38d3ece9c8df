package resetcodeworker

import (
	"context"
	"time"

	"gorm.io/gorm"
	"job-tracker-backend/db"
	usersstore "job-tracker-backend/lib/users/store"
	baseworker "job-tracker-backend/lib/utils/base-worker"
)

const (
	firstRunDelay = 30 * time.Second
	runInterval   = time.Hour
)

// StartWorker periodically wipes password reset codes that have expired.
func StartWorker(ctx context.Context) {
	i := newInstance(db.DB)
	go i.Run(ctx, i.handle)
}

func newInstance(DB *gorm.DB) *impl {
	return &impl{
		BaseImpl:   *baseworker.NewInstance("ResetCodeCleanupWorker", firstRunDelay, runInterval),
		usersStore: usersstore.NewInstance(DB),
	}
}

type impl struct {
	baseworker.BaseImpl
	usersStore usersstore.Provider
}

func (i impl) handle(ctx context.Context) {
	count, err := i.usersStore.ClearExpiredResetCodes(time.Now())
	if err != nil {
		i.GetLogger().WithError(err).Error("failed to clear expired reset codes")
		return
	}
	if count > 0 {
		i.GetLogger().WithField("count", count).Info("expired reset codes cleared")
	}
}
