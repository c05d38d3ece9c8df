package applicationstatusprovider

import (
	"gorm.io/gorm"
	"job-tracker-backend/db"
	applicationstatusstore "job-tracker-backend/lib/application-status/store"
	initchecker "job-tracker-backend/lib/utils/init-checker"
	dictapimodels "job-tracker-backend/models/api/dict"
)

type Provider interface {
	List() (list []dictapimodels.ApplicationStatusView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(db.DB)
}

func NewInstance(DB *gorm.DB) Provider {
	instance := impl{
		store: applicationstatusstore.NewInstance(DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	return instance
}

type impl struct {
	store applicationstatusstore.Provider
}

func (i impl) List() ([]dictapimodels.ApplicationStatusView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.ApplicationStatusView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.ApplicationStatusConvert(rec))
	}
	return result, nil
}
