package applications

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-tracker-backend/config"
	"job-tracker-backend/db"
	applicationfilestore "job-tracker-backend/lib/application-file/store"
	applicationstatusstore "job-tracker-backend/lib/application-status/store"
	applicationfilter "job-tracker-backend/lib/applications/filter"
	applicationsstore "job-tracker-backend/lib/applications/store"
	filestorage "job-tracker-backend/lib/file-storage"
	interviewstore "job-tracker-backend/lib/interview/store"
	idgenerator "job-tracker-backend/lib/utils/id-generator"
	initchecker "job-tracker-backend/lib/utils/init-checker"
	"job-tracker-backend/lib/utils/paginator"
	"job-tracker-backend/models"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type Provider interface {
	List(userID string, filter applicationapimodels.ListFilter) (applicationapimodels.ListResponse, error)
	History(userID string, filter applicationapimodels.ListFilter) (applicationapimodels.ListResponse, error)
	ListForExport(userID string, filter applicationapimodels.ListFilter) ([]applicationapimodels.ApplicationView, error)
	HistoryForExport(userID string, filter applicationapimodels.ListFilter) ([]applicationapimodels.ApplicationView, error)
	Get(userID, id string) (applicationapimodels.ApplicationView, error)
	Create(ctx context.Context, userID string, data applicationapimodels.ApplicationData, files applicationapimodels.UploadFiles) (id string, err error)
	Update(ctx context.Context, userID, id string, data applicationapimodels.ApplicationData, files applicationapimodels.UploadFiles) error
	Delete(userID, id string) error
	UpdateStatuses(ctx context.Context, userID string, statuses map[string]int) ([]applicationapimodels.StatusUpdateResult, error)
	DownloadFile(ctx context.Context, userID, name string) (content []byte, contentType string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"files", filestorage.Instance,
	)
	Instance = NewInstance(db.DB, filestorage.Instance, config.Conf.S3.ApplicationBucket)
}

func NewInstance(DB *gorm.DB, files filestorage.Provider, bucket string) Provider {
	return &impl{
		db:             DB,
		appStore:       applicationsstore.NewInstance(DB),
		statusStore:    applicationstatusstore.NewInstance(DB),
		fileStore:      applicationfilestore.NewInstance(DB),
		interviewStore: interviewstore.NewInstance(DB),
		files:          files,
		bucket:         bucket,
		newID:          idgenerator.New,
	}
}

type impl struct {
	db             *gorm.DB
	appStore       applicationsstore.Provider
	statusStore    applicationstatusstore.Provider
	fileStore      applicationfilestore.Provider
	interviewStore interviewstore.Provider
	files          filestorage.Provider
	bucket         string
	newID          func(taken func(id string) (bool, error)) (string, error)
}

func (i impl) List(userID string, filter applicationapimodels.ListFilter) (applicationapimodels.ListResponse, error) {
	list, err := i.appStore.ListActive(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to load applications")
		return applicationapimodels.ListResponse{}, err
	}
	result, err := i.buildList(list, filter, true)
	if err != nil {
		return applicationapimodels.ListResponse{}, err
	}
	if len(list) == 0 {
		result.Notice = models.NoticeNoApplications
	}
	return result, nil
}

// History searches every application of the user, deleted and rejected included.
func (i impl) History(userID string, filter applicationapimodels.ListFilter) (applicationapimodels.ListResponse, error) {
	list, err := i.appStore.ListHistory(userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to load application history")
		return applicationapimodels.ListResponse{}, err
	}
	result, err := i.buildList(list, filter, false)
	if err != nil {
		return applicationapimodels.ListResponse{}, err
	}
	if len(list) == 0 {
		result.Notice = models.NoticeNoHistory
	}
	return result, nil
}

func (i impl) buildList(list []dbmodels.Application, filter applicationapimodels.ListFilter, withChoices bool) (applicationapimodels.ListResponse, error) {
	statuses, err := i.statusStore.List()
	if err != nil {
		return applicationapimodels.ListResponse{}, err
	}
	keyword, page := filter.Normalize()
	order := applicationfilter.ParseSortOrder(filter.Sort)
	filtered := applicationfilter.Apply(list, applicationfilter.Criteria{
		Keyword:  keyword,
		StatusID: filter.Status,
	})
	pageData := paginator.Paginate(applicationfilter.Sort(filtered, order), page, models.ApplicationPageSize)

	result := newListResponse(pageData, order)
	result.Keyword = keyword
	result.Status = filter.Status
	result.StatusFilterOptions = applicationfilter.StatusFilterOptions(statuses, filter.Status)
	if withChoices {
		result.StatusChoices = applicationfilter.StatusChoices(statuses, pageData.Items)
	}
	if len(list) > 0 && len(filtered) == 0 {
		result.Notice = models.NoticeNothingFound
	}
	return result, nil
}

func (i impl) ListForExport(userID string, filter applicationapimodels.ListFilter) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.appStore.ListActive(userID)
	if err != nil {
		return nil, err
	}
	return filterForExport(list, filter), nil
}

func (i impl) HistoryForExport(userID string, filter applicationapimodels.ListFilter) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.appStore.ListHistory(userID)
	if err != nil {
		return nil, err
	}
	return filterForExport(list, filter), nil
}

// filterForExport applies the search of the list page but ignores paging.
func filterForExport(list []dbmodels.Application, filter applicationapimodels.ListFilter) []applicationapimodels.ApplicationView {
	keyword, _ := filter.Normalize()
	filtered := applicationfilter.Apply(list, applicationfilter.Criteria{
		Keyword:  keyword,
		StatusID: filter.Status,
	})
	return toViews(applicationfilter.Sort(filtered, applicationfilter.ParseSortOrder(filter.Sort)))
}

func (i impl) Get(userID, id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.appStore.GetByID(userID, id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, models.ErrApplicationNotFound
	}
	return rec.ToModel(), nil
}

func (i impl) Create(ctx context.Context, userID string, data applicationapimodels.ApplicationData, files applicationapimodels.UploadFiles) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	applicationDate, _ := data.GetApplicationDate()
	logger := log.WithField("user_id", userID)

	err = i.db.Transaction(func(tx *gorm.DB) error {
		appStore := applicationsstore.NewInstance(tx)
		id, err = i.newID(appStore.ExistsID)
		if err != nil {
			return err
		}
		rec := dbmodels.Application{
			ID:              id,
			UserID:          userID,
			JobTitle:        data.JobTitle,
			Company:         data.Company,
			ApplicationDate: applicationDate,
			StatusID:        int(models.ApplicationStatusApply),
			DeleteFlag:      false,
			CreatedAt:       time.Now(),
			Version:         1,
		}
		if err = appStore.Create(rec); err != nil {
			return errors.Wrap(err, "failed to create application")
		}
		if err = applicationfilestore.NewInstance(tx).Create(dbmodels.ApplicationFile{ApplicationID: id}); err != nil {
			return errors.Wrap(err, "failed to create application file record")
		}
		if err = interviewstore.NewInstance(tx).Create(dbmodels.Interview{ApplicationID: id}); err != nil {
			return errors.Wrap(err, "failed to create interview record")
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("failed to create application")
		return "", err
	}
	logger = logger.WithField("application_id", id)
	logger.Info("application created")

	// the record stays committed when an upload fails
	if err = i.uploadFiles(ctx, id, files); err != nil {
		logger.WithError(err).Error("application created without files")
		return id, err
	}
	return id, nil
}

func (i impl) Update(ctx context.Context, userID, id string, data applicationapimodels.ApplicationData, files applicationapimodels.UploadFiles) error {
	if id == "" {
		return models.NewValidationError("No ID provided.")
	}
	if err := data.ValidateEdit(); err != nil {
		return err
	}
	applicationDate, _ := data.GetApplicationDate()
	interviewDate, _ := data.GetInterviewDate()
	logger := log.WithField("user_id", userID).WithField("application_id", id)

	err := i.db.Transaction(func(tx *gorm.DB) error {
		appStore := applicationsstore.NewInstance(tx)
		updMap := map[string]interface{}{
			"job_title":        data.JobTitle,
			"company":          data.Company,
			"application_date": applicationDate,
			"status_id":        data.StatusID,
		}
		updated, err := appStore.Update(userID, id, data.Version, updMap)
		if err != nil {
			return err
		}
		if !updated {
			rec, err := appStore.GetByID(userID, id)
			if err != nil {
				return err
			}
			if rec == nil || rec.DeleteFlag {
				return models.ErrApplicationNotFound
			}
			return models.ErrConcurrencyConflict
		}
		return updateInterview(interviewstore.NewInstance(tx), id, interviewDate, data.Location, data.Memo)
	})
	if err != nil {
		if !errors.Is(err, models.ErrApplicationNotFound) {
			logger.WithError(err).Error("failed to update application")
		}
		return err
	}

	if err = i.uploadFiles(ctx, id, files); err != nil {
		logger.WithError(err).Error("application updated without files")
		return err
	}
	return nil
}

// updateInterview writes only the supplied fields.
func updateInterview(store interviewstore.Provider, applicationID string, interviewDate *time.Time, location, memo *string) error {
	updMap := map[string]interface{}{}
	if interviewDate != nil {
		updMap["interview_date"] = *interviewDate
	}
	if location != nil {
		updMap["location"] = *location
	}
	if memo != nil {
		updMap["memo"] = *memo
	}
	if len(updMap) == 0 {
		return nil
	}
	exist, err := store.ExistsForApplication(applicationID)
	if err != nil {
		return err
	}
	if !exist {
		return store.Create(dbmodels.Interview{
			ApplicationID: applicationID,
			InterviewDate: interviewDate,
			Location:      location,
			Memo:          memo,
		})
	}
	return store.Update(applicationID, updMap)
}

func (i impl) Delete(userID, id string) error {
	if id == "" {
		return models.NewValidationError("No ID provided.")
	}
	deleted, err := i.appStore.SoftDelete(userID, id)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("failed to delete application")
		return err
	}
	if !deleted {
		return models.ErrApplicationNotFound
	}
	return nil
}

func (i impl) DownloadFile(ctx context.Context, userID, name string) ([]byte, string, error) {
	exist, err := i.fileStore.ExistsForUser(userID, name)
	if err != nil {
		return nil, "", err
	}
	if !exist {
		return nil, "", models.ErrFileNotFound
	}
	return i.files.Download(ctx, i.bucket, name)
}

func (i impl) uploadFiles(ctx context.Context, id string, files applicationapimodels.UploadFiles) error {
	if files.Resume != nil {
		name := ResumeBlobName(id)
		if err := i.files.Upload(ctx, i.bucket, name, files.Resume); err != nil {
			return models.UploadError{Message: "Error. Uploading resume is failure.", ApplicationID: id, Cause: err}
		}
		if err := i.fileStore.Update(id, map[string]interface{}{"resume": name}); err != nil {
			return errors.Wrap(err, "failed to save resume name")
		}
	}
	if files.CoverLetter != nil {
		name := CoverLetterBlobName(id)
		if err := i.files.Upload(ctx, i.bucket, name, files.CoverLetter); err != nil {
			return models.UploadError{Message: "Error. Uploading cover letter is failure.", ApplicationID: id, Cause: err}
		}
		if err := i.fileStore.Update(id, map[string]interface{}{"cover_letter": name}); err != nil {
			return errors.Wrap(err, "failed to save cover letter name")
		}
	}
	return nil
}

func ResumeBlobName(applicationID string) string {
	return applicationID + "_resume.pdf"
}

func CoverLetterBlobName(applicationID string) string {
	return applicationID + "_coverletter.pdf"
}

func newListResponse(pageData paginator.Page[dbmodels.Application], order applicationfilter.SortOrder) applicationapimodels.ListResponse {
	return applicationapimodels.ListResponse{
		Items:       toViews(pageData.Items),
		Page:        pageData.Number,
		TotalPages:  pageData.TotalPages,
		TotalCount:  pageData.TotalCount,
		HasPrevious: pageData.HasPrevious,
		HasNext:     pageData.HasNext,
		Sort:        order.String(),
		NextSort:    order.Toggle().String(),
	}
}

func toViews(list []dbmodels.Application) []applicationapimodels.ApplicationView {
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result
}
