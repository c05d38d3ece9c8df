package profile

import (
	"context"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-tracker-backend/config"
	"job-tracker-backend/db"
	filestorage "job-tracker-backend/lib/file-storage"
	usersstore "job-tracker-backend/lib/users/store"
	initchecker "job-tracker-backend/lib/utils/init-checker"
	"job-tracker-backend/models"
	profileapimodels "job-tracker-backend/models/api/profile"
)

type Provider interface {
	Get(userID string) (profileapimodels.Profile, error)
	Update(ctx context.Context, userID string, data profileapimodels.ProfileData, resume, coverLetter []byte) error
	DownloadFile(ctx context.Context, userID, name string) (content []byte, contentType string, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"files", filestorage.Instance,
	)
	Instance = NewInstance(db.DB, filestorage.Instance, config.Conf.S3.UserBucket)
}

func NewInstance(DB *gorm.DB, files filestorage.Provider, bucket string) Provider {
	return &impl{
		usersStore: usersstore.NewInstance(DB),
		files:      files,
		bucket:     bucket,
	}
}

type impl struct {
	usersStore usersstore.Provider
	files      filestorage.Provider
	bucket     string
}

func (i impl) Get(userID string) (profileapimodels.Profile, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return profileapimodels.Profile{}, err
	}
	if user == nil {
		return profileapimodels.Profile{}, models.ErrUserNotFound
	}
	return user.ToProfile(), nil
}

func (i impl) Update(ctx context.Context, userID string, data profileapimodels.ProfileData, resume, coverLetter []byte) error {
	if err := data.Validate(); err != nil {
		return err
	}
	logger := log.WithField("user_id", userID)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrUserNotFound
	}

	userName := data.GetUserName()
	updMap := map[string]interface{}{}
	if userName != user.UserName {
		taken, err := i.usersStore.ExistByUserName(userName, userID)
		if err != nil {
			return err
		}
		if taken {
			return models.NewValidationError("%s is taken by another user.", userName)
		}
		updMap["user_name"] = userName
	}
	if data.PhoneNumber != user.PhoneNumber {
		updMap["phone_number"] = data.PhoneNumber
	}

	if resume != nil {
		name := ResumeBlobName(userID)
		if err = i.files.Upload(ctx, i.bucket, name, resume); err != nil {
			logger.WithError(err).Error("failed to upload profile resume")
			return models.UploadError{Message: "Fail to upload resume.", Cause: err}
		}
		updMap["resume"] = name
	}
	if coverLetter != nil {
		name := CoverLetterBlobName(userID)
		if err = i.files.Upload(ctx, i.bucket, name, coverLetter); err != nil {
			logger.WithError(err).Error("failed to upload profile cover letter")
			return models.UploadError{Message: "Fail to upload cover letter.", Cause: err}
		}
		updMap["cover_letter"] = name
	}

	if err = i.usersStore.Update(userID, updMap); err != nil {
		logger.WithError(err).Error("failed to update profile")
		return err
	}
	return nil
}

func (i impl) DownloadFile(ctx context.Context, userID, name string) ([]byte, string, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", models.ErrUserNotFound
	}
	if !ownsFile(user.Resume, name) && !ownsFile(user.CoverLetter, name) {
		return nil, "", models.ErrFileNotFound
	}
	return i.files.Download(ctx, i.bucket, name)
}

func ownsFile(stored *string, name string) bool {
	return stored != nil && *stored == name
}

func ResumeBlobName(userID string) string {
	return userID + "_resume.pdf"
}

func CoverLetterBlobName(userID string) string {
	return userID + "_coverletter.pdf"
}
