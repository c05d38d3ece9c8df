package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"job-tracker-backend/config"
	"job-tracker-backend/db"
	applicationsstore "job-tracker-backend/lib/applications/store"
	"job-tracker-backend/lib/smtp"
	usersstore "job-tracker-backend/lib/users/store"
	authutils "job-tracker-backend/lib/utils/auth-utils"
	initchecker "job-tracker-backend/lib/utils/init-checker"
	"job-tracker-backend/models"
	authapimodels "job-tracker-backend/models/api/auth"
	dbmodels "job-tracker-backend/models/db"
)

const (
	resetCodeLength  = 8
	resetCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
	resetCodeTTL     = 24 * time.Hour
)

var ErrInvalidCredentials = errors.New("Invalid login attempt.")

type Provider interface {
	Register(request authapimodels.RegisterRequest) (authapimodels.JWTResponse, error)
	Login(email, password string) (authapimodels.JWTResponse, error)
	RefreshToken(refreshToken string) (authapimodels.JWTResponse, error)
	Me(userID string) (authapimodels.Me, error)
	SendPasswordReset(email string) error
	ResetPassword(request authapimodels.PasswordResetRequest) error
	ChangePassword(userID string, request authapimodels.ChangePasswordRequest) error
	ChangeEmail(userID string, request authapimodels.ChangeEmailRequest) error
	DeleteAccount(userID, password string) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"db", db.DB,
		"mailer", smtp.Instance,
	)
	Instance = NewInstance(db.DB, smtp.Instance, config.Conf.Smtp.EmailFrom)
}

func NewInstance(DB *gorm.DB, mailer smtp.Provider, emailFrom string) Provider {
	return &impl{
		db:         DB,
		usersStore: usersstore.NewInstance(DB),
		mailer:     mailer,
		emailFrom:  emailFrom,
	}
}

type impl struct {
	db         *gorm.DB
	usersStore usersstore.Provider
	mailer     smtp.Provider
	emailFrom  string
}

func (i impl) Register(request authapimodels.RegisterRequest) (authapimodels.JWTResponse, error) {
	if err := request.Validate(); err != nil {
		return authapimodels.JWTResponse{}, err
	}
	email := request.GetEmail()
	exist, err := i.usersStore.ExistByEmail(email, "")
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if exist {
		return authapimodels.JWTResponse{}, models.NewValidationError("%s is already taken.", email)
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to hash password")
	}
	rec := dbmodels.User{
		Email:        email,
		UserName:     email,
		PasswordHash: hash,
	}
	id, err := i.usersStore.Create(rec)
	if err != nil {
		log.WithError(err).WithField("email", email).Error("failed to register user")
		return authapimodels.JWTResponse{}, err
	}
	log.WithField("user_id", id).Info("user registered")
	return i.issueTokens(id, rec.UserName)
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, models.ErrUserNotFound
	}
	if !authutils.CheckPassword(user.PasswordHash, password) {
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	return i.issueTokens(user.ID, user.UserName)
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, models.ErrUserNotFound
	}
	return i.issueTokens(user.ID, user.UserName)
}

func (i impl) Me(userID string) (authapimodels.Me, error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return authapimodels.Me{}, err
	}
	if user == nil {
		return authapimodels.Me{}, models.ErrUserNotFound
	}
	return user.ToMe(), nil
}

func (i impl) SendPasswordReset(email string) error {
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewValidationError("Invalid email address.")
	}
	code, err := generateCode()
	if err != nil {
		return err
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{
		"reset_code":         code,
		"reset_code_expires": time.Now().Add(resetCodeTTL),
	})
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Password reset code: %s\r\nReset page: %s/reset-password?code=%s",
		code, config.Conf.Smtp.DomainForResetLink, code)
	return i.mailer.SendEMail(i.emailFrom, user.Email, message, "Password reset")
}

func (i impl) ResetPassword(request authapimodels.PasswordResetRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	user, err := i.usersStore.FindByResetCode(strings.TrimSpace(request.ResetCode))
	if err != nil {
		return err
	}
	if user == nil || user.ResetCodeExpires.Before(time.Now()) {
		return models.NewValidationError("Invalid or expired reset code.")
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	return i.usersStore.Update(user.ID, map[string]interface{}{
		"password_hash": hash,
		"reset_code":    "",
	})
}

func (i impl) ChangePassword(userID string, request authapimodels.ChangePasswordRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrUserNotFound
	}
	if !authutils.CheckPassword(user.PasswordHash, request.OldPassword) {
		return models.NewValidationError("Incorrect password.")
	}
	hash, err := authutils.HashPassword(request.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	err = i.usersStore.Update(userID, map[string]interface{}{"password_hash": hash})
	if err != nil {
		return err
	}
	log.WithField("user_id", userID).Info("user changed their password")
	return nil
}

func (i impl) ChangeEmail(userID string, request authapimodels.ChangeEmailRequest) error {
	if err := request.Validate(); err != nil {
		return err
	}
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrUserNotFound
	}
	newEmail := strings.TrimSpace(request.NewEmail)
	if strings.EqualFold(newEmail, user.Email) {
		return models.NewValidationError("Your email is unchanged.")
	}
	exist, err := i.usersStore.ExistByEmail(newEmail, userID)
	if err != nil {
		return err
	}
	if exist {
		return models.NewValidationError("%s is already taken.", newEmail)
	}
	return i.usersStore.Update(userID, map[string]interface{}{"email": newEmail})
}

// DeleteAccount removes the user and flags all of their applications deleted.
func (i impl) DeleteAccount(userID, password string) error {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return models.ErrUserNotFound
	}
	if !authutils.CheckPassword(user.PasswordHash, password) {
		return models.NewValidationError("Incorrect password.")
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		if err := applicationsstore.NewInstance(tx).SoftDeleteByUser(userID); err != nil {
			return err
		}
		return usersstore.NewInstance(tx).Delete(userID)
	})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("failed to delete user")
		return err
	}
	log.WithField("user_id", userID).Info("user deleted")
	return nil
}

func (i impl) issueTokens(userID, name string) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to sign token")
	}
	refreshToken, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "failed to sign refresh token")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func generateCode() (string, error) {
	sb := strings.Builder{}
	limit := big.NewInt(int64(len(resetCodeLetters)))
	for i := 0; i < resetCodeLength; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate reset code")
		}
		sb.WriteByte(resetCodeLetters[n.Int64()])
	}
	return sb.String(), nil
}
