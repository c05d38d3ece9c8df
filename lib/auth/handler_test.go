package auth

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"job-tracker-backend/config"
	"job-tracker-backend/db/testdb"
	applicationsstore "job-tracker-backend/lib/applications/store"
	usersstore "job-tracker-backend/lib/users/store"
	authutils "job-tracker-backend/lib/utils/auth-utils"
	"job-tracker-backend/models"
	authapimodels "job-tracker-backend/models/api/auth"
	dbmodels "job-tracker-backend/models/db"
)

type sentMail struct {
	to      string
	message string
}

type mailerMock struct {
	sent []sentMail
}

func (m *mailerMock) SendEMail(from, to, message, subject string) error {
	m.sent = append(m.sent, sentMail{to: to, message: message})
	return nil
}

func (m *mailerMock) IsConfigured() bool {
	return true
}

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf.Smtp.DomainForResetLink = "http://localhost"
}

func register(email, password string) authapimodels.RegisterRequest {
	return authapimodels.RegisterRequest{Email: email, Password: password, ConfirmPassword: password}
}

func TestRegisterAndLogin(t *testing.T) {
	initTestConfig()
	conn := testdb.New(t)
	handler := NewInstance(conn, &mailerMock{}, "noreply@example.com")

	t.Run(`register issues tokens`, func(t *testing.T) {
		resp, err := handler.Register(register("john@example.com", "secret1"))
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.RefreshToken)
	})

	t.Run(`duplicate email`, func(t *testing.T) {
		_, err := handler.Register(register("John@example.com", "secret1"))
		require.True(t, models.IsValidationError(err))
		require.Equal(t, "John@example.com is already taken.", err.Error())
	})

	t.Run(`password rules`, func(t *testing.T) {
		_, err := handler.Register(register("short@example.com", "12345"))
		require.True(t, models.IsValidationError(err))

		request := register("mismatch@example.com", "secret1")
		request.ConfirmPassword = "secret2"
		_, err = handler.Register(request)
		require.True(t, models.IsValidationError(err))
		require.Equal(t, "The password and confirmation password do not match.", err.Error())
	})

	t.Run(`login`, func(t *testing.T) {
		resp, err := handler.Login("john@example.com", "secret1")
		require.Nil(t, err)
		userID, err := authutils.ParseRefreshToken(resp.RefreshToken)
		require.Nil(t, err)

		me, err := handler.Me(userID)
		require.Nil(t, err)
		require.Equal(t, "john@example.com", me.Email)
		require.Equal(t, "john@example.com", me.UserName)

		_, err = handler.Login("john@example.com", "wrong")
		require.True(t, errors.Is(err, ErrInvalidCredentials))
		_, err = handler.Login("nobody@example.com", "secret1")
		require.True(t, errors.Is(err, models.ErrUserNotFound))
	})

	t.Run(`refresh token`, func(t *testing.T) {
		resp, err := handler.Login("john@example.com", "secret1")
		require.Nil(t, err)
		refreshed, err := handler.RefreshToken(resp.RefreshToken)
		require.Nil(t, err)
		require.NotEmpty(t, refreshed.Token)

		_, err = handler.RefreshToken(resp.Token)
		require.NotNil(t, err)
	})
}

func TestPasswordReset(t *testing.T) {
	initTestConfig()
	conn := testdb.New(t)
	mailer := &mailerMock{}
	handler := NewInstance(conn, mailer, "noreply@example.com")
	_, err := handler.Register(register("john@example.com", "secret1"))
	require.Nil(t, err)
	store := usersstore.NewInstance(conn)

	t.Run(`unknown email`, func(t *testing.T) {
		err := handler.SendPasswordReset("nobody@example.com")
		require.True(t, models.IsValidationError(err))
		require.Empty(t, mailer.sent)
	})

	t.Run(`code is mailed and resets the password once`, func(t *testing.T) {
		require.Nil(t, handler.SendPasswordReset("john@example.com"))
		require.Len(t, mailer.sent, 1)
		require.Equal(t, "john@example.com", mailer.sent[0].to)

		user, err := store.FindByEmail("john@example.com")
		require.Nil(t, err)
		require.Len(t, user.ResetCode, resetCodeLength)
		require.Contains(t, mailer.sent[0].message, user.ResetCode)

		request := authapimodels.PasswordResetRequest{ResetCode: user.ResetCode, Password: "newpass1", ConfirmPassword: "newpass1"}
		require.Nil(t, handler.ResetPassword(request))
		_, err = handler.Login("john@example.com", "newpass1")
		require.Nil(t, err)

		err = handler.ResetPassword(request)
		require.True(t, models.IsValidationError(err))
	})

	t.Run(`expired code`, func(t *testing.T) {
		require.Nil(t, handler.SendPasswordReset("john@example.com"))
		user, err := store.FindByEmail("john@example.com")
		require.Nil(t, err)
		require.Nil(t, store.Update(user.ID, map[string]interface{}{"reset_code_expires": time.Now().Add(-time.Minute)}))

		err = handler.ResetPassword(authapimodels.PasswordResetRequest{ResetCode: user.ResetCode, Password: "newpass2", ConfirmPassword: "newpass2"})
		require.True(t, models.IsValidationError(err))
	})
}

func TestAccountManagement(t *testing.T) {
	initTestConfig()
	conn := testdb.New(t)
	handler := NewInstance(conn, &mailerMock{}, "noreply@example.com")
	resp, err := handler.Register(register("john@example.com", "secret1"))
	require.Nil(t, err)
	userID, err := authutils.ParseRefreshToken(resp.RefreshToken)
	require.Nil(t, err)
	_, err = handler.Register(register("jane@example.com", "secret1"))
	require.Nil(t, err)

	t.Run(`change password`, func(t *testing.T) {
		err := handler.ChangePassword(userID, authapimodels.ChangePasswordRequest{OldPassword: "bad", NewPassword: "secret2", ConfirmPassword: "secret2"})
		require.True(t, models.IsValidationError(err))
		require.Equal(t, "Incorrect password.", err.Error())

		err = handler.ChangePassword(userID, authapimodels.ChangePasswordRequest{OldPassword: "secret1", NewPassword: "secret2", ConfirmPassword: "secret2"})
		require.Nil(t, err)
		_, err = handler.Login("john@example.com", "secret2")
		require.Nil(t, err)
	})

	t.Run(`change email`, func(t *testing.T) {
		err := handler.ChangeEmail(userID, authapimodels.ChangeEmailRequest{NewEmail: "jane@example.com"})
		require.True(t, models.IsValidationError(err))
		require.Equal(t, "jane@example.com is already taken.", err.Error())

		require.Nil(t, handler.ChangeEmail(userID, authapimodels.ChangeEmailRequest{NewEmail: "johnny@example.com"}))
		me, err := handler.Me(userID)
		require.Nil(t, err)
		require.Equal(t, "johnny@example.com", me.Email)
	})

	t.Run(`delete account flags applications`, func(t *testing.T) {
		appStore := applicationsstore.NewInstance(conn)
		require.Nil(t, appStore.Create(dbmodels.Application{
			ID: "app1", UserID: userID, JobTitle: "Engineer", Company: "Acme",
			ApplicationDate: time.Now(), StatusID: 1, CreatedAt: time.Now(), Version: 1,
		}))

		err := handler.DeleteAccount(userID, "wrong")
		require.True(t, models.IsValidationError(err))

		require.Nil(t, handler.DeleteAccount(userID, "secret2"))
		_, err = handler.Me(userID)
		require.True(t, errors.Is(err, models.ErrUserNotFound))

		rec, err := appStore.GetByID(userID, "app1")
		require.Nil(t, err)
		require.True(t, rec.DeleteFlag)
	})
}
