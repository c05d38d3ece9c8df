package apiv1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"job-tracker-backend/config"
	"job-tracker-backend/db/testdb"
	applicationshandler "job-tracker-backend/lib/applications"
	authhandler "job-tracker-backend/lib/auth"
	filestorage "job-tracker-backend/lib/file-storage"
	"job-tracker-backend/lib/profile"
	"job-tracker-backend/lib/smtp"
	usersstore "job-tracker-backend/lib/users/store"
	authutils "job-tracker-backend/lib/utils/auth-utils"
	apimodels "job-tracker-backend/models/api"
	applicationapimodels "job-tracker-backend/models/api/application"
	dbmodels "job-tracker-backend/models/db"
)

type silentMailer struct{}

func (silentMailer) SendEMail(from, to, message, subject string) error { return nil }
func (silentMailer) IsConfigured() bool                                { return false }

var _ smtp.Provider = silentMailer{}

func newTestApp(t *testing.T) (*fiber.App, string) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "controller-test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 120

	conn := testdb.New(t)
	files := filestorage.NewMemoryInstance()
	applicationshandler.Instance = applicationshandler.NewInstance(conn, files, "applications")
	profile.Instance = profile.NewInstance(conn, files, "users")
	authhandler.Instance = authhandler.NewInstance(conn, silentMailer{}, "noreply@example.com")

	userID, err := usersstore.NewInstance(conn).Create(dbmodels.User{Email: "john@example.com", UserName: "john"})
	require.Nil(t, err)

	app := fiber.New()
	InitAuthApiRouters(app)
	InitApplicationApiRouters(app)
	InitHistoryApiRouters(app)
	InitProfileApiRouters(app)
	return app, userID
}

func bearer(t *testing.T, userID string) string {
	token, err := authutils.GetToken(userID, "john")
	require.Nil(t, err)
	return "Bearer " + token
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.Nil(t, writer.WriteField(k, v))
	}
	for k, content := range files {
		part, err := writer.CreateFormFile(k, k+".pdf")
		require.Nil(t, err)
		_, err = part.Write(content)
		require.Nil(t, err)
	}
	require.Nil(t, writer.Close())
	return body, writer.FormDataContentType()
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp, body
}

func decode(t *testing.T, body []byte, data interface{}) apimodels.Response {
	result := apimodels.Response{Data: data}
	require.Nil(t, json.Unmarshal(body, &result))
	return result
}

func TestApplicationApi(t *testing.T) {
	app, userID := newTestApp(t)
	auth := bearer(t, userID)
	var createdID string

	t.Run(`token is required`, func(t *testing.T) {
		resp, _ := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/applications", nil))
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`refresh token is not an access token`, func(t *testing.T) {
		refresh, err := authutils.GetRefreshToken(userID, "john")
		require.Nil(t, err)
		req := httptest.NewRequest(fiber.MethodGet, "/applications", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+refresh)
		resp, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run(`empty list notice`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/applications", nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		list := applicationapimodels.ListResponse{}
		decode(t, body, &list)
		require.Equal(t, "Let's start adding your application!", list.Notice)
	})

	t.Run(`create validation error`, func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{"company": "Acme", "application_date": "2024-04-20"}, nil)
		req := httptest.NewRequest(fiber.MethodPost, "/applications", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, respBody := doRequest(t, app, req)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "The Job Title field is required.", decode(t, respBody, nil).Message)
	})

	t.Run(`create with resume`, func(t *testing.T) {
		body, contentType := multipartBody(t,
			map[string]string{"job_title": "Backend Engineer", "company": "Acme", "application_date": "2024-04-20"},
			map[string][]byte{"resume": []byte("resume content")})
		req := httptest.NewRequest(fiber.MethodPost, "/applications", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, respBody := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		created := applicationapimodels.CreateResponse{}
		decode(t, respBody, &created)
		require.Len(t, created.ID, 19)
		createdID = created.ID
	})

	t.Run(`get and download`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/applications/"+createdID, nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		view := applicationapimodels.ApplicationView{}
		decode(t, body, &view)
		require.Equal(t, "Apply", view.StatusName)
		require.NotNil(t, view.Resume)

		req = httptest.NewRequest(fiber.MethodGet, "/applications/files/"+*view.Resume, nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body = doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, filestorage.ContentTypeOctetStream, resp.Header.Get(fiber.HeaderContentType))
		require.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentDisposition), "attachment"))
		require.Equal(t, []byte("resume content"), body)
	})

	t.Run(`stale version is a conflict`, func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{
			"job_title": "Backend Engineer", "company": "Acme", "application_date": "2024-04-20",
			"status_id": "2", "version": "42",
		}, nil)
		req := httptest.NewRequest(fiber.MethodPut, "/applications/"+createdID, body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, _ := doRequest(t, app, req)
		require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run(`batch status update`, func(t *testing.T) {
		payload := fmt.Sprintf(`{"statuses":{"%s":3,"missing0000000000000":2}}`, createdID)
		req := httptest.NewRequest(fiber.MethodPut, "/applications/status", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		result := applicationapimodels.StatusUpdateResponse{}
		decode(t, body, &result)
		require.False(t, result.Failed)
		require.Len(t, result.Results, 2)
	})

	t.Run(`delete`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodDelete, "/applications", nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body := doRequest(t, app, req)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "No ID provided.", decode(t, body, nil).Message)

		req = httptest.NewRequest(fiber.MethodDelete, "/applications/unknown", nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, _ = doRequest(t, app, req)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		req = httptest.NewRequest(fiber.MethodDelete, "/applications/"+createdID, nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, _ = doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`history keeps deleted rows`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/history", nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body := doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		list := applicationapimodels.ListResponse{}
		decode(t, body, &list)
		require.Equal(t, 1, list.TotalCount)

		req = httptest.NewRequest(fiber.MethodGet, "/history?keyword=Designer&page=9223372036854775807", nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body = doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		list = applicationapimodels.ListResponse{}
		decode(t, body, &list)
		require.Empty(t, list.Items)
		require.Equal(t, 1, list.Page)
		require.Equal(t, "Not found any application.", list.Notice)

		req = httptest.NewRequest(fiber.MethodGet, "/history?current_keyword=Engineer&page=9223372036854775807", nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body = doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		list = applicationapimodels.ListResponse{}
		decode(t, body, &list)
		require.Empty(t, list.Items)
		require.Equal(t, 1, list.TotalCount)

		req = httptest.NewRequest(fiber.MethodGet, "/history/export", nil)
		req.Header.Set(fiber.HeaderAuthorization, auth)
		resp, body = doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, contentTypePdf, resp.Header.Get(fiber.HeaderContentType))
		require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	})
}

func TestAuthApi(t *testing.T) {
	app, _ := newTestApp(t)

	post := func(path, payload string) (*http.Response, []byte) {
		req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return doRequest(t, app, req)
	}

	t.Run(`register then login`, func(t *testing.T) {
		resp, _ := post("/auth/register", `{"email":"jane@example.com","password":"secret1","confirm_password":"secret1"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, body := post("/auth/login", `{"email":"jane@example.com","password":"secret1"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		tokens := map[string]string{}
		decode(t, body, &tokens)
		require.NotEmpty(t, tokens["token"])

		req := httptest.NewRequest(fiber.MethodGet, "/auth/me", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tokens["token"])
		resp, _ = doRequest(t, app, req)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`login failures`, func(t *testing.T) {
		resp, body := post("/auth/login", `{"email":"nobody@example.com","password":"secret1"}`)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Not found user", decode(t, body, nil).Message)

		resp, body = post("/auth/login", `{"email":"jane@example.com","password":"wrong"}`)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "Invalid login attempt.", decode(t, body, nil).Message)
	})

	t.Run(`duplicate registration`, func(t *testing.T) {
		resp, body := post("/auth/register", `{"email":"jane@example.com","password":"secret1","confirm_password":"secret1"}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "jane@example.com is already taken.", decode(t, body, nil).Message)
	})
}
