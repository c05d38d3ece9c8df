package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	return logger, buf
}

func TestNew(t *testing.T) {
	logger, buf := newTestLogger()
	app := fiber.New()
	app.Use(New(Config{
		Logger:    logger,
		Tags:      []string{TagStatus, TagMethod, TagPath, TagBody},
		SkipPaths: []string{"/health"},
	}))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/items", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Post("/auth/login", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusBadRequest) })

	send := func(path, body string) map[string]interface{} {
		buf.Reset()
		req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
		if path == "/health" {
			req = httptest.NewRequest(fiber.MethodGet, path, nil)
		}
		_, err := app.Test(req, -1)
		require.Nil(t, err)
		if buf.Len() == 0 {
			return nil
		}
		entry := map[string]interface{}{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		return entry
	}

	t.Run(`logs tags`, func(t *testing.T) {
		entry := send("/items", `{"name":"x"}`)
		require.Equal(t, "info", entry["level"])
		require.Equal(t, float64(fiber.StatusCreated), entry[TagStatus])
		require.Equal(t, fiber.MethodPost, entry[TagMethod])
		require.Equal(t, "/items", entry[TagPath])
		require.Equal(t, `{"name":"x"}`, entry[TagBody])
	})

	t.Run(`auth bodies are not logged`, func(t *testing.T) {
		entry := send("/auth/login", `{"password":"secret"}`)
		require.Equal(t, "warning", entry["level"])
		require.NotContains(t, entry, TagBody)
	})

	t.Run(`skipped path`, func(t *testing.T) {
		require.Nil(t, send("/health", ""))
	})
}
