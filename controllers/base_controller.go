package controllers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-tracker-backend/middleware"
	"job-tracker-backend/models"
	apimodels "job-tracker-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request")
		return errors.New("Unable to read the request data.")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("No ID provided.")
	}
	return id, nil
}

// FormFileBytes reads an optional multipart file part. Nil means the part is absent.
func (c *BaseAPIController) FormFileBytes(ctx *fiber.Ctx, key string) ([]byte, error) {
	header, err := ctx.FormFile(key)
	if err != nil {
		// missing part or a non-multipart body
		return nil, nil
	}
	if header.Size == 0 {
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", key)
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", key)
	}
	return content, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("request_id", ctx.Locals("requestid")).
		WithField("user_id", middleware.GetUserID(ctx))
}

// SendError maps handler errors onto http statuses. Unknown errors are logged with msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	if uploadErr, ok := models.IsUploadError(err); ok {
		logger.WithError(err).Error(msg)
		var data interface{}
		if uploadErr.ApplicationID != "" {
			data = fiber.Map{"id": uploadErr.ApplicationID}
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorWithData(uploadErr.Message, data))
	}
	switch {
	case models.IsValidationError(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrApplicationNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrFileNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrConcurrencyConflict),
		errors.Is(err, models.ErrStatusUpdateBusy):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

func (c *BaseAPIController) SendAttachment(ctx *fiber.Ctx, fileName, contentType string, body []byte) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}
