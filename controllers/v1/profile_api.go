package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	"job-tracker-backend/lib/profile"
	"job-tracker-backend/middleware"
	apimodels "job-tracker-backend/models/api"
	profileapimodels "job-tracker-backend/models/api/profile"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Route("profile", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("", controller.get)
		router.Put("", controller.update)
		router.Get("files/:name", controller.downloadFile)
	})
}

// @Summary Profile
// @Tags Profile
// @Description Profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileapimodels.Profile}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	resp, err := profile.Instance.Get(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load the profile.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update profile
// @Tags Profile
// @Description Multipart form, resume and cover_letter parts are optional
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 profileapimodels.ProfileData	true	"request body"
// @Param   resume				formData	file	false	"resume"
// @Param   cover_letter		formData	file	false	"cover letter"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile [put]
func (c *profileApiController) update(ctx *fiber.Ctx) error {
	var payload profileapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resume, err := c.FormFileBytes(ctx, "resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	coverLetter, err := c.FormFileBytes(ctx, "cover_letter")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = profile.Instance.Update(ctx.UserContext(), middleware.GetUserID(ctx), payload, resume, coverLetter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update the profile.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download a profile file
// @Tags Profile
// @Description Download a profile file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name          		path    string  				    	true         "blob name"
// @Success 200
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/profile/files/{name} [get]
func (c *profileApiController) downloadFile(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	body, contentType, err := profile.Instance.DownloadFile(ctx.UserContext(), middleware.GetUserID(ctx), name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to download the file.")
	}
	return c.SendAttachment(ctx, name, contentType, body)
}
