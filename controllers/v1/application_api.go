package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	applicationshandler "job-tracker-backend/lib/applications"
	xlsexport "job-tracker-backend/lib/export/xls"
	"job-tracker-backend/middleware"
	apimodels "job-tracker-backend/models/api"
	applicationapimodels "job-tracker-backend/models/api/application"
)

const contentTypeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Delete("", controller.delete)
		router.Get("export", controller.export)
		router.Put("status", controller.updateStatuses)
		router.Get("files/:name", controller.downloadFile)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Active applications
// @Tags Applications
// @Description Filtered, sorted page of the active list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   keyword				query		string	false	"new search keyword, resets the page"
// @Param   current_keyword		query		string	false	"keyword carried between pages"
// @Param   status				query		int		false	"status id, 0 for any"
// @Param   sort				query		string	false	"date_asc or date_desc"
// @Param   page				query		int		false	"page number"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ListResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [get]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := applicationshandler.Instance.List(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load applications.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create
// @Tags Applications
// @Description Multipart form, resume and cover_letter parts are optional
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationData	true	"request body"
// @Param   resume				formData	file	false	"resume"
// @Param   cover_letter		formData	file	false	"cover letter"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.CreateResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	files, err := c.uploadFiles(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, err := applicationshandler.Instance.Create(ctx.UserContext(), middleware.GetUserID(ctx), payload, files)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create the application.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationapimodels.CreateResponse{ID: id}))
}

// @Summary Get
// @Tags Applications
// @Description Application with its status, files and interview
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := applicationshandler.Instance.Get(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load the application.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Edit
// @Tags Applications
// @Description Interview fields are updated only when supplied
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Param	body body	 applicationapimodels.ApplicationData	true	"request body"
// @Param   resume				formData	file	false	"resume"
// @Param   cover_letter		formData	file	false	"cover letter"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [put]
func (c *applicationApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.ApplicationData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	files, err := c.uploadFiles(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = applicationshandler.Instance.Update(ctx.UserContext(), middleware.GetUserID(ctx), id, payload, files)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update the application.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete
// @Tags Applications
// @Description Flags the application deleted, it stays in the history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "application ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/{id} [delete]
func (c *applicationApiController) delete(ctx *fiber.Ctx) error {
	err := applicationshandler.Instance.Delete(middleware.GetUserID(ctx), ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete the application.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Batch status update
// @Tags Applications
// @Description Each change commits on its own, the first failure stops the rest
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.StatusUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.StatusUpdateResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response{data=applicationapimodels.StatusUpdateResponse}
// @router /api/v1/applications/status [put]
func (c *applicationApiController) updateStatuses(ctx *fiber.Ctx) error {
	var payload applicationapimodels.StatusUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	results, err := applicationshandler.Instance.UpdateStatuses(ctx.UserContext(), middleware.GetUserID(ctx), payload.Statuses)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update statuses.")
	}
	resp := applicationapimodels.StatusUpdateResponse{Results: results}
	for _, result := range results {
		if result.Outcome == applicationapimodels.StatusUpdateFailed {
			resp.Failed = true
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorWithData(result.Error, resp))
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Download a file
// @Tags Applications
// @Description Resume or cover letter of one of the caller's applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name          		path    string  				    	true         "blob name"
// @Success 200
// @Failure 401
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/files/{name} [get]
func (c *applicationApiController) downloadFile(ctx *fiber.Ctx) error {
	name := ctx.Params("name")
	body, contentType, err := applicationshandler.Instance.DownloadFile(ctx.UserContext(), middleware.GetUserID(ctx), name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to download the file.")
	}
	return c.SendAttachment(ctx, name, contentType, body)
}

// @Summary Export to Excel
// @Tags Applications
// @Description Whole filtered and sorted active list as xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   keyword				query		string	false	"search keyword"
// @Param   status				query		int		false	"status id, 0 for any"
// @Param   sort				query		string	false	"date_asc or date_desc"
// @Success 200
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/export [get]
func (c *applicationApiController) export(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := applicationshandler.Instance.ListForExport(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load applications for export.")
	}
	data, err := xlsexport.Instance.ExportApplicationList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export applications.")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	return c.SendAttachment(ctx, fileName, contentTypeXlsx, data.Bytes())
}

func (c *applicationApiController) uploadFiles(ctx *fiber.Ctx) (applicationapimodels.UploadFiles, error) {
	resume, err := c.FormFileBytes(ctx, "resume")
	if err != nil {
		return applicationapimodels.UploadFiles{}, err
	}
	coverLetter, err := c.FormFileBytes(ctx, "cover_letter")
	if err != nil {
		return applicationapimodels.UploadFiles{}, err
	}
	return applicationapimodels.UploadFiles{Resume: resume, CoverLetter: coverLetter}, nil
}
