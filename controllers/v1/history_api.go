package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	applicationshandler "job-tracker-backend/lib/applications"
	pdfexport "job-tracker-backend/lib/export/pdf"
	"job-tracker-backend/middleware"
	apimodels "job-tracker-backend/models/api"
	applicationapimodels "job-tracker-backend/models/api/application"
)

const contentTypePdf = "application/pdf"

type historyApiController struct {
	controllers.BaseAPIController
}

func InitHistoryApiRouters(app *fiber.App) {
	controller := historyApiController{}
	app.Route("history", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		router.Get("", controller.list)
		router.Get("export", controller.export)
	})
}

// @Summary History
// @Tags History
// @Description Every application of the user, deleted and rejected included
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   keyword				query		string	false	"new search keyword, resets paging"
// @Param   current_keyword		query		string	false	"keyword carried between pages"
// @Param   status				query		int		false	"status id, 0 for any"
// @Param   sort				query		string	false	"date_asc or date_desc"
// @Param   page				query		int		false	"page number"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ListResponse}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/history [get]
func (c *historyApiController) list(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := applicationshandler.Instance.History(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load the history.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export history to PDF
// @Tags History
// @Description Export history to PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   keyword				query		string	false	"new search keyword, resets paging"
// @Param   current_keyword		query		string	false	"keyword carried between pages"
// @Param   status				query		int		false	"status id, 0 for any"
// @Param   sort				query		string	false	"date_asc or date_desc"
// @Success 200
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/history/export [get]
func (c *historyApiController) export(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ListFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := applicationshandler.Instance.HistoryForExport(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load the history for export.")
	}
	now := time.Now()
	body, err := pdfexport.GenerateHistoryReport(middleware.GetUserName(ctx), list, now)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export the history.")
	}
	fileName := fmt.Sprintf("history-%v.pdf", now.Format("20060102-150405"))
	return c.SendAttachment(ctx, fileName, contentTypePdf, body)
}
