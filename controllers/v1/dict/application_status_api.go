package dict

import (
	"github.com/gofiber/fiber/v2"
	"job-tracker-backend/controllers"
	applicationstatusprovider "job-tracker-backend/lib/dicts/application-status"
	apimodels "job-tracker-backend/models/api"
)

type applicationStatusDictApiController struct {
	controllers.BaseAPIController
}

func InitApplicationStatusDictApiRouters(app *fiber.App) {
	controller := applicationStatusDictApiController{}
	app.Route("application-status", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary Statuses
// @Tags Dictionary. Application statuses
// @Description Reference list of application statuses
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.ApplicationStatusView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/application-status [get]
func (c *applicationStatusDictApiController) list(ctx *fiber.Ctx) error {
	list, err := applicationstatusprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load application statuses.")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
