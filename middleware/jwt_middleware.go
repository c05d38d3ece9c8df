package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"job-tracker-backend/config"
	authutils "job-tracker-backend/lib/utils/auth-utils"
	apimodels "job-tracker-backend/models/api"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		SuccessHandler: func(ctx *fiber.Ctx) error {
			// refresh tokens are only good for /auth/refresh-token
			if authutils.IsRefreshToken(authutils.GetClaims(ctx)) || GetUserID(ctx) == "" {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("Invalid or expired JWT"))
			}
			return ctx.Next()
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
		},
	})
}
