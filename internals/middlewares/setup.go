// file: internals/middlewares/setup.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"repartition_backend/internals/configs"
	loggerMiddleware "repartition_backend/internals/middlewares/logger"
)

// SetupMiddlewares : pile commune à toutes les routes.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())

	var origins []string
	if v := configs.GetEnv("CORS_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	app.Use(CorsMiddleware(origins))
}
