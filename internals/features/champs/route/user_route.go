// file: internals/features/champs/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/champs/controller"
	authMiddleware "repartition_backend/internals/middlewares/auth"
)

func ChampUserRoutes(api fiber.Router, db *gorm.DB) {
	champCtrl := controller.NewChampController(db)

	champs := api.Group("/champs")
	champs.Get("/", champCtrl.Lister)
	champs.Get("/:champNo", authMiddleware.ChampAutorise("champNo"), champCtrl.Page)
}
