// file: internals/features/preparation/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/preparation/controller"
)

func PreparationAdminRoutes(api fiber.Router, db *gorm.DB) {
	prepCtrl := controller.NewPreparationController(db)

	preparation := api.Group("/preparation")
	preparation.Get("/:anneeId", prepCtrl.Donnees)
	preparation.Put("/:anneeId", prepCtrl.Sauvegarder)
}
