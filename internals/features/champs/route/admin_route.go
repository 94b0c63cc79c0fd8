// file: internals/features/champs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/champs/controller"
)

func ChampAdminRoutes(api fiber.Router, db *gorm.DB) {
	champCtrl := controller.NewChampController(db)

	champs := api.Group("/champs")
	champs.Put("/:champNo/verrou", champCtrl.BasculerVerrou)
	champs.Put("/:champNo/confirmation", champCtrl.BasculerConfirmation)
}
