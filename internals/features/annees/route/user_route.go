// file: internals/features/annees/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/annees/controller"
)

func AnneeUserRoutes(api fiber.Router, db *gorm.DB) {
	anneeCtrl := controller.NewAnneeController(db)

	annees := api.Group("/annees")
	annees.Get("/", anneeCtrl.Lister)
	annees.Get("/courante", anneeCtrl.Courante)
}
