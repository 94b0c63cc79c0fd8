// file: internals/features/annees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/annees/controller"
)

func AnneeAdminRoutes(api fiber.Router, db *gorm.DB) {
	anneeCtrl := controller.NewAnneeController(db)

	annees := api.Group("/annees")
	annees.Post("/", anneeCtrl.Creer)
	annees.Put("/:id/courante", anneeCtrl.DefinirCourante)
	annees.Delete("/:id", anneeCtrl.Supprimer)
}
