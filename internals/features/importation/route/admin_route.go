// file: internals/features/importation/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/importation/controller"
)

func ImportationAdminRoutes(api fiber.Router, db *gorm.DB) {
	importCtrl := controller.NewImportationController(db)

	importation := api.Group("/importation")
	importation.Post("/:anneeId/cours", importCtrl.ImporterCours)
	importation.Post("/:anneeId/enseignants", importCtrl.ImporterEnseignants)
}
