// file: internals/features/attributions/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/attributions/controller"
)

func AttributionUserRoutes(api fiber.Router, db *gorm.DB) {
	attrCtrl := controller.NewAttributionController(db)

	attributions := api.Group("/attributions")
	attributions.Post("/", attrCtrl.Ajouter)
	attributions.Delete("/:id", attrCtrl.Supprimer)
	attributions.Get("/enseignant/:enseignantId", attrCtrl.ParEnseignant)
}
