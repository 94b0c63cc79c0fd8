// file: internals/features/enseignants/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/enseignants/controller"
)

func EnseignantAdminRoutes(api fiber.Router, db *gorm.DB) {
	ensCtrl := controller.NewEnseignantController(db)

	enseignants := api.Group("/enseignants")
	enseignants.Post("/", ensCtrl.Creer)
	enseignants.Put("/:id", ensCtrl.MettreAJour)
	enseignants.Delete("/:id", ensCtrl.Supprimer)
}
