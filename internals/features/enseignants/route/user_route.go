// file: internals/features/enseignants/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/enseignants/controller"
)

func EnseignantUserRoutes(api fiber.Router, db *gorm.DB) {
	ensCtrl := controller.NewEnseignantController(db)

	enseignants := api.Group("/enseignants")
	// la création d'une tâche restante vérifie elle-même PeutModifier
	enseignants.Post("/taches-restantes", ensCtrl.CreerTacheRestante)
}
