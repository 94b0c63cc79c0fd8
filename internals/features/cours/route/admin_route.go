// file: internals/features/cours/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/cours/controller"
)

func CoursAdminRoutes(api fiber.Router, db *gorm.DB) {
	coursCtrl := controller.NewCoursController(db)

	cours := api.Group("/cours")
	cours.Post("/", coursCtrl.Creer)
	cours.Put("/:codeCours", coursCtrl.MettreAJour)
	cours.Put("/:codeCours/champ", coursCtrl.ReassignerChamp)
	cours.Delete("/:codeCours", coursCtrl.Supprimer)
}
