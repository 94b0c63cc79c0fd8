// file: internals/features/sommaire/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/sommaire/controller"
)

func SommaireUserRoutes(api fiber.Router, db *gorm.DB) {
	sommaireCtrl := controller.NewSommaireController(db)

	sommaire := api.Group("/sommaire")
	sommaire.Get("/:anneeId", sommaireCtrl.Etablissement)
	sommaire.Get("/enseignant/:enseignantId/periodes", sommaireCtrl.PeriodesEnseignant)
}
