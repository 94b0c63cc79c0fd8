// file: internals/features/utilisateurs/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/utilisateurs/controller"
)

func UtilisateurAdminRoutes(api fiber.Router, db *gorm.DB) {
	utilisateurCtrl := controller.NewUtilisateurController(db)

	utilisateurs := api.Group("/utilisateurs")
	utilisateurs.Get("/", utilisateurCtrl.Lister)
	utilisateurs.Post("/", utilisateurCtrl.Creer)
	utilisateurs.Put("/:id/acces", utilisateurCtrl.MettreAJourAcces)
	utilisateurs.Delete("/:id", utilisateurCtrl.Supprimer)
}
