// file: internals/features/utilisateurs/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/utilisateurs/controller"
)

func UtilisateurUserRoutes(api fiber.Router, db *gorm.DB) {
	utilisateurCtrl := controller.NewUtilisateurController(db)

	utilisateurs := api.Group("/utilisateurs")
	utilisateurs.Get("/moi", utilisateurCtrl.Moi)
	utilisateurs.Put("/moi/mot-de-passe", utilisateurCtrl.ChangerMotDePasse)
}
