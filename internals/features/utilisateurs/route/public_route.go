// file: internals/features/utilisateurs/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/utilisateurs/controller"
)

func UtilisateurPublicRoutes(api fiber.Router, db *gorm.DB) {
	utilisateurCtrl := controller.NewUtilisateurController(db)

	auth := api.Group("/auth")
	auth.Post("/connexion", utilisateurCtrl.Connexion)
}
