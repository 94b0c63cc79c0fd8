// file: internals/features/cours/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"repartition_backend/internals/features/cours/controller"
)

func CoursUserRoutes(api fiber.Router, db *gorm.DB) {
	coursCtrl := controller.NewCoursController(db)

	cours := api.Group("/cours")
	cours.Get("/:codeCours", coursCtrl.Details)
}
