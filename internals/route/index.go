// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	anneeRoute "repartition_backend/internals/features/annees/route"
	attributionRoute "repartition_backend/internals/features/attributions/route"
	champRoute "repartition_backend/internals/features/champs/route"
	coursRoute "repartition_backend/internals/features/cours/route"
	enseignantRoute "repartition_backend/internals/features/enseignants/route"
	importationRoute "repartition_backend/internals/features/importation/route"
	preparationRoute "repartition_backend/internals/features/preparation/route"
	sommaireRoute "repartition_backend/internals/features/sommaire/route"
	utilisateurRoute "repartition_backend/internals/features/utilisateurs/route"
	authMiddleware "repartition_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Routes PUBLIC...")
	public := app.Group("/api/public")
	utilisateurRoute.UtilisateurPublicRoutes(public, db)

	// ===================== PRIVÉ (USER) =====================
	log.Println("[INFO] Routes PRIVÉES (authentifiées)...")
	prive := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	utilisateurRoute.UtilisateurUserRoutes(prive, db)
	anneeRoute.AnneeUserRoutes(prive, db)
	champRoute.ChampUserRoutes(prive, db)
	coursRoute.CoursUserRoutes(prive, db)
	enseignantRoute.EnseignantUserRoutes(prive, db)
	attributionRoute.AttributionUserRoutes(prive, db)
	sommaireRoute.SommaireUserRoutes(prive, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Routes ADMIN...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.AdminOnly(),
	)
	anneeRoute.AnneeAdminRoutes(admin, db)
	champRoute.ChampAdminRoutes(admin, db)
	coursRoute.CoursAdminRoutes(admin, db)
	enseignantRoute.EnseignantAdminRoutes(admin, db)
	utilisateurRoute.UtilisateurAdminRoutes(admin, db)
	importationRoute.ImportationAdminRoutes(admin, db)
	preparationRoute.PreparationAdminRoutes(admin, db)
}
