package seeds

import (
	"gorm.io/gorm"

	champs "repartition_backend/internals/seeds/champs"
	financement "repartition_backend/internals/seeds/financement"
	utilisateurs "repartition_backend/internals/seeds/utilisateurs"
)

func RunAllSeeds(db *gorm.DB) {

	//* Référentiels
	champs.SeedChampsFromJSON(db, "internals/seeds/champs/data_champs.json")
	financement.SeedFinancementFromJSON(db, "internals/seeds/financement/data_financement.json")

	//* Comptes
	utilisateurs.SeedAdminFromEnv(db)
}
