// file: internals/databases/database.go
package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"repartition_backend/internals/configs"
	anneeModel "repartition_backend/internals/features/annees/model"
	attributionModel "repartition_backend/internals/features/attributions/model"
	champModel "repartition_backend/internals/features/champs/model"
	coursModel "repartition_backend/internals/features/cours/model"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
	preparationModel "repartition_backend/internals/features/preparation/model"
	utilisateurModel "repartition_backend/internals/features/utilisateurs/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connexion à PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=repartition&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Connexion DB échouée: %v", err)
	}
	DB = db
	log.Println("✅ DB connectée.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("réglage du pool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate : AutoMigrate de tous les modèles du domaine. L'ordre respecte
// les FK (référencés avant référents).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&anneeModel.AnneeScolaireModel{},
		&champModel.ChampModel{},
		&champModel.ChampAnneeStatutModel{},
		&coursModel.TypeFinancementModel{},
		&coursModel.CoursModel{},
		&enseignantModel.EnseignantModel{},
		&attributionModel.AttributionModel{},
		&utilisateurModel.UtilisateurModel{},
		&utilisateurModel.UtilisateurChampAccesModel{},
		&preparationModel.PreparationHoraireModel{},
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
