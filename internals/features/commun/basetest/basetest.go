// file: internals/features/commun/basetest/basetest.go
package basetest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "repartition_backend/internals/databases"
	anneeModel "repartition_backend/internals/features/annees/model"
	champModel "repartition_backend/internals/features/champs/model"
	coursModel "repartition_backend/internals/features/cours/model"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

// OuvrirDB : base SQLite en mémoire avec le schéma complet. Une seule
// connexion ouverte, sinon chaque connexion du pool verrait sa propre
// base mémoire.
func OuvrirDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("ouvrir sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("pool sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrer schéma: %v", err)
	}
	return db
}

// SemerAnnee : une année scolaire prête à l'emploi.
func SemerAnnee(t *testing.T, db *gorm.DB, libelle string) anneeModel.AnneeScolaireModel {
	t.Helper()
	annee := anneeModel.AnneeScolaireModel{AnneeLibelle: libelle, AnneeEstCourante: true}
	if err := db.Create(&annee).Error; err != nil {
		t.Fatalf("semer année: %v", err)
	}
	return annee
}

// SemerChamp : un champ de référence.
func SemerChamp(t *testing.T, db *gorm.DB, no, nom string) champModel.ChampModel {
	t.Helper()
	champ := champModel.ChampModel{ChampNo: no, ChampNom: nom}
	if err := db.Create(&champ).Error; err != nil {
		t.Fatalf("semer champ: %v", err)
	}
	return champ
}

// SemerCours : un cours avec quota de groupes.
func SemerCours(t *testing.T, db *gorm.DB, code string, anneeID uuid.UUID, champNo string, periodes float64, groupes int) coursModel.CoursModel {
	t.Helper()
	cours := coursModel.CoursModel{
		CoursCode:            code,
		CoursAnneeID:         anneeID,
		CoursChampNo:         champNo,
		CoursDescriptif:      "Cours " + code,
		CoursNbPeriodes:      periodes,
		CoursNbGroupeInitial: groupes,
	}
	if err := db.Create(&cours).Error; err != nil {
		t.Fatalf("semer cours: %v", err)
	}
	return cours
}

// SemerEnseignant : un enseignant réel temps plein.
func SemerEnseignant(t *testing.T, db *gorm.DB, anneeID uuid.UUID, champNo, nomComplet string) enseignantModel.EnseignantModel {
	t.Helper()
	ens := enseignantModel.EnseignantModel{
		EnseignantAnneeID:       anneeID,
		EnseignantChampNo:       champNo,
		EnseignantNomComplet:    nomComplet,
		EnseignantEstTempsPlein: true,
	}
	if err := db.Create(&ens).Error; err != nil {
		t.Fatalf("semer enseignant: %v", err)
	}
	return ens
}
