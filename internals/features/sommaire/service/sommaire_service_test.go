// file: internals/features/sommaire/service/sommaire_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	attributionModel "repartition_backend/internals/features/attributions/model"
	attributionService "repartition_backend/internals/features/attributions/service"
	champModel "repartition_backend/internals/features/champs/model"
	"repartition_backend/internals/features/commun/basetest"
	coursModel "repartition_backend/internals/features/cours/model"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

func TestCalculerPeriodesSepareCoursEtAutres(t *testing.T) {
	regulier := &coursModel.CoursModel{CoursNbPeriodes: 4}
	autre := &coursModel.CoursModel{CoursNbPeriodes: 2, CoursEstAutre: true}

	p := CalculerPeriodes([]attributionModel.AttributionModel{
		{AttributionNbGroupes: 2, Cours: regulier},
		{AttributionNbGroupes: 1, Cours: regulier},
		{AttributionNbGroupes: 3, Cours: autre},
		{AttributionNbGroupes: 1, Cours: nil},
	})
	require.Equal(t, 12.0, p.PeriodesCours)
	require.Equal(t, 6.0, p.PeriodesAutres)
	require.Equal(t, 18.0, p.TotalPeriodes)
}

func TestCalculerPeriodesVide(t *testing.T) {
	p := CalculerPeriodes(nil)
	require.Zero(t, p.TotalPeriodes)
}

func TestEtablissementMoyenneEtPeriodesMagiques(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 22, 2)

	marie := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")
	luc := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Bouchard, Luc")

	attrSvc := attributionService.NewAttributionService(db)
	_, err := attrSvc.Ajouter(marie.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)
	_, err = attrSvc.Ajouter(luc.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)

	sommaire, err := NewSommaireService(db).Etablissement(annee.AnneeID)
	require.NoError(t, err)
	require.Len(t, sommaire.Champs, 1)

	ligne := sommaire.Champs[0]
	require.Equal(t, 2, ligne.NbEnseignantsTP)
	require.Equal(t, 44.0, ligne.PeriodesChoisies)
	require.Equal(t, 22.0, ligne.Moyenne)
	// 44 périodes choisies pour 2 tâches pleines de 24 : il manque 4
	require.Equal(t, -4.0, ligne.PeriodesMagiques)

	require.Equal(t, 22.0, sommaire.MoyenneGenerale)
	require.Equal(t, 2, sommaire.TotalEnseignantsTP)
	require.Equal(t, 44.0, sommaire.TotalPeriodesChoisies)
	require.Equal(t, -4.0, sommaire.TotalPeriodesMagiques)
}

func TestEtablissementExclutFictifsEtTempsPartiels(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 10, 5)

	marie := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	partiel := enseignantModel.EnseignantModel{
		EnseignantAnneeID:    annee.AnneeID,
		EnseignantChampNo:    "13",
		EnseignantNomComplet: "Gagnon, Paul",
	}
	require.NoError(t, db.Create(&partiel).Error)

	fictif := enseignantModel.EnseignantModel{
		EnseignantAnneeID:    annee.AnneeID,
		EnseignantChampNo:    "13",
		EnseignantNomComplet: "13-Tâche restante-1",
		EnseignantEstFictif:  true,
	}
	require.NoError(t, db.Create(&fictif).Error)

	attrSvc := attributionService.NewAttributionService(db)
	for _, ens := range []enseignantModel.EnseignantModel{marie, partiel, fictif} {
		_, err := attrSvc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
		require.NoError(t, err)
	}

	sommaire, err := NewSommaireService(db).Etablissement(annee.AnneeID)
	require.NoError(t, err)

	ligne := sommaire.Champs[0]
	// seule Marie compte : 1 TP réel, 10 périodes
	require.Equal(t, 1, ligne.NbEnseignantsTP)
	require.Equal(t, 10.0, ligne.PeriodesChoisies)
	require.Equal(t, 10.0, ligne.Moyenne)
}

func TestEtablissementChampVide(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	sommaire, err := NewSommaireService(db).Etablissement(annee.AnneeID)
	require.NoError(t, err)
	require.Len(t, sommaire.Champs, 1)

	ligne := sommaire.Champs[0]
	require.Zero(t, ligne.NbEnseignantsTP)
	require.Zero(t, ligne.Moyenne)
	require.Zero(t, ligne.PeriodesMagiques)
	require.Zero(t, sommaire.MoyenneGenerale)
}

func TestMoyennePreliminaireConfirmee(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerChamp(t, db, "08", "Anglais")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 20, 5)
	basetest.SemerCours(t, db, "ANG101", annee.AnneeID, "08", 10, 5)

	marie := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")
	luc := basetest.SemerEnseignant(t, db, annee.AnneeID, "08", "Bouchard, Luc")

	attrSvc := attributionService.NewAttributionService(db)
	_, err := attrSvc.Ajouter(marie.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)
	_, err = attrSvc.Ajouter(luc.EnseignantID, "ANG101", annee.AnneeID)
	require.NoError(t, err)

	// seul le champ 13 est confirmé
	require.NoError(t, db.Create(&champModel.ChampAnneeStatutModel{
		StatutChampNo:     "13",
		StatutAnneeID:     annee.AnneeID,
		StatutEstConfirme: true,
	}).Error)

	sommaire, err := NewSommaireService(db).Etablissement(annee.AnneeID)
	require.NoError(t, err)

	// générale : (20 + 10) / 2 ; confirmée : 20 / 1
	require.Equal(t, 15.0, sommaire.MoyenneGenerale)
	require.Equal(t, 20.0, sommaire.MoyennePreliminaireConfirmee)
}
