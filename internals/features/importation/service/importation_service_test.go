// file: internals/features/importation/service/importation_service_test.go
package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	attributionService "repartition_backend/internals/features/attributions/service"
	"repartition_backend/internals/features/commun"
	"repartition_backend/internals/features/commun/basetest"
	enseignantService "repartition_backend/internals/features/enseignants/service"

	"github.com/google/uuid"
	anneeModel "repartition_backend/internals/features/annees/model"
	attributionModel "repartition_backend/internals/features/attributions/model"
	coursModel "repartition_backend/internals/features/cours/model"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

func TestImporterCoursRemplaceEtVideLesAttributions(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "ANC101", annee.AnneeID, "13", 4, 3)
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	attrSvc := attributionService.NewAttributionService(db)
	_, err := attrSvc.Ajouter(ens.EnseignantID, "ANC101", annee.AnneeID)
	require.NoError(t, err)

	svc := NewImportationService(db)
	stats, err := svc.ImporterCours(annee.AnneeID, []LigneCoursImport{
		{CodeCours: "MAT101", ChampNo: "13", Descriptif: "Mathématiques", NbPeriodes: 4, NbGroupeInitial: 3},
		{CodeCours: "MAT201", ChampNo: "13", Descriptif: "Mathématiques enrichies", NbPeriodes: 6, NbGroupeInitial: 2},
	})
	require.NoError(t, err)
	require.Equal(t, 2, stats.CoursImportes)
	require.Equal(t, 1, stats.AttributionsEffacees)
	require.Equal(t, 0, stats.LignesIgnorees)

	var codes []string
	require.NoError(t, db.Model(&coursModel.CoursModel{}).
		Where("cours_annee_id = ?", annee.AnneeID).
		Order("cours_code").Pluck("cours_code", &codes).Error)
	require.Equal(t, []string{"MAT101", "MAT201"}, codes)

	var nbAttr int64
	require.NoError(t, db.Model(&attributionModel.AttributionModel{}).
		Where("attribution_annee_cours = ?", annee.AnneeID).Count(&nbAttr).Error)
	require.Zero(t, nbAttr)
}

func TestImporterCoursIgnoreLignesInvalidesEtDoublons(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewImportationService(db)
	stats, err := svc.ImporterCours(annee.AnneeID, []LigneCoursImport{
		{CodeCours: "MAT101", ChampNo: "13", Descriptif: "Mathématiques", NbPeriodes: 4, NbGroupeInitial: 3},
		{CodeCours: "MAT101", ChampNo: "13", Descriptif: "Doublon", NbPeriodes: 4, NbGroupeInitial: 3},
		{CodeCours: "", ChampNo: "13", Descriptif: "Sans code", NbPeriodes: 4, NbGroupeInitial: 3},
		{CodeCours: "MAT301", ChampNo: "", Descriptif: "Sans champ", NbPeriodes: 4, NbGroupeInitial: 3},
	})
	require.NoError(t, err)
	require.Equal(t, 1, stats.CoursImportes)
	require.Equal(t, 3, stats.LignesIgnorees)
}

func TestImporterEnseignantsPreserveLesFictifs(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)
	reel := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	ensSvc := enseignantService.NewEnseignantService(db)
	fictif, err := ensSvc.CreerTacheRestante("13", annee.AnneeID)
	require.NoError(t, err)

	attrSvc := attributionService.NewAttributionService(db)
	_, err = attrSvc.Ajouter(reel.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)
	_, err = attrSvc.Ajouter(fictif.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)

	svc := NewImportationService(db)
	stats, err := svc.ImporterEnseignants(annee.AnneeID, []LigneEnseignantImport{
		{ChampNo: "13", Nom: "Gagnon", Prenom: "Luc", EstTempsPlein: true},
	})
	require.NoError(t, err)
	require.Equal(t, 1, stats.EnseignantsImportes)
	require.Equal(t, 1, stats.AttributionsEffacees)

	// le fictif et son attribution survivent, l'enseignant réel est remplacé
	var noms []string
	require.NoError(t, db.Model(&enseignantModel.EnseignantModel{}).
		Where("enseignant_annee_id = ?", annee.AnneeID).
		Order("enseignant_est_fictif, enseignant_nom_complet").
		Pluck("enseignant_nom_complet", &noms).Error)
	require.Equal(t, []string{"Gagnon, Luc", fictif.EnseignantNomComplet}, noms)

	var attrRestantes []attributionModel.AttributionModel
	require.NoError(t, db.Where("attribution_annee_cours = ?", annee.AnneeID).
		Find(&attrRestantes).Error)
	require.Len(t, attrRestantes, 1)
	require.Equal(t, fictif.EnseignantID, attrRestantes[0].AttributionEnseignantID)
}

func TestImporterFigeLesStatsDansLAnnee(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewImportationService(db)
	_, err := svc.ImporterCours(annee.AnneeID, []LigneCoursImport{
		{CodeCours: "MAT101", ChampNo: "13", Descriptif: "Mathématiques", NbPeriodes: 4, NbGroupeInitial: 3},
	})
	require.NoError(t, err)

	var rechargee anneeModel.AnneeScolaireModel
	require.NoError(t, db.First(&rechargee, "annee_id = ?", annee.AnneeID).Error)
	require.NotEmpty(t, rechargee.AnneeStats)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rechargee.AnneeStats, &doc))
	require.EqualValues(t, 1, doc["nb_cours"])
	require.Contains(t, doc, "derniere_importation")
}

func TestImporterAnneeInconnue(t *testing.T) {
	db := basetest.OuvrirDB(t)

	svc := NewImportationService(db)
	_, err := svc.ImporterCours(uuid.New(), nil)
	require.ErrorIs(t, err, commun.ErrIntrouvable)
}
