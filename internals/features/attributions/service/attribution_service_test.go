// file: internals/features/attributions/service/attribution_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	champModel "repartition_backend/internals/features/champs/model"
	"repartition_backend/internals/features/commun"
	"repartition_backend/internals/features/commun/basetest"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

func TestAjouterDecrementeLesGroupesRestants(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	svc := NewAttributionService(db)

	res, err := svc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, 2, res.GroupesRestants)
	require.Equal(t, 4.0, res.PeriodesEnseignant)

	res, err = svc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, 1, res.GroupesRestants)
	require.Equal(t, 8.0, res.PeriodesEnseignant)
}

func TestAjouterRefuseQuandPlusDeGroupes(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 2)
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	svc := NewAttributionService(db)

	// 5 tentatives pour 2 groupes : 2 succès, 3 refus
	var succes, refus int
	for i := 0; i < 5; i++ {
		_, err := svc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
		switch {
		case err == nil:
			succes++
		default:
			require.ErrorIs(t, err, commun.ErrQuotaDepasse)
			refus++
		}
	}
	require.Equal(t, 2, succes)
	require.Equal(t, 3, refus)
}

func TestAjouterBloqueParLeVerrouDuChamp(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	require.NoError(t, db.Create(&champModel.ChampAnneeStatutModel{
		StatutChampNo:       "13",
		StatutAnneeID:       annee.AnneeID,
		StatutEstVerrouille: true,
	}).Error)

	svc := NewAttributionService(db)
	_, err := svc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
	require.ErrorIs(t, err, commun.ErrChampVerrouille)
}

func TestFictifExemptDuVerrou(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)

	fictif := enseignantModel.EnseignantModel{
		EnseignantAnneeID:    annee.AnneeID,
		EnseignantChampNo:    "13",
		EnseignantNomComplet: "13-Tâche restante-1",
		EnseignantEstFictif:  true,
	}
	require.NoError(t, db.Create(&fictif).Error)

	require.NoError(t, db.Create(&champModel.ChampAnneeStatutModel{
		StatutChampNo:       "13",
		StatutAnneeID:       annee.AnneeID,
		StatutEstVerrouille: true,
	}).Error)

	svc := NewAttributionService(db)

	res, err := svc.Ajouter(fictif.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, 2, res.GroupesRestants)

	// le retrait aussi passe pour un fictif malgré le verrou
	_, err = svc.Supprimer(res.AttributionID)
	require.NoError(t, err)
}

func TestSupprimerBloqueParLeVerrou(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	svc := NewAttributionService(db)
	res, err := svc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)

	require.NoError(t, db.Create(&champModel.ChampAnneeStatutModel{
		StatutChampNo:       "13",
		StatutAnneeID:       annee.AnneeID,
		StatutEstVerrouille: true,
	}).Error)

	_, err = svc.Supprimer(res.AttributionID)
	require.ErrorIs(t, err, commun.ErrChampVerrouille)
}

func TestSupprimerDeuxFoisSignaleIntrouvable(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	svc := NewAttributionService(db)
	res, err := svc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)

	retrait, err := svc.Supprimer(res.AttributionID)
	require.NoError(t, err)
	require.Equal(t, 3, retrait.GroupesRestants)

	_, err = svc.Supprimer(res.AttributionID)
	require.ErrorIs(t, err, commun.ErrIntrouvable)
}

func TestAjouterCoursInexistant(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	svc := NewAttributionService(db)
	_, err := svc.Ajouter(ens.EnseignantID, "FANTOME", annee.AnneeID)
	require.ErrorIs(t, err, commun.ErrIntrouvable)
}
