// file: internals/features/preparation/service/preparation_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"repartition_backend/internals/features/commun"
	"repartition_backend/internals/features/commun/basetest"
)

func TestSauvegarderPuisRelire(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)
	basetest.SemerCours(t, db, "MAT201", annee.AnneeID, "13", 6, 2)
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	svc := NewPreparationService(db)
	nb, err := svc.Sauvegarder(annee.AnneeID, []CelluleHoraire{
		{NiveauSecondaire: 2, CodeCours: "MAT201", AnneeCours: annee.AnneeID, Colonne: "B"},
		{NiveauSecondaire: 1, CodeCours: "MAT101", AnneeCours: annee.AnneeID, EnseignantID: &ens.EnseignantID, Colonne: "A"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, nb)

	lignes, err := svc.Donnees(annee.AnneeID)
	require.NoError(t, err)
	require.Len(t, lignes, 2)
	// tri niveau puis colonne
	require.Equal(t, "MAT101", lignes[0].PreparationCodeCours)
	require.Equal(t, ens.EnseignantID, *lignes[0].PreparationEnseignantID)
	require.Equal(t, "MAT201", lignes[1].PreparationCodeCours)
}

func TestSauvegarderRemplaceLaGrille(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)
	basetest.SemerCours(t, db, "MAT201", annee.AnneeID, "13", 6, 2)

	svc := NewPreparationService(db)
	_, err := svc.Sauvegarder(annee.AnneeID, []CelluleHoraire{
		{NiveauSecondaire: 1, CodeCours: "MAT101", AnneeCours: annee.AnneeID, Colonne: "A"},
	})
	require.NoError(t, err)

	_, err = svc.Sauvegarder(annee.AnneeID, []CelluleHoraire{
		{NiveauSecondaire: 2, CodeCours: "MAT201", AnneeCours: annee.AnneeID, Colonne: "B"},
	})
	require.NoError(t, err)

	lignes, err := svc.Donnees(annee.AnneeID)
	require.NoError(t, err)
	require.Len(t, lignes, 1)
	require.Equal(t, "MAT201", lignes[0].PreparationCodeCours)
}

func TestSauvegarderRejetteLaGrilleEnBloc(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)

	svc := NewPreparationService(db)
	_, err := svc.Sauvegarder(annee.AnneeID, []CelluleHoraire{
		{NiveauSecondaire: 1, CodeCours: "MAT101", AnneeCours: annee.AnneeID, Colonne: "A"},
		{NiveauSecondaire: 2, CodeCours: "", AnneeCours: annee.AnneeID, Colonne: "B"},
	})
	require.ErrorIs(t, err, commun.ErrValidation)

	// rien ne doit avoir été écrit
	lignes, err := svc.Donnees(annee.AnneeID)
	require.NoError(t, err)
	require.Empty(t, lignes)
}

func TestGrilleVide(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")

	svc := NewPreparationService(db)
	nb, err := svc.Sauvegarder(annee.AnneeID, nil)
	require.NoError(t, err)
	require.Zero(t, nb)

	lignes, err := svc.Donnees(annee.AnneeID)
	require.NoError(t, err)
	require.Empty(t, lignes)
}
