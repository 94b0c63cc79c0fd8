// file: internals/features/annees/service/annee_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	anneeModel "repartition_backend/internals/features/annees/model"
	"repartition_backend/internals/features/commun"
	"repartition_backend/internals/features/commun/basetest"
)

func TestPremiereAnneeDevientCourante(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewAnneeService(db)

	annee, err := svc.Creer("2025-2026")
	require.NoError(t, err)
	require.True(t, annee.AnneeEstCourante)

	suivante, err := svc.Creer("2026-2027")
	require.NoError(t, err)
	require.False(t, suivante.AnneeEstCourante)
}

func TestCreerDoublonRefuse(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewAnneeService(db)

	_, err := svc.Creer("2025-2026")
	require.NoError(t, err)
	_, err = svc.Creer("2025-2026")
	require.ErrorIs(t, err, commun.ErrDoublon)
}

func TestDefinirCouranteEstExclusive(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewAnneeService(db)

	a1, err := svc.Creer("2024-2025")
	require.NoError(t, err)
	a2, err := svc.Creer("2025-2026")
	require.NoError(t, err)

	_, err = svc.DefinirCourante(a2.AnneeID)
	require.NoError(t, err)

	var courantes int64
	require.NoError(t, db.Model(&anneeModel.AnneeScolaireModel{}).
		Where("annee_est_courante = ?", true).Count(&courantes).Error)
	require.EqualValues(t, 1, courantes)

	courante, err := svc.AnneeCourante()
	require.NoError(t, err)
	require.Equal(t, a2.AnneeID, courante.AnneeID)

	_, err = svc.DefinirCourante(a1.AnneeID)
	require.NoError(t, err)
	courante, err = svc.AnneeCourante()
	require.NoError(t, err)
	require.Equal(t, a1.AnneeID, courante.AnneeID)
}

func TestAnneeCouranteAbsente(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewAnneeService(db)

	_, err := svc.AnneeCourante()
	require.ErrorIs(t, err, commun.ErrIntrouvable)
}

func TestSupprimerRefuseSiReferencee(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewAnneeService(db)

	annee, err := svc.Creer("2025-2026")
	require.NoError(t, err)
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	err = svc.Supprimer(annee.AnneeID)
	require.ErrorIs(t, err, commun.ErrReferenceUtilisee)
}

func TestSupprimerAnneeVide(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewAnneeService(db)

	annee, err := svc.Creer("2025-2026")
	require.NoError(t, err)
	require.NoError(t, svc.Supprimer(annee.AnneeID))

	_, err = svc.ParID(annee.AnneeID)
	require.ErrorIs(t, err, commun.ErrIntrouvable)
}
