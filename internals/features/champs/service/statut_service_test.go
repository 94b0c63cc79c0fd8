// file: internals/features/champs/service/statut_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"repartition_backend/internals/features/commun"
	"repartition_backend/internals/features/commun/basetest"
)

func TestStatutAbsentVautFaux(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewStatutService(db)
	verrou, confirme, err := svc.Statut("13", annee.AnneeID)
	require.NoError(t, err)
	require.False(t, verrou)
	require.False(t, confirme)
}

func TestBasculerVerrouCreePuisInverse(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewStatutService(db)

	nouveau, err := svc.BasculerVerrou("13", annee.AnneeID)
	require.NoError(t, err)
	require.True(t, nouveau)

	nouveau, err = svc.BasculerVerrou("13", annee.AnneeID)
	require.NoError(t, err)
	require.False(t, nouveau)
}

func TestVerrouEtConfirmationIndependants(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewStatutService(db)

	_, err := svc.BasculerVerrou("13", annee.AnneeID)
	require.NoError(t, err)

	verrou, confirme, err := svc.Statut("13", annee.AnneeID)
	require.NoError(t, err)
	require.True(t, verrou)
	require.False(t, confirme)

	_, err = svc.BasculerConfirmation("13", annee.AnneeID)
	require.NoError(t, err)

	verrou, confirme, err = svc.Statut("13", annee.AnneeID)
	require.NoError(t, err)
	require.True(t, verrou)
	require.True(t, confirme)

	// baisser le verrou ne touche pas la confirmation
	_, err = svc.BasculerVerrou("13", annee.AnneeID)
	require.NoError(t, err)

	verrou, confirme, err = svc.Statut("13", annee.AnneeID)
	require.NoError(t, err)
	require.False(t, verrou)
	require.True(t, confirme)
}

func TestStatutsIsolesParAnnee(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee1 := basetest.SemerAnnee(t, db, "2024-2025")
	annee2 := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewStatutService(db)
	_, err := svc.BasculerVerrou("13", annee1.AnneeID)
	require.NoError(t, err)

	verrou, _, err := svc.Statut("13", annee2.AnneeID)
	require.NoError(t, err)
	require.False(t, verrou)
}

func TestDetailsChampInconnu(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")

	svc := NewStatutService(db)
	_, err := svc.Details("99", annee.AnneeID)
	require.ErrorIs(t, err, commun.ErrIntrouvable)
}
