// file: internals/features/enseignants/service/enseignant_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	attributionService "repartition_backend/internals/features/attributions/service"
	"repartition_backend/internals/features/commun"
	"repartition_backend/internals/features/commun/basetest"
)

func TestCreerPuisDoublonRefuse(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewEnseignantService(db)

	ens, err := svc.Creer(annee.AnneeID, DonneesEnseignant{
		ChampNo: "13", Nom: "Tremblay", Prenom: "Marie", EstTempsPlein: true,
	})
	require.NoError(t, err)
	require.Equal(t, "Tremblay, Marie", ens.EnseignantNomComplet)

	_, err = svc.Creer(annee.AnneeID, DonneesEnseignant{
		ChampNo: "13", Nom: "Tremblay", Prenom: "Marie",
	})
	require.ErrorIs(t, err, commun.ErrDoublon)
}

func TestNumerotationDesTachesRestantes(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewEnseignantService(db)

	t1, err := svc.CreerTacheRestante("13", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, "13-Tâche restante-1", t1.EnseignantNomComplet)
	require.True(t, t1.EnseignantEstFictif)
	require.False(t, t1.EnseignantEstTempsPlein)

	t2, err := svc.CreerTacheRestante("13", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, "13-Tâche restante-2", t2.EnseignantNomComplet)

	t3, err := svc.CreerTacheRestante("13", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, "13-Tâche restante-3", t3.EnseignantNomComplet)

	// supprimer la 2 ne libère pas son numéro : la suivante est la 4
	_, err = svc.Supprimer(t2.EnseignantID)
	require.NoError(t, err)

	t4, err := svc.CreerTacheRestante("13", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, "13-Tâche restante-4", t4.EnseignantNomComplet)
}

func TestNumerotationIndependanteParChamp(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerChamp(t, db, "08", "Anglais")

	svc := NewEnseignantService(db)

	m1, err := svc.CreerTacheRestante("13", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, "13-Tâche restante-1", m1.EnseignantNomComplet)

	a1, err := svc.CreerTacheRestante("08", annee.AnneeID)
	require.NoError(t, err)
	require.Equal(t, "08-Tâche restante-1", a1.EnseignantNomComplet)
}

func TestSupprimerCascadeSesAttributions(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerCours(t, db, "MAT101", annee.AnneeID, "13", 4, 3)
	basetest.SemerCours(t, db, "MAT201", annee.AnneeID, "13", 6, 2)
	ens := basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")

	attrSvc := attributionService.NewAttributionService(db)
	_, err := attrSvc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)
	_, err = attrSvc.Ajouter(ens.EnseignantID, "MAT101", annee.AnneeID)
	require.NoError(t, err)
	_, err = attrSvc.Ajouter(ens.EnseignantID, "MAT201", annee.AnneeID)
	require.NoError(t, err)

	svc := NewEnseignantService(db)
	liberes, err := svc.Supprimer(ens.EnseignantID)
	require.NoError(t, err)
	require.Len(t, liberes, 2)

	parCours := make(map[string]int, len(liberes))
	for _, l := range liberes {
		parCours[l.CodeCours] = l.NbGroupes
	}
	require.Equal(t, 2, parCours["MAT101"])
	require.Equal(t, 1, parCours["MAT201"])

	var restantes int64
	require.NoError(t, db.Table("attributions_cours").
		Where("attribution_enseignant_id = ?", ens.EnseignantID).
		Count(&restantes).Error)
	require.Zero(t, restantes)

	_, err = svc.ParID(ens.EnseignantID)
	require.ErrorIs(t, err, commun.ErrIntrouvable)
}

func TestParChampOrdonneReelsPuisFictifs(t *testing.T) {
	db := basetest.OuvrirDB(t)
	annee := basetest.SemerAnnee(t, db, "2025-2026")
	basetest.SemerChamp(t, db, "13", "Mathématiques")

	svc := NewEnseignantService(db)
	_, err := svc.CreerTacheRestante("13", annee.AnneeID)
	require.NoError(t, err)
	basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Tremblay, Marie")
	basetest.SemerEnseignant(t, db, annee.AnneeID, "13", "Bouchard, Luc")

	liste, err := svc.ParChamp("13", annee.AnneeID)
	require.NoError(t, err)
	require.Len(t, liste, 3)
	require.Equal(t, "Bouchard, Luc", liste[0].EnseignantNomComplet)
	require.Equal(t, "Tremblay, Marie", liste[1].EnseignantNomComplet)
	require.True(t, liste[2].EnseignantEstFictif)
}
