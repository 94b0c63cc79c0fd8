// file: internals/features/utilisateurs/service/utilisateur_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"repartition_backend/internals/features/commun"
	"repartition_backend/internals/features/commun/basetest"
)

const secretTest = "secret-de-test"

func TestConnexionEmetUnJetonValide(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewUtilisateurService(db, secretTest, time.Hour)

	u, err := svc.Creer(DonneesUtilisateur{Nom: "direction", MotDePasse: "motdepasse", EstAdmin: true})
	require.NoError(t, err)

	jeton, connecte, err := svc.Connexion("direction", "motdepasse")
	require.NoError(t, err)
	require.Equal(t, u.UtilisateurID, connecte.UtilisateurID)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(jeton, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secretTest), nil
	})
	require.NoError(t, err)
	require.Equal(t, u.UtilisateurID.String(), claims["sub"])
	require.Equal(t, true, claims["est_admin"])
}

func TestConnexionRefuseSansDireQuoi(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewUtilisateurService(db, secretTest, time.Hour)

	_, err := svc.Creer(DonneesUtilisateur{Nom: "direction", MotDePasse: "motdepasse"})
	require.NoError(t, err)

	_, _, err = svc.Connexion("direction", "mauvais-mot")
	require.ErrorIs(t, err, ErrIdentifiants)

	_, _, err = svc.Connexion("inconnu", "motdepasse")
	require.ErrorIs(t, err, ErrIdentifiants)
}

func TestCreerDoublonEtMotDePasseCourt(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewUtilisateurService(db, secretTest, time.Hour)

	_, err := svc.Creer(DonneesUtilisateur{Nom: "direction", MotDePasse: "motdepasse"})
	require.NoError(t, err)

	_, err = svc.Creer(DonneesUtilisateur{Nom: "direction", MotDePasse: "autremotdepasse"})
	require.ErrorIs(t, err, commun.ErrDoublon)

	_, err = svc.Creer(DonneesUtilisateur{Nom: "court", MotDePasse: "abc"})
	require.ErrorIs(t, err, commun.ErrValidation)
}

func TestConstruireActeurSelonLeRole(t *testing.T) {
	db := basetest.OuvrirDB(t)
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerChamp(t, db, "21", "Sciences")
	svc := NewUtilisateurService(db, secretTest, time.Hour)

	admin, err := svc.Creer(DonneesUtilisateur{Nom: "direction", MotDePasse: "motdepasse", EstAdmin: true})
	require.NoError(t, err)
	standard, err := svc.Creer(DonneesUtilisateur{
		Nom: "delegue", MotDePasse: "motdepasse", ChampsAutorises: []string{"13"},
	})
	require.NoError(t, err)
	lecteur, err := svc.Creer(DonneesUtilisateur{
		Nom: "lecteur", MotDePasse: "motdepasse", EstTableauSeulement: true,
	})
	require.NoError(t, err)

	a, err := svc.ConstruireActeur(admin.UtilisateurID)
	require.NoError(t, err)
	require.True(t, a.PeutAccederChamp("21"))
	require.True(t, a.PeutModifier("21"))

	d, err := svc.ConstruireActeur(standard.UtilisateurID)
	require.NoError(t, err)
	require.True(t, d.PeutAccederChamp("13"))
	require.True(t, d.PeutModifier("13"))
	require.False(t, d.PeutAccederChamp("21"))

	l, err := svc.ConstruireActeur(lecteur.UtilisateurID)
	require.NoError(t, err)
	require.True(t, l.PeutAccederChamp("13"))
	require.False(t, l.PeutModifier("13"))
}

func TestMettreAJourAccesRemplaceLaListe(t *testing.T) {
	db := basetest.OuvrirDB(t)
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	basetest.SemerChamp(t, db, "21", "Sciences")
	svc := NewUtilisateurService(db, secretTest, time.Hour)

	u, err := svc.Creer(DonneesUtilisateur{
		Nom: "delegue", MotDePasse: "motdepasse", ChampsAutorises: []string{"13"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.MettreAJourAcces(u.UtilisateurID, []string{"21"}))

	a, err := svc.ConstruireActeur(u.UtilisateurID)
	require.NoError(t, err)
	require.False(t, a.PeutAccederChamp("13"))
	require.True(t, a.PeutAccederChamp("21"))
}

func TestChangerMotDePasse(t *testing.T) {
	db := basetest.OuvrirDB(t)
	svc := NewUtilisateurService(db, secretTest, time.Hour)

	u, err := svc.Creer(DonneesUtilisateur{Nom: "direction", MotDePasse: "motdepasse"})
	require.NoError(t, err)

	err = svc.ChangerMotDePasse(u.UtilisateurID, "mauvais", "nouveaumot")
	require.ErrorIs(t, err, ErrIdentifiants)

	require.NoError(t, svc.ChangerMotDePasse(u.UtilisateurID, "motdepasse", "nouveaumot"))

	_, _, err = svc.Connexion("direction", "nouveaumot")
	require.NoError(t, err)
}

func TestSupprimerEffaceAussiLesAcces(t *testing.T) {
	db := basetest.OuvrirDB(t)
	basetest.SemerChamp(t, db, "13", "Mathématiques")
	svc := NewUtilisateurService(db, secretTest, time.Hour)

	u, err := svc.Creer(DonneesUtilisateur{
		Nom: "delegue", MotDePasse: "motdepasse", ChampsAutorises: []string{"13"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Supprimer(u.UtilisateurID))
	require.ErrorIs(t, svc.Supprimer(u.UtilisateurID), commun.ErrIntrouvable)

	_, err = svc.ConstruireActeur(u.UtilisateurID)
	require.ErrorIs(t, err, commun.ErrIntrouvable)

	require.ErrorIs(t, svc.MettreAJourAcces(uuid.New(), []string{"13"}), commun.ErrIntrouvable)
}
