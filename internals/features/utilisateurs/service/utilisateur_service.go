// file: internals/features/utilisateurs/service/utilisateur_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"repartition_backend/internals/features/commun"
	utilisateurModel "repartition_backend/internals/features/utilisateurs/model"
)

// UtilisateurService : comptes, mots de passe, jetons et accès par champ.
type UtilisateurService struct {
	DB        *gorm.DB
	JWTSecret string
	DureeJWT  time.Duration
}

func NewUtilisateurService(db *gorm.DB, jwtSecret string, duree time.Duration) *UtilisateurService {
	if duree <= 0 {
		duree = 12 * time.Hour
	}
	return &UtilisateurService{DB: db, JWTSecret: jwtSecret, DureeJWT: duree}
}

// ErrIdentifiants : volontairement muet sur la cause (nom ou mot de passe).
var ErrIdentifiants = errors.New("identifiants invalides")

// Connexion : bcrypt puis JWT HS256. Les claims portent tout ce qu'il
// faut pour reconstruire l'acteur sans retoucher la base à chaque requête,
// sauf la liste des champs autorisés qui, elle, reste en base (révocable
// sans attendre l'expiration du jeton).
func (s *UtilisateurService) Connexion(nom, motDePasse string) (string, *utilisateurModel.UtilisateurModel, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" || motDePasse == "" {
		return "", nil, fmt.Errorf("nom et mot de passe requis: %w", commun.ErrValidation)
	}

	var u utilisateurModel.UtilisateurModel
	if err := s.DB.Where("utilisateur_nom = ?", nom).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrIdentifiants
		}
		return "", nil, fmt.Errorf("charger utilisateur: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.UtilisateurMotDePasseHash), []byte(motDePasse)); err != nil {
		return "", nil, ErrIdentifiants
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":                   u.UtilisateurID.String(),
		"nom":                   u.UtilisateurNom,
		"est_admin":             u.UtilisateurEstAdmin,
		"est_tableau_seulement": u.UtilisateurEstTableauSeulement,
		"iat":                   now.Unix(),
		"exp":                   now.Add(s.DureeJWT).Unix(),
	}
	jeton, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("signer jeton: %w", err)
	}
	return jeton, &u, nil
}

// ConstruireActeur : acteur complet depuis l'id (les champs autorisés
// sont relus en base).
func (s *UtilisateurService) ConstruireActeur(utilisateurID uuid.UUID) (*commun.Acteur, error) {
	var u utilisateurModel.UtilisateurModel
	if err := s.DB.Where("utilisateur_id = ?", utilisateurID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("utilisateur %s: %w", utilisateurID, commun.ErrIntrouvable)
		}
		return nil, fmt.Errorf("charger utilisateur: %w", err)
	}

	var champs []string
	if !u.UtilisateurEstAdmin && !u.UtilisateurEstTableauSeulement {
		if err := s.DB.Model(&utilisateurModel.UtilisateurChampAccesModel{}).
			Where("acces_utilisateur_id = ?", utilisateurID).
			Pluck("acces_champ_no", &champs).Error; err != nil {
			return nil, fmt.Errorf("charger accès champs: %w", err)
		}
	}

	return &commun.Acteur{
		UtilisateurID:       u.UtilisateurID,
		NomUtilisateur:      u.UtilisateurNom,
		EstAdmin:            u.UtilisateurEstAdmin,
		EstTableauSeulement: u.UtilisateurEstTableauSeulement,
		ChampsAutorises:     champs,
	}, nil
}

type DonneesUtilisateur struct {
	Nom                 string
	MotDePasse          string
	EstAdmin            bool
	EstTableauSeulement bool
	ChampsAutorises     []string
}

// Creer : hash bcrypt + accès champs en une transaction.
func (s *UtilisateurService) Creer(d DonneesUtilisateur) (*utilisateurModel.UtilisateurModel, error) {
	d.Nom = strings.TrimSpace(d.Nom)
	if d.Nom == "" {
		return nil, fmt.Errorf("nom requis: %w", commun.ErrValidation)
	}
	if len(d.MotDePasse) < 8 {
		return nil, fmt.Errorf("mot de passe trop court (8 caractères minimum): %w", commun.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(d.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hacher mot de passe: %w", err)
	}

	u := utilisateurModel.UtilisateurModel{
		UtilisateurNom:                 d.Nom,
		UtilisateurMotDePasseHash:      string(hash),
		UtilisateurEstAdmin:            d.EstAdmin,
		UtilisateurEstTableauSeulement: d.EstTableauSeulement,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&utilisateurModel.UtilisateurModel{}).
			Where("utilisateur_nom = ?", d.Nom).Count(&cnt).Error; err != nil {
			return fmt.Errorf("vérifier doublon utilisateur: %w", err)
		}
		if cnt > 0 {
			return fmt.Errorf("l'utilisateur %q existe déjà: %w", d.Nom, commun.ErrDoublon)
		}
		if err := tx.Create(&u).Error; err != nil {
			return fmt.Errorf("créer utilisateur: %w", err)
		}
		return remplacerAcces(tx, u.UtilisateurID, d.ChampsAutorises)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// MettreAJourAcces : remplace la liste des champs autorisés.
func (s *UtilisateurService) MettreAJourAcces(utilisateurID uuid.UUID, champs []string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&utilisateurModel.UtilisateurModel{}).
			Where("utilisateur_id = ?", utilisateurID).Count(&cnt).Error; err != nil {
			return fmt.Errorf("vérifier utilisateur: %w", err)
		}
		if cnt == 0 {
			return fmt.Errorf("utilisateur %s: %w", utilisateurID, commun.ErrIntrouvable)
		}
		return remplacerAcces(tx, utilisateurID, champs)
	})
}

func remplacerAcces(tx *gorm.DB, utilisateurID uuid.UUID, champs []string) error {
	if err := tx.Where("acces_utilisateur_id = ?", utilisateurID).
		Delete(&utilisateurModel.UtilisateurChampAccesModel{}).Error; err != nil {
		return fmt.Errorf("vider accès champs: %w", err)
	}
	for _, champNo := range champs {
		champNo = strings.TrimSpace(champNo)
		if champNo == "" {
			continue
		}
		acces := utilisateurModel.UtilisateurChampAccesModel{
			AccesUtilisateurID: utilisateurID,
			AccesChampNo:       champNo,
		}
		if err := tx.Create(&acces).Error; err != nil {
			return fmt.Errorf("créer accès champ %s: %w", champNo, err)
		}
	}
	return nil
}

// ChangerMotDePasse : vérifie l'ancien avant d'écrire le nouveau.
func (s *UtilisateurService) ChangerMotDePasse(utilisateurID uuid.UUID, ancien, nouveau string) error {
	if len(nouveau) < 8 {
		return fmt.Errorf("mot de passe trop court (8 caractères minimum): %w", commun.ErrValidation)
	}

	var u utilisateurModel.UtilisateurModel
	if err := s.DB.Where("utilisateur_id = ?", utilisateurID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("utilisateur %s: %w", utilisateurID, commun.ErrIntrouvable)
		}
		return fmt.Errorf("charger utilisateur: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.UtilisateurMotDePasseHash), []byte(ancien)); err != nil {
		return ErrIdentifiants
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nouveau), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hacher mot de passe: %w", err)
	}
	return s.DB.Model(&utilisateurModel.UtilisateurModel{}).
		Where("utilisateur_id = ?", utilisateurID).
		Update("utilisateur_mot_de_passe_hash", string(hash)).Error
}

// Lister : tous les comptes, sans les hash (json:"-" s'en charge).
func (s *UtilisateurService) Lister() ([]utilisateurModel.UtilisateurModel, error) {
	var liste []utilisateurModel.UtilisateurModel
	if err := s.DB.Order("utilisateur_nom").Find(&liste).Error; err != nil {
		return nil, fmt.Errorf("lister utilisateurs: %w", err)
	}
	return liste, nil
}

// Supprimer : ses accès d'abord, le compte ensuite.
func (s *UtilisateurService) Supprimer(utilisateurID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("acces_utilisateur_id = ?", utilisateurID).
			Delete(&utilisateurModel.UtilisateurChampAccesModel{}).Error; err != nil {
			return fmt.Errorf("supprimer accès champs: %w", err)
		}
		res := tx.Where("utilisateur_id = ?", utilisateurID).
			Delete(&utilisateurModel.UtilisateurModel{})
		if res.Error != nil {
			return fmt.Errorf("supprimer utilisateur: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("utilisateur %s: %w", utilisateurID, commun.ErrIntrouvable)
		}
		return nil
	})
}
