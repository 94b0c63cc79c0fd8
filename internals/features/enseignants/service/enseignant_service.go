// file: internals/features/enseignants/service/enseignant_service.go
package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attributionModel "repartition_backend/internals/features/attributions/model"
	"repartition_backend/internals/features/commun"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

type EnseignantService struct {
	DB *gorm.DB
}

func NewEnseignantService(db *gorm.DB) *EnseignantService { return &EnseignantService{DB: db} }

// CoursLibere : cours dont des groupes ont été libérés par la suppression
// d'un enseignant. Le front rafraîchit ces cours un à un.
type CoursLibere struct {
	CodeCours string    `json:"code_cours"`
	AnneeID   uuid.UUID `json:"annee_id"`
	NbGroupes int       `json:"nb_groupes"`
}

func (s *EnseignantService) ParID(enseignantID uuid.UUID) (*enseignantModel.EnseignantModel, error) {
	var ens enseignantModel.EnseignantModel
	err := s.DB.Where("enseignant_id = ?", enseignantID).First(&ens).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enseignant %s: %w", enseignantID, commun.ErrIntrouvable)
		}
		return nil, fmt.Errorf("charger enseignant: %w", err)
	}
	return &ens, nil
}

// ParChamp : réels d'abord (ordre alphabétique), puis les fictifs par
// numéro de tâche. C'est l'ordre d'affichage de la page de champ.
func (s *EnseignantService) ParChamp(champNo string, anneeID uuid.UUID) ([]enseignantModel.EnseignantModel, error) {
	var liste []enseignantModel.EnseignantModel
	err := s.DB.
		Where("enseignant_champ_no = ? AND enseignant_annee_id = ?", champNo, anneeID).
		Order("enseignant_est_fictif, enseignant_nom_complet").
		Find(&liste).Error
	if err != nil {
		return nil, fmt.Errorf("enseignants par champ %s: %w", champNo, err)
	}
	return liste, nil
}

type DonneesEnseignant struct {
	ChampNo              string
	Nom                  string
	Prenom               string
	EstTempsPlein        bool
	PeutChoisirHorsChamp bool
}

// Creer : nom complet "Nom, Prénom", ErrDoublon si déjà présent dans l'année.
func (s *EnseignantService) Creer(anneeID uuid.UUID, d DonneesEnseignant) (*enseignantModel.EnseignantModel, error) {
	d.ChampNo = strings.TrimSpace(d.ChampNo)
	d.Nom = strings.TrimSpace(d.Nom)
	d.Prenom = strings.TrimSpace(d.Prenom)
	if d.ChampNo == "" || d.Nom == "" || d.Prenom == "" {
		return nil, fmt.Errorf("champ, nom et prénom requis: %w", commun.ErrValidation)
	}

	nomComplet := d.Nom + ", " + d.Prenom
	ens := enseignantModel.EnseignantModel{
		EnseignantAnneeID:              anneeID,
		EnseignantChampNo:              d.ChampNo,
		EnseignantNomComplet:           nomComplet,
		EnseignantNom:                  &d.Nom,
		EnseignantPrenom:               &d.Prenom,
		EnseignantEstTempsPlein:        d.EstTempsPlein,
		EnseignantPeutChoisirHorsChamp: d.PeutChoisirHorsChamp,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&enseignantModel.EnseignantModel{}).
			Where("enseignant_annee_id = ? AND enseignant_nom_complet = ?", anneeID, nomComplet).
			Count(&cnt).Error; err != nil {
			return fmt.Errorf("vérifier doublon enseignant: %w", err)
		}
		if cnt > 0 {
			return fmt.Errorf("%q existe déjà pour cette année: %w", nomComplet, commun.ErrDoublon)
		}
		if err := tx.Create(&ens).Error; err != nil {
			return fmt.Errorf("créer enseignant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ens, nil
}

// MettreAJour : le couple (année, fictif) est figé ; le reste se modifie.
func (s *EnseignantService) MettreAJour(enseignantID uuid.UUID, d DonneesEnseignant) (*enseignantModel.EnseignantModel, error) {
	d.ChampNo = strings.TrimSpace(d.ChampNo)
	d.Nom = strings.TrimSpace(d.Nom)
	d.Prenom = strings.TrimSpace(d.Prenom)
	if d.ChampNo == "" || d.Nom == "" || d.Prenom == "" {
		return nil, fmt.Errorf("champ, nom et prénom requis: %w", commun.ErrValidation)
	}

	var ens enseignantModel.EnseignantModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enseignant_id = ?", enseignantID).First(&ens).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("enseignant %s: %w", enseignantID, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger enseignant: %w", err)
		}
		if ens.EnseignantEstFictif {
			return fmt.Errorf("une tâche restante ne se renomme pas: %w", commun.ErrValidation)
		}

		nomComplet := d.Nom + ", " + d.Prenom
		var cnt int64
		if err := tx.Model(&enseignantModel.EnseignantModel{}).
			Where("enseignant_annee_id = ? AND enseignant_nom_complet = ? AND enseignant_id <> ?",
				ens.EnseignantAnneeID, nomComplet, enseignantID).
			Count(&cnt).Error; err != nil {
			return fmt.Errorf("vérifier doublon enseignant: %w", err)
		}
		if cnt > 0 {
			return fmt.Errorf("%q existe déjà pour cette année: %w", nomComplet, commun.ErrDoublon)
		}

		if err := tx.Model(&enseignantModel.EnseignantModel{}).
			Where("enseignant_id = ?", enseignantID).
			Updates(map[string]interface{}{
				"enseignant_champ_no":                d.ChampNo,
				"enseignant_nom_complet":             nomComplet,
				"enseignant_nom":                     d.Nom,
				"enseignant_prenom":                  d.Prenom,
				"enseignant_est_temps_plein":         d.EstTempsPlein,
				"enseignant_peut_choisir_hors_champ": d.PeutChoisirHorsChamp,
			}).Error; err != nil {
			return fmt.Errorf("mettre à jour enseignant: %w", err)
		}

		ens.EnseignantChampNo = d.ChampNo
		ens.EnseignantNomComplet = nomComplet
		ens.EnseignantNom = &d.Nom
		ens.EnseignantPrenom = &d.Prenom
		ens.EnseignantEstTempsPlein = d.EstTempsPlein
		ens.EnseignantPeutChoisirHorsChamp = d.PeutChoisirHorsChamp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ens, nil
}

// Supprimer : cascade explicite. On efface d'abord les attributions (en
// notant les cours libérés) puis l'enseignant lui-même. Aucune barrière
// de verrou ici : la suppression d'un enseignant est un geste
// d'administration, pas un choix de tâche.
func (s *EnseignantService) Supprimer(enseignantID uuid.UUID) ([]CoursLibere, error) {
	var liberes []CoursLibere
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ens enseignantModel.EnseignantModel
		if err := tx.Where("enseignant_id = ?", enseignantID).First(&ens).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("enseignant %s: %w", enseignantID, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger enseignant: %w", err)
		}

		if err := tx.Table("attributions_cours").
			Select(`attribution_code_cours AS code_cours,
				attribution_annee_cours AS annee_id,
				SUM(attribution_nb_groupes) AS nb_groupes`).
			Where("attribution_enseignant_id = ?", enseignantID).
			Group("attribution_code_cours, attribution_annee_cours").
			Scan(&liberes).Error; err != nil {
			return fmt.Errorf("lister cours libérés: %w", err)
		}

		if err := tx.Where("attribution_enseignant_id = ?", enseignantID).
			Delete(&attributionModel.AttributionModel{}).Error; err != nil {
			return fmt.Errorf("supprimer attributions: %w", err)
		}
		if err := tx.Where("enseignant_id = ?", enseignantID).
			Delete(&enseignantModel.EnseignantModel{}).Error; err != nil {
			return fmt.Errorf("supprimer enseignant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return liberes, nil
}

const suffixeTacheRestante = "-Tâche restante-"

// CreerTacheRestante : enseignant fictif "{champ}-Tâche restante-{n}".
// n = max des suffixes existants + 1, sans réutiliser les trous : si la
// tâche 2 a été supprimée, la suivante est quand même 4, pour que les
// fictifs encore affichés gardent un nom stable.
func (s *EnseignantService) CreerTacheRestante(champNo string, anneeID uuid.UUID) (*enseignantModel.EnseignantModel, error) {
	champNo = strings.TrimSpace(champNo)
	if champNo == "" {
		return nil, fmt.Errorf("champ requis: %w", commun.ErrValidation)
	}

	var ens enseignantModel.EnseignantModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var noms []string
		if err := tx.Model(&enseignantModel.EnseignantModel{}).
			Where("enseignant_annee_id = ? AND enseignant_champ_no = ? AND enseignant_est_fictif = ?",
				anneeID, champNo, true).
			Pluck("enseignant_nom_complet", &noms).Error; err != nil {
			return fmt.Errorf("lister tâches restantes: %w", err)
		}

		prefixe := champNo + suffixeTacheRestante
		max := 0
		for _, nom := range noms {
			if !strings.HasPrefix(nom, prefixe) {
				continue
			}
			n, err := strconv.Atoi(nom[len(prefixe):])
			if err != nil {
				continue
			}
			if n > max {
				max = n
			}
		}

		ens = enseignantModel.EnseignantModel{
			EnseignantAnneeID:       anneeID,
			EnseignantChampNo:       champNo,
			EnseignantNomComplet:    prefixe + strconv.Itoa(max+1),
			EnseignantEstTempsPlein: false,
			EnseignantEstFictif:     true,
		}
		if err := tx.Create(&ens).Error; err != nil {
			return fmt.Errorf("créer tâche restante: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ens, nil
}
