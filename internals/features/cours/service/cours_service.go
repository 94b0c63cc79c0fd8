// file: internals/features/cours/service/cours_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/commun"
	coursModel "repartition_backend/internals/features/cours/model"
)

// CoursService : catalogue des cours (quota de groupes inclus).
type CoursService struct {
	DB *gorm.DB
}

func NewCoursService(db *gorm.DB) *CoursService { return &CoursService{DB: db} }

// CoursAvecRestant : un cours + ses groupes restants (vue page de champ).
type CoursAvecRestant struct {
	coursModel.CoursModel
	GroupesRestants int `json:"groupes_restants"`
}

// Details : ErrIntrouvable si (code, année) n'existe pas.
func (s *CoursService) Details(codeCours string, anneeID uuid.UUID) (*coursModel.CoursModel, error) {
	var cours coursModel.CoursModel
	err := s.DB.
		Where("cours_code = ? AND cours_annee_id = ?", codeCours, anneeID).
		First(&cours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cours %s: %w", codeCours, commun.ErrIntrouvable)
		}
		return nil, fmt.Errorf("charger cours %s: %w", codeCours, err)
	}
	return &cours, nil
}

// GroupesRestants : nb_groupe_initial − Σ nb_groupes pris (toutes
// attributions confondues, fictifs inclus). Le calcul plancher à zéro ne
// s'applique qu'à l'affichage ; le garde-fou du registre d'attributions,
// lui, rejette au lieu d'écrêter.
func (s *CoursService) GroupesRestants(codeCours string, anneeID uuid.UUID) (int, error) {
	cours, err := s.Details(codeCours, anneeID)
	if err != nil {
		return 0, err
	}

	var pris int64
	if err := s.DB.Table("attributions_cours").
		Where("attribution_code_cours = ? AND attribution_annee_cours = ?", codeCours, anneeID).
		Select("COALESCE(SUM(attribution_nb_groupes), 0)").
		Scan(&pris).Error; err != nil {
		return 0, fmt.Errorf("somme groupes pris %s: %w", codeCours, err)
	}

	restant := cours.CoursNbGroupeInitial - int(pris)
	if restant < 0 {
		restant = 0
	}
	return restant, nil
}

// ParChamp : les cours d'un champ avec groupes restants, "cours autres"
// après les cours réguliers comme dans la page d'origine.
func (s *CoursService) ParChamp(champNo string, anneeID uuid.UUID) ([]CoursAvecRestant, error) {
	var lignes []CoursAvecRestant
	err := s.DB.Table("cours").
		Select(`cours.*,
			(cours.cours_nb_groupe_initial - COALESCE(SUM(ac.attribution_nb_groupes), 0)) AS groupes_restants`).
		Joins(`LEFT JOIN attributions_cours ac
			ON ac.attribution_code_cours = cours.cours_code
			AND ac.attribution_annee_cours = cours.cours_annee_id`).
		Where("cours.cours_champ_no = ? AND cours.cours_annee_id = ?", champNo, anneeID).
		Group("cours.cours_code, cours.cours_annee_id").
		Order("cours.cours_est_autre, cours.cours_code").
		Scan(&lignes).Error
	if err != nil {
		return nil, fmt.Errorf("cours par champ %s: %w", champNo, err)
	}
	for i := range lignes {
		if lignes[i].GroupesRestants < 0 {
			lignes[i].GroupesRestants = 0
		}
	}
	return lignes, nil
}

// DonneesCreation : champs modifiables d'un cours (le couple code/année est
// figé après création ; on supprime et on recrée pour le changer).
type DonneesCours struct {
	ChampNo         string
	Descriptif      string
	NbPeriodes      float64
	NbGroupeInitial int
	EstAutre        bool
	FinancementCode *string
}

func (d *DonneesCours) valider() error {
	d.ChampNo = strings.TrimSpace(d.ChampNo)
	d.Descriptif = strings.TrimSpace(d.Descriptif)
	if d.ChampNo == "" || d.Descriptif == "" {
		return fmt.Errorf("champ et descriptif requis: %w", commun.ErrValidation)
	}
	if d.NbPeriodes < 0 || d.NbGroupeInitial < 0 {
		return fmt.Errorf("périodes et groupes doivent être ≥ 0: %w", commun.ErrValidation)
	}
	return nil
}

// Creer : ErrDoublon si (code, année) existe déjà.
func (s *CoursService) Creer(codeCours string, anneeID uuid.UUID, d DonneesCours) (*coursModel.CoursModel, error) {
	codeCours = strings.TrimSpace(codeCours)
	if codeCours == "" {
		return nil, fmt.Errorf("code de cours requis: %w", commun.ErrValidation)
	}
	if err := d.valider(); err != nil {
		return nil, err
	}

	cours := coursModel.CoursModel{
		CoursCode:            codeCours,
		CoursAnneeID:         anneeID,
		CoursChampNo:         d.ChampNo,
		CoursDescriptif:      d.Descriptif,
		CoursNbPeriodes:      d.NbPeriodes,
		CoursNbGroupeInitial: d.NbGroupeInitial,
		CoursEstAutre:        d.EstAutre,
		CoursFinancementCode: d.FinancementCode,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&coursModel.CoursModel{}).
			Where("cours_code = ? AND cours_annee_id = ?", codeCours, anneeID).
			Count(&cnt).Error; err != nil {
			return fmt.Errorf("vérifier doublon cours: %w", err)
		}
		if cnt > 0 {
			return fmt.Errorf("le cours %q existe déjà pour cette année: %w", codeCours, commun.ErrDoublon)
		}
		if err := tx.Create(&cours).Error; err != nil {
			return fmt.Errorf("créer cours: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cours, nil
}

// MettreAJour : tout sauf (code, année).
func (s *CoursService) MettreAJour(codeCours string, anneeID uuid.UUID, d DonneesCours) (*coursModel.CoursModel, error) {
	if err := d.valider(); err != nil {
		return nil, err
	}

	var cours coursModel.CoursModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("cours_code = ? AND cours_annee_id = ?", codeCours, anneeID).
			First(&cours).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cours %s: %w", codeCours, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger cours: %w", err)
		}

		if err := tx.Model(&coursModel.CoursModel{}).
			Where("cours_code = ? AND cours_annee_id = ?", codeCours, anneeID).
			Updates(map[string]interface{}{
				"cours_champ_no":          d.ChampNo,
				"cours_descriptif":        d.Descriptif,
				"cours_nb_periodes":       d.NbPeriodes,
				"cours_nb_groupe_initial": d.NbGroupeInitial,
				"cours_est_autre":         d.EstAutre,
				"cours_financement_code":  d.FinancementCode,
			}).Error; err != nil {
			return fmt.Errorf("mettre à jour cours: %w", err)
		}

		cours.CoursChampNo = d.ChampNo
		cours.CoursDescriptif = d.Descriptif
		cours.CoursNbPeriodes = d.NbPeriodes
		cours.CoursNbGroupeInitial = d.NbGroupeInitial
		cours.CoursEstAutre = d.EstAutre
		cours.CoursFinancementCode = d.FinancementCode
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cours, nil
}

// Supprimer : jamais de cascade côté cours, ErrReferenceUtilisee tant
// qu'une attribution pointe dessus.
func (s *CoursService) Supprimer(codeCours string, anneeID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cours coursModel.CoursModel
		if err := tx.
			Where("cours_code = ? AND cours_annee_id = ?", codeCours, anneeID).
			First(&cours).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cours %s: %w", codeCours, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger cours: %w", err)
		}

		var nb int64
		if err := tx.Table("attributions_cours").
			Where("attribution_code_cours = ? AND attribution_annee_cours = ?", codeCours, anneeID).
			Count(&nb).Error; err != nil {
			return fmt.Errorf("compter attributions: %w", err)
		}
		if nb > 0 {
			return fmt.Errorf("le cours %s est attribué à %d enseignant(s): %w", codeCours, nb, commun.ErrReferenceUtilisee)
		}

		if err := tx.Delete(&coursModel.CoursModel{},
			"cours_code = ? AND cours_annee_id = ?", codeCours, anneeID).Error; err != nil {
			return fmt.Errorf("supprimer cours: %w", err)
		}
		return nil
	})
}

// ReassignerChamp : déplace un cours vers un autre champ (administration).
func (s *CoursService) ReassignerChamp(codeCours string, anneeID uuid.UUID, nouveauChampNo string) error {
	nouveauChampNo = strings.TrimSpace(nouveauChampNo)
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Table("champs").Where("champ_no = ?", nouveauChampNo).Count(&cnt).Error; err != nil {
			return fmt.Errorf("vérifier champ: %w", err)
		}
		if cnt == 0 {
			return fmt.Errorf("champ %s: %w", nouveauChampNo, commun.ErrIntrouvable)
		}

		res := tx.Model(&coursModel.CoursModel{}).
			Where("cours_code = ? AND cours_annee_id = ?", codeCours, anneeID).
			Update("cours_champ_no", nouveauChampNo)
		if res.Error != nil {
			return fmt.Errorf("réassigner cours: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("cours %s: %w", codeCours, commun.ErrIntrouvable)
		}
		return nil
	})
}
