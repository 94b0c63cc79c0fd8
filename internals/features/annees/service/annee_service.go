// file: internals/features/annees/service/annee_service.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	anneeModel "repartition_backend/internals/features/annees/model"
	"repartition_backend/internals/features/commun"
)

// AnneeService : registre des années scolaires. Au plus une année est
// "courante" ; c'est elle qui sert d'année implicite à toute l'application,
// mais les services du cœur la reçoivent toujours en argument explicite.
type AnneeService struct {
	DB *gorm.DB
}

func NewAnneeService(db *gorm.DB) *AnneeService { return &AnneeService{DB: db} }

// Lister : toutes les années, triées par libellé décroissant (la plus
// récente d'abord).
func (s *AnneeService) Lister() ([]anneeModel.AnneeScolaireModel, error) {
	var annees []anneeModel.AnneeScolaireModel
	if err := s.DB.Order("annee_libelle DESC").Find(&annees).Error; err != nil {
		return nil, fmt.Errorf("lister annees: %w", err)
	}
	return annees, nil
}

// AnneeCourante : l'année active, ErrIntrouvable s'il n'y en a aucune.
func (s *AnneeService) AnneeCourante() (*anneeModel.AnneeScolaireModel, error) {
	var annee anneeModel.AnneeScolaireModel
	err := s.DB.Where("annee_est_courante = ?", true).First(&annee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("aucune année scolaire courante: %w", commun.ErrIntrouvable)
		}
		return nil, fmt.Errorf("annee courante: %w", err)
	}
	return &annee, nil
}

// ParID : détail d'une année.
func (s *AnneeService) ParID(anneeID uuid.UUID) (*anneeModel.AnneeScolaireModel, error) {
	var annee anneeModel.AnneeScolaireModel
	err := s.DB.Where("annee_id = ?", anneeID).First(&annee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("année %s: %w", anneeID, commun.ErrIntrouvable)
		}
		return nil, fmt.Errorf("annee par id: %w", err)
	}
	return &annee, nil
}

// Creer : nouvelle année. La toute première créée devient automatiquement
// courante (comportement repris de l'API d'administration d'origine).
func (s *AnneeService) Creer(libelle string) (*anneeModel.AnneeScolaireModel, error) {
	libelle = strings.TrimSpace(libelle)
	if libelle == "" {
		return nil, fmt.Errorf("libellé vide: %w", commun.ErrValidation)
	}

	annee := anneeModel.AnneeScolaireModel{AnneeLibelle: libelle}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&anneeModel.AnneeScolaireModel{}).
			Where("annee_libelle = ?", libelle).
			Count(&cnt).Error; err != nil {
			return fmt.Errorf("vérifier doublon annee: %w", err)
		}
		if cnt > 0 {
			return fmt.Errorf("l'année %q existe déjà: %w", libelle, commun.ErrDoublon)
		}

		var nbCourantes int64
		if err := tx.Model(&anneeModel.AnneeScolaireModel{}).
			Where("annee_est_courante = ?", true).
			Count(&nbCourantes).Error; err != nil {
			return fmt.Errorf("compter annees courantes: %w", err)
		}
		annee.AnneeEstCourante = nbCourantes == 0

		if err := tx.Create(&annee).Error; err != nil {
			return fmt.Errorf("créer annee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &annee, nil
}

// DefinirCourante : bascule l'année de travail. Une seule transaction :
// on éteint l'ancienne puis on allume la nouvelle, jamais d'état à deux
// années courantes visible.
func (s *AnneeService) DefinirCourante(anneeID uuid.UUID) (*anneeModel.AnneeScolaireModel, error) {
	var annee anneeModel.AnneeScolaireModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("annee_id = ?", anneeID).First(&annee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("année %s: %w", anneeID, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger annee: %w", err)
		}

		if err := tx.Model(&anneeModel.AnneeScolaireModel{}).
			Where("annee_est_courante = ?", true).
			Update("annee_est_courante", false).Error; err != nil {
			return fmt.Errorf("désactiver annee courante: %w", err)
		}
		if err := tx.Model(&anneeModel.AnneeScolaireModel{}).
			Where("annee_id = ?", anneeID).
			Update("annee_est_courante", true).Error; err != nil {
			return fmt.Errorf("activer annee: %w", err)
		}
		annee.AnneeEstCourante = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &annee, nil
}

// Supprimer : refuse tant que des enseignants ou des cours y sont rattachés.
func (s *AnneeService) Supprimer(anneeID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var annee anneeModel.AnneeScolaireModel
		if err := tx.Where("annee_id = ?", anneeID).First(&annee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("année %s: %w", anneeID, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger annee: %w", err)
		}

		var nb int64
		if err := tx.Table("enseignants").
			Where("enseignant_annee_id = ?", anneeID).
			Count(&nb).Error; err != nil {
			return fmt.Errorf("compter enseignants: %w", err)
		}
		if nb == 0 {
			if err := tx.Table("cours").
				Where("cours_annee_id = ?", anneeID).
				Count(&nb).Error; err != nil {
				return fmt.Errorf("compter cours: %w", err)
			}
		}
		if nb > 0 {
			return fmt.Errorf("l'année contient encore des données: %w", commun.ErrReferenceUtilisee)
		}

		if err := tx.Delete(&anneeModel.AnneeScolaireModel{}, "annee_id = ?", anneeID).Error; err != nil {
			return fmt.Errorf("supprimer annee: %w", err)
		}
		return nil
	})
}
