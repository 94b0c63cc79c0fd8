// file: internals/features/preparation/service/preparation_service.go
package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/commun"
	preparationModel "repartition_backend/internals/features/preparation/model"
)

// PreparationService : la grille de préparation d'horaire. Modèle
// d'écriture volontairement simple : chaque sauvegarde remplace la grille
// entière de l'année, l'état de référence vit dans le front.
type PreparationService struct {
	DB *gorm.DB
}

func NewPreparationService(db *gorm.DB) *PreparationService { return &PreparationService{DB: db} }

// CelluleHoraire : une case posée dans la grille.
type CelluleHoraire struct {
	NiveauSecondaire int        `json:"niveau_secondaire" validate:"gte=1,lte=5"`
	CodeCours        string     `json:"code_cours" validate:"required"`
	AnneeCours       uuid.UUID  `json:"annee_cours" validate:"required"`
	EnseignantID     *uuid.UUID `json:"enseignant_id,omitempty"`
	Colonne          string     `json:"colonne" validate:"required"`
}

// Donnees : la grille complète d'une année, triée niveau puis colonne.
func (s *PreparationService) Donnees(anneeID uuid.UUID) ([]preparationModel.PreparationHoraireModel, error) {
	var lignes []preparationModel.PreparationHoraireModel
	err := s.DB.
		Where("preparation_annee_id = ?", anneeID).
		Order("preparation_niveau_secondaire, preparation_colonne, preparation_code_cours").
		Find(&lignes).Error
	if err != nil {
		return nil, fmt.Errorf("charger grille: %w", err)
	}
	return lignes, nil
}

// Sauvegarder : remplacement complet (delete puis insert) dans une
// transaction. Les cellules sans code de cours ou sans colonne sont
// rejetées en bloc plutôt qu'ignorées : une grille à moitié valide est
// une erreur du front.
func (s *PreparationService) Sauvegarder(anneeID uuid.UUID, cellules []CelluleHoraire) (int, error) {
	for i, c := range cellules {
		if strings.TrimSpace(c.CodeCours) == "" || strings.TrimSpace(c.Colonne) == "" {
			return 0, fmt.Errorf("cellule %d incomplète: %w", i, commun.ErrValidation)
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("preparation_annee_id = ?", anneeID).
			Delete(&preparationModel.PreparationHoraireModel{}).Error; err != nil {
			return fmt.Errorf("vider grille: %w", err)
		}
		for _, c := range cellules {
			ligne := preparationModel.PreparationHoraireModel{
				PreparationAnneeID:          anneeID,
				PreparationNiveauSecondaire: c.NiveauSecondaire,
				PreparationCodeCours:        strings.TrimSpace(c.CodeCours),
				PreparationAnneeCours:       c.AnneeCours,
				PreparationEnseignantID:     c.EnseignantID,
				PreparationColonne:          strings.TrimSpace(c.Colonne),
			}
			if err := tx.Create(&ligne).Error; err != nil {
				return fmt.Errorf("insérer cellule %s: %w", ligne.PreparationCodeCours, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(cellules), nil
}
