// file: internals/features/importation/service/importation_service.go
package service

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	anneeModel "repartition_backend/internals/features/annees/model"
	attributionModel "repartition_backend/internals/features/attributions/model"
	"repartition_backend/internals/features/commun"
	coursModel "repartition_backend/internals/features/cours/model"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

// ImportationService : remplacement en bloc des données d'une année.
// L'importation jette TOUT ce que l'année contient (attributions comprises)
// puis réinsère ; la moitié d'une importation ratée ne doit jamais rester
// en base, d'où la transaction unique.
type ImportationService struct {
	DB *gorm.DB
}

func NewImportationService(db *gorm.DB) *ImportationService { return &ImportationService{DB: db} }

// LigneCoursImport : un cours du fichier source.
type LigneCoursImport struct {
	CodeCours       string  `json:"code_cours" validate:"required"`
	ChampNo         string  `json:"champ_no" validate:"required"`
	Descriptif      string  `json:"descriptif" validate:"required"`
	NbPeriodes      float64 `json:"nb_periodes" validate:"gte=0"`
	NbGroupeInitial int     `json:"nb_groupe_initial" validate:"gte=0"`
	EstAutre        bool    `json:"est_autre"`
	FinancementCode *string `json:"financement_code,omitempty"`
}

// LigneEnseignantImport : un enseignant du fichier source.
type LigneEnseignantImport struct {
	ChampNo       string `json:"champ_no" validate:"required"`
	Nom           string `json:"nom" validate:"required"`
	Prenom        string `json:"prenom" validate:"required"`
	EstTempsPlein bool   `json:"est_temps_plein"`
}

// ImportationStats : le bilan renvoyé au front et figé dans annee_stats.
type ImportationStats struct {
	CoursImportes        int       `json:"cours_importes"`
	EnseignantsImportes  int       `json:"enseignants_importes"`
	AttributionsEffacees int       `json:"attributions_effacees"`
	LignesIgnorees       int       `json:"lignes_ignorees"`
	ImporteLe            time.Time `json:"importe_le"`
}

// ImporterCours : remplace les cours de l'année. Les attributions de
// l'année sautent d'abord (elles référencent les cours remplacés).
func (s *ImportationService) ImporterCours(anneeID uuid.UUID, lignes []LigneCoursImport) (*ImportationStats, error) {
	stats := &ImportationStats{ImporteLe: time.Now().UTC()}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := verifierAnnee(tx, anneeID); err != nil {
			return err
		}

		res := tx.Where("attribution_annee_cours = ?", anneeID).
			Delete(&attributionModel.AttributionModel{})
		if res.Error != nil {
			return fmt.Errorf("vider attributions: %w", res.Error)
		}
		stats.AttributionsEffacees = int(res.RowsAffected)

		if err := tx.Where("cours_annee_id = ?", anneeID).
			Delete(&coursModel.CoursModel{}).Error; err != nil {
			return fmt.Errorf("vider cours: %w", err)
		}

		vus := make(map[string]bool, len(lignes))
		for _, ligne := range lignes {
			code := strings.TrimSpace(ligne.CodeCours)
			if code == "" || strings.TrimSpace(ligne.ChampNo) == "" || vus[code] {
				stats.LignesIgnorees++
				continue
			}
			vus[code] = true

			cours := coursModel.CoursModel{
				CoursCode:            code,
				CoursAnneeID:         anneeID,
				CoursChampNo:         strings.TrimSpace(ligne.ChampNo),
				CoursDescriptif:      strings.TrimSpace(ligne.Descriptif),
				CoursNbPeriodes:      ligne.NbPeriodes,
				CoursNbGroupeInitial: ligne.NbGroupeInitial,
				CoursEstAutre:        ligne.EstAutre,
				CoursFinancementCode: ligne.FinancementCode,
			}
			if err := tx.Create(&cours).Error; err != nil {
				return fmt.Errorf("importer cours %s: %w", code, err)
			}
			stats.CoursImportes++
		}

		return rafraichirStats(tx, anneeID, stats)
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ImporterEnseignants : remplace les enseignants RÉELS de l'année. Les
// fictifs survivent : ils représentent des tâches à pourvoir, pas des
// personnes du fichier source. Leurs attributions à eux restent aussi.
func (s *ImportationService) ImporterEnseignants(anneeID uuid.UUID, lignes []LigneEnseignantImport) (*ImportationStats, error) {
	stats := &ImportationStats{ImporteLe: time.Now().UTC()}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := verifierAnnee(tx, anneeID); err != nil {
			return err
		}

		var reels []uuid.UUID
		if err := tx.Model(&enseignantModel.EnseignantModel{}).
			Where("enseignant_annee_id = ? AND enseignant_est_fictif = ?", anneeID, false).
			Pluck("enseignant_id", &reels).Error; err != nil {
			return fmt.Errorf("lister enseignants réels: %w", err)
		}

		if len(reels) > 0 {
			res := tx.Where("attribution_enseignant_id IN ?", reels).
				Delete(&attributionModel.AttributionModel{})
			if res.Error != nil {
				return fmt.Errorf("vider attributions: %w", res.Error)
			}
			stats.AttributionsEffacees = int(res.RowsAffected)

			if err := tx.Where("enseignant_id IN ?", reels).
				Delete(&enseignantModel.EnseignantModel{}).Error; err != nil {
				return fmt.Errorf("vider enseignants: %w", err)
			}
		}

		vus := make(map[string]bool, len(lignes))
		for _, ligne := range lignes {
			nom := strings.TrimSpace(ligne.Nom)
			prenom := strings.TrimSpace(ligne.Prenom)
			if nom == "" || prenom == "" || strings.TrimSpace(ligne.ChampNo) == "" {
				stats.LignesIgnorees++
				continue
			}
			nomComplet := nom + ", " + prenom
			if vus[nomComplet] {
				stats.LignesIgnorees++
				continue
			}
			vus[nomComplet] = true

			ens := enseignantModel.EnseignantModel{
				EnseignantAnneeID:       anneeID,
				EnseignantChampNo:       strings.TrimSpace(ligne.ChampNo),
				EnseignantNomComplet:    nomComplet,
				EnseignantNom:           &nom,
				EnseignantPrenom:        &prenom,
				EnseignantEstTempsPlein: ligne.EstTempsPlein,
			}
			if err := tx.Create(&ens).Error; err != nil {
				return fmt.Errorf("importer enseignant %q: %w", nomComplet, err)
			}
			stats.EnseignantsImportes++
		}

		return rafraichirStats(tx, anneeID, stats)
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func verifierAnnee(tx *gorm.DB, anneeID uuid.UUID) error {
	var cnt int64
	if err := tx.Model(&anneeModel.AnneeScolaireModel{}).
		Where("annee_id = ?", anneeID).Count(&cnt).Error; err != nil {
		return fmt.Errorf("vérifier année: %w", err)
	}
	if cnt == 0 {
		return fmt.Errorf("année %s: %w", anneeID, commun.ErrIntrouvable)
	}
	return nil
}

// rafraichirStats : fige le bilan courant de l'année dans annee_stats.
func rafraichirStats(tx *gorm.DB, anneeID uuid.UUID, derniere *ImportationStats) error {
	var nbCours, nbEnseignants, nbAttributions int64
	if err := tx.Model(&coursModel.CoursModel{}).
		Where("cours_annee_id = ?", anneeID).Count(&nbCours).Error; err != nil {
		return fmt.Errorf("compter cours: %w", err)
	}
	if err := tx.Model(&enseignantModel.EnseignantModel{}).
		Where("enseignant_annee_id = ?", anneeID).Count(&nbEnseignants).Error; err != nil {
		return fmt.Errorf("compter enseignants: %w", err)
	}
	if err := tx.Model(&attributionModel.AttributionModel{}).
		Where("attribution_annee_cours = ?", anneeID).Count(&nbAttributions).Error; err != nil {
		return fmt.Errorf("compter attributions: %w", err)
	}

	doc, err := json.Marshal(map[string]interface{}{
		"nb_cours":             nbCours,
		"nb_enseignants":       nbEnseignants,
		"nb_attributions":      nbAttributions,
		"derniere_importation": derniere,
	})
	if err != nil {
		return fmt.Errorf("encoder stats: %w", err)
	}

	return tx.Model(&anneeModel.AnneeScolaireModel{}).
		Where("annee_id = ?", anneeID).
		Update("annee_stats", datatypes.JSON(doc)).Error
}
