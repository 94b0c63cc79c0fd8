// file: internals/features/attributions/service/attribution_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attributionModel "repartition_backend/internals/features/attributions/model"
	champModel "repartition_backend/internals/features/champs/model"
	"repartition_backend/internals/features/commun"
	coursModel "repartition_backend/internals/features/cours/model"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

// AttributionService : prise et retrait de groupes. C'est ici que vivent
// les deux garde-fous : jamais plus de groupes que le quota initial du
// cours, et aucun mouvement pour un enseignant réel dont le champ est
// verrouillé.
type AttributionService struct {
	DB *gorm.DB
}

func NewAttributionService(db *gorm.DB) *AttributionService { return &AttributionService{DB: db} }

// ResultatAjout : ce que le front rafraîchit après une prise de groupe.
type ResultatAjout struct {
	AttributionID      uuid.UUID `json:"attribution_id"`
	EnseignantID       uuid.UUID `json:"enseignant_id"`
	CodeCours          string    `json:"code_cours"`
	AnneeID            uuid.UUID `json:"annee_id"`
	GroupesRestants    int       `json:"groupes_restants_cours"`
	PeriodesEnseignant float64   `json:"periodes_enseignant"`
}

// ResultatRetrait : identifiants libérés après un retrait.
type ResultatRetrait struct {
	EnseignantID    uuid.UUID `json:"enseignant_id"`
	CodeCours       string    `json:"code_cours"`
	AnneeID         uuid.UUID `json:"annee_id"`
	GroupesRestants int       `json:"groupes_restants_cours"`
}

// verrouillerCours : SELECT ... FOR UPDATE sur la ligne du cours, pour
// sérialiser les prises concurrentes sur le même quota. SQLite n'a pas
// cette syntaxe mais sérialise déjà ses écrivains.
func verrouillerCours(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// champEstVerrouille : statut absent = déverrouillé (défaut clairsemé).
func champEstVerrouille(tx *gorm.DB, champNo string, anneeID uuid.UUID) (bool, error) {
	var statut champModel.ChampAnneeStatutModel
	err := tx.
		Where("statut_champ_no = ? AND statut_annee_id = ?", champNo, anneeID).
		First(&statut).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("charger statut champ %s: %w", champNo, err)
	}
	return statut.StatutEstVerrouille, nil
}

func groupesPris(tx *gorm.DB, codeCours string, anneeID uuid.UUID) (int, error) {
	var pris int64
	err := tx.Table("attributions_cours").
		Where("attribution_code_cours = ? AND attribution_annee_cours = ?", codeCours, anneeID).
		Select("COALESCE(SUM(attribution_nb_groupes), 0)").
		Scan(&pris).Error
	if err != nil {
		return 0, fmt.Errorf("somme groupes pris: %w", err)
	}
	return int(pris), nil
}

func periodesEnseignant(tx *gorm.DB, enseignantID uuid.UUID) (float64, error) {
	var total float64
	err := tx.Table("attributions_cours ac").
		Joins(`JOIN cours c
			ON c.cours_code = ac.attribution_code_cours
			AND c.cours_annee_id = ac.attribution_annee_cours`).
		Where("ac.attribution_enseignant_id = ?", enseignantID).
		Select("COALESCE(SUM(ac.attribution_nb_groupes * c.cours_nb_periodes), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("somme périodes enseignant: %w", err)
	}
	return total, nil
}

// Ajouter : attribue UN groupe du cours à l'enseignant. Toujours un seul
// groupe par appel, comme le clic qui le déclenche.
//
// Ordre des vérifications dans la transaction :
//  1. enseignant existe
//  2. champ de l'enseignant déverrouillé (sauf fictif, jamais bloqué)
//  3. ligne du cours verrouillée (FOR UPDATE) puis quota recompté
//  4. insertion si au moins un groupe reste
func (s *AttributionService) Ajouter(enseignantID uuid.UUID, codeCours string, anneeID uuid.UUID) (*ResultatAjout, error) {
	var res ResultatAjout
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ens enseignantModel.EnseignantModel
		if err := tx.Where("enseignant_id = ?", enseignantID).First(&ens).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("enseignant %s: %w", enseignantID, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger enseignant: %w", err)
		}

		if !ens.EnseignantEstFictif {
			verrouille, err := champEstVerrouille(tx, ens.EnseignantChampNo, ens.EnseignantAnneeID)
			if err != nil {
				return err
			}
			if verrouille {
				return fmt.Errorf("champ %s: %w", ens.EnseignantChampNo, commun.ErrChampVerrouille)
			}
		}

		var cours coursModel.CoursModel
		if err := verrouillerCours(tx).
			Where("cours_code = ? AND cours_annee_id = ?", codeCours, anneeID).
			First(&cours).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cours %s: %w", codeCours, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger cours: %w", err)
		}

		pris, err := groupesPris(tx, codeCours, anneeID)
		if err != nil {
			return err
		}
		restant := cours.CoursNbGroupeInitial - pris
		if restant < 1 {
			return fmt.Errorf("cours %s: %w", codeCours, commun.ErrQuotaDepasse)
		}

		attribution := attributionModel.AttributionModel{
			AttributionEnseignantID: enseignantID,
			AttributionCodeCours:    codeCours,
			AttributionAnneeCours:   anneeID,
			AttributionNbGroupes:    1,
		}
		if err := tx.Create(&attribution).Error; err != nil {
			return fmt.Errorf("créer attribution: %w", err)
		}

		periodes, err := periodesEnseignant(tx, enseignantID)
		if err != nil {
			return err
		}

		res = ResultatAjout{
			AttributionID:      attribution.AttributionID,
			EnseignantID:       enseignantID,
			CodeCours:          codeCours,
			AnneeID:            anneeID,
			GroupesRestants:    restant - 1,
			PeriodesEnseignant: periodes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Supprimer : retire une attribution. Même barrière de verrou qu'à
// l'ajout (un champ verrouillé fige les choix dans les deux sens), même
// exemption pour les fictifs. Un second clic sur la même ligne tombe en
// ErrIntrouvable : le retrait n'est pas idempotent, il est signalé.
func (s *AttributionService) Supprimer(attributionID uuid.UUID) (*ResultatRetrait, error) {
	var res ResultatRetrait
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var attribution attributionModel.AttributionModel
		if err := tx.Where("attribution_id = ?", attributionID).First(&attribution).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("attribution %s: %w", attributionID, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger attribution: %w", err)
		}

		var ens enseignantModel.EnseignantModel
		if err := tx.Where("enseignant_id = ?", attribution.AttributionEnseignantID).
			First(&ens).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("enseignant %s: %w", attribution.AttributionEnseignantID, commun.ErrIntrouvable)
			}
			return fmt.Errorf("charger enseignant: %w", err)
		}

		if !ens.EnseignantEstFictif {
			verrouille, err := champEstVerrouille(tx, ens.EnseignantChampNo, ens.EnseignantAnneeID)
			if err != nil {
				return err
			}
			if verrouille {
				return fmt.Errorf("champ %s: %w", ens.EnseignantChampNo, commun.ErrChampVerrouille)
			}
		}

		if err := tx.Where("attribution_id = ?", attributionID).
			Delete(&attributionModel.AttributionModel{}).Error; err != nil {
			return fmt.Errorf("supprimer attribution: %w", err)
		}

		var cours coursModel.CoursModel
		if err := tx.
			Where("cours_code = ? AND cours_annee_id = ?",
				attribution.AttributionCodeCours, attribution.AttributionAnneeCours).
			First(&cours).Error; err != nil {
			return fmt.Errorf("charger cours: %w", err)
		}
		pris, err := groupesPris(tx, attribution.AttributionCodeCours, attribution.AttributionAnneeCours)
		if err != nil {
			return err
		}
		restant := cours.CoursNbGroupeInitial - pris
		if restant < 0 {
			restant = 0
		}

		res = ResultatRetrait{
			EnseignantID:    attribution.AttributionEnseignantID,
			CodeCours:       attribution.AttributionCodeCours,
			AnneeID:         attribution.AttributionAnneeCours,
			GroupesRestants: restant,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ParID : une attribution seule, pour les contrôles d'accès.
func (s *AttributionService) ParID(attributionID uuid.UUID) (*attributionModel.AttributionModel, error) {
	var attribution attributionModel.AttributionModel
	err := s.DB.Where("attribution_id = ?", attributionID).First(&attribution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attribution %s: %w", attributionID, commun.ErrIntrouvable)
		}
		return nil, fmt.Errorf("charger attribution: %w", err)
	}
	return &attribution, nil
}

// ParEnseignant : attributions d'un enseignant avec le cours préchargé.
func (s *AttributionService) ParEnseignant(enseignantID uuid.UUID) ([]attributionModel.AttributionModel, error) {
	var liste []attributionModel.AttributionModel
	err := s.DB.
		Preload("Cours").
		Where("attribution_enseignant_id = ?", enseignantID).
		Order("attribution_created_at").
		Find(&liste).Error
	if err != nil {
		return nil, fmt.Errorf("attributions par enseignant: %w", err)
	}
	return liste, nil
}

// PeriodesEnseignant : Σ (nb_groupes × périodes du cours).
func (s *AttributionService) PeriodesEnseignant(enseignantID uuid.UUID) (float64, error) {
	return periodesEnseignant(s.DB, enseignantID)
}
