// file: internals/features/champs/service/statut_service.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	champModel "repartition_backend/internals/features/champs/model"
	"repartition_backend/internals/features/commun"
)

// StatutService : verrouillage / confirmation d'un champ PAR année.
// La ligne de statut est créée à la volée au premier toggle (défaut creux :
// absent = non verrouillé, non confirmé).
type StatutService struct {
	DB *gorm.DB
}

func NewStatutService(db *gorm.DB) *StatutService { return &StatutService{DB: db} }

// Statut : (verrouillé, confirmé). Jamais d'ErrIntrouvable : une ligne
// absente vaut (false, false).
func (s *StatutService) Statut(champNo string, anneeID uuid.UUID) (bool, bool, error) {
	var statut champModel.ChampAnneeStatutModel
	err := s.DB.
		Where("statut_champ_no = ? AND statut_annee_id = ?", champNo, anneeID).
		First(&statut).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("statut champ %s: %w", champNo, err)
	}
	return statut.StatutEstVerrouille, statut.StatutEstConfirme, nil
}

// EstVerrouille : raccourci utilisé par le registre d'attributions.
func (s *StatutService) EstVerrouille(champNo string, anneeID uuid.UUID) (bool, error) {
	verrou, _, err := s.Statut(champNo, anneeID)
	return verrou, err
}

// StatutsPourAnnee : map champ_no → statut, seulement les lignes existantes
// (le sommaire complète les absents avec le défaut creux).
func (s *StatutService) StatutsPourAnnee(anneeID uuid.UUID) (map[string]champModel.ChampAnneeStatutModel, error) {
	var lignes []champModel.ChampAnneeStatutModel
	if err := s.DB.Where("statut_annee_id = ?", anneeID).Find(&lignes).Error; err != nil {
		return nil, fmt.Errorf("statuts annee %s: %w", anneeID, err)
	}
	out := make(map[string]champModel.ChampAnneeStatutModel, len(lignes))
	for _, l := range lignes {
		out[l.StatutChampNo] = l
	}
	return out, nil
}

// BasculerVerrou : flip du booléen, création de la ligne à true si absente.
// Retourne la nouvelle valeur. Seule une panne de stockage est une erreur.
func (s *StatutService) BasculerVerrou(champNo string, anneeID uuid.UUID) (bool, error) {
	return s.basculer(champNo, anneeID, "statut_est_verrouille")
}

// BasculerConfirmation : idem pour la confirmation, indépendante du verrou.
func (s *StatutService) BasculerConfirmation(champNo string, anneeID uuid.UUID) (bool, error) {
	return s.basculer(champNo, anneeID, "statut_est_confirme")
}

func (s *StatutService) basculer(champNo string, anneeID uuid.UUID, colonne string) (bool, error) {
	var nouveau bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var statut champModel.ChampAnneeStatutModel
		err := tx.
			Where("statut_champ_no = ? AND statut_annee_id = ?", champNo, anneeID).
			First(&statut).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			statut = champModel.ChampAnneeStatutModel{
				StatutChampNo: champNo,
				StatutAnneeID: anneeID,
			}
			switch colonne {
			case "statut_est_verrouille":
				statut.StatutEstVerrouille = true
			case "statut_est_confirme":
				statut.StatutEstConfirme = true
			}
			if err := tx.Create(&statut).Error; err != nil {
				return fmt.Errorf("créer statut %s: %w", champNo, err)
			}
		case err != nil:
			return fmt.Errorf("charger statut %s: %w", champNo, err)
		default:
			switch colonne {
			case "statut_est_verrouille":
				statut.StatutEstVerrouille = !statut.StatutEstVerrouille
			case "statut_est_confirme":
				statut.StatutEstConfirme = !statut.StatutEstConfirme
			}
			if err := tx.Model(&champModel.ChampAnneeStatutModel{}).
				Where("statut_champ_no = ? AND statut_annee_id = ?", champNo, anneeID).
				Updates(map[string]interface{}{
					"statut_est_verrouille": statut.StatutEstVerrouille,
					"statut_est_confirme":   statut.StatutEstConfirme,
				}).Error; err != nil {
				return fmt.Errorf("basculer statut %s: %w", champNo, err)
			}
		}

		switch colonne {
		case "statut_est_verrouille":
			nouveau = statut.StatutEstVerrouille
		case "statut_est_confirme":
			nouveau = statut.StatutEstConfirme
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return nouveau, nil
}

// ChampDetails : champ + statuts pour une année (ErrIntrouvable si le champ
// n'existe pas ; le statut absent, lui, vaut défaut creux).
type ChampDetails struct {
	ChampNo       string `json:"champ_no"`
	ChampNom      string `json:"champ_nom"`
	EstVerrouille bool   `json:"est_verrouille"`
	EstConfirme   bool   `json:"est_confirme"`
}

func (s *StatutService) Details(champNo string, anneeID uuid.UUID) (*ChampDetails, error) {
	var champ champModel.ChampModel
	if err := s.DB.Where("champ_no = ?", champNo).First(&champ).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("champ %s: %w", champNo, commun.ErrIntrouvable)
		}
		return nil, fmt.Errorf("charger champ %s: %w", champNo, err)
	}
	verrou, confirme, err := s.Statut(champNo, anneeID)
	if err != nil {
		return nil, err
	}
	return &ChampDetails{
		ChampNo:       champ.ChampNo,
		ChampNom:      champ.ChampNom,
		EstVerrouille: verrou,
		EstConfirme:   confirme,
	}, nil
}

// ListerChamps : données de référence, triées par numéro.
func (s *StatutService) ListerChamps() ([]champModel.ChampModel, error) {
	var champs []champModel.ChampModel
	if err := s.DB.Order("champ_no").Find(&champs).Error; err != nil {
		return nil, fmt.Errorf("lister champs: %w", err)
	}
	return champs, nil
}
