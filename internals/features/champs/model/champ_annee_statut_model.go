// file: internals/features/champs/model/champ_annee_statut_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ChampAnneeStatut : statuts d'un champ pour UNE année scolaire.
// Ligne absente = non verrouillé ET non confirmé (défaut creux).
// Les deux booléens sont indépendants : verrouiller fige les attributions
// des enseignants réels, confirmer marque les chiffres comme finaux pour
// le sommaire "confirmé".
type ChampAnneeStatutModel struct {
	StatutChampNo string    `gorm:"column:statut_champ_no;type:varchar(10);primaryKey" json:"statut_champ_no"`
	StatutAnneeID uuid.UUID `gorm:"column:statut_annee_id;type:uuid;primaryKey" json:"statut_annee_id"`

	StatutEstVerrouille bool `gorm:"column:statut_est_verrouille;not null;default:false" json:"statut_est_verrouille"`
	StatutEstConfirme   bool `gorm:"column:statut_est_confirme;not null;default:false" json:"statut_est_confirme"`

	StatutUpdatedAt time.Time `gorm:"column:statut_updated_at;not null;autoUpdateTime" json:"statut_updated_at"`
}

func (ChampAnneeStatutModel) TableName() string { return "champ_annee_statuts" }
