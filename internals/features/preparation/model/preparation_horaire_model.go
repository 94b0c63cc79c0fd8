// file: internals/features/preparation/model/preparation_horaire_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreparationHoraire : grille de préparation de l'horaire, sauvegardée par
// année (suppression totale puis réinsertion à chaque sauvegarde).
// enseignant_id nullable : une cellule peut être posée sans enseignant.
type PreparationHoraireModel struct {
	PreparationID      uuid.UUID `gorm:"column:preparation_id;type:uuid;primaryKey" json:"preparation_id"`
	PreparationAnneeID uuid.UUID `gorm:"column:preparation_annee_id;type:uuid;not null;index" json:"preparation_annee_id"`

	PreparationNiveauSecondaire int `gorm:"column:preparation_niveau_secondaire;not null" json:"preparation_niveau_secondaire"`

	PreparationCodeCours  string    `gorm:"column:preparation_code_cours;type:varchar(30);not null" json:"preparation_code_cours"`
	PreparationAnneeCours uuid.UUID `gorm:"column:preparation_annee_cours;type:uuid;not null" json:"preparation_annee_cours"`

	PreparationEnseignantID *uuid.UUID `gorm:"column:preparation_enseignant_id;type:uuid" json:"preparation_enseignant_id,omitempty"`

	PreparationColonne string `gorm:"column:preparation_colonne;type:varchar(30);not null" json:"preparation_colonne"`

	PreparationCreatedAt time.Time `gorm:"column:preparation_created_at;not null;autoCreateTime" json:"preparation_created_at"`
}

func (PreparationHoraireModel) TableName() string { return "preparations_horaire" }

func (m *PreparationHoraireModel) BeforeCreate(tx *gorm.DB) error {
	if m.PreparationID == uuid.Nil {
		m.PreparationID = uuid.New()
	}
	return nil
}
