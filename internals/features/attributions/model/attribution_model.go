// file: internals/features/attributions/model/attribution_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coursModel "repartition_backend/internals/features/cours/model"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

// Attribution : 1 ligne = des groupes pris par UN enseignant sur UN cours.
// Le système n'insère toujours qu'un groupe à la fois (nb_groupes = 1) ;
// prendre 3 groupes = 3 lignes. La FK composite (code, année) vers cours
// empêche toute attribution inter-années.
type AttributionModel struct {
	AttributionID uuid.UUID `gorm:"column:attribution_id;type:uuid;primaryKey" json:"attribution_id"`

	AttributionEnseignantID uuid.UUID `gorm:"column:attribution_enseignant_id;type:uuid;not null;index" json:"attribution_enseignant_id"`

	AttributionCodeCours  string    `gorm:"column:attribution_code_cours;type:varchar(30);not null;index:idx_attribution_cours" json:"attribution_code_cours"`
	AttributionAnneeCours uuid.UUID `gorm:"column:attribution_annee_cours;type:uuid;not null;index:idx_attribution_cours" json:"attribution_annee_cours"`

	AttributionNbGroupes int `gorm:"column:attribution_nb_groupes;not null;default:1" json:"attribution_nb_groupes"`

	AttributionCreatedAt time.Time `gorm:"column:attribution_created_at;not null;autoCreateTime" json:"attribution_created_at"`

	// Associations (FK explicites, cascade gérée dans les services, jamais
	// par un comportement implicite de l'ORM)
	Enseignant *enseignantModel.EnseignantModel `gorm:"foreignKey:AttributionEnseignantID;references:EnseignantID" json:"-"`
	Cours      *coursModel.CoursModel           `gorm:"foreignKey:AttributionCodeCours,AttributionAnneeCours;references:CoursCode,CoursAnneeID" json:"-"`
}

func (AttributionModel) TableName() string { return "attributions_cours" }

func (m *AttributionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttributionID == uuid.Nil {
		m.AttributionID = uuid.New()
	}
	if m.AttributionNbGroupes < 1 {
		m.AttributionNbGroupes = 1
	}
	return nil
}
