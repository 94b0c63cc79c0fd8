// file: internals/features/annees/model/annee_scolaire_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NOTE:
// - annee_libelle: libellé triable du type "2025-2026", unique
// - annee_est_courante: au plus une ligne à true, garanti par le service
//   (transaction qui remet les autres à false), pas seulement par la table
// - annee_stats: document JSONB libre, rafraîchi par l'importation en bloc
type AnneeScolaireModel struct {
	AnneeID          uuid.UUID      `gorm:"column:annee_id;type:uuid;primaryKey" json:"annee_id"`
	AnneeLibelle     string         `gorm:"column:annee_libelle;type:varchar(20);not null;uniqueIndex" json:"annee_libelle"`
	AnneeEstCourante bool           `gorm:"column:annee_est_courante;not null;default:false;index" json:"annee_est_courante"`
	AnneeStats       datatypes.JSON `gorm:"column:annee_stats;type:jsonb" json:"annee_stats,omitempty"`

	AnneeCreatedAt time.Time `gorm:"column:annee_created_at;not null;autoCreateTime" json:"annee_created_at"`
	AnneeUpdatedAt time.Time `gorm:"column:annee_updated_at;not null;autoUpdateTime" json:"annee_updated_at"`
}

func (AnneeScolaireModel) TableName() string { return "annees_scolaires" }

// Hook : UUID généré côté Go (et non gen_random_uuid) pour que les mêmes
// modèles tournent sur Postgres et sur SQLite dans les tests.
func (m *AnneeScolaireModel) BeforeCreate(tx *gorm.DB) error {
	if m.AnneeID == uuid.Nil {
		m.AnneeID = uuid.New()
	}
	m.AnneeLibelle = strings.TrimSpace(m.AnneeLibelle)
	return nil
}
