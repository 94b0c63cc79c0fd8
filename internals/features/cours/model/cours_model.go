// file: internals/features/cours/model/cours_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cours : PK composite (code, année) : le même code peut exister
// indépendamment d'une année à l'autre.
// cours_nb_periodes est en NUMERIC : les périodes peuvent être
// fractionnaires (0.5). float64 côté Go, comme nos autres montants.
type CoursModel struct {
	CoursCode    string    `gorm:"column:cours_code;type:varchar(30);primaryKey" json:"cours_code"`
	CoursAnneeID uuid.UUID `gorm:"column:cours_annee_id;type:uuid;primaryKey" json:"cours_annee_id"`

	CoursChampNo    string `gorm:"column:cours_champ_no;type:varchar(10);not null;index" json:"cours_champ_no"`
	CoursDescriptif string `gorm:"column:cours_descriptif;type:varchar(255);not null" json:"cours_descriptif"`

	CoursNbPeriodes      float64 `gorm:"column:cours_nb_periodes;type:numeric(6,2);not null" json:"cours_nb_periodes"`
	CoursNbGroupeInitial int     `gorm:"column:cours_nb_groupe_initial;not null;default:0" json:"cours_nb_groupe_initial"`

	// "cours autre tâche" : compté dans periodes_autres, pas periodes_cours
	CoursEstAutre bool `gorm:"column:cours_est_autre;not null;default:false" json:"cours_est_autre"`

	CoursFinancementCode *string `gorm:"column:cours_financement_code;type:varchar(10)" json:"cours_financement_code,omitempty"`

	CoursCreatedAt time.Time `gorm:"column:cours_created_at;not null;autoCreateTime" json:"cours_created_at"`
	CoursUpdatedAt time.Time `gorm:"column:cours_updated_at;not null;autoUpdateTime" json:"cours_updated_at"`
}

func (CoursModel) TableName() string { return "cours" }

func (m *CoursModel) BeforeSave(tx *gorm.DB) error {
	m.CoursCode = strings.TrimSpace(m.CoursCode)
	m.CoursDescriptif = strings.TrimSpace(m.CoursDescriptif)
	if m.CoursFinancementCode != nil {
		c := strings.TrimSpace(*m.CoursFinancementCode)
		if c == "" {
			m.CoursFinancementCode = nil
		} else {
			m.CoursFinancementCode = &c
		}
	}
	return nil
}

// TypeFinancement : référence optionnelle rattachée aux cours (ex. "REG").
type TypeFinancementModel struct {
	FinancementCode    string `gorm:"column:financement_code;type:varchar(10);primaryKey" json:"financement_code"`
	FinancementLibelle string `gorm:"column:financement_libelle;type:varchar(120);not null" json:"financement_libelle"`
}

func (TypeFinancementModel) TableName() string { return "types_financement" }
