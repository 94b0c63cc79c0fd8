// file: internals/features/enseignants/model/enseignant_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enseignant : réel ou fictif ("tâche restante").
// - appartient à UNE année et UN champ à la création ; on ne migre pas un
//   enseignant d'année en année, on le recrée (réimportation)
// - nom/prénom nullable : les fictifs n'en ont pas, seulement un nom complet
//   "{champ}-Tâche restante-{n}"
// - unicité du nom complet par année
type EnseignantModel struct {
	EnseignantID      uuid.UUID `gorm:"column:enseignant_id;type:uuid;primaryKey" json:"enseignant_id"`
	EnseignantAnneeID uuid.UUID `gorm:"column:enseignant_annee_id;type:uuid;not null;index;uniqueIndex:uq_enseignant_nom_par_annee" json:"enseignant_annee_id"`
	EnseignantChampNo string    `gorm:"column:enseignant_champ_no;type:varchar(10);not null;index" json:"enseignant_champ_no"`

	EnseignantNomComplet string  `gorm:"column:enseignant_nom_complet;type:varchar(160);not null;uniqueIndex:uq_enseignant_nom_par_annee" json:"enseignant_nom_complet"`
	EnseignantNom        *string `gorm:"column:enseignant_nom;type:varchar(80)" json:"enseignant_nom,omitempty"`
	EnseignantPrenom     *string `gorm:"column:enseignant_prenom;type:varchar(80)" json:"enseignant_prenom,omitempty"`

	// pas de default côté DB : un false explicite doit s'écrire tel quel
	EnseignantEstTempsPlein bool `gorm:"column:enseignant_est_temps_plein;not null" json:"enseignant_est_temps_plein"`
	EnseignantEstFictif     bool `gorm:"column:enseignant_est_fictif;not null;default:false;index" json:"enseignant_est_fictif"`

	// peut se voir attribuer des cours hors de son champ principal
	EnseignantPeutChoisirHorsChamp bool `gorm:"column:enseignant_peut_choisir_hors_champ;not null;default:false" json:"enseignant_peut_choisir_hors_champ"`

	EnseignantCreatedAt time.Time `gorm:"column:enseignant_created_at;not null;autoCreateTime" json:"enseignant_created_at"`
	EnseignantUpdatedAt time.Time `gorm:"column:enseignant_updated_at;not null;autoUpdateTime" json:"enseignant_updated_at"`
}

func (EnseignantModel) TableName() string { return "enseignants" }

func (m *EnseignantModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnseignantID == uuid.Nil {
		m.EnseignantID = uuid.New()
	}
	return nil
}

func (m *EnseignantModel) BeforeSave(tx *gorm.DB) error {
	m.EnseignantNomComplet = strings.TrimSpace(m.EnseignantNomComplet)
	return nil
}

// CompteVersMoyenne : seuls les temps pleins réels entrent dans la moyenne
// d'un champ. Les fictifs portent des périodes mais ne comptent jamais.
func (m *EnseignantModel) CompteVersMoyenne() bool {
	return m.EnseignantEstTempsPlein && !m.EnseignantEstFictif
}
