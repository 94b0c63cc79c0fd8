// file: internals/features/utilisateurs/model/utilisateur_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Utilisateur : trois rôles.
// - admin (accès complet)
// - tableau seulement (lecture des sommaires et pages de champ)
// - standard (champs explicitement autorisés via utilisateur_champ_acces)
type UtilisateurModel struct {
	UtilisateurID  uuid.UUID `gorm:"column:utilisateur_id;type:uuid;primaryKey" json:"utilisateur_id"`
	UtilisateurNom string    `gorm:"column:utilisateur_nom;type:varchar(80);not null;uniqueIndex" json:"utilisateur_nom"`

	UtilisateurMotDePasseHash string `gorm:"column:utilisateur_mot_de_passe_hash;type:varchar(255);not null" json:"-"`

	UtilisateurEstAdmin            bool `gorm:"column:utilisateur_est_admin;not null;default:false" json:"utilisateur_est_admin"`
	UtilisateurEstTableauSeulement bool `gorm:"column:utilisateur_est_tableau_seulement;not null;default:false" json:"utilisateur_est_tableau_seulement"`

	UtilisateurCreatedAt time.Time `gorm:"column:utilisateur_created_at;not null;autoCreateTime" json:"utilisateur_created_at"`
	UtilisateurUpdatedAt time.Time `gorm:"column:utilisateur_updated_at;not null;autoUpdateTime" json:"utilisateur_updated_at"`
}

func (UtilisateurModel) TableName() string { return "utilisateurs" }

func (m *UtilisateurModel) BeforeCreate(tx *gorm.DB) error {
	if m.UtilisateurID == uuid.Nil {
		m.UtilisateurID = uuid.New()
	}
	m.UtilisateurNom = strings.TrimSpace(m.UtilisateurNom)
	return nil
}

// UtilisateurChampAcces : accès d'un utilisateur standard à un champ.
type UtilisateurChampAccesModel struct {
	AccesUtilisateurID uuid.UUID `gorm:"column:acces_utilisateur_id;type:uuid;primaryKey" json:"acces_utilisateur_id"`
	AccesChampNo       string    `gorm:"column:acces_champ_no;type:varchar(10);primaryKey" json:"acces_champ_no"`
}

func (UtilisateurChampAccesModel) TableName() string { return "utilisateur_champ_acces" }
