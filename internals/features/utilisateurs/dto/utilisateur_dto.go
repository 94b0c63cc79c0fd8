// file: internals/features/utilisateurs/dto/utilisateur_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"repartition_backend/internals/features/utilisateurs/model"
)

// ============================
// Response DTO
// ============================

type UtilisateurDTO struct {
	UtilisateurID       uuid.UUID `json:"utilisateur_id"`
	Nom                 string    `json:"nom"`
	EstAdmin            bool      `json:"est_admin"`
	EstTableauSeulement bool      `json:"est_tableau_seulement"`
	CreatedAt           time.Time `json:"created_at"`
}

type ConnexionResponse struct {
	Jeton       string         `json:"jeton"`
	Utilisateur UtilisateurDTO `json:"utilisateur"`
}

// ============================
// Request DTO
// ============================

type ConnexionRequest struct {
	Nom        string `json:"nom" validate:"required"`
	MotDePasse string `json:"mot_de_passe" validate:"required"`
}

type CreateUtilisateurRequest struct {
	Nom                 string   `json:"nom" validate:"required,max=80"`
	MotDePasse          string   `json:"mot_de_passe" validate:"required,min=8"`
	EstAdmin            bool     `json:"est_admin"`
	EstTableauSeulement bool     `json:"est_tableau_seulement"`
	ChampsAutorises     []string `json:"champs_autorises"`
}

type UpdateAccesRequest struct {
	ChampsAutorises []string `json:"champs_autorises" validate:"required"`
}

type ChangerMotDePasseRequest struct {
	AncienMotDePasse  string `json:"ancien_mot_de_passe" validate:"required"`
	NouveauMotDePasse string `json:"nouveau_mot_de_passe" validate:"required,min=8"`
}

// ============================
// Converter
// ============================

func ToUtilisateurDTO(m model.UtilisateurModel) UtilisateurDTO {
	return UtilisateurDTO{
		UtilisateurID:       m.UtilisateurID,
		Nom:                 m.UtilisateurNom,
		EstAdmin:            m.UtilisateurEstAdmin,
		EstTableauSeulement: m.UtilisateurEstTableauSeulement,
		CreatedAt:           m.UtilisateurCreatedAt,
	}
}
