// file: internals/features/enseignants/dto/enseignant_dto.go
package dto

import (
	"github.com/google/uuid"

	"repartition_backend/internals/features/enseignants/service"
)

// ============================
// Request DTO
// ============================

type CreateEnseignantRequest struct {
	AnneeID              uuid.UUID `json:"annee_id" validate:"required"`
	ChampNo              string    `json:"champ_no" validate:"required,max=10"`
	Nom                  string    `json:"nom" validate:"required,max=80"`
	Prenom               string    `json:"prenom" validate:"required,max=80"`
	EstTempsPlein        bool      `json:"est_temps_plein"`
	PeutChoisirHorsChamp bool      `json:"peut_choisir_hors_champ"`
}

type UpdateEnseignantRequest struct {
	ChampNo              string `json:"champ_no" validate:"required,max=10"`
	Nom                  string `json:"nom" validate:"required,max=80"`
	Prenom               string `json:"prenom" validate:"required,max=80"`
	EstTempsPlein        bool   `json:"est_temps_plein"`
	PeutChoisirHorsChamp bool   `json:"peut_choisir_hors_champ"`
}

type CreateTacheRestanteRequest struct {
	AnneeID uuid.UUID `json:"annee_id" validate:"required"`
	ChampNo string    `json:"champ_no" validate:"required,max=10"`
}

// ============================
// Converters
// ============================

func (r CreateEnseignantRequest) Donnees() service.DonneesEnseignant {
	return service.DonneesEnseignant{
		ChampNo:              r.ChampNo,
		Nom:                  r.Nom,
		Prenom:               r.Prenom,
		EstTempsPlein:        r.EstTempsPlein,
		PeutChoisirHorsChamp: r.PeutChoisirHorsChamp,
	}
}

func (r UpdateEnseignantRequest) Donnees() service.DonneesEnseignant {
	return service.DonneesEnseignant{
		ChampNo:              r.ChampNo,
		Nom:                  r.Nom,
		Prenom:               r.Prenom,
		EstTempsPlein:        r.EstTempsPlein,
		PeutChoisirHorsChamp: r.PeutChoisirHorsChamp,
	}
}
