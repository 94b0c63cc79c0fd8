// file: internals/features/cours/dto/cours_dto.go
package dto

import (
	"github.com/google/uuid"

	"repartition_backend/internals/features/cours/service"
)

// ============================
// Request DTO
// ============================

type CreateCoursRequest struct {
	CodeCours       string    `json:"code_cours" validate:"required,max=30"`
	AnneeID         uuid.UUID `json:"annee_id" validate:"required"`
	ChampNo         string    `json:"champ_no" validate:"required,max=10"`
	Descriptif      string    `json:"descriptif" validate:"required,max=255"`
	NbPeriodes      float64   `json:"nb_periodes" validate:"gte=0"`
	NbGroupeInitial int       `json:"nb_groupe_initial" validate:"gte=0"`
	EstAutre        bool      `json:"est_autre"`
	FinancementCode *string   `json:"financement_code,omitempty"`
}

type UpdateCoursRequest struct {
	ChampNo         string  `json:"champ_no" validate:"required,max=10"`
	Descriptif      string  `json:"descriptif" validate:"required,max=255"`
	NbPeriodes      float64 `json:"nb_periodes" validate:"gte=0"`
	NbGroupeInitial int     `json:"nb_groupe_initial" validate:"gte=0"`
	EstAutre        bool    `json:"est_autre"`
	FinancementCode *string `json:"financement_code,omitempty"`
}

// ============================
// Converters
// ============================

func (r CreateCoursRequest) Donnees() service.DonneesCours {
	return service.DonneesCours{
		ChampNo:         r.ChampNo,
		Descriptif:      r.Descriptif,
		NbPeriodes:      r.NbPeriodes,
		NbGroupeInitial: r.NbGroupeInitial,
		EstAutre:        r.EstAutre,
		FinancementCode: r.FinancementCode,
	}
}

func (r UpdateCoursRequest) Donnees() service.DonneesCours {
	return service.DonneesCours{
		ChampNo:         r.ChampNo,
		Descriptif:      r.Descriptif,
		NbPeriodes:      r.NbPeriodes,
		NbGroupeInitial: r.NbGroupeInitial,
		EstAutre:        r.EstAutre,
		FinancementCode: r.FinancementCode,
	}
}
