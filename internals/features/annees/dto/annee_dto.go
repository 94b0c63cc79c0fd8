// file: internals/features/annees/dto/annee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"repartition_backend/internals/features/annees/model"
)

// ============================
// Response DTO
// ============================

type AnneeDTO struct {
	AnneeID          uuid.UUID `json:"annee_id"`
	AnneeLibelle     string    `json:"annee_libelle"`
	AnneeEstCourante bool      `json:"annee_est_courante"`
	AnneeCreatedAt   time.Time `json:"annee_created_at"`
}

// ============================
// Request DTO
// ============================

type CreateAnneeRequest struct {
	AnneeLibelle string `json:"annee_libelle" validate:"required,min=4,max=20"`
}

// ============================
// Converter
// ============================

func ToAnneeDTO(m model.AnneeScolaireModel) AnneeDTO {
	return AnneeDTO{
		AnneeID:          m.AnneeID,
		AnneeLibelle:     m.AnneeLibelle,
		AnneeEstCourante: m.AnneeEstCourante,
		AnneeCreatedAt:   m.AnneeCreatedAt,
	}
}
