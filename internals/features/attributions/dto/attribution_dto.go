// file: internals/features/attributions/dto/attribution_dto.go
package dto

import (
	"github.com/google/uuid"
)

// ============================
// Request DTO
// ============================

type AjouterAttributionRequest struct {
	EnseignantID uuid.UUID `json:"enseignant_id" validate:"required"`
	CodeCours    string    `json:"code_cours" validate:"required,max=30"`
	AnneeID      uuid.UUID `json:"annee_id" validate:"required"`
}
