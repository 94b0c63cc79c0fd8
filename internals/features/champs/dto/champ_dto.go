// file: internals/features/champs/dto/champ_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	attributionModel "repartition_backend/internals/features/attributions/model"
	champService "repartition_backend/internals/features/champs/service"
	coursService "repartition_backend/internals/features/cours/service"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
	sommaireService "repartition_backend/internals/features/sommaire/service"
)

// ============================
// Response DTO
// ============================

// AttributionLigneDTO : une ligne d'attribution affichée sous l'enseignant.
type AttributionLigneDTO struct {
	AttributionID uuid.UUID `json:"attribution_id"`
	CodeCours     string    `json:"code_cours"`
	Descriptif    string    `json:"descriptif"`
	NbGroupes     int       `json:"nb_groupes"`
	NbPeriodes    float64   `json:"nb_periodes"`
	EstAutre      bool      `json:"est_autre"`
	CreatedAt     time.Time `json:"created_at"`
}

// EnseignantPageDTO : un enseignant de la page de champ, attributions et
// ventilation de périodes incluses.
type EnseignantPageDTO struct {
	EnseignantID         uuid.UUID                        `json:"enseignant_id"`
	NomComplet           string                           `json:"nom_complet"`
	EstTempsPlein        bool                             `json:"est_temps_plein"`
	EstFictif            bool                             `json:"est_fictif"`
	PeutChoisirHorsChamp bool                             `json:"peut_choisir_hors_champ"`
	Attributions         []AttributionLigneDTO            `json:"attributions"`
	Periodes             sommaireService.PeriodesChoisies `json:"periodes"`
}

// PageChampDTO : tout ce que la page d'un champ affiche d'un coup.
type PageChampDTO struct {
	Champ        champService.ChampDetails       `json:"champ"`
	AnneeID      uuid.UUID                       `json:"annee_id"`
	Enseignants  []EnseignantPageDTO             `json:"enseignants"`
	Cours        []coursService.CoursAvecRestant `json:"cours"`
	PeutModifier bool                            `json:"peut_modifier"`
}

// ============================
// Converters
// ============================

func ToAttributionLigneDTO(a attributionModel.AttributionModel) AttributionLigneDTO {
	ligne := AttributionLigneDTO{
		AttributionID: a.AttributionID,
		CodeCours:     a.AttributionCodeCours,
		NbGroupes:     a.AttributionNbGroupes,
		CreatedAt:     a.AttributionCreatedAt,
	}
	if a.Cours != nil {
		ligne.Descriptif = a.Cours.CoursDescriptif
		ligne.NbPeriodes = float64(a.AttributionNbGroupes) * a.Cours.CoursNbPeriodes
		ligne.EstAutre = a.Cours.CoursEstAutre
	}
	return ligne
}

func ToEnseignantPageDTO(ens enseignantModel.EnseignantModel, attributions []attributionModel.AttributionModel) EnseignantPageDTO {
	lignes := make([]AttributionLigneDTO, 0, len(attributions))
	for _, a := range attributions {
		lignes = append(lignes, ToAttributionLigneDTO(a))
	}
	return EnseignantPageDTO{
		EnseignantID:         ens.EnseignantID,
		NomComplet:           ens.EnseignantNomComplet,
		EstTempsPlein:        ens.EnseignantEstTempsPlein,
		EstFictif:            ens.EnseignantEstFictif,
		PeutChoisirHorsChamp: ens.EnseignantPeutChoisirHorsChamp,
		Attributions:         lignes,
		Periodes:             sommaireService.CalculerPeriodes(attributions),
	}
}
