// file: internals/features/attributions/controller/attribution_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/attributions/dto"
	"repartition_backend/internals/features/attributions/service"
	enseignantService "repartition_backend/internals/features/enseignants/service"
	helper "repartition_backend/internals/helpers"
	authMiddleware "repartition_backend/internals/middlewares/auth"
)

var validateAttribution = validator.New()

type AttributionController struct {
	Service     *service.AttributionService
	Enseignants *enseignantService.EnseignantService
}

func NewAttributionController(db *gorm.DB) *AttributionController {
	return &AttributionController{
		Service:     service.NewAttributionService(db),
		Enseignants: enseignantService.NewEnseignantService(db),
	}
}

// peutModifierEnseignant : l'acteur doit pouvoir modifier le champ de
// l'enseignant visé. Le verrou du champ, lui, est vérifié par le service
// dans la même transaction que l'écriture.
func (ctrl *AttributionController) peutModifierEnseignant(c *fiber.Ctx, enseignantID uuid.UUID) error {
	acteur := authMiddleware.ActeurDepuisContexte(c)
	if acteur == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "authentification requise")
	}
	ens, err := ctrl.Enseignants.ParID(enseignantID)
	if err != nil {
		return err
	}
	if !acteur.PeutModifier(ens.EnseignantChampNo) {
		return fiber.NewError(fiber.StatusForbidden, "modification refusée sur ce champ")
	}
	return nil
}

// =======================
// ➕ Prendre un groupe
// =======================
func (ctrl *AttributionController) Ajouter(c *fiber.Ctx) error {
	var body dto.AjouterAttributionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateAttribution.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.peutModifierEnseignant(c, body.EnseignantID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonErreurMetier(c, err)
	}

	res, err := ctrl.Service.Ajouter(body.EnseignantID, body.CodeCours, body.AnneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonCreated(c, "Groupe attribué", res)
}

// =======================
// 🗑️ Retirer une attribution
// =======================
func (ctrl *AttributionController) Supprimer(c *fiber.Ctx) error {
	attributionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant invalide")
	}

	attribution, err := ctrl.Service.ParID(attributionID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	if err := ctrl.peutModifierEnseignant(c, attribution.AttributionEnseignantID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonErreurMetier(c, err)
	}

	res, err := ctrl.Service.Supprimer(attributionID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonDeleted(c, "Attribution retirée", res)
}

// =======================
// 📄 Attributions d'un enseignant
// =======================
func (ctrl *AttributionController) ParEnseignant(c *fiber.Ctx) error {
	enseignantID, err := uuid.Parse(c.Params("enseignantId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant invalide")
	}

	attributions, err := ctrl.Service.ParEnseignant(enseignantID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	periodes, err := ctrl.Service.PeriodesEnseignant(enseignantID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Attributions de l'enseignant", fiber.Map{
		"enseignant_id":           enseignantID,
		"attributions_enseignant": attributions,
		"periodes_enseignant":     periodes,
	})
}
