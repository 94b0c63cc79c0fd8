// file: internals/features/enseignants/controller/enseignant_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/enseignants/dto"
	"repartition_backend/internals/features/enseignants/service"
	helper "repartition_backend/internals/helpers"
	authMiddleware "repartition_backend/internals/middlewares/auth"
)

var validateEnseignant = validator.New()

type EnseignantController struct {
	Service *service.EnseignantService
}

func NewEnseignantController(db *gorm.DB) *EnseignantController {
	return &EnseignantController{Service: service.NewEnseignantService(db)}
}

// =======================
// ➕ Créer un enseignant
// =======================
func (ctrl *EnseignantController) Creer(c *fiber.Ctx) error {
	var body dto.CreateEnseignantRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateEnseignant.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ens, err := ctrl.Service.Creer(body.AnneeID, body.Donnees())
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonCreated(c, "Enseignant créé", ens)
}

// =======================
// ✏️ Mettre à jour
// =======================
func (ctrl *EnseignantController) MettreAJour(c *fiber.Ctx) error {
	enseignantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant invalide")
	}

	var body dto.UpdateEnseignantRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateEnseignant.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ens, err := ctrl.Service.MettreAJour(enseignantID, body.Donnees())
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Enseignant mis à jour", ens)
}

// =======================
// 🗑️ Supprimer (cascade explicite sur ses attributions)
// =======================
func (ctrl *EnseignantController) Supprimer(c *fiber.Ctx) error {
	enseignantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant invalide")
	}

	liberes, err := ctrl.Service.Supprimer(enseignantID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonDeleted(c, "Enseignant supprimé", fiber.Map{
		"enseignant_id":         enseignantID,
		"cours_liberes_details": liberes,
	})
}

// =======================
// ➕ Créer une tâche restante (fictif)
// =======================
func (ctrl *EnseignantController) CreerTacheRestante(c *fiber.Ctx) error {
	var body dto.CreateTacheRestanteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateEnseignant.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	acteur := authMiddleware.ActeurDepuisContexte(c)
	if acteur == nil || !acteur.PeutModifier(body.ChampNo) {
		return helper.JsonError(c, fiber.StatusForbidden, "Modification refusée sur ce champ")
	}

	ens, err := ctrl.Service.CreerTacheRestante(body.ChampNo, body.AnneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonCreated(c, "Tâche restante créée", ens)
}
