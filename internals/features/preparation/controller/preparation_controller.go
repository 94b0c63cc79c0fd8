// file: internals/features/preparation/controller/preparation_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/preparation/service"
	helper "repartition_backend/internals/helpers"
)

var validatePreparation = validator.New()

type PreparationController struct {
	Service *service.PreparationService
}

func NewPreparationController(db *gorm.DB) *PreparationController {
	return &PreparationController{Service: service.NewPreparationService(db)}
}

// =======================
// 📄 Grille d'une année
// =======================
func (ctrl *PreparationController) Donnees(c *fiber.Ctx) error {
	anneeID, err := uuid.Parse(c.Params("anneeId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant d'année invalide")
	}

	lignes, err := ctrl.Service.Donnees(anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Grille de préparation", lignes)
}

// =======================
// 💾 Sauvegarder la grille
// =======================
func (ctrl *PreparationController) Sauvegarder(c *fiber.Ctx) error {
	anneeID, err := uuid.Parse(c.Params("anneeId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant d'année invalide")
	}

	var cellules []service.CelluleHoraire
	if err := c.BodyParser(&cellules); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	for i := range cellules {
		if err := validatePreparation.Struct(&cellules[i]); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	nb, err := ctrl.Service.Sauvegarder(anneeID, cellules)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Grille sauvegardée", fiber.Map{
		"annee_id":    anneeID,
		"nb_cellules": nb,
	})
}
