// file: internals/features/importation/controller/importation_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/importation/service"
	helper "repartition_backend/internals/helpers"
)

var validateImportation = validator.New()

type ImportationController struct {
	Service *service.ImportationService
}

func NewImportationController(db *gorm.DB) *ImportationController {
	return &ImportationController{Service: service.NewImportationService(db)}
}

// =======================
// 📥 Importer les cours d'une année
// =======================
func (ctrl *ImportationController) ImporterCours(c *fiber.Ctx) error {
	anneeID, err := uuid.Parse(c.Params("anneeId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant d'année invalide")
	}

	var lignes []service.LigneCoursImport
	if err := c.BodyParser(&lignes); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	for i := range lignes {
		if err := validateImportation.Struct(&lignes[i]); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	stats, err := ctrl.Service.ImporterCours(anneeID, lignes)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Cours importés", stats)
}

// =======================
// 📥 Importer les enseignants d'une année
// =======================
func (ctrl *ImportationController) ImporterEnseignants(c *fiber.Ctx) error {
	anneeID, err := uuid.Parse(c.Params("anneeId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant d'année invalide")
	}

	var lignes []service.LigneEnseignantImport
	if err := c.BodyParser(&lignes); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	for i := range lignes {
		if err := validateImportation.Struct(&lignes[i]); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	stats, err := ctrl.Service.ImporterEnseignants(anneeID, lignes)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Enseignants importés", stats)
}
