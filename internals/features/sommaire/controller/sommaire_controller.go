// file: internals/features/sommaire/controller/sommaire_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/sommaire/service"
	helper "repartition_backend/internals/helpers"
)

type SommaireController struct {
	Service *service.SommaireService
}

func NewSommaireController(db *gorm.DB) *SommaireController {
	return &SommaireController{Service: service.NewSommaireService(db)}
}

// =======================
// 📊 Tableau de bord d'une année
// =======================
func (ctrl *SommaireController) Etablissement(c *fiber.Ctx) error {
	anneeID, err := uuid.Parse(c.Params("anneeId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant d'année invalide")
	}

	sommaire, err := ctrl.Service.Etablissement(anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Sommaire de l'établissement", sommaire)
}

// =======================
// 📊 Périodes d'un enseignant
// =======================
func (ctrl *SommaireController) PeriodesEnseignant(c *fiber.Ctx) error {
	enseignantID, err := uuid.Parse(c.Params("enseignantId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant invalide")
	}

	periodes, err := ctrl.Service.PeriodesEnseignant(enseignantID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Périodes de l'enseignant", periodes)
}
