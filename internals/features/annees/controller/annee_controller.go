// file: internals/features/annees/controller/annee_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/annees/dto"
	"repartition_backend/internals/features/annees/service"
	helper "repartition_backend/internals/helpers"
)

var validateAnnee = validator.New()

type AnneeController struct {
	Service *service.AnneeService
}

func NewAnneeController(db *gorm.DB) *AnneeController {
	return &AnneeController{Service: service.NewAnneeService(db)}
}

// =======================
// 📄 Liste des années
// =======================
func (ctrl *AnneeController) Lister(c *fiber.Ctx) error {
	annees, err := ctrl.Service.Lister()
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	resp := make([]dto.AnneeDTO, 0, len(annees))
	for _, a := range annees {
		resp = append(resp, dto.ToAnneeDTO(a))
	}
	return helper.JsonList(c, "Années scolaires", resp)
}

// =======================
// 📄 Année courante
// =======================
func (ctrl *AnneeController) Courante(c *fiber.Ctx) error {
	annee, err := ctrl.Service.AnneeCourante()
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Année courante", dto.ToAnneeDTO(*annee))
}

// =======================
// ➕ Créer une année
// =======================
func (ctrl *AnneeController) Creer(c *fiber.Ctx) error {
	var body dto.CreateAnneeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateAnnee.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	annee, err := ctrl.Service.Creer(body.AnneeLibelle)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonCreated(c, "Année créée", dto.ToAnneeDTO(*annee))
}

// =======================
// ✏️ Définir l'année courante
// =======================
func (ctrl *AnneeController) DefinirCourante(c *fiber.Ctx) error {
	anneeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant d'année invalide")
	}
	annee, err := ctrl.Service.DefinirCourante(anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Année courante mise à jour", dto.ToAnneeDTO(*annee))
}

// =======================
// 🗑️ Supprimer une année
// =======================
func (ctrl *AnneeController) Supprimer(c *fiber.Ctx) error {
	anneeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant d'année invalide")
	}
	if err := ctrl.Service.Supprimer(anneeID); err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonDeleted(c, "Année supprimée", fiber.Map{"annee_id": anneeID})
}
