// file: internals/features/cours/controller/cours_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/features/cours/dto"
	"repartition_backend/internals/features/cours/service"
	helper "repartition_backend/internals/helpers"
)

var validateCours = validator.New()

type CoursController struct {
	Service *service.CoursService
}

func NewCoursController(db *gorm.DB) *CoursController {
	return &CoursController{Service: service.NewCoursService(db)}
}

func anneeIDDepuisQuery(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Query("annee_id"))
}

// =======================
// 📄 Détails + groupes restants
// =======================
func (ctrl *CoursController) Details(c *fiber.Ctx) error {
	anneeID, err := anneeIDDepuisQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "annee_id manquant ou invalide")
	}
	codeCours := c.Params("codeCours")

	cours, err := ctrl.Service.Details(codeCours, anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	restant, err := ctrl.Service.GroupesRestants(codeCours, anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Cours", fiber.Map{
		"cours":            cours,
		"groupes_restants": restant,
	})
}

// =======================
// ➕ Créer un cours
// =======================
func (ctrl *CoursController) Creer(c *fiber.Ctx) error {
	var body dto.CreateCoursRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateCours.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cours, err := ctrl.Service.Creer(body.CodeCours, body.AnneeID, body.Donnees())
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonCreated(c, "Cours créé", cours)
}

// =======================
// ✏️ Mettre à jour un cours
// =======================
func (ctrl *CoursController) MettreAJour(c *fiber.Ctx) error {
	anneeID, err := anneeIDDepuisQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "annee_id manquant ou invalide")
	}

	var body dto.UpdateCoursRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateCours.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cours, err := ctrl.Service.MettreAJour(c.Params("codeCours"), anneeID, body.Donnees())
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Cours mis à jour", cours)
}

// =======================
// 🗑️ Supprimer un cours
// =======================
func (ctrl *CoursController) Supprimer(c *fiber.Ctx) error {
	anneeID, err := anneeIDDepuisQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "annee_id manquant ou invalide")
	}
	codeCours := c.Params("codeCours")

	if err := ctrl.Service.Supprimer(codeCours, anneeID); err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonDeleted(c, "Cours supprimé", fiber.Map{
		"code_cours": codeCours,
		"annee_id":   anneeID,
	})
}

// =======================
// ✏️ Réassigner le champ
// =======================
func (ctrl *CoursController) ReassignerChamp(c *fiber.Ctx) error {
	anneeID, err := anneeIDDepuisQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "annee_id manquant ou invalide")
	}

	var body struct {
		ChampNo string `json:"champ_no" validate:"required,max=10"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateCours.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.Service.ReassignerChamp(c.Params("codeCours"), anneeID, body.ChampNo); err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Cours réassigné", fiber.Map{
		"code_cours": c.Params("codeCours"),
		"champ_no":   body.ChampNo,
	})
}
