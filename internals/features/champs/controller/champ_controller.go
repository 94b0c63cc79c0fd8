// file: internals/features/champs/controller/champ_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attributionService "repartition_backend/internals/features/attributions/service"
	"repartition_backend/internals/features/champs/dto"
	champService "repartition_backend/internals/features/champs/service"
	coursService "repartition_backend/internals/features/cours/service"
	enseignantService "repartition_backend/internals/features/enseignants/service"
	helper "repartition_backend/internals/helpers"
	authMiddleware "repartition_backend/internals/middlewares/auth"
)

type ChampController struct {
	Statuts      *champService.StatutService
	Enseignants  *enseignantService.EnseignantService
	Cours        *coursService.CoursService
	Attributions *attributionService.AttributionService
}

func NewChampController(db *gorm.DB) *ChampController {
	return &ChampController{
		Statuts:      champService.NewStatutService(db),
		Enseignants:  enseignantService.NewEnseignantService(db),
		Cours:        coursService.NewCoursService(db),
		Attributions: attributionService.NewAttributionService(db),
	}
}

// =======================
// 📄 Liste des champs
// =======================
func (ctrl *ChampController) Lister(c *fiber.Ctx) error {
	champs, err := ctrl.Statuts.ListerChamps()
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonList(c, "Champs", champs)
}

// =======================
// 📄 Page d'un champ
// Query: ?annee_id=<uuid>
// =======================
func (ctrl *ChampController) Page(c *fiber.Ctx) error {
	champNo := c.Params("champNo")
	anneeID, err := uuid.Parse(c.Query("annee_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "annee_id manquant ou invalide")
	}

	details, err := ctrl.Statuts.Details(champNo, anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}

	enseignants, err := ctrl.Enseignants.ParChamp(champNo, anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}

	page := dto.PageChampDTO{
		Champ:       *details,
		AnneeID:     anneeID,
		Enseignants: make([]dto.EnseignantPageDTO, 0, len(enseignants)),
	}
	for _, ens := range enseignants {
		attributions, err := ctrl.Attributions.ParEnseignant(ens.EnseignantID)
		if err != nil {
			return helper.JsonErreurMetier(c, err)
		}
		page.Enseignants = append(page.Enseignants, dto.ToEnseignantPageDTO(ens, attributions))
	}

	cours, err := ctrl.Cours.ParChamp(champNo, anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	page.Cours = cours

	if acteur := authMiddleware.ActeurDepuisContexte(c); acteur != nil {
		page.PeutModifier = acteur.PeutModifier(champNo)
	}
	return helper.JsonOK(c, "Page du champ", page)
}

// =======================
// 🔒 Basculer le verrou
// =======================
func (ctrl *ChampController) BasculerVerrou(c *fiber.Ctx) error {
	champNo := c.Params("champNo")
	anneeID, err := uuid.Parse(c.Query("annee_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "annee_id manquant ou invalide")
	}

	nouveau, err := ctrl.Statuts.BasculerVerrou(champNo, anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Verrou basculé", fiber.Map{
		"champ_no":       champNo,
		"annee_id":       anneeID,
		"est_verrouille": nouveau,
	})
}

// =======================
// ✅ Basculer la confirmation
// =======================
func (ctrl *ChampController) BasculerConfirmation(c *fiber.Ctx) error {
	champNo := c.Params("champNo")
	anneeID, err := uuid.Parse(c.Query("annee_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "annee_id manquant ou invalide")
	}

	nouveau, err := ctrl.Statuts.BasculerConfirmation(champNo, anneeID)
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Confirmation basculée", fiber.Map{
		"champ_no":     champNo,
		"annee_id":     anneeID,
		"est_confirme": nouveau,
	})
}
