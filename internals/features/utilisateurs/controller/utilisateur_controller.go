// file: internals/features/utilisateurs/controller/utilisateur_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/configs"
	"repartition_backend/internals/features/utilisateurs/dto"
	"repartition_backend/internals/features/utilisateurs/service"
	helper "repartition_backend/internals/helpers"
	authMiddleware "repartition_backend/internals/middlewares/auth"
)

var validateUtilisateur = validator.New()

type UtilisateurController struct {
	Service *service.UtilisateurService
}

func NewUtilisateurController(db *gorm.DB) *UtilisateurController {
	return &UtilisateurController{
		Service: service.NewUtilisateurService(db, configs.JWTSecret, 0),
	}
}

// =======================
// 🔑 Connexion
// =======================
func (ctrl *UtilisateurController) Connexion(c *fiber.Ctx) error {
	var body dto.ConnexionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateUtilisateur.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	jeton, u, err := ctrl.Service.Connexion(body.Nom, body.MotDePasse)
	if err != nil {
		if errors.Is(err, service.ErrIdentifiants) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identifiants invalides")
		}
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonOK(c, "Connexion réussie", dto.ConnexionResponse{
		Jeton:       jeton,
		Utilisateur: dto.ToUtilisateurDTO(*u),
	})
}

// =======================
// 👤 Profil courant
// =======================
func (ctrl *UtilisateurController) Moi(c *fiber.Ctx) error {
	acteur := authMiddleware.ActeurDepuisContexte(c)
	if acteur == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentification requise")
	}
	return helper.JsonOK(c, "Profil", acteur)
}

// =======================
// 🔑 Changer son mot de passe
// =======================
func (ctrl *UtilisateurController) ChangerMotDePasse(c *fiber.Ctx) error {
	acteur := authMiddleware.ActeurDepuisContexte(c)
	if acteur == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentification requise")
	}

	var body dto.ChangerMotDePasseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateUtilisateur.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	err := ctrl.Service.ChangerMotDePasse(acteur.UtilisateurID, body.AncienMotDePasse, body.NouveauMotDePasse)
	if err != nil {
		if errors.Is(err, service.ErrIdentifiants) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Ancien mot de passe incorrect")
		}
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Mot de passe changé", nil)
}

// =======================
// 📄 Liste des comptes
// =======================
func (ctrl *UtilisateurController) Lister(c *fiber.Ctx) error {
	utilisateurs, err := ctrl.Service.Lister()
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	resp := make([]dto.UtilisateurDTO, 0, len(utilisateurs))
	for _, u := range utilisateurs {
		resp = append(resp, dto.ToUtilisateurDTO(u))
	}
	return helper.JsonList(c, "Utilisateurs", resp)
}

// =======================
// ➕ Créer un compte
// =======================
func (ctrl *UtilisateurController) Creer(c *fiber.Ctx) error {
	var body dto.CreateUtilisateurRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}
	if err := validateUtilisateur.Struct(&body); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			erreurs := make(map[string][]string, len(ve))
			for _, fe := range ve {
				erreurs[fe.Field()] = append(erreurs[fe.Field()], fe.Tag())
			}
			return helper.JsonValidationError(c, erreurs)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	u, err := ctrl.Service.Creer(service.DonneesUtilisateur{
		Nom:                 body.Nom,
		MotDePasse:          body.MotDePasse,
		EstAdmin:            body.EstAdmin,
		EstTableauSeulement: body.EstTableauSeulement,
		ChampsAutorises:     body.ChampsAutorises,
	})
	if err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonCreated(c, "Utilisateur créé", dto.ToUtilisateurDTO(*u))
}

// =======================
// ✏️ Mettre à jour les accès
// =======================
func (ctrl *UtilisateurController) MettreAJourAcces(c *fiber.Ctx) error {
	utilisateurID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant invalide")
	}

	var body dto.UpdateAccesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Corps de requête invalide")
	}

	if err := ctrl.Service.MettreAJourAcces(utilisateurID, body.ChampsAutorises); err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonUpdated(c, "Accès mis à jour", fiber.Map{
		"utilisateur_id":   utilisateurID,
		"champs_autorises": body.ChampsAutorises,
	})
}

// =======================
// 🗑️ Supprimer un compte
// =======================
func (ctrl *UtilisateurController) Supprimer(c *fiber.Ctx) error {
	utilisateurID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Identifiant invalide")
	}
	if err := ctrl.Service.Supprimer(utilisateurID); err != nil {
		return helper.JsonErreurMetier(c, err)
	}
	return helper.JsonDeleted(c, "Utilisateur supprimé", fiber.Map{"utilisateur_id": utilisateurID})
}
