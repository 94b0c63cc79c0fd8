// file: internals/helpers/reponse_json.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"repartition_backend/internals/features/commun"
)

/* ===============================
   Enveloppe JSON standard
   { success, message, data } côté succès,
   { success, message, error_code } côté erreur.
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusConflict:
		return "CONFLICT"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonValidationError : erreurs de validation par champ (422).
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success:   false,
		Message:   "validation échouée",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	})
}

// JsonErreurMetier : traduit la taxonomie des services en statut HTTP.
// Tout ce qui n'en fait pas partie est un vrai problème serveur (500),
// sans exposer le message interne.
func JsonErreurMetier(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, commun.ErrIntrouvable):
		return JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, commun.ErrQuotaDepasse),
		errors.Is(err, commun.ErrDoublon),
		errors.Is(err, commun.ErrReferenceUtilisee):
		return JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, commun.ErrChampVerrouille):
		return JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, commun.ErrValidation):
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return JsonError(c, fiber.StatusInternalServerError, "erreur interne")
	}
}

/* ===============================
   Réponses succès
=================================*/

func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "créé"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "mis à jour"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "supprimé"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonList : liste simple, sans pagination (les listes du domaine sont
// courtes : champs, cours d'un champ, enseignants d'un champ).
func JsonList(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}
