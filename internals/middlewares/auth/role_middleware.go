// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
)

// AdminOnly : réservé aux comptes administrateurs.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		acteur := ActeurDepuisContexte(c)
		if acteur == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "authentification requise")
		}
		if !acteur.EstAdmin {
			return fiber.NewError(fiber.StatusForbidden, "réservé aux administrateurs")
		}
		return c.Next()
	}
}

// ChampAutorise : l'acteur doit pouvoir VOIR le champ en paramètre de
// route. La distinction lecture/écriture se fait dans les controllers
// (PeutModifier), ici on ne bloque que l'accès pur et simple.
func ChampAutorise(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acteur := ActeurDepuisContexte(c)
		if acteur == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "authentification requise")
		}
		champNo := c.Params(param)
		if champNo == "" {
			return fiber.NewError(fiber.StatusBadRequest, "champ manquant dans l'URL")
		}
		if !acteur.PeutAccederChamp(champNo) {
			return fiber.NewError(fiber.StatusForbidden, "accès refusé à ce champ")
		}
		return c.Next()
	}
}
