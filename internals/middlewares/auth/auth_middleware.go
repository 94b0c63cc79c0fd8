// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"repartition_backend/internals/configs"
	"repartition_backend/internals/features/commun"
	utilisateurService "repartition_backend/internals/features/utilisateurs/service"
)

const LocalActeur = "acteur"

// AuthMiddleware : vérifie le Bearer JWT et pose l'acteur complet dans
// les Locals. Les champs autorisés sont relus en base à chaque requête :
// retirer un accès prend effet immédiatement, pas à l'expiration du jeton.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	svc := utilisateurService.NewUtilisateurService(db, configs.JWTSecret, 0)
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vide")
			return fiber.NewError(fiber.StatusInternalServerError, "configuration JWT manquante")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("méthode de signature inattendue")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "jeton invalide")
		}

		if err := validerExpiration(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "jeton expiré")
		}

		sub, _ := claims["sub"].(string)
		utilisateurID, err := uuid.Parse(sub)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "jeton sans identifiant valide")
		}

		acteur, err := svc.ConstruireActeur(utilisateurID)
		if err != nil {
			if errors.Is(err, commun.ErrIntrouvable) {
				return fiber.NewError(fiber.StatusUnauthorized, "utilisateur inconnu")
			}
			log.Println("[ERROR] construire acteur:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "erreur interne")
		}

		c.Locals(LocalActeur, acteur)
		c.Locals("user_id", utilisateurID.String())
		return c.Next()
	}
}

// ActeurDepuisContexte : nil si la requête n'est pas authentifiée.
func ActeurDepuisContexte(c *fiber.Ctx) *commun.Acteur {
	acteur, _ := c.Locals(LocalActeur).(*commun.Acteur)
	return acteur
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get("Authorization"))
	if header == "" {
		if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
			return cookie, nil
		}
		return "", errors.New("en-tête Authorization manquant")
	}
	const prefixe = "Bearer "
	if !strings.HasPrefix(header, prefixe) {
		return "", errors.New("format Authorization invalide")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefixe))
	if token == "" {
		return "", errors.New("jeton vide")
	}
	return token, nil
}

// validerExpiration : exp obligatoire, avec une petite tolérance d'horloge.
func validerExpiration(claims jwt.MapClaims, tolerance time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("claim exp manquant")
	}
	expire := time.Unix(int64(exp), 0)
	if time.Now().After(expire.Add(tolerance)) {
		return errors.New("jeton expiré")
	}
	return nil
}
