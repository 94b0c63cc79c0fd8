// file: internals/features/commun/erreurs.go
package commun

import "errors"

/* =========================================================
   Erreurs métier (sentinelles)
   - les services retournent ces erreurs (wrap avec %w),
     les controllers les traduisent en statut HTTP.
   - tout le reste (connexion DB, etc.) remonte tel quel → 500.
   ========================================================= */

var (
	// ErrIntrouvable : l'entité demandée n'existe pas.
	ErrIntrouvable = errors.New("entité introuvable")

	// ErrQuotaDepasse : plus de groupes disponibles pour le cours.
	ErrQuotaDepasse = errors.New("plus de groupes disponibles pour ce cours")

	// ErrChampVerrouille : le champ est verrouillé pour les enseignants réels.
	ErrChampVerrouille = errors.New("le champ est verrouillé")

	// ErrDoublon : collision d'unicité (nom d'enseignant par année, code de cours, etc.).
	ErrDoublon = errors.New("l'entité existe déjà")

	// ErrReferenceUtilisee : suppression bloquée par des dépendances.
	ErrReferenceUtilisee = errors.New("impossible de supprimer : des références existent")

	// ErrValidation : données d'entrée invalides.
	ErrValidation = errors.New("données invalides")
)

// EstErreurMetier : vrai si l'erreur fait partie de la taxonomie attendue
// (jamais loguée comme erreur serveur).
func EstErreurMetier(err error) bool {
	switch {
	case errors.Is(err, ErrIntrouvable),
		errors.Is(err, ErrQuotaDepasse),
		errors.Is(err, ErrChampVerrouille),
		errors.Is(err, ErrDoublon),
		errors.Is(err, ErrReferenceUtilisee),
		errors.Is(err, ErrValidation):
		return true
	}
	return false
}
