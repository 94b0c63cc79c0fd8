// file: internals/features/commun/acteur.go
package commun

import "github.com/google/uuid"

/* =========================================================
   Acteur : le principal qui exécute une opération.
   Porté explicitement du middleware JWT vers les controllers :
   pas d'état ambiant, la vérification reste testable sans Fiber.
   ========================================================= */

type Acteur struct {
	UtilisateurID  uuid.UUID
	NomUtilisateur string

	// EstAdmin prime sur tout. EstTableauSeulement donne un accès en
	// lecture aux sommaires et aux pages de champ.
	EstAdmin            bool
	EstTableauSeulement bool

	// ChampsAutorises : numéros de champ accessibles à un utilisateur standard.
	ChampsAutorises []string
}

// PeutAccederChamp : un admin ou un observateur de tableau voit tous les
// champs ; un utilisateur standard seulement ceux de sa liste.
func (a Acteur) PeutAccederChamp(champNo string) bool {
	if a.EstAdmin || a.EstTableauSeulement {
		return true
	}
	for _, c := range a.ChampsAutorises {
		if c == champNo {
			return true
		}
	}
	return false
}

// PeutModifier : les observateurs de tableau sont en lecture seule.
func (a Acteur) PeutModifier(champNo string) bool {
	if a.EstTableauSeulement && !a.EstAdmin {
		return false
	}
	return a.PeutAccederChamp(champNo)
}
