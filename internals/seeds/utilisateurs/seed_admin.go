package utilisateurs

import (
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	utilisateurModel "repartition_backend/internals/features/utilisateurs/model"
	utilisateurService "repartition_backend/internals/features/utilisateurs/service"
)

// SeedAdminFromEnv : crée le compte administrateur initial si la table des
// utilisateurs est vide. Le mot de passe vient de ADMIN_PASSWORD, jamais
// d'un fichier versionné.
func SeedAdminFromEnv(db *gorm.DB) {
	var nb int64
	if err := db.Model(&utilisateurModel.UtilisateurModel{}).Count(&nb).Error; err != nil {
		log.Printf("❌ Compter les utilisateurs: %v", err)
		return
	}
	if nb > 0 {
		log.Println("ℹ️ Des utilisateurs existent déjà, aucun admin semé.")
		return
	}

	motDePasse := os.Getenv("ADMIN_PASSWORD")
	if motDePasse == "" {
		log.Println("⚠️ ADMIN_PASSWORD absent, compte admin non créé.")
		return
	}

	svc := utilisateurService.NewUtilisateurService(db, os.Getenv("JWT_SECRET"), 12*time.Hour)
	admin, err := svc.Creer(utilisateurService.DonneesUtilisateur{
		Nom:        "admin",
		MotDePasse: motDePasse,
		EstAdmin:   true,
	})
	if err != nil {
		log.Printf("❌ Création du compte admin échouée: %v", err)
		return
	}
	log.Printf("✅ Compte admin créé (%s)", admin.UtilisateurID)
}
