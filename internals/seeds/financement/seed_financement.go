package financement

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	coursModel "repartition_backend/internals/features/cours/model"
)

type FinancementSeed struct {
	FinancementCode    string `json:"financement_code"`
	FinancementLibelle string `json:"financement_libelle"`
}

// SeedFinancementFromJSON : insère les types de financement absents.
func SeedFinancementFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lecture du fichier:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Lecture du fichier JSON impossible: %v", err)
	}

	var lignes []FinancementSeed
	if err := json.Unmarshal(file, &lignes); err != nil {
		log.Fatalf("❌ Décodage JSON impossible: %v", err)
	}

	for _, l := range lignes {
		var existant coursModel.TypeFinancementModel
		if err := db.Where("financement_code = ?", l.FinancementCode).First(&existant).Error; err == nil {
			log.Printf("ℹ️ Type de financement %s déjà présent, on passe...", l.FinancementCode)
			continue
		}

		nouveau := coursModel.TypeFinancementModel{
			FinancementCode:    l.FinancementCode,
			FinancementLibelle: l.FinancementLibelle,
		}
		if err := db.Create(&nouveau).Error; err != nil {
			log.Printf("❌ Insertion du type %s échouée: %v", l.FinancementCode, err)
		} else {
			log.Printf("✅ Type de financement %s inséré", nouveau.FinancementCode)
		}
	}
}
