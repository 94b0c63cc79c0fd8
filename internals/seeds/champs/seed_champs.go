package champs

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	champModel "repartition_backend/internals/features/champs/model"
)

type ChampSeed struct {
	ChampNo  string `json:"champ_no"`
	ChampNom string `json:"champ_nom"`
}

// SeedChampsFromJSON : insère les champs de référence absents. Les champs
// existants ne sont jamais retouchés, la liste sert seulement d'amorce.
func SeedChampsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lecture du fichier:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Lecture du fichier JSON impossible: %v", err)
	}

	var lignes []ChampSeed
	if err := json.Unmarshal(file, &lignes); err != nil {
		log.Fatalf("❌ Décodage JSON impossible: %v", err)
	}

	for _, l := range lignes {
		var existant champModel.ChampModel
		if err := db.Where("champ_no = ?", l.ChampNo).First(&existant).Error; err == nil {
			log.Printf("ℹ️ Champ %s déjà présent, on passe...", l.ChampNo)
			continue
		}

		nouveau := champModel.ChampModel{
			ChampNo:  l.ChampNo,
			ChampNom: l.ChampNom,
		}
		if err := db.Create(&nouveau).Error; err != nil {
			log.Printf("❌ Insertion du champ %s échouée: %v", l.ChampNo, err)
		} else {
			log.Printf("✅ Champ %s (%s) inséré", nouveau.ChampNo, nouveau.ChampNom)
		}
	}
}
