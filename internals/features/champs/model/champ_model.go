// file: internals/features/champs/model/champ_model.go
package model

// Champ : donnée de référence statique (ex. "06" → Mathématiques).
// Pas de timestamps : la table est alimentée par seed/migration.
type ChampModel struct {
	ChampNo  string `gorm:"column:champ_no;type:varchar(10);primaryKey" json:"champ_no"`
	ChampNom string `gorm:"column:champ_nom;type:varchar(120);not null" json:"champ_nom"`
}

func (ChampModel) TableName() string { return "champs" }
