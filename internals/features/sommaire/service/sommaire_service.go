// file: internals/features/sommaire/service/sommaire_service.go
package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attributionModel "repartition_backend/internals/features/attributions/model"
	champModel "repartition_backend/internals/features/champs/model"
	enseignantModel "repartition_backend/internals/features/enseignants/model"
)

// PeriodesTachePleine : charge de référence d'un temps plein. Les
// "périodes magiques" d'un champ mesurent l'écart entre ce que ses temps
// pleins ont choisi et cette charge de référence.
const PeriodesTachePleine = 24.0

// SommaireService : agrégats du tableau de bord. Lecture seule, aucun
// verrou : le sommaire reflète l'état au moment de la requête.
type SommaireService struct {
	DB *gorm.DB
}

func NewSommaireService(db *gorm.DB) *SommaireService { return &SommaireService{DB: db} }

// PeriodesChoisies : périodes d'un enseignant, séparées cours réguliers /
// autres tâches.
type PeriodesChoisies struct {
	PeriodesCours  float64 `json:"periodes_cours"`
	PeriodesAutres float64 `json:"periodes_autres"`
	TotalPeriodes  float64 `json:"total_periodes"`
}

// SommaireChamp : une ligne du tableau de bord.
type SommaireChamp struct {
	ChampNo          string  `json:"champ_no"`
	ChampNom         string  `json:"champ_nom"`
	EstVerrouille    bool    `json:"est_verrouille"`
	EstConfirme      bool    `json:"est_confirme"`
	NbEnseignantsTP  int     `json:"nb_enseignants_tp"`
	PeriodesChoisies float64 `json:"periodes_choisies_tp"`
	Moyenne          float64 `json:"moyenne"`
	PeriodesMagiques float64 `json:"periodes_magiques"`
}

// SommaireEtablissement : le tableau de bord complet pour une année.
type SommaireEtablissement struct {
	AnneeID                      uuid.UUID       `json:"annee_id"`
	Champs                       []SommaireChamp `json:"champs"`
	TotalEnseignantsTP           int             `json:"total_enseignants_tp"`
	TotalPeriodesChoisies        float64         `json:"total_periodes_choisies"`
	TotalPeriodesMagiques        float64         `json:"total_periodes_magiques"`
	MoyenneGenerale              float64         `json:"moyenne_generale"`
	MoyennePreliminaireConfirmee float64         `json:"moyenne_preliminaire_confirmee"`
}

// CalculerPeriodes : pli pur sur des attributions dont le cours est
// préchargé. Une attribution sans cours chargé compte pour zéro.
func CalculerPeriodes(attributions []attributionModel.AttributionModel) PeriodesChoisies {
	var p PeriodesChoisies
	for _, a := range attributions {
		if a.Cours == nil {
			continue
		}
		periodes := float64(a.AttributionNbGroupes) * a.Cours.CoursNbPeriodes
		if a.Cours.CoursEstAutre {
			p.PeriodesAutres += periodes
		} else {
			p.PeriodesCours += periodes
		}
	}
	p.TotalPeriodes = p.PeriodesCours + p.PeriodesAutres
	return p
}

// PeriodesEnseignant : la ventilation cours/autres d'un seul enseignant.
func (s *SommaireService) PeriodesEnseignant(enseignantID uuid.UUID) (PeriodesChoisies, error) {
	var attributions []attributionModel.AttributionModel
	err := s.DB.Preload("Cours").
		Where("attribution_enseignant_id = ?", enseignantID).
		Find(&attributions).Error
	if err != nil {
		return PeriodesChoisies{}, fmt.Errorf("attributions enseignant: %w", err)
	}
	return CalculerPeriodes(attributions), nil
}

// ligneChamp : accumulateur interne avant mise en forme.
type ligneChamp struct {
	nbTP     int
	periodes float64
}

// Etablissement : le tableau de bord d'une année. Champs sans enseignant
// temps plein : moyenne 0, périodes magiques 0 (pas −24×0 = 0 par hasard,
// mais bien un champ vide qu'on n'évalue pas).
func (s *SommaireService) Etablissement(anneeID uuid.UUID) (*SommaireEtablissement, error) {
	var champs []champModel.ChampModel
	if err := s.DB.Order("champ_no").Find(&champs).Error; err != nil {
		return nil, fmt.Errorf("lister champs: %w", err)
	}

	var statuts []champModel.ChampAnneeStatutModel
	if err := s.DB.Where("statut_annee_id = ?", anneeID).Find(&statuts).Error; err != nil {
		return nil, fmt.Errorf("lister statuts: %w", err)
	}
	statutParChamp := make(map[string]champModel.ChampAnneeStatutModel, len(statuts))
	for _, st := range statuts {
		statutParChamp[st.StatutChampNo] = st
	}

	var enseignants []enseignantModel.EnseignantModel
	if err := s.DB.Where("enseignant_annee_id = ?", anneeID).Find(&enseignants).Error; err != nil {
		return nil, fmt.Errorf("lister enseignants: %w", err)
	}

	// périodes choisies par enseignant, en une seule requête agrégée
	type periodesParEnseignant struct {
		EnseignantID uuid.UUID `gorm:"column:enseignant_id"`
		Periodes     float64   `gorm:"column:periodes"`
	}
	var sommes []periodesParEnseignant
	err := s.DB.Table("attributions_cours ac").
		Select(`ac.attribution_enseignant_id AS enseignant_id,
			COALESCE(SUM(ac.attribution_nb_groupes * c.cours_nb_periodes), 0) AS periodes`).
		Joins(`JOIN cours c
			ON c.cours_code = ac.attribution_code_cours
			AND c.cours_annee_id = ac.attribution_annee_cours`).
		Where("ac.attribution_annee_cours = ?", anneeID).
		Group("ac.attribution_enseignant_id").
		Scan(&sommes).Error
	if err != nil {
		return nil, fmt.Errorf("sommes de périodes: %w", err)
	}
	periodesPar := make(map[uuid.UUID]float64, len(sommes))
	for _, ligne := range sommes {
		periodesPar[ligne.EnseignantID] = ligne.Periodes
	}

	lignes := make(map[string]*ligneChamp, len(champs))
	for _, c := range champs {
		lignes[c.ChampNo] = &ligneChamp{}
	}
	for _, ens := range enseignants {
		ligne, ok := lignes[ens.EnseignantChampNo]
		if !ok {
			continue
		}
		if !ens.CompteVersMoyenne() {
			continue
		}
		ligne.nbTP++
		ligne.periodes += periodesPar[ens.EnseignantID]
	}

	sommaire := &SommaireEtablissement{AnneeID: anneeID}
	var periodesConfirmees float64
	var nbTPConfirmes int
	for _, c := range champs {
		ligne := lignes[c.ChampNo]
		st := statutParChamp[c.ChampNo]

		sc := SommaireChamp{
			ChampNo:          c.ChampNo,
			ChampNom:         c.ChampNom,
			EstVerrouille:    st.StatutEstVerrouille,
			EstConfirme:      st.StatutEstConfirme,
			NbEnseignantsTP:  ligne.nbTP,
			PeriodesChoisies: ligne.periodes,
		}
		if ligne.nbTP > 0 {
			sc.Moyenne = ligne.periodes / float64(ligne.nbTP)
			sc.PeriodesMagiques = ligne.periodes - PeriodesTachePleine*float64(ligne.nbTP)
		}
		sommaire.Champs = append(sommaire.Champs, sc)

		sommaire.TotalEnseignantsTP += ligne.nbTP
		sommaire.TotalPeriodesChoisies += ligne.periodes
		sommaire.TotalPeriodesMagiques += sc.PeriodesMagiques
		if st.StatutEstConfirme {
			periodesConfirmees += ligne.periodes
			nbTPConfirmes += ligne.nbTP
		}
	}

	if sommaire.TotalEnseignantsTP > 0 {
		sommaire.MoyenneGenerale = sommaire.TotalPeriodesChoisies / float64(sommaire.TotalEnseignantsTP)
	}
	if nbTPConfirmes > 0 {
		sommaire.MoyennePreliminaireConfirmee = periodesConfirmees / float64(nbTPConfirmes)
	}

	sort.Slice(sommaire.Champs, func(i, j int) bool {
		return sommaire.Champs[i].ChampNo < sommaire.Champs[j].ChampNo
	})
	return sommaire, nil
}
