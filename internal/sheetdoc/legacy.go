package sheetdoc

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
)

// legacyDocument is the snake_case shape of the original desktop editor.
// Its *_spent_var and dp_allocated_var keys are bookkeeping and are ignored.
type legacyDocument struct {
	Name          Text          `json:"name"`
	Digimon       Text          `json:"digimon"`
	Type          Text          `json:"type"`
	Stage         Text          `json:"stage"`
	Size          Text          `json:"size"`
	Attribute     Text          `json:"attribute"`
	WoundBoxes    Int           `json:"wound_boxes"`
	TempBoxes     Int           `json:"temp_boxes"`
	Battery       Int           `json:"battery"`
	Stats         Bonuses       `json:"stats"`
	DerivedStats  Bonuses       `json:"derived_stats"`
	MiscStats     Bonuses       `json:"misc_stats"`
	Effects       legacyEffects `json:"effects"`
	Attacks       List[Attack]  `json:"attacks"`
	Qualities     Text          `json:"qualities"`
	BonusDPVar    *Int          `json:"bonus_dp_var"`
	BonusDPEarned Int           `json:"bonus_dp_earned"`
	QualitySpent  *Int          `json:"quality_spent_var"`
	QualityLegacy Int           `json:"quality_spent"`
}

type legacyEffect struct {
	Name     Text `json:"eff_name"`
	Potency  Int  `json:"potency"`
	Duration Int  `json:"duration"`
}

// legacyEffects accepts either a list of effects or a single effect object
type legacyEffects []legacyEffect

// UnmarshalJSON implements json.Unmarshaler. Values of any other shape
// decode as no effects.
func (e *legacyEffects) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*e = nil
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '[':
		var list []legacyEffect
		if err := json.Unmarshal(data, &list); err == nil {
			*e = list
		}
	case '{':
		var single legacyEffect
		if err := json.Unmarshal(data, &single); err == nil {
			*e = legacyEffects{single}
		}
	}
	return nil
}

// legacyMiscKeys are the misc_stats prefixes in MiscStat order
var legacyMiscKeys = [digimon.MiscStatCount]string{"move", "init", "range", "max_range"}

func (l *legacyDocument) toRecord() *digimon.Record {
	r := &digimon.Record{
		Name:               string(l.Name),
		DigimonSpeciesName: string(l.Digimon),
		Type:               string(l.Type),
		Stage:              digimon.ParseStage(string(l.Stage)),
		Size:               digimon.ParseSize(string(l.Size)),
		Attribute:          digimon.ParseAttribute(string(l.Attribute)),
		WoundBoxes:         int(l.WoundBoxes),
		TempBoxes:          int(l.TempBoxes),
		Battery:            int(l.Battery),
		Effects:            make([]digimon.Effect, 0, len(l.Effects)),
		Attacks:            make([]digimon.Attack, 0, len(l.Attacks)),
		QualitiesText:      string(l.Qualities),
		BonusDPEarned:      int(l.BonusDPEarned),
		QualitySpentDP:     int(l.QualityLegacy),
	}
	if l.BonusDPVar != nil {
		r.BonusDPEarned = int(*l.BonusDPVar)
	}
	if l.QualitySpent != nil {
		r.QualitySpentDP = int(*l.QualitySpent)
	}

	for _, stat := range digimon.AllPrimaryStats {
		r.Stats[stat] = digimon.StatAllocation{
			DP:    max(0, int(l.Stats[stat.Key()+"_dp"])),
			Bonus: int(l.Stats[stat.Key()+"_bonus"]),
		}
	}
	for _, res := range digimon.AllDerivedStats {
		r.DerivedBonuses[res] = int(l.DerivedStats[res.Key()+"_bonus"])
	}
	for _, m := range digimon.AllMiscStats {
		r.MiscBonuses[m] = int(l.MiscStats[legacyMiscKeys[m]+"_bonus"])
	}

	for _, e := range l.Effects {
		r.Effects = append(r.Effects, digimon.Effect{
			Name:     string(e.Name),
			Potency:  int(e.Potency),
			Duration: int(e.Duration),
		})
	}
	for _, a := range l.Attacks {
		r.Attacks = append(r.Attacks, a.toAttack())
	}

	r.Normalize()
	return r
}
