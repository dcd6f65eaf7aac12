package sheetdoc

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
)

// Format identifies which document shape a file uses
type Format int

// Document formats
const (
	FormatCurrent Format = iota
	// FormatLegacy is the snake_case shape written by the original desktop editor
	FormatLegacy
)

func (f Format) String() string {
	if f == FormatLegacy {
		return "legacy"
	}
	return "current"
}

const indent = "    "

// Encode writes the record as an indented document with a trailing newline.
// Unknown enum values are written as their defaults.
func Encode(r *digimon.Record) ([]byte, error) {
	if r == nil {
		return nil, errors.InvalidArgument("record cannot be nil")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(FromRecord(r)); err != nil {
		return nil, errors.Wrap(err, "failed to encode sheet document")
	}
	return buf.Bytes(), nil
}

// Decode reads either document format into a normalized record. Field
// values never cause an error; only data that is not a JSON object does.
func Decode(data []byte) (*digimon.Record, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}

	if format == FormatLegacy {
		var legacy legacyDocument
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed legacy sheet document")
		}
		return legacy.toRecord(), nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed sheet document")
	}
	return doc.ToRecord(), nil
}

// Keys that exist only in documents written by the original editor
var legacyMarkers = []string{"digimon", "wound_boxes", "temp_boxes", "derived_stats", "misc_stats", "qualities", "bonus_dp_var"}

// DetectFormat reports the document format, or an InvalidArgument error
// when data is not a JSON object.
func DetectFormat(data []byte) (Format, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		if err == nil {
			return FormatCurrent, errors.InvalidArgument("sheet document must be a JSON object")
		}
		return FormatCurrent, errors.WrapWithCode(err, errors.CodeInvalidArgument, "sheet document is not valid JSON")
	}

	for _, key := range legacyMarkers {
		if _, ok := top[key]; ok {
			return FormatLegacy, nil
		}
	}
	return FormatCurrent, nil
}

// FromRecord builds the document of a record
func FromRecord(r *digimon.Record) *Document {
	r = r.Clone()
	r.Normalize()

	doc := &Document{
		Name:               Text(r.Name),
		DigimonSpeciesName: Text(r.DigimonSpeciesName),
		Type:               Text(r.Type),
		Stage:              Text(r.Stage.String()),
		Size:               Text(r.Size.String()),
		Attribute:          Text(r.Attribute.String()),
		WoundBoxes:         Int(r.WoundBoxes),
		TempBoxes:          Int(r.TempBoxes),
		Battery:            Int(r.Battery),
		Effects:            make([]Effect, 0, len(r.Effects)),
		Attacks:            make([]Attack, 0, len(r.Attacks)),
		QualitiesText:      Text(r.QualitiesText),
		BonusDPEarned:      Int(r.BonusDPEarned),
		QualitySpentDP:     Int(r.QualitySpentDP),
	}

	stats := doc.Stats.entries()
	for _, stat := range digimon.AllPrimaryStats {
		stats[stat].DP = Int(r.Stats[stat].DP)
		stats[stat].Bonus = Int(r.Stats[stat].Bonus)
	}
	derived := doc.DerivedStats.entries()
	for _, res := range digimon.AllDerivedStats {
		derived[res].Bonus = Int(r.DerivedBonuses[res])
	}
	misc := doc.MiscStats.entries()
	for _, m := range digimon.AllMiscStats {
		misc[m].Bonus = Int(r.MiscBonuses[m])
	}

	for _, e := range r.Effects {
		doc.Effects = append(doc.Effects, Effect{
			Name:     Text(e.Name),
			Potency:  Int(e.Potency),
			Duration: Int(e.Duration),
		})
	}
	for _, a := range r.Attacks {
		tags := make([]Text, digimon.AttackTagCount)
		for i, tag := range a.Tags {
			tags[i] = Text(tag)
		}
		doc.Attacks = append(doc.Attacks, Attack{
			Name:     Text(a.Name),
			Accuracy: Int(a.Accuracy),
			Type:     Text(a.Type.String()),
			Damage:   Int(a.Damage),
			Tags:     tags,
		})
	}

	return doc
}

// ToRecord converts the document into a normalized record
func (d *Document) ToRecord() *digimon.Record {
	r := &digimon.Record{
		Name:               string(d.Name),
		DigimonSpeciesName: string(d.DigimonSpeciesName),
		Type:               string(d.Type),
		Stage:              digimon.ParseStage(string(d.Stage)),
		Size:               digimon.ParseSize(string(d.Size)),
		Attribute:          digimon.ParseAttribute(string(d.Attribute)),
		WoundBoxes:         int(d.WoundBoxes),
		TempBoxes:          int(d.TempBoxes),
		Battery:            int(d.Battery),
		Effects:            make([]digimon.Effect, 0, len(d.Effects)),
		Attacks:            make([]digimon.Attack, 0, len(d.Attacks)),
		QualitiesText:      string(d.QualitiesText),
		BonusDPEarned:      int(d.BonusDPEarned),
		QualitySpentDP:     int(d.QualitySpentDP),
	}

	stats := d.Stats.entries()
	for _, stat := range digimon.AllPrimaryStats {
		r.Stats[stat] = digimon.StatAllocation{DP: max(0, int(stats[stat].DP)), Bonus: int(stats[stat].Bonus)}
	}
	derived := d.DerivedStats.entries()
	for _, res := range digimon.AllDerivedStats {
		r.DerivedBonuses[res] = int(derived[res].Bonus)
	}
	misc := d.MiscStats.entries()
	for _, m := range digimon.AllMiscStats {
		r.MiscBonuses[m] = int(misc[m].Bonus)
	}

	for _, e := range d.Effects {
		r.Effects = append(r.Effects, digimon.Effect{
			Name:     string(e.Name),
			Potency:  int(e.Potency),
			Duration: int(e.Duration),
		})
	}
	for _, a := range d.Attacks {
		r.Attacks = append(r.Attacks, a.toAttack())
	}

	r.Normalize()
	return r
}

func (a Attack) toAttack() digimon.Attack {
	attack := digimon.Attack{
		Name:     string(a.Name),
		Accuracy: int(a.Accuracy),
		Type:     digimon.ParseAttackType(string(a.Type)),
		Damage:   int(a.Damage),
	}
	// Extra tags are dropped, missing ones stay empty
	for i := 0; i < len(a.Tags) && i < digimon.AttackTagCount; i++ {
		attack.Tags[i] = string(a.Tags[i])
	}
	return attack
}

func (s *StatsDoc) entries() [digimon.PrimaryStatCount]*StatEntry {
	return [digimon.PrimaryStatCount]*StatEntry{
		digimon.Accuracy: &s.Acc,
		digimon.Damage:   &s.Dam,
		digimon.Dodge:    &s.Dod,
		digimon.Armor:    &s.Arm,
		digimon.Health:   &s.HP,
	}
}

func (d *DerivedDoc) entries() [digimon.DerivedStatCount]*BonusEntry {
	return [digimon.DerivedStatCount]*BonusEntry{
		digimon.BIT: &d.BIT,
		digimon.DOS: &d.DOS,
		digimon.RAM: &d.RAM,
		digimon.CPU: &d.CPU,
	}
}

func (m *MiscDoc) entries() [digimon.MiscStatCount]*BonusEntry {
	return [digimon.MiscStatCount]*BonusEntry{
		digimon.Movement:   &m.Move,
		digimon.Initiative: &m.Init,
		digimon.Range:      &m.Range,
		digimon.MaxRange:   &m.MaxRange,
	}
}
