package digimon

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/digimon-sheet/internal/errors"
)

// Field paths accepted by ApplyEdit
const (
	FieldName               = "name"
	FieldDigimonSpeciesName = "digimonSpeciesName"
	FieldType               = "type"
	FieldStage              = "stage"
	FieldSize               = "size"
	FieldAttribute          = "attribute"
	FieldWoundBoxes         = "woundBoxes"
	FieldTempBoxes          = "tempBoxes"
	FieldBattery            = "battery"
	FieldQualitiesText      = "qualitiesText"
	FieldBonusDPEarned      = "bonusDpEarned"
	FieldQualitySpentDP     = "qualitySpentDp"
	FieldStats              = "stats"
	FieldDerivedStats       = "derivedStats"
	FieldMiscStats          = "miscStats"
	FieldAttacks            = "attacks"
	FieldEffects            = "effects"
)

// Engine outputs that look like fields but can never be edited
var readOnlyFields = map[string]bool{
	"allocatedStatDp": true,
	"statDpSpent":     true,
	"totalDpSpent":    true,
	"maxDpAllocated":  true,
	"maxHealth":       true,
	"maxBattery":      true,
}

// ApplyEdit applies one UI edit to the record. value is the raw text of the
// edited widget: numbers parse leniently and enum names fall back to their
// defaults. Only a bad path is an error, and it leaves the record unchanged.
func ApplyEdit(r *Record, path, value string) error {
	parts := strings.Split(path, ".")
	head := parts[0]

	if readOnlyFields[head] {
		return errors.InvalidArgumentf("field %q is computed and cannot be edited", path).
			WithMeta("path", path)
	}

	if len(parts) == 1 {
		return applyScalar(r, path, value)
	}

	switch head {
	case FieldStats:
		return applyStat(r, path, parts[1:], value)
	case FieldDerivedStats:
		if len(parts) != 3 || parts[2] != "bonus" {
			return unknownField(path)
		}
		d, ok := ParseDerivedStat(parts[1])
		if !ok {
			return unknownField(path)
		}
		r.DerivedBonuses[d] = ParseInt(value)
		return nil
	case FieldMiscStats:
		if len(parts) != 3 || parts[2] != "bonus" {
			return unknownField(path)
		}
		m, ok := ParseMiscStat(parts[1])
		if !ok {
			return unknownField(path)
		}
		r.MiscBonuses[m] = ParseInt(value)
		return nil
	case FieldAttacks:
		return applyAttack(r, path, parts[1:], value)
	case FieldEffects:
		return applyEffect(r, path, parts[1:], value)
	}

	return unknownField(path)
}

func applyScalar(r *Record, path, value string) error {
	switch path {
	case FieldName:
		r.Name = value
	case FieldDigimonSpeciesName:
		r.DigimonSpeciesName = value
	case FieldType:
		r.Type = value
	case FieldQualitiesText:
		r.QualitiesText = value
	case FieldStage:
		r.Stage = ParseStage(value)
	case FieldSize:
		r.Size = ParseSize(value)
	case FieldAttribute:
		r.Attribute = ParseAttribute(value)
	case FieldWoundBoxes:
		r.WoundBoxes = ParseInt(value)
	case FieldTempBoxes:
		r.TempBoxes = ParseInt(value)
	case FieldBattery:
		r.Battery = ParseInt(value)
	case FieldBonusDPEarned:
		r.BonusDPEarned = ParseInt(value)
	case FieldQualitySpentDP:
		r.QualitySpentDP = ParseInt(value)
	default:
		return unknownField(path)
	}
	return nil
}

func applyStat(r *Record, path string, rest []string, value string) error {
	if len(rest) != 2 {
		return unknownField(path)
	}
	stat, ok := ParsePrimaryStat(rest[0])
	if !ok {
		return unknownField(path)
	}
	switch rest[1] {
	case "dp":
		r.Stats[stat].DP = ParseDP(value)
	case "bonus":
		r.Stats[stat].Bonus = ParseInt(value)
	default:
		return unknownField(path)
	}
	return nil
}

func applyAttack(r *Record, path string, rest []string, value string) error {
	if len(rest) < 2 {
		return unknownField(path)
	}
	i, err := listIndex(path, rest[0], len(r.Attacks))
	if err != nil {
		return err
	}
	attack := &r.Attacks[i]

	switch rest[1] {
	case "name":
		if len(rest) != 2 {
			return unknownField(path)
		}
		attack.Name = value
	case "accuracy":
		if len(rest) != 2 {
			return unknownField(path)
		}
		attack.Accuracy = ParseInt(value)
	case "damage":
		if len(rest) != 2 {
			return unknownField(path)
		}
		attack.Damage = ParseInt(value)
	case "type":
		if len(rest) != 2 {
			return unknownField(path)
		}
		attack.Type = ParseAttackType(value)
	case "tags":
		if len(rest) != 3 {
			return unknownField(path)
		}
		j, err := listIndex(path, rest[2], AttackTagCount)
		if err != nil {
			return err
		}
		attack.Tags[j] = value
	default:
		return unknownField(path)
	}
	return nil
}

func applyEffect(r *Record, path string, rest []string, value string) error {
	if len(rest) != 2 {
		return unknownField(path)
	}
	i, err := listIndex(path, rest[0], len(r.Effects))
	if err != nil {
		return err
	}
	effect := &r.Effects[i]

	switch rest[1] {
	case "name":
		effect.Name = value
	case "potency":
		effect.Potency = ParseInt(value)
	case "duration":
		effect.Duration = ParseInt(value)
	default:
		return unknownField(path)
	}
	return nil
}

func listIndex(path, segment string, length int) (int, error) {
	i, err := strconv.Atoi(segment)
	if err != nil {
		return 0, unknownField(path)
	}
	if i < 0 || i >= length {
		return 0, errors.OutOfRangef("index %d in %q out of range [0, %d)", i, path, length).
			WithMeta("path", path)
	}
	return i, nil
}

func unknownField(path string) error {
	return errors.InvalidArgumentf("unknown field %q", path).WithMeta("path", path)
}
