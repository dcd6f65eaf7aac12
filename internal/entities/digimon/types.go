// Package digimon implements the Digimon 2e character sheet entities
package digimon

import "strings"

// Stage is the evolutionary tier of a digimon. Its ordinal (1-5) scales
// most derived values.
type Stage int

// Stages in ordinal order
const (
	StageBaby     Stage = 1
	StageChild    Stage = 2
	StageAdult    Stage = 3
	StagePerfect  Stage = 4
	StageUltimate Stage = 5

	// DefaultStage replaces any unrecognized stage
	DefaultStage = StageChild
)

var stageNames = map[Stage]string{
	StageBaby:     "Baby",
	StageChild:    "Child",
	StageAdult:    "Adult",
	StagePerfect:  "Perfect",
	StageUltimate: "Ultimate",
}

// AllStages lists stages in ordinal order
var AllStages = []Stage{StageBaby, StageChild, StageAdult, StagePerfect, StageUltimate}

// Valid reports whether s is one of the five stages
func (s Stage) Valid() bool {
	_, ok := stageNames[s]
	return ok
}

// Normalize returns s, or DefaultStage when s is not a known stage
func (s Stage) Normalize() Stage {
	if !s.Valid() {
		return DefaultStage
	}
	return s
}

// Ordinal returns the 1-5 ordinal of the stage, defaulting like Normalize
func (s Stage) Ordinal() int {
	return int(s.Normalize())
}

func (s Stage) String() string {
	return stageNames[s.Normalize()]
}

// ParseStage matches a stage name case-insensitively, falling back to
// DefaultStage.
func ParseStage(value string) Stage {
	for _, s := range AllStages {
		if strings.EqualFold(strings.TrimSpace(value), stageNames[s]) {
			return s
		}
	}
	return DefaultStage
}

// Size is the physical scale of a digimon, ordinal 1-6
type Size int

// Sizes in ordinal order
const (
	SizeSmall    Size = 1
	SizeMedium   Size = 2
	SizeLarge    Size = 3
	SizeHuge     Size = 4
	SizeGigantic Size = 5
	SizeColossal Size = 6

	// DefaultSize replaces any unrecognized size
	DefaultSize = SizeMedium
)

var sizeNames = map[Size]string{
	SizeSmall:    "Small",
	SizeMedium:   "Medium",
	SizeLarge:    "Large",
	SizeHuge:     "Huge",
	SizeGigantic: "Gigantic",
	SizeColossal: "Colossal",
}

// AllSizes lists sizes in ordinal order
var AllSizes = []Size{SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGigantic, SizeColossal}

// Valid reports whether s is one of the six sizes
func (s Size) Valid() bool {
	_, ok := sizeNames[s]
	return ok
}

// Normalize returns s, or DefaultSize when s is not a known size
func (s Size) Normalize() Size {
	if !s.Valid() {
		return DefaultSize
	}
	return s
}

func (s Size) String() string {
	return sizeNames[s.Normalize()]
}

// ParseSize matches a size name case-insensitively, falling back to
// DefaultSize.
func ParseSize(value string) Size {
	for _, s := range AllSizes {
		if strings.EqualFold(strings.TrimSpace(value), sizeNames[s]) {
			return s
		}
	}
	return DefaultSize
}

// Attribute is stored on the sheet but takes no part in calculation
type Attribute int

// Attributes
const (
	AttributeVaccine Attribute = 1
	AttributeData    Attribute = 2
	AttributeVirus   Attribute = 3

	DefaultAttribute = AttributeVaccine
)

var attributeNames = map[Attribute]string{
	AttributeVaccine: "Vaccine",
	AttributeData:    "Data",
	AttributeVirus:   "Virus",
}

// AllAttributes lists the attributes in display order
var AllAttributes = []Attribute{AttributeVaccine, AttributeData, AttributeVirus}

func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return attributeNames[DefaultAttribute]
}

// ParseAttribute matches an attribute name case-insensitively, falling back
// to DefaultAttribute.
func ParseAttribute(value string) Attribute {
	for _, a := range AllAttributes {
		if strings.EqualFold(strings.TrimSpace(value), attributeNames[a]) {
			return a
		}
	}
	return DefaultAttribute
}

// AttackType classifies an attack
type AttackType int

// Attack types
const (
	AttackMelee   AttackType = 1
	AttackRanged  AttackType = 2
	AttackSupport AttackType = 3

	DefaultAttackType = AttackMelee
)

var attackTypeNames = map[AttackType]string{
	AttackMelee:   "Melee",
	AttackRanged:  "Ranged",
	AttackSupport: "Support",
}

// AllAttackTypes lists attack types in display order
var AllAttackTypes = []AttackType{AttackMelee, AttackRanged, AttackSupport}

func (t AttackType) String() string {
	if name, ok := attackTypeNames[t]; ok {
		return name
	}
	return attackTypeNames[DefaultAttackType]
}

// ParseAttackType matches an attack type name case-insensitively, falling
// back to DefaultAttackType.
func ParseAttackType(value string) AttackType {
	for _, t := range AllAttackTypes {
		if strings.EqualFold(strings.TrimSpace(value), attackTypeNames[t]) {
			return t
		}
	}
	return DefaultAttackType
}
