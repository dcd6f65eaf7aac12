// Package sheetdoc encodes and decodes the persisted sheet document.
//
// The document holds only editable inputs. Computed bookkeeping such as
// totalDpSpent or maxDpAllocated is never written, and is ignored when a
// file carries it, so derived values always come from a fresh recompute.
package sheetdoc

// Extension is the default file extension of a sheet document
const Extension = ".json"

// Document is the current on-disk shape of a sheet
type Document struct {
	Name               Text         `json:"name"`
	DigimonSpeciesName Text         `json:"digimonSpeciesName"`
	Type               Text         `json:"type"`
	Stage              Text         `json:"stage"`
	Size               Text         `json:"size"`
	Attribute          Text         `json:"attribute"`
	WoundBoxes         Int          `json:"woundBoxes"`
	TempBoxes          Int          `json:"tempBoxes"`
	Battery            Int          `json:"battery"`
	Stats              StatsDoc     `json:"stats"`
	DerivedStats       DerivedDoc   `json:"derivedStats"`
	MiscStats          MiscDoc      `json:"miscStats"`
	Effects            List[Effect] `json:"effects"`
	Attacks            List[Attack] `json:"attacks"`
	QualitiesText      Text         `json:"qualitiesText"`
	BonusDPEarned      Int          `json:"bonusDpEarned"`
	QualitySpentDP     Int          `json:"qualitySpentDp"`
}

// StatsDoc maps each primary stat to its allocation
type StatsDoc struct {
	Acc StatEntry `json:"acc"`
	Dam StatEntry `json:"dam"`
	Dod StatEntry `json:"dod"`
	Arm StatEntry `json:"arm"`
	HP  StatEntry `json:"hp"`
}

// StatEntry is one primary stat's inputs
type StatEntry struct {
	DP    Int `json:"dp"`
	Bonus Int `json:"bonus"`
}

// DerivedDoc maps each derived resource to its bonus
type DerivedDoc struct {
	BIT BonusEntry `json:"bit"`
	DOS BonusEntry `json:"dos"`
	RAM BonusEntry `json:"ram"`
	CPU BonusEntry `json:"cpu"`
}

// MiscDoc maps each movement-family stat to its bonus
type MiscDoc struct {
	Move     BonusEntry `json:"move"`
	Init     BonusEntry `json:"init"`
	Range    BonusEntry `json:"range"`
	MaxRange BonusEntry `json:"maxRange"`
}

// BonusEntry is a quality-granted modifier
type BonusEntry struct {
	Bonus Int `json:"bonus"`
}

// Effect is one status effect row
type Effect struct {
	Name     Text `json:"name"`
	Potency  Int  `json:"potency"`
	Duration Int  `json:"duration"`
}

// Attack is one attack row. Tags always hold exactly three entries.
type Attack struct {
	Name     Text       `json:"name"`
	Accuracy Int        `json:"accuracy"`
	Type     Text       `json:"type"`
	Damage   Int        `json:"damage"`
	Tags     List[Text] `json:"tags"`
}

type (
	statsDoc   StatsDoc
	statEntry  StatEntry
	derivedDoc DerivedDoc
	miscDoc    MiscDoc
	bonusEntry BonusEntry
	effectDoc  Effect
	attackDoc  Attack
)

// UnmarshalJSON implements json.Unmarshaler
func (s *StatsDoc) UnmarshalJSON(data []byte) error { return decodeObject(data, (*statsDoc)(s)) }

// UnmarshalJSON implements json.Unmarshaler
func (s *StatEntry) UnmarshalJSON(data []byte) error { return decodeObject(data, (*statEntry)(s)) }

// UnmarshalJSON implements json.Unmarshaler
func (d *DerivedDoc) UnmarshalJSON(data []byte) error { return decodeObject(data, (*derivedDoc)(d)) }

// UnmarshalJSON implements json.Unmarshaler
func (m *MiscDoc) UnmarshalJSON(data []byte) error { return decodeObject(data, (*miscDoc)(m)) }

// UnmarshalJSON implements json.Unmarshaler
func (b *BonusEntry) UnmarshalJSON(data []byte) error { return decodeObject(data, (*bonusEntry)(b)) }

// UnmarshalJSON implements json.Unmarshaler
func (e *Effect) UnmarshalJSON(data []byte) error { return decodeObject(data, (*effectDoc)(e)) }

// UnmarshalJSON implements json.Unmarshaler
func (a *Attack) UnmarshalJSON(data []byte) error { return decodeObject(data, (*attackDoc)(a)) }
