package digimon

// AttackTagCount is the fixed number of tag slots on an attack
const AttackTagCount = 3

// DefaultAttackName names the attack every new record starts with
const DefaultAttackName = "Signature Move"

// Record is the persisted character sheet.
// NOTE: This is a data-only struct. Stat totals, derived resources and DP
// bookkeeping are produced by the engine and never stored here.
type Record struct {
	Name               string
	DigimonSpeciesName string
	Type               string
	Stage              Stage
	Size               Size
	Attribute          Attribute

	WoundBoxes int
	TempBoxes  int
	Battery    int

	Stats          [PrimaryStatCount]StatAllocation
	DerivedBonuses [DerivedStatCount]int
	MiscBonuses    [MiscStatCount]int

	Effects []Effect
	Attacks []Attack

	QualitiesText  string
	BonusDPEarned  int
	QualitySpentDP int
}

// StatAllocation is the editable input of one primary stat
type StatAllocation struct {
	DP    int
	Bonus int
}

// Effect is a status effect row. Order is display order only.
type Effect struct {
	Name     string
	Potency  int
	Duration int
}

// Attack is an attack row
type Attack struct {
	Name     string
	Accuracy int
	Type     AttackType
	Damage   int
	Tags     [AttackTagCount]string
}

// NewRecord returns the record of a fresh sheet: a Child, Medium, Vaccine
// digimon with the default attack and one blank effect row.
func NewRecord() *Record {
	return &Record{
		Stage:     DefaultStage,
		Size:      DefaultSize,
		Attribute: DefaultAttribute,
		Effects:   []Effect{{}},
		Attacks:   []Attack{NewAttack(DefaultAttackName)},
	}
}

// NewAttack returns a melee attack with empty tags
func NewAttack(name string) Attack {
	return Attack{Name: name, Type: DefaultAttackType}
}

// Clone returns a deep copy of the record
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	if r.Effects != nil {
		c.Effects = append([]Effect(nil), r.Effects...)
	}
	if r.Attacks != nil {
		c.Attacks = append([]Attack(nil), r.Attacks...)
	}
	return &c
}

// Normalize replaces unrecognized enum values with their defaults and makes
// sure at least one attack exists.
func (r *Record) Normalize() {
	r.Stage = r.Stage.Normalize()
	r.Size = r.Size.Normalize()
	r.Attribute = ParseAttribute(r.Attribute.String())
	for i := range r.Attacks {
		r.Attacks[i].Type = ParseAttackType(r.Attacks[i].Type.String())
	}
	if len(r.Attacks) == 0 {
		r.Attacks = []Attack{NewAttack(DefaultAttackName)}
	}
	if r.Effects == nil {
		r.Effects = []Effect{}
	}
}

// StatDPSpent sums the DP allocated across the primary stats
func (r *Record) StatDPSpent() int {
	total := 0
	for _, s := range r.Stats {
		total += s.DP
	}
	return total
}
