package digimon

// PrimaryStat indexes the five point-buy stats
type PrimaryStat int

// Primary stats
const (
	Accuracy PrimaryStat = iota
	Damage
	Dodge
	Armor
	Health

	PrimaryStatCount = 5
)

// DerivedStat indexes the four derived resources
type DerivedStat int

// Derived resources
const (
	BIT DerivedStat = iota
	DOS
	RAM
	CPU

	DerivedStatCount = 4
)

// MiscStat indexes the movement family
type MiscStat int

// Movement family stats
const (
	Movement MiscStat = iota
	Initiative
	Range
	MaxRange

	MiscStatCount = 4
)

// Stat keys as they appear in documents and field paths
var (
	primaryStatKeys = [PrimaryStatCount]string{"acc", "dam", "dod", "arm", "hp"}
	derivedStatKeys = [DerivedStatCount]string{"bit", "dos", "ram", "cpu"}
	miscStatKeys    = [MiscStatCount]string{"move", "init", "range", "maxRange"}
)

// AllPrimaryStats lists primary stats in sheet order
var AllPrimaryStats = [PrimaryStatCount]PrimaryStat{Accuracy, Damage, Dodge, Armor, Health}

// AllDerivedStats lists derived resources in sheet order
var AllDerivedStats = [DerivedStatCount]DerivedStat{BIT, DOS, RAM, CPU}

// AllMiscStats lists the movement family in sheet order
var AllMiscStats = [MiscStatCount]MiscStat{Movement, Initiative, Range, MaxRange}

// Key returns the short key, e.g. "acc"
func (p PrimaryStat) Key() string { return primaryStatKeys[p] }

// Key returns the short key, e.g. "bit"
func (d DerivedStat) Key() string { return derivedStatKeys[d] }

// Key returns the short key, e.g. "maxRange"
func (m MiscStat) Key() string { return miscStatKeys[m] }

// ParsePrimaryStat looks up a primary stat by key
func ParsePrimaryStat(key string) (PrimaryStat, bool) {
	for i, k := range primaryStatKeys {
		if k == key {
			return PrimaryStat(i), true
		}
	}
	return 0, false
}

// ParseDerivedStat looks up a derived resource by key
func ParseDerivedStat(key string) (DerivedStat, bool) {
	for i, k := range derivedStatKeys {
		if k == key {
			return DerivedStat(i), true
		}
	}
	return 0, false
}

// ParseMiscStat looks up a movement-family stat by key
func ParseMiscStat(key string) (MiscStat, bool) {
	for i, k := range miscStatKeys {
		if k == key {
			return MiscStat(i), true
		}
	}
	return 0, false
}
