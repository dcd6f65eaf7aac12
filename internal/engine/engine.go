package engine

import (
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
)

// DPPerStage is the point-buy budget granted by each stage above Baby
const DPPerStage = 10

// derivedDivisor divides a stat's base (stage + dp) into its derived resource
const derivedDivisor = 3

// Each derived resource is fed by one primary stat
var derivedSource = [digimon.DerivedStatCount]digimon.PrimaryStat{
	digimon.BIT: digimon.Accuracy,
	digimon.DOS: digimon.Damage,
	digimon.RAM: digimon.Dodge,
	digimon.CPU: digimon.Armor,
}

// (bit, dos, ram, cpu) bonuses by size. Gigantic and Colossal share a row.
var sizeTable = map[digimon.Size][digimon.DerivedStatCount]int{
	digimon.SizeSmall:    {1, 0, 2, 0},
	digimon.SizeMedium:   {1, 0, 1, 0},
	digimon.SizeLarge:    {1, 0, 0, 1},
	digimon.SizeHuge:     {0, 1, 0, 1},
	digimon.SizeGigantic: {0, 1, 0, 2},
	digimon.SizeColossal: {0, 1, 0, 2},
}

type engine struct{}

// Config configures the engine. The rules are fixed, so it is empty.
type Config struct{}

// Validate validates the Config
func (cfg *Config) Validate() error {
	return nil
}

// New creates the rules engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) Recompute(input *RecomputeInput) *DerivedStats {
	return Recompute(input)
}

func (e *engine) SizeContribution(size digimon.Size) [digimon.DerivedStatCount]int {
	return SizeContribution(size)
}

// SizeContribution returns the size row, using Medium for unknown sizes
func SizeContribution(size digimon.Size) [digimon.DerivedStatCount]int {
	return sizeTable[size.Normalize()]
}

// Recompute evaluates primary stats, then derived resources, then the
// movement family, which reads bit and ram.
func Recompute(input *RecomputeInput) *DerivedStats {
	if input == nil {
		input = InputFromRecord(nil)
	}

	stage := input.Stage.Ordinal()
	out := &DerivedStats{StageOrdinal: stage}

	for _, stat := range digimon.AllPrimaryStats {
		alloc := input.Stats[stat]
		out.Stats[stat] = stage + alloc.DP + alloc.Bonus
	}

	size := SizeContribution(input.Size)
	for _, res := range digimon.AllDerivedStats {
		src := derivedSource[res]
		base := out.Stats[src] - input.Stats[src].Bonus
		out.Derived[res] = max(1, floorDiv(base, derivedDivisor)) + input.DerivedBonuses[res] + size[res]
	}

	// The hp bonus is subtracted here on purpose: quality bonuses to hp do
	// not raise max health.
	hp := input.Stats[digimon.Health]
	out.MaxHealth = out.Stats[digimon.Health]*2 + (stage - 1) - hp.Bonus
	out.MaxBattery = stage - 1

	misc := input.MiscBonuses
	out.Misc[digimon.Movement] = stage + 1 + misc[digimon.Movement]
	out.Misc[digimon.Initiative] = out.Derived[digimon.RAM] + misc[digimon.Initiative]
	out.Misc[digimon.Range] = out.Derived[digimon.BIT] + 3 + misc[digimon.Range]
	out.Misc[digimon.MaxRange] = out.Misc[digimon.Range] + (stage - 1) + misc[digimon.MaxRange]

	for _, alloc := range input.Stats {
		out.StatDPSpent += alloc.DP
	}
	out.TotalDPSpent = out.StatDPSpent + input.QualitySpentDP
	out.MaxDPAllocated = (stage-1)*DPPerStage + input.BonusDPEarned
	out.Overspent = out.TotalDPSpent > out.MaxDPAllocated

	return out
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
