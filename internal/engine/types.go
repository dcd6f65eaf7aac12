package engine

import (
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
)

// RecomputeInput is the subset of a record the engine reads
type RecomputeInput struct {
	Stage          digimon.Stage
	Size           digimon.Size
	Stats          [digimon.PrimaryStatCount]digimon.StatAllocation
	DerivedBonuses [digimon.DerivedStatCount]int
	MiscBonuses    [digimon.MiscStatCount]int
	BonusDPEarned  int
	QualitySpentDP int
}

// InputFromRecord snapshots the calculation inputs of a record
func InputFromRecord(r *digimon.Record) *RecomputeInput {
	if r == nil {
		return &RecomputeInput{Stage: digimon.DefaultStage, Size: digimon.DefaultSize}
	}
	return &RecomputeInput{
		Stage:          r.Stage,
		Size:           r.Size,
		Stats:          r.Stats,
		DerivedBonuses: r.DerivedBonuses,
		MiscBonuses:    r.MiscBonuses,
		BonusDPEarned:  r.BonusDPEarned,
		QualitySpentDP: r.QualitySpentDP,
	}
}

// DerivedStats is a complete snapshot of the engine's outputs
type DerivedStats struct {
	StageOrdinal int

	// Primary stat totals indexed by digimon.PrimaryStat
	Stats [digimon.PrimaryStatCount]int
	// Derived resources indexed by digimon.DerivedStat
	Derived [digimon.DerivedStatCount]int
	// Movement family indexed by digimon.MiscStat
	Misc [digimon.MiscStatCount]int

	MaxHealth  int
	MaxBattery int

	// DP bookkeeping. Overspent is advisory and never blocks anything.
	StatDPSpent    int
	TotalDPSpent   int
	MaxDPAllocated int
	Overspent      bool
}

// Stat returns a primary stat total
func (d *DerivedStats) Stat(stat digimon.PrimaryStat) int {
	return d.Stats[stat]
}

// Resource returns a derived resource value
func (d *DerivedStats) Resource(stat digimon.DerivedStat) int {
	return d.Derived[stat]
}

// Movement returns a movement-family value
func (d *DerivedStats) Movement(stat digimon.MiscStat) int {
	return d.Misc[stat]
}
