// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
)

// RecordBuilder provides a fluent interface for building test records
type RecordBuilder struct {
	record *digimon.Record
}

// NewRecordBuilder creates a builder starting from a fresh sheet
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{record: digimon.NewRecord()}
}

// WithName sets the character name
func (b *RecordBuilder) WithName(name string) *RecordBuilder {
	b.record.Name = name
	return b
}

// WithSpecies sets the digimon species name
func (b *RecordBuilder) WithSpecies(species string) *RecordBuilder {
	b.record.DigimonSpeciesName = species
	return b
}

// WithStage sets the stage
func (b *RecordBuilder) WithStage(stage digimon.Stage) *RecordBuilder {
	b.record.Stage = stage
	return b
}

// WithSize sets the size
func (b *RecordBuilder) WithSize(size digimon.Size) *RecordBuilder {
	b.record.Size = size
	return b
}

// WithStat sets a primary stat's DP and bonus
func (b *RecordBuilder) WithStat(stat digimon.PrimaryStat, dp, bonus int) *RecordBuilder {
	b.record.Stats[stat] = digimon.StatAllocation{DP: dp, Bonus: bonus}
	return b
}

// WithDerivedBonus sets a derived resource bonus
func (b *RecordBuilder) WithDerivedBonus(stat digimon.DerivedStat, bonus int) *RecordBuilder {
	b.record.DerivedBonuses[stat] = bonus
	return b
}

// WithMiscBonus sets a movement-family bonus
func (b *RecordBuilder) WithMiscBonus(stat digimon.MiscStat, bonus int) *RecordBuilder {
	b.record.MiscBonuses[stat] = bonus
	return b
}

// WithAttack appends an attack
func (b *RecordBuilder) WithAttack(attack digimon.Attack) *RecordBuilder {
	b.record.Attacks = append(b.record.Attacks, attack)
	return b
}

// WithEffects replaces the effect list
func (b *RecordBuilder) WithEffects(effects ...digimon.Effect) *RecordBuilder {
	b.record.Effects = effects
	return b
}

// WithDPBudget sets the bonus DP earned and DP spent on qualities
func (b *RecordBuilder) WithDPBudget(bonusEarned, qualitySpent int) *RecordBuilder {
	b.record.BonusDPEarned = bonusEarned
	b.record.QualitySpentDP = qualitySpent
	return b
}

// Build returns the built record
func (b *RecordBuilder) Build() *digimon.Record {
	return b.record
}
