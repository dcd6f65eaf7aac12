package digimon_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
)

type ApplyEditTestSuite struct {
	suite.Suite
	record *digimon.Record
}

func TestApplyEditSuite(t *testing.T) {
	suite.Run(t, new(ApplyEditTestSuite))
}

func (s *ApplyEditTestSuite) SetupTest() {
	s.record = digimon.NewRecord()
}

func (s *ApplyEditTestSuite) TestScalarFields() {
	s.Require().NoError(digimon.ApplyEdit(s.record, "name", "Taichi's partner"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "digimonSpeciesName", "Agumon"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "type", "Reptile"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "qualitiesText", "Fire Breath\nBrave"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "woundBoxes", "3"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "tempBoxes", "1"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "battery", "2"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "bonusDpEarned", "5"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "qualitySpentDp", "4"))

	s.Equal("Taichi's partner", s.record.Name)
	s.Equal("Agumon", s.record.DigimonSpeciesName)
	s.Equal("Reptile", s.record.Type)
	s.Equal("Fire Breath\nBrave", s.record.QualitiesText)
	s.Equal(3, s.record.WoundBoxes)
	s.Equal(1, s.record.TempBoxes)
	s.Equal(2, s.record.Battery)
	s.Equal(5, s.record.BonusDPEarned)
	s.Equal(4, s.record.QualitySpentDP)
}

func (s *ApplyEditTestSuite) TestEnumFieldsFallBack() {
	s.Require().NoError(digimon.ApplyEdit(s.record, "stage", "Perfect"))
	s.Equal(digimon.StagePerfect, s.record.Stage)

	s.Require().NoError(digimon.ApplyEdit(s.record, "stage", "Armor"))
	s.Equal(digimon.StageChild, s.record.Stage)

	s.Require().NoError(digimon.ApplyEdit(s.record, "size", "Huge"))
	s.Equal(digimon.SizeHuge, s.record.Size)

	s.Require().NoError(digimon.ApplyEdit(s.record, "attribute", "Virus"))
	s.Equal(digimon.AttributeVirus, s.record.Attribute)
}

func (s *ApplyEditTestSuite) TestStatFamilies() {
	s.Require().NoError(digimon.ApplyEdit(s.record, "stats.acc.dp", "4"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "stats.hp.bonus", "-2"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "derivedStats.ram.bonus", "1"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "miscStats.maxRange.bonus", "3"))

	s.Equal(4, s.record.Stats[digimon.Accuracy].DP)
	s.Equal(-2, s.record.Stats[digimon.Health].Bonus)
	s.Equal(1, s.record.DerivedBonuses[digimon.RAM])
	s.Equal(3, s.record.MiscBonuses[digimon.MaxRange])
}

func (s *ApplyEditTestSuite) TestMalformedNumbersDegradeToZero() {
	s.record.Stats[digimon.Damage].DP = 6

	s.Require().NoError(digimon.ApplyEdit(s.record, "stats.dam.dp", "six"))
	s.Equal(0, s.record.Stats[digimon.Damage].DP)

	s.Require().NoError(digimon.ApplyEdit(s.record, "stats.dam.dp", ""))
	s.Equal(0, s.record.Stats[digimon.Damage].DP)

	s.Require().NoError(digimon.ApplyEdit(s.record, "stats.dam.dp", "-3"))
	s.Equal(0, s.record.Stats[digimon.Damage].DP)
}

func (s *ApplyEditTestSuite) TestAttackAndEffectRows() {
	s.Require().NoError(digimon.ApplyEdit(s.record, "attacks.0.name", "Pepper Breath"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "attacks.0.accuracy", "2"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "attacks.0.damage", "3"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "attacks.0.type", "Ranged"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "attacks.0.tags.2", "Fire"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "effects.0.name", "Burn"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "effects.0.potency", "2"))
	s.Require().NoError(digimon.ApplyEdit(s.record, "effects.0.duration", "x"))

	attack := s.record.Attacks[0]
	s.Equal("Pepper Breath", attack.Name)
	s.Equal(2, attack.Accuracy)
	s.Equal(3, attack.Damage)
	s.Equal(digimon.AttackRanged, attack.Type)
	s.Equal([3]string{"", "", "Fire"}, attack.Tags)

	s.Equal(digimon.Effect{Name: "Burn", Potency: 2, Duration: 0}, s.record.Effects[0])
}

func (s *ApplyEditTestSuite) TestBadPathsLeaveRecordUntouched() {
	before := s.record.Clone()

	testCases := []struct {
		path  string
		check func(error) bool
	}{
		{"nickname", errors.IsInvalidArgument},
		{"stats.str.dp", errors.IsInvalidArgument},
		{"stats.acc", errors.IsInvalidArgument},
		{"stats.acc.total", errors.IsInvalidArgument},
		{"derivedStats.bit.dp", errors.IsInvalidArgument},
		{"miscStats.speed.bonus", errors.IsInvalidArgument},
		{"maxDpAllocated", errors.IsInvalidArgument},
		{"totalDpSpent", errors.IsInvalidArgument},
		{"allocatedStatDp", errors.IsInvalidArgument},
		{"attacks.one.name", errors.IsInvalidArgument},
		{"attacks.0.tags", errors.IsInvalidArgument},
		{"attacks.0.power", errors.IsInvalidArgument},
		{"attacks.3.name", errors.IsOutOfRange},
		{"attacks.0.tags.3", errors.IsOutOfRange},
		{"effects.-1.name", errors.IsOutOfRange},
	}

	for _, tc := range testCases {
		s.Run(tc.path, func() {
			err := digimon.ApplyEdit(s.record, tc.path, "5")
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error %v", err)
			s.Equal(before, s.record)
		})
	}
}
