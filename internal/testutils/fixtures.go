package testutils

import (
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Takato Matsuki"

// CreateTestRecord creates an Adult Guilmon with a little of everything
// filled in
func CreateTestRecord() *digimon.Record {
	r := digimon.NewRecord()
	r.Name = TestCharacterName
	r.DigimonSpeciesName = "Growlmon"
	r.Type = "Dragon"
	r.Stage = digimon.StageAdult
	r.Size = digimon.SizeLarge
	r.Attribute = digimon.AttributeVirus
	r.Stats[digimon.Accuracy] = digimon.StatAllocation{DP: 3}
	r.Stats[digimon.Damage] = digimon.StatAllocation{DP: 4, Bonus: 1}
	r.Stats[digimon.Health] = digimon.StatAllocation{DP: 2}
	r.Effects[0] = digimon.Effect{Name: "Enraged", Potency: 1, Duration: 2}
	r.Attacks[0].Name = "Pyro Blaster"
	r.Attacks[0].Type = digimon.AttackRanged
	r.Attacks[0].Accuracy = 1
	r.Attacks[0].Damage = 2
	r.Attacks[0].Tags = [digimon.AttackTagCount]string{"Fire", "", ""}
	r.QualitiesText = "Digizoid Claws"
	r.QualitySpentDP = 2
	return r
}

// LegacyDocument is a sheet as saved by the original desktop editor
const LegacyDocument = `{
    "name": "Henry Wong",
    "digimon": "Terriermon",
    "stage": "Child",
    "size": "Small",
    "attribute": "Vaccine",
    "type": "Beast",
    "wound_boxes": 0,
    "temp_boxes": 0,
    "battery": 0,
    "stats": {
        "acc_dp": 2,
        "acc_bonus": 0,
        "dam_dp": 1,
        "dam_bonus": 0,
        "dod_dp": 3,
        "dod_bonus": 1,
        "arm_dp": 0,
        "arm_bonus": 0,
        "hp_dp": 1,
        "hp_bonus": 0
    },
    "derived_stats": {
        "bit_bonus": 0,
        "dos_bonus": 0,
        "ram_bonus": 1,
        "cpu_bonus": 0
    },
    "misc_stats": {
        "move_bonus": 1,
        "init_bonus": 0,
        "range_bonus": 0,
        "max_range_bonus": 0
    },
    "qualities": "Speed Demon",
    "attacks": [
        {
            "name": "Bunny Blast",
            "accuracy": 1,
            "type": "Ranged",
            "damage": 1,
            "tags": [
                "",
                "",
                ""
            ]
        }
    ],
    "effects": [],
    "bonus_dp_var": 0,
    "quality_spent_var": 3,
    "stat_spent_var": 7,
    "dp_spent_var": 10,
    "dp_allocated_var": 10
}
`
