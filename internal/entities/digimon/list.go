package digimon

import (
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
)

// AddAttack appends a blank melee attack and returns its index
func (r *Record) AddAttack() int {
	r.Attacks = append(r.Attacks, NewAttack(""))
	return len(r.Attacks) - 1
}

// RemoveAttack deletes the attack at index. The first attack is permanent.
func (r *Record) RemoveAttack(index int) error {
	if index == 0 {
		return errors.FailedPrecondition("the first attack cannot be removed")
	}
	if index < 0 || index >= len(r.Attacks) {
		return errors.OutOfRangef("attack index %d out of range [0, %d)", index, len(r.Attacks))
	}
	r.Attacks = append(r.Attacks[:index], r.Attacks[index+1:]...)
	return nil
}

// AddEffect appends a blank effect and returns its index
func (r *Record) AddEffect() int {
	r.Effects = append(r.Effects, Effect{})
	return len(r.Effects) - 1
}

// RemoveEffect deletes the effect at index
func (r *Record) RemoveEffect(index int) error {
	if index < 0 || index >= len(r.Effects) {
		return errors.OutOfRangef("effect index %d out of range [0, %d)", index, len(r.Effects))
	}
	r.Effects = append(r.Effects[:index], r.Effects[index+1:]...)
	return nil
}
