package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

const (
	// DieSize is the die every check pool uses
	DieSize = 6
	// SuccessThreshold is the lowest face that counts as a success
	SuccessThreshold = 5
	// MaxPool is the largest pool that can be rolled. Bonuses are free-form
	// so a stat total can be far beyond anything the rules produce.
	MaxPool = 100
)

// rollPool rolls size d6 and counts successes. An empty pool rolls nothing.
func (o *Orchestrator) rollPool(size int) ([]int, int, error) {
	if size <= 0 {
		return []int{}, 0, nil
	}
	if size > MaxPool {
		return nil, 0, errors.InvalidArgumentf("pool of %d dice exceeds the maximum of %d", size, MaxPool).
			WithMeta("pool", size)
	}

	rolled, err := o.diceRoller.RollN(size, DieSize)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to roll dice")
	}

	successes := 0
	for _, face := range rolled {
		if face >= SuccessThreshold {
			successes++
		}
	}
	return rolled, successes, nil
}

// RollCheck rolls a pool of d6 equal to a stat total plus a modifier
func (o *Orchestrator) RollCheck(ctx context.Context, input *sheetsvc.RollCheckInput) (*sheetsvc.RollCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}
	if input.Stat < 0 || int(input.Stat) >= digimon.PrimaryStatCount {
		return nil, errors.InvalidArgumentf("unknown stat %d", input.Stat)
	}

	o.mu.Lock()
	entry, err := o.lookup(input.SheetID)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	view := o.view(entry.sheet)
	o.mu.Unlock()

	pool := max(0, view.Derived.Stat(input.Stat)+input.Modifier)
	rolled, successes, err := o.rollPool(pool)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "rolled check",
		entityAttr(view.Sheet),
		"stat", input.Stat.Key(),
		"pool", pool,
		"successes", successes)

	return &sheetsvc.RollCheckOutput{
		Pool:      pool,
		Dice:      rolled,
		Successes: successes,
	}, nil
}

// RollAttack rolls accuracy for an attack and reports its flat damage
func (o *Orchestrator) RollAttack(ctx context.Context, input *sheetsvc.RollAttackInput) (*sheetsvc.RollAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	o.mu.Lock()
	entry, err := o.lookup(input.SheetID)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	view := o.view(entry.sheet)
	o.mu.Unlock()

	attacks := view.Sheet.Record.Attacks
	if input.AttackIndex < 0 || input.AttackIndex >= len(attacks) {
		return nil, errors.OutOfRangef("attack index %d out of range [0, %d)", input.AttackIndex, len(attacks))
	}
	attack := attacks[input.AttackIndex]

	pool := max(0, view.Derived.Stat(digimon.Accuracy)+attack.Accuracy)
	rolled, successes, err := o.rollPool(pool)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "rolled attack",
		entityAttr(view.Sheet),
		"attack", attack.Name,
		"pool", pool,
		"successes", successes)

	return &sheetsvc.RollAttackOutput{
		Attack:    attack,
		Pool:      pool,
		Dice:      rolled,
		Successes: successes,
		Damage:    view.Derived.Stat(digimon.Damage) + attack.Damage,
	}, nil
}
