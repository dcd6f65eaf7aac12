package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

// edit runs fn against a sheet's record and marks the sheet dirty when fn
// succeeds. A failed edit leaves the record as it was.
func (o *Orchestrator) edit(sheetID string, fn func(r *digimon.Record) error) (sheetsvc.SheetView, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry, err := o.lookup(sheetID)
	if err != nil {
		return sheetsvc.SheetView{}, err
	}

	if err := fn(entry.sheet.Record); err != nil {
		return sheetsvc.SheetView{}, err
	}
	entry.sheet.Dirty = true
	entry.revision++

	return o.view(entry.sheet), nil
}

// ApplyEdit sets one field from its text value
func (o *Orchestrator) ApplyEdit(ctx context.Context, input *sheetsvc.ApplyEditInput) (*sheetsvc.ApplyEditOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	view, err := o.edit(input.SheetID, func(r *digimon.Record) error {
		return digimon.ApplyEdit(r, input.Path, input.Value)
	})
	if err != nil {
		slog.DebugContext(ctx, "edit rejected", "sheet_id", input.SheetID, "path", input.Path, "error", err)
		return nil, err
	}
	return &sheetsvc.ApplyEditOutput{SheetView: view}, nil
}

// AddAttack appends a blank attack row
func (o *Orchestrator) AddAttack(_ context.Context, input *sheetsvc.AddAttackInput) (*sheetsvc.AddAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	index := 0
	view, err := o.edit(input.SheetID, func(r *digimon.Record) error {
		index = r.AddAttack()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sheetsvc.AddAttackOutput{SheetView: view, Index: index}, nil
}

// RemoveAttack removes an attack row other than the first
func (o *Orchestrator) RemoveAttack(_ context.Context, input *sheetsvc.RemoveAttackInput) (*sheetsvc.RemoveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	view, err := o.edit(input.SheetID, func(r *digimon.Record) error {
		return r.RemoveAttack(input.Index)
	})
	if err != nil {
		return nil, err
	}
	return &sheetsvc.RemoveAttackOutput{SheetView: view}, nil
}

// AddEffect appends a blank effect row
func (o *Orchestrator) AddEffect(_ context.Context, input *sheetsvc.AddEffectInput) (*sheetsvc.AddEffectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	index := 0
	view, err := o.edit(input.SheetID, func(r *digimon.Record) error {
		index = r.AddEffect()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sheetsvc.AddEffectOutput{SheetView: view, Index: index}, nil
}

// RemoveEffect removes an effect row
func (o *Orchestrator) RemoveEffect(_ context.Context, input *sheetsvc.RemoveEffectInput) (*sheetsvc.RemoveEffectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	view, err := o.edit(input.SheetID, func(r *digimon.Record) error {
		return r.RemoveEffect(input.Index)
	})
	if err != nil {
		return nil, err
	}
	return &sheetsvc.RemoveEffectOutput{SheetView: view}, nil
}
