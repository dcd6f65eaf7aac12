// Package sheet defines the interface for sheet editing operations
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetsvcmock github.com/KirkDiggler/digimon-sheet/internal/services/sheet Service

import (
	"context"

	"github.com/KirkDiggler/digimon-sheet/internal/engine"
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	sheetrepo "github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet"
)

// Service defines the interface for an editing session over any number of
// open sheets. Open sheets share no state.
type Service interface {
	// Sheet lifecycle
	NewSheet(ctx context.Context, input *NewSheetInput) (*NewSheetOutput, error)
	OpenSheet(ctx context.Context, input *OpenSheetInput) (*OpenSheetOutput, error)
	SaveSheet(ctx context.Context, input *SaveSheetInput) (*SaveSheetOutput, error)
	SaveSheetAs(ctx context.Context, input *SaveSheetAsInput) (*SaveSheetAsOutput, error)
	CloseSheet(ctx context.Context, input *CloseSheetInput) (*CloseSheetOutput, error)
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	ListSheets(ctx context.Context, input *ListSheetsInput) (*ListSheetsOutput, error)

	// Edits. Every edit recomputes and returns the derived stats.
	ApplyEdit(ctx context.Context, input *ApplyEditInput) (*ApplyEditOutput, error)
	AddAttack(ctx context.Context, input *AddAttackInput) (*AddAttackOutput, error)
	RemoveAttack(ctx context.Context, input *RemoveAttackInput) (*RemoveAttackOutput, error)
	AddEffect(ctx context.Context, input *AddEffectInput) (*AddEffectOutput, error)
	RemoveEffect(ctx context.Context, input *RemoveEffectInput) (*RemoveEffectOutput, error)

	// Dice checks against the recomputed stats
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error)
}

// SheetView is a snapshot of an open sheet with its derived stats. The
// sheet is a copy; changing it does not affect the session.
type SheetView struct {
	Sheet   *digimon.Sheet
	Derived *engine.DerivedStats
}

// Sheet lifecycle types

// NewSheetInput defines the request for creating a sheet
type NewSheetInput struct {
	// Record optionally seeds the sheet. A fresh record is used when nil.
	Record *digimon.Record
}

// NewSheetOutput defines the response for creating a sheet
type NewSheetOutput struct {
	SheetView
}

// OpenSheetInput defines the request for opening a stored sheet
type OpenSheetInput struct {
	Location string
}

// OpenSheetOutput defines the response for opening a stored sheet
type OpenSheetOutput struct {
	SheetView
}

// SaveSheetInput defines the request for saving a sheet to its location
type SaveSheetInput struct {
	SheetID string
}

// SaveSheetOutput defines the response for saving a sheet
type SaveSheetOutput struct {
	SheetView
}

// SaveSheetAsInput defines the request for saving a sheet to a new location
type SaveSheetAsInput struct {
	SheetID  string
	Location string
}

// SaveSheetAsOutput defines the response for saving a sheet to a new location
type SaveSheetAsOutput struct {
	SheetView
}

// CloseSheetInput defines the request for closing a sheet
type CloseSheetInput struct {
	SheetID string
}

// CloseSheetOutput defines the response for closing a sheet
type CloseSheetOutput struct {
	// Discarded reports whether the sheet had unsaved changes
	Discarded bool
}

// GetSheetInput defines the request for reading an open sheet
type GetSheetInput struct {
	SheetID string
}

// GetSheetOutput defines the response for reading an open sheet
type GetSheetOutput struct {
	SheetView
}

// ListSheetsInput defines the request for listing sheets
type ListSheetsInput struct {
	// Stored lists the repository's sheets instead of the open ones
	Stored bool
}

// ListSheetsOutput defines the response for listing sheets
type ListSheetsOutput struct {
	// Open sheets in the order they were opened
	Open []*digimon.Sheet
	// Stored sheets, filled only when requested
	Stored []sheetrepo.Entry
}

// Edit types

// ApplyEditInput defines the request for editing one field
type ApplyEditInput struct {
	SheetID string
	// Path addresses the field, for example "stage" or "stats.acc.dp"
	Path  string
	Value string
}

// ApplyEditOutput defines the response for editing one field
type ApplyEditOutput struct {
	SheetView
}

// AddAttackInput defines the request for adding an attack row
type AddAttackInput struct {
	SheetID string
}

// AddAttackOutput defines the response for adding an attack row
type AddAttackOutput struct {
	SheetView
	Index int
}

// RemoveAttackInput defines the request for removing an attack row
type RemoveAttackInput struct {
	SheetID string
	Index   int
}

// RemoveAttackOutput defines the response for removing an attack row
type RemoveAttackOutput struct {
	SheetView
}

// AddEffectInput defines the request for adding an effect row
type AddEffectInput struct {
	SheetID string
}

// AddEffectOutput defines the response for adding an effect row
type AddEffectOutput struct {
	SheetView
	Index int
}

// RemoveEffectInput defines the request for removing an effect row
type RemoveEffectInput struct {
	SheetID string
	Index   int
}

// RemoveEffectOutput defines the response for removing an effect row
type RemoveEffectOutput struct {
	SheetView
}

// Dice types

// RollCheckInput defines the request for a stat check
type RollCheckInput struct {
	SheetID  string
	Stat     digimon.PrimaryStat
	Modifier int
}

// RollCheckOutput defines the response for a stat check
type RollCheckOutput struct {
	// Pool is the number of d6 rolled
	Pool      int
	Dice      []int
	Successes int
}

// RollAttackInput defines the request for an attack roll
type RollAttackInput struct {
	SheetID     string
	AttackIndex int
}

// RollAttackOutput defines the response for an attack roll
type RollAttackOutput struct {
	Attack    digimon.Attack
	Pool      int
	Dice      []int
	Successes int
	// Damage is flat: the damage total plus the attack's damage
	Damage int
}
