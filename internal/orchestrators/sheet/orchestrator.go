// Package sheet implements the sheet editing orchestrator
package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/digimon-sheet/internal/engine"
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	"github.com/KirkDiggler/digimon-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/digimon-sheet/internal/pkg/idgen"
	sheetrepo "github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

const (
	// NewSheetTitleFormat titles unsaved sheets by creation order
	NewSheetTitleFormat = "New Sheet %d"

	errSheetIDRequired = "sheet ID is required"
)

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	SheetRepo   sheetrepo.Repository
	Engine      engine.Engine
	IDGenerator idgen.Generator
	// Clock defaults to the system clock
	Clock clock.Clock
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.SheetRepo == nil {
		vb.RequiredField("SheetRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// openSheet is a session entry. revision counts edits so a save only
// clears the dirty flag when nothing changed while it was writing.
type openSheet struct {
	sheet    *digimon.Sheet
	revision uint64
}

// Orchestrator implements the sheet service
type Orchestrator struct {
	sheetRepo  sheetrepo.Repository
	engine     engine.Engine
	idGen      idgen.Generator
	clock      clock.Clock
	diceRoller dice.Roller

	mu           sync.Mutex
	sheets       map[string]*openSheet
	order        []string
	titleCounter int
}

var _ sheetsvc.Service = (*Orchestrator)(nil)

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &Orchestrator{
		sheetRepo:  cfg.SheetRepo,
		engine:     cfg.Engine,
		idGen:      cfg.IDGenerator,
		clock:      c,
		diceRoller: roller,
		sheets:     make(map[string]*openSheet),
	}, nil
}

// view snapshots a sheet and recomputes its derived stats. Callers hold o.mu.
func (o *Orchestrator) view(s *digimon.Sheet) sheetsvc.SheetView {
	snapshot := *s
	snapshot.Record = s.Record.Clone()
	return sheetsvc.SheetView{
		Sheet:   &snapshot,
		Derived: o.engine.Recompute(engine.InputFromRecord(snapshot.Record)),
	}
}

// entityAttr groups the log fields that identify an entity
func entityAttr(e core.Entity) slog.Attr {
	return slog.Group("entity",
		slog.String("type", e.GetType()),
		slog.String("id", e.GetID()))
}

// lookup returns an open sheet. Callers hold o.mu.
func (o *Orchestrator) lookup(sheetID string) (*openSheet, error) {
	if sheetID == "" {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}
	entry, ok := o.sheets[sheetID]
	if !ok {
		return nil, errors.NotFoundf("sheet %s is not open", sheetID).
			WithMeta("entity_type", digimon.EntityTypeSheet).
			WithMeta("entity_id", sheetID)
	}
	return entry, nil
}

// add registers a sheet in the session under its entity ID. Callers hold o.mu.
func (o *Orchestrator) add(e core.Entity, entry *openSheet) {
	o.sheets[e.GetID()] = entry
	o.order = append(o.order, e.GetID())
}

// NewSheet opens an unsaved sheet titled by creation order
func (o *Orchestrator) NewSheet(ctx context.Context, input *sheetsvc.NewSheetInput) (*sheetsvc.NewSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record := digimon.NewRecord()
	if input.Record != nil {
		record = input.Record.Clone()
		record.Normalize()
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.titleCounter++
	s := &digimon.Sheet{
		ID:       o.idGen.Generate(),
		Title:    fmt.Sprintf(NewSheetTitleFormat, o.titleCounter),
		Record:   record,
		OpenedAt: o.clock.Now(),
	}
	o.add(s, &openSheet{sheet: s})

	slog.DebugContext(ctx, "created sheet", entityAttr(s), "title", s.Title)
	return &sheetsvc.NewSheetOutput{SheetView: o.view(s)}, nil
}

// OpenSheet loads a stored sheet. Derived values are always recomputed from
// the loaded inputs.
func (o *Orchestrator) OpenSheet(ctx context.Context, input *sheetsvc.OpenSheetInput) (*sheetsvc.OpenSheetOutput, error) {
	if input == nil || input.Location == "" {
		return nil, errors.InvalidArgument("location is required")
	}

	getOutput, err := o.sheetRepo.Get(ctx, sheetrepo.GetInput{Location: input.Location})
	if err != nil {
		slog.ErrorContext(ctx, "failed to open sheet", "location", input.Location, "error", err)
		return nil, errors.Wrapf(err, "failed to open sheet %s", input.Location)
	}

	location := getOutput.Location
	if location == "" {
		location = input.Location
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	s := &digimon.Sheet{
		ID:       o.idGen.Generate(),
		Title:    filepath.Base(location),
		Location: location,
		Record:   getOutput.Record,
		OpenedAt: o.clock.Now(),
	}
	o.add(s, &openSheet{sheet: s})

	slog.DebugContext(ctx, "opened sheet", entityAttr(s), "location", location)
	return &sheetsvc.OpenSheetOutput{SheetView: o.view(s)}, nil
}

// SaveSheet writes a sheet to the location it was opened from or last
// saved to
func (o *Orchestrator) SaveSheet(ctx context.Context, input *sheetsvc.SaveSheetInput) (*sheetsvc.SaveSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	o.mu.Lock()
	entry, err := o.lookup(input.SheetID)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	location := entry.sheet.Location
	o.mu.Unlock()

	if location == "" {
		return nil, errors.FailedPreconditionf("sheet %s has never been saved, use save as", input.SheetID)
	}

	view, err := o.save(ctx, input.SheetID, location)
	if err != nil {
		return nil, err
	}
	return &sheetsvc.SaveSheetOutput{SheetView: view}, nil
}

// SaveSheetAs writes a sheet to a new location, which becomes its location
// and title
func (o *Orchestrator) SaveSheetAs(ctx context.Context, input *sheetsvc.SaveSheetAsInput) (*sheetsvc.SaveSheetAsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}
	if input.Location == "" {
		return nil, errors.InvalidArgument("location is required")
	}

	view, err := o.save(ctx, input.SheetID, input.Location)
	if err != nil {
		return nil, err
	}
	return &sheetsvc.SaveSheetAsOutput{SheetView: view}, nil
}

// save writes a snapshot outside the lock so a slow store never blocks
// other sheets. A failed write leaves the session untouched.
func (o *Orchestrator) save(ctx context.Context, sheetID, location string) (sheetsvc.SheetView, error) {
	o.mu.Lock()
	entry, err := o.lookup(sheetID)
	if err != nil {
		o.mu.Unlock()
		return sheetsvc.SheetView{}, err
	}
	record := entry.sheet.Record.Clone()
	revision := entry.revision
	o.mu.Unlock()

	putOutput, err := o.sheetRepo.Put(ctx, sheetrepo.PutInput{Location: location, Record: record})
	if err != nil {
		slog.ErrorContext(ctx, "failed to save sheet", "sheet_id", sheetID, "location", location, "error", err)
		return sheetsvc.SheetView{}, errors.Wrapf(err, "failed to save sheet %s", sheetID)
	}
	if putOutput.Location != "" {
		location = putOutput.Location
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	entry, err = o.lookup(sheetID)
	if err != nil {
		// Closed while saving; the write itself succeeded
		return sheetsvc.SheetView{}, err
	}
	entry.sheet.Location = location
	entry.sheet.Title = filepath.Base(location)
	entry.sheet.SavedAt = o.clock.Now()
	if entry.revision == revision {
		entry.sheet.Dirty = false
	}

	slog.DebugContext(ctx, "saved sheet", entityAttr(entry.sheet), "location", location)
	return o.view(entry.sheet), nil
}

// CloseSheet removes a sheet from the session without prompting
func (o *Orchestrator) CloseSheet(ctx context.Context, input *sheetsvc.CloseSheetInput) (*sheetsvc.CloseSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	entry, err := o.lookup(input.SheetID)
	if err != nil {
		return nil, err
	}

	delete(o.sheets, input.SheetID)
	for i, id := range o.order {
		if id == input.SheetID {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}

	if entry.sheet.Dirty {
		slog.InfoContext(ctx, "closed sheet with unsaved changes", entityAttr(entry.sheet), "title", entry.sheet.Title)
	}
	return &sheetsvc.CloseSheetOutput{Discarded: entry.sheet.Dirty}, nil
}

// GetSheet returns a snapshot of an open sheet
func (o *Orchestrator) GetSheet(_ context.Context, input *sheetsvc.GetSheetInput) (*sheetsvc.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSheetIDRequired)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	entry, err := o.lookup(input.SheetID)
	if err != nil {
		return nil, err
	}
	return &sheetsvc.GetSheetOutput{SheetView: o.view(entry.sheet)}, nil
}

// ListSheets lists the open sheets, and the stored ones when asked
func (o *Orchestrator) ListSheets(ctx context.Context, input *sheetsvc.ListSheetsInput) (*sheetsvc.ListSheetsOutput, error) {
	if input == nil {
		input = &sheetsvc.ListSheetsInput{}
	}

	output := &sheetsvc.ListSheetsOutput{}

	o.mu.Lock()
	output.Open = make([]*digimon.Sheet, 0, len(o.order))
	for _, id := range o.order {
		output.Open = append(output.Open, o.view(o.sheets[id].sheet).Sheet)
	}
	o.mu.Unlock()

	if input.Stored {
		listOutput, err := o.sheetRepo.List(ctx, sheetrepo.ListInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list stored sheets")
		}
		output.Stored = listOutput.Entries
	}

	return output, nil
}
