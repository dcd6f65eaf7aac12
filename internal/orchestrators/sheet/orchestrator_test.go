package sheet_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/digimon-sheet/internal/engine"
	enginemock "github.com/KirkDiggler/digimon-sheet/internal/engine/mock"
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	sheetorch "github.com/KirkDiggler/digimon-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/digimon-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/digimon-sheet/internal/pkg/idgen"
	sheetrepo "github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet"
	sheetmock "github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet/mock"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
	"github.com/KirkDiggler/digimon-sheet/internal/testutils"
	"github.com/KirkDiggler/digimon-sheet/internal/testutils/mocks"
)

// fixedRoller returns the queued faces in order, repeating the last one
type fixedRoller struct {
	faces []int
	calls int
}

func (r *fixedRoller) Roll(_ int) (int, error) {
	rolled, err := r.RollN(1, 6)
	if err != nil {
		return 0, err
	}
	return rolled[0], nil
}

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	r.calls++
	out := make([]int, count)
	for i := range out {
		if i < len(r.faces) {
			out[i] = r.faces[i]
		} else {
			out[i] = r.faces[len(r.faces)-1]
		}
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *sheetmock.MockRepository
	clock    *clock.Fixed
	roller   *fixedRoller
	orch     *sheetorch.Orchestrator
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = sheetmock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	s.roller = &fixedRoller{faces: []int{6, 5, 4, 1}}
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	orch, err := sheetorch.NewOrchestrator(&sheetorch.Config{
		SheetRepo:   s.mockRepo,
		Engine:      eng,
		IDGenerator: idgen.NewSequential("sheet"),
		Clock:       s.clock,
		DiceRoller:  s.roller,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newSheet() *sheetsvc.NewSheetOutput {
	out, err := s.orch.NewSheet(s.ctx, &sheetsvc.NewSheetInput{})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := sheetorch.NewOrchestrator(&sheetorch.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "SheetRepo")

	_, err = sheetorch.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestViewsComeFromTheEngine() {
	mockEngine := enginemock.NewMockEngine(s.ctrl)
	orch, err := sheetorch.NewOrchestrator(&sheetorch.Config{
		SheetRepo:   s.mockRepo,
		Engine:      mockEngine,
		IDGenerator: idgen.NewSequential("sheet"),
		Clock:       s.clock,
		DiceRoller:  s.roller,
	})
	s.Require().NoError(err)

	derived := &engine.DerivedStats{StageOrdinal: 2, MaxHealth: 99}
	mockEngine.EXPECT().
		Recompute(engine.InputFromRecord(digimon.NewRecord())).
		Return(derived)

	out, err := orch.NewSheet(s.ctx, &sheetsvc.NewSheetInput{})
	s.Require().NoError(err)
	s.Same(derived, out.Derived)

	edited := digimon.NewRecord()
	edited.Stats[digimon.Health].DP = 4
	mockEngine.EXPECT().
		Recompute(engine.InputFromRecord(edited)).
		Return(&engine.DerivedStats{MaxHealth: 12})

	applied, err := orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: out.Sheet.ID, Path: "stats.hp.dp", Value: "4"})
	s.Require().NoError(err)
	s.Equal(12, applied.Derived.MaxHealth)
}

func (s *OrchestratorTestSuite) TestNewSheet() {
	first := s.newSheet()
	second := s.newSheet()

	s.Equal("sheet_1", first.Sheet.ID)
	s.Equal("New Sheet 1", first.Sheet.Title)
	s.Equal("New Sheet 2", second.Sheet.Title)
	s.Empty(first.Sheet.Location)
	s.False(first.Sheet.Dirty)
	s.Equal(s.clock.Now(), first.Sheet.OpenedAt)
	s.Equal(digimon.NewRecord(), first.Sheet.Record)
	s.Equal(10, first.Derived.MaxDPAllocated)
	s.Equal(2, first.Derived.StageOrdinal)
}

func (s *OrchestratorTestSuite) TestNewSheetFromRecord() {
	seed := testutils.CreateTestRecord()
	out, err := s.orch.NewSheet(s.ctx, &sheetsvc.NewSheetInput{Record: seed})
	s.Require().NoError(err)
	s.Equal(seed, out.Sheet.Record)

	seed.Name = "changed after"
	got, err := s.orch.GetSheet(s.ctx, &sheetsvc.GetSheetInput{SheetID: out.Sheet.ID})
	s.Require().NoError(err)
	s.Equal(testutils.TestCharacterName, got.Sheet.Record.Name)
}

func (s *OrchestratorTestSuite) TestOpenSheetRecomputes() {
	record := testutils.CreateTestRecord()
	mocks.ExpectSheetLoad(s.ctx, s.mockRepo, "sheets/growlmon.json", record)

	out, err := s.orch.OpenSheet(s.ctx, &sheetsvc.OpenSheetInput{Location: "sheets/growlmon.json"})
	s.Require().NoError(err)

	s.Equal("growlmon.json", out.Sheet.Title)
	s.Equal("sheets/growlmon.json", out.Sheet.Location)
	s.False(out.Sheet.Dirty)
	s.Equal(engine.Recompute(engine.InputFromRecord(record)), out.Derived)
}

func (s *OrchestratorTestSuite) TestOpenSheetNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, sheetrepo.GetInput{Location: "missing.json"}).
		Return(nil, errors.NotFound("sheet missing.json not found"))

	_, err := s.orch.OpenSheet(s.ctx, &sheetsvc.OpenSheetInput{Location: "missing.json"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	list, err := s.orch.ListSheets(s.ctx, &sheetsvc.ListSheetsInput{})
	s.Require().NoError(err)
	s.Empty(list.Open)
}

func (s *OrchestratorTestSuite) TestSaveSheetWithoutLocation() {
	sheet := s.newSheet()

	_, err := s.orch.SaveSheet(s.ctx, &sheetsvc.SaveSheetInput{SheetID: sheet.Sheet.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSaveSheetAsThenSave() {
	sheet := s.newSheet()
	_, err := s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: sheet.Sheet.ID, Path: "name", Value: "Kazu"})
	s.Require().NoError(err)

	var saved *digimon.Record
	mocks.ExpectSheetSave(s.ctx, s.mockRepo, "guardromon.json", &saved)
	s.clock.Advance(time.Minute)

	out, err := s.orch.SaveSheetAs(s.ctx, &sheetsvc.SaveSheetAsInput{SheetID: sheet.Sheet.ID, Location: "guardromon.json"})
	s.Require().NoError(err)
	s.Equal("Kazu", saved.Name)
	s.Equal("guardromon.json", out.Sheet.Location)
	s.Equal("guardromon.json", out.Sheet.Title)
	s.False(out.Sheet.Dirty)
	s.Equal(s.clock.Now(), out.Sheet.SavedAt)

	_, err = s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: sheet.Sheet.ID, Path: "stage", Value: "Adult"})
	s.Require().NoError(err)

	mocks.ExpectSheetSave(s.ctx, s.mockRepo, "guardromon.json", &saved)
	saveOut, err := s.orch.SaveSheet(s.ctx, &sheetsvc.SaveSheetInput{SheetID: sheet.Sheet.ID})
	s.Require().NoError(err)
	s.Equal(digimon.StageAdult, saved.Stage)
	s.False(saveOut.Sheet.Dirty)
}

func (s *OrchestratorTestSuite) TestSaveFailureKeepsSheetDirty() {
	sheet := s.newSheet()
	_, err := s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: sheet.Sheet.ID, Path: "name", Value: "Kazu"})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Put(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	_, err = s.orch.SaveSheetAs(s.ctx, &sheetsvc.SaveSheetAsInput{SheetID: sheet.Sheet.ID, Location: "kazu.json"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))

	got, err := s.orch.GetSheet(s.ctx, &sheetsvc.GetSheetInput{SheetID: sheet.Sheet.ID})
	s.Require().NoError(err)
	s.True(got.Sheet.Dirty)
	s.Empty(got.Sheet.Location)
	s.Equal("New Sheet 1", got.Sheet.Title)
	s.Equal("Kazu", got.Sheet.Record.Name)
}

func (s *OrchestratorTestSuite) TestSaveSheetAsValidation() {
	sheet := s.newSheet()

	_, err := s.orch.SaveSheetAs(s.ctx, &sheetsvc.SaveSheetAsInput{SheetID: sheet.Sheet.ID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.SaveSheetAs(s.ctx, &sheetsvc.SaveSheetAsInput{SheetID: "nope", Location: "x.json"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCloseSheetReportsDiscardedChanges() {
	clean := s.newSheet()
	dirty := s.newSheet()
	_, err := s.orch.AddEffect(s.ctx, &sheetsvc.AddEffectInput{SheetID: dirty.Sheet.ID})
	s.Require().NoError(err)

	out, err := s.orch.CloseSheet(s.ctx, &sheetsvc.CloseSheetInput{SheetID: clean.Sheet.ID})
	s.Require().NoError(err)
	s.False(out.Discarded)

	out, err = s.orch.CloseSheet(s.ctx, &sheetsvc.CloseSheetInput{SheetID: dirty.Sheet.ID})
	s.Require().NoError(err)
	s.True(out.Discarded)

	_, err = s.orch.GetSheet(s.ctx, &sheetsvc.GetSheetInput{SheetID: dirty.Sheet.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.orch.CloseSheet(s.ctx, &sheetsvc.CloseSheetInput{SheetID: dirty.Sheet.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListSheets() {
	first := s.newSheet()
	second := s.newSheet()
	third := s.newSheet()
	_, err := s.orch.CloseSheet(s.ctx, &sheetsvc.CloseSheetInput{SheetID: second.Sheet.ID})
	s.Require().NoError(err)

	entries := []sheetrepo.Entry{{Location: "a.json", Name: "A"}}
	s.mockRepo.EXPECT().
		List(s.ctx, sheetrepo.ListInput{}).
		Return(&sheetrepo.ListOutput{Entries: entries}, nil)

	out, err := s.orch.ListSheets(s.ctx, &sheetsvc.ListSheetsInput{Stored: true})
	s.Require().NoError(err)
	s.Require().Len(out.Open, 2)
	s.Equal(first.Sheet.ID, out.Open[0].ID)
	s.Equal(third.Sheet.ID, out.Open[1].ID)
	s.Equal(entries, out.Stored)
}

func (s *OrchestratorTestSuite) TestSheetsAreIndependent() {
	first := s.newSheet()
	second := s.newSheet()

	_, err := s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: first.Sheet.ID, Path: "stats.hp.dp", Value: "4"})
	s.Require().NoError(err)

	got, err := s.orch.GetSheet(s.ctx, &sheetsvc.GetSheetInput{SheetID: second.Sheet.ID})
	s.Require().NoError(err)
	s.Equal(0, got.Sheet.Record.Stats[digimon.Health].DP)
	s.False(got.Sheet.Dirty)
}

func (s *OrchestratorTestSuite) TestApplyEditRecomputes() {
	sheet := s.newSheet()

	out, err := s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: sheet.Sheet.ID, Path: "stats.hp.dp", Value: "3"})
	s.Require().NoError(err)
	s.Equal(11, out.Derived.MaxHealth)
	s.True(out.Sheet.Dirty)

	out, err = s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: sheet.Sheet.ID, Path: "stats.hp.dp", Value: "abc"})
	s.Require().NoError(err)
	s.Equal(0, out.Sheet.Record.Stats[digimon.Health].DP)
}

func (s *OrchestratorTestSuite) TestApplyEditRejectsBadPath() {
	sheet := s.newSheet()

	_, err := s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: sheet.Sheet.ID, Path: "maxHealth", Value: "99"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	got, err := s.orch.GetSheet(s.ctx, &sheetsvc.GetSheetInput{SheetID: sheet.Sheet.ID})
	s.Require().NoError(err)
	s.False(got.Sheet.Dirty)
}

func (s *OrchestratorTestSuite) TestAttackRows() {
	sheet := s.newSheet()

	added, err := s.orch.AddAttack(s.ctx, &sheetsvc.AddAttackInput{SheetID: sheet.Sheet.ID})
	s.Require().NoError(err)
	s.Equal(1, added.Index)
	s.Len(added.Sheet.Record.Attacks, 2)

	_, err = s.orch.RemoveAttack(s.ctx, &sheetsvc.RemoveAttackInput{SheetID: sheet.Sheet.ID, Index: 0})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.orch.RemoveAttack(s.ctx, &sheetsvc.RemoveAttackInput{SheetID: sheet.Sheet.ID, Index: 5})
	s.True(errors.IsOutOfRange(err))

	removed, err := s.orch.RemoveAttack(s.ctx, &sheetsvc.RemoveAttackInput{SheetID: sheet.Sheet.ID, Index: 1})
	s.Require().NoError(err)
	s.Len(removed.Sheet.Record.Attacks, 1)
}

func (s *OrchestratorTestSuite) TestEffectRows() {
	sheet := s.newSheet()

	added, err := s.orch.AddEffect(s.ctx, &sheetsvc.AddEffectInput{SheetID: sheet.Sheet.ID})
	s.Require().NoError(err)
	s.Equal(1, added.Index)

	removed, err := s.orch.RemoveEffect(s.ctx, &sheetsvc.RemoveEffectInput{SheetID: sheet.Sheet.ID, Index: 0})
	s.Require().NoError(err)
	s.Len(removed.Sheet.Record.Effects, 1)

	_, err = s.orch.RemoveEffect(s.ctx, &sheetsvc.RemoveEffectInput{SheetID: sheet.Sheet.ID, Index: 3})
	s.True(errors.IsOutOfRange(err))
}

func (s *OrchestratorTestSuite) TestSnapshotsAreCopies() {
	sheet := s.newSheet()
	sheet.Sheet.Record.Name = "tampered"
	sheet.Sheet.Record.Attacks[0].Name = "tampered"

	got, err := s.orch.GetSheet(s.ctx, &sheetsvc.GetSheetInput{SheetID: sheet.Sheet.ID})
	s.Require().NoError(err)
	s.Empty(got.Sheet.Record.Name)
	s.Equal(digimon.DefaultAttackName, got.Sheet.Record.Attacks[0].Name)
}

func (s *OrchestratorTestSuite) TestRollCheck() {
	sheet := s.newSheet()

	// Child accuracy total is 2, plus 2 from the modifier
	out, err := s.orch.RollCheck(s.ctx, &sheetsvc.RollCheckInput{SheetID: sheet.Sheet.ID, Stat: digimon.Accuracy, Modifier: 2})
	s.Require().NoError(err)
	s.Equal(4, out.Pool)
	s.Equal([]int{6, 5, 4, 1}, out.Dice)
	s.Equal(2, out.Successes)
}

func (s *OrchestratorTestSuite) TestRollCheckEmptyPool() {
	sheet := s.newSheet()

	out, err := s.orch.RollCheck(s.ctx, &sheetsvc.RollCheckInput{SheetID: sheet.Sheet.ID, Stat: digimon.Dodge, Modifier: -10})
	s.Require().NoError(err)
	s.Equal(0, out.Pool)
	s.Empty(out.Dice)
	s.Equal(0, out.Successes)
	s.Equal(0, s.roller.calls)
}

func (s *OrchestratorTestSuite) TestRollCheckUnknownStat() {
	sheet := s.newSheet()

	_, err := s.orch.RollCheck(s.ctx, &sheetsvc.RollCheckInput{SheetID: sheet.Sheet.ID, Stat: digimon.PrimaryStat(9)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollCheckPoolLimit() {
	sheet := s.newSheet()
	id := sheet.Sheet.ID

	// Child accuracy total is 2
	out, err := s.orch.RollCheck(s.ctx, &sheetsvc.RollCheckInput{SheetID: id, Stat: digimon.Accuracy, Modifier: sheetorch.MaxPool - 2})
	s.Require().NoError(err)
	s.Equal(sheetorch.MaxPool, out.Pool)
	s.Len(out.Dice, sheetorch.MaxPool)

	_, err = s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: id, Path: "stats.acc.bonus", Value: "2000000000"})
	s.Require().NoError(err)

	calls := s.roller.calls
	_, err = s.orch.RollCheck(s.ctx, &sheetsvc.RollCheckInput{SheetID: id, Stat: digimon.Accuracy})
	s.True(errors.IsInvalidArgument(err))
	s.Equal(calls, s.roller.calls)
}

func (s *OrchestratorTestSuite) TestRollAttackPoolLimit() {
	sheet := s.newSheet()
	id := sheet.Sheet.ID

	_, err := s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: id, Path: "attacks.0.accuracy", Value: "500"})
	s.Require().NoError(err)

	_, err = s.orch.RollAttack(s.ctx, &sheetsvc.RollAttackInput{SheetID: id, AttackIndex: 0})
	s.True(errors.IsInvalidArgument(err))
	s.Equal(0, s.roller.calls)
}

// captureLogs routes the default logger into a buffer for the rest of the test
func (s *OrchestratorTestSuite) captureLogs() *bytes.Buffer {
	previous := slog.Default()
	s.T().Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

// logEntry finds the first JSON log line with the given message
func (s *OrchestratorTestSuite) logEntry(buf *bytes.Buffer, msg string) map[string]any {
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		entry := map[string]any{}
		s.Require().NoError(json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == msg {
			return entry
		}
	}
	s.Failf("log not found", "no %q entry in %s", msg, buf.String())
	return nil
}

func (s *OrchestratorTestSuite) TestRollsLogTheSheetEntity() {
	logs := s.captureLogs()
	sheet := s.newSheet()

	_, err := s.orch.RollCheck(s.ctx, &sheetsvc.RollCheckInput{SheetID: sheet.Sheet.ID, Stat: digimon.Dodge})
	s.Require().NoError(err)
	_, err = s.orch.RollAttack(s.ctx, &sheetsvc.RollAttackInput{SheetID: sheet.Sheet.ID})
	s.Require().NoError(err)

	want := map[string]any{"type": digimon.EntityTypeSheet, "id": "sheet_1"}
	s.Equal(want, s.logEntry(logs, "created sheet")["entity"])
	s.Equal(want, s.logEntry(logs, "rolled check")["entity"])
	s.Equal(want, s.logEntry(logs, "rolled attack")["entity"])
}

func (s *OrchestratorTestSuite) TestNotOpenErrorNamesTheEntity() {
	_, err := s.orch.GetSheet(s.ctx, &sheetsvc.GetSheetInput{SheetID: "sheet_9"})
	s.Require().True(errors.IsNotFound(err))

	meta := errors.GetMeta(err)
	s.Equal(digimon.EntityTypeSheet, meta["entity_type"])
	s.Equal("sheet_9", meta["entity_id"])
}

func (s *OrchestratorTestSuite) TestRollAttack() {
	sheet := s.newSheet()
	id := sheet.Sheet.ID
	for path, value := range map[string]string{
		"stats.acc.dp":       "1",
		"stats.dam.dp":       "2",
		"attacks.0.accuracy": "1",
		"attacks.0.damage":   "3",
	} {
		_, err := s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: id, Path: path, Value: value})
		s.Require().NoError(err, path)
	}

	out, err := s.orch.RollAttack(s.ctx, &sheetsvc.RollAttackInput{SheetID: id, AttackIndex: 0})
	s.Require().NoError(err)
	s.Equal(digimon.DefaultAttackName, out.Attack.Name)
	s.Equal(4, out.Pool)
	s.Equal(2, out.Successes)
	s.Equal(7, out.Damage)

	_, err = s.orch.RollAttack(s.ctx, &sheetsvc.RollAttackInput{SheetID: id, AttackIndex: 1})
	s.True(errors.IsOutOfRange(err))
}

func (s *OrchestratorTestSuite) TestUnknownSheet() {
	_, err := s.orch.GetSheet(s.ctx, &sheetsvc.GetSheetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.ApplyEdit(s.ctx, &sheetsvc.ApplyEditInput{SheetID: "ghost", Path: "name"})
	s.True(errors.IsNotFound(err))

	_, err = s.orch.RollAttack(s.ctx, &sheetsvc.RollAttackInput{SheetID: "ghost"})
	s.True(errors.IsNotFound(err))
}
