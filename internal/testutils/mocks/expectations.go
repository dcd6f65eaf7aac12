// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	sheetrepo "github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet"
	sheetmock "github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet/mock"
)

// ExpectSheetLoad sets up the repository to return a copy of record for
// location
func ExpectSheetLoad(ctx context.Context, repo *sheetmock.MockRepository, location string, record *digimon.Record) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, sheetrepo.GetInput{Location: location}).
		Return(&sheetrepo.GetOutput{Location: location, Record: record.Clone()}, nil)
}

// ExpectSheetSave sets up the repository to accept a write to location and
// captures the written record
func ExpectSheetSave(ctx context.Context, repo *sheetmock.MockRepository, location string, saved **digimon.Record) *gomock.Call {
	return repo.EXPECT().
		Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sheetrepo.PutInput) (*sheetrepo.PutOutput, error) {
			if input.Location != location {
				return nil, errors.Internalf("unexpected save location %s", input.Location)
			}
			if saved != nil {
				*saved = input.Record.Clone()
			}
			return &sheetrepo.PutOutput{Location: location}, nil
		})
}
