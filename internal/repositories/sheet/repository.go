// Package sheet provides the interface for sheet document persistence
package sheet

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetmock github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
)

// Repository defines the interface for sheet persistence. Every backend
// stores the encoded sheet document, so a sheet moved between backends
// keeps its exact bytes.
type Repository interface {
	// Get loads the sheet stored at a location
	// Returns errors.InvalidArgument for an empty location or a corrupt document
	// Returns errors.NotFound if nothing is stored there
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put writes the full document of a record, replacing any previous one.
	// A failed write leaves the previous document untouched.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes the sheet stored at a location
	// Returns errors.InvalidArgument for an empty location
	// Returns errors.NotFound if nothing is stored there
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored sheet ordered by location
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// Entry describes one stored sheet
type Entry struct {
	Location  string
	Name      string
	UpdatedAt time.Time
}

// GetInput defines the input for loading a sheet
type GetInput struct {
	Location string
}

// GetOutput defines the output for loading a sheet
type GetOutput struct {
	// Location is the normalized location the sheet was read from
	Location string
	Record   *digimon.Record
}

// PutInput defines the input for writing a sheet
type PutInput struct {
	Location string
	Record   *digimon.Record
}

// PutOutput defines the output for writing a sheet
type PutOutput struct {
	// Location is the normalized location the sheet was written to
	Location string
}

// DeleteInput defines the input for deleting a sheet
type DeleteInput struct {
	Location string
}

// DeleteOutput defines the output for deleting a sheet
type DeleteOutput struct{}

// ListInput defines the input for listing sheets
type ListInput struct{}

// ListOutput defines the output for listing sheets
type ListOutput struct {
	Entries []Entry
}
