// Package engine computes every derived value of a Digimon sheet
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/digimon-sheet/internal/engine Engine

import (
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
)

// Engine provides the sheet's rules calculations. Implementations must be
// deterministic and must never fail: malformed input has already degraded to
// zero or a default by the time it gets here.
type Engine interface {
	// Recompute produces the full set of derived values from the full set of
	// editable inputs. A nil input is treated as a fresh sheet.
	Recompute(input *RecomputeInput) *DerivedStats

	// SizeContribution returns the additive (bit, dos, ram, cpu) bonus of a size
	SizeContribution(size digimon.Size) [digimon.DerivedStatCount]int
}
