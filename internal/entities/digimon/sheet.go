package digimon

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeSheet is the core.Entity type of an open sheet
const EntityTypeSheet = "digimon_sheet"

// Sheet is one open sheet in an editing session. Location is empty until
// the sheet is first saved.
type Sheet struct {
	ID       string
	Title    string
	Location string
	Record   *Record
	Dirty    bool
	OpenedAt time.Time
	SavedAt  time.Time
}

// GetID implements core.Entity
func (s *Sheet) GetID() string {
	return s.ID
}

// GetType implements core.Entity
func (s *Sheet) GetType() string {
	return EntityTypeSheet
}

var _ core.Entity = (*Sheet)(nil)
