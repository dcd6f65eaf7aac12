package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/digimon-sheet/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("sheet")
	assert.Equal(t, "sheet_1", gen.Generate())
	assert.Equal(t, "sheet_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("sheet")
	id := gen.Generate()

	require.True(t, strings.HasPrefix(id, "sheet_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "sheet_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}
