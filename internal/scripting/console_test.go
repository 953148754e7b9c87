package scripting

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muscle-dreamer/internal/core/ecs"
)

func Test_Console_RunsEachLineAndReportsOk(t *testing.T) {
	// Arrange
	registry := ecs.NewRegistry(ecs.DefaultStoreConfig())
	bridge := New(registry)
	defer bridge.Close()

	input := strings.NewReader("e = ecs.acquire_entity()\ne2 = ecs.acquire_entity()\n")
	var out strings.Builder

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Act
	err := Console(ctx, bridge, input, &out)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, registry.EntityCount())
	assert.Equal(t, "ok\nok\n", out.String())
}

func Test_Console_ReportsLuaErrorsWithoutStopping(t *testing.T) {
	registry := ecs.NewRegistry(ecs.DefaultStoreConfig())
	bridge := New(registry)
	defer bridge.Close()

	input := strings.NewReader("not valid lua (((\ne = ecs.acquire_entity()\n")
	var out strings.Builder

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := Console(ctx, bridge, input, &out)

	require.NoError(t, err)
	assert.Equal(t, 1, registry.EntityCount())
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ok", lines[1])
}
