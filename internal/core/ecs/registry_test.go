package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct{ X, Y float64 }
type velocity struct{ DX, DY float64 }

func Test_Registry_AssignAndGet(t *testing.T) {
	// Arrange
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()

	// Act
	Assign(r, e, position{X: 1, Y: 2})

	// Assert
	p := Get[position](r, e)
	require.NotNil(t, p)
	assert.Equal(t, position{X: 1, Y: 2}, *p)
}

func Test_Registry_AssignDuplicatePanics(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()
	Assign(r, e, position{X: 1})

	assert.Panics(t, func() {
		Assign(r, e, position{X: 2})
	})
}

func Test_Registry_AssignOrReplaceOverwrites(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()
	Assign(r, e, position{X: 1})

	AssignOrReplace(r, e, position{X: 9})

	assert.Equal(t, position{X: 9}, *Get[position](r, e))
}

func Test_Registry_GetOfMissingComponentPanics(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()

	assert.Panics(t, func() {
		Get[position](r, e)
	})
}

func Test_Registry_TryGetOfMissingComponentReturnsNil(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()

	assert.Nil(t, TryGet[position](r, e))
}

func Test_Registry_GetAndTryGetDoNotConstructAStoreForAnUntouchedType(t *testing.T) {
	type untouchedComponent struct{ V int }

	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()

	assert.Nil(t, TryGet[untouchedComponent](r, e))
	assert.Panics(t, func() {
		Get[untouchedComponent](r, e)
	})

	// Neither read should have allocated a component store for a type
	// this registry never saw an Assign for.
	assert.Empty(t, r.Stats().Components)
}

func Test_Registry_RemoveOfAbsentIsNoop(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()

	assert.NotPanics(t, func() {
		Remove[position](r, e)
	})
}

func Test_Registry_ReleaseEntityErasesAllComponents(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()
	Assign(r, e, position{X: 1})
	Assign(r, e, velocity{DX: 1})
	r.SetName(e, "player")

	r.ReleaseEntity(e)

	assert.False(t, r.IsValid(e))
	assert.False(t, Has[position](r, e))
	assert.False(t, Has[velocity](r, e))
	name, ok := r.Name(e)
	assert.False(t, ok)
	assert.Empty(t, name)
}

func Test_Registry_HasReflectsAssignedTypes(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()
	Assign(r, e, position{})

	assert.True(t, Has[position](r, e))
	assert.False(t, Has[velocity](r, e))
	assert.False(t, Has2[position, velocity](r, e))

	Assign(r, e, velocity{})
	assert.True(t, Has2[position, velocity](r, e))
}

func Test_Registry_DuplicateCopiesDuplicatableComponentsOnly(t *testing.T) {
	RegisterDuplicatable[velocity](false)
	r := NewRegistry(DefaultStoreConfig())
	src := r.AcquireEntity()
	Assign(r, src, position{X: 5, Y: 6})
	Assign(r, src, velocity{DX: 1, DY: 1})

	dst := r.Duplicate(src)

	assert.True(t, Has[position](r, dst))
	assert.Equal(t, position{X: 5, Y: 6}, *Get[position](r, dst))
	assert.False(t, Has[velocity](r, dst))
}

func Test_Registry_EntityCountTracksAcquireAndRelease(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	assert.Equal(t, 0, r.EntityCount())
	e := r.AcquireEntity()
	assert.Equal(t, 1, r.EntityCount())
	r.ReleaseEntity(e)
	assert.Equal(t, 0, r.EntityCount())
}

func Test_Duplicatable_DefaultsTrueAndRegisterOverrides(t *testing.T) {
	type trait struct{}

	assert.True(t, Duplicatable[trait]())

	RegisterDuplicatable[trait](false)
	assert.False(t, Duplicatable[trait]())

	RegisterDuplicatable[trait](true)
	assert.True(t, Duplicatable[trait]())
}

func Test_Registry_Stats(t *testing.T) {
	r := NewRegistry(DefaultStoreConfig())
	e := r.AcquireEntity()
	Assign(r, e, position{})

	stats := r.Stats()

	assert.Equal(t, 1, stats.EntityCount)
	assert.GreaterOrEqual(t, len(stats.Components), 1)
}
