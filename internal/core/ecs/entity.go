// Package ecs provides the entity-component storage core of the engine:
// generational entity handles, a chunked entity store, and a registry of
// sparse-set-backed component stores with multi-component views.
package ecs

import "fmt"

// Entity is a 64-bit generational handle: the low 32 bits are the index
// into the entity store, the high 32 bits are the generation (version).
// Entity is trivially copyable and carries no finalizer; nothing beyond
// this file interprets its bits.
type Entity uint64

const (
	entityMask  = 0xFFFFFFFF
	versionMask = 0xFFFFFFFF
	indexBits   = 32
)

// Null and Tombstone are both the all-ones value: every bit of the index
// half and every bit of the version half set. The spec defines them as
// coinciding sentinels; they are kept as distinct names for readability at
// call sites even though their values are identical.
const (
	Null      Entity = entityMask | (versionMask << indexBits)
	Tombstone Entity = entityMask | (versionMask << indexBits)
)

// Index returns the low 32 bits of e: its position in the entity store.
func (e Entity) Index() uint32 {
	return uint32(e & entityMask)
}

// Version returns the high 32 bits of e: its generation.
func (e Entity) Version() uint32 {
	return uint32((e >> indexBits) & versionMask)
}

// NewEntity packs an index and version into an entity handle. Both halves
// are masked, so out-of-range inputs are truncated rather than corrupting
// the other half.
func NewEntity(index, version uint32) Entity {
	return Entity(uint64(index)&entityMask) | Entity(uint64(version)&versionMask)<<indexBits
}

// Combine builds an entity whose index half comes from lhs and whose
// version half comes from rhs. Used to rewrite a sparse set's dense
// back-pointer during erase, where the position changes but the key's own
// generation must be preserved.
func Combine(lhs, rhs Entity) Entity {
	return NewEntity(lhs.Index(), rhs.Version())
}

// nextVersion returns e with its version advanced by one generation, with
// the one exception that advancing onto the all-ones sentinel value skips
// it: the returned version is never equal to versionMask, so the
// null/tombstone sentinel is never issued as a live entity's version. This
// is the unambiguous form of the rule; the reference implementation's
// "version + (version == version_mask)" formulation wraps a
// version_mask-1 input into version_mask+1 rather than skipping it, which
// is the saturation ambiguity called out for entity stores built on top of
// this package.
func nextVersion(e Entity) Entity {
	v := e.Version()
	if v+1 == versionMask {
		v += 2
	} else {
		v++
	}
	return NewEntity(e.Index(), v)
}

// IsNull reports whether e is the null/tombstone sentinel.
func (e Entity) IsNull() bool {
	return e == Null
}

// String renders an entity as index/version, useful in panic messages and
// test failure output.
func (e Entity) String() string {
	if e.IsNull() {
		return "Entity(null)"
	}
	return fmt.Sprintf("Entity(%d/%d)", e.Index(), e.Version())
}
