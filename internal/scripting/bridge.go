// Package scripting exposes a narrow Lua surface over a registry: acquire
// and release entities, check handle validity, set and read a debug name,
// and count live entities. It does not query or marshal components;
// component payloads stay on the Go side.
package scripting

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"muscle-dreamer/internal/core/ecs"
)

// Bridge owns one Lua state bound to one registry. A Bridge is not safe
// for concurrent use, matching the registry's own single-writer model.
type Bridge struct {
	state    *lua.LState
	registry *ecs.Registry
}

// New creates a Bridge over registry and registers the ecs table.
func New(registry *ecs.Registry) *Bridge {
	state := lua.NewState()
	b := &Bridge{state: state, registry: registry}
	b.registerECSAPI()
	return b
}

// Close releases the underlying Lua state.
func (b *Bridge) Close() {
	b.state.Close()
}

// Run executes a snippet of Lua source against the bridge's state.
func (b *Bridge) Run(source string) error {
	if err := b.state.DoString(source); err != nil {
		return fmt.Errorf("scripting: run: %w", err)
	}
	return nil
}

// registerECSAPI installs the ecs table: acquire_entity, release_entity,
// is_valid, set_name, name, entity_count. Each function validates its Lua-side
// arguments and reports back with lua.LError rather than panicking the
// VM; registry-level programmer errors (double release, etc.) still
// panic the Go side, since a script calling release_entity on a dead
// entity is the same kind of misuse an in-process caller would make.
func (b *Bridge) registerECSAPI() {
	ecsTable := b.state.NewTable()

	ecsTable.RawSetString("acquire_entity", b.state.NewFunction(func(l *lua.LState) int {
		e := b.registry.AcquireEntity()
		l.Push(lua.LNumber(e))
		return 1
	}))

	ecsTable.RawSetString("release_entity", b.state.NewFunction(func(l *lua.LState) int {
		e, err := checkEntity(l, 1)
		if err != nil {
			l.RaiseError("%s", err)
			return 0
		}
		b.registry.ReleaseEntity(e)
		return 0
	}))

	ecsTable.RawSetString("is_valid", b.state.NewFunction(func(l *lua.LState) int {
		e, err := checkEntity(l, 1)
		if err != nil {
			l.RaiseError("%s", err)
			return 0
		}
		l.Push(lua.LBool(b.registry.IsValid(e)))
		return 1
	}))

	ecsTable.RawSetString("set_name", b.state.NewFunction(func(l *lua.LState) int {
		e, err := checkEntity(l, 1)
		if err != nil {
			l.RaiseError("%s", err)
			return 0
		}
		name := l.CheckString(2)
		b.registry.SetName(e, name)
		return 0
	}))

	ecsTable.RawSetString("name", b.state.NewFunction(func(l *lua.LState) int {
		e, err := checkEntity(l, 1)
		if err != nil {
			l.RaiseError("%s", err)
			return 0
		}
		name, ok := b.registry.Name(e)
		if !ok {
			l.Push(lua.LNil)
			return 1
		}
		l.Push(lua.LString(name))
		return 1
	}))

	ecsTable.RawSetString("entity_count", b.state.NewFunction(func(l *lua.LState) int {
		l.Push(lua.LNumber(b.registry.EntityCount()))
		return 1
	}))

	b.state.SetGlobal("ecs", ecsTable)
}

func checkEntity(l *lua.LState, pos int) (ecs.Entity, error) {
	n := l.CheckNumber(pos)
	if n < 0 {
		return 0, errors.New("entity handle must be non-negative")
	}
	return ecs.Entity(uint64(n)), nil
}
