package ecs

import "reflect"

// typeIDs assigns a stable, dense, process-unique integer to every
// component type the registry has seen, gated by first use. There is
// exactly one of these maps per process (not per registry), matching the
// spec's "process-unique" requirement; registries are otherwise fully
// independent of one another.
var (
	typeIDs      = map[reflect.Type]int{}
	nextTypeID   int
	duplicatable = map[reflect.Type]bool{}
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeID returns T's type id, assigning one the first time T is used.
// A client type becomes addressable in the registry the moment any of
// Assign, Has, Get, TryGet, or Remove is instantiated with it.
func TypeID[T any]() int {
	t := typeOf[T]()
	if id, ok := typeIDs[t]; ok {
		return id
	}
	id := nextTypeID
	nextTypeID++
	typeIDs[t] = id
	if _, ok := duplicatable[t]; !ok {
		duplicatable[t] = true // defaults to true per spec §4.6
	}
	return id
}

// RegisterDuplicatable overrides T's duplicatability trait. Call it before
// T is first used with a registry; the trait is read when T's component
// store is constructed.
func RegisterDuplicatable[T any](v bool) {
	duplicatable[typeOf[T]()] = v
}

func isDuplicatable[T any]() bool {
	TypeID[T]()
	return duplicatable[typeOf[T]()]
}

// Duplicatable reports whether T's components are copied by Registry.Duplicate.
// Defaults to true; override with RegisterDuplicatable.
func Duplicatable[T any]() bool {
	return isDuplicatable[T]()
}

func typeName[T any]() string {
	return typeOf[T]().String()
}
