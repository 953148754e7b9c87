// Package storage provides the page-indexed sparse set and sparse map that
// back every component store in the ECS registry.
package storage

import "fmt"

// pageSize is the number of entries per sparse page. A page is allocated
// lazily the first time an index that falls inside it is touched, and is
// retained for the container's lifetime.
const pageSize = 1024

// Key is the constraint a sparse set/map key must satisfy: a handle split
// into a dense index half and a generation half, exactly the shape of an
// ECS entity.
type Key interface {
	comparable
	Index() uint32
	Version() uint32
}

// sparseSlot mirrors the packed layout of an entity handle: index is the
// dense position of the key in the packed array, version is the key's
// generation at the time it was inserted.
type sparseSlot struct {
	index   uint32
	version uint32
	used    bool
}

// SparseSet is a page-indexed set of keys with a packed dense array,
// supporting O(1) insert/erase/lookup via swap-and-pop compaction.
type SparseSet[K Key] struct {
	pages  [][]sparseSlot
	packed []K
}

// NewSparseSet creates an empty sparse set.
func NewSparseSet[K Key]() *SparseSet[K] {
	return &SparseSet[K]{
		packed: make([]K, 0, 64),
	}
}

func (s *SparseSet[K]) page(idx uint32) ([]sparseSlot, uint32) {
	page := idx / pageSize
	offset := idx % pageSize
	if int(page) >= len(s.pages) {
		return nil, offset
	}
	return s.pages[page], offset
}

func (s *SparseSet[K]) ensurePage(idx uint32) []sparseSlot {
	page := idx / pageSize
	for int(page) >= len(s.pages) {
		s.pages = append(s.pages, nil)
	}
	if s.pages[page] == nil {
		s.pages[page] = make([]sparseSlot, pageSize)
	}
	return s.pages[page]
}

// Contains reports whether key is present and current (its version matches
// the slot recorded at insertion time).
func (s *SparseSet[K]) Contains(k K) bool {
	slot, offset := s.page(k.Index())
	if slot == nil {
		return false
	}
	entry := slot[offset]
	return entry.used && entry.version == k.Version()
}

// IndexOf returns the dense position of k. Precondition: Contains(k).
// Not stable across Erase of other keys.
func (s *SparseSet[K]) IndexOf(k K) uint32 {
	slot, offset := s.page(k.Index())
	if slot == nil || !slot[offset].used || slot[offset].version != k.Version() {
		panic(fmt.Sprintf("storage: IndexOf of absent key (index %d)", k.Index()))
	}
	return slot[offset].index
}

// Insert adds k to the set. Precondition: !Contains(k).
func (s *SparseSet[K]) Insert(k K) {
	if s.Contains(k) {
		panic(fmt.Sprintf("storage: insert of duplicate key (index %d)", k.Index()))
	}
	slot := s.ensurePage(k.Index())
	_, offset := s.page(k.Index())
	pos := uint32(len(s.packed))
	s.packed = append(s.packed, k)
	slot[offset] = sparseSlot{index: pos, version: k.Version(), used: true}
}

// Erase removes k via swap-and-pop: the last packed element moves into k's
// slot, and the sparse entry of the moved key is rewritten to point at its
// new position while keeping the moved key's own version.
func (s *SparseSet[K]) Erase(k K) {
	slot, offset := s.page(k.Index())
	if slot == nil || !slot[offset].used || slot[offset].version != k.Version() {
		panic(fmt.Sprintf("storage: erase of absent key (index %d)", k.Index()))
	}
	pos := slot[offset].index
	last := len(s.packed) - 1
	lastKey := s.packed[last]

	s.packed[pos] = lastKey
	s.packed = s.packed[:last]

	slot[offset] = sparseSlot{}

	if lastKey != k {
		lastSlot, lastOffset := s.page(lastKey.Index())
		lastSlot[lastOffset].index = pos
	}
}

// Clear empties the set but keeps pages allocated.
func (s *SparseSet[K]) Clear() {
	for _, page := range s.pages {
		for i := range page {
			page[i] = sparseSlot{}
		}
	}
	s.packed = s.packed[:0]
}

// Len returns the number of members.
func (s *SparseSet[K]) Len() int {
	return len(s.packed)
}

// Capacity returns the capacity of the packed array.
func (s *SparseSet[K]) Capacity() int {
	return cap(s.packed)
}

// Reserve grows the packed array's capacity to at least n.
func (s *SparseSet[K]) Reserve(n int) {
	if n <= cap(s.packed) {
		return
	}
	grown := make([]K, len(s.packed), n)
	copy(grown, s.packed)
	s.packed = grown
}

// At returns the key at dense position i. Not stable across Erase.
func (s *SparseSet[K]) At(i int) K {
	return s.packed[i]
}

// Dense exposes the packed array in dense order (insertion order until an
// Erase moves the last key into the hole). Callers must not mutate the
// returned slice.
func (s *SparseSet[K]) Dense() []K {
	return s.packed
}

// Reverse calls fn for every member in reverse dense order (last inserted
// first), stopping early if fn returns false. Erasing the key fn was just
// called with is well-defined: swap-and-pop moves the last key, which has
// already been visited, into the current slot, and the cursor then moves
// below it, so no key is skipped or visited twice.
func (s *SparseSet[K]) Reverse(fn func(K) bool) {
	for i := len(s.packed) - 1; i >= 0; i-- {
		if !fn(s.packed[i]) {
			return
		}
	}
}

// Ascending calls fn for every member in forward dense (insertion-derived)
// order, stopping early if fn returns false. Unlike Reverse, this order is
// not erase-safe: mutating the set from within fn may skip or repeat
// members, since swap-and-pop can move an unvisited element behind the
// cursor. It exists purely for debug/inspection callers that only read.
func (s *SparseSet[K]) Ascending(fn func(K) bool) {
	for i := 0; i < len(s.packed); i++ {
		if !fn(s.packed[i]) {
			return
		}
	}
}
