// Package sstring implements the small-string-optimised container used by
// component payloads that embed names. It is specified only to the extent
// spec.md requires: round-trippable bytes and a NUL-terminated CStr().
package sstring

// inlineCap is the number of bytes stored in-place before a String spills
// to a heap buffer — 23 on a 64-bit target, matching the reference layout.
const inlineCap = 23

// discriminatorMask isolates the top three bits of the meta byte. Zero
// means the representation is inline and the remaining five bits encode
// spare inline capacity; non-zero means the string has spilled to heap.
const discriminatorMask = 0xE0

// heapDiscriminator is the meta byte value used once a String has spilled.
// Only its top bit is meaningful; the low bits are unused in heap mode.
const heapDiscriminator = 0x80

// String is a small-string-optimised byte sequence: up to inlineCap bytes
// live in-line, longer strings spill to a heap-backed buffer. The zero
// value is the empty inline string.
type String struct {
	inline [inlineCap]byte
	meta   byte
	heap   []byte
}

// New builds a String from s, choosing the inline or heap representation.
func New(s string) String {
	if len(s) <= inlineCap {
		var out String
		copy(out.inline[:], s)
		out.meta = byte(inlineCap - len(s))
		return out
	}
	buf := make([]byte, len(s))
	copy(buf, s)
	return String{meta: heapDiscriminator, heap: buf}
}

// IsInline reports whether s is stored in-place.
func (s String) IsInline() bool {
	return s.meta&discriminatorMask == 0
}

// Len returns the string's length in bytes.
func (s String) Len() int {
	if s.IsInline() {
		return inlineCap - int(s.meta&0x1F)
	}
	return len(s.heap)
}

// String returns the contained text.
func (s String) String() string {
	if s.IsInline() {
		return string(s.inline[:s.Len()])
	}
	return string(s.heap)
}

// CStr returns the string's bytes followed by a trailing NUL, the only
// external contract the SSO container makes beyond round-tripping.
func (s String) CStr() []byte {
	n := s.Len()
	out := make([]byte, n+1)
	if s.IsInline() {
		copy(out, s.inline[:n])
	} else {
		copy(out, s.heap)
	}
	return out
}
