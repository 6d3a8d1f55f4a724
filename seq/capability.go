package seq

import "strings"

// Capability is a declared fact about a sequence type. The zip containers
// intersect the capabilities of their owned sequences once at construction
// and gate operations on the result.
type Capability uint8

const (
	// CapAppend means the sequence can grow past its current length
	// without an upper bound.
	CapAppend Capability = 1 << iota

	// CapRandomAccess means At runs in constant time.
	CapRandomAccess

	// CapBidirectional means the sequence can be walked back to front.
	CapBidirectional
)

func (c Capability) Has(want Capability) bool {
	return c&want == want
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(CapAppend) {
		parts = append(parts, "append")
	}
	if c.Has(CapRandomAccess) {
		parts = append(parts, "random-access")
	}
	if c.Has(CapBidirectional) {
		parts = append(parts, "bidirectional")
	}
	return strings.Join(parts, "|")
}
