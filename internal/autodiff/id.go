package autodiff

// ID identifies a Variable for the lifetime of the graph it belongs to.
// The zero ID is never assigned.
type ID uint64

// IDAllocator hands out strictly increasing IDs.
//
// Every node of a graph must be created through the same allocator so that
// identifiers are unique. The zero value is ready to use.
// Not safe for concurrent use.
type IDAllocator struct {
	last ID
}

// Next returns a fresh ID. IDs are never reused.
func (a *IDAllocator) Next() ID {
	a.last++
	return a.last
}

// Last returns the most recently allocated ID, or 0 if none was allocated.
func (a *IDAllocator) Last() ID {
	return a.last
}
