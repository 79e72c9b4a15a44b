package state

// OpKind names an operation that can be in flight.
type OpKind int

const (
	OpCreate OpKind = iota
	OpSave
	OpDelete
	OpToggle
	OpLoad
)

func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpSave:
		return "save"
	case OpDelete:
		return "delete"
	case OpToggle:
		return "toggle"
	case OpLoad:
		return "load"
	}
	return "unknown"
}

// Op identifies one in-flight operation. ID is zero for operations that are
// not bound to an item (create, load).
type Op struct {
	Kind OpKind
	ID   int64
}

// InFlight is the set of outstanding operations. Toggles are counted rather
// than gated, since several may overlap on one item.
type InFlight map[Op]int

// Begin marks op as outstanding. It returns false, leaving the set untouched,
// if op is already outstanding.
func (f InFlight) Begin(op Op) bool {
	if f[op] > 0 {
		return false
	}
	f[op] = 1
	return true
}

// Add marks one more outstanding instance of op without gating.
func (f InFlight) Add(op Op) {
	f[op]++
}

// Done clears one outstanding instance of op.
func (f InFlight) Done(op Op) {
	if f[op] <= 1 {
		delete(f, op)
		return
	}
	f[op]--
}

// Has reports whether op is outstanding.
func (f InFlight) Has(op Op) bool {
	return f[op] > 0
}

// Busy reports whether any operation touching item id is outstanding.
func (f InFlight) Busy(id int64) bool {
	for op := range f {
		if op.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of outstanding operations.
func (f InFlight) Len() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}
