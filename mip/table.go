package mip

// Table stores one Vars container per symbolic variable-family key. The key
// type is a small closed enumeration; the table length is fixed at
// construction and equals the number of declared keys. A slot is empty until
// Set is called for it, and reading an empty slot is a usage error.
type Table[K ~int] struct {
	groups  []Vars
	present []bool
}

// NewTable returns a table for size declared keys, all slots empty.
func NewTable[K ~int](size int) *Table[K] {
	return &Table[K]{groups: make([]Vars, size), present: make([]bool, size)}
}

func (t *Table[K]) slot(op string, key K) int {
	i := int(key)
	if i < 0 || i >= len(t.groups) {
		usagePanic(op, ErrIndex, "key %d out of range [0,%d)", i, len(t.groups))
	}
	return i
}

// Set stores a container under key. Setting a key again overwrites it.
func (t *Table[K]) Set(key K, g Vars) {
	i := t.slot("Table.Set", key)
	t.groups[i] = g
	t.present[i] = true
}

// Group returns the container stored under key. Reading a key that was never
// set panics with a UsageError wrapping ErrNotInitialized.
func (t *Table[K]) Group(key K) Vars {
	i := t.slot("Table.Group", key)
	if !t.present[i] {
		usagePanic("Table.Group", ErrNotInitialized, "key %d was never set", i)
	}
	return t.groups[i]
}

// Var returns the handle stored under key at the given index tuple; with no
// indices it returns the scalar of a rank-0 family.
func (t *Table[K]) Var(key K, idx ...int) Var {
	return t.Group(key).At(idx...)
}
