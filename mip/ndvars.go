package mip

// Vars is an N-dimensional container of variable handles. The rank is fixed
// at construction; the shape is hyper-rectangular by construction, stored as
// a flat arena addressed through precomputed row-major strides. A zero-rank
// container holds exactly one scalar handle.
type Vars struct {
	handles []Var
	extents []int
	strides []int
}

func newShape(sizes []int) Vars {
	n := 1
	for _, s := range sizes {
		if s < 0 {
			usagePanic("NewVars", ErrIndex, "negative extent %d", s)
		}
		n *= s
	}
	extents := make([]int, len(sizes))
	copy(extents, sizes)
	strides := make([]int, len(sizes))
	stride := 1
	for d := len(sizes) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= sizes[d]
	}
	return Vars{handles: make([]Var, n), extents: extents, strides: strides}
}

// DetachedVars builds a container of the given shape whose handles reference
// no model. Useful for staging shapes and for tests; the handles report
// Valid() == false until overwritten.
func DetachedVars(sizes ...int) Vars {
	g := newShape(sizes)
	for i := range g.handles {
		g.handles[i] = Var{ind: NoVar}
	}
	return g
}

// Rank returns the number of index dimensions.
func (g Vars) Rank() int { return len(g.extents) }

// Extent returns the size of dimension d.
func (g Vars) Extent(d int) int { return g.extents[d] }

// Len returns the total number of handles held.
func (g Vars) Len() int { return len(g.handles) }

// At returns the handle at the given index tuple. The number of indices must
// equal the rank and every component must lie in [0, extent); violations
// panic with a UsageError wrapping ErrIndex.
func (g Vars) At(idx ...int) Var {
	return g.handles[g.flat("Vars.At", idx)]
}

// Put stores a handle at the given index tuple, with the same checking as
// At. It is intended for filling detached containers.
func (g Vars) Put(v Var, idx ...int) {
	g.handles[g.flat("Vars.Put", idx)] = v
}

func (g Vars) flat(op string, idx []int) int {
	if len(idx) != len(g.extents) {
		usagePanic(op, ErrIndex, "got %d indices, container has rank %d", len(idx), len(g.extents))
	}
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= g.extents[d] {
			usagePanic(op, ErrIndex, "index %d out of range [0,%d) in dimension %d", i, g.extents[d], d)
		}
		flat += i * g.strides[d]
	}
	return flat
}
