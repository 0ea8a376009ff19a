package engine

// registry is the flat z-order over all live components. Index 0 is
// bottom-most, the last index top-most. Paint iterates bottom-up;
// hit-testing and key dispatch iterate top-down.
type registry struct {
	members  []*Component
	capacity int
}

func newRegistry(capacity int) *registry {
	return &registry{
		members:  make([]*Component, 0, capacity),
		capacity: capacity,
	}
}

func (r *registry) len() int {
	return len(r.members)
}

// at returns the member at z index i (0 = bottom-most).
func (r *registry) at(i int) *Component {
	return r.members[i]
}

// insert places the component top-most. Returns false when full.
func (r *registry) insert(c *Component) bool {
	if len(r.members) >= r.capacity {
		return false
	}
	r.members = append(r.members, c)
	return true
}

// raise moves the component to the top, shifting the members above it
// down one slot and preserving their relative order. No-op when the
// component is absent, already top-most, or alone.
func (r *registry) raise(c *Component) {
	n := len(r.members)
	if n < 2 || r.members[n-1] == c {
		return
	}
	idx := r.indexOf(c)
	if idx < 0 {
		return
	}
	copy(r.members[idx:], r.members[idx+1:])
	r.members[n-1] = c
}

// remove deletes the component, preserving the order of the rest.
func (r *registry) remove(c *Component) {
	idx := r.indexOf(c)
	if idx < 0 {
		return
	}
	r.members = append(r.members[:idx], r.members[idx+1:]...)
}

func (r *registry) indexOf(c *Component) int {
	for i, m := range r.members {
		if m == c {
			return i
		}
	}
	return -1
}

// topAt returns the top-most component whose rect contains the point,
// nil on a miss.
func (r *registry) topAt(x, y uint16) *Component {
	for i := len(r.members) - 1; i >= 0; i-- {
		if r.members[i].rect.Contains(x, y) {
			return r.members[i]
		}
	}
	return nil
}
