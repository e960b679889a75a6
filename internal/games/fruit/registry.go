package fruit

// Registry is the live collection of falling objects. It exclusively owns
// them: other components see objects only while iterating.
//
// Removal is mark-and-sweep. Destroy marks an object dead and Each skips
// dead objects, so callbacks may destroy while iterating; Compact drops the
// dead entries once per tick.
type Registry struct {
	objects []*FallingObject
	nextID  uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{objects: make([]*FallingObject, 0, 16)}
}

// Add inserts an object and assigns it a fresh ID.
func (r *Registry) Add(o *FallingObject) *FallingObject {
	r.nextID++
	o.ID = r.nextID
	o.destroyed = false
	r.objects = append(r.objects, o)
	return o
}

// Destroy marks an object dead. Destroying a nil or already dead object is
// a silent no-op; the return value reports whether anything changed.
func (r *Registry) Destroy(o *FallingObject) bool {
	if !o.Alive() {
		return false
	}
	o.destroyed = true
	return true
}

// Each calls fn for every live object in insertion order.
// Objects added during iteration are not visited.
func (r *Registry) Each(fn func(o *FallingObject)) {
	n := len(r.objects)
	for i := 0; i < n; i++ {
		if o := r.objects[i]; o.Alive() {
			fn(o)
		}
	}
}

// Compact sweeps dead objects and returns how many were dropped.
func (r *Registry) Compact() int {
	live := r.objects[:0]
	for _, o := range r.objects {
		if o.Alive() {
			live = append(live, o)
		}
	}
	dropped := len(r.objects) - len(live)
	for i := len(live); i < len(r.objects); i++ {
		r.objects[i] = nil
	}
	r.objects = live
	return dropped
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	n := 0
	for _, o := range r.objects {
		if o.Alive() {
			n++
		}
	}
	return n
}

// Live returns a snapshot of the live objects.
func (r *Registry) Live() []FallingObject {
	out := make([]FallingObject, 0, len(r.objects))
	r.Each(func(o *FallingObject) {
		out = append(out, *o)
	})
	return out
}

// Effects holds the cosmetic fragments spawned by slices.
type Effects struct {
	fragments []*Fragment
	nextID    uint64
}

// NewEffects creates an empty effect list.
func NewEffects() *Effects {
	return &Effects{}
}

// Add inserts a fragment and assigns it a fresh ID.
func (e *Effects) Add(f *Fragment) *Fragment {
	e.nextID++
	f.ID = e.nextID
	e.fragments = append(e.fragments, f)
	return f
}

// Remove drops a fragment. Removing one twice is a no-op.
func (e *Effects) Remove(f *Fragment) {
	if f == nil || f.removed {
		return
	}
	f.removed = true
	for i, cur := range e.fragments {
		if cur == f {
			e.fragments = append(e.fragments[:i], e.fragments[i+1:]...)
			return
		}
	}
}

// Each calls fn for every fragment currently on screen.
func (e *Effects) Each(fn func(f *Fragment)) {
	for _, f := range e.fragments {
		fn(f)
	}
}

// Len returns the number of fragments on screen.
func (e *Effects) Len() int {
	return len(e.fragments)
}
