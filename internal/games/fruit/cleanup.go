package fruit

// Cleaner prunes objects that left the play field. Leaving the field costs
// nothing: a missed fruit is just gone.
type Cleaner struct {
	objects *Registry
	top     float64
	bottom  float64

	// OnMiss, if set, observes every pruned object.
	OnMiss func(o *FallingObject)
}

// NewCleaner creates a cleaner for the vertical band [top, bottom].
func NewCleaner(objects *Registry, top, bottom float64) *Cleaner {
	return &Cleaner{objects: objects, top: top, bottom: bottom}
}

// Tick destroys every object above the top or below the bottom of the field
// and sweeps the registry. It returns how many objects it pruned.
func (c *Cleaner) Tick() int {
	pruned := 0
	c.objects.Each(func(o *FallingObject) {
		if o.Pos.Y > c.bottom || o.Pos.Y < c.top {
			if c.objects.Destroy(o) {
				pruned++
				if c.OnMiss != nil {
					c.OnMiss(o)
				}
			}
		}
	})
	c.objects.Compact()
	return pruned
}
