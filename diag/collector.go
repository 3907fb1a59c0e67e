package diag

// Collector accumulates diagnostics in insertion order. It is not
// synchronized and must not be shared across goroutines. The resolve
// package does not use it: each component's diagnostics are gathered
// directly into its ResolvedComponent.Diagnostics slice.
type Collector struct {
	errors []Error
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic. Resolution never aborts on a diagnostic:
// callers keep going so a single run surfaces every defect.
func (c *Collector) Add(e Error) {
	c.errors = append(c.errors, e)
}

// AddAll appends every diagnostic in es, in order.
func (c *Collector) AddAll(es []Error) {
	c.errors = append(c.errors, es...)
}

// Errors returns the collected diagnostics in insertion order. The
// returned slice is owned by the caller; mutating it does not affect
// the Collector.
func (c *Collector) Errors() []Error {
	return append([]Error(nil), c.errors...)
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int { return len(c.errors) }

// OK reports whether no diagnostics have been collected.
func (c *Collector) OK() bool { return len(c.errors) == 0 }
