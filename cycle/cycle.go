// Package cycle implements the cycle detector (spec.md §4.F): a DFS
// over a component's locally-bound providers that reports any cycle
// reachable through non-weak edges. Lazy (provider-indirection) edges
// still participate in cycle detection — only a weak edge breaks
// traversal, since a weak dependency is resolved lazily by contract and
// can never itself be the edge that completes a cycle at graph-build
// time.
package cycle

import (
	"github.com/dilink/dilink/canon"
	"github.com/dilink/dilink/diag"
	"github.com/dilink/dilink/scope"
)

// color marks a node's DFS state: unvisited, on the current ancestor
// trail (gray), or fully explored (black/resolved).
type color int

const (
	white color = iota
	gray
	black
)

// Detect runs DFS cycle detection over bindings.Local only: edges that
// leave the local provider map (dependencies satisfied purely by an
// ancestor scope) are, by construction, absent from Local and cannot
// be traversed, so a cross-scope edge can never participate in a cycle
// reported at this scope.
func Detect(bindings *scope.ComponentBindings) []diag.Error {
	d := &detector{
		local:  bindings.Local,
		colors: make(map[canon.TypeKey]color),
	}
	for _, k := range d.sortedKeys() {
		if d.colors[k] == white {
			d.visit(k, nil)
		}
	}
	return d.diags
}

type detector struct {
	local     map[canon.TypeKey][]canon.CanonicalProvider
	colors    map[canon.TypeKey]color
	ancestors []canon.TypeKey
	diags     []diag.Error
}

func (d *detector) sortedKeys() []canon.TypeKey {
	keys := make([]canon.TypeKey, 0, len(d.local))
	for k := range d.local {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func (d *detector) visit(k canon.TypeKey, via *canon.CanonicalProvider) {
	if d.isWeak(k) {
		// A weak key is never expanded, even as a DFS entry point: its
		// own transitive dependencies are resolved lazily and cannot
		// contribute to a cycle reported at this scope.
		d.colors[k] = black
		return
	}

	d.colors[k] = gray
	d.ancestors = append(d.ancestors, k)

	for _, provider := range d.local[k] {
		for _, dep := range provider.Dependencies {
			// A weak key never participates in cycle detection,
			// regardless of which provider's edge reaches it: the
			// provider bound to dep is resolved lazily by contract,
			// so dep is always treated as a leaf here.
			if d.isWeak(dep) {
				continue
			}
			if _, ok := d.local[dep]; !ok {
				// Not locally bound: satisfied (if at all) by an
				// ancestor scope, which cannot loop back into this
				// scope's own cycle.
				continue
			}
			switch d.colors[dep] {
			case gray:
				d.diags = append(d.diags, diag.CyclicalDependencyError(d.chainTo(dep)))
			case white:
				d.visit(dep, &provider)
			case black:
				// already fully explored, no cycle through here
			}
		}
	}

	d.ancestors = d.ancestors[:len(d.ancestors)-1]
	d.colors[k] = black
}

// isWeak reports whether any provider locally bound to k was declared
// weak. Weakness is a property of the key, derived from its own
// binding, not of the edge pointing into it.
func (d *detector) isWeak(k canon.TypeKey) bool {
	for _, p := range d.local[k] {
		if p.IsWeak {
			return true
		}
	}
	return false
}

// chainTo builds the ancestor trail from the first occurrence of dep in
// d.ancestors through to the current top of the trail, then back to
// dep, so chain[0] == chain[len(chain)-1] and every consecutive pair is
// a real dependency edge.
func (d *detector) chainTo(dep canon.TypeKey) []canon.TypeKey {
	start := 0
	for i, k := range d.ancestors {
		if k == dep {
			start = i
			break
		}
	}
	chain := append([]canon.TypeKey(nil), d.ancestors[start:]...)
	chain = append(chain, dep)
	return chain
}
