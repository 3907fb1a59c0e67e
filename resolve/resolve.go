// Package resolve ties together scope resolution, dependency checking,
// and cycle detection over an already-linked interface (the caller runs
// linker.Link first) into the resolved DAG builder described
// in spec.md §4.G: a recursive walk that resolves each root component
// and its transitive subcomponents, threading each parent's
// ComponentBindings down as the child's ancestor scope.
package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dilink/dilink/canon"
	"github.com/dilink/dilink/cycle"
	"github.com/dilink/dilink/depcheck"
	"github.com/dilink/dilink/diag"
	"github.com/dilink/dilink/linker"
	"github.com/dilink/dilink/scope"
)

// ResolvedComponent is one node of the resolved DAG: a component
// together with its canonicalized provider map, its resolved children
// (subcomponents), a back-pointer to its parent (nil for roots), and
// every diagnostic raised while resolving it.
type ResolvedComponent struct {
	Type            string
	ProvidersByType map[canon.TypeKey][]canon.CanonicalProvider
	Children        []*ResolvedComponent
	Parent          *ResolvedComponent
	Diagnostics     []diag.Error
}

// AllDiagnostics walks rc and its descendants, returning every
// diagnostic collected anywhere in the subtree, in a deterministic
// pre-order (self, then children in resolution order).
func (rc *ResolvedComponent) AllDiagnostics() []diag.Error {
	out := append([]diag.Error(nil), rc.Diagnostics...)
	for _, child := range rc.Children {
		out = append(out, child.AllDiagnostics()...)
	}
	return out
}

// Run resolves every root component in li and returns one
// ResolvedComponent tree per root, in li.Roots() order.
func Run(li *linker.LinkedInterface) []*ResolvedComponent {
	idx := depcheck.BuildIndex(li)
	var out []*ResolvedComponent
	for _, root := range li.Roots() {
		out = append(out, resolveComponent(li, idx, root, nil))
	}
	return out
}

// MaxParallelism bounds the number of roots resolved concurrently by
// RunAll. Zero means unbounded (errgroup.SetLimit is not called).
var MaxParallelism = 0

// RunAll resolves every root component the same way Run does, but
// dispatches one goroutine per root via errgroup, since distinct roots
// never share a ComponentBindings and resolution is otherwise a pure
// function of the LinkedInterface. Each goroutine builds its own
// resolution subtree independently; nothing is mutated concurrently.
// The returned slice preserves li.Roots() order regardless of
// completion order. RunAll never returns an error: a malformed graph
// surfaces as diagnostics on the corresponding ResolvedComponent, not
// as a Go error, matching the rest of the pipeline's never-fail design.
func RunAll(ctx context.Context, li *linker.LinkedInterface) []*ResolvedComponent {
	idx := depcheck.BuildIndex(li)
	roots := li.Roots()
	out := make([]*ResolvedComponent, len(roots))

	g, _ := errgroup.WithContext(ctx)
	if MaxParallelism > 0 {
		g.SetLimit(MaxParallelism)
	}

	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			out[i] = resolveComponent(li, idx, root, nil)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// resolveComponent resolves c against the LinkedInterface, chaining
// parent as its ancestor ComponentBindings, then recurses into c's
// resolved subcomponent closure.
func resolveComponent(li *linker.LinkedInterface, idx *depcheck.Index, c *linker.LinkedComponent, parent *scope.ComponentBindings) *ResolvedComponent {
	scopeResult := scope.Resolve(li, c, parent)

	rc := &ResolvedComponent{
		Type:            c.Type,
		ProvidersByType: scopeResult.Bindings.Local,
		Diagnostics:     append([]diag.Error(nil), scopeResult.Diagnostics...),
	}

	// Every component that builds an object of its own — root or
	// subcomponent — has its RootType checked as a synthetic
	// dependency (spec.md §4.E pass 2): a subcomponent builds a root
	// object too, it just isn't the entry point of the whole graph.
	var rootType canon.TypeKey
	if c.RootType != "" {
		rootType = canon.NewTypeKey(string(c.RootType))
	}
	rc.Diagnostics = append(rc.Diagnostics, depcheck.Check(scopeResult.Bindings, idx, rootType)...)
	rc.Diagnostics = append(rc.Diagnostics, cycle.Detect(scopeResult.Bindings)...)

	for _, subName := range scopeResult.SubcomponentClosure {
		sub := li.Components[subName]
		if sub == nil {
			continue
		}
		child := resolveComponent(li, idx, sub, scopeResult.Bindings)
		child.Parent = rc
		rc.Children = append(rc.Children, child)
	}

	return rc
}
