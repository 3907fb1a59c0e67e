package scope

import (
	"github.com/dilink/dilink/canon"
	"github.com/dilink/dilink/diag"
	"github.com/dilink/dilink/linker"
	"github.com/dilink/dilink/rawiface"
)

// Result is everything scope.Resolve produces for one component: the
// constructed bindings, the module/subcomponent closures (exposed so
// resolve.Run can recurse into the subcomponent closure with Bindings
// as parent), and the diagnostics raised while building them.
type Result struct {
	Bindings            *ComponentBindings
	ModuleClosure       []string
	SubcomponentClosure []string
	Diagnostics         []diag.Error
}

// Resolve builds the ComponentBindings for component c, chaining parent
// as its ancestor scope (nil for a root component). See spec.md §4.D.
func Resolve(li *linker.LinkedInterface, c *linker.LinkedComponent, parent *ComponentBindings) *Result {
	r := &Result{}

	modules, moduleDiags := resolveModuleClosure(li, c.IncludedModules)
	r.Diagnostics = append(r.Diagnostics, moduleDiags...)
	for _, m := range modules {
		r.ModuleClosure = append(r.ModuleClosure, m.Type)
	}

	subNames, subDiags := resolveSubcomponentClosure(li, c.Subcomponents, modules)
	r.Diagnostics = append(r.Diagnostics, subDiags...)
	r.SubcomponentClosure = subNames

	providerMap, dupDiags := buildProviderMap(c, modules, subNames, li)
	r.Diagnostics = append(r.Diagnostics, dupDiags...)

	r.Bindings = &ComponentBindings{
		ComponentName: c.Type,
		Local:         providerMap,
		Parent:        parent,
	}
	return r
}

// resolveModuleClosure performs a BFS over c's included modules,
// resolving each name against li.Modules. Unknown names produce
// missingModule diagnostics; duplicate visits are suppressed by a
// seen-set. BFS queue order determines both the returned slice's order
// and diagnostic order, deterministically w.r.t. input order.
func resolveModuleClosure(li *linker.LinkedInterface, names []string) ([]*linker.LinkedModule, []diag.Error) {
	var (
		out   []*linker.LinkedModule
		diags []diag.Error
		seen  = make(map[string]bool)
		queue = append([]string(nil), names...)
	)

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		seen[name] = true

		m, ok := li.Modules[name]
		if !ok {
			diags = append(diags, diag.MissingModuleError(name))
			continue
		}
		out = append(out, m)
		queue = append(queue, m.IncludedModules...)
	}

	return out, diags
}

// resolveSubcomponentClosure unions c's own subcomponent names with
// every module's subcomponent installations, resolving each against
// li.Components. Unknown names produce missingSubcomponent diagnostics.
func resolveSubcomponentClosure(li *linker.LinkedInterface, ownNames []string, modules []*linker.LinkedModule) ([]string, []diag.Error) {
	var (
		out   []string
		diags []diag.Error
		seen  = make(map[string]bool)
	)

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if _, ok := li.Components[name]; !ok {
			diags = append(diags, diag.MissingSubcomponentError(name))
			return
		}
		out = append(out, name)
	}

	for _, name := range ownNames {
		add(name)
	}
	for _, m := range modules {
		for _, name := range m.Subcomponents {
			add(name)
		}
	}

	return out, diags
}

// buildProviderMap concatenates c's own providers, each module's
// providers (in BFS order), c's seed provider, and every resolved
// subcomponent's component-factory provider, canonicalizes all of
// them, and groups the result by TypeKey. A TypeKey bound by more than
// one non-collection provider produces a duplicateProvider diagnostic;
// collection-only groups are legal and retained with every contributor.
func buildProviderMap(c *linker.LinkedComponent, modules []*linker.LinkedModule, subNames []string, li *linker.LinkedInterface) (map[canon.TypeKey][]canon.CanonicalProvider, []diag.Error) {
	type entry struct {
		raw   rawiface.RawProvider
		owner string
	}

	var entries []entry
	for _, p := range c.Providers {
		entries = append(entries, entry{p, c.Type})
	}
	for _, m := range modules {
		for _, p := range m.Providers {
			entries = append(entries, entry{p, m.Type})
		}
	}
	if c.SeedProvider != nil {
		entries = append(entries, entry{*c.SeedProvider, c.Type})
	}
	for _, subName := range subNames {
		sub := li.Components[subName]
		if sub == nil || sub.ComponentFactoryProvider == nil {
			continue
		}
		entries = append(entries, entry{*sub.ComponentFactoryProvider, sub.Type})
	}

	providerMap := make(map[canon.TypeKey][]canon.CanonicalProvider)
	var order []canon.TypeKey
	for _, e := range entries {
		cp := canon.Canonicalize(e.owner, e.raw)
		if _, seen := providerMap[cp.Target]; !seen {
			order = append(order, cp.Target)
		}
		providerMap[cp.Target] = append(providerMap[cp.Target], cp)
	}

	var diags []diag.Error
	for _, k := range order {
		group := providerMap[k]
		if len(group) <= 1 {
			continue
		}
		allCollection := true
		for _, p := range group {
			if !p.IsCollectionProvider {
				allCollection = false
				break
			}
		}
		if !allCollection {
			diags = append(diags, diag.DuplicateProviderError(group))
		}
	}

	return providerMap, diags
}
