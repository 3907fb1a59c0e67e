// Package depcheck implements the dependency checker (spec.md §4.E): for
// every provider bound locally in a component, every dependency it
// declares must be satisfied somewhere in the component's scope chain;
// additionally, the component's synthetic rootType dependency, when one
// is given (for a root or a subcomponent alike), must itself be
// satisfied. Diagnostics are collected, not thrown.
package depcheck

import (
	"github.com/dilink/dilink/canon"
	"github.com/dilink/dilink/diag"
	"github.com/dilink/dilink/linker"
	"github.com/dilink/dilink/scope"
)

// Index maps a TypeKey to the names of every module, anywhere in the
// LinkedInterface, whose providers could satisfy it. It is computed
// once globally (not per-scope) since a dependency missing from one
// scope chain may still be available by including a module that
// happens to live outside the current closure.
type Index struct {
	byType map[canon.TypeKey][]string
}

// BuildIndex scans every module in li exactly once.
func BuildIndex(li *linker.LinkedInterface) *Index {
	idx := &Index{byType: make(map[canon.TypeKey][]string)}
	for _, name := range sortedModuleNames(li) {
		m := li.Modules[name]
		for _, p := range m.Providers {
			cp := canon.Canonicalize(m.Type, p)
			idx.byType[cp.Target] = appendUnique(idx.byType[cp.Target], m.Type)
		}
	}
	return idx
}

func sortedModuleNames(li *linker.LinkedInterface) []string {
	// Deterministic module visitation order: the map has no inherent
	// order, so walk ComponentOrder's sibling concept is unavailable
	// here; fall back to a stable pass over the map keys sorted
	// lexicographically, which only affects SuggestedModules ordering,
	// never correctness.
	names := make([]string, 0, len(li.Modules))
	for name := range li.Modules {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}

func appendUnique(ss []string, s string) []string {
	for _, existing := range ss {
		if existing == s {
			return ss
		}
	}
	return append(ss, s)
}

// SuggestedModules returns the module names that could satisfy k, or
// nil if none are known to the index.
func (idx *Index) SuggestedModules(k canon.TypeKey) []string {
	return idx.byType[k]
}

// Check runs both passes of §4.E against bindings: the local-provider
// dependency satisfaction pass, and (when rootType is non-empty) the
// synthetic root-type dependency pass.
func Check(bindings *scope.ComponentBindings, idx *Index, rootType canon.TypeKey) []diag.Error {
	var diags []diag.Error

	for _, k := range sortedKeys(bindings.Local) {
		for _, provider := range bindings.Local[k] {
			for _, dep := range provider.Dependencies {
				if !bindings.Satisfied(dep) {
					p := provider
					diags = append(diags, diag.MissingProviderError(dep, &p, idx.SuggestedModules(dep)))
				}
			}
		}
	}

	if rootType != "" && !bindings.Satisfied(rootType) {
		diags = append(diags, diag.MissingProviderError(rootType, nil, idx.SuggestedModules(rootType)))
	}

	return diags
}

func sortedKeys(m map[canon.TypeKey][]canon.CanonicalProvider) []canon.TypeKey {
	keys := make([]canon.TypeKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
