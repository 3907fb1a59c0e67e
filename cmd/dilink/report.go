package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dilink/dilink/diag"
	"github.com/dilink/dilink/resolve"
)

// printHuman writes one line per diagnostic to stderr, grouped by root,
// and a summary line to stdout — mirroring the teacher's own
// fmt.Fprintf-to-stderr reporting convention in main.go.
func printHuman(roots []*resolve.ResolvedComponent, allDiags []diag.Error) {
	for _, root := range roots {
		rootDiags := root.AllDiagnostics()
		if len(rootDiags) == 0 {
			continue
		}
		fmt.Fprintf(os.Stderr, "dilink: component %s:\n", root.Type)
		for _, d := range rootDiags {
			fmt.Fprintf(os.Stderr, "  [%s] %s\n", d.Kind, d.Error())
		}
	}

	if len(allDiags) == 0 {
		fmt.Fprintln(os.Stdout, "dilink: resolved cleanly, 0 diagnostics")
		return
	}
	fmt.Fprintf(os.Stdout, "dilink: %d diagnostic(s) across %d root(s)\n", len(allDiags), len(roots))
}

// jsonDiagnostic is the wire shape of diag.Error for --json output: a
// flat record naming only the fields relevant to its Kind, since
// diag.Error itself carries no json tags (it is a library sum type,
// not a CLI output schema).
type jsonDiagnostic struct {
	Kind             string   `json:"kind"`
	Name             string   `json:"name,omitempty"`
	Dependency       string   `json:"dependency,omitempty"`
	SuggestedModules []string `json:"suggestedModules,omitempty"`
	Chain            []string `json:"chain,omitempty"`
	Message          string   `json:"message"`
}

func printJSON(allDiags []diag.Error) error {
	out := make([]jsonDiagnostic, 0, len(allDiags))
	for _, d := range allDiags {
		jd := jsonDiagnostic{
			Kind:             d.Kind.String(),
			Name:             d.Name,
			SuggestedModules: d.SuggestedModules,
			Message:          d.Error(),
		}
		if d.Dependency != "" {
			jd.Dependency = string(d.Dependency)
		}
		for _, k := range d.Chain {
			jd.Chain = append(jd.Chain, string(k))
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("dilink: encode json: %w", err)
	}
	if len(allDiags) > 0 {
		return fmt.Errorf("%d diagnostic(s)", len(allDiags))
	}
	return nil
}
