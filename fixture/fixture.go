// Package fixture decodes test and CLI input into a rawiface.RawInterface.
// Fixtures are plain JSON permitting // and /* */ comments (stripped by
// tidwall/jsonc before unmarshaling), optionally packed as a txtar
// archive so a single file can carry several compilation units through
// the same merge behavior the Linker exercises in production.
package fixture

import (
	"encoding/json"
	"fmt"

	"golang.org/x/tools/txtar"

	"github.com/tidwall/jsonc"

	"github.com/dilink/dilink/rawiface"
)

// LoadJSON decodes a single JSON(C) document into a RawInterface.
func LoadJSON(data []byte) (rawiface.RawInterface, error) {
	var ri rawiface.RawInterface
	clean := jsonc.ToJSON(data)
	if err := json.Unmarshal(clean, &ri); err != nil {
		return rawiface.RawInterface{}, fmt.Errorf("fixture: decode json: %w", err)
	}
	return ri, nil
}

// LoadTxtar decodes a txtar archive whose files are each a JSON(C)
// RawInterface compilation unit, merging them via RawInterface.Merge in
// archive file order.
func LoadTxtar(data []byte) (rawiface.RawInterface, error) {
	archive := txtar.Parse(data)

	var merged rawiface.RawInterface
	for _, f := range archive.Files {
		unit, err := LoadJSON(f.Data)
		if err != nil {
			return rawiface.RawInterface{}, fmt.Errorf("fixture: compilation unit %q: %w", f.Name, err)
		}
		merged = merged.Merge(unit)
	}
	return merged, nil
}

// Load decodes data as a txtar archive if it looks like one (starts
// with the conventional "-- name --" file marker), otherwise as a
// single JSON(C) document.
func Load(data []byte) (rawiface.RawInterface, error) {
	if looksLikeTxtar(data) {
		return LoadTxtar(data)
	}
	return LoadJSON(data)
}

func looksLikeTxtar(data []byte) bool {
	trimmed := data
	for len(trimmed) > 0 && (trimmed[0] == '\n' || trimmed[0] == '\r' || trimmed[0] == ' ' || trimmed[0] == '\t') {
		trimmed = trimmed[1:]
	}
	return len(trimmed) >= 3 && string(trimmed[:3]) == "-- "
}
