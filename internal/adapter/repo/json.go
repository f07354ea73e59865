// Package repo implements the domain repositories against PostgreSQL.
// Variable-shaped fields (lists, tag sets, traces, outputs) live in JSONB
// columns and cross the boundary here; the core only ever sees typed structs.
package repo

import (
	"encoding/json"
	"fmt"
)

// mustJSON marshals a value for a JSONB column. The inputs are our own domain
// structs, so a marshal failure is a programming error surfaced as one.
func mustJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb column: %w", err)
	}
	return raw, nil
}

// fromJSON decodes a JSONB column into out, treating NULL/empty as absent.
func fromJSON(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode jsonb column: %w", err)
	}
	return nil
}
