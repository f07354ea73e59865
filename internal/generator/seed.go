// Package generator produces deterministic structured content per asset kind.
// No generator calls an external service: given the same input (including the
// optional explicit seed) the output bytes are always identical, and any field
// of the input can change the derived candidate indices.
package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"

	"contentforge/internal/domain"
)

// deriveSeed returns the stable seed for the input: the sha256 of the explicit
// seed when present, else of the canonical JSON serialization of the whole
// input. The hex digest is truncated to 16 characters; the first 8 parse as
// the unsigned index n used to pick from candidate pools.
func deriveSeed(in domain.GenerateInput) (seed string, n uint64) {
	base := in.Seed
	if base == "" {
		raw, _ := json.Marshal(in)
		base = string(raw)
	}
	sum := sha256.Sum256([]byte(base))
	seed = hex.EncodeToString(sum[:])[:16]
	n, _ = strconv.ParseUint(seed[:8], 16, 64)
	return seed, n
}

// pick indexes into a fixed candidate pool by n mod len.
func pick[T any](pool []T, n uint64) T {
	return pool[n%uint64(len(pool))]
}
