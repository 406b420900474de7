package domain

import "errors"

// Resolution failures surfaced to callers. The orchestration layer is
// responsible for printing them; nothing in this package writes output.
var (
	// ErrNotFound means a name has no base record at all.
	ErrNotFound = errors.New("not found")

	// ErrNotPresentInGeneration means the entity exists but not in the
	// requested generation: introduced later, or a Pokémon with no
	// learnable moves recorded at or below it.
	ErrNotPresentInGeneration = errors.New("not present in generation")

	// ErrMalformedOverride flags a change record that cannot be
	// reconciled with its base record. Rows are validated when written,
	// so this is an invariant violation rather than a user error.
	ErrMalformedOverride = errors.New("malformed override record")
)
