package constants

import "time"

// Version is stamped into the meta table at setup time. Query commands
// refuse databases written under a different major.minor.
const Version = "0.10.0"

const (
	ExternalAPITimeout = 30 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	SetupTimeout       = 30 * time.Minute
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	// FetchChunkSize bounds the concurrent requests per fetch batch.
	// Unbounded fan-out runs the process out of file descriptors.
	FetchChunkSize = 100

	// ListPageLimit is passed to the paginated index endpoints so the
	// full identifier list arrives in one page.
	ListPageLimit = 100000
)

const DefaultAPIBaseURL = "https://pokeapi.co/api/v2/"

const (
	// SuggestionLimit caps how many fuzzy matches an error message lists.
	SuggestionLimit = 20
)
