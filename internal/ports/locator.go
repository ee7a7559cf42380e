package ports

import "yaml-inventory/internal/types"

// LocatorPort resolves the configured source mode into the canonical,
// ordered list of source file paths to parse.
type LocatorPort interface {
	Discover(mode types.SourceMode, path string) ([]string, error)
}
