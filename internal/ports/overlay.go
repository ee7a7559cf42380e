package ports

import "yaml-inventory/internal/types"

// OverlayPort looks up the conventional per-group and per-host
// variable overlay files. A missing overlay is not an error and yields
// an empty mapping; a malformed one is.
type OverlayPort interface {
	GroupVars(name string) (types.Vars, error)
	HostVars(name string) (types.Vars, error)
}
