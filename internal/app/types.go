package app

import "yaml-inventory/internal/types"

type ListRequest struct {
	Mode types.SourceMode

	// Path is the single source file in file mode, or the scan root
	// in scan mode.
	Path string
}

type ListResult struct {
	Document types.Document
	Sources  int
}

type HostVarsRequest struct {
	Mode types.SourceMode
	Path string
	Host string
}

type HostVarsResult struct {
	Vars types.Vars
}
