package types

type SourceMode string

const (
	// SourceModeScan walks a root directory recursively and picks up
	// every file that carries the inventory marker.
	SourceModeScan SourceMode = "scan"

	// SourceModeFile reads exactly one explicitly named source file.
	SourceModeFile SourceMode = "file"
)
