package types

// HostDecl is one raw host record as it appears in a source file.
// Groups and HostVars are optional; Host is required.
type HostDecl struct {
	Host     string   `yaml:"host"`
	Groups   []string `yaml:"groups,omitempty"`
	HostVars Vars     `yaml:"hostvars,omitempty"`
}

// SourceDoc is the decoded body of a single inventory source file.
type SourceDoc struct {
	Hosts []HostDecl `yaml:"hosts"`
}
