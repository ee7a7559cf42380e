package types

// MetaKey is the reserved top-level document entry holding per-host
// merged variables.
const MetaKey = "_meta"

// AllGroup is the implicit group every other group is a child of.
const AllGroup = "all"

// GroupEntry is the serialized form of one group in the output
// document. All three fields are always emitted, empty or not, to
// match the shape the external consumer expects.
type GroupEntry struct {
	Hosts    []string `json:"hosts"`
	Vars     Vars     `json:"vars"`
	Children []string `json:"children"`
}

func NewGroupEntry() GroupEntry {
	return GroupEntry{
		Hosts:    []string{},
		Vars:     Vars{},
		Children: []string{},
	}
}

// Meta is the value under the reserved MetaKey entry.
type Meta struct {
	HostVars map[string]Vars `json:"hostvars"`
}

// Document is the full serialized inventory: one entry per group name
// plus the reserved MetaKey entry. encoding/json emits map keys in
// sorted order, which keeps successive runs byte-identical.
type Document map[string]any
