package core

import (
	"sort"

	"yaml-inventory/internal/types"
)

type Serializer struct{}

func NewSerializer() Serializer {
	return Serializer{}
}

// Document projects the merged graph into the externally mandated
// document shape: one entry per group, an "all" group listing every
// group under children, and the reserved "_meta" entry carrying
// per-host merged variables. The projection is pure; its output
// depends only on the graph.
func (s Serializer) Document(inv types.Inventory) types.Document {
	doc := types.Document{}

	meta := types.Meta{HostVars: make(map[string]types.Vars, len(inv.Hosts))}
	for name, host := range inv.Hosts {
		vars := host.Vars
		if vars == nil {
			vars = types.Vars{}
		}
		meta.HostVars[name] = vars
	}
	doc[types.MetaKey] = meta

	if len(inv.Hosts) == 0 && len(inv.Groups) == 0 {
		doc[types.AllGroup] = map[string][]string{"children": {"ungrouped"}}
		return doc
	}

	all := types.NewGroupEntry()
	for _, name := range sortedGroupNames(inv) {
		group := inv.Groups[name]
		entry := types.NewGroupEntry()
		entry.Hosts = append(entry.Hosts, group.Hosts...)
		sort.Strings(entry.Hosts)
		if group.Vars != nil {
			entry.Vars = group.Vars
		}
		doc[name] = entry
		all.Children = append(all.Children, name)
	}
	doc[types.AllGroup] = all
	return doc
}
