package core

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"yaml-inventory/internal/ports"
	"yaml-inventory/internal/types"
)

// GraphBuilder merges host declarations and overlay lookups into the
// inventory graph.
type GraphBuilder struct {
	Overlays ports.OverlayPort
}

func NewGraphBuilder(overlays ports.OverlayPort) GraphBuilder {
	return GraphBuilder{Overlays: overlays}
}

// Build runs in two phases. The collect phase walks every declaration,
// creating host and group nodes, unioning group memberships in
// first-seen order and accumulating inline vars last-write-wins. The
// resolve phase then computes each host's final variables exactly
// once, from the complete membership set: group overlays in the
// host's group-list order, then the host overlay, then inline vars.
// Running resolution after all declarations are collected is what
// makes the result independent of source discovery order.
func (b GraphBuilder) Build(ctx context.Context, decls []types.HostDecl) (types.Inventory, error) {
	inv := types.NewInventory()
	inline := map[string]types.Vars{}

	for _, decl := range decls {
		if strings.TrimSpace(decl.Host) == "" {
			return types.Inventory{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("host declaration missing name")
		}
		for _, name := range ExpandHostPattern(decl.Host) {
			host := inv.EnsureHost(name)
			for _, groupName := range decl.Groups {
				if !containsString(host.Groups, groupName) {
					host.Groups = append(host.Groups, groupName)
				}
				inv.EnsureGroup(groupName).AddHost(name)
			}
			if len(decl.HostVars) > 0 {
				vars, ok := inline[name]
				if !ok {
					vars = types.Vars{}
					inline[name] = vars
				}
				mergeVars(vars, decl.HostVars)
			}
		}
	}

	// Each group overlay is loaded once; the vars also become the
	// group's serialized entry.
	for _, name := range sortedGroupNames(inv) {
		vars, err := b.Overlays.GroupVars(name)
		if err != nil {
			return types.Inventory{}, err
		}
		if vars == nil {
			vars = types.Vars{}
		}
		inv.Groups[name].Vars = vars
	}

	for _, name := range sortedHostNames(inv) {
		host := inv.Hosts[name]
		merged := types.Vars{}
		for _, groupName := range host.Groups {
			mergeVars(merged, inv.Groups[groupName].Vars)
		}
		overlay, err := b.Overlays.HostVars(name)
		if err != nil {
			return types.Inventory{}, err
		}
		mergeVars(merged, overlay)
		mergeVars(merged, inline[name])
		host.Vars = merged
	}

	log.Ctx(ctx).Debug().
		Int("hosts", len(inv.Hosts)).
		Int("groups", len(inv.Groups)).
		Msg("inventory graph built")
	return inv, nil
}

// mergeVars overlays src onto dst key by key. A colliding key's value
// is replaced wholesale, never deep-merged.
func mergeVars(dst types.Vars, src types.Vars) {
	for key, value := range src {
		dst[key] = value
	}
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}

func sortedGroupNames(inv types.Inventory) []string {
	names := make([]string, 0, len(inv.Groups))
	for name := range inv.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedHostNames(inv types.Inventory) []string {
	names := make([]string, 0, len(inv.Hosts))
	for name := range inv.Hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
