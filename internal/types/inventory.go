package types

// Vars holds an arbitrary variable mapping as decoded by yaml.v3.
// Values are opaque to the engine: they are stored and re-emitted,
// never interpreted.
type Vars map[string]any

// Host is a node in the inventory graph. Groups preserves first-seen
// list order across all declarations of the host, which fixes the
// precedence of group overlays during variable resolution.
type Host struct {
	Name   string
	Groups []string
	Vars   Vars
}

// Group exists only because at least one host references it. Hosts is
// a back-reference list of member names, in first-seen order; Vars is
// the group overlay mapping, empty when no overlay file exists.
type Group struct {
	Name  string
	Hosts []string
	Vars  Vars
}

// Inventory is the root aggregate built fresh on every run.
type Inventory struct {
	Hosts  map[string]*Host
	Groups map[string]*Group
}

func NewInventory() Inventory {
	return Inventory{
		Hosts:  make(map[string]*Host),
		Groups: make(map[string]*Group),
	}
}

// EnsureHost returns the host node for name, creating it on first use.
func (inv Inventory) EnsureHost(name string) *Host {
	if host, ok := inv.Hosts[name]; ok {
		return host
	}
	host := &Host{Name: name, Vars: Vars{}}
	inv.Hosts[name] = host
	return host
}

// EnsureGroup returns the group node for name, creating it on first use.
func (inv Inventory) EnsureGroup(name string) *Group {
	if group, ok := inv.Groups[name]; ok {
		return group
	}
	group := &Group{Name: name, Hosts: nil, Vars: Vars{}}
	inv.Groups[name] = group
	return group
}

// AddHost appends a member name unless it is already present.
func (g *Group) AddHost(name string) {
	for _, existing := range g.Hosts {
		if existing == name {
			return
		}
	}
	g.Hosts = append(g.Hosts, name)
}
