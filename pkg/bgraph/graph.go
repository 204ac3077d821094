package bgraph

import "sort"

// Graph is the full set of routers and interfaces built for one annotation
// run. It owns every Router and Interface; pkg/annotate never constructs
// either directly.
type Graph struct {
	Routers    map[string]*Router
	Interfaces map[string]*Interface
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		Routers:    make(map[string]*Router),
		Interfaces: make(map[string]*Interface),
	}
}

// Router returns the router named name, creating it if absent.
func (g *Graph) Router(name string) *Router {
	r, ok := g.Routers[name]
	if !ok {
		r = NewRouter(name)
		g.Routers[name] = r
	}
	return r
}

// Interface returns the interface at addr, creating it (with ASN/org 0) if
// absent.
func (g *Graph) Interface(addr string) *Interface {
	i, ok := g.Interfaces[addr]
	if !ok {
		i = NewInterface(addr, 0, 0)
		g.Interfaces[addr] = i
	}
	return i
}

// VRFRouters returns every router flagged as a VRF router, in map
// iteration order (callers needing determinism must sort).
func (g *Graph) VRFRouters() []*Router {
	var out []*Router
	for _, r := range g.Routers {
		if r.VRF {
			out = append(out, r)
		}
	}
	return out
}

// NonVRFRouters returns every router not flagged as a VRF router.
func (g *Graph) NonVRFRouters() []*Router {
	var out []*Router
	for _, r := range g.Routers {
		if !r.VRF {
			out = append(out, r)
		}
	}
	return out
}

// Partition splits every router into the three disjoint groups the
// refinement loop processes separately: routers with at least one direct
// (non-VRF) successor, VRF routers (necessarily with only VRF-edge
// successors), and last-hop routers with no successor at all, regardless
// of their VRF flag. Each group is sorted by name for deterministic
// iteration order across runs.
func (g *Graph) Partition() (succRouters, vrfRouters, lastHopRouters []*Router) {
	for _, r := range g.Routers {
		switch {
		case len(r.Succ) == 0:
			lastHopRouters = append(lastHopRouters, r)
		case r.VRF:
			vrfRouters = append(vrfRouters, r)
		default:
			succRouters = append(succRouters, r)
		}
	}
	byName := func(rs []*Router) {
		sort.Slice(rs, func(i, j int) bool { return rs[i].Name < rs[j].Name })
	}
	byName(succRouters)
	byName(vrfRouters)
	byName(lastHopRouters)
	return succRouters, vrfRouters, lastHopRouters
}

// AllRouters returns every router in the graph, sorted by name.
func (g *Graph) AllRouters() []*Router {
	out := make([]*Router, 0, len(g.Routers))
	for _, r := range g.Routers {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PredInterfaces returns every interface with at least one recorded
// predecessor, sorted by address for deterministic iteration order — the
// only interfaces AnnotateInterfaces has any evidence to annotate.
func (g *Graph) PredInterfaces() []*Interface {
	var out []*Interface
	for _, i := range g.Interfaces {
		if i.HasPred() {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}

// AllInterfaces returns every interface in the graph, sorted by address.
func (g *Graph) AllInterfaces() []*Interface {
	out := make([]*Interface, 0, len(g.Interfaces))
	for _, i := range g.Interfaces {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}
