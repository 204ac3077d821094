package annotate

import (
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
	"github.com/bdrmapit-go/bdrmapit/pkg/updates"
)

// generation is one round's complete (router, interface) annotation
// state, compared whole against every prior round's state to detect not
// just a fixed point but the 2-cycle some router pairs settle into (two
// routers whose votes keep flipping each other's annotation back and
// forth forever without either store's Advance ever reporting
// "unchanged"). Org is excluded: it is a deterministic function of ASN
// and carries no independent convergence information.
type generation struct {
	routers    map[*bgraph.Router]updateSnapshot
	interfaces map[*bgraph.Interface]updateSnapshot
}

type updateSnapshot struct {
	asn   int
	utype int
}

func snapshotRouters(store *updates.Store, groups ...[]*bgraph.Router) map[*bgraph.Router]updateSnapshot {
	out := make(map[*bgraph.Router]updateSnapshot)
	for _, group := range groups {
		for _, r := range group {
			if u, ok := store.RouterUpdate(r); ok {
				out[r] = updateSnapshot{asn: u.ASN, utype: u.UType}
			}
		}
	}
	return out
}

func snapshotInterfaces(store *updates.Store, interfaces []*bgraph.Interface) map[*bgraph.Interface]updateSnapshot {
	out := make(map[*bgraph.Interface]updateSnapshot, len(interfaces))
	for _, i := range interfaces {
		if u, ok := store.InterfaceUpdate(i); ok {
			out[i] = updateSnapshot{asn: u.ASN, utype: u.UType}
		}
	}
	return out
}

func routerSnapEqual(a, b map[*bgraph.Router]updateSnapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if ov, ok := b[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func ifaceSnapEqual(a, b map[*bgraph.Interface]updateSnapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if ov, ok := b[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func genEqual(a, b generation) bool {
	return routerSnapEqual(a.routers, b.routers) && ifaceSnapEqual(a.interfaces, b.interfaces)
}

// Refine drives the router and interface heuristics to a fixed point (or
// until a previously seen annotation state repeats, whichever comes
// first), bounded by Cfg.MaxIterations. lastHopRouters and vrfRouters may
// be nil/empty when the graph has none of either kind. It returns the
// number of rounds actually run.
func (e *Engine) Refine(routers, lastHopRouters, vrfRouters []*bgraph.Router, interfaces []*bgraph.Interface) int {
	e.AnnotateLastHops(lastHopRouters)

	var seen []generation
	iteration := 0
	for e.Cfg.MaxIterations <= 0 || iteration < e.Cfg.MaxIterations {
		e.AnnotateRouters(routers, iteration == 0)
		e.RUpdates.Advance()

		if len(vrfRouters) > 0 {
			e.AnnotateVRFRouters(vrfRouters)
		}
		e.AnnotateInterfaces(interfaces)
		e.IUpdates.Advance()

		gen := generation{
			routers:    snapshotRouters(e.RUpdates, routers, lastHopRouters, vrfRouters),
			interfaces: snapshotInterfaces(e.IUpdates, interfaces),
		}
		repeated := false
		for _, prev := range seen {
			if genEqual(prev, gen) {
				repeated = true
				break
			}
		}
		iteration++
		if repeated {
			break
		}
		seen = append(seen, gen)
	}
	return iteration
}
