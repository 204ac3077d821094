package annotate

import "github.com/bdrmapit-go/bdrmapit/pkg/bgraph"

// SetDests populates every router's destination-AS set from its
// interfaces, discarding a last-hop interface's own origin AS from a
// two-element destination set when the origin's customer cone dwarfs
// the other AS's (a sign the other AS is a small relocated-prefix
// block rather than a genuine destination of this router).
func (e *Engine) SetDests(g *bgraph.Graph) {
	for _, router := range g.Routers {
		for _, iface := range router.Interfaces {
			idests := make(intSet, len(iface.Dests))
			for d := range iface.Dests {
				idests[d] = struct{}{}
			}
			if len(router.Succ) == 0 && len(idests) > 0 && iface.ASN > 0 {
				origin := iface.ASN
				if _, ok := idests[origin]; ok && len(idests) == 2 {
					other := 0
					for d := range idests {
						if d != origin {
							other = d
						}
					}
					if e.BGP.Conesize(origin) > e.BGP.Conesize(other) && e.BGP.Conesize(other) < 5 {
						delete(idests, origin)
					}
				}
			}
			for d := range idests {
				router.Dests[d] = struct{}{}
			}
		}
	}
}

// annotateLastHopNoDests handles a last-hop router with no observed
// destination ASes at all: the only evidence left is the router's own
// interface origin ASes.
func (e *Engine) annotateLastHopNoDests(iasns *VoteCounter) (int, int) {
	switch iasns.Len() {
	case 0:
		return -1, UtypeNoDest
	case 1:
		return iasns.Keys()[0], 2
	}

	var allrels []int
	for _, iasn := range iasns.Keys() {
		ok := true
		for _, oasn := range iasns.Keys() {
			if iasn == oasn {
				continue
			}
			if !(e.Org.Org(iasn) == e.Org.Org(oasn) || e.BGP.Rel(iasn, oasn)) {
				ok = false
				break
			}
		}
		if ok {
			allrels = append(allrels, iasn)
		}
	}
	if len(allrels) > 0 {
		best := bestByKey(allrels, func(x int) []int64 {
			return []int64{int64(iasns.Get(x)), int64(-e.BGP.Conesize(x)), int64(x)}
		}, true)
		return best, UtypeModified
	}

	keys := iasns.Keys()
	intersection := e.BGP.Customers(keys[0])
	intersection = intersectWithAll(intersection, keys[1:], e.BGP)
	if len(intersection) == 1 {
		return peekOne(intersection), UtypeSingle
	}

	best := bestByKey(iasns.Keys(), func(x int) []int64 {
		return []int64{int64(iasns.Get(x)), int64(-e.BGP.Conesize(x)), int64(x)}
	}, true)
	return best, UtypeSingleModified
}

func intersectWithAll(base intSet, asns []int, bgpSvc BGPService) intSet {
	out := make(intSet, len(base))
	for v := range base {
		out[v] = struct{}{}
	}
	for _, asn := range asns {
		out = intersect(out, bgpSvc.Customers(asn))
	}
	return out
}

// annotateLastHopNoRels handles a last-hop router whose destination ASes
// have no direct relationship with any of its own interface origin
// ASes: strict mode picks the most-voted origin outright; otherwise the
// provider/customer chains between dests and origins are searched for a
// single connecting AS before falling back to the largest-cone
// destination.
func (e *Engine) annotateLastHopNoRels(dests intSet, iasns *VoteCounter) (int, int) {
	if e.Cfg.Strict {
		best := bestByKey(iasns.Keys(), func(x int) []int64 {
			return []int64{int64(iasns.Get(x)), int64(-e.BGP.Conesize(x)), int64(x)}
		}, true)
		return best, UtypeNoDest
	}
	if iasns.Len() > 0 {
		intersection := intersect(e.multiProviders(sortedIntSet(dests)), e.multiCustomers(iasns.Keys()))
		if len(intersection) == 1 {
			return peekOne(intersection), 10000
		}
		intersection = intersect(e.multiCustomers(sortedIntSet(dests)), e.multiProviders(iasns.Keys()))
		if len(intersection) == 1 {
			return peekOne(intersection), 20000
		}
	}
	best := bestByKey(sortedIntSet(dests), func(x int) []int64 {
		return []int64{int64(e.BGP.Conesize(x)), int64(-x)}
	}, true)
	return best, UtypeMissingNoInter
}

// annotateLastHop assigns an origin AS to a router with no successors,
// using its observed destination ASes (every caller passes router.Dests
// as dests) and interface origin ASes.
func (e *Engine) annotateLastHop(router *bgraph.Router, dests intSet) (int, int) {
	iasns := NewVoteCounter()
	for _, iface := range router.Interfaces {
		if iface.ASN > 0 {
			iasns.Add(iface.ASN, 1)
		}
	}

	anyPositiveDest := false
	for d := range router.Dests {
		if d > 0 {
			anyPositiveDest = true
			break
		}
	}
	if len(router.Dests) == 0 || !anyPositiveDest {
		return e.annotateLastHopNoDests(iasns)
	}

	overlap := intersect(iasns.KeySet(), dests)
	if len(overlap) > 0 {
		if len(overlap) == 1 {
			return peekOne(overlap), UtypeHeaped
		}
		best := bestByKey(sortedIntSet(overlap), func(x int) []int64 {
			return []int64{int64(e.BGP.Conesize(x)), int64(-x)}
		}, false)
		return best, UtypeHeaped
	}

	var rels []int
	for d := range dests {
		if e.anyRels(d, iasns.Keys()) {
			rels = append(rels, d)
		}
	}
	if len(rels) > 0 {
		if len(rels) >= 4 {
			best := bestByKey(iasns.Keys(), func(x int) []int64 {
				sum := 0
				for _, dasn := range rels {
					if e.BGP.Rel(x, dasn) {
						sum++
					}
				}
				return []int64{int64(sum)}
			}, true)
			return best, UtypeHeaped
		}
		maxasn := bestByKey(rels, func(x int) []int64 {
			return []int64{int64(e.BGP.Conesize(x)), int64(-x)}
		}, true)
		uncovered := 0
		cone := e.BGP.Cone(maxasn)
		for d := range dests {
			if _, ok := cone[d]; !ok {
				uncovered++
			}
		}
		if uncovered > 4 {
			best := bestByKey(iasns.Keys(), func(x int) []int64 {
				sum := 0
				for _, dasn := range rels {
					if e.BGP.Rel(x, dasn) {
						sum++
					}
				}
				return []int64{int64(sum)}
			}, true)
			return best, UtypeHeaped
		}
		return maxasn, UtypeHeaped
	}

	return e.annotateLastHopNoRels(dests, iasns)
}

// AnnotateLastHops annotates every lasthop router (no successors),
// trying an operator hint first when enabled.
func (e *Engine) AnnotateLastHops(routers []*bgraph.Router) {
	for _, router := range routers {
		asn, utype := -1, -1
		if e.Cfg.UseHints && len(router.Hints) > 0 {
			asn, utype = e.annotateRouterHint(router, e.Cfg.UseProvider)
		}
		if asn <= 0 {
			asn, utype = e.annotateLastHop(router, router.Dests)
		}
		e.setRouterUpdateDirect(router, asn, utype)
	}
}
