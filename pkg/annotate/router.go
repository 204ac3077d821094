package annotate

import (
	"github.com/bdrmapit-go/bdrmapit/pkg/bgp"
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
)

// AnnotateRouter assigns a vote-fused origin AS to a non-VRF router with
// at least one successor. first marks the refinement loop's opening
// round, where the multi-peer exception abstains (-1) instead of
// guessing, to avoid polluting the very first pass with a low-confidence
// vote before any successor router has an annotation of its own.
func (e *Engine) AnnotateRouter(router *bgraph.Router, first bool) (int, int) {
	utype := 0

	iasns := NewVoteCounter()
	for _, iface := range router.Interfaces {
		if iface.ASN > 0 {
			iasns.Add(iface.ASN, 1)
		}
	}

	succs := NewVoteCounter()
	sasnOrigins := make(map[int]intSet)
	sorigins := NewVoteCounter()
	for _, succ := range router.Succ {
		sorigins.Add(succ.ASN(), 1)
	}
	for _, succ := range router.Succ {
		origins := router.Origins[succ]
		succASN := e.routerHeuristics(router, succ, origins, iasns)
		if succASN > 0 {
			succs.Add(succASN, 1)
			set, ok := sasnOrigins[succASN]
			if !ok {
				set = make(intSet)
				sasnOrigins[succASN] = set
			}
			for o := range origins {
				set[o] = struct{}{}
			}
		}
	}

	if succs.Len() == 0 {
		return e.annotateLastHop(router, router.Dests)
	}
	votes := succs.Plus(iasns)

	// Single origin AS, single successor AS, matched vote weight, peer
	// relationship (or configured norelpeer): a direct single-homed link.
	if iasns.Len() == 1 && succs.Len() == 1 {
		iasn := iasns.Keys()[0]
		sasn := succs.Keys()[0]
		if iasns.Get(iasn) == succs.Get(sasn) {
			if e.BGP.PeerRel(iasn, sasn) || (e.isNorelPeer(iasn) && !e.BGP.Rel(iasn, sasn)) {
				return sasn, BoostSinglePeer
			}
		}
	}

	// Multihomed exception: a single subsequent AS (or org) that is a
	// customer of the origins it followed, and isn't itself one of them.
	orgSet := make(intSet)
	for _, s := range succs.Keys() {
		orgSet[e.Org.Org(s)] = struct{}{}
	}
	if (iasns.Len() > 0 && succs.Len() == 1) || len(orgSet) == 1 {
		var sasn int
		if succs.Len() == 1 {
			sasn = succs.Keys()[0]
		} else {
			sasn = bestByKey(succs.Keys(), func(x int) []int64 {
				return []int64{int64(e.BGP.Conesize(x)), int64(-x)}
			}, true)
		}
		if _, isOrigin := sasnOrigins[sasn][sasn]; !isOrigin {
			if _, isCustomer := e.multiCustomers(sortedIntSet(sasnOrigins[sasn]))[sasn]; isCustomer {
				return sasn, utype + UtypeSingleSucc4
			}
		}
	}

	// Multiple-peers exception: several successor ASes, one router
	// origin AS, and the successors look like honorary peers of it.
	if succs.Len() > 1 && iasns.Len() == 1 {
		if asn, utyp, ok := e.multiPeerException(router, iasns, succs, votes, utype, first); ok {
			return asn, utyp
		}
	}

	// Vote fusion: a 75% majority wins outright; otherwise restrict to
	// ASes that relate to a router origin AS before taking the maximum.
	othermax, _ := votes.Max()
	var asns []int
	if float64(votes.Get(othermax)) >= float64(votes.Sum())*0.75 {
		asns = []int{othermax}
	} else {
		var votesRels []int
		for _, vasn := range votes.Keys() {
			related := false
			for _, iasn := range iasns.Keys() {
				if e.isNorelPeer(iasn) || vasn == iasn || e.BGP.Rel(iasn, vasn) || e.Org.Org(iasn) == e.Org.Org(vasn) {
					related = true
					break
				}
			}
			if related {
				votesRels = append(votesRels, vasn)
			}
		}
		if len(votesRels) <= iasns.Len() {
			asns = votes.MaxNum()
		} else {
			asns = votes.MaxNumAmong(votesRels)
		}
	}

	var asn int
	if len(asns) == 1 {
		asn = asns[0]
		utype += UtypeVoteSingle
	} else {
		found := false
		// Tiebreaker 1: a single next-hop successor whose own interface
		// annotation is one of the tied ASes and has more than one
		// predecessor, wins outright.
		if len(router.Succ) == 1 && router.NextHop {
			succ0 := router.Succ[0]
			sasn := e.IUpdates.ASN(succ0.Iface)
			if len(router.Interfaces) == 1 && sasn == -1 {
				rasn := router.Interfaces[0].ASN
				if e.BGP.PeerRel(rasn, succ0.ASN()) || (e.isNorelPeer(rasn) && !e.BGP.Rel(rasn, succ0.ASN())) {
					return -1, SpecialT1Unrelated
				}
			}
			if succs.Has(sasn) && containsInt(asns, sasn) && len(succ0.Iface.Pred) > 1 {
				asn, found = sasn, true
				utype += BoostT1
			}
		}
		// Tiebreaker 1b: a single interface, single successor router
		// whose relationship to it is neither provider nor customer,
		// with the successor AS among the router's destinations and
		// the router's own AS not.
		if !found && len(router.Succ) == 1 && len(router.Interfaces) == 1 {
			succ0 := router.Succ[0]
			sasn := e.IUpdates.ASN(succ0.Iface)
			if sasn == -1 {
				sasn = succ0.ASN()
			}
			rasn := router.Interfaces[0].ASN
			reltype := e.BGP.Reltype(rasn, sasn)
			if reltype != bgp.RelProvider && reltype != bgp.RelCustomer {
				_, sasnInDests := router.Dests[sasn]
				_, rasnInDests := router.Dests[rasn]
				if sasnInDests && !rasnInDests {
					asn, found = sasn, true
					utype += BoostT2
				}
			}
		}
		// Tiebreaker 2: prefer an AS that is both a successor origin and
		// a raw successor AS, then one already in the router's
		// destinations, then the smallest customer cone, then the
		// largest ASN.
		if !found {
			asn = bestByKey(asns, func(x int) []int64 {
				_, inSasnOrigins := sasnOrigins[x][x]
				notBoth := !(inSasnOrigins && sorigins.Has(x))
				_, inDests := router.Dests[x]
				return []int64{boolInt(notBoth), boolInt(!inDests), int64(e.BGP.Conesize(x)), int64(-x)}
			}, false)
			utype += UtypeVoteTie
		}
	}

	if !iasns.Has(asn) {
		overlap := intersect(iasns.KeySet(), sorigins.KeySet())
		if len(overlap) == 1 {
			if float64(succs.Get(asn)) < float64(2*sorigins.Sum())/3 {
				oasns := votes.MaxNumAmong(sortedIntSet(overlap))
				if len(oasns) == 1 {
					oasn := oasns[0]
					if e.Org.Org(oasn) != e.Org.Org(asn) {
						asn = oasn
						utype += BoostOverlap
					}
				}
			}
		}
	}

	if iasns.Len() > 0 {
		relatedToAny := false
		for _, iasn := range iasns.Keys() {
			if asn == iasn || e.BGP.Rel(iasn, asn) {
				relatedToAny = true
				break
			}
		}
		if !relatedToAny {
			if len(intersect(router.Dests, votes.KeySet())) == 0 {
				dasns := make(intSet)
				for d := range router.Dests {
					for _, iasn := range iasns.Keys() {
						if iasn == d || e.BGP.Rel(iasn, d) {
							dasns[d] = struct{}{}
							break
						}
					}
				}
				if len(dasns) == 1 {
					return peekOne(dasns), 42
				}
			}
			return e.hiddenASN(iasns, asn, utype, votes)
		}
	}
	return asn, utype
}

// multiPeerException implements the multiple-peers exception: when
// several successor ASes nearly all turn out to be peers (or configured
// norelpeers) of the router's single origin AS, and that origin's own
// vote weight isn't dwarfed by the successors, select the origin AS
// directly rather than trusting the successor votes.
func (e *Engine) multiPeerException(router *bgraph.Router, iasns, succs, votes *VoteCounter, utype int, first bool) (int, int, bool) {
	iasn := iasns.Keys()[0]
	if succs.Has(iasn) {
		return 0, 0, false
	}
	maxVote := votes.MaxValue()

	peerOrgs := make(intSet)
	purePeerCount := 0
	for _, sasn := range succs.Keys() {
		if e.BGP.PeerRel(iasn, sasn) || (e.isNorelPeer(iasn) && !e.BGP.Rel(iasn, sasn)) {
			peerOrgs[e.Org.Org(sasn)] = struct{}{}
		}
		if e.BGP.PeerRel(iasn, sasn) {
			purePeerCount++
		}
	}
	numrels := len(peerOrgs)

	decide := func() (int, int, bool) {
		if votes.Get(iasn) > maxVote/2 {
			if first {
				return -1, utype + UtypeAllpeerSucc, true
			}
			return iasn, utype + UtypeAllpeerSucc, true
		}
		if float64(votes.Get(iasn)) > float64(maxVote)/4 && purePeerCount >= 2 {
			if first {
				return -1, utype + UtypeAllpeerSucc, true
			}
			return iasn, utype + UtypeAllpeerSucc, true
		}
		if e.isNorelPeer(iasn) && float64(votes.Get(iasn)) > float64(maxVote)/4 && succs.Len() >= 3 {
			if first {
				return -1, utype + UtypeAllpeerSucc, true
			}
			return iasn, utype + UtypeAllpeerSucc, true
		}
		return 0, 0, false
	}

	if float64(numrels) >= float64(succs.Len())*0.85 {
		if asn, utyp, ok := decide(); ok {
			return asn, utyp, true
		}
	}
	if succs.Len() > 2 {
		relCount := 0
		for _, sasn := range succs.Keys() {
			if e.BGP.Rel(iasn, sasn) {
				relCount++
			}
		}
		if relCount >= succs.Len() {
			if votes.Get(iasn) > maxVote/2 {
				return iasn, utype + UtypeAllpeerSucc, true
			}
			if float64(votes.Get(iasn)) > float64(maxVote)/4 && purePeerCount >= 2 {
				return iasn, utype + UtypeAllpeerSucc, true
			}
			if e.isNorelPeer(iasn) && float64(votes.Get(iasn)) > float64(maxVote)/4 && succs.Len() >= 3 {
				return iasn, utype + UtypeAllpeerSucc, true
			}
		}
	}
	return 0, 0, false
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// AnnotateRouters annotates every router in routers, trying an operator
// hint first when enabled and falling back to AnnotateRouter.
func (e *Engine) AnnotateRouters(routers []*bgraph.Router, first bool) {
	for _, router := range routers {
		asn, utype := -1, -1
		if e.Cfg.UseHints && len(router.Hints) > 0 {
			asn, utype = e.annotateRouterHint(router, e.Cfg.UseProvider)
		}
		if asn <= 0 {
			asn, utype = e.AnnotateRouter(router, first)
		}
		e.setRouterUpdate(router, asn, utype)
	}
}
