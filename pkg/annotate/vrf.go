package annotate

import (
	"sort"

	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
)

// vrfHeuristics derives the AS vote contributed by one VRF-edge
// successor: prefer an origin ASN the target router's own interfaces
// carry, falling back to the target router's current annotation.
func (e *Engine) vrfHeuristics(edge *bgraph.VrfEdge, origins intSet) int {
	rsucc := edge.Target
	for _, iface := range rsucc.Interfaces {
		if iface.ASN > 0 {
			if _, ok := origins[iface.ASN]; ok {
				return iface.ASN
			}
		}
	}
	return e.RUpdates.ASN(rsucc)
}

// AnnotateRouterVRF assigns a vote-fused origin AS to a VRF router
// (every successor synthesized from forwarding-table analysis). When
// any successor reached through a direct, non-VRF router is present,
// only those direct votes count; otherwise every successor and the
// router's own interface origins vote together.
func (e *Engine) AnnotateRouterVRF(router *bgraph.Router) (int, int) {
	utype := 0

	iasns := NewVoteCounter()
	for _, iface := range router.Interfaces {
		if iface.ASN > 0 {
			iasns.Add(iface.ASN, 1)
		}
	}

	succs := NewVoteCounter()
	nonvrf := NewVoteCounter()
	sasnOrigins := make(map[int]intSet)
	allForwarding := make(map[int]bool)
	for _, succ := range router.Succ {
		origins := router.Origins[succ]
		succASN := e.vrfHeuristics(succ.VRF, origins)
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
			if !succ.VRF.Target.VRF {
				nonvrf.Add(succASN, 1)
			}
			fwd, seen := allForwarding[succASN]
			allForwarding[succASN] = (!seen || fwd) && succ.VRF.VType == bgraph.VTypeForwarding
		}
	}

	var votes *VoteCounter
	if nonvrf.Len() > 0 {
		votes = nonvrf
		utype += BoostVRFNonVRF
	} else {
		votes = succs.Plus(iasns)
	}
	if votes.Len() == 0 {
		return -1, -1
	}

	var votesRels []int
	for _, vasn := range votes.Keys() {
		related := false
		for _, iasn := range iasns.Keys() {
			if vasn == iasn || e.BGP.Rel(iasn, vasn) || e.Org.Org(iasn) == e.Org.Org(vasn) {
				related = true
				break
			}
		}
		if related {
			votesRels = append(votesRels, vasn)
		}
	}

	var asns []int
	if len(votesRels) < 2 {
		asns = votes.MaxNum()
	} else {
		// Redistribute each non-related vote's count into a related AS
		// sharing its organization, then take the maximum among related
		// ASes only.
		for _, vasn := range votes.Keys() {
			if containsInt(votesRels, vasn) {
				continue
			}
			for _, vr := range votesRels {
				if e.Org.Org(vr) == e.Org.Org(vasn) {
					votes.Add(vr, votes.Get(vasn))
					votes.Delete(vasn)
					break
				}
			}
		}
		asns = votes.MaxNumAmong(votesRels)
		othermax, _ := votes.Max()
		if router.NextHop && votes.Get(othermax) > votes.Get(asns[0])*4 {
			utype += BoostVRFNextHop
			return othermax, utype
		}
	}

	var asn int
	if len(asns) == 1 {
		asn = asns[0]
		utype += UtypeVoteSingle
	} else {
		// When every tied candidate arrived exclusively via forwarding-vtype
		// edges, the largest cone wins instead of the smallest.
		largest := true
		for _, a := range asns {
			if !allForwarding[a] {
				largest = false
				break
			}
		}
		asn = bestByKey(asns, func(x int) []int64 {
			return []int64{int64(e.BGP.Conesize(x)), int64(-x)}
		}, largest)
		utype += UtypeVoteTie
	}
	return asn, utype
}

// AnnotateVRFRouters annotates every VRF router, writing directly
// (visible to later objects processed within the same round) since VRF
// routers are resolved in their own pass after the direct-router pass.
func (e *Engine) AnnotateVRFRouters(routers []*bgraph.Router) {
	for _, router := range routers {
		asn, utype := e.AnnotateRouterVRF(router)
		e.setRouterUpdateDirect(router, asn, utype)
	}
}

// SortVRFRouters orders VRF routers so forwarding routers with more
// edges, then a smaller minimum-conesize interface AS, then a larger
// ASN, are processed first — matching the order the original resolves
// VRF routers in, since a VRF router's own vote can depend on another
// VRF router's already-resolved annotation within the same pass.
func SortVRFRouters(routers []*bgraph.Router, bgpSvc BGPService) {
	sort.SliceStable(routers, func(i, j int) bool {
		ki := vrfSortKey(routers[i], bgpSvc)
		kj := vrfSortKey(routers[j], bgpSvc)
		return tupleCompare(ki, kj) < 0
	})
}

func vrfSortKey(router *bgraph.Router, bgpSvc BGPService) []int64 {
	nedges := len(router.Succ)
	asns := make(map[int]struct{})
	for _, iface := range router.Interfaces {
		asns[iface.ASN] = struct{}{}
	}
	iasn := bestByKey(sortedIntSet(asns), func(x int) []int64 {
		return []int64{int64(bgpSvc.Conesize(x)), int64(-x)}
	}, false)
	conesize := bgpSvc.Conesize(iasn)
	return []int64{int64(-nedges), int64(conesize), int64(-iasn)}
}
