package annotate

import (
	"sort"

	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
)

// annotateFirstHop picks an origin AS for an interface that was observed
// as a traceroute's very first response hop, from the vantage-point ASes
// that observed it. A single candidate wins outright; otherwise ties are
// restricted to ASes related to the interface's own raw ASN before
// preferring the largest customer cone.
func (e *Engine) annotateFirstHop(iface *bgraph.Interface, votes *VoteCounter) int {
	if votes.Len() == 1 {
		return votes.Keys()[0]
	}
	asns := votes.MaxNum()
	var rels []int
	for _, a := range asns {
		if iface.ASN == a || e.BGP.Rel(iface.ASN, a) {
			rels = append(rels, a)
		}
	}
	if len(rels) == 0 {
		rels = asns
	}
	return bestByKey(rels, func(x int) []int64 {
		return []int64{boolInt(x != iface.ASN), int64(-e.BGP.Conesize(x)), int64(x)}
	}, false)
}

// AnnotateFirstHops floor-annotates every interface that was ever a
// traceroute's first-hop response and that the router/interface heuristics
// never reached (IUpdates has no annotation for it at all). Results land
// in Caches, a side store the router and interface heuristics never read,
// matching the original's separate first-hop cache.
func (e *Engine) AnnotateFirstHops(interfaces []*bgraph.Interface) {
	for _, iface := range interfaces {
		if len(iface.FirstHopVotes) == 0 {
			continue
		}
		if e.IUpdates.ASN(iface) != -1 {
			continue
		}
		votes := NewVoteCounter()
		for _, asn := range sortedIntKeys(iface.FirstHopVotes) {
			votes.Add(asn, iface.FirstHopVotes[asn])
		}
		asn := e.annotateFirstHop(iface, votes)
		e.setCacheDirect(iface, asn, 3)
	}
}

func sortedIntKeys(m map[int]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
