package annotate

import "github.com/bdrmapit-go/bdrmapit/pkg/bgraph"

// AnnotateInterface assigns an origin AS to an interface from the
// annotations of the routers observed immediately before it, weighted by
// observation count. A single predecessor AS wins outright; several
// competing ASes are first restricted to ones related to the interface's
// own raw ASN (or that raw ASN itself) before the largest-cone, most
// preferred survivor is chosen.
func (e *Engine) AnnotateInterface(iface *bgraph.Interface) (int, int) {
	votes := NewVoteCounter()
	for rpred, num := range iface.Pred {
		asn := e.RUpdates.ASN(rpred)
		votes.Add(asn, num)
	}

	var asn, utype int
	if votes.Len() == 1 {
		asn = votes.Keys()[0]
		if len(iface.Pred) > 1 {
			utype = 1
		} else {
			utype = 0
		}
	} else {
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
		asn = bestByKey(rels, func(x int) []int64 {
			return []int64{boolInt(x != iface.ASN), int64(-e.BGP.Conesize(x)), int64(x)}
		}, false)
		if len(asns) == 1 && len(iface.Pred) > 1 {
			utype = 1
		} else {
			utype = 2
		}
	}

	if asn == -1 {
		return -2, 2
	}
	return asn, utype
}

// AnnotateInterfaces annotates every interface whose raw ASN is
// non-negative (the unknown 0 included, IXP sentinels skipped) from its
// predecessor routers' current annotations.
func (e *Engine) AnnotateInterfaces(interfaces []*bgraph.Interface) {
	for _, iface := range interfaces {
		if iface.ASN >= 0 {
			asn, utype := e.AnnotateInterface(iface)
			e.setInterfaceUpdate(iface, asn, utype)
		}
	}
}
