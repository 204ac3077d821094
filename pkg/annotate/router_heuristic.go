package annotate

import "github.com/bdrmapit-go/bdrmapit/pkg/bgraph"

// routerHeuristics derives the AS vote contributed by one successor of
// router: IXP resolution, the no-origin shortcut, third-party-address
// detection, and the interface/router-annotation precedence rule. It
// returns -1 when the successor contributes no usable vote.
func (e *Engine) routerHeuristics(router *bgraph.Router, succ bgraph.Succ, origins intSet, iasns *VoteCounter) int {
	rsucc := succ.Router()
	rsuccASN := e.RUpdates.ASN(rsucc)

	// IXP interface: use the single router-origin AS that is also an IXP
	// participant at this exchange, if exactly one exists.
	if isIXP(succ.ASN()) {
		ixpASNs := e.IXP.Participants(succ.ASN())
		if len(ixpASNs) > 0 {
			overlap := make(intSet)
			for _, a := range iasns.Keys() {
				if _, ok := ixpASNs[a]; ok {
					overlap[a] = struct{}{}
				}
			}
			if len(overlap) == 1 {
				return peekOne(overlap)
			}
		}
		return -1
	}

	// No known mapping for this address: fall back to the subsequent
	// router's own annotation, unless SkipUA disables that fallback.
	if succ.ASN() == 0 {
		if e.Cfg.SkipUA {
			return -1
		}
		return rsuccASN
	}

	var succASN, succOrg int
	iupdate, hasIupdate := e.IUpdates.Get(succ.Iface)
	if hasIupdate && e.Org.Org(rsuccASN) == succ.Iface.Org {
		succASN, succOrg = iupdate.ASN, iupdate.Org
		if succASN <= 0 {
			succASN, succOrg = succ.ASN(), succ.Iface.Org
		}
	} else {
		succASN, succOrg = succ.ASN(), succ.Iface.Org
	}

	if e.isThirdParty(router, origins, iasns, rsuccASN, succASN, succOrg, succ.Iface.Org) {
		rsuccCone := e.BGP.Cone(rsuccASN)
		allInCone := true
		for d := range router.Dests {
			if d == rsuccASN {
				continue
			}
			if _, ok := rsuccCone[d]; !ok {
				allInCone = false
				break
			}
		}
		if allInCone {
			return rsuccASN
		}
		return -1
	}

	if succASN <= 0 || (rsuccASN > 0 && e.Org.Org(rsuccASN) != succ.Iface.Org) {
		succASN = succ.ASN()
	}
	return succASN
}

// isThirdParty detects a third-party address: the subsequent interface
// belongs to an AS unrelated to any router origin, and either the
// subsequent router's own AS annotation relates back to the origins in
// a way that makes the interface AS look like an unrelated third party,
// or the interface/router ASes share an organization whose relationship
// to the origins is asymmetric.
func (e *Engine) isThirdParty(router *bgraph.Router, origins intSet, iasns *VoteCounter, rsuccASN, succASN, succOrg, rawIfaceOrg int) bool {
	anyPositiveOrigin := false
	anyOrgMatch := false
	originList := sortedIntSet(origins)
	for _, o := range originList {
		if o > 0 {
			anyPositiveOrigin = true
		}
		if e.Org.Org(o) == rawIfaceOrg {
			anyOrgMatch = true
		}
	}
	if !anyPositiveOrigin || anyOrgMatch {
		return false
	}

	third := false
	if rsuccASN > 0 {
		rsuccOrg := e.Org.Org(rsuccASN)
		anySuccOrgMatch := false
		for _, o := range originList {
			if succOrg == e.Org.Org(o) {
				anySuccOrgMatch = true
				break
			}
		}
		if rsuccOrg != succOrg && !anySuccOrgMatch {
			related := false
			for _, o := range originList {
				if o == rsuccASN {
					related = true
					break
				}
			}
			if !related {
				related = e.anyRels(rsuccASN, originList)
			}
			if related {
				sConesize := len(intersect(router.Dests, e.BGP.Cone(succASN)))
				rConesize := len(intersect(router.Dests, e.BGP.Cone(rsuccASN)))
				if _, inDests := router.Dests[succASN]; !inDests {
					if sConesize <= rConesize {
						third = true
					}
				} else if !e.anyRels(succASN, originList) && e.BGP.Rel(succASN, rsuccASN) {
					third = true
				}
			}
		}
	}

	if succOrg == e.Org.Org(rsuccASN) {
		anyRelToSucc := false
		anyRelToRsucc := false
		for _, iasn := range iasns.Keys() {
			if e.BGP.Rel(iasn, succASN) {
				anyRelToSucc = true
			}
			if e.BGP.Rel(iasn, rsuccASN) {
				anyRelToRsucc = true
			}
		}
		if !anyRelToSucc && anyRelToRsucc {
			third = true
		}
	}
	return third
}
