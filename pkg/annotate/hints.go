package annotate

import "github.com/bdrmapit-go/bdrmapit/pkg/bgraph"

// Hint utype bits: the high byte (0xff__) marks a hint confirmed directly
// against the router's own successor/destination evidence, the 0xfe__ band
// marks one confirmed only at the organization level, and the low bits
// (0x01/0x02/0x04/0x08) record which evidence source corroborated it.
const (
	hintOnlyCandidate = 0xff00
	hintSuccMatch     = 0xff02
	hintDestMatch     = 0xff04
	hintProviderMatch = 0xff08
	hintOrgSuccMatch  = 0xfe02
	hintOrgDestMatch  = 0xfe04
)

// hiddenProviderHint looks for a single operator hint that is a provider
// of at least one successor AS or destination AS the router has evidence for,
// used as a last resort when no hint directly or org-level matches.
func (e *Engine) hiddenProviderHint(router *bgraph.Router) (int, int) {
	providers := make(intSet)
	for _, succ := range router.Succ {
		if sasn := succ.ASN(); sasn > 0 {
			for p := range e.BGP.Providers(sasn) {
				providers[p] = struct{}{}
			}
		}
	}
	for d := range router.Dests {
		for p := range e.BGP.Providers(d) {
			providers[p] = struct{}{}
		}
	}
	provinter := intersect(providers, router.Hints)
	if len(provinter) == 1 {
		return peekOne(provinter), hintProviderMatch
	}
	return -1, -1
}

// annotateRouterHint tries to confirm one of the router's operator-supplied
// hints against the router's own successor and destination evidence before
// the heuristic pipeline runs at all. A hint that survives this check wins
// outright (the caller only falls through to the heuristics when this
// returns asn <= 0).
func (e *Engine) annotateRouterHint(router *bgraph.Router, useProvider bool) (int, int) {
	utype := 0

	sasns := make(intSet)
	for _, succ := range router.Succ {
		if sasn := succ.ASN(); sasn > 0 {
			sasns[sasn] = struct{}{}
		}
	}
	possible := unionSets(sasns, router.Dests)

	if len(possible) == 0 && len(router.Hints) == 1 {
		return peekOne(router.Hints), hintOnlyCandidate
	}

	intersection := intersect(possible, router.Hints)
	if len(intersection) == 1 {
		if len(intersect(router.Hints, sasns)) > 0 {
			utype |= hintSuccMatch
		}
		if len(intersect(router.Hints, router.Dests)) > 0 {
			utype |= hintDestMatch
		}
		return peekOne(intersection), utype
	}
	if len(intersection) > 2 {
		return -1, utype
	}

	posorgs := make(intSet)
	for p := range possible {
		posorgs[e.Org.Org(p)] = struct{}{}
	}
	hintorgs := make(intSet)
	for h := range router.Hints {
		hintorgs[e.Org.Org(h)] = struct{}{}
	}
	interorgs := intersect(posorgs, hintorgs)
	if len(interorgs) > 0 {
		sasnOrgs := make(intSet)
		for s := range sasns {
			sasnOrgs[e.Org.Org(s)] = struct{}{}
		}
		if len(intersect(hintorgs, sasnOrgs)) > 0 {
			utype |= hintOrgSuccMatch
		}
		destOrgs := make(intSet)
		for d := range router.Dests {
			destOrgs[e.Org.Org(d)] = struct{}{}
		}
		if len(intersect(hintorgs, destOrgs)) > 0 {
			utype |= hintOrgDestMatch
		}
		// router.Hints is a set; pick deterministically rather than relying
		// on Go's randomized map iteration order when more than one hint
		// survives the org-level match.
		hint := bestByKey(sortedIntSet(router.Hints), func(x int) []int64 {
			return []int64{int64(e.BGP.Conesize(x)), int64(-x)}
		}, false)
		return hint, utype
	}

	if useProvider {
		if asn, utyp := e.hiddenProviderHint(router); asn > 0 {
			return asn, utyp
		}
	}
	return 0, utype
}
