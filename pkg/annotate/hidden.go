package annotate

// hiddenASN searches for an AS hidden between the router's origin ASes
// and the currently selected asn: a single AS that is both a customer
// of an origin and a provider of asn (or, failing that and with
// HiddenReverse enabled, a provider of an origin and a customer of
// asn). If the hidden AS shares an organization with anything that
// already received a vote, that's read as evidence the selected AS
// really does have a relationship, so asn is kept; otherwise the hidden
// AS replaces it. With no hidden AS found, strict mode falls back to
// the origin AS with the most votes (ties broken by smallest customer
// cone, then largest ASN); non-strict mode keeps asn.
func (e *Engine) hiddenASN(iasns *VoteCounter, asn, utype int, votes *VoteCounter) (int, int) {
	intersection := intersect(e.multiCustomers(iasns.Keys()), e.BGP.Providers(asn))
	var intasn int
	found := false
	if len(intersection) == 1 {
		intasn, found = peekOne(intersection), true
	} else if len(intersection) == 0 && e.Cfg.HiddenReverse {
		intersection = intersect(e.multiProviders(iasns.Keys()), e.BGP.Customers(asn))
		if len(intersection) == 1 {
			intasn, found = peekOne(intersection), true
		}
	}

	if found {
		interorg := e.Org.Org(intasn)
		sharesVoteOrg := false
		for _, v := range votes.Keys() {
			if e.Org.Org(v) == interorg {
				sharesVoteOrg = true
				break
			}
		}
		if sharesVoteOrg {
			return asn, UtypeHiddenNoInter + utype
		}
		return intasn, UtypeHiddenInter + utype
	}

	if e.Cfg.Strict {
		best := bestByKey(iasns.Keys(), func(x int) []int64 {
			return []int64{int64(votes.Get(x)), int64(-e.BGP.Conesize(x)), int64(x)}
		}, true)
		return best, UtypeHiddenNoInter + utype
	}
	return asn, UtypeHiddenNoInter + utype
}
