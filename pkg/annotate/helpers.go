package annotate

// multiCustomers returns the union of the customer sets of every ASN in
// asns (helpersmixin.py's multi_customers).
func (e *Engine) multiCustomers(asns []int) intSet {
	sets := make([]intSet, 0, len(asns))
	for _, a := range asns {
		sets = append(sets, e.BGP.Customers(a))
	}
	return unionSets(sets...)
}

// multiPeers returns the union of the peer sets of every ASN in asns.
func (e *Engine) multiPeers(asns []int) intSet {
	sets := make([]intSet, 0, len(asns))
	for _, a := range asns {
		sets = append(sets, e.BGP.Peers(a))
	}
	return unionSets(sets...)
}

// multiProviders returns the union of the provider sets of every ASN in
// asns.
func (e *Engine) multiProviders(asns []int) intSet {
	sets := make([]intSet, 0, len(asns))
	for _, a := range asns {
		sets = append(sets, e.BGP.Providers(a))
	}
	return unionSets(sets...)
}

// anyRels reports whether asn has any BGP relationship with any member of
// others.
func (e *Engine) anyRels(asn int, others []int) bool {
	for _, o := range others {
		if e.BGP.Rel(asn, o) {
			return true
		}
	}
	return false
}

// isNorelPeer reports whether asn is in the operator-configured set of
// ASNs treated as peers even absent a BGP relationship record (small or
// unreporting networks the relationship dataset can't see).
func (e *Engine) isNorelPeer(asn int) bool {
	_, ok := e.norelpeer[asn]
	return ok
}

// relOrNorelPeer reports whether a and b have a direct relationship, or
// either of them is configured as a norelpeer (treated as an honorary peer of
// everything the relationship data doesn't cover).
func (e *Engine) relOrNorelPeer(a, b int) bool {
	return e.BGP.Rel(a, b) || e.isNorelPeer(b) || e.isNorelPeer(a)
}
