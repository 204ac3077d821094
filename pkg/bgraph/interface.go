// Package bgraph implements the router/interface graph model: the in-memory
// object the annotation engine (pkg/annotate) consumes. Construction from
// traceroute files, alias-resolution datasets, and BGP/AS2Org/IXP artifacts
// is out of scope here — those are external collaborators. snapshot.go
// supplies a JSON boundary so the CLI and tests can load a prebuilt graph
// without reimplementing that ingestion.
package bgraph

// Interface is one traceroute-observed (or alias-resolved) address, owned
// exclusively by exactly one Router.
type Interface struct {
	Addr string
	// ASN is the address's mapped AS: 0 unknown, >0 normal, <= -100 IXP
	// sentinel. Private/reserved addresses ((-100, 0)) are excluded before
	// the graph is built and never appear here.
	ASN  int
	Org  int
	MPLS bool
	VRF  bool

	// Router is a weak back-reference: lookup only, never ownership.
	Router *Router

	// Pred counts, per predecessor router, how many times that router was
	// observed immediately before this interface.
	Pred map[*Router]int

	// Dests is the set of destination ASes observed beyond this interface.
	Dests map[int]struct{}

	// Hint is an operator-supplied ASN hint, kept through snapshots. No
	// annotator reads it; router hints come from Router.Hints.
	Hint int

	// FirstHopVotes counts, per candidate ASN, how many traceroutes began
	// at this address while that ASN was the observer's own vantage-point
	// AS. Populated by ingestion from its source-to-vantage-AS bookkeeping;
	// the first-hop annotator only ever reads it.
	FirstHopVotes map[int]int
}

// NewInterface creates an Interface with empty pred/dests sets.
func NewInterface(addr string, asn, org int) *Interface {
	return &Interface{
		Addr:  addr,
		ASN:   asn,
		Org:   org,
		Pred:  make(map[*Router]int),
		Dests: make(map[int]struct{}),
	}
}

// AddFirstHopVote records num additional traceroutes launched from a
// vantage point whose own AS is vantageASN and whose very first response
// came from this address.
func (i *Interface) AddFirstHopVote(vantageASN int, num int) {
	if i.FirstHopVotes == nil {
		i.FirstHopVotes = make(map[int]int)
	}
	i.FirstHopVotes[vantageASN] += num
}

// AddDests merges dests into the interface's destination-AS set.
func (i *Interface) AddDests(dests ...int) {
	for _, d := range dests {
		i.Dests[d] = struct{}{}
	}
}

// AddPred records num additional traceroute observations of prouter
// immediately preceding this interface.
func (i *Interface) AddPred(prouter *Router, num int) {
	i.Pred[prouter] += num
}

// HasPred reports whether any router has been observed as a predecessor.
func (i *Interface) HasPred() bool {
	return len(i.Pred) > 0
}
