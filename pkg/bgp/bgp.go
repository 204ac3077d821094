// Package bgp implements the BGP relationship service: peer/provider/
// customer adjacency, customer cones, and the numeric reltype codes the
// router annotator's tiebreak consults. Loading is out of scope for the
// inference engine (spec.md §1); Graph is built once from a CAIDA
// AS-relationship file and treated as read-only for the life of a run.
package bgp

import "sort"

// Reltype enumerates the relationship of b as seen from a, matching the
// original's peer=0/provider=1/customer=2 convention used in the router
// annotator's single-interface tiebreak.
type Reltype int

const (
	RelNone     Reltype = -1
	RelPeer     Reltype = 0
	RelProvider Reltype = 1
	RelCustomer Reltype = 2
)

// Graph is an in-memory AS-relationship graph: adjacency sets for
// peer/provider/customer edges, plus memoized customer cones.
type Graph struct {
	peers     map[int]map[int]struct{}
	providers map[int]map[int]struct{}
	customers map[int]map[int]struct{}

	cone     map[int]map[int]struct{}
	conesize map[int]int
}

// New creates an empty Graph. Use AddPeer/AddCustomer to populate it, then
// Finalize to precompute customer cones.
func New() *Graph {
	return &Graph{
		peers:     make(map[int]map[int]struct{}),
		providers: make(map[int]map[int]struct{}),
		customers: make(map[int]map[int]struct{}),
		cone:      make(map[int]map[int]struct{}),
		conesize:  make(map[int]int),
	}
}

// AddPeer records a symmetric peer relationship between a and b.
func (g *Graph) AddPeer(a, b int) {
	addEdge(g.peers, a, b)
	addEdge(g.peers, b, a)
}

// AddCustomer records that customer is a customer of provider (and,
// symmetrically, that provider is a provider of customer).
func (g *Graph) AddCustomer(provider, customer int) {
	addEdge(g.customers, provider, customer)
	addEdge(g.providers, customer, provider)
}

func addEdge(m map[int]map[int]struct{}, a, b int) {
	set, ok := m[a]
	if !ok {
		set = make(map[int]struct{})
		m[a] = set
	}
	set[b] = struct{}{}
}

// Finalize precomputes customer cones for every AS with at least one
// customer or provider, by downward closure over provider→customer edges. It must be
// called once after all edges are added and before any Cone/Conesize call.
func (g *Graph) Finalize() {
	memo := make(map[int]map[int]struct{})
	var visit func(asn int, stack map[int]struct{}) map[int]struct{}
	visit = func(asn int, stack map[int]struct{}) map[int]struct{} {
		if c, ok := memo[asn]; ok {
			return c
		}
		if _, onStack := stack[asn]; onStack {
			// A relationship cycle in malformed input; stop descending
			// rather than recurse forever.
			return map[int]struct{}{}
		}
		stack[asn] = struct{}{}
		cone := map[int]struct{}{asn: {}}
		customers := sortedKeys(g.customers[asn])
		for _, c := range customers {
			sub := visit(c, stack)
			for asn2 := range sub {
				cone[asn2] = struct{}{}
			}
		}
		delete(stack, asn)
		memo[asn] = cone
		return cone
	}

	asns := make(map[int]struct{})
	for a := range g.customers {
		asns[a] = struct{}{}
	}
	for a := range g.providers {
		asns[a] = struct{}{}
	}
	for _, a := range sortedKeys(asns) {
		cone := visit(a, make(map[int]struct{}))
		g.cone[a] = cone
		g.conesize[a] = len(cone)
	}
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Rel reports whether a and b have any relationship (peer, provider, or
// customer).
func (g *Graph) Rel(a, b int) bool {
	return g.PeerRel(a, b) || g.ProviderRel(a, b) || g.CustomerRel(a, b)
}

// PeerRel reports whether a and b are BGP peers.
func (g *Graph) PeerRel(a, b int) bool {
	_, ok := g.peers[a][b]
	return ok
}

// ProviderRel reports whether b is a provider of a.
func (g *Graph) ProviderRel(a, b int) bool {
	_, ok := g.providers[a][b]
	return ok
}

// CustomerRel reports whether b is a customer of a.
func (g *Graph) CustomerRel(a, b int) bool {
	_, ok := g.customers[a][b]
	return ok
}

// Reltype returns the relationship of b as seen from a: RelPeer,
// RelProvider, RelCustomer, or RelNone if unrelated.
func (g *Graph) Reltype(a, b int) Reltype {
	switch {
	case g.PeerRel(a, b):
		return RelPeer
	case g.ProviderRel(a, b):
		return RelProvider
	case g.CustomerRel(a, b):
		return RelCustomer
	default:
		return RelNone
	}
}

// Providers returns a's provider set.
func (g *Graph) Providers(a int) map[int]struct{} {
	return g.adjacentSet(g.providers, a)
}

// Peers returns a's peer set.
func (g *Graph) Peers(a int) map[int]struct{} {
	return g.adjacentSet(g.peers, a)
}

// Customers returns a's customer set.
func (g *Graph) Customers(a int) map[int]struct{} {
	return g.adjacentSet(g.customers, a)
}

func (g *Graph) adjacentSet(m map[int]map[int]struct{}, a int) map[int]struct{} {
	if set, ok := m[a]; ok {
		return set
	}
	return nil
}

// Conesize returns the size of a's customer cone (a itself included), or 1
// if a has no known customers (its cone is just itself).
func (g *Graph) Conesize(a int) int {
	if n, ok := g.conesize[a]; ok {
		return n
	}
	return 1
}

// Cone returns a's customer cone (a itself included).
func (g *Graph) Cone(a int) map[int]struct{} {
	if c, ok := g.cone[a]; ok {
		return c
	}
	return map[int]struct{}{a: {}}
}
