package bgraph

import "fmt"

// Router is a node in the traceroute-derived graph: a physical or logical
// device identified by one alias-resolution cluster, owning one or more
// Interfaces and pointing at zero or more successor routers.
type Router struct {
	Name       string
	Interfaces []*Interface

	// Succ holds every distinct successor observed for this router, in
	// first-seen order (iteration order feeds tie-breaking, so it must stay
	// deterministic).
	Succ    []Succ
	succSet map[Succ]struct{}

	// Origins maps each successor to the set of origin ASes observed at
	// this router's hop just before it — the raw evidence the router
	// heuristic votes over.
	Origins map[Succ]map[int]struct{}

	// Dests is the set of destination ASes reached directly through this
	// router (used by the last-hop heuristics).
	Dests map[int]struct{}

	// NextHop marks a router that was only ever observed as a next-hop
	// target, never itself traced through (read by the router and VRF
	// tie-breaks).
	NextHop bool

	// VRF marks a router built from forwarding-table (VRF) analysis rather
	// than directly observed traceroute hops. All of a VRF router's
	// successors must themselves be VRF edges. AddSucc only enforces that a
	// router's successors are all of one kind; it does not check that kind
	// against this flag.
	VRF bool

	// Hints collects operator-supplied ASN hints attached to this router.
	Hints map[int]struct{}
}

// NewRouter creates an empty Router named name.
func NewRouter(name string) *Router {
	return &Router{
		Name:    name,
		succSet: make(map[Succ]struct{}),
		Origins: make(map[Succ]map[int]struct{}),
		Dests:   make(map[int]struct{}),
		Hints:   make(map[int]struct{}),
	}
}

// AddSucc records succ as a successor of r, merging origin ASes into the
// existing entry if succ was already present. It panics if succ's kind
// (VRF edge vs. direct interface) disagrees with a successor already on
// this router — a router's successor set must be homogeneous, since the
// VRF and non-VRF heuristics are mutually exclusive per router.
func (r *Router) AddSucc(succ Succ, origins ...int) {
	if len(r.Succ) > 0 {
		if r.Succ[0].IsVRF() != succ.IsVRF() {
			panic(fmt.Sprintf("bgraph: router %q mixes VRF and direct successors", r.Name))
		}
	}
	if _, ok := r.succSet[succ]; !ok {
		r.succSet[succ] = struct{}{}
		r.Succ = append(r.Succ, succ)
		r.Origins[succ] = make(map[int]struct{})
	}
	set := r.Origins[succ]
	for _, o := range origins {
		set[o] = struct{}{}
	}
}

// AddPred records num traceroute observations of r immediately preceding
// iface, on iface's own predecessor-count map.
func (r *Router) AddPred(iface *Interface, num int) {
	iface.AddPred(r, num)
}

// AddDests merges dests into r's directly-observed destination-AS set.
func (r *Router) AddDests(dests ...int) {
	for _, d := range dests {
		r.Dests[d] = struct{}{}
	}
}

// AddHint records an operator-supplied ASN hint for r.
func (r *Router) AddHint(asn int) {
	r.Hints[asn] = struct{}{}
}

// AddInterface attaches iface to r, setting iface's back-reference.
func (r *Router) AddInterface(iface *Interface) {
	iface.Router = r
	r.Interfaces = append(r.Interfaces, iface)
}

// IsVRFRouter reports r's VRF flag. It does not inspect r's successors.
func (r *Router) IsVRFRouter() bool {
	return r.VRF
}
