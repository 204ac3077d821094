// Package annotate implements the fixed-point router/interface annotation
// engine: the router heuristic, last-hop heuristic, VRF heuristic, and
// first-hop heuristic that together assign an origin AS to every router
// and interface in a bgraph.Graph, driven to convergence by Refine.
package annotate

import (
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
	"github.com/bdrmapit-go/bdrmapit/pkg/config"
	"github.com/bdrmapit-go/bdrmapit/pkg/updates"
)

// BGPService is the relationship/cone surface the annotator needs. It is
// satisfied by *pkg/bgp.Graph directly, or by a *pkg/bgpcache-wrapped
// cone/org lookup in front of one.
type BGPService interface {
	Rel(a, b int) bool
	PeerRel(a, b int) bool
	ProviderRel(a, b int) bool
	CustomerRel(a, b int) bool
	Providers(a int) map[int]struct{}
	Peers(a int) map[int]struct{}
	Customers(a int) map[int]struct{}
	Conesize(a int) int
	Cone(a int) map[int]struct{}
}

// OrgService is the AS-to-organization surface the annotator needs.
type OrgService interface {
	Org(asn int) int
	SameOrg(a, b int) bool
}

// IXPService is the IXP-participant surface the annotator needs.
type IXPService interface {
	Participants(sentinel int) map[int]struct{}
}

// Engine wires the graph, the external relationship/org/ixp services, the
// double-buffered update stores, and the run configuration together. Its
// methods are the heuristics; Refine drives them to a fixed point.
type Engine struct {
	Graph *bgraph.Graph
	BGP   BGPService
	Org   OrgService
	IXP   IXPService
	Cfg   *config.Config

	// RUpdates holds router annotations, IUpdates interface annotations.
	// Caches is a side store written only by the first-hop heuristic
	// (never read by the router/interface heuristics), matching the
	// original's separate caches dict that floor-annotates an interface's
	// ASN without feeding it back into the router vote.
	RUpdates *updates.Store
	IUpdates *updates.Store
	Caches   *updates.Store

	Trace *Trace

	norelpeer map[int]struct{}
}

// NewEngine creates an Engine ready for Refine. cfg must be non-nil;
// NorelPeer is copied into a lookup set once up front.
func NewEngine(g *bgraph.Graph, bgpSvc BGPService, orgSvc OrgService, ixpSvc IXPService, cfg *config.Config) *Engine {
	return &Engine{
		Graph:     g,
		BGP:       bgpSvc,
		Org:       orgSvc,
		IXP:       ixpSvc,
		Cfg:       cfg,
		RUpdates:  updates.New(),
		IUpdates:  updates.New(),
		Caches:    updates.New(),
		norelpeer: cfg.NorelPeerSet(),
	}
}

// isIXP reports whether asn is an IXP sentinel (spec.md convention:
// <= -100).
func isIXP(asn int) bool {
	return asn <= -100
}

func (e *Engine) setRouterUpdate(r *bgraph.Router, asn, utype int) {
	org := 0
	if e.Org != nil {
		org = e.Org.Org(asn)
	}
	e.RUpdates.Set(r, updates.Update{ASN: asn, Org: org, UType: utype})
	if e.Trace != nil {
		e.Trace.Router(r, asn, utype)
	}
}

func (e *Engine) setRouterUpdateDirect(r *bgraph.Router, asn, utype int) {
	org := 0
	if e.Org != nil {
		org = e.Org.Org(asn)
	}
	e.RUpdates.SetDirect(r, updates.Update{ASN: asn, Org: org, UType: utype})
	if e.Trace != nil {
		e.Trace.Router(r, asn, utype)
	}
}

func (e *Engine) setInterfaceUpdate(i *bgraph.Interface, asn, utype int) {
	org := 0
	if e.Org != nil {
		org = e.Org.Org(asn)
	}
	e.IUpdates.Set(i, updates.Update{ASN: asn, Org: org, UType: utype})
	if e.Trace != nil {
		e.Trace.Interface(i, asn, utype)
	}
}

func (e *Engine) setCacheDirect(i *bgraph.Interface, asn, utype int) {
	org := 0
	if e.Org != nil {
		org = e.Org.Org(asn)
	}
	e.Caches.SetDirect(i, updates.Update{ASN: asn, Org: org, UType: utype})
}
