// Package testutil provides fluent test fixtures for building bgraph
// graphs and their BGP/org/IXP collaborators, the way the annotation
// engine's tests need them assembled without each test hand-rolling a
// graph from bgraph's lower-level mutation API.
package testutil

import (
	"github.com/bdrmapit-go/bdrmapit/pkg/annotate"
	"github.com/bdrmapit-go/bdrmapit/pkg/as2org"
	"github.com/bdrmapit-go/bdrmapit/pkg/bgp"
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
	"github.com/bdrmapit-go/bdrmapit/pkg/config"
	"github.com/bdrmapit-go/bdrmapit/pkg/ixp"
)

// Builder assembles a bgraph.Graph plus its BGP relationship graph, AS2Org
// map, and IXP catalog in one pass, so a test can describe a small
// topology declaratively and hand the result straight to an
// annotate.Engine.
type Builder struct {
	Graph  *bgraph.Graph
	BGP    *bgp.Graph
	AS2Org *as2org.Map
	IXP    *ixp.Catalog
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		Graph:  bgraph.New(),
		BGP:    bgp.New(),
		AS2Org: as2org.New(),
		IXP:    ixp.New(),
	}
}

// Peer records a settlement-free peering relationship between a and b in
// the BGP graph (symmetric).
func (b *Builder) Peer(a, c int) *Builder {
	b.BGP.AddPeer(a, c)
	return b
}

// Customer records provider->customer in the BGP graph.
func (b *Builder) Customer(provider, customer int) *Builder {
	b.BGP.AddCustomer(provider, customer)
	return b
}

// Org assigns asn to org in the AS2Org map. Defaults to asn's own org
// (asn==org) for any ASN never explicitly assigned, matching as2org.Map's
// own Org() fallback.
func (b *Builder) Org(asn, org int) *Builder {
	b.AS2Org.Add(asn, org)
	return b
}

// IXPParticipant records asn as a participant at the IXP identified by
// sentinel (an ASN <= -100).
func (b *Builder) IXPParticipant(sentinel, asn int) *Builder {
	b.IXP.AddParticipant(sentinel, asn)
	return b
}

// Finalize computes the BGP graph's customer cones. Call once after every
// Peer/Customer call and before running the annotator.
func (b *Builder) Finalize() *Builder {
	b.BGP.Finalize()
	return b
}

// Router starts (or resumes) building the named router.
func (b *Builder) Router(name string) *RouterBuilder {
	return &RouterBuilder{b: b, r: b.Graph.Router(name)}
}

// RouterBuilder fluently configures one router's interfaces, successors,
// and destination evidence.
type RouterBuilder struct {
	b *Builder
	r *bgraph.Router
}

// Router returns the underlying bgraph.Router.
func (rb *RouterBuilder) Router() *bgraph.Router { return rb.r }

// Iface attaches an interface at addr with the given ASN (org defaults to
// asn unless already assigned via Builder.Org) to this router and returns
// it for further configuration (predecessors, destinations, hints).
func (rb *RouterBuilder) Iface(addr string, asn int) *IfaceBuilder {
	org := rb.b.AS2Org.Org(asn)
	iface := rb.b.Graph.Interface(addr)
	iface.ASN = asn
	iface.Org = org
	rb.r.AddInterface(iface)
	return &IfaceBuilder{b: rb.b, i: iface}
}

// NextHop marks this router as only ever observed as a next-hop target.
func (rb *RouterBuilder) NextHop() *RouterBuilder {
	rb.r.NextHop = true
	return rb
}

// VRF marks this router as built from forwarding-table analysis.
func (rb *RouterBuilder) VRF() *RouterBuilder {
	rb.r.VRF = true
	return rb
}

// Dests records destination ASes observed directly through this router.
func (rb *RouterBuilder) Dests(asns ...int) *RouterBuilder {
	rb.r.AddDests(asns...)
	return rb
}

// Hint records an operator-supplied ASN hint for this router.
func (rb *RouterBuilder) Hint(asn int) *RouterBuilder {
	rb.r.AddHint(asn)
	return rb
}

// Succ records a direct (interface) successor edge to target's interface
// at addr, with the given observed origin ASes.
func (rb *RouterBuilder) Succ(target *IfaceBuilder, origins ...int) *RouterBuilder {
	rb.r.AddSucc(bgraph.SuccFromInterface(target.i), origins...)
	return rb
}

// VRFSucc records a VRF-edge successor to targetRouter, with the given
// observed origin ASes.
func (rb *RouterBuilder) VRFSucc(targetRouter *RouterBuilder, vtype bgraph.VType, origins ...int) *RouterBuilder {
	rb.r.AddSucc(bgraph.SuccFromVRF(bgraph.NewVrfEdge(targetRouter.r, vtype)), origins...)
	return rb
}

// IfaceBuilder fluently configures one interface's predecessors and
// destination evidence.
type IfaceBuilder struct {
	b *Builder
	i *bgraph.Interface
}

// Iface returns the underlying bgraph.Interface.
func (ib *IfaceBuilder) Iface() *bgraph.Interface { return ib.i }

// Pred records num traceroute observations of predRouter immediately
// preceding this interface.
func (ib *IfaceBuilder) Pred(predRouter *RouterBuilder, num int) *IfaceBuilder {
	ib.i.AddPred(predRouter.r, num)
	return ib
}

// Dests records destination ASes observed beyond this interface.
func (ib *IfaceBuilder) Dests(asns ...int) *IfaceBuilder {
	ib.i.AddDests(asns...)
	return ib
}

// FirstHopVote records num traceroutes launched from vantage AS vantageASN
// whose first response came from this interface.
func (ib *IfaceBuilder) FirstHopVote(vantageASN, num int) *IfaceBuilder {
	ib.i.AddFirstHopVote(vantageASN, num)
	return ib
}

// Hint sets an operator-supplied ASN hint on this interface.
func (ib *IfaceBuilder) Hint(asn int) *IfaceBuilder {
	ib.i.Hint = asn
	return ib
}

// Engine builds an annotate.Engine wired to this Builder's graph and
// collaborators, using cfg (or config.Default() if nil). Call
// b.Finalize() first so customer cones reflect every Peer/Customer call.
func (b *Builder) Engine(cfg *config.Config) *annotate.Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return annotate.NewEngine(b.Graph, b.BGP, b.AS2Org, b.IXP, cfg)
}
