package annotate

import (
	"testing"

	"github.com/bdrmapit-go/bdrmapit/internal/testutil"
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
)

// A VRF router with one non-VRF-flagged successor whose own interface AS
// matches the edge's recorded origin votes that AS directly, boosted by
// BoostVRFNonVRF for having at least one non-VRF successor present.
func TestAnnotateRouterVRFNonVRFSuccessor(t *testing.T) {
	b := testutil.NewBuilder()
	b.Customer(100, 300)
	b.Finalize()

	r := b.Router("r1").VRF()
	r.Iface("10.0.0.1", 100)
	target := b.Router("target")
	target.Iface("10.0.1.1", 300)
	r.VRFSucc(target, bgraph.VTypeForwarding, 300)

	e := b.Engine(nil)
	asn, utype := e.AnnotateRouterVRF(r.Router())
	want := BoostVRFNonVRF + UtypeVoteSingle
	if asn != 300 || utype != want {
		t.Fatalf("got (%d, %d), want (300, %d)", asn, utype, want)
	}
}

// With no successors contributing any vote at all, the VRF annotator
// abstains.
func TestAnnotateRouterVRFNoVotesAbstains(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	r := b.Router("r1").VRF()
	target := b.Router("target").VRF()
	r.VRFSucc(target, bgraph.VTypeForwarding)

	e := b.Engine(nil)
	asn, utype := e.AnnotateRouterVRF(r.Router())
	if asn != -1 || utype != -1 {
		t.Fatalf("got (%d, %d), want (-1, -1)", asn, utype)
	}
}

// When every tied successor vote arrives via a forwarding-vtype edge, the
// candidate with the larger customer cone wins the tie, not the smaller.
func TestAnnotateRouterVRFForwardingTieBreaksToLargestCone(t *testing.T) {
	b := testutil.NewBuilder()
	b.Customer(900, 100)
	b.Finalize()

	r := b.Router("r1").VRF()
	bigCone := b.Router("big").VRF()
	bigCone.Iface("10.0.1.1", 900)
	smallCone := b.Router("small").VRF()
	smallCone.Iface("10.0.2.1", 700)
	r.VRFSucc(bigCone, bgraph.VTypeForwarding, 900)
	r.VRFSucc(smallCone, bgraph.VTypeForwarding, 700)

	e := b.Engine(nil)
	asn, utype := e.AnnotateRouterVRF(r.Router())
	if asn != 900 {
		t.Fatalf("got asn %d, want 900 (larger cone: Conesize(900)=2 > Conesize(700)=1)", asn)
	}
	if utype != UtypeVoteTie {
		t.Fatalf("got utype %d, want %d", utype, UtypeVoteTie)
	}
}

func TestSortVRFRoutersOrdersByEdgeCount(t *testing.T) {
	b := testutil.NewBuilder()
	b.Customer(500, 600)
	b.Finalize()

	few := b.Router("few").VRF()
	few.Iface("10.0.0.1", 500)
	target := b.Router("target")
	target.Iface("10.0.1.1", 600)
	few.VRFSucc(target, bgraph.VTypeForwarding)

	many := b.Router("many").VRF()
	many.Iface("10.0.0.2", 500)
	t1 := b.Router("t1")
	t1.Iface("10.0.2.1", 600)
	t2 := b.Router("t2")
	t2.Iface("10.0.2.2", 600)
	many.VRFSucc(t1, bgraph.VTypeForwarding)
	many.VRFSucc(t2, bgraph.VTypeForwarding)

	routers := []*bgraph.Router{few.Router(), many.Router()}
	SortVRFRouters(routers, b.BGP)
	if routers[0].Name != "many" {
		t.Fatalf("expected the router with more successor edges first, got order %v", []string{routers[0].Name, routers[1].Name})
	}
}
