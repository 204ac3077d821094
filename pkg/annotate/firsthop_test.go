package annotate

import (
	"testing"

	"github.com/bdrmapit-go/bdrmapit/internal/testutil"
)

// An interface with first-hop votes from a single vantage AS is annotated
// with that AS directly, written only into the side cache (never into
// IUpdates, which the router/interface heuristics read from).
func TestAnnotateFirstHopsSingleVantage(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	iface := b.Router("r1").Iface("10.0.0.1", 999)
	iface.FirstHopVote(100, 3)

	e := b.Engine(nil)
	e.AnnotateFirstHops(b.Graph.AllInterfaces())

	u, ok := e.Caches.Get(iface.Iface())
	if !ok || u.ASN != 100 {
		t.Fatalf("got %+v, ok=%v, want cached ASN 100", u, ok)
	}
	if _, ok := e.IUpdates.Get(iface.Iface()); ok {
		t.Fatal("first-hop annotation must not leak into IUpdates")
	}
}

// An interface already annotated by the interface heuristic is left
// alone by the first-hop pass.
func TestAnnotateFirstHopsSkipsAlreadyAnnotated(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	iface := b.Router("r1").Iface("10.0.0.1", 999)
	iface.FirstHopVote(100, 3)

	e := b.Engine(nil)
	e.IUpdates.SetDirect(iface.Iface(), updateFixture(200, 200, 0))
	e.AnnotateFirstHops(b.Graph.AllInterfaces())

	if _, ok := e.Caches.Get(iface.Iface()); ok {
		t.Fatal("expected no cache write for an already-annotated interface")
	}
}

// A two-way vantage-AS tie is broken by relation to the interface's own
// AS, same as the interface heuristic's tiebreak.
func TestAnnotateFirstHopsTieBrokenByRelation(t *testing.T) {
	b := testutil.NewBuilder()
	b.Customer(300, 999) // 999 is a customer of 300
	b.Finalize()

	iface := b.Router("r1").Iface("10.0.0.1", 999)
	iface.FirstHopVote(100, 1)
	iface.FirstHopVote(300, 1)

	e := b.Engine(nil)
	e.AnnotateFirstHops(b.Graph.AllInterfaces())

	u, ok := e.Caches.Get(iface.Iface())
	if !ok || u.ASN != 300 {
		t.Fatalf("got %+v, ok=%v, want cached ASN 300 (related to iface AS 999)", u, ok)
	}
}
