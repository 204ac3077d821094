package report

import (
	"testing"

	"github.com/bdrmapit-go/bdrmapit/internal/testutil"
	"github.com/bdrmapit-go/bdrmapit/pkg/updates"
)

func TestBuildRowsUsesRouterAnnotation(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	r := b.Router("r1")
	iface := r.Iface("10.0.0.1", 100)

	e := b.Engine(nil)
	e.RUpdates.SetDirect(r.Router(), updates.Update{ASN: 100, Org: 100, UType: 4})
	e.IUpdates.SetDirect(iface.Iface(), updates.Update{ASN: 100, Org: 100, UType: 0})

	rows := BuildRows(b.Graph, e.RUpdates, e.IUpdates)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	got := rows[0]
	if got.Addr != "10.0.0.1" || got.RouterID != "r1" {
		t.Fatalf("got addr/router %q/%q, want 10.0.0.1/r1", got.Addr, got.RouterID)
	}
	if got.RouterASN != 100 || got.RouterUtype != 4 {
		t.Fatalf("got router asn/utype %d/%d, want 100/4", got.RouterASN, got.RouterUtype)
	}
	if got.IfaceASN != 100 || got.IfaceUtype != 0 {
		t.Fatalf("got iface asn/utype %d/%d, want 100/0", got.IfaceASN, got.IfaceUtype)
	}
	if got.PHop {
		t.Fatal("got phop true, want false: no predecessor was recorded")
	}
}

// An interface never reached by the interface heuristic falls back to its
// own raw ASN/org, with iface_utype -1.
func TestBuildRowsFallsBackWhenInterfaceUnannotated(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	r := b.Router("r1")
	r.Iface("10.0.0.1", 200)

	e := b.Engine(nil)
	e.RUpdates.SetDirect(r.Router(), updates.Update{ASN: 999, Org: 999, UType: 4})

	rows := BuildRows(b.Graph, e.RUpdates, e.IUpdates)
	got := rows[0]
	if got.IfaceASN != 200 || got.IfaceOrg != 200 {
		t.Fatalf("got iface asn/org %d/%d, want raw 200/200", got.IfaceASN, got.IfaceOrg)
	}
	if got.IfaceUtype != -1 {
		t.Fatalf("got iface utype %d, want -1 (no interface annotation at all)", got.IfaceUtype)
	}
}

// An annotated interface whose org disagrees with its router's
// annotation also falls back to its raw mapping, with iface_utype 0 (an
// annotation exists, it simply doesn't match the router's org).
func TestBuildRowsFallsBackOnOrgMismatch(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	r := b.Router("r1")
	iface := r.Iface("10.0.0.1", 300)

	e := b.Engine(nil)
	e.RUpdates.SetDirect(r.Router(), updates.Update{ASN: 999, Org: 999, UType: 4})
	e.IUpdates.SetDirect(iface.Iface(), updates.Update{ASN: 300, Org: 300, UType: 7})

	rows := BuildRows(b.Graph, e.RUpdates, e.IUpdates)
	got := rows[0]
	if got.IfaceASN != 300 || got.IfaceUtype != 0 {
		t.Fatalf("got iface asn/utype %d/%d, want raw 300/0", got.IfaceASN, got.IfaceUtype)
	}
}

func TestBuildRowsUnannotatedRouterIsSentinel(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	r := b.Router("r1")
	r.Iface("10.0.0.1", 100)

	e := b.Engine(nil)
	rows := BuildRows(b.Graph, e.RUpdates, e.IUpdates)
	got := rows[0]
	if got.RouterASN != -1 || got.RouterOrg != -1 || got.RouterUtype != -1 {
		t.Fatalf("got router asn/org/utype %d/%d/%d, want -1/-1/-1", got.RouterASN, got.RouterOrg, got.RouterUtype)
	}
}

func TestEchoRow(t *testing.T) {
	row := EchoRow("203.0.113.1", 64500, 64500)
	if !row.Echo || row.Addr != row.RouterID {
		t.Fatalf("got %+v, want an echo row with router_id == addr", row)
	}
}
