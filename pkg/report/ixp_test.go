package report

import (
	"testing"

	"github.com/bdrmapit-go/bdrmapit/internal/testutil"
	"github.com/bdrmapit-go/bdrmapit/pkg/updates"
)

func TestBuildIXPRowsDecodesParticipantID(t *testing.T) {
	b := testutil.NewBuilder()
	b.IXPParticipant(-100, 100).IXPParticipant(-100, 200)
	b.Finalize()

	r := b.Router("r1")
	r.Iface("10.0.0.1", 100)
	target := b.Router("r2")
	ixpIface := target.Iface("10.0.1.1", -100)
	r.Succ(ixpIface)

	e := b.Engine(nil)
	e.RUpdates.SetDirect(r.Router(), updates.Update{ASN: 100, Org: 100, UType: 4})
	e.RUpdates.SetDirect(target.Router(), updates.Update{ASN: 200, Org: 200, UType: 4})

	rows := BuildIXPRows(b.Graph, e.RUpdates)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	got := rows[0]
	if got.PID != 0 {
		t.Fatalf("got pid %d, want 0 for sentinel -100", got.PID)
	}
	if got.Router != "r1" || got.ASN != 200 || got.ConnASN != 100 {
		t.Fatalf("got router/asn/conn_asn %q/%d/%d, want r1/200/100", got.Router, got.ASN, got.ConnASN)
	}
}

// A direct (non-IXP) successor never contributes an IXP row.
func TestBuildIXPRowsSkipsDirectSuccessors(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	r := b.Router("r1")
	r.Iface("10.0.0.1", 100)
	target := b.Router("r2")
	direct := target.Iface("10.0.1.1", 200)
	r.Succ(direct)

	e := b.Engine(nil)
	rows := BuildIXPRows(b.Graph, e.RUpdates)
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestIXPSentinelToPID(t *testing.T) {
	cases := map[int]int{-100: 0, -105: 5, -237: 137}
	for sentinel, want := range cases {
		if got := ixpSentinelToPID(sentinel); got != want {
			t.Errorf("ixpSentinelToPID(%d) = %d, want %d", sentinel, got, want)
		}
	}
}
