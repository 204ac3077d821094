package updates

import (
	"testing"

	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
)

func TestAdvanceReportsChange(t *testing.T) {
	s := New()
	r := bgraph.NewRouter("r1")

	s.Set(r, Update{ASN: 100, Org: 100, UType: 1})
	if changed := s.Advance(); !changed {
		t.Fatal("expected first Advance to report a change")
	}

	s.Set(r, Update{ASN: 100, Org: 100, UType: 1})
	if changed := s.Advance(); changed {
		t.Fatal("expected identical (asn, utype) to report no change")
	}

	s.Set(r, Update{ASN: 100, Org: 100, UType: 2})
	if changed := s.Advance(); !changed {
		t.Fatal("expected a new utype with the same ASN to report a change")
	}

	s.Set(r, Update{ASN: 200, Org: 200, UType: 2})
	if changed := s.Advance(); !changed {
		t.Fatal("expected a new ASN to report a change")
	}
}

func TestSetDirectVisibleBeforeAdvance(t *testing.T) {
	s := New()
	r := bgraph.NewRouter("r1")
	s.SetDirect(r, Update{ASN: 42, Org: 42})

	got, ok := s.Get(r)
	if !ok || got.ASN != 42 {
		t.Fatalf("expected SetDirect to be visible immediately, got %+v ok=%v", got, ok)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := New()
	r := bgraph.NewRouter("r1")
	if _, ok := s.Get(r); ok {
		t.Fatal("expected no annotation for an unset router")
	}
	if asn := s.ASN(r); asn != -1 {
		t.Fatalf("expected ASN -1 for unset router, got %d", asn)
	}
}
