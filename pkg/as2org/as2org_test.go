package as2org

import "testing"

func TestOrgFallsBackToSingletonForUnknownASN(t *testing.T) {
	m := New()
	if got := m.Org(12345); got != 12345 {
		t.Errorf("expected fallback org = asn itself, got %d", got)
	}
	siblings := m.Siblings(12345)
	if len(siblings) != 1 {
		t.Errorf("expected singleton sibling set, got %v", siblings)
	}
}

func TestSiblingsShareOrg(t *testing.T) {
	m := New()
	m.Add(100, 1)
	m.Add(200, 1)
	m.Add(300, 2)

	siblings := m.Siblings(100)
	if _, ok := siblings[200]; !ok {
		t.Error("expected 200 to be a sibling of 100")
	}
	if _, ok := siblings[300]; ok {
		t.Error("did not expect 300 to be a sibling of 100")
	}
	if !m.SameOrg(100, 200) {
		t.Error("expected 100 and 200 to share an org")
	}
	if m.SameOrg(100, 300) {
		t.Error("did not expect 100 and 300 to share an org")
	}
}
