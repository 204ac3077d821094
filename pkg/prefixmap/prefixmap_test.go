package prefixmap

import (
	"net/netip"
	"testing"
)

func TestLongestPrefixMatch(t *testing.T) {
	m := New()
	m.Insert(netip.MustParsePrefix("192.0.2.0/24"), 100)
	m.Insert(netip.MustParsePrefix("192.0.2.128/25"), 200)

	if got := m.ASNString("192.0.2.10"); got != 100 {
		t.Errorf("expected 100 for the /24-only address, got %d", got)
	}
	if got := m.ASNString("192.0.2.200"); got != 200 {
		t.Errorf("expected the more specific /25 to win, got %d", got)
	}
}

func TestUnknownAddressReturnsZero(t *testing.T) {
	m := New()
	if got := m.ASNString("203.0.113.1"); got != 0 {
		t.Errorf("expected 0 for an uncovered address, got %d", got)
	}
	if got := m.ASNString("not-an-ip"); got != 0 {
		t.Errorf("expected 0 for an unparseable address, got %d", got)
	}
}

func TestIXPSentinel(t *testing.T) {
	m := New()
	m.Insert(netip.MustParsePrefix("198.51.100.0/24"), -100)
	if got := m.ASNString("198.51.100.5"); got != -100 {
		t.Errorf("expected IXP sentinel -100, got %d", got)
	}
}
