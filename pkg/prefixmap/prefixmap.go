// Package prefixmap implements the address-to-ASN longest-prefix-match
// lookup over a BART (Balanced Routing Table) from the examples pack.
// Negative sentinels (IXP <= -100, private (-100, 0)) are ordinary int
// payloads; private prefixes are excluded at load time rather than
// inserted, since they never appear as a graph interface's ASN.
package prefixmap

import (
	"net/netip"

	"github.com/gaissmai/bart"
)

// PrefixMap is a read-only, dual-stack address -> ASN lookup table.
type PrefixMap struct {
	table bart.Table[int]
}

// New returns an empty PrefixMap. The zero value of bart.Table is
// ready to use, so New is a thin convenience constructor.
func New() *PrefixMap {
	return &PrefixMap{}
}

// Insert associates pfx with asn. A private/reserved ASN ((-100, 0))
// should not be inserted by callers; IXP sentinels (<= -100) and normal
// ASNs (> 0) are both valid payloads.
func (m *PrefixMap) Insert(pfx netip.Prefix, asn int) {
	m.table.Insert(pfx, asn)
}

// ASN returns the longest-prefix-match ASN for addr, or 0 if no covering
// prefix was loaded (the "unknown" sentinel of spec.md §3).
func (m *PrefixMap) ASN(addr netip.Addr) int {
	asn, ok := m.table.Lookup(addr)
	if !ok {
		return 0
	}
	return asn
}

// ASNString parses s as an IP address and looks it up, returning 0 for
// both an unparseable address and an uncovered one.
func (m *PrefixMap) ASNString(s string) int {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return 0
	}
	return m.ASN(addr)
}
