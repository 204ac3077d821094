// Package as2org implements the AS-to-organization mapping and its
// inverse (organization to sibling ASNs), loaded from a CAIDA AS2Org
// dataset. An ASN absent from the table is a Data error (spec.md §7): it
// is not surfaced as an error, it resolves to a synthesized singleton
// organization equal to the ASN itself.
package as2org

// Map is a read-only ASN<->organization table.
type Map struct {
	orgOf    map[int]int
	siblings map[int]map[int]struct{}
}

// New creates an empty Map.
func New() *Map {
	return &Map{
		orgOf:    make(map[int]int),
		siblings: make(map[int]map[int]struct{}),
	}
}

// Add assigns asn to organization org, joining it to any other ASN
// already assigned to that organization as a sibling.
func (m *Map) Add(asn, org int) {
	m.orgOf[asn] = org
	set, ok := m.siblings[org]
	if !ok {
		set = make(map[int]struct{})
		m.siblings[org] = set
	}
	set[asn] = struct{}{}
}

// Org returns asn's organization id. If asn was never registered, it
// resolves to a synthesized singleton organization equal to asn itself —
// the Data-error fallback of spec.md §7, applied lazily and idempotently
// so repeated lookups of the same unknown ASN agree.
func (m *Map) Org(asn int) int {
	if org, ok := m.orgOf[asn]; ok {
		return org
	}
	return asn
}

// Siblings returns the set of ASNs sharing asn's organization, asn
// itself included. For an unregistered ASN this is the singleton {asn}.
func (m *Map) Siblings(asn int) map[int]struct{} {
	org, ok := m.orgOf[asn]
	if !ok {
		return map[int]struct{}{asn: {}}
	}
	if set, ok := m.siblings[org]; ok {
		return set
	}
	return map[int]struct{}{asn: {}}
}

// SameOrg reports whether a and b belong to the same organization.
func (m *Map) SameOrg(a, b int) bool {
	return m.Org(a) == m.Org(b)
}
