// Package ixp implements the IXP participant catalog: a map from an IXP
// sentinel ASN (<= -100, identifying a specific exchange) to the set of
// member ASNs observed at that exchange, loaded from a PeeringDB/CAIDA-
// style IXP peering dump.
package ixp

// Catalog is a read-only sentinel ASN -> participant set table.
type Catalog struct {
	participants map[int]map[int]struct{}
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{participants: make(map[int]map[int]struct{})}
}

// AddParticipant records that asn participates at the exchange identified
// by sentinel.
func (c *Catalog) AddParticipant(sentinel, asn int) {
	set, ok := c.participants[sentinel]
	if !ok {
		set = make(map[int]struct{})
		c.participants[sentinel] = set
	}
	set[asn] = struct{}{}
}

// Participants returns the participant set for sentinel, or nil if the
// exchange is unknown.
func (c *Catalog) Participants(sentinel int) map[int]struct{} {
	return c.participants[sentinel]
}
