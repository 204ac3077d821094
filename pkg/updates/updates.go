// Package updates implements the double-buffered annotation store the
// refinement loop iterates to a fixed point: one generation holds the
// annotations already advanced into, the other accumulates the next
// round's writes, and Advance swaps them once a round completes.
package updates

import "github.com/bdrmapit-go/bdrmapit/pkg/bgraph"

// Update is one router or interface annotation: the inferred AS, the
// organization that AS belongs to, and the numeric reason code (utype)
// that produced it.
type Update struct {
	ASN   int
	Org   int
	UType int
}

// Equal reports whether two updates carry the same ASN and utype. Org is
// excluded deliberately, matching the original's no-change check: the
// fixed-point and 2-cycle detector in the refinement driver keys off
// (asn, utype) only, since org is a deterministic function of asn and
// carries no independent information for convergence.
func (u Update) Equal(o Update) bool {
	return u.ASN == o.ASN && u.UType == o.UType
}

// Store holds two generations of annotations keyed by graph object
// (*bgraph.Router or *bgraph.Interface, used as an opaque map key): the
// generation already advanced into (View) and the one currently being
// written by the round in progress.
type Store struct {
	advanced map[interface{}]Update
	current  map[interface{}]Update
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		advanced: make(map[interface{}]Update),
		current:  make(map[interface{}]Update),
	}
}

// Get returns the advanced-generation annotation for key, if any. This is
// the value heuristics read as "the current annotation" while computing
// the next round's votes.
func (s *Store) Get(key interface{}) (Update, bool) {
	u, ok := s.advanced[key]
	return u, ok
}

// ASN returns the advanced-generation ASN for key, or -1 if key has never
// been annotated — the sentinel the heuristics compare against directly
// (e.g. "has this interface been given an annotation yet?"), distinct
// from the interface-level 0 sentinel ("this address has no AS mapping
// at all").
func (s *Store) ASN(key interface{}) int {
	if u, ok := s.advanced[key]; ok {
		return u.ASN
	}
	return -1
}

// Set writes u into the current (not-yet-advanced) generation for key.
func (s *Store) Set(key interface{}, u Update) {
	s.current[key] = u
}

// SetDirect writes u into BOTH generations immediately, bypassing the
// buffering. Used by heuristics whose result must be visible to other
// objects processed later in the same round (the original's
// add_update_direct), rather than only after the round's Advance.
func (s *Store) SetDirect(key interface{}, u Update) {
	s.current[key] = u
	s.advanced[key] = u
}

// Len returns the number of keys annotated in the current generation.
func (s *Store) Len() int {
	return len(s.current)
}

// Advance copies the current generation into the advanced generation and
// reports whether any key's value changed (by Equal) or was newly added
// relative to the prior advanced generation. A false return means the
// store has reached a fixed point: another Advance would be a no-op.
func (s *Store) Advance() (changed bool) {
	for k, u := range s.current {
		prev, ok := s.advanced[k]
		if !ok || !prev.Equal(u) {
			changed = true
		}
		s.advanced[k] = u
	}
	return changed
}

// Snapshot returns a copy of the advanced generation, under the same
// graph-object keys, for diffing between rounds (the
// refinement loop's 2-cycle detector needs a value it can compare across
// iterations without holding onto the live maps).
func (s *Store) Snapshot() map[interface{}]Update {
	out := make(map[interface{}]Update, len(s.advanced))
	for k, v := range s.advanced {
		out[k] = v
	}
	return out
}

// RouterUpdate reads r's advanced-generation annotation.
func (s *Store) RouterUpdate(r *bgraph.Router) (Update, bool) {
	return s.Get(r)
}

// InterfaceUpdate reads i's advanced-generation annotation.
func (s *Store) InterfaceUpdate(i *bgraph.Interface) (Update, bool) {
	return s.Get(i)
}
