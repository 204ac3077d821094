package annotate

import "sort"

// VoteCounter is an insertion-ordered ASN -> count multiset, the Go
// counterpart of the original's Counter objects. Go maps have no stable
// iteration order, so every selection that depends on tie-break order
// (a plain "first encountered maximum", matching Python's max() over a
// dict) is implemented here against the insertion-ordered Keys() slice
// rather than a raw map range.
type VoteCounter struct {
	order  []int
	counts map[int]int
}

// NewVoteCounter creates an empty VoteCounter.
func NewVoteCounter() *VoteCounter {
	return &VoteCounter{counts: make(map[int]int)}
}

// Add increments asn's count by n, recording first-seen order.
func (v *VoteCounter) Add(asn int, n int) {
	if _, ok := v.counts[asn]; !ok {
		v.order = append(v.order, asn)
	}
	v.counts[asn] += n
}

// Get returns asn's count, 0 if absent.
func (v *VoteCounter) Get(asn int) int {
	return v.counts[asn]
}

// Has reports whether asn has been recorded at all (count may be 0 only
// if explicitly added with n=0, which callers avoid).
func (v *VoteCounter) Has(asn int) bool {
	_, ok := v.counts[asn]
	return ok
}

// Len returns the number of distinct ASNs recorded.
func (v *VoteCounter) Len() int {
	return len(v.order)
}

// Keys returns the recorded ASNs in first-seen (insertion) order.
func (v *VoteCounter) Keys() []int {
	out := make([]int, len(v.order))
	copy(out, v.order)
	return out
}

// SortedKeys returns the recorded ASNs sorted ascending.
func (v *VoteCounter) SortedKeys() []int {
	out := v.Keys()
	sort.Ints(out)
	return out
}

// Sum returns the total of all counts.
func (v *VoteCounter) Sum() int {
	total := 0
	for _, c := range v.counts {
		total += c
	}
	return total
}

// Max returns the ASN with the highest count, breaking ties by
// first-seen order (Python's max() semantics over a dict: the first
// element encountered that is strictly greater than the running best
// wins ties). Returns (0, 0) if empty.
func (v *VoteCounter) Max() (asn int, count int) {
	best := 0
	bestCount := 0
	first := true
	for _, a := range v.order {
		c := v.counts[a]
		if first || c > bestCount {
			best, bestCount, first = a, c, false
		}
	}
	return best, bestCount
}

// MaxNum returns every ASN tied for the highest count, sorted ascending
// (the original's max_num: all ties, not just one). Subsequent selection
// among ties always uses an explicit lexicographic key, so the order of
// this slice itself is not load-bearing — only membership is.
func (v *VoteCounter) MaxNum() []int {
	if v.Len() == 0 {
		return nil
	}
	_, bestCount := v.Max()
	var out []int
	for _, a := range v.SortedKeys() {
		if v.counts[a] == bestCount {
			out = append(out, a)
		}
	}
	return out
}

// Plus returns a new VoteCounter holding v's entries (in v's order)
// followed by o's entries (in o's order, for keys not already present),
// with counts summed where both have an entry — the Go equivalent of
// Python's Counter + Counter.
func (v *VoteCounter) Plus(o *VoteCounter) *VoteCounter {
	out := NewVoteCounter()
	for _, a := range v.order {
		out.Add(a, v.counts[a])
	}
	for _, a := range o.order {
		out.Add(a, o.counts[a])
	}
	return out
}

// Delete removes asn entirely (used by the VRF annotator's vote-merging
// step, which redistributes a non-related AS's votes into a related one
// and drops the original key).
func (v *VoteCounter) Delete(asn int) {
	if _, ok := v.counts[asn]; !ok {
		return
	}
	delete(v.counts, asn)
	for i, a := range v.order {
		if a == asn {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
}

// intSet is a small convenience alias used throughout the annotator for
// ASN sets built ad hoc from BGP query results.
type intSet = map[int]struct{}

func unionSets(sets ...intSet) intSet {
	out := make(intSet)
	for _, s := range sets {
		for v := range s {
			out[v] = struct{}{}
		}
	}
	return out
}

func intersect(a, b intSet) intSet {
	out := make(intSet)
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for v := range small {
		if _, ok := big[v]; ok {
			out[v] = struct{}{}
		}
	}
	return out
}

func sortedIntSet(s intSet) []int {
	out := make([]int, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func peekOne(s intSet) int {
	for v := range s {
		return v
	}
	return 0
}

// MaxNumAmong returns the subset of keys tied for the highest count
// among just those keys (not the whole counter), sorted ascending.
func (v *VoteCounter) MaxNumAmong(keys []int) []int {
	if len(keys) == 0 {
		return nil
	}
	best := v.Get(keys[0])
	for _, k := range keys[1:] {
		if c := v.Get(k); c > best {
			best = c
		}
	}
	sorted := append([]int(nil), keys...)
	sort.Ints(sorted)
	var out []int
	for _, k := range sorted {
		if v.Get(k) == best {
			out = append(out, k)
		}
	}
	return out
}

// KeySet returns the recorded ASNs as an intSet.
func (v *VoteCounter) KeySet() intSet {
	out := make(intSet, len(v.order))
	for _, a := range v.order {
		out[a] = struct{}{}
	}
	return out
}

// MaxValue returns the highest count recorded, 0 if empty.
func (v *VoteCounter) MaxValue() int {
	_, c := v.Max()
	return c
}

// bestByKey returns the candidate that is lexicographically greatest
// (max=true) or least (max=false) under key, comparing tuples component
// by component left to right. On a tie over the whole tuple the earliest
// candidate in cands wins, so the result depends on cands' order only for
// keys that do not end with the ASN itself (most tie-breaks here do).
func bestByKey(cands []int, key func(int) []int64, max bool) int {
	best := cands[0]
	bestKey := key(best)
	for _, c := range cands[1:] {
		k := key(c)
		cmp := tupleCompare(k, bestKey)
		if (max && cmp > 0) || (!max && cmp < 0) {
			best, bestKey = c, k
		}
	}
	return best
}

func tupleCompare(a, b []int64) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
