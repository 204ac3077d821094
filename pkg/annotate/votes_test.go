package annotate

import "testing"

func TestVoteCounterMaxBreaksTiesByInsertionOrder(t *testing.T) {
	v := NewVoteCounter()
	v.Add(300, 1)
	v.Add(100, 1)
	v.Add(200, 1)
	asn, count := v.Max()
	if asn != 300 || count != 1 {
		t.Fatalf("got (%d, %d), want (300, 1) — first-inserted ASN should win an all-tied max", asn, count)
	}
}

func TestVoteCounterMaxNumReturnsAllTiesSorted(t *testing.T) {
	v := NewVoteCounter()
	v.Add(300, 2)
	v.Add(100, 2)
	v.Add(200, 1)
	got := v.MaxNum()
	want := []int{100, 300}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestVoteCounterMaxNumAmongRestrictsToGivenKeys(t *testing.T) {
	v := NewVoteCounter()
	v.Add(100, 5)
	v.Add(200, 3)
	v.Add(300, 3)
	got := v.MaxNumAmong([]int{200, 300})
	want := []int{200, 300}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v (100 excluded even though it has the global max)", got, want)
	}
}

func TestVoteCounterPlusSumsSharedKeys(t *testing.T) {
	a := NewVoteCounter()
	a.Add(100, 1)
	a.Add(200, 2)
	b := NewVoteCounter()
	b.Add(200, 3)
	b.Add(300, 1)

	sum := a.Plus(b)
	if sum.Get(100) != 1 || sum.Get(200) != 5 || sum.Get(300) != 1 {
		t.Fatalf("got counts 100=%d 200=%d 300=%d, want 1/5/1", sum.Get(100), sum.Get(200), sum.Get(300))
	}
	if sum.Keys()[0] != 100 {
		t.Fatalf("expected a's insertion order to lead, got %v", sum.Keys())
	}
}

func TestVoteCounterDeleteRemovesKeyAndOrder(t *testing.T) {
	v := NewVoteCounter()
	v.Add(100, 1)
	v.Add(200, 2)
	v.Delete(100)
	if v.Has(100) {
		t.Fatal("expected 100 removed")
	}
	if v.Len() != 1 || v.Keys()[0] != 200 {
		t.Fatalf("got keys %v, want [200]", v.Keys())
	}
}

func TestBestByKeyMinPicksSmallestTuple(t *testing.T) {
	// All candidates share the same first component, so the tie is broken
	// by the second: the smallest -x, i.e. the largest x.
	key := func(x int) []int64 { return []int64{0, int64(-x)} }
	got := bestByKey([]int{4, 7, 10}, key, false)
	if got != 10 {
		t.Fatalf("got %d, want 10 (tuple (0,-10) is lexicographically smallest)", got)
	}
}

func TestBestByKeyMaxPicksLargestTuple(t *testing.T) {
	key := func(x int) []int64 { return []int64{int64(x)} }
	got := bestByKey([]int{10, 30, 20}, key, true)
	if got != 30 {
		t.Fatalf("got %d, want 30", got)
	}
}

func TestIntersectAndUnionSets(t *testing.T) {
	a := intSet{1: {}, 2: {}, 3: {}}
	b := intSet{2: {}, 3: {}, 4: {}}
	inter := intersect(a, b)
	if len(inter) != 2 {
		t.Fatalf("got %v, want {2,3}", inter)
	}
	if _, ok := inter[2]; !ok {
		t.Error("missing 2")
	}
	if _, ok := inter[3]; !ok {
		t.Error("missing 3")
	}

	union := unionSets(a, b)
	if len(union) != 4 {
		t.Fatalf("got %v, want 4 elements", union)
	}
}
