package bgpcache

import "testing"

type fakeConeGraph struct {
	calls int
	cone  map[int]struct{}
}

func (f *fakeConeGraph) Cone(asn int) map[int]struct{} {
	f.calls++
	return f.cone
}

func (f *fakeConeGraph) Conesize(asn int) int {
	return len(f.cone)
}

type fakeOrgGraph struct {
	calls int
	org   int
}

func (f *fakeOrgGraph) Org(asn int) int {
	f.calls++
	return f.org
}

func TestConeCacheFallsThroughWithoutRedis(t *testing.T) {
	fake := &fakeConeGraph{cone: map[int]struct{}{100: {}, 200: {}}}
	cc := NewConeCache(nil, fake)

	got := cc.Cone(100)
	if len(got) != 2 {
		t.Fatalf("expected cone of size 2, got %d", len(got))
	}
	cc.Cone(100)
	if fake.calls != 2 {
		t.Errorf("expected every call to hit the underlying graph with no cache configured, got %d calls", fake.calls)
	}
}

func TestOrgCacheFallsThroughWithoutRedis(t *testing.T) {
	fake := &fakeOrgGraph{org: 42}
	oc := NewOrgCache(nil, fake)

	if got := oc.Org(100); got != 42 {
		t.Fatalf("expected org 42, got %d", got)
	}
}
