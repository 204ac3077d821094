package bgp

import "testing"

func TestConeIsDownwardClosure(t *testing.T) {
	g := New()
	// 100 -> 200 -> 300, 100 -> 400
	g.AddCustomer(100, 200)
	g.AddCustomer(200, 300)
	g.AddCustomer(100, 400)
	g.Finalize()

	cone := g.Cone(100)
	for _, want := range []int{100, 200, 300, 400} {
		if _, ok := cone[want]; !ok {
			t.Errorf("expected %d in cone(100), got %v", want, cone)
		}
	}
	if g.Conesize(100) != 4 {
		t.Errorf("expected conesize(100) = 4, got %d", g.Conesize(100))
	}
	if g.Conesize(300) != 1 {
		t.Errorf("expected conesize(300) = 1 (leaf), got %d", g.Conesize(300))
	}
}

func TestReltype(t *testing.T) {
	g := New()
	g.AddPeer(100, 200)
	g.AddCustomer(100, 300)
	g.Finalize()

	if g.Reltype(100, 200) != RelPeer {
		t.Errorf("expected peer reltype, got %v", g.Reltype(100, 200))
	}
	if g.Reltype(100, 300) != RelCustomer {
		t.Errorf("expected customer reltype, got %v", g.Reltype(100, 300))
	}
	if g.Reltype(300, 100) != RelProvider {
		t.Errorf("expected provider reltype from customer's view, got %v", g.Reltype(300, 100))
	}
	if g.Reltype(100, 999) != RelNone {
		t.Errorf("expected no relationship, got %v", g.Reltype(100, 999))
	}
}

func TestConeHandlesCycleWithoutInfiniteLoop(t *testing.T) {
	g := New()
	g.AddCustomer(100, 200)
	g.AddCustomer(200, 100) // malformed cyclic input
	g.Finalize()

	if g.Conesize(100) == 0 {
		t.Fatal("expected Finalize to terminate and produce a non-empty cone despite a cycle")
	}
}
