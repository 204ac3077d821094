package annotate

import (
	"testing"

	"github.com/bdrmapit-go/bdrmapit/internal/testutil"
)

// Hidden AS: a single AS sits between a router's origin and its
// tentative annotation, both as a customer of the origin and a provider
// of the annotation.
func TestHiddenASNFindsIntermediary(t *testing.T) {
	b := testutil.NewBuilder()
	b.Customer(1000, 5000) // 5000 is a customer of 1000
	b.Customer(5000, 9000) // 9000 is a customer of 5000 (5000 a provider of 9000)
	b.Finalize()

	e := b.Engine(nil)
	iasns := NewVoteCounter()
	iasns.Add(1000, 1)
	votes := NewVoteCounter()
	votes.Add(1000, 1)

	asn, utype := e.hiddenASN(iasns, 9000, 0, votes)
	if asn != 5000 || utype != UtypeHiddenInter {
		t.Fatalf("got (%d, %d), want (5000, %d)", asn, utype, UtypeHiddenInter)
	}
}

// If the hidden intermediary shares an org with something that already
// received a vote, that's read as the tentative annotation already
// being correct, and it is kept with UtypeHiddenNoInter instead.
func TestHiddenASNKeepsAsnWhenVoteSharesIntermediaryOrg(t *testing.T) {
	b := testutil.NewBuilder()
	b.Customer(1000, 5000)
	b.Customer(5000, 9000)
	b.Org(5000, 5000)
	b.Org(1000, 5000) // 1000 shares 5000's org, and 1000 received a vote
	b.Finalize()

	e := b.Engine(nil)
	iasns := NewVoteCounter()
	iasns.Add(1000, 1)
	votes := NewVoteCounter()
	votes.Add(1000, 1)

	asn, utype := e.hiddenASN(iasns, 9000, 0, votes)
	if asn != 9000 || utype != UtypeHiddenNoInter {
		t.Fatalf("got (%d, %d), want (9000, %d)", asn, utype, UtypeHiddenNoInter)
	}
}

// With HiddenReverse enabled, a reversed intermediary (provider of an
// origin, customer of the tentative annotation) is found when the
// forward search comes up empty.
func TestHiddenASNReverseSearch(t *testing.T) {
	b := testutil.NewBuilder()
	b.Customer(5000, 1000) // 5000 is a provider of 1000
	b.Customer(9000, 5000) // 9000 is a provider of 5000 (5000 a customer of 9000)
	b.Finalize()

	e := b.Engine(nil)
	iasns := NewVoteCounter()
	iasns.Add(1000, 1)
	votes := NewVoteCounter()
	votes.Add(1000, 1)

	asn, utype := e.hiddenASN(iasns, 9000, 0, votes)
	if asn != 5000 || utype != UtypeHiddenInter {
		t.Fatalf("got (%d, %d), want (5000, %d)", asn, utype, UtypeHiddenInter)
	}
}

// With no intermediary found, strict mode falls back to the
// highest-voted origin AS rather than keeping the tentative annotation.
func TestHiddenASNStrictFallback(t *testing.T) {
	b := testutil.NewBuilder()
	b.Finalize()

	cfg := testConfig()
	cfg.Strict = true
	cfg.HiddenReverse = false
	e := b.Engine(cfg)

	iasns := NewVoteCounter()
	iasns.Add(1000, 1)
	iasns.Add(2000, 5)
	votes := NewVoteCounter()
	votes.Add(1000, 1)
	votes.Add(2000, 5)

	asn, utype := e.hiddenASN(iasns, 9000, 0, votes)
	if asn != 2000 || utype != UtypeHiddenNoInter {
		t.Fatalf("got (%d, %d), want (2000, %d) (most-voted origin)", asn, utype, UtypeHiddenNoInter)
	}
}
