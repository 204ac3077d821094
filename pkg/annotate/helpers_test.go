package annotate

import (
	"github.com/bdrmapit-go/bdrmapit/pkg/config"
	"github.com/bdrmapit-go/bdrmapit/pkg/updates"
)

// updateFixture builds an updates.Update literal for tests that seed a
// router or interface's advanced-generation annotation directly.
func updateFixture(asn, org, utype int) updates.Update {
	return updates.Update{ASN: asn, Org: org, UType: utype}
}

// testConfig returns a config.Default() copy tests can mutate without
// affecting other tests sharing the zero-value default.
func testConfig() *config.Config {
	cfg := *config.Default()
	return &cfg
}
