package report

import (
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
	"github.com/bdrmapit-go/bdrmapit/pkg/updates"
)

// IXPRow describes one router-to-router hop observed across an IXP
// switch fabric: the sentinel successor interface carries no AS of its
// own, only the exchange's participant ID.
type IXPRow struct {
	Addr    string
	Router  string
	ASN     int
	Org     int
	ConnASN int
	ConnOrg int
	PID     int
	NextHop bool
}

// ixpSentinelToPID converts an IXP sentinel ASN (<= -100) back into the
// exchange's participant ID, the inverse of the ingestion-time encoding.
func ixpSentinelToPID(sentinel int) int {
	return -sentinel - 100
}

// BuildIXPRows walks every router's successors and emits one row per IXP
// crossing: a successor interface whose ASN is an IXP sentinel.
func BuildIXPRows(graph *bgraph.Graph, rupdates *updates.Store) []IXPRow {
	var rows []IXPRow
	for _, router := range graph.AllRouters() {
		connASN := -1
		connOrg := -1
		if u, ok := rupdates.RouterUpdate(router); ok {
			connASN, connOrg = u.ASN, u.Org
		}
		for _, succ := range router.Succ {
			if succ.IsVRF() || succ.Iface == nil || succ.Iface.ASN > -100 {
				continue
			}
			target := succ.Router()
			asn, org := -1, -1
			if u, ok := rupdates.RouterUpdate(target); ok {
				asn, org = u.ASN, u.Org
			}
			rows = append(rows, IXPRow{
				Addr:    succ.Iface.Addr,
				Router:  router.Name,
				ASN:     asn,
				Org:     org,
				ConnASN: connASN,
				ConnOrg: connOrg,
				PID:     ixpSentinelToPID(succ.Iface.ASN),
				NextHop: router.NextHop,
			})
		}
	}
	return rows
}
