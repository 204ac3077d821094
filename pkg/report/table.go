package report

import (
	"strconv"

	"github.com/bdrmapit-go/bdrmapit/pkg/cli"
)

// Summarize renders rows as a terminal table via pkg/cli.Table, the same
// ASCII renderer the CLI uses for every other tabular output.
func Summarize(rows []Row) *cli.Table {
	t := cli.NewTable("ADDR", "ROUTER", "ROUTER_ASN", "ROUTER_ORG", "IFACE_ASN", "IFACE_ORG", "R_UTYPE", "I_UTYPE", "ECHO", "NEXTHOP", "PHOP")
	for _, r := range rows {
		t.Row(
			r.Addr,
			r.RouterID,
			strconv.Itoa(r.RouterASN),
			strconv.Itoa(r.RouterOrg),
			strconv.Itoa(r.IfaceASN),
			strconv.Itoa(r.IfaceOrg),
			strconv.Itoa(r.RouterUtype),
			strconv.Itoa(r.IfaceUtype),
			strconv.FormatBool(r.Echo),
			strconv.FormatBool(r.NextHop),
			strconv.FormatBool(r.PHop),
		)
	}
	return t
}

// SummarizeIXP renders IXP-crossing rows the same way.
func SummarizeIXP(rows []IXPRow) *cli.Table {
	t := cli.NewTable("INTERFACE", "ROUTER", "NEIGHBOR_ASN", "IXP_ID", "NEIGHBOR_ORG", "CONN_ASN", "CONN_ORG", "NEXTHOP")
	for _, r := range rows {
		t.Row(
			r.Addr,
			r.Router,
			strconv.Itoa(r.ASN),
			strconv.Itoa(r.PID),
			strconv.Itoa(r.Org),
			strconv.Itoa(r.ConnASN),
			strconv.Itoa(r.ConnOrg),
			strconv.FormatBool(r.NextHop),
		)
	}
	return t
}
