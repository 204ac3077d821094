// Package report turns the engine's two Updates stores into the output
// shape a bdrmapit consumer expects: one row per interface plus a
// separate IXP-crossing table, written as CSV or as a terminal summary.
package report

import (
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
	"github.com/bdrmapit-go/bdrmapit/pkg/updates"
)

// Row is one interface's annotation, joined with its owning router's.
// Column names and the -1 no-annotation sentinel match the original
// saveres.py output table, less its redundant iasn column.
type Row struct {
	Addr        string
	RouterID    string
	RouterASN   int
	RouterOrg   int
	IfaceASN    int
	IfaceOrg    int
	RouterUtype int
	IfaceUtype  int
	Echo        bool
	NextHop     bool
	PHop        bool
}

// BuildRows produces one Row per interface in graph, in AllInterfaces
// order (sorted by address, so output is stable across runs).
func BuildRows(graph *bgraph.Graph, rupdates, iupdates *updates.Store) []Row {
	ifaces := graph.AllInterfaces()
	rows := make([]Row, 0, len(ifaces))
	for _, iface := range ifaces {
		rows = append(rows, buildRow(iface, rupdates, iupdates))
	}
	return rows
}

func buildRow(iface *bgraph.Interface, rupdates, iupdates *updates.Store) Row {
	router := iface.Router
	row := Row{
		Addr:     iface.Addr,
		PHop:     iface.HasPred(),
		IfaceASN: iface.ASN,
		IfaceOrg: iface.Org,
	}
	if router != nil {
		row.RouterID = router.Name
		row.NextHop = router.NextHop
	}

	rasn, rorg, rtype := -1, -1, -1
	if rupdate, ok := rupdates.RouterUpdate(router); ok {
		rasn, rorg, rtype = rupdate.ASN, rupdate.Org, rupdate.UType
	}
	row.RouterASN, row.RouterOrg, row.RouterUtype = rasn, rorg, rtype

	// Fall back to the interface's own raw ASN/org whenever there is no
	// interface-level annotation, or the interface's org disagrees with
	// the router's: in that case the router annotation doesn't actually
	// describe this interface, so report the raw mapping instead.
	iupdate, ok := iupdates.InterfaceUpdate(iface)
	if !ok || iface.Org != rorg {
		row.IfaceUtype = -1
		if ok {
			row.IfaceUtype = 0
		}
		return row
	}
	row.IfaceASN = iupdate.ASN
	row.IfaceOrg = iupdate.Org
	row.IfaceUtype = iupdate.UType
	return row
}

// EchoRow builds a synthetic row for an address only ever observed as an
// ICMP echo reply, never as a genuine traceroute hop: router and
// interface collapse to the same raw AS mapping, with Echo set and both
// utypes 0.
func EchoRow(addr string, asn, org int) Row {
	return Row{
		Addr:      addr,
		RouterID:  addr,
		RouterASN: asn,
		RouterOrg: org,
		IfaceASN:  asn,
		IfaceOrg:  org,
		Echo:      true,
	}
}
