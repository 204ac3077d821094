package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// annotationHeader matches the original saveres.py annotation table's
// column order, minus the redundant denormalized iasn column it also
// carried (iface_asn already covers it here).
var annotationHeader = []string{
	"addr", "router_id", "router_asn", "router_org",
	"iface_asn", "iface_org", "router_utype", "iface_utype",
	"echo", "nexthop", "phop",
}

var ixpHeader = []string{
	"interface", "router", "neighbor_router_asn", "ixp_id",
	"neighbor_router_org", "conn_asn", "conn_org", "nexthop",
}

// WriteCSV writes rows as the per-interface annotation table.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(annotationHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
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
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteIXPCSV writes rows as the IXP-crossing table (spec.md §6:
// "a separate IXP table lists (interface, router, neighbor_router_asn,
// ixp_id)"), with the annotating router/neighbor org pair appended.
func WriteIXPCSV(w io.Writer, rows []IXPRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ixpHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Addr,
			r.Router,
			strconv.Itoa(r.ASN),
			strconv.Itoa(r.PID),
			strconv.Itoa(r.Org),
			strconv.Itoa(r.ConnASN),
			strconv.Itoa(r.ConnOrg),
			strconv.FormatBool(r.NextHop),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
