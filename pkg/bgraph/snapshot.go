package bgraph

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// snapshot is the wire format for a prebuilt graph: flat router/interface
// lists referencing each other by name/address rather than by pointer, so
// it round-trips through JSON without custom MarshalJSON methods on the
// pointer-heavy live types.
type snapshot struct {
	Routers    []snapRouter    `json:"routers"`
	Interfaces []snapInterface `json:"interfaces"`
}

type snapInterface struct {
	Addr   string `json:"addr"`
	ASN    int    `json:"asn"`
	Org    int    `json:"org"`
	MPLS   bool   `json:"mpls,omitempty"`
	VRF    bool   `json:"vrf,omitempty"`
	Router string `json:"router"`
	Hint   int    `json:"hint,omitempty"`
	Dests  []int  `json:"dests,omitempty"`
	Pred   []snapPred `json:"pred,omitempty"`
	FirstHopVotes map[int]int `json:"first_hop_votes,omitempty"`
}

type snapPred struct {
	Router string `json:"router"`
	Count  int    `json:"count"`
}

type snapRouter struct {
	Name    string     `json:"name"`
	NextHop bool       `json:"next_hop,omitempty"`
	VRF     bool       `json:"vrf,omitempty"`
	Dests   []int      `json:"dests,omitempty"`
	Hints   []int      `json:"hints,omitempty"`
	Succ    []snapSucc `json:"succ,omitempty"`
}

// snapSucc is one successor edge: either Iface (an interface address, for a
// direct traceroute-hop successor) or VRFTarget+VRFType (for a VRF edge).
// Exactly one of Iface or VRFTarget is set.
type snapSucc struct {
	Iface     string `json:"iface,omitempty"`
	VRFTarget string `json:"vrf_target,omitempty"`
	VRFType   int    `json:"vrf_type,omitempty"`
	Origins   []int  `json:"origins,omitempty"`
}

// WriteSnapshot serializes g to w as indented JSON.
func WriteSnapshot(g *Graph, w io.Writer) error {
	snap := toSnapshot(g)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// ReadSnapshot deserializes a Graph from r.
func ReadSnapshot(r io.Reader) (*Graph, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("bgraph: decode snapshot: %w", err)
	}
	return fromSnapshot(&snap)
}

func toSnapshot(g *Graph) *snapshot {
	snap := &snapshot{}

	ifaceNames := make([]string, 0, len(g.Interfaces))
	for addr := range g.Interfaces {
		ifaceNames = append(ifaceNames, addr)
	}
	sort.Strings(ifaceNames)
	for _, addr := range ifaceNames {
		iface := g.Interfaces[addr]
		si := snapInterface{
			Addr: iface.Addr,
			ASN:  iface.ASN,
			Org:  iface.Org,
			MPLS: iface.MPLS,
			VRF:  iface.VRF,
			Hint: iface.Hint,
			FirstHopVotes: iface.FirstHopVotes,
		}
		if iface.Router != nil {
			si.Router = iface.Router.Name
		}
		si.Dests = sortedInts(iface.Dests)
		predNames := make([]string, 0, len(iface.Pred))
		for pr := range iface.Pred {
			predNames = append(predNames, pr.Name)
		}
		sort.Strings(predNames)
		for _, name := range predNames {
			var pr *Router
			for p := range iface.Pred {
				if p.Name == name {
					pr = p
					break
				}
			}
			si.Pred = append(si.Pred, snapPred{Router: name, Count: iface.Pred[pr]})
		}
		snap.Interfaces = append(snap.Interfaces, si)
	}

	routerNames := make([]string, 0, len(g.Routers))
	for name := range g.Routers {
		routerNames = append(routerNames, name)
	}
	sort.Strings(routerNames)
	for _, name := range routerNames {
		r := g.Routers[name]
		sr := snapRouter{
			Name:    r.Name,
			NextHop: r.NextHop,
			VRF:     r.VRF,
			Dests:   sortedInts(r.Dests),
			Hints:   sortedInts(r.Hints),
		}
		for _, succ := range r.Succ {
			origins := sortedInts(r.Origins[succ])
			if succ.IsVRF() {
				sr.Succ = append(sr.Succ, snapSucc{
					VRFTarget: succ.VRF.Target.Name,
					VRFType:   int(succ.VRF.VType),
					Origins:   origins,
				})
			} else {
				sr.Succ = append(sr.Succ, snapSucc{
					Iface:   succ.Iface.Addr,
					Origins: origins,
				})
			}
		}
		snap.Routers = append(snap.Routers, sr)
	}
	return snap
}

func fromSnapshot(snap *snapshot) (*Graph, error) {
	g := New()

	for _, sr := range snap.Routers {
		r := g.Router(sr.Name)
		r.NextHop = sr.NextHop
		r.VRF = sr.VRF
		for _, d := range sr.Dests {
			r.Dests[d] = struct{}{}
		}
		for _, h := range sr.Hints {
			r.Hints[h] = struct{}{}
		}
	}

	for _, si := range snap.Interfaces {
		iface := g.Interface(si.Addr)
		iface.ASN = si.ASN
		iface.Org = si.Org
		iface.MPLS = si.MPLS
		iface.VRF = si.VRF
		iface.Hint = si.Hint
		for asn, num := range si.FirstHopVotes {
			iface.AddFirstHopVote(asn, num)
		}
		for _, d := range si.Dests {
			iface.Dests[d] = struct{}{}
		}
		if si.Router != "" {
			g.Router(si.Router).AddInterface(iface)
		}
		for _, p := range si.Pred {
			iface.Pred[g.Router(p.Router)] += p.Count
		}
	}

	for _, sr := range snap.Routers {
		r := g.Routers[sr.Name]
		for _, ss := range sr.Succ {
			var succ Succ
			switch {
			case ss.VRFTarget != "":
				succ = SuccFromVRF(NewVrfEdge(g.Router(ss.VRFTarget), VType(ss.VRFType)))
			case ss.Iface != "":
				succ = SuccFromInterface(g.Interface(ss.Iface))
			default:
				return nil, fmt.Errorf("bgraph: router %q has a successor with neither iface nor vrf_target set", sr.Name)
			}
			r.AddSucc(succ, ss.Origins...)
		}
	}

	return g, nil
}

func sortedInts(set map[int]struct{}) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
