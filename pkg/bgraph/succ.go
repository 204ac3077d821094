package bgraph

// Succ is the tagged-variant successor of a Router: either a directly
// observed Interface hop or a VrfEdge synthesized from forwarding-table
// analysis. Exactly one of Iface or VRF is non-nil. Succ is comparable and
// safe as a map key, matching the original's use of Interface/VRFEdge
// objects as dict keys in router.origins.
type Succ struct {
	Iface *Interface
	VRF   *VrfEdge
}

// SuccFromInterface wraps an Interface successor.
func SuccFromInterface(i *Interface) Succ { return Succ{Iface: i} }

// SuccFromVRF wraps a VrfEdge successor.
func SuccFromVRF(e *VrfEdge) Succ { return Succ{VRF: e} }

// IsVRF reports whether this successor is a VrfEdge rather than an Interface.
func (s Succ) IsVRF() bool { return s.VRF != nil }

// Router returns the router reached by this successor: the VrfEdge's target
// for a VRF successor, or the owning router of the successor interface.
func (s Succ) Router() *Router {
	if s.VRF != nil {
		return s.VRF.Target
	}
	return s.Iface.Router
}

// Addr returns a human-readable identifier for logging/debug traces.
func (s Succ) Addr() string {
	if s.VRF != nil {
		return "vrf:" + s.VRF.Target.Name
	}
	return s.Iface.Addr
}

// ASN returns the interface's own ASN annotation for a direct successor, or
// 0 for a VRF successor (VRF edges carry no interface-level ASN of their
// own; the VRF router heuristic derives votes from the target router's
// interfaces instead).
func (s Succ) ASN() int {
	if s.VRF != nil {
		return 0
	}
	return s.Iface.ASN
}
