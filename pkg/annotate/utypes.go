package annotate

// Utype values tag *why* an annotation was made. They are not an enum in
// the traditional sense: higher bands are added to a base reason to
// record which tie-break or boost fired, so a caller debugging a result
// can read the number back into "router heuristic, tie broken by
// predecessor weight" without re-running the algorithm. This mirrors the
// original's scattered integer constants (alg_mapit.py) rather than a
// single clean enum — preserved here because downstream tooling and the
// report writer key off exact values.
const (
	UtypeNotImplemented = 0
	UtypeNoDest         = 1
	UtypeModified       = 3
	UtypeSingle         = 4
	UtypeSingleModified = 5
	UtypeHeaped         = 6
	UtypeHeapedModified = 7
	UtypeMissingInter   = 9
	UtypeMissingNoInter = 10

	UtypeSingleSuccOrigin = 10
	UtypeSingleSucc4      = 11
	UtypeSuccOriginInter  = 12
	UtypeSuccOriginCust   = 13
	UtypeRemainingFour    = 14
	UtypeSingleSuccRasn   = 15
	UtypeAllpeerSucc      = 16
	UtypeAllpeerOrigin    = 17
	UtypeIasnSuccHalf     = 18
	UtypeAllrels          = 19

	UtypeVoteSingle = 50
	UtypeVoteTie    = 70

	UtypeHiddenInter   = 100
	UtypeHiddenNoInter = 200

	UtypeReallocatedPrefix = 500
	UtypeReallocatedDest   = 1000

	// Additive boosts recorded on top of a base utype, applied when the
	// corresponding tie-break or override fires during vote fusion.
	BoostT1           = 5000000 // predecessor-multiplicity tie-break
	BoostOverlap      = 1000000 // third-party overlap override
	BoostT2           = 16000   // relationship-asymmetry tie-break
	BoostVRFNonVRF    = 50000   // VRF: non-VRF successors present
	BoostVRFNextHop   = 3000    // VRF: next-hop 4x-vote early return
	BoostSinglePeer   = 5600    // router: single-iasn/single-succ peer shortcut
	SpecialT1Unrelated = 6000000 // router: single-iface+succ+peer-or-norelpeer special case

	// HintBand marks a utype decided by an operator-supplied hint rather
	// than the heuristic pipeline; (utype & HintBand) == HintBand identifies
	// an ASN-level hint. Org-level hint utypes sit in the 0xfe00 band.
	HintBand = 0xff00
)
