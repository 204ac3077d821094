package annotate

import (
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
	"github.com/bdrmapit-go/bdrmapit/pkg/util"
)

// Trace records per-object annotation decisions as structured debug log
// entries, replacing the original's global DEBUG flag with an explicit,
// nil-safe collaborator: an Engine with a nil Trace runs silently, one
// with a Trace logs every router/interface decision at debug level.
type Trace struct {
	Iteration int
}

// NewTrace creates a Trace. Attach it to an Engine's Trace field to
// enable per-decision debug logging.
func NewTrace() *Trace {
	return &Trace{}
}

// Router logs a router annotation decision.
func (t *Trace) Router(r *bgraph.Router, asn, utype int) {
	if t == nil {
		return
	}
	util.WithRouter(r.Name).WithIteration(t.Iteration).WithField("utype", utype).Debugf("router -> AS%d", asn)
}

// Interface logs an interface annotation decision.
func (t *Trace) Interface(i *bgraph.Interface, asn, utype int) {
	if t == nil {
		return
	}
	util.WithFields(map[string]interface{}{
		"interface": i.Addr,
		"iteration": t.Iteration,
		"utype":     utype,
	}).Debugf("interface -> AS%d", asn)
}
