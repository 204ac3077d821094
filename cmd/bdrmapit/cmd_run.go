package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bdrmapit-go/bdrmapit/pkg/annotate"
	"github.com/bdrmapit-go/bdrmapit/pkg/as2org"
	"github.com/bdrmapit-go/bdrmapit/pkg/audit"
	"github.com/bdrmapit-go/bdrmapit/pkg/bgp"
	"github.com/bdrmapit-go/bdrmapit/pkg/bgpcache"
	"github.com/bdrmapit-go/bdrmapit/pkg/bgraph"
	"github.com/bdrmapit-go/bdrmapit/pkg/config"
	"github.com/bdrmapit-go/bdrmapit/pkg/ixp"
	"github.com/bdrmapit-go/bdrmapit/pkg/report"
	"github.com/bdrmapit-go/bdrmapit/pkg/util"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the annotation engine over a graph snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEngine()
	},
}

// cachedBGP satisfies annotate.BGPService, delegating relationship checks
// straight to the underlying bgp.Graph and cone lookups through an
// optional Redis read-through cache.
type cachedBGP struct {
	*bgp.Graph
	cone *bgpcache.ConeCache
}

func (c *cachedBGP) Conesize(a int) int          { return c.cone.Conesize(a) }
func (c *cachedBGP) Cone(a int) map[int]struct{} { return c.cone.Cone(a) }

// cachedOrg satisfies annotate.OrgService, delegating org lookups through
// an optional Redis read-through cache.
type cachedOrg struct {
	orgs *bgpcache.OrgCache
}

func (c *cachedOrg) Org(asn int) int       { return c.orgs.Org(asn) }
func (c *cachedOrg) SameOrg(a, b int) bool { return c.orgs.Org(a) == c.orgs.Org(b) }

func runEngine() error {
	start := time.Now()

	if app.configPath == "" {
		return newExitError(2, fmt.Errorf("--config is required"))
	}
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return newExitError(2, err)
	}

	if app.graphPath == "" {
		return newExitError(2, fmt.Errorf("--graph is required"))
	}

	if cfg.LogJSON {
		util.SetJSONFormat()
	}
	if cfg.LogLevel != "" {
		if err := util.SetLogLevel(cfg.LogLevel); err != nil {
			util.Warnf("invalid log_level %q: %v", cfg.LogLevel, err)
		}
	}

	fingerprint, err := configFingerprint(app.configPath)
	if err != nil {
		return fmt.Errorf("fingerprinting config: %w", err)
	}
	event := audit.NewRunEvent(fingerprint)

	bgpGraph, err := bgp.Load(cfg.BGPPath)
	if err != nil {
		return fmt.Errorf("loading BGP relationships: %w", err)
	}
	orgMap, err := as2org.Load(cfg.AS2OrgPath)
	if err != nil {
		return fmt.Errorf("loading AS2Org table: %w", err)
	}
	ixpCatalog := ixp.New()
	if cfg.IxpAsnsPath != "" {
		ixpCatalog, err = ixp.Load(cfg.IxpAsnsPath)
		if err != nil {
			return fmt.Errorf("loading IXP catalog: %w", err)
		}
	}

	var bgpSvc annotate.BGPService = bgpGraph
	var orgSvc annotate.OrgService = orgMap
	if cfg.RedisAddr != "" {
		cache := bgpcache.NewClient(cfg.RedisAddr)
		bgpSvc = &cachedBGP{Graph: bgpGraph, cone: bgpcache.NewConeCache(cache, bgpGraph)}
		orgSvc = &cachedOrg{orgs: bgpcache.NewOrgCache(cache, orgMap)}
	}

	f, err := os.Open(app.graphPath)
	if err != nil {
		return fmt.Errorf("opening graph snapshot: %w", err)
	}
	graph, err := bgraph.ReadSnapshot(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("reading graph snapshot: %w", err)
	}

	event = event.WithCounts(len(graph.Routers), len(graph.Interfaces))

	e := annotate.NewEngine(graph, bgpSvc, orgSvc, ixpCatalog, cfg)
	e.SetDests(graph)

	succs, vrfs, lastHops := graph.Partition()
	annotate.SortVRFRouters(vrfs, bgpSvc)

	iterations := e.Refine(succs, lastHops, vrfs, graph.PredInterfaces())
	e.AnnotateFirstHops(graph.AllInterfaces())

	event = event.WithIterations(iterations)
	if iterations >= cfg.MaxIterations {
		event = event.WithOutcome(audit.OutcomeMaxIterations)
	} else {
		event = event.WithOutcome(audit.OutcomeFixedPoint)
	}

	rows := report.BuildRows(graph, e.RUpdates, e.IUpdates)
	ixpRows := report.BuildIXPRows(graph, e.RUpdates)

	outPath := app.outPath
	if outPath == "" {
		outPath = cfg.OutputPath
	}
	if err := writeReport(cfg, outPath, rows, ixpRows); err != nil {
		event = event.WithError(err)
		event = event.WithDuration(time.Since(start))
		audit.Log(event)
		return fmt.Errorf("writing report: %w", err)
	}

	event = event.WithSuccess()
	event = event.WithDuration(time.Since(start))
	if err := audit.Log(event); err != nil {
		util.Warnf("could not write audit log: %v", err)
	}

	fmt.Println(green(fmt.Sprintf("annotated %d routers, %d interfaces in %d iterations.", len(graph.Routers), len(graph.Interfaces), iterations)))
	return nil
}

func writeReport(cfg *config.Config, outPath string, rows []report.Row, ixpRows []report.IXPRow) error {
	switch cfg.OutputFormat {
	case "table", "":
		table := report.Summarize(rows)
		table.Flush()
		if len(ixpRows) > 0 {
			report.SummarizeIXP(ixpRows).Flush()
		}
		return nil
	case "csv":
		w := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return report.WriteCSV(w, rows)
	default:
		return fmt.Errorf("unknown output_format %q", cfg.OutputFormat)
	}
}

// configFingerprint hashes the config file's bytes so RunEvent can record
// which configuration produced a run without embedding the whole file.
func configFingerprint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("sha256:%x", sum), nil
}
