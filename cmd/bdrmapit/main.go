// Command bdrmapit runs the router/interface AS-annotation engine over a
// prebuilt traceroute graph: it loads the BGP relationship, AS2Org, and
// IXP reference data named in a config file, loads a graph snapshot, runs
// the annotation engine to a fixed point, and writes a report.
//
// Usage:
//
//	bdrmapit run --config bdrmapit.yaml --graph graph.json --out report.csv
//	bdrmapit validate --config bdrmapit.yaml
//	bdrmapit settings show
//	bdrmapit version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bdrmapit-go/bdrmapit/pkg/audit"
	"github.com/bdrmapit-go/bdrmapit/pkg/cli"
	"github.com/bdrmapit-go/bdrmapit/pkg/settings"
	"github.com/bdrmapit-go/bdrmapit/pkg/util"
	"github.com/bdrmapit-go/bdrmapit/pkg/version"
)

// App holds CLI state shared across all commands.
type App struct {
	configPath string
	graphPath  string
	outPath    string
	verbose    bool

	settings *settings.Settings
}

var app = &App{}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if ec, ok := err.(exitCoder); ok {
			os.Exit(ec.ExitCode())
		}
		os.Exit(1)
	}
}

// exitCoder lets a command report a specific process exit code (spec.md
// §6's CLI contract: 0 success, 2 config validation error).
type exitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) ExitCode() int { return e.code }

func newExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

var rootCmd = &cobra.Command{
	Use:               "bdrmapit",
	Short:             "Router and interface AS-ownership inference",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `bdrmapit infers which autonomous system owns each router and
interface in a traceroute-derived topology graph, using BGP relationship
and customer-cone evidence, driven to a fixed point across the whole
graph.

  bdrmapit run --config bdrmapit.yaml --graph graph.json --out report.csv
  bdrmapit validate --config bdrmapit.yaml
  bdrmapit settings show`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		var err error
		app.settings, err = settings.Load()
		if err != nil {
			util.Warnf("could not load settings: %v", err)
			app.settings = &settings.Settings{}
		}

		if app.configPath == "" {
			app.configPath = app.settings.DefaultConfigPath
		}
		if app.graphPath == "" {
			app.graphPath = app.settings.DefaultGraphPath
		}

		if app.verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		auditPath := app.settings.GetAuditLogPath(app.settings.OutputDir)
		auditLogger, err := audit.NewFileLogger(auditPath, audit.RotationConfig{
			MaxSize:    int64(app.settings.GetAuditMaxSizeMB()) * 1024 * 1024,
			MaxBackups: app.settings.GetAuditMaxBackups(),
		})
		if err != nil {
			util.Warnf("could not initialize audit logging: %v", err)
		} else {
			audit.SetDefaultLogger(auditLogger)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&app.graphPath, "graph", "g", "", "Graph snapshot path")
	rootCmd.PersistentFlags().StringVarP(&app.outPath, "out", "o", "", "Report output path")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "run", Title: "Run Commands:"},
		&cobra.Group{ID: "meta", Title: "Configuration & Meta:"},
	)

	runCmd.GroupID = "run"
	validateCmd.GroupID = "run"
	rootCmd.AddCommand(runCmd, validateCmd)

	settingsCmd.GroupID = "meta"
	versionCmd.GroupID = "meta"
	rootCmd.AddCommand(settingsCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("bdrmapit dev build (set pkg/version.Version via -ldflags for version info)")
		} else {
			fmt.Printf("bdrmapit %s (%s)\n", version.Version, version.GitCommit)
		}
	},
}

// isSettingsOrHelp checks whether cmd (or any ancestor) is a settings,
// help, or version command — these don't need config/graph/audit setup.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "settings":
			return true
		}
	}
	return false
}

// Color helpers — delegate to pkg/cli.
func green(s string) string  { return cli.Green(s) }
func yellow(s string) string { return cli.Yellow(s) }
func red(s string) string    { return cli.Red(s) }
