package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bdrmapit-go/bdrmapit/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent CLI defaults",
	Long: `Manage persistent settings stored in ~/.bdrmapit/settings.json.

Settings provide defaults for the --config/--graph flags:
  - default_config_path: Used when --config is not specified
  - default_graph_path:  Used when --graph is not specified
  - output_dir:          Directory of audit.log when audit_log_path is unset
                         (does not change where reports are written)

Examples:
  bdrmapit settings show
  bdrmapit settings set config /etc/bdrmapit/config.yaml
  bdrmapit settings set graph /data/graph.json
  bdrmapit settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SETTING\tVALUE")
		fmt.Fprintln(w, "-------\t-----")

		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			fmt.Fprintf(w, "%s\t%s\n", name, value)
		}

		printSetting("default_config_path", s.DefaultConfigPath)
		printSetting("default_graph_path", s.DefaultGraphPath)
		printSetting("output_dir", s.OutputDir)
		printSetting("last_graph_path", s.LastGraphPath)
		printSetting("audit_log_path", s.AuditLogPath)

		w.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Long: `Set a persistent setting value.

Available settings:
  config  - Default config path (--config flag default)
  graph   - Default graph snapshot path (--graph flag default)
  out     - Audit log directory (not a default for --out)

Examples:
  bdrmapit settings set config /etc/bdrmapit/config.yaml
  bdrmapit settings set graph /data/graph.json
  bdrmapit settings set out /var/bdrmapit/out`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "config":
			s.SetConfigPath(value)
			fmt.Printf("Default config path set to: %s\n", value)
		case "graph":
			s.SetGraphPath(value)
			fmt.Printf("Default graph path set to: %s\n", value)
		case "out":
			s.SetOutputDir(value)
			fmt.Printf("Audit log directory set to: %s\n", value)
		default:
			return fmt.Errorf("unknown setting: %s (valid: config, graph, out)", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}

		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("All settings cleared.")
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show settings file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(settings.DefaultSettingsPath())
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsClearCmd)
	settingsCmd.AddCommand(settingsPathCmd)
}
