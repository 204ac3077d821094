package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bdrmapit-go/bdrmapit/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file without running the engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.configPath == "" {
			return newExitError(2, fmt.Errorf("--config is required"))
		}
		if _, err := config.Load(app.configPath); err != nil {
			return newExitError(2, err)
		}
		fmt.Println(green("config is valid."))
		return nil
	},
}
