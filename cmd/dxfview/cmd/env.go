package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zooyer/dxfview/config"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables read by dxfview",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return config.Usage()
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
