// Package commands wires the discovery CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/justthetip/yoto-discovery/internal/config"
)

var env string

// Execute runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "discovery",
		Short:         "Conversational product discovery over the audio catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&env, "env", "", "config environment (default: ENV or local)")

	root.AddCommand(serveCmd(), fetchCmd(), statsCmd())
	return root.Execute()
}

func currentEnv() string {
	if env != "" {
		return env
	}
	return config.GetEnv()
}
