package main

import (
	"github.com/spf13/cobra"

	"github.com/CPADelaney/project-nyx/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "trackmig",
	Short: "trackmig - tracking import migration tool",
	Long: `trackmig scans Python repositories for imports of the deprecated
standalone tracking modules, rewrites them to the unified tracking-system
accessor, and reports call sites that need a manual follow-up pass.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("trackmig version {{.Version}}\n")
}
