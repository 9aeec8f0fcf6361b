package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for treewalk
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treewalk <path>",
		Short: "List a directory tree up to a bounded depth",
		Long: `Treewalk lists the files and directories under a path, descending at most
--max-depth levels below it.

Hidden entries are skipped, files can be narrowed by name, extension and
size, and paths that cannot be read are reported inline instead of aborting
the listing.`,
		Example: `  treewalk .
  treewalk ~/projects --max-depth 2 --ext go
  treewalk /var/log --size 1MB- --summary
  treewalk docs --format markdown`,
		Args:    cobra.ExactArgs(1),
		Version: Version,
		RunE:    runList,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().Int("max-depth", 0, "Maximum depth below the root (0 = immediate children only)")
	cmd.Flags().String("name", "", "Only list files whose name contains this substring")
	cmd.Flags().String("ext", "", "Only list files with this extension (e.g. go, .md)")
	cmd.Flags().String("size", "", "Only list files within a size range MIN-MAX (e.g. 1kB-10MB, 1MB-, -512)")
	cmd.Flags().String("format", "", "Output format: text, json, markdown, html")
	cmd.Flags().String("color", "", "Colorize output: auto, always, never")
	cmd.Flags().String("log-level", "", "Diagnostic log level on stderr: trace, debug, info, warn, error")
	cmd.Flags().String("config", "", "Path to config file (default: $TREEWALK_CONFIG or <user config dir>/treewalk/config.yaml)")
	cmd.Flags().Bool("summary", false, "Print entry counts after a text listing")

	return cmd
}
