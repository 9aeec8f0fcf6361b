package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harrison/treewalk/internal/config"
	"github.com/harrison/treewalk/internal/display"
	"github.com/harrison/treewalk/internal/fileutil"
	"github.com/harrison/treewalk/internal/logger"
	"github.com/harrison/treewalk/internal/models"
	"github.com/spf13/cobra"
)

// runList implements the listing: resolve configuration, walk the root and
// render the entries.
func runList(cmd *cobra.Command, args []string) error {
	root := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	filters, err := filterOptions(cmd)
	if err != nil {
		return err
	}

	scanID := uuid.New().String()[:8]
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.SetPrefix(fmt.Sprintf("[scan %s]", scanID))
	log.LogDebug(fmt.Sprintf("root=%s max_depth=%d format=%s color=%s", root, cfg.MaxDepth, cfg.Format, cfg.Color))
	if !filters.IsZero() {
		log.LogDebug("filters: " + describeFilters(filters))
	}

	provider := fileutil.NewEntriesProvider(filters.Build(), log)
	entries := provider.Entries(root, cfg.MaxDepth)

	out := cmd.OutOrStdout()
	opts := display.WriteOptions{
		Format:   cfg.Format,
		Color:    display.ColorEnabled(cfg.Color, out),
		ScanID:   scanID,
		Root:     root,
		MaxDepth: cfg.MaxDepth,
	}
	if err := display.Write(out, opts, entries); err != nil {
		log.LogError(fmt.Sprintf("rendering %s output failed: %v", cfg.Format, err))
		return fmt.Errorf("failed to write listing: %w", err)
	}

	summary := display.Summarize(entries)
	log.LogInfo(fmt.Sprintf("listed %d entries (%d files, %d directories, %d inaccessible)",
		summary.Total(), summary.Files, summary.Directories, summary.Inaccessible))
	if cfg.Summary && cfg.Format == display.FormatText {
		summary.Display(out, opts.Color)
	}

	if !filters.IsZero() && summary.Files == 0 && !rootFailed(entries) {
		errOut := cmd.ErrOrStderr()
		display.WarnNoMatches(describeFilters(filters)).Display(errOut, display.ColorEnabled(cfg.Color, errOut))
	}

	return nil
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadDefaultConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	maxDepthFlag, _ := cmd.Flags().GetInt("max-depth")
	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	colorFlag, _ := cmd.Flags().GetString("color")
	formatFlag, _ := cmd.Flags().GetString("format")
	summaryFlag, _ := cmd.Flags().GetBool("summary")

	// Build flag pointers for merge (only explicitly set values)
	var maxDepthPtr *int
	if cmd.Flags().Changed("max-depth") {
		maxDepthPtr = &maxDepthFlag
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		level := strings.ToLower(strings.TrimSpace(logLevelFlag))
		logLevelPtr = &level
	}

	var colorPtr *string
	if cmd.Flags().Changed("color") {
		mode := strings.ToLower(colorFlag)
		colorPtr = &mode
	}

	var formatPtr *string
	if cmd.Flags().Changed("format") {
		format := strings.ToLower(formatFlag)
		formatPtr = &format
	}

	var summaryPtr *bool
	if cmd.Flags().Changed("summary") {
		summaryPtr = &summaryFlag
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(maxDepthPtr, logLevelPtr, colorPtr, formatPtr, summaryPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// filterOptions collects --name, --ext and --size.
func filterOptions(cmd *cobra.Command) (fileutil.FilterOptions, error) {
	name, _ := cmd.Flags().GetString("name")
	ext, _ := cmd.Flags().GetString("ext")
	sizeRange, _ := cmd.Flags().GetString("size")

	opts := fileutil.FilterOptions{
		Name:      name,
		Extension: strings.TrimPrefix(ext, "."),
	}

	if cmd.Flags().Changed("size") {
		minBytes, maxBytes, err := display.ParseSizeRange(sizeRange)
		if err != nil {
			return fileutil.FilterOptions{}, fmt.Errorf("invalid --size %q: %w", sizeRange, err)
		}
		opts.LimitSize = true
		opts.MinSize = minBytes
		opts.MaxSize = maxBytes
	}

	return opts, nil
}

// describeFilters renders the active filters the way they were given.
func describeFilters(opts fileutil.FilterOptions) string {
	var parts []string
	if opts.Name != "" {
		parts = append(parts, fmt.Sprintf("--name %q", opts.Name))
	}
	if opts.Extension != "" {
		parts = append(parts, fmt.Sprintf("--ext %q", opts.Extension))
	}
	if opts.LimitSize {
		parts = append(parts, fmt.Sprintf("--size %s-%s", display.FormatSize(opts.MinSize), maxSizeLabel(opts.MaxSize)))
	}
	return strings.Join(parts, " ")
}

func maxSizeLabel(maxBytes int64) string {
	if maxBytes == display.UnboundedSize {
		return ""
	}
	return display.FormatSize(maxBytes)
}

// rootFailed reports whether the listing is the single ErrorEntry produced
// when the root could not be traversed.
func rootFailed(entries []models.Entry) bool {
	return len(entries) == 1 && entries[0].Kind() == models.KindError
}
