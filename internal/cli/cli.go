package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardwall/pkg/buildinfo"
	"github.com/matzehuels/cardwall/pkg/cache"
	"github.com/matzehuels/cardwall/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cardwall"

	// defaultViewportWidth is the assumed container width when none is given.
	defaultViewportWidth = 1200.0

	// defaultViewportHeight is the assumed container height when none is given.
	defaultViewportHeight = 800.0
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "cardwall",
		Short:        "Cardwall packs content cards into responsive layouts",
		Long:         `Cardwall is a CLI tool for computing masonry, grid, and list layouts of variable-size content cards, previewing them live, and exporting them as SVG or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache selects a cache backend: null when disabled, Redis when a URL is
// given, otherwise the local file cache.
func newCache(noCache bool, redisURL string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		return cache.NewRedisCache(redisURL)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cardwall/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Flags
// =============================================================================

// layoutFlags registers the shared layout option flags on cmd.
func layoutFlags(cmd *cobra.Command, opts *layout.Options) {
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", opts.Mode, "packing mode: masonry (default), grid, list")
	cmd.Flags().Float64Var(&opts.CardThresholdWidth, "card-width", opts.CardThresholdWidth, "target minimum card width")
	cmd.Flags().Float64Var(&opts.Gap, "gap", opts.Gap, "spacing between cards")
	cmd.Flags().Float64Var(&opts.ContainerPadding, "padding", opts.ContainerPadding, "inner container padding")
	cmd.Flags().BoolVar(&opts.AlignCardHeight, "align", opts.AlignCardHeight, "force uniform card heights")
	cmd.Flags().Float64Var(&opts.FixedCardHeight, "card-height", opts.FixedCardHeight, "uniform card height (with --align, grid, list)")
	cmd.Flags().IntVar(&opts.CardsPerView, "cards-per-view", opts.CardsPerView, "fit this many grid cards in the viewport")
	cmd.Flags().BoolVar(&opts.AutoDirection, "auto-direction", opts.AutoDirection, "derive direction from the container aspect ratio")
	cmd.Flags().Float64Var(&opts.AutoDirectionRatio, "direction-ratio", opts.AutoDirectionRatio, "aspect ratio threshold for --auto-direction")
	cmd.Flags().BoolVar(&opts.IsVertical, "vertical", opts.IsVertical, "lay out along the vertical axis")
	cmd.Flags().Float64Var(&opts.PlaceholderHeight, "placeholder-height", opts.PlaceholderHeight, "assumed height for unmeasured cards")
}

// viewportFlags registers container size flags on cmd.
func viewportFlags(cmd *cobra.Command, vp *layout.Viewport) {
	cmd.Flags().Float64Var(&vp.Width, "width", vp.Width, "container width")
	cmd.Flags().Float64Var(&vp.Height, "height", vp.Height, "container height")
}
