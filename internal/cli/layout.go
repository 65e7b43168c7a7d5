package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardwall/pkg/cache"
	"github.com/matzehuels/cardwall/pkg/cards"
	"github.com/matzehuels/cardwall/pkg/layout"
)

// layoutCommand creates the layout command for computing card layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output   string
		noCache  bool
		redisURL string
	)
	opts := layout.DefaultOptions()
	vp := layout.Viewport{Width: defaultViewportWidth, Height: defaultViewportHeight}

	cmd := &cobra.Command{
		Use:   "layout [deck.toml]",
		Short: "Compute a card layout from a deck manifest",
		Long: `Compute a card layout from a deck manifest.

The layout command takes a deck.toml manifest and packs its cards into the
given container size. The output is a layout.json file that can be rendered
to SVG using the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, vp, output, noCache, redisURL)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis cache URL (default: local file cache)")

	viewportFlags(cmd, &vp)
	layoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the deck, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts layout.Options, vp layout.Viewport, output string, noCache bool, redisURL string) error {
	deck, err := cards.LoadManifest(input)
	if err != nil {
		return fmt.Errorf("load deck %s: %w", input, err)
	}

	store, err := newCache(noCache, redisURL)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	opts = opts.Clamped()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Packing %d cards...", deck.Len()))
	spinner.Start()

	res, cacheHit, err := computeWithCache(ctx, store, deck, vp, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := layout.WriteResultFile(res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(res.CardCount(), res.Columns, cacheHit)
	printNewline()
	printNextStep("Render", "cardwall visualize "+outputPath)

	return nil
}

// computeWithCache checks the cache before computing, and stores fresh
// results. Cache failures degrade to a plain computation.
func computeWithCache(ctx context.Context, store cache.Cache, deck *cards.Deck, vp layout.Viewport, opts layout.Options) (layout.Result, bool, error) {
	keyer := cache.NewDefaultKeyer()
	key := keyer.LayoutKey(deck.ContentHash(), cache.LayoutKeyOpts{Options: opts, Viewport: vp})

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		if res, err := layout.UnmarshalResult(data); err == nil {
			return res, true, nil
		}
	}

	res, err := layout.Compute(deck.IDs(), vp, opts, deck.HeightLookup())
	if err != nil {
		return layout.Result{}, false, err
	}

	if data, err := layout.MarshalResult(res); err == nil {
		_ = store.Set(ctx, key, data, cache.TTLLayout)
	}
	return res, false, nil
}
