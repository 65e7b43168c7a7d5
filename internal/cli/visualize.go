package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardwall/pkg/cache"
	"github.com/matzehuels/cardwall/pkg/cards"
	"github.com/matzehuels/cardwall/pkg/layout"
	"github.com/matzehuels/cardwall/pkg/render"
)

// Supported visualize output formats.
const (
	formatSVG  = "svg"
	formatJSON = "json"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		deckPath   string
		padding    float64
		scale      float64
		noCache    bool
		redisURL   string
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a computed layout to SVG or JSON",
		Long: `Render a computed layout to SVG or JSON.

The visualize command takes a layout.json file (produced by 'layout') and
renders it as an SVG wireframe or a JSON export. The layout contains all
positioning information, so this step is purely about rendering.

Pass the original deck manifest with --deck to label cards with their titles.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], visualizeParams{
				formats:  formats,
				output:   output,
				deckPath: deckPath,
				padding:  padding,
				scale:    scale,
				noCache:  noCache,
				redisURL: redisURL,
			})
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis cache URL (default: local file cache)")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().StringVar(&deckPath, "deck", "", "deck manifest for card labels")
	cmd.Flags().Float64Var(&padding, "padding", layout.DefaultContainerPadding, "container padding used during layout")
	cmd.Flags().Float64Var(&scale, "scale", 1, "SVG pixel scale factor")

	return cmd
}

type visualizeParams struct {
	formats  []string
	output   string
	deckPath string
	padding  float64
	scale    float64
	noCache  bool
	redisURL string
}

// runVisualize loads the layout and renders it in each requested format.
func (c *CLI) runVisualize(ctx context.Context, input string, p visualizeParams) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	res, err := layout.UnmarshalResult(data)
	if err != nil {
		return fmt.Errorf("parse layout %s: %w", input, err)
	}

	var deck *cards.Deck
	if p.deckPath != "" {
		deck, err = cards.LoadManifest(p.deckPath)
		if err != nil {
			return fmt.Errorf("load deck %s: %w", p.deckPath, err)
		}
	}

	store, err := newCache(p.noCache, p.redisURL)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	if deck != nil && !p.noCache {
		printWarning("Deck labels vary per render; artifact caching is skipped")
	}

	layoutHash := cache.Hash(data)
	keyer := cache.NewDefaultKeyer()

	anyCached := false
	for _, format := range p.formats {
		artifact, cached, err := renderWithCache(ctx, store, keyer, layoutHash, res, deck, format, p)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		anyCached = anyCached || cached

		outputPath := artifactPath(input, p.output, format, len(p.formats) > 1)
		if err := os.WriteFile(outputPath, artifact, 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", outputPath, err)
		}
		printFile(outputPath)
	}

	printSuccess("Visualization complete")
	printStats(res.CardCount(), res.Columns, anyCached)
	return nil
}

// renderWithCache renders one format, consulting the artifact cache first.
// Deck-labeled renders bypass the cache because labels are not part of the key.
func renderWithCache(ctx context.Context, store cache.Cache, keyer cache.Keyer, layoutHash string, res layout.Result, deck *cards.Deck, format string, p visualizeParams) ([]byte, bool, error) {
	cacheable := deck == nil
	key := keyer.RenderKey(layoutHash, cache.RenderKeyOpts{Format: format, Scale: p.scale})

	if cacheable {
		if data, hit, err := store.Get(ctx, key); err == nil && hit {
			return data, true, nil
		}
	}

	var artifact []byte
	var err error
	switch format {
	case formatSVG:
		svgOpts := []render.SVGOption{render.WithPadding(p.padding), render.WithScale(p.scale)}
		if deck != nil {
			svgOpts = append(svgOpts, render.WithDeck(deck))
		}
		artifact = render.RenderSVG(res, svgOpts...)
	case formatJSON:
		jsonOpts := []render.JSONOption{}
		if deck != nil {
			jsonOpts = append(jsonOpts, render.WithJSONDeck(deck))
		}
		artifact, err = render.RenderJSON(res, jsonOpts...)
	}
	if err != nil {
		return nil, false, err
	}

	if cacheable {
		_ = store.Set(ctx, key, artifact, cache.TTLRender)
	}
	return artifact, false, nil
}

// artifactPath derives the output path for one format.
func artifactPath(input, output, format string, multi bool) string {
	if output != "" {
		if multi {
			return output + "." + format
		}
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	base = strings.TrimSuffix(base, ".layout")
	return base + "." + format
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	return strings.Split(s, ",")
}

// validateFormats rejects unknown output formats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if f != formatSVG && f != formatJSON {
			return fmt.Errorf("unsupported format %q (valid: svg, json)", f)
		}
	}
	return nil
}
