package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cardwall/pkg/cache"
	"github.com/matzehuels/cardwall/pkg/cards"
	"github.com/matzehuels/cardwall/pkg/layout"
	"github.com/matzehuels/cardwall/pkg/render"
)

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		noCache  bool
		redisURL string
	)

	cmd := &cobra.Command{
		Use:   "serve [deck.toml]",
		Short: "Serve live layout previews over HTTP",
		Long: `Serve live layout previews over HTTP.

The serve command loads a deck manifest and exposes it as a small preview
server. Container size and layout options come from query parameters, so a
browser window drives the layout the way a host application would:

  GET /layout.svg?width=1200&height=800&mode=masonry
  GET /layout.json?width=1200&height=800
  GET /healthz

Computed layouts are cached across requests.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, noCache, redisURL)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8087", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis cache URL (default: local file cache)")

	return cmd
}

// runServe starts the preview server and blocks until the context is
// cancelled or the server fails.
func (c *CLI) runServe(ctx context.Context, input, addr string, noCache bool, redisURL string) error {
	deck, err := cards.LoadManifest(input)
	if err != nil {
		return fmt.Errorf("load deck %s: %w", input, err)
	}

	store, err := newCache(noCache, redisURL)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           c.newServeHandler(deck, store),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c.Logger.Info("preview server listening", "addr", addr, "deck", deck.Name, "cards", deck.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newServeHandler builds the preview server routes.
func (c *CLI) newServeHandler(deck *cards.Deck, store cache.Cache) http.Handler {
	h := &previewHandler{
		cli:   c,
		deck:  deck,
		store: store,
		keyer: cache.NewDefaultKeyer(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", h.health)
	r.Get("/layout.json", h.layoutJSON)
	r.Get("/layout.svg", h.layoutSVG)
	return r
}

type previewHandler struct {
	cli   *CLI
	deck  *cards.Deck
	store cache.Cache
	keyer cache.Keyer
}

func (h *previewHandler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","deck":%q,"cards":%d}`+"\n", h.deck.Name, h.deck.Len())
}

func (h *previewHandler) layoutJSON(w http.ResponseWriter, r *http.Request) {
	res, ok := h.compute(w, r)
	if !ok {
		return
	}

	data, err := render.RenderJSON(res, render.WithJSONDeck(h.deck), render.WithJSONCompact())
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (h *previewHandler) layoutSVG(w http.ResponseWriter, r *http.Request) {
	res, ok := h.compute(w, r)
	if !ok {
		return
	}

	opts := optionsFromQuery(r)
	svg := render.RenderSVG(res,
		render.WithDeck(h.deck),
		render.WithPadding(opts.ContainerPadding),
	)
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// compute resolves options and viewport from the query and computes the
// layout through the cache. A false return means the response is written.
func (h *previewHandler) compute(w http.ResponseWriter, r *http.Request) (layout.Result, bool) {
	vp := viewportFromQuery(r)
	if vp.IsZero() {
		http.Error(w, "width and height must be positive", http.StatusBadRequest)
		return layout.Result{}, false
	}
	opts := optionsFromQuery(r)

	pr := newProgress(h.cli.Logger)
	res, cacheHit, err := computeWithCache(r.Context(), h.store, h.deck, vp, opts)
	if err != nil {
		h.cli.Logger.Error("layout failed", "err", err)
		http.Error(w, "layout failed", http.StatusInternalServerError)
		return layout.Result{}, false
	}
	if !cacheHit {
		pr.done(fmt.Sprintf("Packed %d cards at %.0fx%.0f", res.CardCount(), vp.Width, vp.Height))
	}
	return res, true
}

// viewportFromQuery reads width/height, defaulting to the CLI viewport.
func viewportFromQuery(r *http.Request) layout.Viewport {
	return layout.Viewport{
		Width:  queryFloat(r, "width", defaultViewportWidth),
		Height: queryFloat(r, "height", defaultViewportHeight),
	}
}

// optionsFromQuery builds layout options from query parameters, falling back
// to package defaults for anything absent.
func optionsFromQuery(r *http.Request) layout.Options {
	opts := layout.DefaultOptions()
	if mode := r.URL.Query().Get("mode"); mode != "" {
		opts.Mode = mode
	}
	opts.Gap = queryFloat(r, "gap", opts.Gap)
	opts.ContainerPadding = queryFloat(r, "padding", opts.ContainerPadding)
	opts.CardThresholdWidth = queryFloat(r, "card_width", opts.CardThresholdWidth)
	opts.FixedCardHeight = queryFloat(r, "card_height", opts.FixedCardHeight)
	opts.PlaceholderHeight = queryFloat(r, "placeholder_height", opts.PlaceholderHeight)
	if v := r.URL.Query().Get("align"); v == "true" || v == "1" {
		opts.AlignCardHeight = true
	}
	if v := r.URL.Query().Get("auto_direction"); v == "true" || v == "1" {
		opts.AutoDirection = true
	}
	if v := r.URL.Query().Get("vertical"); v == "false" || v == "0" {
		opts.IsVertical = false
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("cards_per_view")); err == nil {
		opts.CardsPerView = n
	}
	return opts.Clamped()
}

func queryFloat(r *http.Request, name string, fallback float64) float64 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
