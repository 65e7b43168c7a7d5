package cli

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardwall/pkg/cards"
	"github.com/matzehuels/cardwall/pkg/engine"
	"github.com/matzehuels/cardwall/pkg/layout"
)

// rowPixels converts manifest card heights (pixels) to terminal rows.
const rowPixels = 16.0

// statusLines is the vertical space reserved above the preview canvas.
const statusLines = 3

// watchCommand creates the watch command for live terminal previews.
func (c *CLI) watchCommand() *cobra.Command {
	opts := layout.Options{
		Mode:               layout.ModeMasonry,
		CardThresholdWidth: 24,
		Gap:                1,
		ContainerPadding:   1,
		IsVertical:         true,
		AutoDirectionRatio: layout.DefaultAutoDirectionRatio,
		PlaceholderHeight:  6,
	}

	cmd := &cobra.Command{
		Use:   "watch [deck.toml]",
		Short: "Live terminal preview that recomputes on resize",
		Long: `Live terminal preview that recomputes on resize.

The watch command lays the deck out into the terminal window and repacks it
whenever the window size changes, after a short debounce. Geometry options
are in terminal cells rather than pixels.

Keys: m cycles the packing mode, d toggles the direction, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", opts.Mode, "packing mode: masonry (default), grid, list")
	cmd.Flags().Float64Var(&opts.CardThresholdWidth, "card-width", opts.CardThresholdWidth, "target minimum card width in cells")
	cmd.Flags().Float64Var(&opts.Gap, "gap", opts.Gap, "spacing between cards in cells")

	return cmd
}

// runWatch loads the deck and runs the bubbletea preview loop.
func (c *CLI) runWatch(input string, opts layout.Options) error {
	deck, err := cards.LoadManifest(input)
	if err != nil {
		return fmt.Errorf("load deck %s: %w", input, err)
	}

	m, err := newWatchModel(deck, opts, c.Logger)
	if err != nil {
		return fmt.Errorf("initialize engine: %w", err)
	}
	defer m.eng.Destroy()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}

// =============================================================================
// watchCard - Handle Adapter
// =============================================================================

// watchCard adapts a deck card to the engine's handle interface, converting
// pixel heights to terminal rows.
type watchCard struct {
	card cards.Card

	mu   sync.Mutex
	x, y float64
	w, h float64
}

func (w *watchCard) ID() string { return w.card.ID }

func (w *watchCard) MeasuredHeight() (float64, bool) {
	h, ok := w.card.MeasuredHeight()
	if !ok {
		return 0, false
	}
	rows := h / rowPixels
	if rows < 1 {
		rows = 1
	}
	return rows, true
}

func (w *watchCard) SetPosition(x, y, width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.x, w.y, w.w, w.h = x, y, width, height
}

// =============================================================================
// watchModel - Bubbletea Preview
// =============================================================================

// layoutMsg carries a completed layout into the update loop.
type layoutMsg layout.Result

type watchModel struct {
	eng  *engine.Engine
	deck *cards.Deck

	// mu guards viewport, which the engine's measure function reads from
	// compute passes triggered by the debounce timer goroutine.
	mu       sync.Mutex
	viewport layout.Viewport

	results chan layout.Result
	result  *layout.Result
	width   int
	height  int
}

func newWatchModel(deck *cards.Deck, opts layout.Options, logger *log.Logger) (*watchModel, error) {
	m := &watchModel{
		deck:    deck,
		results: make(chan layout.Result, 8),
	}

	eng, err := engine.New(engine.Config{
		Measure: m.measure,
		Options: opts,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	for _, c := range deck.Cards() {
		if err := eng.AddCard(&watchCard{card: c}); err != nil {
			eng.Destroy()
			return nil, err
		}
	}

	eng.OnLayoutComputed(func(res layout.Result) {
		// Drop intermediate layouts if the update loop is behind.
		select {
		case m.results <- res:
		default:
		}
	})

	m.eng = eng
	return m, nil
}

func (m *watchModel) measure() layout.Viewport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewport
}

func (m *watchModel) setViewport(v layout.Viewport) {
	m.mu.Lock()
	m.viewport = v
	m.mu.Unlock()
}

func (m *watchModel) waitForLayout() tea.Cmd {
	return func() tea.Msg {
		return layoutMsg(<-m.results)
	}
}

func (m *watchModel) Init() tea.Cmd {
	return m.waitForLayout()
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "m":
			opts := m.eng.Options()
			opts.Mode = nextMode(opts.Mode)
			m.eng.SetOptions(opts)
		case "d":
			opts := m.eng.Options()
			opts.IsVertical = !opts.IsVertical
			m.eng.SetOptions(opts)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - statusLines
		if h < 1 {
			h = 1
		}
		v := layout.Viewport{Width: float64(msg.Width), Height: float64(h)}
		m.setViewport(v)
		m.eng.NotifyResize(v)

	case layoutMsg:
		res := layout.Result(msg)
		m.result = &res
		return m, m.waitForLayout()
	}
	return m, nil
}

func (m *watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.deck.Name))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("m mode  d direction  q quit"))
	b.WriteString("\n")

	if m.result == nil {
		b.WriteString(StyleDim.Render("waiting for first layout..."))
		b.WriteString("\n")
		return b.String()
	}

	res := m.result
	opts := m.eng.Options()
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · %s · %d cards · %d columns",
		opts.Mode, res.Direction, res.CardCount(), res.Columns)))
	b.WriteString("\n\n")
	b.WriteString(renderCanvas(res, opts.ContainerPadding, m.width, m.height-statusLines))

	return b.String()
}

// nextMode cycles masonry, grid, list.
func nextMode(mode string) string {
	switch mode {
	case layout.ModeMasonry:
		return layout.ModeGrid
	case layout.ModeGrid:
		return layout.ModeList
	default:
		return layout.ModeMasonry
	}
}

// renderCanvas draws each card as a bordered box on a rune canvas sized to
// the terminal. Cards outside the visible area are clipped.
func renderCanvas(res *layout.Result, padding float64, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range res.Positions {
		drawBox(canvas, p, padding, boxLabel(i, p.CardID))
	}

	rows := make([]string, height)
	for i, row := range canvas {
		rows[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(rows, "\n")
}

// boxLabel prefers the card id, falling back to the packing index.
func boxLabel(i int, id string) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("#%d", i)
}

func drawBox(canvas [][]rune, p layout.CardPosition, padding float64, label string) {
	x0 := int(p.X + padding)
	y0 := int(p.Y + padding)
	x1 := x0 + int(p.Width) - 1
	y1 := y0 + int(p.Height) - 1
	if x1 <= x0 || y1 <= y0 {
		return
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			var r rune
			switch {
			case (y == y0 || y == y1) && (x == x0 || x == x1):
				r = '+'
			case y == y0 || y == y1:
				r = '-'
			case x == x0 || x == x1:
				r = '|'
			default:
				continue
			}
			setCell(canvas, x, y, r)
		}
	}

	// Label inside the top border, clipped to the box interior.
	if y1-y0 < 2 {
		return
	}
	maxLen := x1 - x0 - 1
	if maxLen < 1 {
		return
	}
	if len(label) > maxLen {
		label = label[:maxLen]
	}
	for i, r := range label {
		setCell(canvas, x0+1+i, y0+1, r)
	}
}

func setCell(canvas [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(canvas) || x < 0 || x >= len(canvas[y]) {
		return
	}
	canvas[y][x] = r
}
