package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cardwall/pkg/layout"
)

const testDeck = `
[deck]
name = "test deck"

[[cards]]
id = "alpha"
title = "Alpha"
height = 120

[[cards]]
id = "beta"
height = 260

[[cards]]
id = "gamma"
height = 180
`

func writeTestDeck(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.toml")
	if err := os.WriteFile(path, []byte(testDeck), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

func isolateCache(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"layout", "visualize", "watch", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	isolateCache(t)
	deckPath := writeTestDeck(t)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"layout", deckPath, "--width", "900", "--height", "700"})
	if err := root.Execute(); err != nil {
		t.Fatalf("layout command: %v", err)
	}

	outPath := filepath.Join(filepath.Dir(deckPath), "deck.layout.json")
	res, err := layout.ReadResultFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if res.CardCount() != 3 {
		t.Errorf("cards = %d, want 3", res.CardCount())
	}
	if res.ContainerWidth != 900 {
		t.Errorf("container width = %v, want 900", res.ContainerWidth)
	}

	// Second run hits the cache and must produce the same output.
	root.SetArgs([]string{"layout", deckPath, "--width", "900", "--height", "700"})
	if err := root.Execute(); err != nil {
		t.Fatalf("cached layout command: %v", err)
	}
	again, err := layout.ReadResultFile(outPath)
	if err != nil {
		t.Fatalf("read cached output: %v", err)
	}
	if again.CardCount() != res.CardCount() || again.Columns != res.Columns {
		t.Error("cached run produced different layout")
	}
}

func TestLayoutCommandGridMode(t *testing.T) {
	isolateCache(t)
	deckPath := writeTestDeck(t)
	outPath := filepath.Join(t.TempDir(), "grid.layout.json")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{
		"layout", deckPath,
		"--mode", "grid", "--card-height", "150",
		"--width", "700", "--height", "500",
		"-o", outPath,
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("layout command: %v", err)
	}

	res, err := layout.ReadResultFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, p := range res.Positions {
		if p.Height != 150 {
			t.Errorf("grid card height = %v, want 150", p.Height)
		}
	}
}

func TestVisualizeCommand(t *testing.T) {
	isolateCache(t)
	deckPath := writeTestDeck(t)
	dir := filepath.Dir(deckPath)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"layout", deckPath})
	if err := root.Execute(); err != nil {
		t.Fatalf("layout command: %v", err)
	}

	layoutPath := filepath.Join(dir, "deck.layout.json")
	root.SetArgs([]string{"visualize", layoutPath, "-f", "svg,json", "--deck", deckPath})
	if err := root.Execute(); err != nil {
		t.Fatalf("visualize command: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "deck.svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Error("svg output malformed")
	}

	var out struct {
		Cards []struct {
			ID string `json:"id"`
		} `json:"cards"`
	}
	data, err := os.ReadFile(filepath.Join(dir, "deck.json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("parse json artifact: %v", err)
	}
	if len(out.Cards) != 3 {
		t.Errorf("json cards = %d, want 3", len(out.Cards))
	}
}

func TestVisualizeRejectsUnknownFormat(t *testing.T) {
	if err := validateFormats([]string{"svg", "png"}); err == nil {
		t.Error("png accepted, want error")
	}
	if err := validateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		format string
		multi  bool
		want   string
	}{
		{"default svg", "deck.layout.json", "", "svg", false, "deck.svg"},
		{"default json", "deck.layout.json", "", "json", true, "deck.json"},
		{"explicit single", "deck.layout.json", "out.svg", "svg", false, "out.svg"},
		{"explicit multi", "deck.layout.json", "out", "svg", true, "out.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPath(tt.input, tt.output, tt.format, tt.multi)
			if got != tt.want {
				t.Errorf("artifactPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	got := parseFormats("")
	if len(got) != 1 || got[0] != formatSVG {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
	got = parseFormats("svg,json")
	if len(got) != 2 {
		t.Errorf("parseFormats(\"svg,json\") = %v, want 2 entries", got)
	}
}

func TestNextMode(t *testing.T) {
	if nextMode(layout.ModeMasonry) != layout.ModeGrid {
		t.Error("masonry should cycle to grid")
	}
	if nextMode(layout.ModeGrid) != layout.ModeList {
		t.Error("grid should cycle to list")
	}
	if nextMode(layout.ModeList) != layout.ModeMasonry {
		t.Error("list should cycle back to masonry")
	}
}
