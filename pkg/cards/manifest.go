package cards

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cardwall/pkg/errors"
)

// manifestFile mirrors the on-disk TOML structure.
type manifestFile struct {
	Deck struct {
		Name string `toml:"name"`
	} `toml:"deck"`
	Cards []Card `toml:"cards"`
}

// ParseManifest decodes a deck manifest from TOML bytes. The name defaults
// to the given fallback when the manifest omits it.
func ParseManifest(data []byte, fallbackName string) (*Deck, error) {
	var mf manifestFile
	if err := toml.Unmarshal(data, &mf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode deck manifest")
	}
	if len(mf.Cards) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest contains no cards")
	}

	name := mf.Deck.Name
	if name == "" {
		name = fallbackName
	}

	deck := NewDeck(name)
	for i, c := range mf.Cards {
		if c.Height < 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest,
				"card %d: height cannot be negative", i)
		}
		if _, err := deck.Add(c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "card %d", i)
		}
	}
	return deck, nil
}

// LoadManifest reads and decodes a deck manifest from disk. The filename
// must be a plain basename-safe TOML file.
func LoadManifest(path string) (*Deck, error) {
	base := filepath.Base(path)
	if err := errors.ValidateManifestFilename(base); err != nil {
		return nil, err
	}
	if !strings.HasSuffix(base, ".toml") {
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"manifest must be a .toml file, got %q", base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read manifest %s", path)
	}

	fallback := strings.TrimSuffix(base, ".toml")
	return ParseManifest(data, fallback)
}
