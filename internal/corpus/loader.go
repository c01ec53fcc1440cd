package corpus

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/taxsitegen/internal/config"
	"git.home.luguber.info/inful/taxsitegen/internal/logfields"
)

// Loader reads the JSON corpus from the configured data directory.
type Loader struct {
	cfg *config.DataConfig
}

// NewLoader creates a corpus loader for the given data configuration.
func NewLoader(cfg *config.DataConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load reads every configured source file into a Corpus. Missing or
// malformed files are logged and treated as empty; Load never fails.
func (l *Loader) Load() *Corpus {
	c := &Corpus{}

	for _, name := range l.cfg.LawFiles {
		records := decodeFile[CountryData](filepath.Join(l.cfg.Dir, name))
		c.Countries = append(c.Countries, records...)
	}
	for _, name := range l.cfg.GuidanceFiles {
		records := decodeFile[Guidance](filepath.Join(l.cfg.Dir, name))
		c.Guidances = append(c.Guidances, records...)
	}
	for _, name := range l.cfg.TreatyFiles {
		records := decodeFile[Treaty](filepath.Join(l.cfg.Dir, name))
		c.Treaties = append(c.Treaties, records...)
	}
	for _, name := range l.cfg.BlogFiles {
		records := decodeFile[Blog](filepath.Join(l.cfg.Dir, name))
		c.Blogs = append(c.Blogs, records...)
	}

	slog.Info("Corpus loaded",
		"countries", len(c.Countries),
		"guidances", len(c.Guidances),
		"treaties", len(c.Treaties),
		"blogs", len(c.Blogs))
	return c
}

// decodeFile reads a JSON file holding either a single object or an array
// of objects. Any failure yields an empty slice and a warning.
func decodeFile[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Skipping unreadable source file", logfields.File(path), logfields.Error(err))
		return nil
	}

	var list []T
	if err := json.Unmarshal(data, &list); err == nil {
		return list
	}

	var single T
	if err := json.Unmarshal(data, &single); err != nil {
		slog.Warn("Skipping malformed source file", logfields.File(path), logfields.Error(err))
		return nil
	}
	return []T{single}
}
