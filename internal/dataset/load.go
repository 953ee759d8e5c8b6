// Package dataset loads the games, characters, and sexualization tables,
// normalizes their columns, computes the derived fields every analysis
// depends on, and caches the result for the lifetime of the process.
// The normalized tables are immutable; filters return new views.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grivg/grivg-cli/internal/config"
	"github.com/grivg/grivg-cli/internal/frame"
)

// Bundle holds the three normalized tables.
type Bundle struct {
	Games         *frame.Frame
	Characters    *frame.Frame
	Sexualization *frame.Frame
}

// readCSVFunc matches frame.ReadCSV; tests swap it to count reads.
type readCSVFunc func(path string, delim rune) (*frame.Frame, error)

// Loader resolves the configured source files and produces a Bundle.
type Loader struct {
	dir     string
	games   string
	chars   string
	sex     string
	delim   rune
	readCSV readCSVFunc
}

// NewLoader builds a Loader from settings.
func NewLoader(cfg *config.Settings) (*Loader, error) {
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}
	return &Loader{
		dir:     cfg.DataDir,
		games:   cfg.GamesFile,
		chars:   cfg.CharactersFile,
		sex:     cfg.SexualizationFile,
		delim:   delim,
		readCSV: frame.ReadCSV,
	}, nil
}

// Load reads the three raw sources, normalizes them, and derives every
// computed field. It either succeeds completely for all mandatory fields or
// fails; nothing downstream ever sees a half-derived table.
func (l *Loader) Load() (*Bundle, error) {
	var missing []string
	paths := map[string]string{
		"games":         filepath.Join(l.dir, l.games),
		"characters":    filepath.Join(l.dir, l.chars),
		"sexualization": filepath.Join(l.dir, l.sex),
	}
	for _, name := range []string{"games", "characters", "sexualization"} {
		if _, err := os.Stat(paths[name]); err != nil {
			missing = append(missing, filepath.Base(paths[name]))
		}
	}
	if len(missing) > 0 {
		dir, err := filepath.Abs(l.dir)
		if err != nil {
			dir = l.dir
		}
		return nil, &NotFoundError{Dir: dir, Missing: missing}
	}

	rawGames, err := l.readCSV(paths["games"], l.delim)
	if err != nil {
		return nil, newProcessingError("games", err)
	}
	rawChars, err := l.readCSV(paths["characters"], l.delim)
	if err != nil {
		return nil, newProcessingError("characters", err)
	}
	rawSex, err := l.readCSV(paths["sexualization"], l.delim)
	if err != nil {
		return nil, newProcessingError("sexualization", err)
	}

	games, err := normalizeGames(rawGames)
	if err != nil {
		return nil, newProcessingError("games", err)
	}
	chars, err := normalizeCharacters(rawChars)
	if err != nil {
		return nil, newProcessingError("characters", err)
	}
	// The sexualization table is pass-through: header trimming only, no
	// derived fields beyond what the characters table already exposes.

	if err := requireColumns(games, "games", "game_id", "title"); err != nil {
		return nil, newProcessingError("games", err)
	}
	if err := requireColumns(chars, "characters", "game"); err != nil {
		return nil, newProcessingError("characters", err)
	}

	return &Bundle{Games: games, Characters: chars, Sexualization: rawSex}, nil
}

func requireColumns(f *frame.Frame, table string, cols ...string) error {
	for _, c := range cols {
		if !f.Has(c) {
			return fmt.Errorf("%s table is missing required column %q", table, c)
		}
	}
	return nil
}
