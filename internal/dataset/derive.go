package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grivg/grivg-cli/internal/frame"
)

// Derivation is a pure transform: it takes the renamed raw frame and returns
// a new frame carrying the derived columns. Each derivation is guarded by a
// column-existence check; when a prerequisite column is absent the derived
// column is simply not created, so consumers see "feature unavailable"
// rather than a fabricated default.

func normalizeGames(raw *frame.Frame) (*frame.Frame, error) {
	f := raw.Rename(gamesColumnMap)
	var err error

	// Numeric coercions. Counts parse tolerantly to null; the published
	// dataset leaves blanks where a field was not coded.
	for _, col := range []string{"protagonist", "protagonist_non_male", "relevant_males", "relevant_no_males", "total_team", "female_team"} {
		if f, err = coerceInt(f, col); err != nil {
			return nil, err
		}
	}
	for _, col := range []string{"metacritic", "destructoid", "ign", "gamespot", "avg_reviews"} {
		if f, err = coerceFloat(f, col); err != nil {
			return nil, err
		}
	}

	if f.Has("release_date") {
		s := f.Col("release_date")
		years := make([]int64, s.Len())
		valid := make([]bool, s.Len())
		for i := 0; i < s.Len(); i++ {
			if v, ok := s.String(i); ok {
				if y, yok := parseReleaseYear(v); yok {
					years[i] = y
					valid[i] = true
				}
			}
		}
		if f, err = f.WithColumn(frame.NewIntSeries("release_year", years, valid)); err != nil {
			return nil, err
		}
	}

	if f.Has("char_pct_Female") {
		if f, err = coercePercent(f, "char_pct_Female"); err != nil {
			return nil, err
		}
	}

	// team_percentage is derived from the headcounts when both are present
	// (null when total_team is 0 or missing); the raw percentage string is
	// only a fallback for truncated source files.
	if f.Has("total_team") && f.Has("female_team") {
		total := f.Col("total_team")
		female := f.Col("female_team")
		pcts := make([]float64, f.Len())
		valid := make([]bool, f.Len())
		for i := 0; i < f.Len(); i++ {
			t, tok := total.Int(i)
			fe, fok := female.Int(i)
			if tok && fok && t > 0 {
				pcts[i] = float64(fe) / float64(t) * 100
				valid[i] = true
			}
		}
		if f, err = f.WithColumn(frame.NewFloatSeries("team_percentage", pcts, valid)); err != nil {
			return nil, err
		}
	} else if f.Has("team_percentage") {
		if f, err = coercePercent(f, "team_percentage"); err != nil {
			return nil, err
		}
	}

	if f.Has("protagonist_non_male") {
		if f, err = deriveGreaterThanZero(f, "protagonist_non_male", "has_female_protagonist"); err != nil {
			return nil, err
		}
	}
	if f.Has("relevant_males") {
		if f, err = deriveGreaterThanZero(f, "relevant_males", "has_male_protagonist"); err != nil {
			return nil, err
		}
	}
	if f.Has("female_team") {
		if f, err = deriveGreaterThanZero(f, "female_team", "has_female_team"); err != nil {
			return nil, err
		}
	}

	// Gender parity: female character percentage within the closed [40, 60].
	if f.Has("char_pct_Female") {
		s := f.Col("char_pct_Female")
		vals := make([]bool, s.Len())
		valid := make([]bool, s.Len())
		for i := 0; i < s.Len(); i++ {
			if pct, ok := s.Float(i); ok {
				vals[i] = pct >= 40 && pct <= 60
				valid[i] = true
			}
		}
		if f, err = f.WithColumn(frame.NewBoolSeries("has_gender_parity", vals, valid)); err != nil {
			return nil, err
		}
	}

	if f.Has("customizable_main") {
		if f, err = coerceYesNo(f, "customizable_main"); err != nil {
			return nil, err
		}
	}

	if f.Has("genre") {
		if f, err = f.WithColumn(f.Col("genre").Categorical()); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func normalizeCharacters(raw *frame.Frame) (*frame.Frame, error) {
	f := raw.Rename(charactersColumnMap)
	var err error

	// game_id mirrors the foreign key for joining against the games table.
	if f.Has("game") {
		if f, err = f.WithColumn(f.Col("game").Renamed("game_id")); err != nil {
			return nil, err
		}
	}

	if f.Has("is_playable") {
		s := f.Col("is_playable")
		vals := make([]bool, s.Len())
		valid := make([]bool, s.Len())
		for i := 0; i < s.Len(); i++ {
			if v, ok := s.String(i); ok {
				vals[i] = v == "1"
				valid[i] = true
			}
		}
		if f, err = f.WithColumn(frame.NewBoolSeries("is_playable", vals, valid)); err != nil {
			return nil, err
		}
		// alias pair: both names resolve to the same truth value
		if f, err = f.WithColumn(frame.NewBoolSeries("playable", vals, valid)); err != nil {
			return nil, err
		}
	}

	// The ordinal sexualization level (0-3) is retained; the boolean is
	// derived as level > 0.
	if f.Has("sexualization_level") {
		if f, err = coerceInt(f, "sexualization_level"); err != nil {
			return nil, err
		}
		if f, err = deriveGreaterThanZero(f, "sexualization_level", "is_sexualized"); err != nil {
			return nil, err
		}
	}

	if f.Has("is_romantic_interest") {
		if f, err = coerceYesNo(f, "is_romantic_interest"); err != nil {
			return nil, err
		}
	}

	// Plot relevance codes: "PA" marks the protagonist, "MC" a main character,
	// everything else is minor. An uncoded row is not a protagonist.
	if f.Has("plot_relevance") {
		s := f.Col("plot_relevance")
		protag := make([]bool, s.Len())
		mainc := make([]bool, s.Len())
		valid := make([]bool, s.Len())
		for i := 0; i < s.Len(); i++ {
			v, _ := s.String(i)
			protag[i] = v == "PA"
			mainc[i] = v == "PA" || v == "MC"
			valid[i] = true
		}
		if f, err = f.WithColumn(frame.NewBoolSeries("is_protagonist", protag, valid)); err != nil {
			return nil, err
		}
		if f, err = f.WithColumn(frame.NewBoolSeries("is_main_character", mainc, valid)); err != nil {
			return nil, err
		}
	}

	// Ages are free text ("Adult", "Unknown", "25"); parse failure yields a
	// null numeric age, never an error. The raw column stays as-is.
	if f.Has("age") {
		s := f.Col("age")
		vals := make([]float64, s.Len())
		valid := make([]bool, s.Len())
		for i := 0; i < s.Len(); i++ {
			if v, ok := s.String(i); ok {
				if x, perr := strconv.ParseFloat(v, 64); perr == nil {
					vals[i] = x
					valid[i] = true
				}
			}
		}
		if f, err = f.WithColumn(frame.NewFloatSeries("age_years", vals, valid)); err != nil {
			return nil, err
		}
	}

	if f.Has("gender") {
		if f, err = f.WithColumn(f.Col("gender").Categorical()); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// parseReleaseYear reconstructs a 4-digit year from the compact release code
// ("Nov-13" → 2013). Two-digit suffixes map into 2000-2099; anything
// malformed yields no year.
func parseReleaseYear(date string) (int64, bool) {
	parts := strings.Split(date, "-")
	last := strings.TrimSpace(parts[len(parts)-1])
	y, err := strconv.ParseInt(last, 10, 64)
	if err != nil || y < 0 {
		return 0, false
	}
	if y < 100 {
		y += 2000
	}
	return y, true
}

// coercePercent replaces a "NN%" string column with its numeric value.
// A malformed non-empty cell is a processing failure: the on-disk contract
// promises a literal percentage, and continuing would corrupt every
// downstream percentage semantic.
func coercePercent(f *frame.Frame, col string) (*frame.Frame, error) {
	s := f.Col(col)
	vals := make([]float64, s.Len())
	valid := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		v, ok := s.String(i)
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: not a percentage: %q", col, i+1, v)
		}
		vals[i] = x
		valid[i] = true
	}
	return f.WithColumn(frame.NewFloatSeries(col, vals, valid))
}

// coerceInt replaces a string column with integers, null on parse failure.
func coerceInt(f *frame.Frame, col string) (*frame.Frame, error) {
	if !f.Has(col) {
		return f, nil
	}
	s := f.Col(col)
	vals := make([]int64, s.Len())
	valid := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.String(i); ok {
			if x, err := strconv.ParseInt(v, 10, 64); err == nil {
				vals[i] = x
				valid[i] = true
			}
		}
	}
	return f.WithColumn(frame.NewIntSeries(col, vals, valid))
}

// coerceFloat replaces a string column with floats, null on parse failure.
func coerceFloat(f *frame.Frame, col string) (*frame.Frame, error) {
	if !f.Has(col) {
		return f, nil
	}
	s := f.Col(col)
	vals := make([]float64, s.Len())
	valid := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.String(i); ok {
			if x, err := strconv.ParseFloat(v, 64); err == nil {
				vals[i] = x
				valid[i] = true
			}
		}
	}
	return f.WithColumn(frame.NewFloatSeries(col, vals, valid))
}

// coerceYesNo replaces a string column with booleans: yes/true/1 → true.
func coerceYesNo(f *frame.Frame, col string) (*frame.Frame, error) {
	s := f.Col(col)
	vals := make([]bool, s.Len())
	valid := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.String(i); ok {
			switch strings.ToLower(v) {
			case "yes", "true", "1":
				vals[i] = true
			}
			valid[i] = true
		}
	}
	return f.WithColumn(frame.NewBoolSeries(col, vals, valid))
}

// deriveGreaterThanZero adds a boolean column that is true where the source
// integer column is positive, null where the source is null.
func deriveGreaterThanZero(f *frame.Frame, src, dst string) (*frame.Frame, error) {
	s := f.Col(src)
	vals := make([]bool, s.Len())
	valid := make([]bool, s.Len())
	for i := 0; i < s.Len(); i++ {
		if v, ok := s.Int(i); ok {
			vals[i] = v > 0
			valid[i] = true
		}
	}
	return f.WithColumn(frame.NewBoolSeries(dst, vals, valid))
}
