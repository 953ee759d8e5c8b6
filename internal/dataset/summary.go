package dataset

import "github.com/grivg/grivg-cli/internal/frame"

// YearRange is the closed span of known release years.
type YearRange struct {
	Min int
	Max int
}

// Summary describes the two normalized tables. Optional fields are nil when
// the underlying column is unavailable; they are never filled with sentinel
// values.
type Summary struct {
	TotalGames      int
	TotalCharacters int
	AvgCharsPerGame float64

	// YearRange is nil when release_year is absent or entirely null.
	YearRange *YearRange

	// GenderDistribution and FemalePercentage are nil when the characters
	// table has no gender column. A population with no "Female" label yields
	// a percentage of 0, not an error.
	GenderDistribution map[string]int
	FemalePercentage   *float64

	UniquePlatforms  *int
	UniqueGenres     *int
	UniqueDevelopers *int
}

// Summarize computes the dataset overview from the normalized tables.
func Summarize(games, chars *frame.Frame) *Summary {
	s := &Summary{
		TotalGames:      games.Len(),
		TotalCharacters: chars.Len(),
	}
	if games.Len() > 0 {
		s.AvgCharsPerGame = float64(chars.Len()) / float64(games.Len())
	}

	if games.Has("release_year") {
		ys := games.Col("release_year")
		var have bool
		var min, max int64
		for i := 0; i < ys.Len(); i++ {
			y, ok := ys.Int(i)
			if !ok {
				continue
			}
			if !have || y < min {
				min = y
			}
			if !have || y > max {
				max = y
			}
			have = true
		}
		if have {
			s.YearRange = &YearRange{Min: int(min), Max: int(max)}
		}
	}

	if chars.Has("gender") {
		s.GenderDistribution = chars.ValueCounts("gender")
		pct := 0.0
		if chars.Len() > 0 {
			pct = float64(s.GenderDistribution["Female"]) / float64(chars.Len()) * 100
		}
		s.FemalePercentage = &pct
	}

	if games.Has("platform") {
		n := games.Nunique("platform")
		s.UniquePlatforms = &n
	}
	if games.Has("genre") {
		n := games.Nunique("genre")
		s.UniqueGenres = &n
	}
	if games.Has("developer") {
		n := games.Nunique("developer")
		s.UniqueDevelopers = &n
	}
	return s
}
