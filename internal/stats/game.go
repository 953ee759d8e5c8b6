package stats

import "github.com/grivg/grivg-cli/internal/frame"

// GameStats is the game-level descriptor. Sections are nil when their
// source columns are unavailable.
type GameStats struct {
	FemaleCast *DistStats // char_pct_Female distribution

	Parity             *RateCount
	FemaleProtagonists *RateCount
	FemaleTeams        *RateCount
	Customizable       *RateCount
}

// Games computes the game-level statistics.
func Games(games *frame.Frame) *GameStats {
	return &GameStats{
		FemaleCast:         distStats(games, "char_pct_Female"),
		Parity:             boolRateCount(games, "has_gender_parity"),
		FemaleProtagonists: boolRateCount(games, "has_female_protagonist"),
		FemaleTeams:        boolRateCount(games, "has_female_team"),
		Customizable:       boolRateCount(games, "customizable_main"),
	}
}
