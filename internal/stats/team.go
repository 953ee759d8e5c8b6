package stats

import "github.com/grivg/grivg-cli/internal/frame"

// GroupMean is a mean over one side of a boolean split.
type GroupMean struct {
	N    int
	Mean float64
}

// TeamImpact relates development-team composition to the on-screen cast.
type TeamImpact struct {
	// Mean female character percentage for games with / without any women
	// on the team. Nil when the prerequisite columns are unavailable.
	WithWomen    *GroupMean
	WithoutWomen *GroupMean

	// Correlation between team_percentage and char_pct_Female over games
	// where both are known.
	ShareVsCast *Correlation

	TeamSize  *DistStats // total_team
	TeamShare *DistStats // team_percentage
}

// Team computes the team-impact descriptor.
func Team(games *frame.Frame) *TeamImpact {
	ti := &TeamImpact{
		TeamSize:  distStats(games, "total_team"),
		TeamShare: distStats(games, "team_percentage"),
	}

	if games.Has("has_female_team") && games.Has("char_pct_Female") {
		flag := games.Col("has_female_team")
		pct := games.Col("char_pct_Female")
		var with, without GroupMean
		for i := 0; i < games.Len(); i++ {
			b, bok := flag.Bool(i)
			x, xok := pct.Float(i)
			if !bok || !xok {
				continue
			}
			if b {
				with.N++
				with.Mean += x
			} else {
				without.N++
				without.Mean += x
			}
		}
		if with.N > 0 {
			with.Mean /= float64(with.N)
			ti.WithWomen = &with
		}
		if without.N > 0 {
			without.Mean /= float64(without.N)
			ti.WithoutWomen = &without
		}
	}

	xs, ys := pairedColumns(games, "team_percentage", "char_pct_Female")
	if r, ok := pearson(xs, ys); ok {
		ti.ShareVsCast = &Correlation{R: r, N: len(xs)}
	}
	return ti
}
