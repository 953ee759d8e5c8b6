package stats

import "github.com/grivg/grivg-cli/internal/frame"

// CharacterStats is the character-level descriptor. Sections are nil when
// their source columns are unavailable.
type CharacterStats struct {
	GenderCounts      map[string]int
	GenderPercentages map[string]float64

	Playable *RateCount

	ProtagonistCount    int
	ProtagonistByGender map[string]int // nil when is_protagonist is absent
	HasProtagonists     bool

	Sexualized         *RateCount
	SexualizedByGender map[string]float64 // rate percent by gender label
}

// Characters computes the character-level statistics.
func Characters(chars *frame.Frame) *CharacterStats {
	st := &CharacterStats{}

	if chars.Has("gender") {
		st.GenderCounts = chars.ValueCounts("gender")
		total := 0
		for _, n := range st.GenderCounts {
			total += n
		}
		st.GenderPercentages = make(map[string]float64, len(st.GenderCounts))
		for g, n := range st.GenderCounts {
			if total > 0 {
				st.GenderPercentages[g] = float64(n) / float64(total) * 100
			}
		}
	}

	st.Playable = boolRateCount(chars, "playable")

	if chars.Has("is_protagonist") {
		st.HasProtagonists = true
		s := chars.Col("is_protagonist")
		protagonists := chars.Filter(func(i int) bool {
			b, ok := s.Bool(i)
			return ok && b
		})
		st.ProtagonistCount = protagonists.Len()
		if protagonists.Has("gender") {
			st.ProtagonistByGender = protagonists.ValueCounts("gender")
		}
	}

	st.Sexualized = boolRateCount(chars, "is_sexualized")
	if chars.Has("is_sexualized") && chars.Has("gender") {
		byGender := chars.MeanBy("gender", "is_sexualized")
		st.SexualizedByGender = make(map[string]float64, len(byGender))
		for g, rate := range byGender {
			st.SexualizedByGender[g] = rate * 100
		}
	}
	return st
}
