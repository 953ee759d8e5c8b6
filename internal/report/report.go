// Package report renders descriptors as compact markdown for terminal
// output. Optional sections are rendered only when the underlying data was
// available.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/grivg/grivg-cli/internal/frame"
	"github.com/grivg/grivg-cli/internal/stats"
)

// Summary renders the dataset overview.
func Summary(s *dataset.Summary) string {
	var b strings.Builder
	b.WriteString("[DATASET OVERVIEW]\n")
	fmt.Fprintf(&b, "Games: %d\n", s.TotalGames)
	fmt.Fprintf(&b, "Characters: %d\n", s.TotalCharacters)
	fmt.Fprintf(&b, "Characters per game: %.2f\n", s.AvgCharsPerGame)
	if s.YearRange != nil {
		fmt.Fprintf(&b, "Years: %d-%d\n", s.YearRange.Min, s.YearRange.Max)
	}
	if s.UniquePlatforms != nil {
		fmt.Fprintf(&b, "Platforms: %d\n", *s.UniquePlatforms)
	}
	if s.UniqueGenres != nil {
		fmt.Fprintf(&b, "Genres: %d\n", *s.UniqueGenres)
	}
	if s.UniqueDevelopers != nil {
		fmt.Fprintf(&b, "Developers: %d\n", *s.UniqueDevelopers)
	}
	if s.GenderDistribution != nil {
		b.WriteString("\n[GENDER DISTRIBUTION]\n")
		writeCounts(&b, s.GenderDistribution)
		if s.FemalePercentage != nil {
			fmt.Fprintf(&b, "Female share: %.1f%%\n", *s.FemalePercentage)
		}
	}
	return b.String()
}

// Characters renders the character-level statistics.
func Characters(st *stats.CharacterStats) string {
	var b strings.Builder
	b.WriteString("[CHARACTER ANALYSIS]\n")
	if st.GenderCounts != nil {
		b.WriteString("\n[GENDER]\n")
		for _, label := range sortedKeys(st.GenderCounts) {
			fmt.Fprintf(&b, "- %s: %d (%.1f%%)\n", label, st.GenderCounts[label], st.GenderPercentages[label])
		}
	}
	if st.Playable != nil {
		b.WriteString("\n[PLAYABLE]\n")
		fmt.Fprintf(&b, "Playable characters: %d (%.1f%%)\n", st.Playable.Count, st.Playable.Rate)
	}
	if st.HasProtagonists {
		b.WriteString("\n[PROTAGONISTS]\n")
		fmt.Fprintf(&b, "Protagonists: %d\n", st.ProtagonistCount)
		if st.ProtagonistByGender != nil {
			writeCounts(&b, st.ProtagonistByGender)
		}
	}
	if st.Sexualized != nil {
		b.WriteString("\n[SEXUALIZATION]\n")
		fmt.Fprintf(&b, "Sexualized characters: %d (%.1f%%)\n", st.Sexualized.Count, st.Sexualized.Rate)
		if st.SexualizedByGender != nil {
			for _, label := range sortedFloatKeys(st.SexualizedByGender) {
				fmt.Fprintf(&b, "- %s: %.1f%%\n", label, st.SexualizedByGender[label])
			}
		}
	}
	return b.String()
}

// Games renders the game-level statistics.
func Games(st *stats.GameStats) string {
	var b strings.Builder
	b.WriteString("[GAME PATTERNS]\n")
	if st.FemaleCast != nil {
		fmt.Fprintf(&b, "Female cast share: mean %.1f%%, median %.1f%% (n=%d)\n",
			st.FemaleCast.Mean, st.FemaleCast.Median, st.FemaleCast.N)
	}
	writeRate(&b, "Gender parity (40-60%)", st.Parity)
	writeRate(&b, "Female protagonist", st.FemaleProtagonists)
	writeRate(&b, "Women on team", st.FemaleTeams)
	writeRate(&b, "Customizable protagonist", st.Customizable)
	return b.String()
}

// Trends renders the temporal descriptor.
func Trends(t *stats.Trends) string {
	var b strings.Builder
	b.WriteString("[TEMPORAL TRENDS]\n")
	if len(t.Years) == 0 {
		b.WriteString("No games with a known release year.\n")
		return b.String()
	}
	b.WriteString("| Year | Games | Female cast % | Parity % | Customizable % |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, row := range t.Years {
		fmt.Fprintf(&b, "| %d | %d | %s | %s | %s |\n",
			row.Year, row.Games,
			optPct(row.MeanFemaleCastPct, row.HasFemaleCastPct),
			optPct(row.ParityRate, row.HasParityRate),
			optPct(row.CustomizableRate, row.HasCustomizableRate))
	}
	if t.YearVsParity != nil || t.YearVsCustomizable != nil {
		b.WriteString("\n[CORRELATIONS]\n")
		if t.YearVsParity != nil {
			fmt.Fprintf(&b, "- year ~ parity rate: r=%.3f (n=%d)\n", t.YearVsParity.R, t.YearVsParity.N)
		}
		if t.YearVsCustomizable != nil {
			fmt.Fprintf(&b, "- year ~ customizable rate: r=%.3f (n=%d)\n", t.YearVsCustomizable.R, t.YearVsCustomizable.N)
		}
	}
	return b.String()
}

// Team renders the team-impact descriptor.
func Team(ti *stats.TeamImpact) string {
	var b strings.Builder
	b.WriteString("[TEAM IMPACT]\n")
	if ti.TeamSize != nil {
		fmt.Fprintf(&b, "Team size: mean %.1f, median %.1f (n=%d)\n", ti.TeamSize.Mean, ti.TeamSize.Median, ti.TeamSize.N)
	}
	if ti.TeamShare != nil {
		fmt.Fprintf(&b, "Female team share: mean %.1f%%, median %.1f%% (n=%d)\n", ti.TeamShare.Mean, ti.TeamShare.Median, ti.TeamShare.N)
	}
	if ti.WithWomen != nil || ti.WithoutWomen != nil {
		b.WriteString("\n[FEMALE CAST BY TEAM COMPOSITION]\n")
		if ti.WithWomen != nil {
			fmt.Fprintf(&b, "- teams with women: mean %.1f%% (n=%d)\n", ti.WithWomen.Mean, ti.WithWomen.N)
		}
		if ti.WithoutWomen != nil {
			fmt.Fprintf(&b, "- teams without women: mean %.1f%% (n=%d)\n", ti.WithoutWomen.Mean, ti.WithoutWomen.N)
		}
	}
	if ti.ShareVsCast != nil {
		fmt.Fprintf(&b, "\nteam share ~ female cast: r=%.3f (n=%d)\n", ti.ShareVsCast.R, ti.ShareVsCast.N)
	}
	return b.String()
}

// Orphans renders the data-quality report.
func Orphans(rep *dataset.OrphanReport) string {
	var b strings.Builder
	b.WriteString("[DATA QUALITY]\n")
	if rep.Count == 0 {
		b.WriteString("All character rows resolve to a known game.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Orphaned characters: %d\n", rep.Count)
	fmt.Fprintf(&b, "Unresolved game keys: %s\n", strings.Join(rep.MissingGames, ", "))
	for _, id := range rep.CharacterIDs {
		fmt.Fprintf(&b, "- %s\n", id)
	}
	return b.String()
}

// CrosstabTable renders a counts matrix as a markdown table.
func CrosstabTable(title string, ct *frame.Crosstab) string {
	if ct == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", title)
	b.WriteString("| |")
	for _, c := range ct.ColLabels {
		fmt.Fprintf(&b, " %s |", c)
	}
	b.WriteString("\n| --- |")
	for range ct.ColLabels {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for i, r := range ct.RowLabels {
		fmt.Fprintf(&b, "| %s |", r)
		for j := range ct.ColLabels {
			fmt.Fprintf(&b, " %d |", ct.Counts[i][j])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeRate(b *strings.Builder, label string, rc *stats.RateCount) {
	if rc == nil {
		return
	}
	fmt.Fprintf(b, "%s: %d (%.1f%%)\n", label, rc.Count, rc.Rate)
}

func writeCounts(b *strings.Builder, counts map[string]int) {
	for _, label := range sortedKeys(counts) {
		fmt.Fprintf(b, "- %s: %d\n", label, counts[label])
	}
}

func optPct(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.1f", v)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFloatKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
