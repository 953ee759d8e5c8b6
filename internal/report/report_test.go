package report_test

import (
	"strings"
	"testing"

	"github.com/grivg/grivg-cli/internal/dataset"
	"github.com/grivg/grivg-cli/internal/report"
	"github.com/grivg/grivg-cli/internal/stats"
)

func TestSummaryRendersOptionalSections(t *testing.T) {
	pct := 40.0
	n := 3
	s := &dataset.Summary{
		TotalGames:         4,
		TotalCharacters:    5,
		AvgCharsPerGame:    1.25,
		YearRange:          &dataset.YearRange{Min: 2012, Max: 2022},
		GenderDistribution: map[string]int{"Female": 2, "Male": 3},
		FemalePercentage:   &pct,
		UniquePlatforms:    &n,
	}
	out := report.Summary(s)
	for _, want := range []string{"[DATASET OVERVIEW]", "Games: 4", "Years: 2012-2022", "[GENDER DISTRIBUTION]", "Female share: 40.0%", "Platforms: 3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Genres:") {
		t.Fatalf("absent optional data must not be rendered:\n%s", out)
	}
}

func TestSummaryOmitsUnavailableSections(t *testing.T) {
	out := report.Summary(&dataset.Summary{TotalGames: 0, TotalCharacters: 0})
	if strings.Contains(out, "Years:") || strings.Contains(out, "[GENDER DISTRIBUTION]") {
		t.Fatalf("unavailable sections rendered:\n%s", out)
	}
}

func TestCharactersReport(t *testing.T) {
	st := &stats.CharacterStats{
		GenderCounts:      map[string]int{"Female": 2},
		GenderPercentages: map[string]float64{"Female": 40},
		Sexualized:        &stats.RateCount{Count: 2, Rate: 40},
	}
	out := report.Characters(st)
	for _, want := range []string{"[CHARACTER ANALYSIS]", "[GENDER]", "- Female: 2 (40.0%)", "[SEXUALIZATION]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[PLAYABLE]") {
		t.Fatalf("nil section rendered:\n%s", out)
	}
}

func TestTrendsReportTable(t *testing.T) {
	tr := &stats.Trends{
		Years: []stats.YearTrend{
			{Year: 2013, Games: 2, MeanFemaleCastPct: 30, HasFemaleCastPct: true},
			{Year: 2014, Games: 1},
		},
		YearVsParity: &stats.Correlation{R: -0.5, N: 2},
	}
	out := report.Trends(tr)
	for _, want := range []string{"[TEMPORAL TRENDS]", "| 2013 | 2 | 30.0 |", "| 2014 | 1 | - |", "year ~ parity rate: r=-0.500"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestOrphansReport(t *testing.T) {
	clean := report.Orphans(&dataset.OrphanReport{})
	if !strings.Contains(clean, "All character rows resolve") {
		t.Fatalf("unexpected clean report:\n%s", clean)
	}
	dirty := report.Orphans(&dataset.OrphanReport{Count: 1, CharacterIDs: []string{"c5"}, MissingGames: []string{"g9"}})
	for _, want := range []string{"Orphaned characters: 1", "g9", "- c5"} {
		if !strings.Contains(dirty, want) {
			t.Fatalf("expected %q in:\n%s", want, dirty)
		}
	}
}
