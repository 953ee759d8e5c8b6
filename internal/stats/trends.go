package stats

import (
	"sort"

	"github.com/grivg/grivg-cli/internal/frame"
)

// YearTrend aggregates one release year.
type YearTrend struct {
	Year  int
	Games int

	MeanFemaleCastPct float64
	HasFemaleCastPct  bool

	ParityRate    float64 // percent
	HasParityRate bool

	CustomizableRate    float64 // percent
	HasCustomizableRate bool

	// Characters appearing in games released that year, by gender label.
	GenderCounts map[string]int
}

// Trends is the temporal descriptor: one row per known release year plus
// year-vs-rate correlations across those rows.
type Trends struct {
	Years []YearTrend

	YearVsParity       *Correlation
	YearVsCustomizable *Correlation
}

// Yearly groups games by release year and joins character gender counts
// through the game foreign key. Games with an unknown year are excluded;
// that matches the inclusive-range year filtering the trend views use.
func Yearly(games, chars *frame.Frame) *Trends {
	t := &Trends{}
	if !games.Has("release_year") {
		return t
	}
	ys := games.Col("release_year")

	type acc struct {
		games        int
		pctSum       float64
		pctN         int
		parityTrue   int
		parityN      int
		customTrue   int
		customN      int
		genderCounts map[string]int
	}
	byYear := make(map[int]*acc)
	get := func(year int) *acc {
		a := byYear[year]
		if a == nil {
			a = &acc{genderCounts: make(map[string]int)}
			byYear[year] = a
		}
		return a
	}

	pct := games.Col("char_pct_Female")
	parity := games.Col("has_gender_parity")
	custom := games.Col("customizable_main")
	gameIDs := games.Col("game_id")
	yearByGame := make(map[string]int)

	for i := 0; i < games.Len(); i++ {
		y, ok := ys.Int(i)
		if !ok {
			continue
		}
		a := get(int(y))
		a.games++
		if pct != nil {
			if x, xok := pct.Float(i); xok {
				a.pctSum += x
				a.pctN++
			}
		}
		if parity != nil {
			if b, bok := parity.Bool(i); bok {
				a.parityN++
				if b {
					a.parityTrue++
				}
			}
		}
		if custom != nil {
			if b, bok := custom.Bool(i); bok {
				a.customN++
				if b {
					a.customTrue++
				}
			}
		}
		if gameIDs != nil {
			if id, idok := gameIDs.String(i); idok {
				yearByGame[id] = int(y)
			}
		}
	}

	if chars.Has("game") && chars.Has("gender") {
		fk := chars.Col("game")
		gender := chars.Col("gender")
		for i := 0; i < chars.Len(); i++ {
			id, ok := fk.String(i)
			if !ok {
				continue
			}
			year, known := yearByGame[id]
			if !known {
				continue
			}
			if g, gok := gender.String(i); gok {
				get(year).genderCounts[g]++
			}
		}
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	var corrYears, parityRates, customRates []float64
	for _, y := range years {
		a := byYear[y]
		row := YearTrend{Year: y, Games: a.games, GenderCounts: a.genderCounts}
		if a.pctN > 0 {
			row.MeanFemaleCastPct = a.pctSum / float64(a.pctN)
			row.HasFemaleCastPct = true
		}
		if a.parityN > 0 {
			row.ParityRate = float64(a.parityTrue) / float64(a.parityN) * 100
			row.HasParityRate = true
		}
		if a.customN > 0 {
			row.CustomizableRate = float64(a.customTrue) / float64(a.customN) * 100
			row.HasCustomizableRate = true
		}
		t.Years = append(t.Years, row)
		if row.HasParityRate && row.HasCustomizableRate {
			corrYears = append(corrYears, float64(y))
			parityRates = append(parityRates, row.ParityRate)
			customRates = append(customRates, row.CustomizableRate)
		}
	}

	if r, ok := pearson(corrYears, parityRates); ok {
		t.YearVsParity = &Correlation{R: r, N: len(corrYears)}
	}
	if r, ok := pearson(corrYears, customRates); ok {
		t.YearVsCustomizable = &Correlation{R: r, N: len(corrYears)}
	}
	return t
}
