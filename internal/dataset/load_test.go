package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grivg/grivg-cli/internal/config"
	"github.com/grivg/grivg-cli/internal/dataset"
)

const gamesCSV = `Game_Id,Title,Release,Genre,Platform,Developer,Publisher,Customizable_main,Protagonist,Protagonist_Non_Male,Relevant_males,Relevant_no_males,Percentage_non_male,Director,Total_team,female_team,Metacritic ,IGN
g1,Alpha Quest,Nov-13,RPG,PC,DevA,PubA,Yes,1,1,1,1,50%,Male,10,4,88,9.0
g2,Beta Strike,Jan-99,Shooter,PS4,DevB,PubB,No,1,0,2,0,18%,Male,8,0,75,7.5
g3,Gamma Tales,bogus,RPG,PC,DevA,PubA,1,1,2,0,2,60%,Female,0,0,,8.0
g4,Delta Run,,Platformer,Switch,DevC,PubC,no,1,0,1,0,40%,Male,5,2,80,
`

const charactersCSV = `Id,Name,Gender,Game,Age,Age_range,Playable,Sexualization,Species,Side,Relevance,Romantic_Interest
c1,Hera,Female,g1,25,Adult,1,2,Human,Hero,PA,No
c2,Bron,Male,g1,34,Adult,1,0,Human,Hero,MC,Yes
c3,Zix,Non-Binary,g2,Unknown,Adult,0,0,Alien,Villain,SC,No
c4,Lia,Female,g2,16,Teenager,1,1,Human,Hero,MC,yes
c5,Ghost,Unknown,g9,,Adult,0,0,Spirit,Neutral,PA,No
`

const sexualizationCSV = `Id,Total,Posing,Clothing
c1,2,1,1
c4,1,0,1
`

func writeDataDir(t *testing.T, games, chars, sex string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"games.grivg.csv":         games,
		"characters.grivg.csv":    chars,
		"sexualization.grivg.csv": sex,
	}
	for name, content := range files {
		if content == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func loadDir(t *testing.T, dir string) *dataset.Bundle {
	t.Helper()
	l, err := dataset.NewLoader(&config.Settings{DataDir: dir,
		GamesFile: "games.grivg.csv", CharactersFile: "characters.grivg.csv", SexualizationFile: "sexualization.grivg.csv"})
	if err != nil {
		t.Fatalf("loader: %v", err)
	}
	b, err := l.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestLoadDerivesReleaseYear(t *testing.T) {
	dir := writeDataDir(t, gamesCSV, charactersCSV, sexualizationCSV)
	b := loadDir(t, dir)
	ys := b.Games.Col("release_year")
	if ys == nil {
		t.Fatalf("expected release_year column")
	}
	wantYears := []struct {
		year int64
		ok   bool
	}{{2013, true}, {2099, true}, {0, false}, {0, false}}
	for i, w := range wantYears {
		y, ok := ys.Int(i)
		if ok != w.ok || y != w.year {
			t.Fatalf("row %d: release_year = %d (ok=%v), want %d (ok=%v)", i, y, ok, w.year, w.ok)
		}
	}
}

func TestLoadDerivesTeamAndParityFields(t *testing.T) {
	dir := writeDataDir(t, gamesCSV, charactersCSV, sexualizationCSV)
	b := loadDir(t, dir)
	games := b.Games

	pct := games.Col("team_percentage")
	wantPct := []struct {
		v  float64
		ok bool
	}{{40, true}, {0, true}, {0, false}, {40, true}}
	for i, w := range wantPct {
		v, ok := pct.Float(i)
		if ok != w.ok || v != w.v {
			t.Fatalf("row %d: team_percentage = %v (ok=%v), want %v (ok=%v)", i, v, ok, w.v, w.ok)
		}
	}

	team := games.Col("has_female_team")
	if v, ok := team.Bool(0); !ok || !v {
		t.Fatalf("g1 should have women on the team")
	}
	if v, ok := team.Bool(1); !ok || v {
		t.Fatalf("g2 should not have women on the team")
	}

	// 40 and 60 are inside the closed parity interval
	parity := games.Col("has_gender_parity")
	wantParity := []bool{true, false, true, true}
	for i, w := range wantParity {
		v, ok := parity.Bool(i)
		if !ok || v != w {
			t.Fatalf("row %d: has_gender_parity = %v (ok=%v), want %v", i, v, ok, w)
		}
	}

	custom := games.Col("customizable_main")
	wantCustom := []bool{true, false, true, false}
	for i, w := range wantCustom {
		v, ok := custom.Bool(i)
		if !ok || v != w {
			t.Fatalf("row %d: customizable_main = %v (ok=%v), want %v", i, v, ok, w)
		}
	}

	protag := games.Col("has_female_protagonist")
	wantProtag := []bool{true, false, true, false}
	for i, w := range wantProtag {
		if v, ok := protag.Bool(i); !ok || v != w {
			t.Fatalf("row %d: has_female_protagonist = %v (ok=%v), want %v", i, v, ok, w)
		}
	}
}

func TestLoadDerivesCharacterFields(t *testing.T) {
	dir := writeDataDir(t, gamesCSV, charactersCSV, sexualizationCSV)
	b := loadDir(t, dir)
	chars := b.Characters

	// alias pair resolves to the same truth value
	for i := 0; i < chars.Len(); i++ {
		a, aok := chars.Col("is_playable").Bool(i)
		p, pok := chars.Col("playable").Bool(i)
		if a != p || aok != pok {
			t.Fatalf("row %d: is_playable/playable diverge", i)
		}
	}

	level := chars.Col("sexualization_level")
	sexualized := chars.Col("is_sexualized")
	wantLevel := []int64{2, 0, 0, 1, 0}
	for i, w := range wantLevel {
		l, ok := level.Int(i)
		if !ok || l != w {
			t.Fatalf("row %d: sexualization_level = %d (ok=%v), want %d", i, l, ok, w)
		}
		sv, ok := sexualized.Bool(i)
		if !ok || sv != (w > 0) {
			t.Fatalf("row %d: is_sexualized = %v, want %v", i, sv, w > 0)
		}
	}

	protag := chars.Col("is_protagonist")
	mainc := chars.Col("is_main_character")
	if v, _ := protag.Bool(0); !v {
		t.Fatalf("PA relevance should mark a protagonist")
	}
	if v, _ := protag.Bool(1); v {
		t.Fatalf("MC relevance is not a protagonist")
	}
	if v, _ := mainc.Bool(1); !v {
		t.Fatalf("MC relevance is a main character")
	}
	if v, _ := mainc.Bool(2); v {
		t.Fatalf("SC relevance is a minor character")
	}

	if gid, ok := chars.Col("game_id").String(0); !ok || gid != "g1" {
		t.Fatalf("expected game_id copied from game, got %q", gid)
	}

	// free-text ages yield a null numeric age, never an error
	age := chars.Col("age_years")
	if v, ok := age.Float(0); !ok || v != 25 {
		t.Fatalf("expected numeric age 25, got %v (ok=%v)", v, ok)
	}
	if _, ok := age.Float(2); ok {
		t.Fatalf("expected non-numeric age to be null")
	}
}

func TestLoadOmitsDerivedColumnsWhenSourceAbsent(t *testing.T) {
	slim := `Game_Id,Title,Release
g1,Alpha Quest,Nov-13
`
	dir := writeDataDir(t, slim, charactersCSV, sexualizationCSV)
	b := loadDir(t, dir)
	for _, col := range []string{"char_pct_Female", "has_gender_parity", "has_female_team", "team_percentage", "customizable_main"} {
		if b.Games.Has(col) {
			t.Fatalf("column %s should be omitted, not fabricated", col)
		}
	}
}

func TestLoadMissingFileReportsResolvedDir(t *testing.T) {
	dir := writeDataDir(t, gamesCSV, charactersCSV, "")
	l, err := dataset.NewLoader(&config.Settings{DataDir: dir,
		GamesFile: "games.grivg.csv", CharactersFile: "characters.grivg.csv", SexualizationFile: "sexualization.grivg.csv"})
	if err != nil {
		t.Fatalf("loader: %v", err)
	}
	_, err = l.Load()
	var nf *dataset.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(nf.Error(), dir) {
		t.Fatalf("error should name the resolved directory, got: %v", nf)
	}
	if len(nf.Missing) != 1 || nf.Missing[0] != "sexualization.grivg.csv" {
		t.Fatalf("unexpected missing list: %v", nf.Missing)
	}
}

func TestLoadMalformedPercentageFails(t *testing.T) {
	bad := `Game_Id,Title,Percentage_non_male
g1,Alpha Quest,half
`
	dir := writeDataDir(t, bad, charactersCSV, sexualizationCSV)
	l, err := dataset.NewLoader(&config.Settings{DataDir: dir,
		GamesFile: "games.grivg.csv", CharactersFile: "characters.grivg.csv", SexualizationFile: "sexualization.grivg.csv"})
	if err != nil {
		t.Fatalf("loader: %v", err)
	}
	_, err = l.Load()
	var pe *dataset.ProcessingError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProcessingError, got %v", err)
	}
	if pe.Trace() == "" {
		t.Fatalf("expected a captured diagnostic trace")
	}
}

func TestOrphansAreReportedNotDropped(t *testing.T) {
	dir := writeDataDir(t, gamesCSV, charactersCSV, sexualizationCSV)
	b := loadDir(t, dir)
	if b.Characters.Len() != 5 {
		t.Fatalf("orphan row must stay in the table, got %d rows", b.Characters.Len())
	}
	rep := dataset.Orphans(b.Games, b.Characters)
	if rep.Count != 1 {
		t.Fatalf("expected 1 orphan, got %d", rep.Count)
	}
	if len(rep.MissingGames) != 1 || rep.MissingGames[0] != "g9" {
		t.Fatalf("unexpected missing games: %v", rep.MissingGames)
	}
	if len(rep.CharacterIDs) != 1 || rep.CharacterIDs[0] != "c5" {
		t.Fatalf("unexpected orphan ids: %v", rep.CharacterIDs)
	}
}
