package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grivg/grivg-cli/internal/dataset"
)

const gamesFixture = `Game_Id,Title,Release,Genre,Platform,Developer,Publisher,Customizable_main,Protagonist,Protagonist_Non_Male,Relevant_males,Relevant_no_males,Percentage_non_male,Total_team,female_team
g1,Alpha Quest,Nov-13,RPG,PC,DevA,PubA,Yes,1,1,1,1,50%,10,4
g2,Beta Strike,Jan-15,Shooter,PS4,DevB,PubB,No,1,0,2,0,18%,8,0
`

const charactersFixture = `Id,Name,Gender,Game,Age,Playable,Sexualization,Relevance,Romantic_Interest
c1,Hera,Female,g1,25,1,2,PA,No
c2,Bron,Male,g1,34,1,0,MC,Yes
c3,Zix,Non-Binary,g2,Unknown,0,0,SC,No
c4,Lia,Female,g2,16,1,1,MC,yes
`

const sexualizationFixture = `Id,Total,Posing,Clothing
c1,2,1,1
c4,1,0,1
`

func writeFixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"games.grivg.csv":         gamesFixture,
		"characters.grivg.csv":    charactersFixture,
		"sexualization.grivg.csv": sexualizationFixture,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// runCmd executes the root command with args, capturing stdout.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	// Process-wide cache and sticky flag state must not leak across tests.
	dataset.ResetCache()
	t.Cleanup(dataset.ResetCache)
	exTable = "games"
	exOut = ""
	exFrom, exTo = 0, 0
	exGenders = nil
	chGenders = nil
	chFrom, chTo = 0, 0
	sumJSON = false

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()
	w.Close()
	os.Stdout = old
	out, _ := io.ReadAll(r)
	if execErr != nil {
		t.Fatalf("command %v failed: %v\noutput: %s", args, execErr, out)
	}
	return string(out)
}

func TestCLISummary(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := writeFixtureDir(t)

	out := runCmd(t, "summary", "--data-dir", dir)
	for _, want := range []string{"[DATASET OVERVIEW]", "Games: 2", "Characters: 4", "Years: 2013-2015"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestCLIExportFilteredCharacters(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := writeFixtureDir(t)
	out := filepath.Join(t.TempDir(), "female.csv")

	runCmd(t, "export", "--data-dir", dir, "--table", "characters", "--gender", "Female", "--out", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 female rows, got %d lines:\n%s", len(lines), data)
	}
	if !bytes.Contains(data, []byte("Hera")) || !bytes.Contains(data, []byte("Lia")) {
		t.Fatalf("unexpected export contents:\n%s", data)
	}
}

func TestCLIValidateFailsOnOrphans(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := writeFixtureDir(t)
	orphaned := charactersFixture + "c5,Ghost,Unknown,g9,,0,0,PA,No\n"
	if err := os.WriteFile(filepath.Join(dir, "characters.grivg.csv"), []byte(orphaned), 0o644); err != nil {
		t.Fatalf("write orphaned fixture: %v", err)
	}

	dataset.ResetCache()
	t.Cleanup(dataset.ResetCache)
	rootCmd.SetArgs([]string{"validate", "--data-dir", dir})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected validate to fail on orphaned characters")
	}
}
