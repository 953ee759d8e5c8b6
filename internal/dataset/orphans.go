package dataset

import (
	"fmt"
	"sort"

	"github.com/grivg/grivg-cli/internal/frame"
)

// OrphanReport lists character rows whose game foreign key resolves to no
// game_id in the games table. Orphans are a data-quality defect: they are
// surfaced here, never silently dropped from the tables.
type OrphanReport struct {
	Count        int
	CharacterIDs []string
	MissingGames []string
}

// Orphans cross-checks the character → game foreign keys.
func Orphans(games, chars *frame.Frame) *OrphanReport {
	rep := &OrphanReport{}
	if !games.Has("game_id") || !chars.Has("game") {
		return rep
	}
	known := make(map[string]bool)
	ids := games.Col("game_id")
	for i := 0; i < ids.Len(); i++ {
		if v, ok := ids.String(i); ok {
			known[v] = true
		}
	}

	fk := chars.Col("game")
	charIDs := chars.Col("char_id")
	missing := make(map[string]bool)
	for i := 0; i < fk.Len(); i++ {
		g, ok := fk.String(i)
		if !ok || known[g] {
			continue
		}
		rep.Count++
		missing[g] = true
		label := fmt.Sprintf("row %d", i+1)
		if charIDs != nil {
			if id, idok := charIDs.String(i); idok {
				label = id
			}
		}
		rep.CharacterIDs = append(rep.CharacterIDs, label)
	}
	for g := range missing {
		rep.MissingGames = append(rep.MissingGames, g)
	}
	sort.Strings(rep.MissingGames)
	return rep
}
