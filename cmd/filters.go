package cmd

import "github.com/grivg/grivg-cli/internal/frame"

// yearOr substitutes a default when the flag was left at zero.
func yearOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// charactersOfGames restricts characters to those whose game foreign key
// appears in the (already filtered) games view. Pure: returns a new view.
func charactersOfGames(games, chars *frame.Frame) *frame.Frame {
	if !games.Has("game_id") || !chars.Has("game") {
		return chars
	}
	keep := make(map[string]bool)
	ids := games.Col("game_id")
	for i := 0; i < ids.Len(); i++ {
		if v, ok := ids.String(i); ok {
			keep[v] = true
		}
	}
	fk := chars.Col("game")
	return chars.Filter(func(i int) bool {
		g, ok := fk.String(i)
		return ok && keep[g]
	})
}
