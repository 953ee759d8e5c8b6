package dataset

// Source-name → canonical-name mappings. Headers are trimmed before lookup;
// the duplicate "Metacritic " spelling (trailing space in some published
// revisions of the dataset) is kept so both resolve to the same canonical
// column either way.

var gamesColumnMap = map[string]string{
	"Game_Id":              "game_id",
	"Title":                "title",
	"Release":              "release_date",
	"Series":               "series",
	"Genre":                "genre",
	"Sub-genre":            "sub_genre",
	"Developer":            "developer",
	"Publisher":            "publisher",
	"Country":              "country",
	"Platform":             "platform",
	"PEGI":                 "pegi_rating",
	"Customizable_main":    "customizable_main",
	"Protagonist":          "protagonist",
	"Protagonist_Non_Male": "protagonist_non_male",
	"Relevant_males":       "relevant_males",
	"Relevant_no_males":    "relevant_no_males",
	"Percentage_non_male":  "char_pct_Female",
	"Criteria":             "criteria",
	"Director":             "director",
	"Total_team":           "total_team",
	"female_team":          "female_team",
	"Team_percentage":      "team_percentage",
	"Metacritic ":          "metacritic",
	"Metacritic":           "metacritic",
	"Destructoid":          "destructoid",
	"IGN":                  "ign",
	"GameSpot":             "gamespot",
	"Avg_Reviews":          "avg_reviews",
}

var charactersColumnMap = map[string]string{
	"Id":                "char_id",
	"Name":              "name",
	"Gender":            "gender",
	"Game":              "game",
	"Age":               "age",
	"Age_range":         "age_range",
	"Playable":          "is_playable",
	"Sexualization":     "sexualization_level",
	"Species":           "species",
	"Side":              "side",
	"Relevance":         "plot_relevance",
	"Romantic_Interest": "is_romantic_interest",
}
