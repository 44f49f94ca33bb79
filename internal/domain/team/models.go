package team

// Color is one entry of the team palette.
type Color struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Hex  string `json:"hex"`
}

// Stats is the team statistics block. TotalPlayers is the live roster size
// and is filled in at request time; the rest are season constants.
type Stats struct {
	TotalPlayers    int `json:"totalPlayers"`
	TotalPoints     int `json:"totalPoints"`
	TotalTouchdowns int `json:"totalTouchdowns"`
	SuperBowlsWon   int `json:"superBowlsWon"`
	TotalSeasons    int `json:"totalSeasons"`
	Wins            int `json:"wins"`
	Losses          int `json:"losses"`
	Ties            int `json:"ties"`
}

// Team holds the static team metadata shown alongside the roster.
// Description is markdown; DescriptionHTML is its rendered form.
type Team struct {
	Name            string  `json:"name"`
	Coach           string  `json:"coach"`
	Stadium         string  `json:"stadium"`
	Tagline         string  `json:"tagline,omitempty"`
	Description     string  `json:"description"`
	DescriptionHTML string  `json:"descriptionHtml,omitempty"`
	Colors          []Color `json:"colors"`
	Stats           Stats   `json:"stats"`
}
