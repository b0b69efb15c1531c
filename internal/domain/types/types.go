// Package types contains the result-table shapes handed to the rendering layer.
package types

// YearCount is one row of the movies-per-year table.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// GenreCount is one row of the genre breakdown table.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// RatingCount is one row of the rating distribution, grouped by exact value.
type RatingCount struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// DurationBin is one equal-width histogram bin over runtime minutes.
type DurationBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Stats carries descriptive statistics over the filtered subset. Defined is
// false when the subset held no usable values; the numeric fields are then
// meaningless and must be ignored by consumers.
type Stats struct {
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Defined bool    `json:"defined"`
}

// DirectorCount is one row of the top-directors table.
type DirectorCount struct {
	Director string `json:"director"`
	Count    int    `json:"count"`
}

// ActorCount is one row of the top-co-stars table.
type ActorCount struct {
	Actor string `json:"actor"`
	Count int    `json:"count"`
}

// Card is one cell of a poster grid: career highlights and the filmography
// listing both use it.
type Card struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
	Poster string  `json:"poster"`
	Genre  string  `json:"genre"`
}

// Report bundles every result table produced by one computation pass.
type Report struct {
	Total         int             `json:"total"`
	Yearly        []YearCount     `json:"yearly"`
	Genres        []GenreCount    `json:"genres"`
	Ratings       []RatingCount   `json:"ratings"`
	Durations     []DurationBin   `json:"durations"`
	RatingStats   Stats           `json:"rating_stats"`
	DurationStats Stats           `json:"duration_stats"`
	TopRated      []Card          `json:"top_rated"`
	Directors     []DirectorCount `json:"directors"`
	CoStars       []ActorCount    `json:"co_stars"`
}

// Bounds describes the observed extent of the normalized set, used by the
// UI to build its filter controls.
type Bounds struct {
	YearMin int      `json:"year_min"`
	YearMax int      `json:"year_max"`
	Motifs  []string `json:"motifs"`
}
