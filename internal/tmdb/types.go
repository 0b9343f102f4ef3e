package tmdb

// Movie represents a movie from TMDb result pages.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	GenreIDs    []int   `json:"genre_ids"`
}

// Year returns the release year, or "TBA" when the release date is absent
// or unparseable.
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return "TBA"
	}
	return m.ReleaseDate[:4]
}

// Genre represents a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Page is one page of a paginated listing. It is created per fetch and
// discarded on the next one; nothing is retained beyond the rendered page.
type Page struct {
	Movies     []Movie
	TotalPages int
}

// Endpoint selects one of the logical listing operations.
type Endpoint string

const (
	EndpointSearch   Endpoint = "search"
	EndpointTrending Endpoint = "trending"
	EndpointPopular  Endpoint = "popular"
	EndpointTopRated Endpoint = "top_rated"
)

// PageRequest describes a single page fetch.
type PageRequest struct {
	Endpoint Endpoint
	Query    string // search text, only meaningful for EndpointSearch
	GenreID  int    // 0 = no genre filter
	Page     int
}

// pageResponse is the TMDb paginated listing response.
type pageResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// genreListResponse wraps the genre list endpoint response.
type genreListResponse struct {
	Genres []Genre `json:"genres"`
}
