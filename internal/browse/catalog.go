package browse

import (
	"strings"

	"github.com/reelgrid/reelgrid/internal/tmdb"
)

// Catalog maps genre identifiers to display names. It is loaded once at
// startup and read-only thereafter. An empty catalog is valid: genre
// filtering degrades to "no options" while browsing keeps working.
type Catalog struct {
	genres []tmdb.Genre
	names  map[int]string
}

// NewCatalog builds a catalog from the genre list endpoint response.
func NewCatalog(genres []tmdb.Genre) *Catalog {
	names := make(map[int]string, len(genres))
	for _, g := range genres {
		names[g.ID] = g.Name
	}
	return &Catalog{genres: genres, names: names}
}

// Genres returns the selectable genres in the order the API listed them.
func (c *Catalog) Genres() []tmdb.Genre {
	return c.genres
}

// Name returns the display name for a genre ID, or "" if unknown.
func (c *Catalog) Name(id int) string {
	return c.names[id]
}

// Find looks up a genre by name, case-insensitively.
func (c *Catalog) Find(name string) (tmdb.Genre, bool) {
	for _, g := range c.genres {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return tmdb.Genre{}, false
}

// Empty reports whether the catalog holds no genres.
func (c *Catalog) Empty() bool {
	return len(c.genres) == 0
}
