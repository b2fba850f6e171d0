package domain

// Film is a single entry in the catalogue. Values are never mutated after
// construction; the store hands out copies.
type Film struct {
	Title    string
	Genre    string
	Rating   float64
	ImageRef string // opaque resource identifier, resolved by the renderer
}

// SeedFilms returns the fixed catalogue the application starts with
func SeedFilms() []Film {
	return []Film{
		{Title: "Film A", Genre: "Action", Rating: 4.5, ImageRef: "wahyu1"},
		{Title: "Film B", Genre: "Drama", Rating: 4.2, ImageRef: "wahyu2"},
		{Title: "Film C", Genre: "Comedy", Rating: 4.0, ImageRef: "wahyu3"},
	}
}
