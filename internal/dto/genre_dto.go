package dto

// GenreResponse is one row of GET /genres.
type GenreResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
