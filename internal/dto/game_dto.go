package dto

import "gamestore/internal/models"

// CreateGameRequest is the payload for POST /games.
type CreateGameRequest struct {
	Name        string      `json:"name" validate:"required,max=50"`
	GenreID     uint        `json:"genreId" validate:"required"`
	Price       float64     `json:"price" validate:"min=1,max=100"`
	ReleaseDate models.Date `json:"releaseDate"`
}

// UpdateGameRequest is the payload for PUT /games/:id. The target id comes
// from the path, not the body, and the update replaces every field.
type UpdateGameRequest struct {
	Name        string      `json:"name" validate:"required,max=50"`
	GenreID     uint        `json:"genreId" validate:"required"`
	Price       float64     `json:"price" validate:"min=1,max=100"`
	ReleaseDate models.Date `json:"releaseDate"`
}

// GameDetailsResponse is the single-game view. It carries the genre id
// rather than the genre name.
type GameDetailsResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	GenreID     uint        `json:"genreId"`
	Price       float64     `json:"price"`
	ReleaseDate models.Date `json:"releaseDate"`
}

// GameSummaryResponse is one row of the list view; Genre is the resolved
// genre display name.
type GameSummaryResponse struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Genre       string      `json:"genre"`
	Price       float64     `json:"price"`
	ReleaseDate models.Date `json:"releaseDate"`
}
