package mapper

import (
	"gamestore/internal/dto"
	"gamestore/internal/models"
)

// ToGenreResponse maps a Genre to its boundary shape.
func ToGenreResponse(genre models.Genre) dto.GenreResponse {
	return dto.GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}
