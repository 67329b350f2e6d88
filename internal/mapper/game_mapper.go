// Package mapper translates between persisted entities and the transfer
// shapes used at the service boundary. Every function is pure.
package mapper

import (
	"fmt"

	"gamestore/internal/dto"
	"gamestore/internal/models"
)

// ToEntity builds a Game from a creation payload. The ID stays zero until
// the store assigns one.
func ToEntity(req dto.CreateGameRequest) models.Game {
	return models.Game{
		Name:        req.Name,
		GenreID:     req.GenreID,
		Price:       req.Price,
		ReleaseDate: req.ReleaseDate,
	}
}

// UpdateToEntity builds the full replacement row for an update, carrying
// the id addressed by the request path.
func UpdateToEntity(req dto.UpdateGameRequest, id uint) models.Game {
	return models.Game{
		ID:          id,
		Name:        req.Name,
		GenreID:     req.GenreID,
		Price:       req.Price,
		ReleaseDate: req.ReleaseDate,
	}
}

// ToSummaryResponse maps a Game to its list-view shape. The game's Genre
// must already be resolved; calling this on a row fetched without the join
// is a contract violation and panics rather than emitting a placeholder
// genre name.
func ToSummaryResponse(game models.Game) dto.GameSummaryResponse {
	if game.Genre == nil {
		panic(fmt.Sprintf("mapper: summary for game %d requires a resolved genre", game.ID))
	}
	return dto.GameSummaryResponse{
		ID:          game.ID,
		Name:        game.Name,
		Genre:       game.Genre.Name,
		Price:       game.Price,
		ReleaseDate: game.ReleaseDate,
	}
}

// ToDetailsResponse maps a Game to its single-game view. It uses GenreID
// directly and does not need the Genre relation resolved.
func ToDetailsResponse(game models.Game) dto.GameDetailsResponse {
	return dto.GameDetailsResponse{
		ID:          game.ID,
		Name:        game.Name,
		GenreID:     game.GenreID,
		Price:       game.Price,
		ReleaseDate: game.ReleaseDate,
	}
}
