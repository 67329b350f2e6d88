package repositories

import (
	"errors"

	"gamestore/internal/models"
)

// ErrGameNotFound is returned when no game row matches the requested id.
var ErrGameNotFound = errors.New("game not found")

// ErrGenreNotFound is returned when a write references a genre id that does
// not exist. The store's foreign key enforces this; the repository only
// translates the violation.
var ErrGenreNotFound = errors.New("genre not found")

// GameRepository defines the interface for game data access.
type GameRepository interface {
	GetAllWithGenre() ([]models.Game, error)
	GetByID(id uint) (*models.Game, error)
	Create(game *models.Game) error
	Update(id uint, game *models.Game) error
	Delete(id uint) error
}
