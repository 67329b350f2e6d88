package repositories

import (
	"gamestore/internal/models"
)

// GenreRepository defines the interface for genre data access. Genres are
// read-only reference data; there are no write operations.
type GenreRepository interface {
	GetAll() ([]models.Genre, error)
}
