package repositories

import (
	"fmt"

	"gamestore/internal/models"

	"gorm.io/gorm"
)

// GORMGenreRepository is a GORM implementation of GenreRepository.
type GORMGenreRepository struct {
	db *gorm.DB
}

// NewGORMGenreRepository creates a new instance of GORMGenreRepository.
func NewGORMGenreRepository(db *gorm.DB) *GORMGenreRepository {
	return &GORMGenreRepository{
		db: db,
	}
}

// GetAll retrieves all genres.
func (r *GORMGenreRepository) GetAll() ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}
