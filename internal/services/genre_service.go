package services

import (
	"gamestore/internal/models"
	"gamestore/internal/repositories"
)

// GenreService handles business logic related to genres.
type GenreService struct {
	repo repositories.GenreRepository
}

// NewGenreService creates a new GenreService.
func NewGenreService(repo repositories.GenreRepository) *GenreService {
	return &GenreService{
		repo: repo,
	}
}

// GetAllGenres retrieves all genres.
func (s *GenreService) GetAllGenres() ([]models.Genre, error) {
	return s.repo.GetAll()
}
