package repositories

import (
	"errors"
	"fmt"

	"gamestore/internal/models"

	"gorm.io/gorm"
)

// GORMGameRepository is a GORM implementation of GameRepository.
type GORMGameRepository struct {
	db *gorm.DB
}

// NewGORMGameRepository creates a new instance of GORMGameRepository.
func NewGORMGameRepository(db *gorm.DB) *GORMGameRepository {
	return &GORMGameRepository{
		db: db,
	}
}

// GetAllWithGenre retrieves all games with their Genre relation resolved.
// No ordering is promised; rows come back in store order.
func (r *GORMGameRepository) GetAllWithGenre() ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Preload("Genre").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// GetByID retrieves a single game by its ID. The Genre relation is left
// unresolved; the detail view does not need it.
func (r *GORMGameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}
	return &game, nil
}

// Create persists a new game; the store assigns the ID into game.ID.
func (r *GORMGameRepository) Create(game *models.Game) error {
	if err := r.db.Create(game).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrGenreNotFound
		}
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// Update replaces every mutable field of the row identified by id. The
// existence check runs first because Save reports zero affected rows for an
// overwrite that changes nothing, which must not read as not-found.
func (r *GORMGameRepository) Update(id uint, game *models.Game) error {
	var existing models.Game
	if err := r.db.Select("id").First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to find game %d for update: %w", id, err)
	}

	game.ID = id
	if err := r.db.Save(game).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrGenreNotFound
		}
		return fmt.Errorf("failed to update game %d: %w", id, err)
	}
	return nil
}

// Delete removes the game with the given id. Deleting an absent id is not
// an error; the operation is idempotent.
func (r *GORMGameRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Game{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete game %d: %w", id, err)
	}
	return nil
}
