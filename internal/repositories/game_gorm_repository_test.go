package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"gamestore/internal/database"
	"gamestore/internal/models"
	"gamestore/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// setupTestDB opens a migrated, seeded in-memory SQLite store. The DSN is
// keyed by test name so tests do not share state through the shared cache.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect("sqlite", dsn)
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))
	assert.NoError(t, database.SeedGenres(db))
	return db
}

func newGame() models.Game {
	return models.Game{
		Name:        "Halo",
		GenreID:     1,
		Price:       59.99,
		ReleaseDate: models.NewDate(2001, time.November, 15),
	}
}

func TestGameRepositoryCreateAssignsID(t *testing.T) {
	repo := repositories.NewGORMGameRepository(setupTestDB(t))

	game := newGame()
	assert.NoError(t, repo.Create(&game))
	assert.Positive(t, game.ID)

	found, err := repo.GetByID(game.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Halo", found.Name)
	assert.Equal(t, uint(1), found.GenreID)
	assert.Equal(t, 59.99, found.Price)
	assert.Equal(t, "2001-11-15", found.ReleaseDate.Format("2006-01-02"))
	// GetByID does not resolve the relation.
	assert.Nil(t, found.Genre)
}

func TestGameRepositoryCreateUnknownGenre(t *testing.T) {
	repo := repositories.NewGORMGameRepository(setupTestDB(t))

	game := newGame()
	game.GenreID = 42
	err := repo.Create(&game)
	assert.ErrorIs(t, err, repositories.ErrGenreNotFound)
}

func TestGameRepositoryGetByIDNotFound(t *testing.T) {
	repo := repositories.NewGORMGameRepository(setupTestDB(t))

	_, err := repo.GetByID(999)
	assert.ErrorIs(t, err, repositories.ErrGameNotFound)
}

func TestGameRepositoryGetAllWithGenreResolvesRelation(t *testing.T) {
	repo := repositories.NewGORMGameRepository(setupTestDB(t))

	game := newGame()
	assert.NoError(t, repo.Create(&game))

	games, err := repo.GetAllWithGenre()
	assert.NoError(t, err)
	assert.Len(t, games, 1)
	if assert.NotNil(t, games[0].Genre) {
		assert.Equal(t, "Action", games[0].Genre.Name)
	}
}

func TestGameRepositoryUpdateOverwritesEveryField(t *testing.T) {
	repo := repositories.NewGORMGameRepository(setupTestDB(t))

	game := newGame()
	assert.NoError(t, repo.Create(&game))

	replacement := models.Game{
		Name:        "Halo 2",
		GenreID:     3,
		Price:       39.99,
		ReleaseDate: models.NewDate(2004, time.November, 9),
	}
	assert.NoError(t, repo.Update(game.ID, &replacement))

	found, err := repo.GetByID(game.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Halo 2", found.Name)
	assert.Equal(t, uint(3), found.GenreID)
	assert.Equal(t, 39.99, found.Price)
	assert.Equal(t, "2004-11-09", found.ReleaseDate.Format("2006-01-02"))
}

func TestGameRepositoryUpdateIdenticalPayloadSucceeds(t *testing.T) {
	repo := repositories.NewGORMGameRepository(setupTestDB(t))

	game := newGame()
	assert.NoError(t, repo.Create(&game))

	// A no-op overwrite touches zero rows but is still a success.
	same := newGame()
	assert.NoError(t, repo.Update(game.ID, &same))
}

func TestGameRepositoryUpdateNotFound(t *testing.T) {
	repo := repositories.NewGORMGameRepository(setupTestDB(t))

	replacement := newGame()
	err := repo.Update(999, &replacement)
	assert.ErrorIs(t, err, repositories.ErrGameNotFound)
}

func TestGameRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := repositories.NewGORMGameRepository(setupTestDB(t))

	game := newGame()
	assert.NoError(t, repo.Create(&game))

	assert.NoError(t, repo.Delete(game.ID))
	_, err := repo.GetByID(game.ID)
	assert.ErrorIs(t, err, repositories.ErrGameNotFound)

	// Second delete of the same id, and a delete of an id that never
	// existed, both succeed.
	assert.NoError(t, repo.Delete(game.ID))
	assert.NoError(t, repo.Delete(999))
}

func TestGenreRepositoryGetAll(t *testing.T) {
	repo := repositories.NewGORMGenreRepository(setupTestDB(t))

	genres, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, genres, 5)
}
