package services

import (
	"gamestore/internal/logging"
	"gamestore/internal/models"
	"gamestore/internal/repositories"
	"gamestore/pkg/rabbitmq"
)

// CatalogPublisher publishes catalog change events. *rabbitmq.Client
// implements it; a nil publisher disables publishing.
type CatalogPublisher interface {
	PublishGameEvent(event rabbitmq.GameEvent) error
}

// GameService handles business logic related to games.
type GameService struct {
	repo      repositories.GameRepository
	publisher CatalogPublisher
}

// NewGameService creates a new GameService.
func NewGameService(repo repositories.GameRepository, publisher CatalogPublisher) *GameService {
	return &GameService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllGames retrieves all games with their genre resolved.
func (s *GameService) GetAllGames() ([]models.Game, error) {
	return s.repo.GetAllWithGenre()
}

// GetGameByID retrieves a single game by its ID.
func (s *GameService) GetGameByID(id uint) (*models.Game, error) {
	return s.repo.GetByID(id)
}

// CreateGame persists a new game and publishes a catalog event.
func (s *GameService) CreateGame(game *models.Game) error {
	if err := s.repo.Create(game); err != nil {
		return err
	}
	s.publishEvent(rabbitmq.GameCreated, game.ID)
	return nil
}

// UpdateGame overwrites the game identified by id and publishes a catalog
// event.
func (s *GameService) UpdateGame(id uint, game *models.Game) error {
	if err := s.repo.Update(id, game); err != nil {
		return err
	}
	s.publishEvent(rabbitmq.GameUpdated, id)
	return nil
}

// DeleteGame removes the game identified by id and publishes a catalog
// event. Deleting an absent id succeeds.
func (s *GameService) DeleteGame(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent(rabbitmq.GameDeleted, id)
	return nil
}

// publishEvent is best-effort: a broker failure must not fail the request
// that already committed.
func (s *GameService) publishEvent(eventType string, gameID uint) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishGameEvent(rabbitmq.NewGameEvent(eventType, gameID)); err != nil {
		logging.Log.WithError(err).WithField("game_id", gameID).Warnf("failed to publish %s event", eventType)
	}
}
