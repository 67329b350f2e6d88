package handlers

import (
	"errors"
	"fmt"

	"gamestore/internal/dto"
	"gamestore/internal/logging"
	"gamestore/internal/mapper"
	"gamestore/internal/repositories"
	"gamestore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// GameHandler handles HTTP requests for games.
type GameHandler struct {
	service  *services.GameService
	validate *validator.Validate
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(service *services.GameService) *GameHandler {
	return &GameHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the game routes with the Fiber app.
func (h *GameHandler) RegisterRoutes(router fiber.Router) {
	gameRoutes := router.Group("/games")
	gameRoutes.Get("/", h.HandleListGames)
	gameRoutes.Get("/:id", h.HandleGetGame)
	gameRoutes.Post("/", h.HandleCreateGame)
	gameRoutes.Put("/:id", h.HandleUpdateGame)
	gameRoutes.Delete("/:id", h.HandleDeleteGame)
}

// HandleListGames returns every game as a summary row with the genre name
// resolved.
func (h *GameHandler) HandleListGames(c *fiber.Ctx) error {
	games, err := h.service.GetAllGames()
	if err != nil {
		logging.Log.WithError(err).Error("failed to list games")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve games",
		})
	}

	summaries := make([]dto.GameSummaryResponse, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, mapper.ToSummaryResponse(game))
	}
	return c.JSON(summaries)
}

// HandleGetGame returns the detail view of a single game.
func (h *GameHandler) HandleGetGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	game, err := h.service.GetGameByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Game with ID %d not found", id),
			})
		}
		logging.Log.WithError(err).Errorf("failed to get game %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve game",
		})
	}

	return c.JSON(mapper.ToDetailsResponse(*game))
}

// HandleCreateGame creates a new game and answers 201 with the detail view
// and a Location reference to the new resource.
func (h *GameHandler) HandleCreateGame(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	game := mapper.ToEntity(req)
	if err := h.service.CreateGame(&game); err != nil {
		if errors.Is(err, repositories.ErrGenreNotFound) {
			return unknownGenreResponse(c, req.GenreID)
		}
		logging.Log.WithError(err).Error("failed to create game")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create game",
		})
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/games/%d", game.ID))
	return c.Status(fiber.StatusCreated).JSON(mapper.ToDetailsResponse(game))
}

// HandleUpdateGame overwrites every field of an existing game and answers
// 204 with no body.
func (h *GameHandler) HandleUpdateGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	var req dto.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationErrorResponse(c, err)
	}

	game := mapper.UpdateToEntity(req, id)
	if err := h.service.UpdateGame(id, &game); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Game with ID %d not found", id),
			})
		}
		if errors.Is(err, repositories.ErrGenreNotFound) {
			return unknownGenreResponse(c, req.GenreID)
		}
		logging.Log.WithError(err).Errorf("failed to update game %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update game",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteGame deletes a game. It answers 204 whether or not the id
// existed; delete is idempotent and never reports not-found.
func (h *GameHandler) HandleDeleteGame(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDResponse(c)
	}

	if err := h.service.DeleteGame(id); err != nil {
		logging.Log.WithError(err).Errorf("failed to delete game %d", id)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete game",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id %q", c.Params("id"))
	}
	return uint(id), nil
}

func invalidIDResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": fmt.Sprintf("Invalid game id %q", c.Params("id")),
	})
}

func unknownGenreResponse(c *fiber.Ctx, genreID uint) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors": fiber.Map{
			"genreId": fmt.Sprintf("genre %d does not exist", genreID),
		},
	})
}

// validationErrorResponse turns validator errors into the per-field error
// map the API reports on 400s.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
