package handlers

import (
	"gamestore/internal/dto"
	"gamestore/internal/logging"
	"gamestore/internal/mapper"
	"gamestore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// GenreHandler handles HTTP requests for genres.
type GenreHandler struct {
	service *services.GenreService
}

// NewGenreHandler creates a new GenreHandler.
func NewGenreHandler(service *services.GenreService) *GenreHandler {
	return &GenreHandler{
		service: service,
	}
}

// RegisterRoutes registers the genre routes with the Fiber app. Genres are
// read-only reference data; only the list route exists.
func (h *GenreHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/genres", h.HandleListGenres)
}

// HandleListGenres returns every genre.
func (h *GenreHandler) HandleListGenres(c *fiber.Ctx) error {
	genres, err := h.service.GetAllGenres()
	if err != nil {
		logging.Log.WithError(err).Error("failed to list genres")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve genres",
		})
	}

	responses := make([]dto.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		responses = append(responses, mapper.ToGenreResponse(genre))
	}
	return c.JSON(responses)
}
