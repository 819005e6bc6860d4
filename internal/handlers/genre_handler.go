package handlers

import (
	"film-catalog/internal/services"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewGenreHandler(service services.CatalogService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

// CreateGenre godoc
// @Summary Create a genre
// @Description Create a genre with a unique name
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param genre body NameRequest true "Genre"
// @Success 201 {object} utils.StandardResponse{data=models.Genre} "Genre created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 409 {object} utils.StandardResponse "Name already taken"
// @Router /genres [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req NameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, err := h.service.CreateGenre(c.Context(), req.Name)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create genre")
	}

	audit(c, h.logger, "create genre", genre.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", genre)
}

// GetAllGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse{data=[]models.Genre} "List of genres"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /genres [get]
func (h *GenreHandler) GetAllGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

// UpdateGenre godoc
// @Summary Rename a genre
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Genre ID"
// @Param genre body NameUpdateRequest true "Genre"
// @Success 200 {object} utils.StandardResponse{data=models.Genre} "Genre updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Failure 409 {object} utils.StandardResponse "Name already taken"
// @Router /genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "genre")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var req NameUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre, err := h.service.UpdateGenre(c.Context(), id, req.Name)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update genre")
	}

	audit(c, h.logger, "update genre", id)
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre updated successfully", genre)
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Description Delete a genre and detach it from every film
// @Tags genres
// @Produce json
// @Security BearerAuth
// @Param id path int true "Genre ID"
// @Success 200 {object} utils.StandardResponse "Genre deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid genre ID"
// @Failure 404 {object} utils.StandardResponse "Genre not found"
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := parseID(c, "genre")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.DeleteGenre(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete genre")
	}

	audit(c, h.logger, "delete genre", id)
	return utils.SuccessResponse(c, fiber.StatusOK, "Genre deleted successfully", nil)
}
