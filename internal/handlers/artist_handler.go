package handlers

import (
	"film-catalog/internal/services"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ArtistHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewArtistHandler(service services.CatalogService, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		logger:  logger,
	}
}

// CreateArtist godoc
// @Summary Create an artist
// @Description Create an artist with a unique name
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param artist body NameRequest true "Artist"
// @Success 201 {object} utils.StandardResponse{data=models.Artist} "Artist created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 409 {object} utils.StandardResponse "Name already taken"
// @Router /artists [post]
func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	var req NameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	artist, err := h.service.CreateArtist(c.Context(), req.Name)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create artist")
	}

	audit(c, h.logger, "create artist", artist.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Artist created successfully", artist)
}

// GetAllArtists godoc
// @Summary List artists
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse{data=[]models.Artist} "List of artists"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists [get]
func (h *ArtistHandler) GetAllArtists(c *fiber.Ctx) error {
	artists, err := h.service.ListArtists(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Failed to list artists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", artists)
}

// UpdateArtist godoc
// @Summary Rename an artist
// @Tags artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artist ID"
// @Param artist body NameUpdateRequest true "Artist"
// @Success 200 {object} utils.StandardResponse{data=models.Artist} "Artist updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 409 {object} utils.StandardResponse "Name already taken"
// @Router /artists/{id} [put]
func (h *ArtistHandler) UpdateArtist(c *fiber.Ctx) error {
	id, err := parseID(c, "artist")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var req NameUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	artist, err := h.service.UpdateArtist(c.Context(), id, req.Name)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update artist")
	}

	audit(c, h.logger, "update artist", id)
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist updated successfully", artist)
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Description Delete an artist and detach it from every film
// @Tags artists
// @Produce json
// @Security BearerAuth
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse "Artist deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	id, err := parseID(c, "artist")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	if err := h.service.DeleteArtist(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete artist")
	}

	audit(c, h.logger, "delete artist", id)
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist deleted successfully", nil)
}
