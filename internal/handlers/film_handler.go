package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"film-catalog/internal/models"
	"film-catalog/internal/services"
	"film-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type FilmHandler struct {
	service    services.FilmService
	stagingDir string
	logger     *logrus.Logger
}

func NewFilmHandler(service services.FilmService, stagingDir string, logger *logrus.Logger) *FilmHandler {
	return &FilmHandler{
		service:    service,
		stagingDir: stagingDir,
		logger:     logger,
	}
}

// CreateFilm godoc
// @Summary Create a film
// @Description Upload a film with its video, optional thumbnail and tags
// @Tags films
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param duration formData int true "Duration in minutes"
// @Param published formData bool false "Published" default(false)
// @Param artistIds formData string false "Artist IDs, [1,2] or 1,2"
// @Param genreIds formData string false "Genre IDs, [1,2] or 1,2"
// @Param video formData file true "Video file"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 201 {object} utils.StandardResponse{data=models.Film} "Film created successfully"
// @Failure 404 {object} utils.StandardResponse "Unknown artist or genre"
// @Failure 409 {object} utils.StandardResponse "Media object already exists"
// @Failure 422 {object} utils.StandardResponse{data=[]utils.FieldError} "Validation failed"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /films [post]
func (h *FilmHandler) CreateFilm(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Request must be multipart/form-data")
	}

	input, fieldErrs := parseFilmInput(form)
	if len(fieldErrs) > 0 {
		return utils.ValidationErrorResponse(c, fieldErrs)
	}
	if err := input.Validate(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if len(form.File["video"]) == 0 {
		return utils.ValidationErrorResponse(c, []utils.FieldError{{Field: "video", Message: "video file is required"}})
	}

	video, thumbnail, err := h.stageMedia(c, form)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to stage upload")
	}

	film, err := h.service.CreateFilm(c.Context(), input, *video, thumbnail)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create film")
	}

	audit(c, h.logger, "create film", film.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, "Film created successfully", film)
}

// UpdateFilm godoc
// @Summary Update a film
// @Description Partial update. Omitted fields are kept; an artistIds or genreIds field that is present, even empty, replaces the set.
// @Tags films
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Film ID"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param duration formData int false "Duration in minutes"
// @Param published formData bool false "Published"
// @Param artistIds formData string false "Artist IDs, [1,2] or 1,2"
// @Param genreIds formData string false "Genre IDs, [1,2] or 1,2"
// @Param video formData file false "Replacement video"
// @Param thumbnail formData file false "Replacement thumbnail"
// @Success 200 {object} utils.StandardResponse{data=models.Film} "Film updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid film ID"
// @Failure 404 {object} utils.StandardResponse "Film, artist or genre not found"
// @Failure 422 {object} utils.StandardResponse{data=[]utils.FieldError} "Validation failed"
// @Router /films/{id} [put]
func (h *FilmHandler) UpdateFilm(c *fiber.Ctx) error {
	id, err := parseID(c, "film")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Request must be multipart/form-data")
	}

	update, fieldErrs := parseFilmUpdate(form)
	if len(fieldErrs) > 0 {
		return utils.ValidationErrorResponse(c, fieldErrs)
	}
	if err := update.Validate(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	video, thumbnail, err := h.stageMedia(c, form)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to stage upload")
	}

	film, err := h.service.UpdateFilm(c.Context(), id, update, video, thumbnail)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update film")
	}

	audit(c, h.logger, "update film", id)
	return utils.SuccessResponse(c, fiber.StatusOK, "Film updated successfully", film)
}

// DeleteFilm godoc
// @Summary Delete a film
// @Description Delete a film, its tag associations and its media
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param id path int true "Film ID"
// @Success 200 {object} utils.StandardResponse "Film deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid film ID"
// @Failure 404 {object} utils.StandardResponse "Film not found"
// @Router /films/{id} [delete]
func (h *FilmHandler) DeleteFilm(c *fiber.Ctx) error {
	id, err := parseID(c, "film")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	if err := h.service.DeleteFilm(c.Context(), id); err != nil {
		return respondError(c, h.logger, err, "Failed to delete film")
	}

	audit(c, h.logger, "delete film", id)
	return utils.SuccessResponse(c, fiber.StatusOK, "Film deleted successfully", nil)
}

// GetFilmByID godoc
// @Summary Get film by ID
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param id path int true "Film ID"
// @Success 200 {object} utils.StandardResponse{data=models.Film} "Film details"
// @Failure 400 {object} utils.StandardResponse "Invalid film ID"
// @Failure 404 {object} utils.StandardResponse "Film not found"
// @Router /films/{id} [get]
func (h *FilmHandler) GetFilmByID(c *fiber.Ctx) error {
	id, err := parseID(c, "film")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	film, err := h.service.GetFilm(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to get film")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Film retrieved successfully", film)
}

// SearchFilms godoc
// @Summary Search films
// @Description Free text search over title, description, artist and genre names, with tag filters and pagination
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param q query string false "Text to search for"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Param genreIds query string false "Match any of these genre IDs"
// @Param artistIds query string false "Match any of these artist IDs"
// @Param sortBy query string false "created_at, title or duration" default(created_at)
// @Param order query string false "ASC or DESC" default(DESC)
// @Param published query bool false "Only published or unpublished films"
// @Success 200 {object} utils.StandardResponse{data=[]models.Film,meta=utils.PaginationMeta} "Matching films"
// @Failure 400 {object} utils.StandardResponse "Invalid query"
// @Router /films/search [get]
func (h *FilmHandler) SearchFilms(c *fiber.Ctx) error {
	search := models.FilmSearch{
		Text:   c.Query("q"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}

	var err error
	if search.Page, err = queryInt(c, "page"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if search.Limit, err = queryInt(c, "limit"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	if search.GenreIDs, err = parseIDList(c.Query("genreIds")); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "genreIds "+err.Error())
	}
	if search.ArtistIDs, err = parseIDList(c.Query("artistIds")); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "artistIds "+err.Error())
	}
	if raw := strings.TrimSpace(c.Query("published")); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "published must be true or false")
		}
		search.Published = &published
	}

	page, err := h.service.SearchFilms(c.Context(), search)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to search films")
	}

	meta := utils.CreatePaginationMeta(page.Page, page.Limit, page.Total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Films retrieved successfully", page.Items, meta)
}

// GetVideoURL godoc
// @Summary Get a film's video URL
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param id path int true "Film ID"
// @Success 200 {object} utils.StandardResponse{data=VideoURLResponse} "Video URL"
// @Failure 404 {object} utils.StandardResponse "Film or video not found"
// @Router /films/{id}/video [get]
func (h *FilmHandler) GetVideoURL(c *fiber.Ctx) error {
	id, err := parseID(c, "film")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	url, err := h.service.VideoURL(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to resolve video URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Video URL retrieved successfully", VideoURLResponse{VideoURL: url})
}

// GetThumbnailURL godoc
// @Summary Get a film's thumbnail URL
// @Tags films
// @Produce json
// @Security BearerAuth
// @Param id path int true "Film ID"
// @Success 200 {object} utils.StandardResponse{data=ThumbnailURLResponse} "Thumbnail URL"
// @Failure 404 {object} utils.StandardResponse "Film or thumbnail not found"
// @Router /films/{id}/thumbnail [get]
func (h *FilmHandler) GetThumbnailURL(c *fiber.Ctx) error {
	id, err := parseID(c, "film")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid film ID")
	}

	url, err := h.service.ThumbnailURL(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to resolve thumbnail URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Thumbnail URL retrieved successfully", ThumbnailURLResponse{ThumbnailURL: url})
}

// stageMedia saves the video and thumbnail parts, when present, under the
// staging directory.
func (h *FilmHandler) stageMedia(c *fiber.Ctx, form *multipart.Form) (*services.Upload, *services.Upload, error) {
	video, err := h.stage(c, form, "video")
	if err != nil {
		return nil, nil, err
	}
	thumbnail, err := h.stage(c, form, "thumbnail")
	if err != nil {
		if video != nil {
			_ = os.Remove(video.StagingPath)
		}
		return nil, nil, err
	}
	return video, thumbnail, nil
}

func (h *FilmHandler) stage(c *fiber.Ctx, form *multipart.Form, field string) (*services.Upload, error) {
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	file := files[0]

	dst := filepath.Join(h.stagingDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, dst); err != nil {
		return nil, fmt.Errorf("failed to save %s upload: %w", field, err)
	}

	return &services.Upload{
		OriginalName: file.Filename,
		ContentType:  file.Header.Get(fiber.HeaderContentType),
		StagingPath:  dst,
	}, nil
}

func formValue(form *multipart.Form, key string) (string, bool) {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func parseFilmInput(form *multipart.Form) (models.FilmInput, []utils.FieldError) {
	var input models.FilmInput
	var fieldErrs []utils.FieldError

	input.Title, _ = formValue(form, "title")
	input.Description, _ = formValue(form, "description")

	raw, _ := formValue(form, "duration")
	duration, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fieldErrs = append(fieldErrs, utils.FieldError{Field: "duration", Message: "duration must be an integer"})
	}
	input.Duration = duration

	if raw, ok := formValue(form, "published"); ok && strings.TrimSpace(raw) != "" {
		published, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			fieldErrs = append(fieldErrs, utils.FieldError{Field: "published", Message: "published must be true or false"})
		}
		input.Published = published
	}

	for _, field := range []string{"artistIds", "genreIds"} {
		raw, _ := formValue(form, field)
		ids, err := parseIDList(raw)
		if err != nil {
			fieldErrs = append(fieldErrs, utils.FieldError{Field: field, Message: err.Error()})
			continue
		}
		if field == "artistIds" {
			input.ArtistIDs = ids
		} else {
			input.GenreIDs = ids
		}
	}

	return input, fieldErrs
}

func parseFilmUpdate(form *multipart.Form) (models.FilmUpdate, []utils.FieldError) {
	var update models.FilmUpdate
	var fieldErrs []utils.FieldError

	if title, ok := formValue(form, "title"); ok {
		update.Title = &title
	}
	if description, ok := formValue(form, "description"); ok {
		update.Description = &description
	}
	if raw, ok := formValue(form, "duration"); ok {
		duration, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fieldErrs = append(fieldErrs, utils.FieldError{Field: "duration", Message: "duration must be an integer"})
		} else {
			update.Duration = &duration
		}
	}
	if raw, ok := formValue(form, "published"); ok && strings.TrimSpace(raw) != "" {
		published, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			fieldErrs = append(fieldErrs, utils.FieldError{Field: "published", Message: "published must be true or false"})
		} else {
			update.Published = &published
		}
	}

	// A present field replaces the set, an empty one clears it.
	if raw, ok := formValue(form, "artistIds"); ok {
		ids, err := parseIDList(raw)
		if err != nil {
			fieldErrs = append(fieldErrs, utils.FieldError{Field: "artistIds", Message: err.Error()})
		} else {
			update.ArtistIDs = &ids
		}
	}
	if raw, ok := formValue(form, "genreIds"); ok {
		ids, err := parseIDList(raw)
		if err != nil {
			fieldErrs = append(fieldErrs, utils.FieldError{Field: "genreIds", Message: err.Error()})
		} else {
			update.GenreIDs = &ids
		}
	}

	return update, fieldErrs
}

func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}
