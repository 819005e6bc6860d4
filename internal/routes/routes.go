package routes

import (
	"film-catalog/internal/handlers"
	"film-catalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Artist *handlers.ArtistHandler
	Genre  *handlers.GenreHandler
	Film   *handlers.FilmHandler
}

func Setup(app *fiber.App, auth *middleware.Authenticator, h Handlers) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	admin := auth.RequireRoles(middleware.RoleAdmin)
	reader := auth.RequireRoles(middleware.RoleAdmin, middleware.RoleViewer)

	artists := v1.Group("/artists")
	{
		artists.Get("/", reader, h.Artist.GetAllArtists)
		artists.Post("/", admin, h.Artist.CreateArtist)
		artists.Put("/:id", admin, h.Artist.UpdateArtist)
		artists.Delete("/:id", admin, h.Artist.DeleteArtist)
	}

	genres := v1.Group("/genres")
	{
		genres.Get("/", reader, h.Genre.GetAllGenres)
		genres.Post("/", admin, h.Genre.CreateGenre)
		genres.Put("/:id", admin, h.Genre.UpdateGenre)
		genres.Delete("/:id", admin, h.Genre.DeleteGenre)
	}

	// /search is registered before /:id so it is not read as an id
	films := v1.Group("/films")
	{
		films.Get("/search", reader, h.Film.SearchFilms)
		films.Get("/:id", reader, h.Film.GetFilmByID)
		films.Get("/:id/video", reader, h.Film.GetVideoURL)
		films.Get("/:id/thumbnail", reader, h.Film.GetThumbnailURL)
		films.Post("/", admin, h.Film.CreateFilm)
		films.Put("/:id", admin, h.Film.UpdateFilm)
		films.Delete("/:id", admin, h.Film.DeleteFilm)
	}
}
