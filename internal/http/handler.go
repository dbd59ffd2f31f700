package httpapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cesargomez89/audiovault/internal/app"
	"github.com/cesargomez89/audiovault/internal/auth"
	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/logger"
	"github.com/cesargomez89/audiovault/internal/store"
)

type Handler struct {
	Store          store.Store
	Playlists      *app.PlaylistService
	Tracks         *app.TrackService
	Auth           auth.Authenticator
	Logger         *logger.Logger
	MaxUploadBytes int64
}

func NewHandler(s store.Store, ps *app.PlaylistService, ts *app.TrackService, a auth.Authenticator, log *logger.Logger) *Handler {
	return &Handler{
		Store:          s,
		Playlists:      ps,
		Tracks:         ts,
		Auth:           a,
		Logger:         log.WithComponent("http"),
		MaxUploadBytes: ts.MaxBytes,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(api chi.Router) {
		api.Use(auth.Middleware(h.Auth))

		api.Get("/users/me", h.GetMe)
		api.Patch("/users/me", h.UpdateMe)

		api.Get("/categories", h.ListCategories)
		api.Post("/categories", h.CreateCategory)
		api.Get("/categories/{id}", h.GetCategory)
		api.Patch("/categories/{id}", h.UpdateCategory)
		api.Delete("/categories/{id}", h.DeleteCategory)

		api.Get("/playlists", h.ListPlaylists)
		api.Post("/playlists", h.CreatePlaylist)
		api.Get("/playlists/{id}", h.GetPlaylist)
		api.Patch("/playlists/{id}", h.UpdatePlaylist)
		api.Delete("/playlists/{id}", h.DeletePlaylist)
		api.Post("/playlists/{playlistID}/tracks", h.AddPlaylistTrack)
		api.Patch("/playlists/{playlistID}/tracks/{trackID}", h.RepositionPlaylistTrack)
		api.Delete("/playlists/{playlistID}/tracks/{trackID}", h.RemovePlaylistTrack)

		api.Get("/tracks", h.ListTracks)
		api.Post("/tracks/upload", h.UploadTrack)
		api.Get("/tracks/{id}", h.GetTrack)
		api.Patch("/tracks/{id}", h.UpdateTrack)
		api.Delete("/tracks/{id}", h.DeleteTrack)
		api.Get("/tracks/{id}/audio", h.StreamTrackAudio)
		api.Get("/tracks/{id}/artwork", h.GetTrackArtwork)
	})
}

// caller returns the authenticated user. The auth middleware guarantees it
// is present on every /api route.
func (h *Handler) caller(r *http.Request) *domain.User {
	u, _ := auth.UserFrom(r.Context())
	return u
}
