package httpapp

import (
	"net/http"

	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/http/dto"
)

// playlistDetail is a playlist together with its ordered tracks.
type playlistDetail struct {
	domain.Playlist
	Tracks []domain.PlaylistEntry `json:"tracks"`
}

func (h *Handler) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.Store.ListPlaylistsByOwner(h.caller(r).ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, playlists)
}

func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaylistCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	playlist := &domain.Playlist{
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
		UserID: h.caller(r).ID,
	}
	if err := h.Store.CreatePlaylist(playlist); err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, playlist)
}

func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, ok := h.ownedPlaylist(w, r, "id")
	if !ok {
		return
	}

	entries, err := h.Playlists.ListOrdered(playlist.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, playlistDetail{Playlist: *playlist, Tracks: entries})
}

func (h *Handler) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, ok := h.ownedPlaylist(w, r, "id")
	if !ok {
		return
	}

	var req dto.PlaylistUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	updated, found, err := h.Store.UpdatePlaylist(playlist.ID, req.ToPatch())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if !found {
		h.respondError(w, http.StatusNotFound, "not found")
		return
	}
	h.respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, ok := h.ownedPlaylist(w, r, "id")
	if !ok {
		return
	}

	removed, err := h.Store.DeletePlaylist(playlist.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if !removed {
		h.respondError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddPlaylistTrack(w http.ResponseWriter, r *http.Request) {
	playlist, ok := h.ownedPlaylist(w, r, "playlistID")
	if !ok {
		return
	}

	var req dto.AddTrackRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	track, found, err := h.Store.GetTrack(*req.TrackID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if !found {
		h.respondError(w, http.StatusNotFound, "not found")
		return
	}
	if track.UserID != h.caller(r).ID {
		h.respondError(w, http.StatusForbidden, "forbidden")
		return
	}

	link, err := h.Playlists.Add(playlist.ID, track.ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, link)
}

func (h *Handler) RepositionPlaylistTrack(w http.ResponseWriter, r *http.Request) {
	playlist, ok := h.ownedPlaylist(w, r, "playlistID")
	if !ok {
		return
	}
	trackID, ok := h.idParam(w, r, "trackID")
	if !ok {
		return
	}

	var req dto.RepositionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	moved, err := h.Playlists.Reposition(playlist.ID, trackID, *req.Position)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if !moved {
		h.respondError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemovePlaylistTrack(w http.ResponseWriter, r *http.Request) {
	playlist, ok := h.ownedPlaylist(w, r, "playlistID")
	if !ok {
		return
	}
	trackID, ok := h.idParam(w, r, "trackID")
	if !ok {
		return
	}

	removed, err := h.Playlists.Remove(playlist.ID, trackID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	if !removed {
		h.respondError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ownedPlaylist(w http.ResponseWriter, r *http.Request, param string) (*domain.Playlist, bool) {
	id, ok := h.idParam(w, r, param)
	if !ok {
		return nil, false
	}

	playlist, found, err := h.Store.GetPlaylist(id)
	if err != nil {
		h.respondServiceError(w, err)
		return nil, false
	}
	if !found {
		h.respondError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	if playlist.UserID != h.caller(r).ID {
		h.respondError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return playlist, true
}
