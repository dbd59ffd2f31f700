package httpapp

import (
	"net/http"
	"os"
	"strconv"

	"github.com/cesargomez89/audiovault/internal/app"
	"github.com/cesargomez89/audiovault/internal/constants"
	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/http/dto"
	"github.com/cesargomez89/audiovault/internal/storage"
)

func (h *Handler) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.Store.ListTracksByOwner(h.caller(r).ID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid categoryId")
			return
		}
		filtered := make([]domain.Track, 0, len(tracks))
		for _, t := range tracks {
			if t.CategoryID != nil && *t.CategoryID == categoryID {
				filtered = append(filtered, t)
			}
		}
		tracks = filtered
	}

	h.respondJSON(w, http.StatusOK, tracks)
}

func (h *Handler) UploadTrack(w http.ResponseWriter, r *http.Request) {
	// Leave headroom over the audio cap for the other form parts; the
	// service enforces the exact limit on the audio bytes.
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	req := dto.TrackUploadRequest{Name: r.FormValue("name")}
	if raw := r.FormValue("duration"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid duration")
			return
		}
		req.Duration = &duration
	}
	if raw := r.FormValue("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid categoryId")
			return
		}
		req.CategoryID = &categoryID
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	if req.CategoryID != nil {
		category, found, err := h.Store.GetCategory(*req.CategoryID)
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		if !found {
			h.respondError(w, http.StatusNotFound, "not found")
			return
		}
		if category.UserID != h.caller(r).ID {
			h.respondError(w, http.StatusForbidden, "forbidden")
			return
		}
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing audio file")
		return
	}
	defer file.Close()

	track, err := h.Tracks.Upload(h.caller(r), app.UploadInput{
		Name:       req.Name,
		Duration:   *req.Duration,
		CategoryID: req.CategoryID,
		MediaType:  header.Header.Get("Content-Type"),
		Body:       file,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, track)
}

func (h *Handler) GetTrack(w http.ResponseWriter, r *http.Request) {
	track, ok := h.ownedTrack(w, r)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, track)
}

func (h *Handler) UpdateTrack(w http.ResponseWriter, r *http.Request) {
	track, ok := h.ownedTrack(w, r)
	if !ok {
		return
	}

	var req dto.TrackUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondValidation(w, errs)
		return
	}

	if req.CategoryID != nil {
		category, found, err := h.Store.GetCategory(*req.CategoryID)
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		if !found {
			h.respondError(w, http.StatusNotFound, "not found")
			return
		}
		if category.UserID != h.caller(r).ID {
			h.respondError(w, http.StatusForbidden, "forbidden")
			return
		}
	}

	updated, found, err := h.Store.UpdateTrack(track.ID, req.ToPatch())
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

func (h *Handler) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	track, ok := h.ownedTrack(w, r)
	if !ok {
		return
	}

	removed, err := h.Tracks.Delete(track)
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

// StreamTrackAudio serves the stored bytes. ServeContent handles Range and
// If-None-Match; the ETag is the content hash taken at upload time.
func (h *Handler) StreamTrackAudio(w http.ResponseWriter, r *http.Request) {
	track, ok := h.ownedTrack(w, r)
	if !ok {
		return
	}

	f, err := os.Open(track.FilePath)
	if err != nil {
		h.Logger.Error("Audio file missing for track", "track_id", track.ID, "path", track.FilePath, "error", err)
		h.respondError(w, http.StatusNotFound, "audio file not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", track.MediaType)
	if track.FileHash != "" {
		w.Header().Set("ETag", `"`+track.FileHash+`"`)
	}
	w.Header().Set("Content-Disposition", `inline; filename="`+downloadName(track)+`"`)
	http.ServeContent(w, r, "", info.ModTime(), f)
}

// downloadName derives a filesystem-safe file name from the track's display
// name for the Content-Disposition header.
func downloadName(track *domain.Track) string {
	name := storage.Sanitize(track.Name)
	if name == "" {
		name = "track"
	}
	return name + constants.AudioExtensions[track.MediaType]
}

func (h *Handler) GetTrackArtwork(w http.ResponseWriter, r *http.Request) {
	track, ok := h.ownedTrack(w, r)
	if !ok {
		return
	}
	if !track.HasArtwork() {
		h.respondError(w, http.StatusNotFound, "no artwork")
		return
	}

	f, err := os.Open(track.ArtworkPath)
	if err != nil {
		h.respondError(w, http.StatusNotFound, "no artwork")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if track.ArtworkMIME != "" {
		w.Header().Set("Content-Type", track.ArtworkMIME)
	}
	http.ServeContent(w, r, "", info.ModTime(), f)
}

func (h *Handler) ownedTrack(w http.ResponseWriter, r *http.Request) (*domain.Track, bool) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return nil, false
	}

	track, found, err := h.Store.GetTrack(id)
	if err != nil {
		h.respondServiceError(w, err)
		return nil, false
	}
	if !found {
		h.respondError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	if track.UserID != h.caller(r).ID {
		h.respondError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return track, true
}
