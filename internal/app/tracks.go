package app

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/cesargomez89/audiovault/internal/constants"
	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/logger"
	"github.com/cesargomez89/audiovault/internal/storage"
	"github.com/cesargomez89/audiovault/internal/store"
	"github.com/cesargomez89/audiovault/internal/tagging"
)

// Upload rejections. Both are caller-correctable.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file exceeds the upload size limit")
)

// UploadInput is the parsed multipart payload for a new track.
type UploadInput struct {
	Name       string
	Duration   int
	CategoryID *int
	MediaType  string // as declared by the client
	Body       io.Reader
}

// TrackService owns the audio files behind track records: it writes uploads
// under DataDir, probes them for tags, and cleans up on delete.
type TrackService struct {
	Store    store.Store
	DataDir  string
	MaxBytes int64
	Logger   *logger.Logger
}

func NewTrackService(s store.Store, dataDir string, maxBytes int64, log *logger.Logger) *TrackService {
	return &TrackService{
		Store:    s,
		DataDir:  dataDir,
		MaxBytes: maxBytes,
		Logger:   log.WithComponent("tracks"),
	}
}

// Upload validates the declared media type against the allow-list, persists
// the bytes under a unique name, and creates the track record. The record is
// only created once the file is fully on disk.
func (s *TrackService) Upload(owner *domain.User, in UploadInput) (*domain.Track, error) {
	mediaType, _, err := mime.ParseMediaType(in.MediaType)
	if err != nil {
		return nil, ErrUnsupportedMediaType
	}
	ext, ok := constants.AudioExtensions[mediaType]
	if !ok {
		return nil, ErrUnsupportedMediaType
	}

	if err := storage.EnsureDir(s.DataDir); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	path := filepath.Join(s.DataDir, storage.UniqueName(ext))
	written, err := s.writeUpload(path, in.Body)
	if err != nil {
		return nil, err
	}

	tags, err := tagging.Probe(path)
	if err != nil {
		s.Logger.Warn("Failed to probe uploaded file", "path", path, "error", err)
		tags = &tagging.Tags{}
	}

	name := in.Name
	if name == "" {
		name = tags.Title
	}
	if name == "" {
		name = "Untitled recording"
	}

	artworkPath := ""
	if len(tags.Artwork) > 0 {
		artworkPath = path + ".art"
		if err := storage.WriteFile(artworkPath, tags.Artwork); err != nil {
			s.Logger.Warn("Failed to store artwork", "path", artworkPath, "error", err)
			artworkPath = ""
		}
	}

	hash, err := storage.HashFile(path)
	if err != nil {
		s.Logger.Warn("Failed to hash uploaded file", "path", path, "error", err)
	}

	track := &domain.Track{
		Name:        name,
		UserID:      owner.ID,
		CategoryID:  in.CategoryID,
		Duration:    in.Duration,
		MediaType:   mediaType,
		FilePath:    path,
		ArtworkPath: artworkPath,
		ArtworkMIME: tags.ArtworkMIME,
		FileHash:    hash,
	}
	if err := s.Store.CreateTrack(track); err != nil {
		s.cleanupFiles(path, artworkPath)
		return nil, fmt.Errorf("failed to create track record: %w", err)
	}

	s.Logger.WithTrack(track.ID, track.Name).Info("Track uploaded", "bytes", written, "media_type", mediaType)
	return track, nil
}

// writeUpload streams the body to path, enforcing the size cap. The partial
// file is removed on any failure.
func (s *TrackService) writeUpload(path string, body io.Reader) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create audio file: %w", err)
	}

	// Read one byte past the cap so an exactly-at-limit upload passes.
	written, err := io.Copy(dst, io.LimitReader(body, s.MaxBytes+1))
	if cErr := dst.Close(); err == nil {
		err = cErr
	}
	if err != nil {
		s.cleanupFiles(path, "")
		return 0, fmt.Errorf("failed to store upload: %w", err)
	}
	if written > s.MaxBytes {
		s.cleanupFiles(path, "")
		return 0, ErrFileTooLarge
	}
	return written, nil
}

// Delete removes the track record and then tries to delete the backing
// files. File errors are logged, never surfaced: the record is gone either
// way.
func (s *TrackService) Delete(track *domain.Track) (bool, error) {
	removed, err := s.Store.DeleteTrack(track.ID)
	if err != nil || !removed {
		return removed, err
	}

	s.cleanupFiles(track.FilePath, track.ArtworkPath)
	s.Logger.WithTrack(track.ID, track.Name).Info("Track deleted")
	return true, nil
}

func (s *TrackService) cleanupFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := storage.RemoveFile(p); err != nil && !storage.IsNotExist(err) {
			s.Logger.Error("Failed to remove file", "path", p, "error", err)
		}
	}
}
