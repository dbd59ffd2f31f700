package app

import (
	"fmt"

	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/store"
)

// PlaylistService maintains the ordered join between playlists and tracks.
// Positions are plain integers: gaps and collisions are allowed, and no
// operation ever renumbers links it was not asked about.
type PlaylistService struct {
	Store store.Store
}

func NewPlaylistService(s store.Store) *PlaylistService {
	return &PlaylistService{Store: s}
}

// ListOrdered returns a playlist's tracks with their positions, ascending by
// position. An unknown playlist id yields an empty sequence.
func (s *PlaylistService) ListOrdered(playlistID int) ([]domain.PlaylistEntry, error) {
	links, err := s.Store.ListLinks(playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist links: %w", err)
	}

	entries := make([]domain.PlaylistEntry, 0, len(links))
	for _, l := range links {
		track, ok, err := s.Store.GetTrack(l.TrackID)
		if err != nil {
			return nil, fmt.Errorf("failed to load track %d: %w", l.TrackID, err)
		}
		if !ok {
			// Cascade deletes keep links and tracks in sync; a dangling
			// link is skipped rather than failing the whole listing.
			continue
		}
		entries = append(entries, domain.PlaylistEntry{Track: *track, Position: l.Position})
	}
	return entries, nil
}

// Add links a track into a playlist at the next free position (max + 1, or 0
// for an empty playlist). Adding an already-linked track returns the
// existing link unchanged.
func (s *PlaylistService) Add(playlistID, trackID int) (*domain.PlaylistTrack, error) {
	if _, ok, err := s.Store.GetPlaylist(playlistID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrNotFound
	}
	if _, ok, err := s.Store.GetTrack(trackID); err != nil {
		return nil, err
	} else if !ok {
		return nil, domain.ErrNotFound
	}

	if existing, ok, err := s.Store.GetLink(playlistID, trackID); err != nil {
		return nil, err
	} else if ok {
		return existing, nil
	}

	links, err := s.Store.ListLinks(playlistID)
	if err != nil {
		return nil, err
	}
	position := 0
	if len(links) > 0 {
		// Links come back sorted ascending by position.
		position = links[len(links)-1].Position + 1
	}

	link := &domain.PlaylistTrack{
		PlaylistID: playlistID,
		TrackID:    trackID,
		Position:   position,
	}
	if err := s.Store.CreateLink(link); err != nil {
		return nil, err
	}
	return link, nil
}

// Remove unlinks a track from a playlist; false when no such link exists.
func (s *PlaylistService) Remove(playlistID, trackID int) (bool, error) {
	return s.Store.DeleteLink(playlistID, trackID)
}

// Reposition overwrites one link's position. Other links are left alone, so
// callers own any renumbering scheme they want.
func (s *PlaylistService) Reposition(playlistID, trackID, position int) (bool, error) {
	return s.Store.UpdateLinkPosition(playlistID, trackID, position)
}
