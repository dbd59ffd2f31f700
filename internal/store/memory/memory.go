// Package memory implements the entity store on plain maps with per-type
// id counters. This is the default store: nothing survives a restart.
package memory

import (
	"sync"

	"github.com/cesargomez89/audiovault/internal/domain"
)

// Store holds every record type in its own map keyed by id. net/http serves
// requests concurrently, so individual map operations are guarded by a
// single RWMutex; no cross-operation transactionality is promised.
type Store struct {
	mu sync.RWMutex

	users      map[int]domain.User
	categories map[int]domain.Category
	playlists  map[int]domain.Playlist
	tracks     map[int]domain.Track
	links      map[int]domain.PlaylistTrack

	nextUserID     int
	nextCategoryID int
	nextPlaylistID int
	nextTrackID    int
	nextLinkID     int
}

func New() *Store {
	return &Store{
		users:      make(map[int]domain.User),
		categories: make(map[int]domain.Category),
		playlists:  make(map[int]domain.Playlist),
		tracks:     make(map[int]domain.Track),
		links:      make(map[int]domain.PlaylistTrack),
	}
}

func (s *Store) Close() error {
	return nil
}
