package memory

import "github.com/cesargomez89/audiovault/internal/domain"

func (s *Store) CreatePlaylist(p *domain.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPlaylistID++
	p.ID = s.nextPlaylistID
	s.playlists[p.ID] = *p
	return nil
}

func (s *Store) GetPlaylist(id int) (*domain.Playlist, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.playlists[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (s *Store) ListPlaylistsByOwner(userID int) ([]domain.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Playlist{}
	for _, p := range s.playlists {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) UpdatePlaylist(id int, patch domain.PlaylistPatch) (*domain.Playlist, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlists[id]
	if !ok {
		return nil, false, nil
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	if patch.Icon != nil {
		p.Icon = *patch.Icon
	}

	s.playlists[id] = p
	return &p, true, nil
}

// DeletePlaylist removes the playlist and all links that reference it.
// Links are collected first, then removed, to avoid mutating the map while
// ranging over it.
func (s *Store) DeletePlaylist(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[id]; !ok {
		return false, nil
	}

	var doomed []int
	for linkID, l := range s.links {
		if l.PlaylistID == id {
			doomed = append(doomed, linkID)
		}
	}
	for _, linkID := range doomed {
		delete(s.links, linkID)
	}

	delete(s.playlists, id)
	return true, nil
}
