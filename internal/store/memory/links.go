package memory

import (
	"sort"

	"github.com/cesargomez89/audiovault/internal/domain"
)

func (s *Store) ListLinks(playlistID int) ([]domain.PlaylistTrack, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.PlaylistTrack{}
	for _, l := range s.links {
		if l.PlaylistID == playlistID {
			out = append(out, l)
		}
	}

	// Ascending by position; ties keep a stable order by link id.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetLink(playlistID, trackID int) (*domain.PlaylistTrack, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, l := range s.links {
		if l.PlaylistID == playlistID && l.TrackID == trackID {
			return &l, true, nil
		}
	}
	return nil, false, nil
}

func (s *Store) CreateLink(l *domain.PlaylistTrack) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextLinkID++
	l.ID = s.nextLinkID
	s.links[l.ID] = *l
	return nil
}

func (s *Store) UpdateLinkPosition(playlistID, trackID, position int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.links {
		if l.PlaylistID == playlistID && l.TrackID == trackID {
			l.Position = position
			s.links[id] = l
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) DeleteLink(playlistID, trackID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.links {
		if l.PlaylistID == playlistID && l.TrackID == trackID {
			delete(s.links, id)
			return true, nil
		}
	}
	return false, nil
}
