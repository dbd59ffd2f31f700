package memory

import (
	"time"

	"github.com/cesargomez89/audiovault/internal/domain"
)

func (s *Store) CreateTrack(t *domain.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTrackID++
	t.ID = s.nextTrackID
	t.CreatedAt = time.Now()
	s.tracks[t.ID] = *t
	return nil
}

func (s *Store) GetTrack(id int) (*domain.Track, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tracks[id]
	if !ok {
		return nil, false, nil
	}
	return &t, true, nil
}

func (s *Store) ListTracksByOwner(userID int) ([]domain.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Track{}
	for _, t := range s.tracks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) UpdateTrack(id int, patch domain.TrackPatch) (*domain.Track, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tracks[id]
	if !ok {
		return nil, false, nil
	}

	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.CategoryID != nil {
		t.CategoryID = patch.CategoryID
	}
	if patch.Duration != nil {
		t.Duration = *patch.Duration
	}

	s.tracks[id] = t
	return &t, true, nil
}

// DeleteTrack removes the track and all links that reference it, in the same
// collect-then-remove fashion as DeletePlaylist.
func (s *Store) DeleteTrack(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tracks[id]; !ok {
		return false, nil
	}

	var doomed []int
	for linkID, l := range s.links {
		if l.TrackID == id {
			doomed = append(doomed, linkID)
		}
	}
	for _, linkID := range doomed {
		delete(s.links, linkID)
	}

	delete(s.tracks, id)
	return true, nil
}
