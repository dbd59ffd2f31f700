package app

import (
	"errors"
	"testing"

	"github.com/cesargomez89/audiovault/internal/domain"
	"github.com/cesargomez89/audiovault/internal/store/memory"
)

func setupPlaylistService(t *testing.T) (*PlaylistService, *memory.Store) {
	t.Helper()
	s := memory.New()
	return NewPlaylistService(s), s
}

func seedPlaylistAndTracks(t *testing.T, s *memory.Store, n int) (int, []int) {
	t.Helper()

	p := &domain.Playlist{Name: "Demo", UserID: 1}
	if err := s.CreatePlaylist(p); err != nil {
		t.Fatalf("CreatePlaylist failed: %v", err)
	}

	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		tr := &domain.Track{Name: "take", UserID: 1, Duration: 42}
		if err := s.CreateTrack(tr); err != nil {
			t.Fatalf("CreateTrack failed: %v", err)
		}
		ids = append(ids, tr.ID)
	}
	return p.ID, ids
}

func TestPlaylistService_AddAssignsSequentialPositions(t *testing.T) {
	svc, s := setupPlaylistService(t)
	playlistID, trackIDs := seedPlaylistAndTracks(t, s, 2)

	first, err := svc.Add(playlistID, trackIDs[0])
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if first.Position != 0 {
		t.Errorf("Expected first link at position 0, got %d", first.Position)
	}

	second, err := svc.Add(playlistID, trackIDs[1])
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if second.Position != 1 {
		t.Errorf("Expected second link at position 1, got %d", second.Position)
	}
}

func TestPlaylistService_AddIsIdempotent(t *testing.T) {
	svc, s := setupPlaylistService(t)
	playlistID, trackIDs := seedPlaylistAndTracks(t, s, 1)

	first, err := svc.Add(playlistID, trackIDs[0])
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	again, err := svc.Add(playlistID, trackIDs[0])
	if err != nil {
		t.Fatalf("Second add failed: %v", err)
	}
	if again.ID != first.ID || again.Position != first.Position {
		t.Errorf("Expected the existing link back, got %+v vs %+v", again, first)
	}

	entries, err := svc.ListOrdered(playlistID)
	if err != nil {
		t.Fatalf("ListOrdered failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one entry, got %d", len(entries))
	}
}

func TestPlaylistService_AddUnknownIDs(t *testing.T) {
	svc, s := setupPlaylistService(t)
	playlistID, trackIDs := seedPlaylistAndTracks(t, s, 1)

	if _, err := svc.Add(999, trackIDs[0]); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown playlist, got %v", err)
	}
	if _, err := svc.Add(playlistID, 999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown track, got %v", err)
	}
}

func TestPlaylistService_ListOrdered(t *testing.T) {
	svc, s := setupPlaylistService(t)
	playlistID, trackIDs := seedPlaylistAndTracks(t, s, 3)

	for _, id := range trackIDs {
		if _, err := svc.Add(playlistID, id); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	// Move the first track to the back; siblings keep their positions.
	if ok, err := svc.Reposition(playlistID, trackIDs[0], 9); err != nil || !ok {
		t.Fatalf("Reposition failed: ok=%v err=%v", ok, err)
	}

	entries, err := svc.ListOrdered(playlistID)
	if err != nil {
		t.Fatalf("ListOrdered failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[2].ID != trackIDs[0] || entries[2].Position != 9 {
		t.Errorf("Expected repositioned track last at position 9, got track %d at %d",
			entries[2].ID, entries[2].Position)
	}
	if entries[0].Position != 1 || entries[1].Position != 2 {
		t.Errorf("Expected untouched sibling positions 1 and 2, got %d and %d",
			entries[0].Position, entries[1].Position)
	}
}

func TestPlaylistService_RemoveAndDeletedPlaylist(t *testing.T) {
	svc, s := setupPlaylistService(t)
	playlistID, trackIDs := seedPlaylistAndTracks(t, s, 2)

	for _, id := range trackIDs {
		if _, err := svc.Add(playlistID, id); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	ok, err := svc.Remove(playlistID, trackIDs[0])
	if err != nil || !ok {
		t.Fatalf("Remove failed: ok=%v err=%v", ok, err)
	}
	if ok, _ := svc.Remove(playlistID, trackIDs[0]); ok {
		t.Error("Expected second remove to report false")
	}

	if _, err := s.DeletePlaylist(playlistID); err != nil {
		t.Fatalf("DeletePlaylist failed: %v", err)
	}
	entries, err := svc.ListOrdered(playlistID)
	if err != nil {
		t.Fatalf("ListOrdered failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty sequence for deleted playlist, got %d entries", len(entries))
	}
}
