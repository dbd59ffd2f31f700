package memory

import (
	"testing"

	"github.com/cesargomez89/audiovault/internal/domain"
)

func TestStore_UserCRUD(t *testing.T) {
	s := New()

	u := &domain.User{Username: "alex", Password: "secret"}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("Expected first user id 1, got %d", u.ID)
	}

	fetched, ok, err := s.GetUserByUsername("alex")
	if err != nil || !ok {
		t.Fatalf("GetUserByUsername failed: ok=%v err=%v", ok, err)
	}
	if fetched.ID != u.ID {
		t.Errorf("Expected id %d, got %d", u.ID, fetched.ID)
	}

	email := "alex@example.com"
	updated, ok, err := s.UpdateUser(u.ID, domain.UserPatch{Email: &email})
	if err != nil || !ok {
		t.Fatalf("UpdateUser failed: ok=%v err=%v", ok, err)
	}
	if updated.Email != email {
		t.Errorf("Expected email %s, got %s", email, updated.Email)
	}
	if updated.Username != "alex" {
		t.Errorf("Partial update must not clear username, got %q", updated.Username)
	}

	if _, ok, _ := s.GetUser(99); ok {
		t.Error("Expected absence for unknown user id")
	}
}

func TestStore_IDsMonotonicPerOwner(t *testing.T) {
	s := New()

	owner := &domain.User{Username: "owner"}
	other := &domain.User{Username: "other"}
	if err := s.CreateUser(owner); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if err := s.CreateUser(other); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	const n = 5
	prev := 0
	for i := 0; i < n; i++ {
		c := &domain.Category{Name: "cat", UserID: owner.ID}
		if err := s.CreateCategory(c); err != nil {
			t.Fatalf("CreateCategory failed: %v", err)
		}
		if c.ID <= prev {
			t.Errorf("Expected strictly increasing ids, got %d after %d", c.ID, prev)
		}
		prev = c.ID
	}

	mine, err := s.ListCategoriesByOwner(owner.ID)
	if err != nil {
		t.Fatalf("ListCategoriesByOwner failed: %v", err)
	}
	if len(mine) != n {
		t.Errorf("Expected %d categories for owner, got %d", n, len(mine))
	}

	theirs, err := s.ListCategoriesByOwner(other.ID)
	if err != nil {
		t.Fatalf("ListCategoriesByOwner failed: %v", err)
	}
	if len(theirs) != 0 {
		t.Errorf("Expected no categories for other user, got %d", len(theirs))
	}
}

func TestStore_TrackCreateStampsCreatedAt(t *testing.T) {
	s := New()

	tr := &domain.Track{Name: "memo", UserID: 1, Duration: 42, FilePath: "/tmp/x.mp3"}
	if err := s.CreateTrack(tr); err != nil {
		t.Fatalf("CreateTrack failed: %v", err)
	}
	if tr.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be stamped on create")
	}

	name := "renamed"
	updated, ok, err := s.UpdateTrack(tr.ID, domain.TrackPatch{Name: &name})
	if err != nil || !ok {
		t.Fatalf("UpdateTrack failed: ok=%v err=%v", ok, err)
	}
	if !updated.CreatedAt.Equal(tr.CreatedAt) {
		t.Error("CreatedAt must be immutable across updates")
	}
}

func TestStore_DeletePlaylistCascadesLinks(t *testing.T) {
	s := New()

	p := &domain.Playlist{Name: "Demo", UserID: 1}
	if err := s.CreatePlaylist(p); err != nil {
		t.Fatalf("CreatePlaylist failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		tr := &domain.Track{Name: "t", UserID: 1}
		if err := s.CreateTrack(tr); err != nil {
			t.Fatalf("CreateTrack failed: %v", err)
		}
		if err := s.CreateLink(&domain.PlaylistTrack{PlaylistID: p.ID, TrackID: tr.ID, Position: i}); err != nil {
			t.Fatalf("CreateLink failed: %v", err)
		}
	}

	removed, err := s.DeletePlaylist(p.ID)
	if err != nil || !removed {
		t.Fatalf("DeletePlaylist failed: removed=%v err=%v", removed, err)
	}

	links, err := s.ListLinks(p.ID)
	if err != nil {
		t.Fatalf("ListLinks failed: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("Expected no links after playlist delete, got %d", len(links))
	}

	// Second delete reports absence.
	removed, err = s.DeletePlaylist(p.ID)
	if err != nil {
		t.Fatalf("DeletePlaylist failed: %v", err)
	}
	if removed {
		t.Error("Expected second delete to report false")
	}
}

func TestStore_DeleteTrackCascadesLinks(t *testing.T) {
	s := New()

	p1 := &domain.Playlist{Name: "One", UserID: 1}
	p2 := &domain.Playlist{Name: "Two", UserID: 1}
	tr := &domain.Track{Name: "shared", UserID: 1}
	if err := s.CreatePlaylist(p1); err != nil {
		t.Fatal(err)
	}
	if err := s.CreatePlaylist(p2); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateTrack(tr); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateLink(&domain.PlaylistTrack{PlaylistID: p1.ID, TrackID: tr.ID, Position: 0}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateLink(&domain.PlaylistTrack{PlaylistID: p2.ID, TrackID: tr.ID, Position: 0}); err != nil {
		t.Fatal(err)
	}

	removed, err := s.DeleteTrack(tr.ID)
	if err != nil || !removed {
		t.Fatalf("DeleteTrack failed: removed=%v err=%v", removed, err)
	}

	for _, pid := range []int{p1.ID, p2.ID} {
		links, err := s.ListLinks(pid)
		if err != nil {
			t.Fatalf("ListLinks failed: %v", err)
		}
		if len(links) != 0 {
			t.Errorf("Expected playlist %d to lose its link, got %d links", pid, len(links))
		}
	}
}

func TestStore_LinkOrderingAndReposition(t *testing.T) {
	s := New()

	if err := s.CreateLink(&domain.PlaylistTrack{PlaylistID: 1, TrackID: 10, Position: 5}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateLink(&domain.PlaylistTrack{PlaylistID: 1, TrackID: 11, Position: 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.CreateLink(&domain.PlaylistTrack{PlaylistID: 2, TrackID: 10, Position: 0}); err != nil {
		t.Fatal(err)
	}

	links, err := s.ListLinks(1)
	if err != nil {
		t.Fatalf("ListLinks failed: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("Expected 2 links for playlist 1, got %d", len(links))
	}
	if links[0].TrackID != 11 || links[1].TrackID != 10 {
		t.Errorf("Expected ascending position order, got %v", links)
	}

	ok, err := s.UpdateLinkPosition(1, 10, 1)
	if err != nil || !ok {
		t.Fatalf("UpdateLinkPosition failed: ok=%v err=%v", ok, err)
	}
	links, _ = s.ListLinks(1)
	if links[0].TrackID != 10 {
		t.Errorf("Expected repositioned track first, got %v", links)
	}

	// Reposition never renumbers siblings.
	if links[1].Position != 2 {
		t.Errorf("Expected sibling position untouched, got %d", links[1].Position)
	}

	if ok, _ := s.UpdateLinkPosition(1, 999, 0); ok {
		t.Error("Expected reposition of unknown link to report false")
	}
	if ok, _ := s.DeleteLink(1, 999); ok {
		t.Error("Expected delete of unknown link to report false")
	}
}
