// Package store defines the persistence contract for the vault's five
// record types. Implementations report absence with a boolean instead of an
// error; mapping absence to status codes is the caller's job.
package store

import "github.com/cesargomez89/audiovault/internal/domain"

// Store is the entity store. Create methods assign the next id for the
// entity type (monotonically increasing, never reused) and fill it in on the
// passed record. Update methods merge only the non-nil patch fields and
// return the updated record. Deleting a playlist or track removes all of its
// playlist-track links in the same logical operation.
type Store interface {
	CreateUser(u *domain.User) error
	GetUser(id int) (*domain.User, bool, error)
	GetUserByUsername(username string) (*domain.User, bool, error)
	UpdateUser(id int, patch domain.UserPatch) (*domain.User, bool, error)

	CreateCategory(c *domain.Category) error
	GetCategory(id int) (*domain.Category, bool, error)
	ListCategoriesByOwner(userID int) ([]domain.Category, error)
	UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, bool, error)
	DeleteCategory(id int) (bool, error)

	CreatePlaylist(p *domain.Playlist) error
	GetPlaylist(id int) (*domain.Playlist, bool, error)
	ListPlaylistsByOwner(userID int) ([]domain.Playlist, error)
	UpdatePlaylist(id int, patch domain.PlaylistPatch) (*domain.Playlist, bool, error)
	DeletePlaylist(id int) (bool, error)

	CreateTrack(t *domain.Track) error
	GetTrack(id int) (*domain.Track, bool, error)
	ListTracksByOwner(userID int) ([]domain.Track, error)
	UpdateTrack(id int, patch domain.TrackPatch) (*domain.Track, bool, error)
	DeleteTrack(id int) (bool, error)

	// ListLinks returns a playlist's links sorted ascending by position;
	// ties keep a stable order by link id.
	ListLinks(playlistID int) ([]domain.PlaylistTrack, error)
	GetLink(playlistID, trackID int) (*domain.PlaylistTrack, bool, error)
	CreateLink(l *domain.PlaylistTrack) error
	UpdateLinkPosition(playlistID, trackID, position int) (bool, error)
	DeleteLink(playlistID, trackID int) (bool, error)

	Close() error
}
