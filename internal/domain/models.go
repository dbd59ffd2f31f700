package domain

import "time"

// User is the owner of everything else in the vault. The password is only
// ever used server-side and must never appear in a response body.
type User struct {
	ID          int    `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	Password    string `json:"-" db:"password"`
	Email       string `json:"email,omitempty" db:"email"`
	Phone       string `json:"phone,omitempty" db:"phone"`
	FullName    string `json:"full_name,omitempty" db:"full_name"`
	AvatarColor string `json:"avatar_color,omitempty" db:"avatar_color"`
}

// Category is a user-owned tag for tracks, independent of playlists.
// Deleting a category leaves its tracks untouched.
type Category struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Icon   string `json:"icon" db:"icon"`
	Color  string `json:"color" db:"color"`
	UserID int    `json:"user_id" db:"user_id"`
}

// Playlist is a named, user-owned ordered collection of tracks.
type Playlist struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Color  string `json:"color" db:"color"`
	Icon   string `json:"icon" db:"icon"`
	UserID int    `json:"user_id" db:"user_id"`
}

// Track is a single stored recording. FilePath and ArtworkPath are server
// filesystem locations and are not exposed to clients.
type Track struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	UserID      int       `json:"user_id" db:"user_id"`
	CategoryID  *int      `json:"category_id,omitempty" db:"category_id"`
	Duration    int       `json:"duration" db:"duration"` // seconds
	MediaType   string    `json:"media_type" db:"media_type"`
	FilePath    string    `json:"-" db:"file_path"`
	ArtworkPath string    `json:"-" db:"artwork_path"`
	ArtworkMIME string    `json:"-" db:"artwork_mime"`
	FileHash    string    `json:"-" db:"file_hash"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// HasArtwork reports whether cover art was extracted for this track.
func (t *Track) HasArtwork() bool {
	return t.ArtworkPath != ""
}

// PlaylistTrack links a track into a playlist at an integer position.
// The (PlaylistID, TrackID) pair is unique; positions need not be contiguous.
type PlaylistTrack struct {
	ID         int `json:"id" db:"id"`
	PlaylistID int `json:"playlist_id" db:"playlist_id"`
	TrackID    int `json:"track_id" db:"track_id"`
	Position   int `json:"position" db:"position"`
}

// PlaylistEntry is a track together with its position inside one playlist,
// as returned by the ordered playlist listing.
type PlaylistEntry struct {
	Track
	Position int `json:"position"`
}

// UserPatch carries a partial update; nil fields are left unchanged.
type UserPatch struct {
	Username    *string
	Password    *string
	Email       *string
	Phone       *string
	FullName    *string
	AvatarColor *string
}

type CategoryPatch struct {
	Name  *string
	Icon  *string
	Color *string
}

type PlaylistPatch struct {
	Name  *string
	Color *string
	Icon  *string
}

type TrackPatch struct {
	Name       *string
	CategoryID *int
	Duration   *int
}
