package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cesargomez89/audiovault/internal/domain"
)

func (db *DB) ListLinks(playlistID int) ([]domain.PlaylistTrack, error) {
	out := []domain.PlaylistTrack{}
	err := db.Select(&out,
		`SELECT * FROM playlist_tracks WHERE playlist_id = ? ORDER BY position ASC, id ASC`,
		playlistID)
	return out, err
}

func (db *DB) GetLink(playlistID, trackID int) (*domain.PlaylistTrack, bool, error) {
	var l domain.PlaylistTrack
	err := db.Get(&l,
		`SELECT * FROM playlist_tracks WHERE playlist_id = ? AND track_id = ?`,
		playlistID, trackID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &l, true, nil
}

func (db *DB) CreateLink(l *domain.PlaylistTrack) error {
	query := `INSERT INTO playlist_tracks (playlist_id, track_id, position)
	VALUES (:playlist_id, :track_id, :position) RETURNING id`

	rows, err := db.NamedQuery(query, l)
	if err != nil {
		return fmt.Errorf("failed to create playlist link: %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&l.ID); err != nil {
			return fmt.Errorf("failed to scan link id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) UpdateLinkPosition(playlistID, trackID, position int) (bool, error) {
	result, err := db.Exec(
		`UPDATE playlist_tracks SET position = ? WHERE playlist_id = ? AND track_id = ?`,
		position, playlistID, trackID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (db *DB) DeleteLink(playlistID, trackID int) (bool, error) {
	result, err := db.Exec(
		`DELETE FROM playlist_tracks WHERE playlist_id = ? AND track_id = ?`,
		playlistID, trackID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
