package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cesargomez89/audiovault/internal/domain"
)

func (db *DB) CreatePlaylist(p *domain.Playlist) error {
	query := `INSERT INTO playlists (name, color, icon, user_id)
	VALUES (:name, :color, :icon, :user_id) RETURNING id`

	rows, err := db.NamedQuery(query, p)
	if err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&p.ID); err != nil {
			return fmt.Errorf("failed to scan playlist id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) GetPlaylist(id int) (*domain.Playlist, bool, error) {
	var p domain.Playlist
	err := db.Get(&p, `SELECT * FROM playlists WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func (db *DB) ListPlaylistsByOwner(userID int) ([]domain.Playlist, error) {
	out := []domain.Playlist{}
	err := db.Select(&out, `SELECT * FROM playlists WHERE user_id = ?`, userID)
	return out, err
}

func (db *DB) UpdatePlaylist(id int, patch domain.PlaylistPatch) (*domain.Playlist, bool, error) {
	set := setClauses{}
	set.addString("name", patch.Name)
	set.addString("color", patch.Color)
	set.addString("icon", patch.Icon)

	if ok, err := db.applyUpdate("playlists", id, set); err != nil || !ok {
		return nil, false, err
	}
	return db.GetPlaylist(id)
}

// DeletePlaylist removes the playlist and its links in one transaction.
func (db *DB) DeletePlaylist(id int) (bool, error) {
	tx, err := db.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM playlist_tracks WHERE playlist_id = ?`, id); err != nil {
		return false, err
	}

	result, err := tx.Exec(`DELETE FROM playlists WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return rows > 0, nil
}
