package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cesargomez89/audiovault/internal/domain"
)

func (db *DB) CreateTrack(t *domain.Track) error {
	t.CreatedAt = time.Now()

	query := `INSERT INTO tracks (
		name, user_id, category_id, duration, media_type,
		file_path, artwork_path, artwork_mime, file_hash, created_at
	) VALUES (
		:name, :user_id, :category_id, :duration, :media_type,
		:file_path, :artwork_path, :artwork_mime, :file_hash, :created_at
	) RETURNING id`

	rows, err := db.NamedQuery(query, t)
	if err != nil {
		return fmt.Errorf("failed to create track: %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&t.ID); err != nil {
			return fmt.Errorf("failed to scan track id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) GetTrack(id int) (*domain.Track, bool, error) {
	var t domain.Track
	err := db.Get(&t, `SELECT * FROM tracks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &t, true, nil
}

func (db *DB) ListTracksByOwner(userID int) ([]domain.Track, error) {
	out := []domain.Track{}
	err := db.Select(&out, `SELECT * FROM tracks WHERE user_id = ?`, userID)
	return out, err
}

func (db *DB) UpdateTrack(id int, patch domain.TrackPatch) (*domain.Track, bool, error) {
	set := setClauses{}
	set.addString("name", patch.Name)
	set.addInt("category_id", patch.CategoryID)
	set.addInt("duration", patch.Duration)

	if ok, err := db.applyUpdate("tracks", id, set); err != nil || !ok {
		return nil, false, err
	}
	return db.GetTrack(id)
}

// DeleteTrack removes the track and its links in one transaction.
func (db *DB) DeleteTrack(id int) (bool, error) {
	tx, err := db.Beginx()
	if err != nil {
		return false, err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM playlist_tracks WHERE track_id = ?`, id); err != nil {
		return false, err
	}

	result, err := tx.Exec(`DELETE FROM tracks WHERE id = ?`, id)
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
