package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cesargomez89/audiovault/internal/domain"
)

func (db *DB) CreateCategory(c *domain.Category) error {
	query := `INSERT INTO categories (name, icon, color, user_id)
	VALUES (:name, :icon, :color, :user_id) RETURNING id`

	rows, err := db.NamedQuery(query, c)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&c.ID); err != nil {
			return fmt.Errorf("failed to scan category id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) GetCategory(id int) (*domain.Category, bool, error) {
	var c domain.Category
	err := db.Get(&c, `SELECT * FROM categories WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

func (db *DB) ListCategoriesByOwner(userID int) ([]domain.Category, error) {
	out := []domain.Category{}
	err := db.Select(&out, `SELECT * FROM categories WHERE user_id = ?`, userID)
	return out, err
}

func (db *DB) UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, bool, error) {
	set := setClauses{}
	set.addString("name", patch.Name)
	set.addString("icon", patch.Icon)
	set.addString("color", patch.Color)

	if ok, err := db.applyUpdate("categories", id, set); err != nil || !ok {
		return nil, false, err
	}
	return db.GetCategory(id)
}

func (db *DB) DeleteCategory(id int) (bool, error) {
	result, err := db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
