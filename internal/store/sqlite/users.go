package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cesargomez89/audiovault/internal/domain"
)

func (db *DB) CreateUser(u *domain.User) error {
	query := `INSERT INTO users (username, password, email, phone, full_name, avatar_color)
	VALUES (:username, :password, :email, :phone, :full_name, :avatar_color) RETURNING id`

	rows, err := db.NamedQuery(query, u)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	defer rows.Close() //nolint:errcheck // deferred cleanup

	if rows.Next() {
		if err := rows.Scan(&u.ID); err != nil {
			return fmt.Errorf("failed to scan user id: %w", err)
		}
	} else if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating returning rows: %w", err)
	}

	return nil
}

func (db *DB) GetUser(id int) (*domain.User, bool, error) {
	var u domain.User
	err := db.Get(&u, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &u, true, nil
}

func (db *DB) GetUserByUsername(username string) (*domain.User, bool, error) {
	var u domain.User
	err := db.Get(&u, `SELECT * FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &u, true, nil
}

func (db *DB) UpdateUser(id int, patch domain.UserPatch) (*domain.User, bool, error) {
	set := setClauses{}
	set.addString("username", patch.Username)
	set.addString("password", patch.Password)
	set.addString("email", patch.Email)
	set.addString("phone", patch.Phone)
	set.addString("full_name", patch.FullName)
	set.addString("avatar_color", patch.AvatarColor)

	if ok, err := db.applyUpdate("users", id, set); err != nil || !ok {
		return nil, false, err
	}
	return db.GetUser(id)
}
