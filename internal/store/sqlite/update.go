package sqlite

import (
	"fmt"
	"strings"
)

// setClauses accumulates SET fragments for a partial update. Column names
// only ever come from fixed call sites, never from request input.
type setClauses struct {
	cols []string
	args []interface{}
}

func (s *setClauses) addString(col string, v *string) {
	if v == nil {
		return
	}
	s.cols = append(s.cols, col+" = ?")
	s.args = append(s.args, *v)
}

func (s *setClauses) addInt(col string, v *int) {
	if v == nil {
		return
	}
	s.cols = append(s.cols, col+" = ?")
	s.args = append(s.args, *v)
}

// applyUpdate runs the accumulated partial update against one row and
// reports whether the row existed. An empty patch is a no-op that still
// reports existence, matching the merge semantics of the store contract.
func (db *DB) applyUpdate(table string, id int, set setClauses) (bool, error) {
	if len(set.cols) == 0 {
		var n int
		if err := db.Get(&n, "SELECT COUNT(*) FROM "+table+" WHERE id = ?", id); err != nil {
			return false, err
		}
		return n > 0, nil
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(set.cols, ", "))
	result, err := db.Exec(query, append(set.args, id)...)
	if err != nil {
		return false, fmt.Errorf("failed to update %s: %w", table, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
