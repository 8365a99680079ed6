package roster

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrFull is returned by AddMember when the roster already holds the
// maximum team size.
var ErrFull = fmt.Errorf("team roster is full")

// AddMember inserts a new member, enforcing the team size cap. Adding
// a name that is already on the roster is an error.
func (db *DB) AddMember(ctx context.Context, name string, maxSize int) (*Member, error) {
	count, err := db.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= maxSize {
		return nil, ErrFull
	}

	m := &Member{
		ID:      uuid.New().String(),
		Name:    name,
		AddedAt: time.Now(),
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO members (id, name, added_at) VALUES (?, ?, ?)
	`, m.ID, m.Name, m.AddedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("already selected: %s", name)
		}
		return nil, err
	}

	return m, nil
}

// RemoveMember deletes a member by name (case-insensitive)
func (db *DB) RemoveMember(ctx context.Context, name string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM members WHERE name = ? COLLATE NOCASE`, name)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("not on the roster: %s", name)
	}
	return nil
}

// GetMember retrieves a member by name (case-insensitive)
func (db *DB) GetMember(ctx context.Context, name string) (*Member, error) {
	m := &Member{}

	err := db.QueryRowContext(ctx, `
		SELECT id, name, added_at FROM members WHERE name = ? COLLATE NOCASE
	`, name).Scan(&m.ID, &m.Name, &m.AddedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

// ListMembers retrieves all members in selection order
func (db *DB) ListMembers(ctx context.Context) ([]Member, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, added_at FROM members ORDER BY added_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		m := Member{}
		if err := rows.Scan(&m.ID, &m.Name, &m.AddedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// Count returns the number of selected members
func (db *DB) Count(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&count)
	return count, err
}

// Clear removes every member from the roster
func (db *DB) Clear(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `DELETE FROM members`)
	return err
}

// AddMembers inserts several members in one transaction, enforcing the
// team size cap across the whole batch.
func (db *DB) AddMembers(ctx context.Context, names []string, maxSize int) error {
	count, err := db.Count(ctx)
	if err != nil {
		return err
	}
	if count+len(names) > maxSize {
		return ErrFull
	}

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		for _, name := range names {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO members (id, name, added_at) VALUES (?, ?, ?)
			`, uuid.New().String(), name, time.Now())
			if err != nil {
				if isUniqueViolation(err) {
					return fmt.Errorf("already selected: %s", name)
				}
				return err
			}
		}
		return nil
	})
}

// isUniqueViolation detects the sqlite unique-constraint error without
// depending on driver error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
