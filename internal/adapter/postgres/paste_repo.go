package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pastebin/internal/domain"
)

// Append inserts a paste for the owner. The seq column preserves insertion
// order independently of timestamps.
func (d *DB) Append(ctx context.Context, owner string, p domain.Paste) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO pastes (id, owner, text, created_at) VALUES ($1, $2, $3, $4)",
		p.ID, owner, p.Text, p.CreatedAt,
	)
	return err
}

// FindByID looks the paste up by its id directly; the table is keyed on it,
// so this backend skips the linear scan the file store does.
func (d *DB) FindByID(ctx context.Context, id string) (string, *domain.Paste, error) {
	var owner string
	var p domain.Paste
	err := d.sql.QueryRowContext(ctx,
		"SELECT owner, id, text, created_at FROM pastes WHERE id = $1",
		id,
	).Scan(&owner, &p.ID, &p.Text, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	return owner, &p, nil
}

// ListByOwner returns the owner's pastes in insertion order.
func (d *DB) ListByOwner(ctx context.Context, owner string) ([]domain.Paste, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, text, created_at FROM pastes WHERE owner = $1 ORDER BY seq",
		owner,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Paste
	for rows.Next() {
		var p domain.Paste
		if err := rows.Scan(&p.ID, &p.Text, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
