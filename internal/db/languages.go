package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karim/resume-builder/internal/types"
)

// ListLanguages returns all of a user's languages in insertion order
func (db *DB) ListLanguages(ctx context.Context, userID uuid.UUID) ([]types.Language, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, proficiency, is_native
		 FROM languages WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	defer rows.Close()

	var languages []types.Language
	for rows.Next() {
		var l types.Language
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Proficiency, &l.IsNative); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}
	return languages, nil
}

// CreateLanguage inserts a new language and returns it with its ID
func (db *DB) CreateLanguage(ctx context.Context, userID uuid.UUID, l *types.Language) (*types.Language, error) {
	var created types.Language
	err := db.pool.QueryRow(ctx,
		`INSERT INTO languages (user_id, name, proficiency, is_native)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, name, proficiency, is_native`,
		userID, l.Name, l.Proficiency, l.IsNative,
	).Scan(&created.ID, &created.UserID, &created.Name, &created.Proficiency, &created.IsNative)
	if err != nil {
		return nil, fmt.Errorf("failed to create language: %w", err)
	}
	return &created, nil
}

// UpdateLanguage replaces a language's fields; returns nil when the entry
// does not exist or belongs to another user
func (db *DB) UpdateLanguage(ctx context.Context, userID, id uuid.UUID, l *types.Language) (*types.Language, error) {
	var updated types.Language
	err := db.pool.QueryRow(ctx,
		`UPDATE languages SET name = $3, proficiency = $4, is_native = $5
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, proficiency, is_native`,
		id, userID, l.Name, l.Proficiency, l.IsNative,
	).Scan(&updated.ID, &updated.UserID, &updated.Name, &updated.Proficiency, &updated.IsNative)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update language: %w", err)
	}
	return &updated, nil
}

// DeleteLanguage removes a language scoped to its owner
func (db *DB) DeleteLanguage(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM languages WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete language: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
