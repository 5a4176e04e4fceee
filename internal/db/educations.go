package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karim/resume-builder/internal/types"
)

// ListEducation returns all of a user's education entries, most recent first
func (db *DB) ListEducation(ctx context.Context, userID uuid.UUID) ([]types.Education, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, institution, degree, field, start_date, end_date,
		        currently_studying, description
		 FROM educations WHERE user_id = $1
		 ORDER BY start_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	var entries []types.Education
	for rows.Next() {
		var e types.Education
		if err := rows.Scan(&e.ID, &e.UserID, &e.Institution, &e.Degree, &e.Field,
			&e.StartDate, &e.EndDate, &e.CurrentlyStudying, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// CreateEducation inserts a new education entry and returns it with its ID
func (db *DB) CreateEducation(ctx context.Context, userID uuid.UUID, e *types.Education) (*types.Education, error) {
	var created types.Education
	err := db.pool.QueryRow(ctx,
		`INSERT INTO educations (user_id, institution, degree, field, start_date,
		                         end_date, currently_studying, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, user_id, institution, degree, field, start_date, end_date,
		           currently_studying, description`,
		userID, e.Institution, e.Degree, e.Field, e.StartDate,
		e.EndDate, e.CurrentlyStudying, e.Description,
	).Scan(&created.ID, &created.UserID, &created.Institution, &created.Degree, &created.Field,
		&created.StartDate, &created.EndDate, &created.CurrentlyStudying, &created.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create education: %w", err)
	}
	return &created, nil
}

// UpdateEducation replaces an entry's fields; returns nil when the entry
// does not exist or belongs to another user
func (db *DB) UpdateEducation(ctx context.Context, userID, id uuid.UUID, e *types.Education) (*types.Education, error) {
	var updated types.Education
	err := db.pool.QueryRow(ctx,
		`UPDATE educations SET
		     institution = $3, degree = $4, field = $5, start_date = $6,
		     end_date = $7, currently_studying = $8, description = $9
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, institution, degree, field, start_date, end_date,
		           currently_studying, description`,
		id, userID, e.Institution, e.Degree, e.Field, e.StartDate,
		e.EndDate, e.CurrentlyStudying, e.Description,
	).Scan(&updated.ID, &updated.UserID, &updated.Institution, &updated.Degree, &updated.Field,
		&updated.StartDate, &updated.EndDate, &updated.CurrentlyStudying, &updated.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update education: %w", err)
	}
	return &updated, nil
}

// DeleteEducation removes an entry scoped to its owner
func (db *DB) DeleteEducation(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM educations WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete education: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
