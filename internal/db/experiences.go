package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karim/resume-builder/internal/types"
)

func scanExperience(row pgx.Row) (*types.Experience, error) {
	var e types.Experience
	var city, country string
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.SeniorityLevel, &e.Company,
		&city, &country, &e.StartDate, &e.EndDate, &e.CurrentlyWorking,
		&e.Description, &e.IsVolunteer)
	if err != nil {
		return nil, err
	}
	if city != "" || country != "" {
		e.Location = &types.Address{City: city, Country: country}
	}
	return &e, nil
}

// ListExperiences returns all of a user's work and volunteering entries,
// most recent start date first
func (db *DB) ListExperiences(ctx context.Context, userID uuid.UUID) ([]types.Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, seniority_level, company, city, country,
		        start_date, end_date, currently_working, description, is_volunteer
		 FROM experiences WHERE user_id = $1
		 ORDER BY start_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []types.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		experiences = append(experiences, *e)
	}
	return experiences, nil
}

// GetExperience retrieves one entry scoped to its owner; returns nil when not found
func (db *DB) GetExperience(ctx context.Context, userID, id uuid.UUID) (*types.Experience, error) {
	e, err := scanExperience(db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, seniority_level, company, city, country,
		        start_date, end_date, currently_working, description, is_volunteer
		 FROM experiences WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}
	return e, nil
}

// CreateExperience inserts a new entry for the user and returns it with its ID
func (db *DB) CreateExperience(ctx context.Context, userID uuid.UUID, e *types.Experience) (*types.Experience, error) {
	var city, country string
	if e.Location != nil {
		city = e.Location.City
		country = e.Location.Country
	}

	created, err := scanExperience(db.pool.QueryRow(ctx,
		`INSERT INTO experiences (user_id, title, seniority_level, company, city, country,
		                          start_date, end_date, currently_working, description, is_volunteer)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, user_id, title, seniority_level, company, city, country,
		           start_date, end_date, currently_working, description, is_volunteer`,
		userID, e.Title, e.SeniorityLevel, e.Company, city, country,
		e.StartDate, e.EndDate, e.CurrentlyWorking, e.Description, e.IsVolunteer,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return created, nil
}

// UpdateExperience replaces an entry's fields; returns nil when the entry
// does not exist or belongs to another user
func (db *DB) UpdateExperience(ctx context.Context, userID, id uuid.UUID, e *types.Experience) (*types.Experience, error) {
	var city, country string
	if e.Location != nil {
		city = e.Location.City
		country = e.Location.Country
	}

	updated, err := scanExperience(db.pool.QueryRow(ctx,
		`UPDATE experiences SET
		     title = $3, seniority_level = $4, company = $5, city = $6, country = $7,
		     start_date = $8, end_date = $9, currently_working = $10,
		     description = $11, is_volunteer = $12
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, seniority_level, company, city, country,
		           start_date, end_date, currently_working, description, is_volunteer`,
		id, userID, e.Title, e.SeniorityLevel, e.Company, city, country,
		e.StartDate, e.EndDate, e.CurrentlyWorking, e.Description, e.IsVolunteer,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return updated, nil
}

// DeleteExperience removes an entry scoped to its owner
func (db *DB) DeleteExperience(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete experience: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
