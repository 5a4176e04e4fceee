package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karim/resume-builder/internal/types"
)

// ListProjects returns all of a user's personal projects, most recent start
// date first; undated entries sort last
func (db *DB) ListProjects(ctx context.Context, userID uuid.UUID) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, description, technologies, start_date, end_date,
		        is_ongoing, url, repository_url
		 FROM projects WHERE user_id = $1
		 ORDER BY start_date DESC NULLS LAST`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Technologies,
			&p.StartDate, &p.EndDate, &p.IsOngoing, &p.URL, &p.RepositoryURL); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// CreateProject inserts a new project and returns it with its ID
func (db *DB) CreateProject(ctx context.Context, userID uuid.UUID, p *types.Project) (*types.Project, error) {
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	var created types.Project
	err := db.pool.QueryRow(ctx,
		`INSERT INTO projects (user_id, title, description, technologies, start_date,
		                       end_date, is_ongoing, url, repository_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, user_id, title, description, technologies, start_date, end_date,
		           is_ongoing, url, repository_url`,
		userID, p.Title, p.Description, technologies, p.StartDate,
		p.EndDate, p.IsOngoing, p.URL, p.RepositoryURL,
	).Scan(&created.ID, &created.UserID, &created.Title, &created.Description, &created.Technologies,
		&created.StartDate, &created.EndDate, &created.IsOngoing, &created.URL, &created.RepositoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &created, nil
}

// UpdateProject replaces a project's fields; returns nil when the project
// does not exist or belongs to another user
func (db *DB) UpdateProject(ctx context.Context, userID, id uuid.UUID, p *types.Project) (*types.Project, error) {
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	var updated types.Project
	err := db.pool.QueryRow(ctx,
		`UPDATE projects SET
		     title = $3, description = $4, technologies = $5, start_date = $6,
		     end_date = $7, is_ongoing = $8, url = $9, repository_url = $10
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, description, technologies, start_date, end_date,
		           is_ongoing, url, repository_url`,
		id, userID, p.Title, p.Description, technologies, p.StartDate,
		p.EndDate, p.IsOngoing, p.URL, p.RepositoryURL,
	).Scan(&updated.ID, &updated.UserID, &updated.Title, &updated.Description, &updated.Technologies,
		&updated.StartDate, &updated.EndDate, &updated.IsOngoing, &updated.URL, &updated.RepositoryURL)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &updated, nil
}

// DeleteProject removes a project scoped to its owner
func (db *DB) DeleteProject(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM projects WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
