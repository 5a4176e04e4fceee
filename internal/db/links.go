package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karim/resume-builder/internal/types"
)

// ListLinks returns all of a user's personal links in insertion order
func (db *DB) ListLinks(ctx context.Context, userID uuid.UUID) ([]types.Link, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, website_name, website_url
		 FROM links WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	var links []types.Link
	for rows.Next() {
		var l types.Link
		if err := rows.Scan(&l.ID, &l.UserID, &l.WebsiteName, &l.WebsiteURL); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, l)
	}
	return links, nil
}

// CreateLink inserts a new link and returns it with its ID
func (db *DB) CreateLink(ctx context.Context, userID uuid.UUID, l *types.Link) (*types.Link, error) {
	var created types.Link
	err := db.pool.QueryRow(ctx,
		`INSERT INTO links (user_id, website_name, website_url)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, website_name, website_url`,
		userID, l.WebsiteName, l.WebsiteURL,
	).Scan(&created.ID, &created.UserID, &created.WebsiteName, &created.WebsiteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return &created, nil
}

// UpdateLink replaces a link's fields; returns nil when the link does not
// exist or belongs to another user
func (db *DB) UpdateLink(ctx context.Context, userID, id uuid.UUID, l *types.Link) (*types.Link, error) {
	var updated types.Link
	err := db.pool.QueryRow(ctx,
		`UPDATE links SET website_name = $3, website_url = $4
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, website_name, website_url`,
		id, userID, l.WebsiteName, l.WebsiteURL,
	).Scan(&updated.ID, &updated.UserID, &updated.WebsiteName, &updated.WebsiteURL)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	return &updated, nil
}

// DeleteLink removes a link scoped to its owner
func (db *DB) DeleteLink(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM links WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete link: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
