package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karim/resume-builder/internal/types"
)

// ListCertifications returns all of a user's certifications, most recently
// issued first; undated entries sort last
func (db *DB) ListCertifications(ctx context.Context, userID uuid.UUID) ([]types.Certification, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, issuing_organization, issue_date, certificate_url, description
		 FROM certifications WHERE user_id = $1
		 ORDER BY issue_date DESC NULLS LAST`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()

	var certifications []types.Certification
	for rows.Next() {
		var c types.Certification
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.IssuingOrganization,
			&c.IssueDate, &c.CertificateURL, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		certifications = append(certifications, c)
	}
	return certifications, nil
}

// CreateCertification inserts a new certification and returns it with its ID
func (db *DB) CreateCertification(ctx context.Context, userID uuid.UUID, c *types.Certification) (*types.Certification, error) {
	var created types.Certification
	err := db.pool.QueryRow(ctx,
		`INSERT INTO certifications (user_id, name, issuing_organization, issue_date, certificate_url, description)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, name, issuing_organization, issue_date, certificate_url, description`,
		userID, c.Name, c.IssuingOrganization, c.IssueDate, c.CertificateURL, c.Description,
	).Scan(&created.ID, &created.UserID, &created.Name, &created.IssuingOrganization,
		&created.IssueDate, &created.CertificateURL, &created.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create certification: %w", err)
	}
	return &created, nil
}

// UpdateCertification replaces a certification's fields; returns nil when the
// entry does not exist or belongs to another user
func (db *DB) UpdateCertification(ctx context.Context, userID, id uuid.UUID, c *types.Certification) (*types.Certification, error) {
	var updated types.Certification
	err := db.pool.QueryRow(ctx,
		`UPDATE certifications SET
		     name = $3, issuing_organization = $4, issue_date = $5,
		     certificate_url = $6, description = $7
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, issuing_organization, issue_date, certificate_url, description`,
		id, userID, c.Name, c.IssuingOrganization, c.IssueDate, c.CertificateURL, c.Description,
	).Scan(&updated.ID, &updated.UserID, &updated.Name, &updated.IssuingOrganization,
		&updated.IssueDate, &updated.CertificateURL, &updated.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update certification: %w", err)
	}
	return &updated, nil
}

// DeleteCertification removes a certification scoped to its owner
func (db *DB) DeleteCertification(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM certifications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete certification: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
