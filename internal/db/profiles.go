package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karim/resume-builder/internal/types"
)

// GetProfile retrieves a user's profile; returns nil when none exists yet.
// An absent profile is a normal state, not an error.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	var p types.Profile
	var city, country string
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, current_position, work_field, years_of_experience,
		        linkedin_url, website_url, profile_summary, city, country,
		        created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.CurrentPosition, &p.WorkField, &p.YearsOfExperience,
		&p.LinkedInURL, &p.WebsiteURL, &p.Summary, &city, &country,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if city != "" || country != "" {
		p.Address = &types.Address{City: city, Country: country}
	}
	return &p, nil
}

// SaveProfile inserts or updates a user's profile (one row per user)
func (db *DB) SaveProfile(ctx context.Context, userID uuid.UUID, p *types.Profile) (*types.Profile, error) {
	var city, country string
	if p.Address != nil {
		city = p.Address.City
		country = p.Address.Country
	}

	var saved types.Profile
	var savedCity, savedCountry string
	err := db.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, current_position, work_field, years_of_experience,
		                       linkedin_url, website_url, profile_summary, city, country)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id) DO UPDATE SET
		     current_position = $2,
		     work_field = $3,
		     years_of_experience = $4,
		     linkedin_url = $5,
		     website_url = $6,
		     profile_summary = $7,
		     city = $8,
		     country = $9,
		     updated_at = NOW()
		 RETURNING id, user_id, current_position, work_field, years_of_experience,
		           linkedin_url, website_url, profile_summary, city, country,
		           created_at, updated_at`,
		userID, p.CurrentPosition, p.WorkField, p.YearsOfExperience,
		p.LinkedInURL, p.WebsiteURL, p.Summary, city, country,
	).Scan(&saved.ID, &saved.UserID, &saved.CurrentPosition, &saved.WorkField, &saved.YearsOfExperience,
		&saved.LinkedInURL, &saved.WebsiteURL, &saved.Summary, &savedCity, &savedCountry,
		&saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	if savedCity != "" || savedCountry != "" {
		saved.Address = &types.Address{City: savedCity, Country: savedCountry}
	}
	return &saved, nil
}

// DeleteProfile removes a user's profile row
func (db *DB) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM profiles WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
