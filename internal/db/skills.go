package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/karim/resume-builder/internal/types"
)

// ListSkills returns all of a user's skills, technical and soft mixed,
// in insertion order
func (db *DB) ListSkills(ctx context.Context, userID uuid.UUID) ([]types.Skill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, proficiency, is_soft_skill
		 FROM skills WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Proficiency, &s.IsSoftSkill); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// CreateSkill inserts a new skill and returns it with its ID
func (db *DB) CreateSkill(ctx context.Context, userID uuid.UUID, s *types.Skill) (*types.Skill, error) {
	var created types.Skill
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (user_id, name, proficiency, is_soft_skill)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, name, proficiency, is_soft_skill`,
		userID, s.Name, s.Proficiency, s.IsSoftSkill,
	).Scan(&created.ID, &created.UserID, &created.Name, &created.Proficiency, &created.IsSoftSkill)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return &created, nil
}

// UpdateSkill replaces a skill's fields; returns nil when the skill
// does not exist or belongs to another user
func (db *DB) UpdateSkill(ctx context.Context, userID, id uuid.UUID, s *types.Skill) (*types.Skill, error) {
	var updated types.Skill
	err := db.pool.QueryRow(ctx,
		`UPDATE skills SET name = $3, proficiency = $4, is_soft_skill = $5
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, proficiency, is_soft_skill`,
		id, userID, s.Name, s.Proficiency, s.IsSoftSkill,
	).Scan(&updated.ID, &updated.UserID, &updated.Name, &updated.Proficiency, &updated.IsSoftSkill)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return &updated, nil
}

// DeleteSkill removes a skill scoped to its owner
func (db *DB) DeleteSkill(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete skill: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
