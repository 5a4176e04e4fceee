package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/karim/resume-builder/internal/types"
)

// LoadBundle assembles a transient resume bundle for a user by fetching the
// profile and every career-history list concurrently. The bundle is built
// fresh per request and never persisted. An absent profile leaves the
// Profile field nil; callers decide whether that is fatal.
func (db *DB) LoadBundle(ctx context.Context, userID uuid.UUID) (*types.ResumeBundle, error) {
	var bundle types.ResumeBundle
	var experiences []types.Experience
	var skills []types.Skill

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := db.GetProfile(gctx, userID)
		if err != nil {
			return err
		}
		bundle.Profile = profile
		return nil
	})
	g.Go(func() error {
		var err error
		experiences, err = db.ListExperiences(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Education, err = db.ListEducation(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = db.ListSkills(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Languages, err = db.ListLanguages(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Certifications, err = db.ListCertifications(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Projects, err = db.ListProjects(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Links, err = db.ListLinks(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load resume bundle: %w", err)
	}

	bundle.CareerExperiences, bundle.VolunteeringExperiences = types.SortExperiences(experiences)
	bundle.TechnicalSkills, bundle.SoftSkills = types.SortSkills(skills)

	return &bundle, nil
}
