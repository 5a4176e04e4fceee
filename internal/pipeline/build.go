// Package pipeline provides the high-level orchestration for assembling a
// resume bundle into a rendered PDF document.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/karim/resume-builder/internal/db"
	"github.com/karim/resume-builder/internal/observability"
	"github.com/karim/resume-builder/internal/rendering"
	"github.com/karim/resume-builder/internal/resume"
	"github.com/karim/resume-builder/internal/types"
)

// BuildOptions holds configuration for one resume build.
// Exactly one of UserID or Bundle must be set: UserID loads stored data
// through the database, Bundle runs the stateless payload path.
type BuildOptions struct {
	UserID     uuid.UUID
	Bundle     *types.ResumeBundle
	Identity   *types.AccountIdentity
	Template   string
	OutputDir  string
	PDFTimeout time.Duration
	Verbose    bool
}

// BuildResult describes a generated document on disk.
type BuildResult struct {
	Path        string
	Filename    string
	ContentType string
	Warnings    []resume.SkipWarning
	Report      resume.ValidationReport
}

// BuildResume assembles, renders and writes a resume PDF. The returned
// cleanup func removes the temp file and is safe to call more than once;
// callers must invoke it after streaming or copying the document.
func BuildResume(ctx context.Context, database *db.DB, opts BuildOptions) (*BuildResult, func(), error) {
	printer := observability.NewPrinter(os.Stdout)
	noop := func() {}

	bundle, err := resolveBundle(ctx, database, &opts)
	if err != nil {
		return nil, noop, err
	}

	if opts.Verbose {
		printer.PrintBundleSummary(bundle)
	}

	report := resume.CheckCompleteness(bundle)
	if opts.Verbose {
		printer.PrintValidationReport(report)
	}

	data, warnings, err := resume.PrepareResumeData(bundle, opts.Identity)
	if err != nil {
		return nil, noop, err
	}
	if opts.Verbose {
		printer.PrintSkipWarnings(warnings)
	}

	templateName := opts.Template
	if templateName == "" {
		templateName = rendering.DefaultTemplate
	}
	html, err := rendering.RenderHTML(templateName, data)
	if err != nil {
		return nil, noop, err
	}

	timeout := opts.PDFTimeout
	if timeout <= 0 {
		timeout = rendering.DefaultPDFTimeout
	}
	pdf, err := rendering.HTMLToPDF(ctx, html, timeout)
	if err != nil {
		return nil, noop, err
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = os.TempDir()
	}
	file, err := os.CreateTemp(outDir, "resume-*.pdf")
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create output file: %w", err)
	}
	path := file.Name()

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[BUILD] failed to remove temp file %s: %v", path, err)
		}
	}

	if _, err := file.Write(pdf); err != nil {
		file.Close()
		cleanup()
		return nil, noop, fmt.Errorf("failed to write output file: %w", err)
	}
	if err := file.Close(); err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("failed to close output file: %w", err)
	}

	if opts.Verbose {
		printer.PrintBuildResult(path, len(pdf))
	}
	log.Printf("[BUILD] resume written to %s (%d bytes)", path, len(pdf))

	return &BuildResult{
		Path:        path,
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Warnings:    warnings,
		Report:      report,
	}, cleanup, nil
}

// ValidateResume loads the bundle and reports whether a resume can be
// generated, without rendering anything.
func ValidateResume(ctx context.Context, database *db.DB, opts BuildOptions) (resume.ValidationReport, error) {
	bundle, err := resolveBundle(ctx, database, &opts)
	if err != nil {
		return resume.ValidationReport{}, err
	}
	return resume.CheckCompleteness(bundle), nil
}

// RenderResumeText renders the bundle through the HTML template and
// flattens the markup to plain text, for whole-resume evaluation.
func RenderResumeText(bundle *types.ResumeBundle, identity *types.AccountIdentity, templateName string) (string, error) {
	data, _, err := resume.PrepareResumeData(bundle, identity)
	if err != nil {
		return "", err
	}
	if templateName == "" {
		templateName = rendering.DefaultTemplate
	}
	html, err := rendering.RenderHTML(templateName, data)
	if err != nil {
		return "", err
	}
	return rendering.ExtractText(html)
}

// resolveBundle returns the explicit bundle for the stateless path, or
// loads one from storage for the authenticated path. The authenticated
// path requires a saved profile.
func resolveBundle(ctx context.Context, database *db.DB, opts *BuildOptions) (*types.ResumeBundle, error) {
	if opts.Bundle != nil {
		return opts.Bundle, nil
	}

	if database == nil {
		return nil, fmt.Errorf("no bundle provided and no database configured")
	}
	if opts.UserID == uuid.Nil {
		return nil, fmt.Errorf("no bundle provided and no user ID set")
	}

	bundle, err := database.LoadBundle(ctx, opts.UserID)
	if err != nil {
		return nil, err
	}
	if bundle.Profile == nil {
		return nil, &resume.ProfileMissingError{UserID: opts.UserID.String()}
	}

	if opts.Identity == nil {
		user, err := database.GetUser(ctx, opts.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			opts.Identity = &types.AccountIdentity{Name: user.Name, Email: user.Email, Phone: user.Phone}
		}
	}

	return bundle, nil
}
