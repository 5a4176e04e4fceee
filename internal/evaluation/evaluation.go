// Package evaluation scores resume content with an LLM and validates the
// model's JSON responses before trusting them.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/karim/resume-builder/internal/llm"
	"github.com/karim/resume-builder/internal/prompts"
	"github.com/karim/resume-builder/internal/types"
)

// Area identifies which part of a resume is being evaluated.
type Area string

const (
	AreaUserProfile Area = "user_profile"
	AreaExperience  Area = "experience"
	AreaEducation   Area = "education"
	AreaComplete    Area = "complete"
)

// Status buckets a 1-10 score into a coarse verdict.
type Status string

const (
	StatusExcellent        Status = "excellent"
	StatusGood             Status = "good"
	StatusNeedsImprovement Status = "needs_improvement"
	StatusPoor             Status = "poor"
)

// statusFromScore derives the verdict bucket from a validated score.
func statusFromScore(score int) Status {
	switch {
	case score >= 8:
		return StatusExcellent
	case score >= 6:
		return StatusGood
	case score >= 4:
		return StatusNeedsImprovement
	default:
		return StatusPoor
	}
}

// Result is a single-area evaluation outcome.
type Result struct {
	Area        Area     `json:"evaluation_area"`
	Score       int      `json:"score"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	Status      Status   `json:"status"`
}

// CompleteResult aggregates the per-area evaluations plus a whole-resume
// read of the rendered document text.
type CompleteResult struct {
	OverallScore       float64  `json:"overall_score"`
	UserProfile        *Result  `json:"user_profile_evaluation"`
	Experience         *Result  `json:"experience_evaluation"`
	Education          *Result  `json:"education_evaluation"`
	Document           *Result  `json:"document_evaluation"`
	OverallSuggestions []string `json:"overall_suggestions"`
}

// Evaluator runs prompt-driven evaluations through an LLM client.
type Evaluator struct {
	client llm.Client
}

// NewEvaluator creates an Evaluator backed by the given LLM client.
func NewEvaluator(client llm.Client) *Evaluator {
	return &Evaluator{client: client}
}

// EvaluateArea evaluates one section of the bundle. The profile area
// requires a profile to be present; history areas tolerate empty lists
// (the model is told nothing was provided).
func (e *Evaluator) EvaluateArea(ctx context.Context, area Area, bundle *types.ResumeBundle) (*Result, error) {
	data, err := formatAreaData(area, bundle)
	if err != nil {
		return nil, err
	}
	return e.evaluate(ctx, area, data, llm.TierLite)
}

// EvaluateDocument evaluates the extracted text of a rendered resume.
func (e *Evaluator) EvaluateDocument(ctx context.Context, resumeText string) (*Result, error) {
	return e.evaluate(ctx, AreaComplete, resumeText, llm.TierStandard)
}

// EvaluateComplete runs the three per-area evaluations concurrently plus a
// whole-document read, then averages the area scores.
func (e *Evaluator) EvaluateComplete(ctx context.Context, bundle *types.ResumeBundle, resumeText string) (*CompleteResult, error) {
	var complete CompleteResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		complete.UserProfile, err = e.EvaluateArea(gctx, AreaUserProfile, bundle)
		return err
	})
	g.Go(func() error {
		var err error
		complete.Experience, err = e.EvaluateArea(gctx, AreaExperience, bundle)
		return err
	})
	g.Go(func() error {
		var err error
		complete.Education, err = e.EvaluateArea(gctx, AreaEducation, bundle)
		return err
	})
	g.Go(func() error {
		var err error
		complete.Document, err = e.EvaluateDocument(gctx, resumeText)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := complete.UserProfile.Score + complete.Experience.Score + complete.Education.Score
	complete.OverallScore = roundToTenth(float64(sum) / 3)

	complete.OverallSuggestions = append(complete.OverallSuggestions, complete.UserProfile.Suggestions...)
	complete.OverallSuggestions = append(complete.OverallSuggestions, complete.Experience.Suggestions...)
	complete.OverallSuggestions = append(complete.OverallSuggestions, complete.Education.Suggestions...)

	return &complete, nil
}

func (e *Evaluator) evaluate(ctx context.Context, area Area, data string, tier llm.ModelTier) (*Result, error) {
	template, err := prompts.Get("evaluation.json", string(area))
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"Data": data})

	raw, err := e.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return nil, &EvaluationError{Area: area, Cause: err}
	}

	if err := validateResponse(raw); err != nil {
		log.Printf("[EVAL] rejected malformed %s response: %v", area, err)
		return nil, &EvaluationError{Area: area, Cause: err}
	}

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &EvaluationError{Area: area, Cause: fmt.Errorf("failed to parse response: %w", err)}
	}

	result.Area = area
	result.Status = statusFromScore(result.Score)
	return &result, nil
}

func roundToTenth(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
