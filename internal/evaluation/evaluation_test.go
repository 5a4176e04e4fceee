package evaluation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karim/resume-builder/internal/llm"
	"github.com/karim/resume-builder/internal/types"
)

// fakeClient returns canned responses and records received prompts.
type fakeClient struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) Close() error { return nil }

func sampleBundle() *types.ResumeBundle {
	start := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &types.ResumeBundle{
		Profile: &types.Profile{
			CurrentPosition: "Backend Engineer",
			WorkField:       types.FieldEngineering,
			Summary:         "Builds APIs.",
		},
		CareerExperiences: []types.Experience{
			{Title: "Engineer", Company: "Acme", StartDate: &start, CurrentlyWorking: true, Description: "Shipped things"},
		},
		Education: []types.Education{
			{Institution: "Cairo University", Degree: types.DegreeBachelor, Field: "CS", StartDate: &start},
		},
	}
}

func TestEvaluateArea_UserProfile(t *testing.T) {
	client := &fakeClient{response: `{"score": 8, "message": "Strong profile", "suggestions": ["Add LinkedIn"]}`}
	evaluator := NewEvaluator(client)

	result, err := evaluator.EvaluateArea(context.Background(), AreaUserProfile, sampleBundle())
	require.NoError(t, err)

	assert.Equal(t, AreaUserProfile, result.Area)
	assert.Equal(t, 8, result.Score)
	assert.Equal(t, StatusExcellent, result.Status)
	assert.Equal(t, []string{"Add LinkedIn"}, result.Suggestions)

	// The prompt carries the formatted profile data
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Backend Engineer")
	assert.Contains(t, client.prompts[0], "LinkedIn URL: Not provided")
}

func TestEvaluateArea_ProfileMissing(t *testing.T) {
	evaluator := NewEvaluator(&fakeClient{response: "{}"})

	_, err := evaluator.EvaluateArea(context.Background(), AreaUserProfile, &types.ResumeBundle{})
	require.Error(t, err)

	var profileErr *ProfileRequiredError
	assert.ErrorAs(t, err, &profileErr)
}

func TestEvaluateArea_EmptyHistoryTolerated(t *testing.T) {
	client := &fakeClient{response: `{"score": 3, "message": "Nothing to assess", "suggestions": []}`}
	evaluator := NewEvaluator(client)

	result, err := evaluator.EvaluateArea(context.Background(), AreaExperience, &types.ResumeBundle{})
	require.NoError(t, err)
	assert.Equal(t, StatusPoor, result.Status)
	assert.Contains(t, client.prompts[0], "No experiences provided")
}

func TestEvaluateArea_MalformedResponseRejected(t *testing.T) {
	cases := map[string]string{
		"missing fields": `{"score": 8}`,
		"score too high": `{"score": 42, "message": "m", "suggestions": []}`,
		"not json":       `the resume is fine`,
	}
	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			evaluator := NewEvaluator(&fakeClient{response: response})

			_, err := evaluator.EvaluateArea(context.Background(), AreaExperience, sampleBundle())
			require.Error(t, err)

			var evalErr *EvaluationError
			assert.ErrorAs(t, err, &evalErr)
			assert.Equal(t, AreaExperience, evalErr.Area)
		})
	}
}

func TestEvaluateComplete(t *testing.T) {
	client := &fakeClient{response: `{"score": 7, "message": "Good", "suggestions": ["Tighten summary"]}`}
	evaluator := NewEvaluator(client)

	complete, err := evaluator.EvaluateComplete(context.Background(), sampleBundle(), "NAME\nExperience: Engineer at Acme")
	require.NoError(t, err)

	assert.Equal(t, 7.0, complete.OverallScore)
	require.NotNil(t, complete.UserProfile)
	require.NotNil(t, complete.Experience)
	require.NotNil(t, complete.Education)
	require.NotNil(t, complete.Document)
	assert.Equal(t, AreaComplete, complete.Document.Area)
	// One suggestion per area evaluation
	assert.Len(t, complete.OverallSuggestions, 3)
	// 3 area prompts + 1 document prompt
	assert.Len(t, client.prompts, 4)
}

func TestStatusFromScore(t *testing.T) {
	assert.Equal(t, StatusExcellent, statusFromScore(10))
	assert.Equal(t, StatusExcellent, statusFromScore(8))
	assert.Equal(t, StatusGood, statusFromScore(6))
	assert.Equal(t, StatusNeedsImprovement, statusFromScore(4))
	assert.Equal(t, StatusPoor, statusFromScore(1))
}

func TestFormatExperiences_Duration(t *testing.T) {
	text := formatExperiences(sampleBundle().CareerExperiences)
	assert.Contains(t, text, "Duration: 2021-03 - Present")
	assert.Contains(t, text, "Is Volunteer: false")
}

func TestValidateResponse(t *testing.T) {
	assert.NoError(t, validateResponse(`{"score": 5, "message": "ok", "suggestions": ["a"]}`))
	assert.Error(t, validateResponse(`{"score": 0, "message": "ok", "suggestions": []}`))
	assert.Error(t, validateResponse(`{"score": 5, "message": "", "suggestions": []}`))
	assert.Error(t, validateResponse(`[]`))
}
