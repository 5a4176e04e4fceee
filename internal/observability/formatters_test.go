package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/karim/resume-builder/internal/resume"
	"github.com/karim/resume-builder/internal/types"
)

func TestPrintBundleSummary(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintBundleSummary(&types.ResumeBundle{
		Profile:           &types.Profile{CurrentPosition: "Engineer"},
		CareerExperiences: []types.Experience{{}, {}},
		TechnicalSkills:   []types.Skill{{Name: "Go"}},
	})

	out := buf.String()
	assert.Contains(t, out, "RESUME BUNDLE")
	assert.Contains(t, out, "Engineer")
	assert.Contains(t, out, "2 career, 0 volunteering")
	assert.Contains(t, out, "1 technical, 0 soft")
}

func TestPrintBundleSummary_NilBundle(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBundleSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintValidationReport_Ready(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationReport(resume.ValidationReport{CanGenerate: true})
	assert.Contains(t, buf.String(), "READY TO GENERATE")
}

func TestPrintValidationReport_Missing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationReport(resume.ValidationReport{
		CanGenerate:     false,
		MissingData:     []string{"personal_info"},
		Recommendations: []string{"Add a summary"},
	})

	out := buf.String()
	assert.Contains(t, out, "VALIDATION REPORT")
	assert.Contains(t, out, "personal_info")
	assert.Contains(t, out, "Add a summary")
}

func TestPrintSkipWarnings(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSkipWarnings(nil)
	assert.Empty(t, buf.String())

	printer.PrintSkipWarnings([]resume.SkipWarning{
		{Section: "experience", Identifier: "Acme", Reason: "missing start date"},
	})
	assert.Contains(t, buf.String(), "missing start date")
}

func TestPrintBuildResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBuildResult("/tmp/resume.pdf", 2048)

	out := buf.String()
	assert.Contains(t, out, "RESUME GENERATED")
	assert.Contains(t, out, "/tmp/resume.pdf")
	assert.Contains(t, out, "2.0 KB")
	// Box borders are intact
	assert.True(t, strings.Contains(out, "┌") && strings.Contains(out, "└"))
}
