package resume

import (
	"testing"
	"time"

	"github.com/karim/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// templateKeys is the fixed variable set every build must produce.
var templateKeys = []string{
	VarName, VarEmail, VarPhone, VarJobTitle, VarLinkedIn, VarWebsite,
	VarSummary, VarWorkField, VarYearsOfExperience, VarCurrentPosition,
	VarCity, VarCountry, VarTechnicalSkills, VarSoftSkills, VarExperience,
	VarVolunteering, VarEducation, VarCertifications, VarLanguages,
	VarPersonalWork, VarPersonalLinks,
}

func fullProfile() *types.Profile {
	return &types.Profile{
		Name:              "Karim Nasser",
		Email:             "karim@example.com",
		Phone:             "+20 100 000 0000",
		CurrentPosition:   "Backend Engineer",
		WorkField:         types.FieldEngineering,
		YearsOfExperience: 6,
		LinkedInURL:       "https://linkedin.com/in/karim",
		WebsiteURL:        "https://karim.dev",
		Summary:           "Builds boring, reliable systems.",
		Address:           &types.Address{City: "Cairo", Country: "Egypt"},
	}
}

func TestPrepareResumeData_AllKeysPresentForEmptyBundle(t *testing.T) {
	data, warnings, err := PrepareResumeData(&types.ResumeBundle{}, nil)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	for _, key := range templateKeys {
		assert.Contains(t, data, key, "missing template variable %q", key)
	}
	assert.Equal(t, []ExperienceEntry{}, data[VarExperience])
	assert.Equal(t, []EducationEntry{}, data[VarEducation])
	assert.Equal(t, "", data[VarName])
}

func TestPrepareResumeData_NilBundleFails(t *testing.T) {
	_, _, err := PrepareResumeData(nil, nil)
	require.Error(t, err)
	var missing *BundleMissingError
	assert.ErrorAs(t, err, &missing)
}

func TestPrepareResumeData_IdentityPreferredOverProfile(t *testing.T) {
	bundle := &types.ResumeBundle{Profile: fullProfile()}
	identity := &types.AccountIdentity{Name: "Account Name", Email: "account@example.com", Phone: "555"}

	data, _, err := PrepareResumeData(bundle, identity)

	require.NoError(t, err)
	assert.Equal(t, "Account Name", data[VarName])
	assert.Equal(t, "account@example.com", data[VarEmail])
	assert.Equal(t, "555", data[VarPhone])
}

func TestPrepareResumeData_ProfileIdentityUsedWithoutAccount(t *testing.T) {
	bundle := &types.ResumeBundle{Profile: fullProfile()}

	data, _, err := PrepareResumeData(bundle, nil)

	require.NoError(t, err)
	assert.Equal(t, "Karim Nasser", data[VarName])
	assert.Equal(t, "karim@example.com", data[VarEmail])
	assert.Equal(t, "+20 100 000 0000", data[VarPhone])
}

func TestPrepareResumeData_ProfileScalars(t *testing.T) {
	bundle := &types.ResumeBundle{Profile: fullProfile()}

	data, _, err := PrepareResumeData(bundle, nil)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", data[VarJobTitle])
	assert.Equal(t, "Backend Engineer", data[VarCurrentPosition])
	assert.Equal(t, "Engineering", data[VarWorkField])
	assert.Equal(t, "6", data[VarYearsOfExperience])
	assert.Equal(t, "Cairo", data[VarCity])
	assert.Equal(t, "Egypt", data[VarCountry])
	assert.Equal(t, "https://linkedin.com/in/karim", data[VarLinkedIn])
	assert.Equal(t, "https://karim.dev", data[VarWebsite])
}

func TestPrepareResumeData_SkillsAreNameLists(t *testing.T) {
	bundle := &types.ResumeBundle{
		TechnicalSkills: []types.Skill{{Name: "Go"}, {Name: "PostgreSQL"}},
		SoftSkills:      []types.Skill{{Name: "Mentoring", IsSoftSkill: true}},
	}

	data, _, err := PrepareResumeData(bundle, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, data[VarTechnicalSkills])
	assert.Equal(t, []string{"Mentoring"}, data[VarSoftSkills])
}

func TestPrepareResumeData_EndToEndExperienceEntry(t *testing.T) {
	bundle := &types.ResumeBundle{
		Profile: fullProfile(),
		CareerExperiences: []types.Experience{
			{
				Title:            "Engineer",
				Company:          "Acme",
				StartDate:        date(2021, time.March),
				CurrentlyWorking: true,
				Description:      "Led migration. Reduced cost by 20%.",
			},
		},
	}

	data, warnings, err := PrepareResumeData(bundle, nil)

	require.NoError(t, err)
	assert.Empty(t, warnings)
	entries, ok := data[VarExperience].([]ExperienceEntry)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "2021-03 - Present", entries[0].DateRange)
	assert.Equal(t, []string{"Led migration.", "Reduced cost by 20%."}, entries[0].Details)
}

func TestPrepareResumeData_SkipWarningsSurface(t *testing.T) {
	bundle := &types.ResumeBundle{
		CareerExperiences: []types.Experience{
			{Title: "Engineer", StartDate: date(2020, time.January)}, // no company
			{Title: "Engineer", Company: "Acme", StartDate: date(2021, time.January)},
		},
	}

	data, warnings, err := PrepareResumeData(bundle, nil)

	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "missing company", warnings[0].Reason)
	entries := data[VarExperience].([]ExperienceEntry)
	assert.Len(t, entries, 1)
}

func TestCheckCompleteness_MissingProfileAndHistory(t *testing.T) {
	report := CheckCompleteness(&types.ResumeBundle{})

	assert.False(t, report.CanGenerate)
	assert.Contains(t, report.MissingData, "personal_info")
	assert.Contains(t, report.MissingData, "experience or education")
}

func TestCheckCompleteness_EducationAloneSuffices(t *testing.T) {
	report := CheckCompleteness(&types.ResumeBundle{
		Profile:   fullProfile(),
		Education: []types.Education{{Institution: "MIT", StartDate: date(2018, time.September)}},
	})

	assert.True(t, report.CanGenerate)
	assert.Empty(t, report.MissingData)
}

func TestCheckCompleteness_VolunteeringAloneInsufficient(t *testing.T) {
	report := CheckCompleteness(&types.ResumeBundle{
		Profile: fullProfile(),
		VolunteeringExperiences: []types.Experience{
			{Title: "Mentor", Company: "Code Club", StartDate: date(2022, time.January), IsVolunteer: true},
		},
	})

	assert.False(t, report.CanGenerate)
	assert.Contains(t, report.MissingData, "experience or education")
}

func TestCheckCompleteness_NilBundle(t *testing.T) {
	report := CheckCompleteness(nil)
	assert.False(t, report.CanGenerate)
	assert.Contains(t, report.MissingData, "personal_info")
}

func TestCheckCompleteness_Recommendations(t *testing.T) {
	profile := fullProfile()
	profile.Summary = ""
	profile.LinkedInURL = ""
	report := CheckCompleteness(&types.ResumeBundle{Profile: profile})

	assert.NotEmpty(t, report.Recommendations)
}
