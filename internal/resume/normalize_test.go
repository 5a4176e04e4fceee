package resume

import (
	"testing"
	"time"

	"github.com/karim/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExperiences_SkipsRecordMissingCompany(t *testing.T) {
	items := []types.Experience{
		{Title: "Engineer", Company: "", StartDate: date(2020, time.January)},
		{Title: "Engineer", Company: "Acme", StartDate: date(2021, time.March)},
	}

	entries, warnings := NormalizeExperiences(items)

	require.Len(t, entries, 1)
	assert.Equal(t, "Acme", entries[0].Company)
	require.Len(t, warnings, 1)
	assert.Equal(t, "experience", warnings[0].Section)
	assert.Equal(t, "Engineer", warnings[0].Identifier)
	assert.Equal(t, "missing company", warnings[0].Reason)
}

func TestNormalizeExperiences_CurrentlyWorkingDropsStaleEndDate(t *testing.T) {
	items := []types.Experience{
		{
			Title:            "Engineer",
			Company:          "Acme",
			StartDate:        date(2021, time.March),
			EndDate:          date(2023, time.May),
			CurrentlyWorking: true,
		},
	}

	entries, warnings := NormalizeExperiences(items)

	require.Empty(t, warnings)
	require.Len(t, entries, 1)
	assert.Equal(t, "2021-03 - Present", entries[0].DateRange)
}

func TestNormalizeExperiences_SegmentsDescription(t *testing.T) {
	items := []types.Experience{
		{
			Title:       "Engineer",
			Company:     "Acme",
			StartDate:   date(2021, time.March),
			Description: "Led migration. Reduced cost by 20%.",
		},
	}

	entries, _ := NormalizeExperiences(items)

	require.Len(t, entries, 1)
	assert.Equal(t, []string{"Led migration.", "Reduced cost by 20%."}, entries[0].Details)
}

func TestNormalizeExperiences_LocationJoin(t *testing.T) {
	base := types.Experience{Title: "Engineer", Company: "Acme", StartDate: date(2020, time.January)}

	both := base
	both.Location = &types.Address{City: "Berlin", Country: "Germany"}
	cityOnly := base
	cityOnly.Location = &types.Address{City: "Berlin"}
	countryOnly := base
	countryOnly.Location = &types.Address{Country: "Germany"}
	none := base

	entries, _ := NormalizeExperiences([]types.Experience{both, cityOnly, countryOnly, none})

	require.Len(t, entries, 4)
	assert.Equal(t, "Berlin, Germany", entries[0].Location)
	assert.Equal(t, "Berlin", entries[1].Location)
	assert.Equal(t, "Germany", entries[2].Location)
	assert.Equal(t, "", entries[3].Location)
}

func TestNormalizeExperiences_SeniorityDisplay(t *testing.T) {
	items := []types.Experience{
		{Title: "Engineer", Company: "Acme", StartDate: date(2020, time.January), SeniorityLevel: types.SeniorityMid},
	}
	entries, _ := NormalizeExperiences(items)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mid-level", entries[0].SeniorityLevel)
}

func TestNormalizeExperiences_EmptyListInEmptyListOut(t *testing.T) {
	entries, warnings := NormalizeExperiences(nil)
	assert.Empty(t, entries)
	assert.Empty(t, warnings)
	assert.NotNil(t, entries)
}

func TestNormalizeEducation_DegreeDisplayAndPlainDescription(t *testing.T) {
	items := []types.Education{
		{
			Institution:       "MIT",
			Degree:            types.DegreeMaster,
			Field:             "Computer Science",
			StartDate:         date(2018, time.September),
			CurrentlyStudying: true,
			Description:       "Thesis on distributed systems. Focus on consensus.",
		},
	}

	entries, warnings := NormalizeEducation(items)

	require.Empty(t, warnings)
	require.Len(t, entries, 1)
	assert.Equal(t, "Master", entries[0].Degree)
	assert.Equal(t, "2018-09 - Present", entries[0].DateRange)
	// Education descriptions are not bulleted.
	assert.Equal(t, "Thesis on distributed systems. Focus on consensus.", entries[0].Description)
}

func TestNormalizeEducation_SkipsMissingInstitution(t *testing.T) {
	items := []types.Education{
		{Institution: "", Field: "CS", StartDate: date(2018, time.September)},
		{Institution: "MIT", Degree: types.DegreeBachelor, Field: "CS", StartDate: date(2018, time.September)},
	}

	entries, warnings := NormalizeEducation(items)

	require.Len(t, entries, 1)
	require.Len(t, warnings, 1)
	assert.Equal(t, "education", warnings[0].Section)
}

func TestNormalizeSkills_NamesOnly(t *testing.T) {
	items := []types.Skill{
		{Name: "Go", Proficiency: types.SkillExpert},
		{Name: "PostgreSQL"},
		{Name: ""},
	}

	names, warnings := NormalizeSkills(items)

	assert.Equal(t, []string{"Go", "PostgreSQL"}, names)
	assert.Len(t, warnings, 1)
}

func TestNormalizeSkillsDetailed_KeepsProficiency(t *testing.T) {
	items := []types.Skill{{Name: "Go", Proficiency: types.SkillAdvanced}}

	entries, warnings := NormalizeSkillsDetailed(items)

	require.Empty(t, warnings)
	require.Len(t, entries, 1)
	assert.Equal(t, SkillEntry{Name: "Go", Proficiency: "Advanced"}, entries[0])
}

func TestNormalizeLanguages_NativeOverridesProficiency(t *testing.T) {
	items := []types.Language{
		{Name: "Arabic", Proficiency: types.ProficiencyB2, IsNative: true},
		{Name: "English", Proficiency: types.ProficiencyC1},
	}

	entries, warnings := NormalizeLanguages(items)

	require.Empty(t, warnings)
	require.Len(t, entries, 2)
	assert.Equal(t, "Native", entries[0].Proficiency)
	assert.Equal(t, "C1", entries[1].Proficiency)
}

func TestNormalizeCertifications_OptionalFieldsDefaultEmpty(t *testing.T) {
	items := []types.Certification{
		{Name: "CKA", IssuingOrganization: "CNCF", IssueDate: date(2022, time.February)},
	}

	entries, warnings := NormalizeCertifications(items)

	require.Empty(t, warnings)
	require.Len(t, entries, 1)
	assert.Equal(t, "2022-02", entries[0].IssueDate)
	assert.Equal(t, "", entries[0].CertificateURL)
	assert.Equal(t, "", entries[0].Description)
}

func TestNormalizeProjects_OngoingAndNoDates(t *testing.T) {
	items := []types.Project{
		{Title: "Side Project", StartDate: date(2023, time.January), EndDate: date(2024, time.January), IsOngoing: true},
		{Title: "Old Tool", Description: "A CLI"},
	}

	entries, warnings := NormalizeProjects(items)

	require.Empty(t, warnings)
	require.Len(t, entries, 2)
	assert.Equal(t, "2023-01 - Present", entries[0].DateRange)
	assert.Equal(t, "", entries[1].DateRange)
	assert.NotNil(t, entries[1].Technologies)
}

func TestNormalizeLinks_NameFallsBackToURL(t *testing.T) {
	items := []types.Link{
		{WebsiteName: "", WebsiteURL: "https://github.com/karim"},
		{WebsiteName: "Portfolio", WebsiteURL: ""},
	}

	entries, warnings := NormalizeLinks(items)

	require.Len(t, entries, 1)
	assert.Equal(t, "https://github.com/karim", entries[0].WebsiteName)
	require.Len(t, warnings, 1)
	assert.Equal(t, "personal_link", warnings[0].Section)
}
