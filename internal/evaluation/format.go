package evaluation

import (
	"fmt"
	"strings"

	"github.com/karim/resume-builder/internal/resume"
	"github.com/karim/resume-builder/internal/types"
)

// formatAreaData renders one bundle section as prompt-ready plain text.
func formatAreaData(area Area, bundle *types.ResumeBundle) (string, error) {
	switch area {
	case AreaUserProfile:
		if bundle == nil || bundle.Profile == nil {
			return "", &ProfileRequiredError{}
		}
		return formatProfile(bundle.Profile), nil
	case AreaExperience:
		if bundle == nil {
			return "No experiences provided", nil
		}
		all := append(append([]types.Experience{}, bundle.CareerExperiences...), bundle.VolunteeringExperiences...)
		return formatExperiences(all), nil
	case AreaEducation:
		if bundle == nil {
			return "No education provided", nil
		}
		return formatEducation(bundle.Education), nil
	default:
		return "", fmt.Errorf("unknown evaluation area: %s", area)
	}
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

func formatProfile(p *types.Profile) string {
	years := "Not specified"
	if p.YearsOfExperience > 0 {
		years = fmt.Sprintf("%d", p.YearsOfExperience)
	}
	lines := []string{
		"- LinkedIn URL: " + orNotProvided(p.LinkedInURL),
		"- Profile Summary: " + orNotProvided(p.Summary),
		"- Current Position: " + orNotProvided(p.CurrentPosition),
		"- Work Field: " + orNotProvided(p.WorkField.Display()),
		"- Years of Experience: " + years,
	}
	return strings.Join(lines, "\n")
}

func formatExperiences(experiences []types.Experience) string {
	if len(experiences) == 0 {
		return "No experiences provided"
	}

	var sb strings.Builder
	for i, exp := range experiences {
		fmt.Fprintf(&sb, "Experience %d:\n", i+1)
		fmt.Fprintf(&sb, "- Title: %s\n", exp.Title)
		fmt.Fprintf(&sb, "- Company: %s\n", exp.Company)
		if exp.SeniorityLevel != "" {
			fmt.Fprintf(&sb, "- Seniority: %s\n", exp.SeniorityLevel.Display())
		}
		fmt.Fprintf(&sb, "- Duration: %s\n", resume.FormatRange(exp.StartDate, exp.EndDate, exp.CurrentlyWorking))
		fmt.Fprintf(&sb, "- Is Volunteer: %t\n", exp.IsVolunteer)
		fmt.Fprintf(&sb, "- Description: %s\n\n", orNoDescription(exp.Description))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatEducation(entries []types.Education) string {
	if len(entries) == 0 {
		return "No education provided"
	}

	var sb strings.Builder
	for i, edu := range entries {
		duration := resume.FormatRange(edu.StartDate, edu.EndDate, edu.CurrentlyStudying)
		if edu.CurrentlyStudying {
			duration = "Currently studying, since " + resume.FormatDate(edu.StartDate)
		}
		fmt.Fprintf(&sb, "Education %d:\n", i+1)
		fmt.Fprintf(&sb, "- Institution: %s\n", edu.Institution)
		fmt.Fprintf(&sb, "- Degree: %s\n", edu.Degree.Display())
		fmt.Fprintf(&sb, "- Field: %s\n", edu.Field)
		fmt.Fprintf(&sb, "- Duration: %s\n", duration)
		fmt.Fprintf(&sb, "- Description: %s\n\n", orNoDescription(edu.Description))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func orNoDescription(s string) string {
	if s == "" {
		return "No description provided"
	}
	return s
}
