package resume

import (
	"log"
	"strings"

	"github.com/karim/resume-builder/internal/types"
)

// SkipWarning records one malformed record that was dropped during
// normalization. One bad history entry must never break the whole resume, so
// normalizers collect these instead of failing.
type SkipWarning struct {
	Section    string `json:"section"`
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

// ExperienceEntry is the template-safe shape of one experience record.
type ExperienceEntry struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	SeniorityLevel string   `json:"seniority_level"`
	Location       string   `json:"location"`
	DateRange      string   `json:"date_range"`
	Details        []string `json:"details"`
}

// EducationEntry is the template-safe shape of one education record.
// Education descriptions stay plain text; they are not bulleted on render.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	DateRange   string `json:"date_range"`
	Description string `json:"description"`
}

// CertificationEntry is the template-safe shape of one certification record.
type CertificationEntry struct {
	Name           string `json:"name"`
	Organization   string `json:"organization"`
	IssueDate      string `json:"issue_date"`
	CertificateURL string `json:"certificate_url"`
	Description    string `json:"description"`
}

// LanguageEntry is the template-safe shape of one language record.
type LanguageEntry struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// ProjectEntry is the template-safe shape of one personal project record.
type ProjectEntry struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Technologies  []string `json:"technologies"`
	URL           string   `json:"url"`
	RepositoryURL string   `json:"repository_url"`
	DateRange     string   `json:"date_range"`
}

// LinkEntry is the template-safe shape of one personal link record.
type LinkEntry struct {
	WebsiteName string `json:"website_name"`
	WebsiteURL  string `json:"website_url"`
}

// SkillEntry pairs a skill name with its optional proficiency display string.
// The default template contract surfaces names only; proficiency is exposed
// as an extension for templates that want it.
type SkillEntry struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// skip logs and records one dropped record.
func skip(warnings []SkipWarning, section, identifier, reason string) []SkipWarning {
	if identifier == "" {
		identifier = "unknown"
	}
	log.Printf("[NORMALIZE] skipping %s record %q: %s", section, identifier, reason)
	return append(warnings, SkipWarning{Section: section, Identifier: identifier, Reason: reason})
}

// joinLocation flattens an optional address into "City, Country", dropping
// empty segments and the separator when either side is missing.
func joinLocation(addr *types.Address) string {
	if addr == nil {
		return ""
	}
	segments := make([]string, 0, 2)
	if city := strings.TrimSpace(addr.City); city != "" {
		segments = append(segments, city)
	}
	if country := strings.TrimSpace(addr.Country); country != "" {
		segments = append(segments, country)
	}
	return strings.Join(segments, ", ")
}

// NormalizeExperiences converts raw experience records into template-safe
// entries. Records missing a title, company or start date are skipped with a
// warning; the rest of the list is unaffected.
func NormalizeExperiences(items []types.Experience) ([]ExperienceEntry, []SkipWarning) {
	entries := make([]ExperienceEntry, 0, len(items))
	var warnings []SkipWarning

	for _, exp := range items {
		switch {
		case exp.Title == "":
			warnings = skip(warnings, "experience", exp.Company, "missing title")
			continue
		case exp.Company == "":
			warnings = skip(warnings, "experience", exp.Title, "missing company")
			continue
		case exp.StartDate == nil:
			warnings = skip(warnings, "experience", exp.Title, "missing start date")
			continue
		}

		end := exp.EndDate
		if exp.CurrentlyWorking {
			// A stale end date must not leak into the range.
			end = nil
		}

		entries = append(entries, ExperienceEntry{
			Title:          exp.Title,
			Company:        exp.Company,
			SeniorityLevel: exp.SeniorityLevel.Display(),
			Location:       joinLocation(exp.Location),
			DateRange:      FormatRange(exp.StartDate, end, exp.CurrentlyWorking),
			Details:        SegmentDescription(exp.Description),
		})
	}
	return entries, warnings
}

// NormalizeEducation converts raw education records into template-safe
// entries. Records missing an institution or start date are skipped.
func NormalizeEducation(items []types.Education) ([]EducationEntry, []SkipWarning) {
	entries := make([]EducationEntry, 0, len(items))
	var warnings []SkipWarning

	for _, edu := range items {
		switch {
		case edu.Institution == "":
			warnings = skip(warnings, "education", edu.Field, "missing institution")
			continue
		case edu.StartDate == nil:
			warnings = skip(warnings, "education", edu.Institution, "missing start date")
			continue
		}

		end := edu.EndDate
		if edu.CurrentlyStudying {
			end = nil
		}

		entries = append(entries, EducationEntry{
			Degree:      edu.Degree.Display(),
			Field:       edu.Field,
			Institution: edu.Institution,
			DateRange:   FormatRange(edu.StartDate, end, edu.CurrentlyStudying),
			Description: edu.Description,
		})
	}
	return entries, warnings
}

// NormalizeSkills reduces skill records to their display names. Nameless
// records are skipped.
func NormalizeSkills(items []types.Skill) ([]string, []SkipWarning) {
	names := make([]string, 0, len(items))
	var warnings []SkipWarning
	for _, s := range items {
		if s.Name == "" {
			warnings = skip(warnings, "skill", string(s.Proficiency), "missing name")
			continue
		}
		names = append(names, s.Name)
	}
	return names, warnings
}

// NormalizeSkillsDetailed keeps the optional proficiency alongside each name,
// for templates that surface skill levels.
func NormalizeSkillsDetailed(items []types.Skill) ([]SkillEntry, []SkipWarning) {
	entries := make([]SkillEntry, 0, len(items))
	var warnings []SkipWarning
	for _, s := range items {
		if s.Name == "" {
			warnings = skip(warnings, "skill", string(s.Proficiency), "missing name")
			continue
		}
		entries = append(entries, SkillEntry{Name: s.Name, Proficiency: s.Proficiency.Display()})
	}
	return entries, warnings
}

// NormalizeLanguages converts language records, folding the native flag into
// the proficiency display string.
func NormalizeLanguages(items []types.Language) ([]LanguageEntry, []SkipWarning) {
	entries := make([]LanguageEntry, 0, len(items))
	var warnings []SkipWarning
	for _, lang := range items {
		if lang.Name == "" {
			warnings = skip(warnings, "language", string(lang.Proficiency), "missing name")
			continue
		}
		proficiency := lang.Proficiency.Display()
		if lang.IsNative {
			proficiency = types.ProficiencyNative.Display()
		}
		entries = append(entries, LanguageEntry{Name: lang.Name, Proficiency: proficiency})
	}
	return entries, warnings
}

// NormalizeCertifications converts certification records. Nameless records
// are skipped; all optional text fields default to empty strings.
func NormalizeCertifications(items []types.Certification) ([]CertificationEntry, []SkipWarning) {
	entries := make([]CertificationEntry, 0, len(items))
	var warnings []SkipWarning
	for _, cert := range items {
		if cert.Name == "" {
			warnings = skip(warnings, "certification", cert.IssuingOrganization, "missing name")
			continue
		}
		entries = append(entries, CertificationEntry{
			Name:           cert.Name,
			Organization:   cert.IssuingOrganization,
			IssueDate:      FormatDate(cert.IssueDate),
			CertificateURL: cert.CertificateURL,
			Description:    cert.Description,
		})
	}
	return entries, warnings
}

// NormalizeProjects converts personal project records. A project without a
// start date renders an empty date range rather than being skipped.
func NormalizeProjects(items []types.Project) ([]ProjectEntry, []SkipWarning) {
	entries := make([]ProjectEntry, 0, len(items))
	var warnings []SkipWarning
	for _, project := range items {
		if project.Title == "" {
			warnings = skip(warnings, "personal_project", project.URL, "missing title")
			continue
		}

		end := project.EndDate
		if project.IsOngoing {
			end = nil
		}

		technologies := project.Technologies
		if technologies == nil {
			technologies = []string{}
		}

		entries = append(entries, ProjectEntry{
			Title:         project.Title,
			Description:   project.Description,
			Technologies:  technologies,
			URL:           project.URL,
			RepositoryURL: project.RepositoryURL,
			DateRange:     FormatRange(project.StartDate, end, project.IsOngoing),
		})
	}
	return entries, warnings
}

// NormalizeLinks converts personal link records. Records without a URL are
// skipped; the display name falls back to the URL when absent.
func NormalizeLinks(items []types.Link) ([]LinkEntry, []SkipWarning) {
	entries := make([]LinkEntry, 0, len(items))
	var warnings []SkipWarning
	for _, link := range items {
		if link.WebsiteURL == "" {
			warnings = skip(warnings, "personal_link", link.WebsiteName, "missing url")
			continue
		}
		name := link.WebsiteName
		if name == "" {
			name = link.WebsiteURL
		}
		entries = append(entries, LinkEntry{WebsiteName: name, WebsiteURL: link.WebsiteURL})
	}
	return entries, warnings
}
