package resume

import (
	"log"
	"strconv"

	"github.com/karim/resume-builder/internal/types"
)

// Template variable names. Every build produces exactly this key set; values
// are strings, []string, or slices of the entry structs in normalize.go, and
// are always present regardless of input completeness.
const (
	VarName              = "name"
	VarEmail             = "email"
	VarPhone             = "phone"
	VarJobTitle          = "job_title"
	VarLinkedIn          = "linkedin"
	VarWebsite           = "website"
	VarSummary           = "summary"
	VarWorkField         = "work_field"
	VarYearsOfExperience = "years_of_experience"
	VarCurrentPosition   = "current_position"
	VarCity              = "city"
	VarCountry           = "country"
	VarTechnicalSkills   = "technical_skills"
	VarSoftSkills        = "soft_skills"
	VarExperience        = "experience"
	VarVolunteering      = "volunteering"
	VarEducation         = "education"
	VarCertifications    = "certifications"
	VarLanguages         = "languages"
	VarPersonalWork      = "personal_work"
	VarPersonalLinks     = "personal_links"

	// Extension variables, not part of the default template contract.
	VarTechnicalSkillsDetailed = "technical_skills_detailed"
	VarSoftSkillsDetailed      = "soft_skills_detailed"
)

// TemplateData is the flat variable mapping handed to the document renderer.
type TemplateData map[string]any

// ValidationReport is the structured result of the completeness check.
type ValidationReport struct {
	CanGenerate     bool     `json:"can_generate"`
	MissingData     []string `json:"missing_data"`
	Recommendations []string `json:"recommendations"`
}

// CheckCompleteness flags a bundle that cannot produce a useful resume: no
// profile, or no career experience and no education at all. Volunteering
// alone does not count as career history. It also produces advisory
// recommendations; none of them block generation on the build path.
func CheckCompleteness(bundle *types.ResumeBundle) ValidationReport {
	report := ValidationReport{
		CanGenerate:     true,
		MissingData:     []string{},
		Recommendations: []string{},
	}
	if bundle == nil {
		report.CanGenerate = false
		report.MissingData = append(report.MissingData, "personal_info")
		return report
	}

	if bundle.Profile == nil {
		report.CanGenerate = false
		report.MissingData = append(report.MissingData, "personal_info")
	}
	if len(bundle.CareerExperiences) == 0 && len(bundle.Education) == 0 {
		report.CanGenerate = false
		report.MissingData = append(report.MissingData, "experience or education")
	}

	if bundle.Profile != nil && bundle.Profile.Summary == "" {
		report.Recommendations = append(report.Recommendations, "Add a profile summary to introduce yourself to recruiters")
	}
	if len(bundle.TechnicalSkills) == 0 && len(bundle.SoftSkills) == 0 {
		report.Recommendations = append(report.Recommendations, "List a few skills so the skills section is not empty")
	}
	if len(bundle.Languages) == 0 {
		report.Recommendations = append(report.Recommendations, "Add the languages you speak")
	}
	if bundle.Profile != nil && bundle.Profile.LinkedInURL == "" {
		report.Recommendations = append(report.Recommendations, "Link your LinkedIn profile")
	}
	return report
}

// PrepareResumeData builds the flat template-variable mapping from a bundle.
// When an authenticated identity is supplied its name/email/phone win over
// the profile record; otherwise the profile's own fields are used verbatim.
//
// Every section tolerates an empty input list, and malformed records inside a
// list are skipped (collected in the returned warnings) rather than aborting
// the build. Only a nil bundle is an error.
func PrepareResumeData(bundle *types.ResumeBundle, identity *types.AccountIdentity) (TemplateData, []SkipWarning, error) {
	if bundle == nil {
		return nil, nil, &BundleMissingError{}
	}

	if report := CheckCompleteness(bundle); !report.CanGenerate {
		// Advisory only on the build path.
		log.Printf("[AGGREGATE] resume incomplete: missing %v", report.MissingData)
	}

	data := TemplateData{}
	var warnings []SkipWarning
	collect := func(w []SkipWarning) { warnings = append(warnings, w...) }

	applyIdentity(data, bundle.Profile, identity)
	applyProfile(data, bundle.Profile)

	technical, w := NormalizeSkills(bundle.TechnicalSkills)
	collect(w)
	data[VarTechnicalSkills] = technical

	soft, w := NormalizeSkills(bundle.SoftSkills)
	collect(w)
	data[VarSoftSkills] = soft

	technicalDetailed, _ := NormalizeSkillsDetailed(bundle.TechnicalSkills)
	data[VarTechnicalSkillsDetailed] = technicalDetailed
	softDetailed, _ := NormalizeSkillsDetailed(bundle.SoftSkills)
	data[VarSoftSkillsDetailed] = softDetailed

	experience, w := NormalizeExperiences(bundle.CareerExperiences)
	collect(w)
	data[VarExperience] = experience

	volunteering, w := NormalizeExperiences(bundle.VolunteeringExperiences)
	collect(w)
	data[VarVolunteering] = volunteering

	education, w := NormalizeEducation(bundle.Education)
	collect(w)
	data[VarEducation] = education

	certifications, w := NormalizeCertifications(bundle.Certifications)
	collect(w)
	data[VarCertifications] = certifications

	languages, w := NormalizeLanguages(bundle.Languages)
	collect(w)
	data[VarLanguages] = languages

	projects, w := NormalizeProjects(bundle.Projects)
	collect(w)
	data[VarPersonalWork] = projects

	links, w := NormalizeLinks(bundle.Links)
	collect(w)
	data[VarPersonalLinks] = links

	return data, warnings, nil
}

// applyIdentity resolves name/email/phone. An authenticated identity is
// preferred; the profile record is the fallback for stateless builds.
func applyIdentity(data TemplateData, profile *types.Profile, identity *types.AccountIdentity) {
	switch {
	case identity != nil:
		data[VarName] = identity.Name
		data[VarEmail] = identity.Email
		data[VarPhone] = identity.Phone
	case profile != nil:
		data[VarName] = profile.Name
		data[VarEmail] = profile.Email
		data[VarPhone] = profile.Phone
	default:
		data[VarName] = ""
		data[VarEmail] = ""
		data[VarPhone] = ""
	}
}

// applyProfile fills the profile-derived scalar variables, defaulting every
// absent field to an empty string.
func applyProfile(data TemplateData, profile *types.Profile) {
	if profile == nil {
		for _, key := range []string{
			VarJobTitle, VarLinkedIn, VarWebsite, VarSummary, VarWorkField,
			VarYearsOfExperience, VarCurrentPosition, VarCity, VarCountry,
		} {
			data[key] = ""
		}
		return
	}

	data[VarJobTitle] = profile.CurrentPosition
	data[VarLinkedIn] = profile.LinkedInURL
	data[VarWebsite] = profile.WebsiteURL
	data[VarSummary] = profile.Summary
	data[VarWorkField] = profile.WorkField.Display()
	data[VarCurrentPosition] = profile.CurrentPosition

	years := ""
	if profile.YearsOfExperience > 0 {
		years = strconv.Itoa(profile.YearsOfExperience)
	}
	data[VarYearsOfExperience] = years

	city, country := "", ""
	if profile.Address != nil {
		city = profile.Address.City
		country = profile.Address.Country
	}
	data[VarCity] = city
	data[VarCountry] = country
}
