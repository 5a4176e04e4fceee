package types

// ResumeBundle is the transient aggregate of one user's profile plus all
// career-history lists, assembled fresh per build request and never persisted.
// Career and volunteering experiences arrive already partitioned by the
// IsVolunteer flag; technical and soft skills by the IsSoftSkill flag.
type ResumeBundle struct {
	Profile                 *Profile        `json:"personal_info,omitempty"`
	CareerExperiences       []Experience    `json:"career_experiences,omitempty"`
	VolunteeringExperiences []Experience    `json:"volunteering_experiences,omitempty"`
	Education               []Education     `json:"education,omitempty"`
	TechnicalSkills         []Skill         `json:"technical_skills,omitempty"`
	SoftSkills              []Skill         `json:"soft_skills,omitempty"`
	Certifications          []Certification `json:"certifications,omitempty"`
	Languages               []Language      `json:"languages,omitempty"`
	Projects                []Project       `json:"personal_projects,omitempty"`
	Links                   []Link          `json:"personal_links,omitempty"`
}

// AccountIdentity carries the identity fields of an authenticated account.
// When present these override the profile's own name/email/phone.
type AccountIdentity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SortExperiences partitions a mixed experience list into career and
// volunteering lists, preserving input order within each.
func SortExperiences(all []Experience) (career, volunteering []Experience) {
	career = make([]Experience, 0, len(all))
	volunteering = make([]Experience, 0)
	for _, exp := range all {
		if exp.IsVolunteer {
			volunteering = append(volunteering, exp)
		} else {
			career = append(career, exp)
		}
	}
	return career, volunteering
}

// SortSkills partitions a mixed skill list into technical and soft lists,
// preserving input order within each.
func SortSkills(all []Skill) (technical, soft []Skill) {
	technical = make([]Skill, 0, len(all))
	soft = make([]Skill, 0)
	for _, s := range all {
		if s.IsSoftSkill {
			soft = append(soft, s)
		} else {
			technical = append(technical, s)
		}
	}
	return technical, soft
}
