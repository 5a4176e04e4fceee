package types

// Seniority is the seniority level of an experience entry.
// The string value doubles as the display value in rendered documents.
type Seniority string

const (
	SeniorityIntern    Seniority = "Intern"
	SeniorityJunior    Seniority = "Junior"
	SeniorityMid       Seniority = "Mid-level"
	SenioritySenior    Seniority = "Senior"
	SeniorityLead      Seniority = "Lead"
	SeniorityManager   Seniority = "Manager"
	SeniorityDirector  Seniority = "Director"
	SeniorityExecutive Seniority = "Executive"
)

// Display returns the human-readable form of the seniority level.
func (s Seniority) Display() string { return string(s) }

// Degree is the degree obtained or pursued in an education entry.
type Degree string

const (
	DegreeBachelor  Degree = "Bachelor"
	DegreeMaster    Degree = "Master"
	DegreePhD       Degree = "PhD"
	DegreeAssociate Degree = "Associate"
	DegreeDiploma   Degree = "Diploma"
	DegreeOther     Degree = "Other"
)

// Display returns the human-readable form of the degree.
func (d Degree) Display() string { return string(d) }

// LanguageProficiency is a CEFR proficiency level (A1..C2) or "Native".
type LanguageProficiency string

const (
	ProficiencyA1     LanguageProficiency = "A1"
	ProficiencyA2     LanguageProficiency = "A2"
	ProficiencyB1     LanguageProficiency = "B1"
	ProficiencyB2     LanguageProficiency = "B2"
	ProficiencyC1     LanguageProficiency = "C1"
	ProficiencyC2     LanguageProficiency = "C2"
	ProficiencyNative LanguageProficiency = "Native"
)

// Display returns the human-readable form of the proficiency level.
func (p LanguageProficiency) Display() string { return string(p) }

// SkillProficiency is an optional self-assessed skill level.
type SkillProficiency string

const (
	SkillBeginner     SkillProficiency = "Beginner"
	SkillIntermediate SkillProficiency = "Intermediate"
	SkillAdvanced     SkillProficiency = "Advanced"
	SkillExpert       SkillProficiency = "Expert"
)

// Display returns the human-readable form of the skill level, or "" when unset.
func (p SkillProficiency) Display() string { return string(p) }

// WorkField is the broad professional field declared on a profile.
type WorkField string

const (
	FieldEngineering WorkField = "Engineering"
	FieldMedicine    WorkField = "Medicine"
	FieldEducation   WorkField = "Education"
	FieldBusiness    WorkField = "Business"
	FieldDesign      WorkField = "Design"
	FieldLegal       WorkField = "Legal"
	FieldOther       WorkField = "Other"
)

// Display returns the human-readable form of the work field, or "" when unset.
func (f WorkField) Display() string { return string(f) }
