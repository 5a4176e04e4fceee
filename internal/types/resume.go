// Package types provides type definitions for the structured career data that
// flows through the resume-builder system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Address is a city/country pair. Both fields are optional.
type Address struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Profile is a user's personal profile record. Name, Email and Phone act as
// fallback identity values for stateless builds; when an authenticated account
// is present its identity wins over these fields.
type Profile struct {
	ID                uuid.UUID `json:"id,omitempty"`
	UserID            uuid.UUID `json:"user_id,omitempty"`
	Name              string    `json:"name,omitempty"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	CurrentPosition   string    `json:"current_position,omitempty"`
	WorkField         WorkField `json:"work_field,omitempty"`
	YearsOfExperience int       `json:"years_of_experience,omitempty"`
	LinkedInURL       string    `json:"linkedin_url,omitempty"`
	WebsiteURL        string    `json:"website_url,omitempty"`
	Summary           string    `json:"profile_summary,omitempty"`
	Address           *Address  `json:"address,omitempty"`
	CreatedAt         time.Time `json:"created_at,omitempty"`
	UpdatedAt         time.Time `json:"updated_at,omitempty"`
}

// Experience is a single work or volunteering history entry.
// If CurrentlyWorking is true, EndDate is ignored even when set.
type Experience struct {
	ID               uuid.UUID  `json:"id,omitempty"`
	UserID           uuid.UUID  `json:"user_id,omitempty"`
	Title            string     `json:"title"`
	SeniorityLevel   Seniority  `json:"seniority_level"`
	Company          string     `json:"company"`
	Location         *Address   `json:"location,omitempty"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CurrentlyWorking bool       `json:"currently_working"`
	Description      string     `json:"description,omitempty"`
	IsVolunteer      bool       `json:"is_volunteer"`
}

// Education is a single education history entry.
// If CurrentlyStudying is true, EndDate is ignored even when set.
type Education struct {
	ID                uuid.UUID  `json:"id,omitempty"`
	UserID            uuid.UUID  `json:"user_id,omitempty"`
	Institution       string     `json:"institution"`
	Degree            Degree     `json:"degree"`
	Field             string     `json:"field"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CurrentlyStudying bool       `json:"currently_studying"`
	Description       string     `json:"description,omitempty"`
}

// Skill is a single technical or soft skill.
type Skill struct {
	ID          uuid.UUID        `json:"id,omitempty"`
	UserID      uuid.UUID        `json:"user_id,omitempty"`
	Name        string           `json:"name"`
	Proficiency SkillProficiency `json:"proficiency,omitempty"`
	IsSoftSkill bool             `json:"is_soft_skill"`
}

// Language is a spoken language with a CEFR proficiency.
type Language struct {
	ID          uuid.UUID           `json:"id,omitempty"`
	UserID      uuid.UUID           `json:"user_id,omitempty"`
	Name        string              `json:"name"`
	Proficiency LanguageProficiency `json:"proficiency"`
	IsNative    bool                `json:"is_native"`
}

// Certification is a professional certification entry.
type Certification struct {
	ID                  uuid.UUID  `json:"id,omitempty"`
	UserID              uuid.UUID  `json:"user_id,omitempty"`
	Name                string     `json:"name"`
	IssuingOrganization string     `json:"issuing_organization"`
	IssueDate           *time.Time `json:"issue_date"`
	CertificateURL      string     `json:"certificate_url,omitempty"`
	Description         string     `json:"description,omitempty"`
}

// Project is a personal project entry.
// If IsOngoing is true, EndDate is ignored even when set.
type Project struct {
	ID            uuid.UUID  `json:"id,omitempty"`
	UserID        uuid.UUID  `json:"user_id,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Technologies  []string   `json:"technologies,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	IsOngoing     bool       `json:"is_ongoing"`
	URL           string     `json:"url,omitempty"`
	RepositoryURL string     `json:"repository_url,omitempty"`
}

// Link is a named personal link (portfolio, GitHub, ...).
type Link struct {
	ID          uuid.UUID `json:"id,omitempty"`
	UserID      uuid.UUID `json:"user_id,omitempty"`
	WebsiteName string    `json:"website_name"`
	WebsiteURL  string    `json:"website_url"`
}
