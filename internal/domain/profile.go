package domain

type UserType string

const (
	UserTypeCurrentStudent    UserType = "CURRENT_STUDENT"
	UserTypeRecentGraduate    UserType = "RECENT_GRADUATE"
	UserTypeExperiencedSeeker UserType = "EXPERIENCED_SEEKER"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeCurrentStudent, UserTypeRecentGraduate, UserTypeExperiencedSeeker:
		return true
	}
	return false
}

// OpportunityType tags a non-traditional job lead. The zero value and
// OpportunityNone both mean the applicant did not pick a category.
type OpportunityType string

const (
	OpportunityFamilyFriend OpportunityType = "FAMILY_FRIEND"
	OpportunitySelfCompany  OpportunityType = "SELF_COMPANY"
	OpportunityNone         OpportunityType = "NONE"
)

func (t OpportunityType) Valid() bool {
	switch t {
	case "", OpportunityFamilyFriend, OpportunitySelfCompany, OpportunityNone:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type WorkExperience struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

// WorkOpportunityDetails keeps Responsibilities nil when the applicant sent
// none, which is distinct from an explicitly empty list.
type WorkOpportunityDetails struct {
	Company          string   `json:"company,omitempty"`
	Position         string   `json:"position,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// AdditionalInfo is everything the applicant reports besides their category
// and projects.
type AdditionalInfo struct {
	TargetPosition         string                  `json:"targetPosition,omitempty"`
	WorkExperiences        []WorkExperience        `json:"workExperiences,omitempty"`
	HasWorkOpportunity     bool                    `json:"hasWorkOpportunity,omitempty"`
	WorkOpportunityType    OpportunityType         `json:"workOpportunityType,omitempty"`
	WorkOpportunityDetails *WorkOpportunityDetails `json:"workOpportunityDetails,omitempty"`
}

type ProjectExperience struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	TechStack   []string   `json:"techStack"`
	Features    []string   `json:"features"`
	Timeline    string     `json:"timeline"`
	Difficulty  Difficulty `json:"difficulty"`
}

// GenerationInput is one résumé submission as posted by the form.
type GenerationInput struct {
	UserType           UserType            `json:"userType"`
	AdditionalInfo     AdditionalInfo      `json:"additionalInfo"`
	ProjectExperiences []ProjectExperience `json:"projectExperiences"`
}
