package formatters

import (
	"fmt"

	"resume-builder/internal/domain"
)

var userTypeLabels = map[domain.UserType]string{
	domain.UserTypeCurrentStudent:    "Current Student (Freshman to Junior)",
	domain.UserTypeRecentGraduate:    "Recent Graduate (Senior/Graduate Student)",
	domain.UserTypeExperiencedSeeker: "Experienced Job Seeker (1-2 years post-graduation)",
}

var opportunityLabels = map[domain.OpportunityType]string{
	domain.OpportunityFamilyFriend: "Family/Friend Company Opportunity",
	domain.OpportunitySelfCompany:  "Self-Owned Company Opportunity",
	domain.OpportunityNone:         "Other Opportunity",
	"":                             "Other Opportunity",
}

var difficultyLabels = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "Basic",
	domain.DifficultyMedium: "Intermediate",
	domain.DifficultyHard:   "Advanced",
}

// UserTypeLabel panics on a value outside the enum; callers validate input
// before building a prompt.
func UserTypeLabel(t domain.UserType) string {
	l, ok := userTypeLabels[t]
	if !ok {
		panic(fmt.Sprintf("formatters: unmapped user type %q", string(t)))
	}
	return l
}

func OpportunityLabel(t domain.OpportunityType) string {
	l, ok := opportunityLabels[t]
	if !ok {
		panic(fmt.Sprintf("formatters: unmapped opportunity type %q", string(t)))
	}
	return l
}

func DifficultyLabel(d domain.Difficulty) string {
	l, ok := difficultyLabels[d]
	if !ok {
		panic(fmt.Sprintf("formatters: unmapped difficulty %q", string(d)))
	}
	return l
}
