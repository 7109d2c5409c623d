package formatters

import (
	"fmt"
	"strings"

	"resume-builder/internal/domain"
)

const promptHeader = "Please generate a professional resume for a computer science professional based on the following information:\n\n"

const promptClosing = `Please generate a professional resume including:
1. Professional Summary
2. Technical Skills
3. Work Experience (if any)
4. Project Experience
5. Education

Please ensure:
- Highlight technical aspects and solutions
- Emphasize project outcomes and impact
- Use professional technical terminology
- Maintain clear and concise expression`

// ResumePrompt renders a submission into the user message sent to the
// completion API. It is deterministic: equal inputs give identical bytes.
func ResumePrompt(in domain.GenerationInput) string {
	var b strings.Builder
	b.WriteString(promptHeader)

	fmt.Fprintf(&b, "Applicant Type: %s\n\n", UserTypeLabel(in.UserType))

	info := in.AdditionalInfo
	if info.TargetPosition != "" {
		fmt.Fprintf(&b, "Target Position: %s\n\n", info.TargetPosition)
	}

	if len(info.WorkExperiences) > 0 {
		b.WriteString("Work Experience:\n")
		for _, exp := range info.WorkExperiences {
			fmt.Fprintf(&b, "- Company: %s\n", exp.Company)
			fmt.Fprintf(&b, "  Position: %s\n", exp.Position)
			fmt.Fprintf(&b, "  Duration: %s\n", exp.Duration)
			fmt.Fprintf(&b, "  Responsibilities:\n%s\n\n", bulletList(exp.Responsibilities, "    - "))
		}
	}

	if info.HasWorkOpportunity && info.WorkOpportunityDetails != nil {
		details := info.WorkOpportunityDetails
		b.WriteString("Potential Work Opportunity:\n")
		fmt.Fprintf(&b, "Type: %s\n", OpportunityLabel(info.WorkOpportunityType))
		if details.Company != "" {
			fmt.Fprintf(&b, "Company: %s\n", details.Company)
		}
		if details.Position != "" {
			fmt.Fprintf(&b, "Position: %s\n", details.Position)
		}
		if details.Responsibilities != nil {
			fmt.Fprintf(&b, "Responsibilities:\n%s\n\n", bulletList(details.Responsibilities, "- "))
		}
	}

	if len(in.ProjectExperiences) > 0 {
		b.WriteString("Project Experience:\n")
		for _, p := range in.ProjectExperiences {
			fmt.Fprintf(&b, "- Project Name: %s\n", p.Name)
			fmt.Fprintf(&b, "  Description: %s\n", p.Description)
			fmt.Fprintf(&b, "  Tech Stack: %s\n", strings.Join(p.TechStack, ", "))
			fmt.Fprintf(&b, "  Key Features:\n%s\n", bulletList(p.Features, "    - "))
			fmt.Fprintf(&b, "  Timeline: %s\n", p.Timeline)
			fmt.Fprintf(&b, "  Difficulty Level: %s\n\n", DifficultyLabel(p.Difficulty))
		}
	}

	b.WriteString(promptClosing)
	return b.String()
}

func bulletList(items []string, prefix string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = prefix + it
	}
	return strings.Join(lines, "\n")
}
