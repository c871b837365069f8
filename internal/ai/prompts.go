package ai

import (
	"fmt"
	"strconv"
	"strings"
)

const assistantSystem = "You're an AI assistant focused on answering questions about jobs and careers only. Politely reject any other topic."

func resumePrompt(in ResumeInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate an ATS-friendly resume for %s based on the following details:\n\n", in.PersonalInfo.Name)
	fmt.Fprintf(&b, "Personal Information:\n- Name: %s\n- Phone: %s\n- Email: %s\n\n",
		in.PersonalInfo.Name, in.PersonalInfo.Phone, in.PersonalInfo.Email)

	b.WriteString("Professional Links:\n")
	if len(in.Links) == 0 {
		b.WriteString("None provided\n")
	}
	for _, l := range in.Links {
		fmt.Fprintf(&b, "- %s: %s\n", l.Platform, l.URL)
	}

	b.WriteString("\nEducation:\n")
	for _, e := range in.Education {
		fmt.Fprintf(&b, "- %s from %s (%s)\n", e.Degree, e.Institution, e.Year)
	}

	b.WriteString("\nProfessional Experience:\n")
	for _, e := range in.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s)\n  Description: %s\n", e.Position, e.Company, e.Duration, e.Description)
	}

	b.WriteString("\nProjects:\n")
	if len(in.Projects) == 0 {
		b.WriteString("None provided\n")
	}
	for _, p := range in.Projects {
		fmt.Fprintf(&b, "- %s\n  Technologies: %s\n  Description: %s\n", p.Name, p.Technologies, p.Description)
	}

	fmt.Fprintf(&b, "\nSkills:\n%s\n", in.Skills)

	extra := in.ExtraCurricular
	if extra == "" {
		extra = "None provided"
	}
	fmt.Fprintf(&b, "\nExtra Curricular Activities:\n%s\n", extra)

	b.WriteString(`
Create a resume that will pass ATS screening and highlight the candidate's qualifications effectively.
Format the response as a JSON object with the following structure:
{
    "summary": "A brief professional summary based on the provided details.",
    "sections": [
        {
            "title": "Section Title (e.g., Education, Professional Experience, etc.)",
            "content": ["List of bullet points for this section OR a paragraph"]
        }
    ]
}

Focus on creating bullet points that emphasize achievements and use action verbs. Make sure the structure is clean and ATS-friendly.`)

	return b.String()
}

// timeframe renders a time-range code ("2-YEARS", "CUSTOM-18") as natural
// language for the prompt.
func timeframe(timeRange string) string {
	if months, ok := strings.CutPrefix(timeRange, "CUSTOM-"); ok {
		n, err := strconv.Atoi(months)
		if err != nil || n <= 0 {
			return "2 years"
		}
		years, rest := n/12, n%12
		switch {
		case years > 0 && rest > 0:
			return fmt.Sprintf("%s and %s", plural(years, "year"), plural(rest, "month"))
		case years > 0:
			return plural(years, "year")
		default:
			return plural(n, "month")
		}
	}

	switch timeRange {
	case "1-YEAR":
		return "1 year"
	case "2-YEARS":
		return "2 years"
	case "3-YEARS":
		return "3 years"
	case "5-YEARS":
		return "5 years"
	}
	return "2 years"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func roadmapPrompt(jobTitle, level, timeRange string) string {
	tf := timeframe(timeRange)
	return fmt.Sprintf(`Create a detailed career roadmap for someone pursuing a role as a %s who is currently at a %s level, with a timeframe of %s.

Format the response as clean, well-structured HTML with inline CSS styling that makes it visually appealing and ready to render directly in a web application.

Structure the roadmap with these sections:
1. Career Path Overview: High-level summary with progression milestones for the next %s
2. Skills Development Roadmap: Timeline with stages appropriate for a %s plan, showing technical skills, soft skills, projects, and resources
3. Key Technologies: Essential technologies/tools to master within this timeframe
4. Industry Certifications: Relevant certifications achievable in %s
5. Learning Resources: Recommended books, courses, communities
6. Salary Expectations: Expected compensation at different stages

Use this styling:
- Modern color scheme with primary color #3b82f6 (blue)
- Responsive design principles with clean typography
- Visual elements like progress bars, cards, and timelines
- Clear sections with appropriate spacing

Include realistic industry trends and common challenges people face. The HTML should be complete and render beautifully without external CSS.

Don't include sample HTML comments or placeholder text in your response.`,
		jobTitle, level, tf, tf, tf, tf)
}

func challengePrompt(topic string) string {
	return fmt.Sprintf(`Generate a coding problem about %s.
Include the following:
1. A title for the problem
2. A detailed description of the problem
3. 3-4 example test cases with inputs and expected outputs
4. A brief explanation of the concept and approach to solve it

Format your response as a JSON object with fields: title, description, testCases (array of objects with input and output), and explanation.`, topic)
}
