package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeframe(t *testing.T) {
	tt := []struct {
		in   string
		want string
	}{
		{"1-YEAR", "1 year"},
		{"2-YEARS", "2 years"},
		{"3-YEARS", "3 years"},
		{"5-YEARS", "5 years"},
		{"CUSTOM-18", "1 year and 6 months"},
		{"CUSTOM-12", "1 year"},
		{"CUSTOM-24", "2 years"},
		{"CUSTOM-7", "7 months"},
		{"CUSTOM-1", "1 month"},
		{"CUSTOM-0", "2 years"},
		{"CUSTOM-abc", "2 years"},
		{"whatever", "2 years"},
	}
	for _, tc := range tt {
		assert.Equal(t, tc.want, timeframe(tc.in), "timeRange %q", tc.in)
	}
}

func TestResumePromptIncludesDetails(t *testing.T) {
	prompt := resumePrompt(ResumeInput{
		Skills: "Go, Kubernetes",
	})
	assert.Contains(t, prompt, "Go, Kubernetes")
	assert.Contains(t, prompt, "None provided")
}

func TestRoadmapPromptUsesTimeframe(t *testing.T) {
	prompt := roadmapPrompt("Backend Developer", "BEGINNER", "CUSTOM-18")
	assert.Contains(t, prompt, "Backend Developer")
	assert.Contains(t, prompt, "BEGINNER")
	assert.Contains(t, prompt, "1 year and 6 months")
}
