package ai

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sanity-io/litter"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"careerkit/internal/config"
	"careerkit/internal/models"
)

// Generator wraps the chat-completion client. Every method degrades to a
// typed fallback value instead of propagating upstream failures; callers
// treat AI output as always successful but possibly empty.
type Generator struct {
	client *openai.Client
	model  string
	log    *logrus.Logger
}

func NewGenerator(cfg config.Config, log *logrus.Logger) *Generator {
	var client *openai.Client
	if cfg.AIKey != "" {
		conf := openai.DefaultConfig(cfg.AIKey)
		if cfg.AIBaseURL != "" {
			conf.BaseURL = cfg.AIBaseURL
		}
		client = openai.NewClientWithConfig(conf)
	}

	return &Generator{
		client: client,
		model:  cfg.AIChatModel,
		log:    log,
	}
}

func (g *Generator) complete(ctx context.Context, system, prompt string, temperature float32, maxTokens int) (string, error) {
	if g.client == nil {
		return "", errNoClient
	}

	messages := []openai.ChatCompletionMessage{}
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// ResumeInput is the raw material the resume prompt is built from.
type ResumeInput struct {
	PersonalInfo    models.PersonalInfo
	Education       []models.EducationItem
	Experience      []models.ExperienceItem
	Projects        []models.ProjectItem
	Links           []models.LinkItem
	Skills          string
	ExtraCurricular string
}

// GenerateResume asks the model for an ATS-friendly resume and parses the
// JSON reply best-effort.
func (g *Generator) GenerateResume(ctx context.Context, input ResumeInput) models.GeneratedResume {
	fallback := models.GeneratedResume{
		Summary:  "The AI response was not in the expected format. Please try again.",
		Sections: []models.ResumeSection{},
	}

	text, err := g.complete(ctx, "", resumePrompt(input), 0.7, 2048)
	if err != nil {
		g.log.WithError(err).Error("resume generation failed")
		return fallback
	}

	var generated models.GeneratedResume
	if !g.decodeJSON(text, &generated) {
		return fallback
	}
	if generated.Sections == nil {
		generated.Sections = []models.ResumeSection{}
	}
	return generated
}

// GenerateRoadmap returns a self-contained HTML document describing a career
// roadmap. Code fences around the reply are stripped.
func (g *Generator) GenerateRoadmap(ctx context.Context, jobTitle, level, timeRange string) string {
	const fallback = `<div class="error">Failed to generate roadmap. Please try again later.</div>`

	text, err := g.complete(ctx, "", roadmapPrompt(jobTitle, level, timeRange), 1, 8192)
	if err != nil {
		g.log.WithError(err).Error("roadmap generation failed")
		return fallback
	}

	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```html")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// Chat answers a career question. The system prompt keeps the assistant on
// topic; any upstream failure becomes a canned apology.
func (g *Generator) Chat(ctx context.Context, message string) string {
	const fallback = "Sorry, I couldn't process your request. Please try again."

	text, err := g.complete(ctx, assistantSystem, message, 0.7, 2048)
	if err != nil {
		g.log.WithError(err).Error("assistant chat failed")
		return fallback
	}
	return text
}

// GenerateChallenge produces a coding-practice problem on the given topic.
func (g *Generator) GenerateChallenge(ctx context.Context, topic string) models.Challenge {
	fallback := models.Challenge{
		Title:       "Error parsing response",
		Description: "There was an error parsing the AI response. Please try again.",
		TestCases:   []models.TestCase{},
	}

	text, err := g.complete(ctx, "", challengePrompt(topic), 1, 8192)
	if err != nil {
		g.log.WithError(err).Error("challenge generation failed")
		return fallback
	}

	var challenge models.Challenge
	if !g.decodeJSON(text, &challenge) {
		return fallback
	}
	if challenge.TestCases == nil {
		challenge.TestCases = []models.TestCase{}
	}
	return challenge
}

func (g *Generator) decodeJSON(text string, v any) bool {
	payload, ok := ExtractJSON(text)
	if !ok {
		g.log.WithField("raw", truncate(text, 512)).Warn("no JSON found in model reply")
		return false
	}
	if err := json.Unmarshal(payload, v); err != nil {
		g.log.WithError(err).WithField("raw", truncate(string(payload), 512)).Warn("could not decode model reply")
		return false
	}
	g.log.Debugln(litter.Sdump(v))
	return true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
