package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PersonalInfo struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
}

type EducationItem struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"`
	Year        string `bson:"year" json:"year"`
}

type ExperienceItem struct {
	Company     string `bson:"company" json:"company"`
	Position    string `bson:"position" json:"position"`
	Duration    string `bson:"duration" json:"duration"`
	Description string `bson:"description" json:"description"`
}

type ProjectItem struct {
	Name         string `bson:"name" json:"name"`
	Description  string `bson:"description" json:"description"`
	Technologies string `bson:"technologies" json:"technologies"`
}

type LinkItem struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
}

// Section content kinds.
const (
	SectionText = "text"
	SectionList = "list"
)

// SectionContent is either a paragraph or a list of bullet points.
// The generative model returns whichever shape it likes, so unmarshalling
// accepts a bare string, an array of strings, or the tagged form this type
// marshals to.
type SectionContent struct {
	Kind  string   `bson:"kind"`
	Value string   `bson:"value,omitempty"`
	Items []string `bson:"items,omitempty"`
}

func TextContent(value string) SectionContent {
	return SectionContent{Kind: SectionText, Value: value}
}

func ListContent(items []string) SectionContent {
	return SectionContent{Kind: SectionList, Items: items}
}

func (c SectionContent) MarshalJSON() ([]byte, error) {
	if c.Kind == SectionList {
		return json.Marshal(struct {
			Kind  string   `json:"kind"`
			Items []string `json:"items"`
		}{SectionList, c.Items})
	}
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value string `json:"value"`
	}{SectionText, c.Value})
}

func (c *SectionContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = TextContent(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*c = ListContent(items)
		return nil
	}

	var tagged struct {
		Kind  string   `json:"kind"`
		Value string   `json:"value"`
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if tagged.Kind == SectionList {
		*c = ListContent(tagged.Items)
	} else {
		*c = TextContent(tagged.Value)
	}
	return nil
}

type ResumeSection struct {
	Title   string         `bson:"title" json:"title"`
	Content SectionContent `bson:"content" json:"content"`
}

// GeneratedResume is what the AI produces. A failed generation is represented
// by a placeholder summary and no sections, never by an error.
type GeneratedResume struct {
	Summary  string          `bson:"summary" json:"summary"`
	Sections []ResumeSection `bson:"sections" json:"sections"`
}

type Resume struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"user_id" json:"userId"`
	PersonalInfo     PersonalInfo       `bson:"personal_info" json:"personalInfo"`
	Education        []EducationItem    `bson:"education" json:"education"`
	Experience       []ExperienceItem   `bson:"experience" json:"experience"`
	Projects         []ProjectItem      `bson:"projects" json:"projects"`
	Links            []LinkItem         `bson:"links" json:"links"`
	Skills           string             `bson:"skills" json:"skills"`
	ExtraCurricular  string             `bson:"extra_curricular,omitempty" json:"extraCurricular,omitempty"`
	GeneratedContent GeneratedResume    `bson:"generated_content" json:"generatedContent"`
	CreatedBy        string             `bson:"created_by" json:"createdBy"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}
