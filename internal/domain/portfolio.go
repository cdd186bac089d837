package domain

import "context"

type ProjectCategory string

const (
	CategoryBlockchain ProjectCategory = "blockchain"
	CategoryFullstack  ProjectCategory = "fullstack"
	CategoryML         ProjectCategory = "ml"
	CategorySecurity   ProjectCategory = "security"
)

type SkillCategory string

const (
	SkillFrontend   SkillCategory = "frontend"
	SkillBackend    SkillCategory = "backend"
	SkillBlockchain SkillCategory = "blockchain"
	SkillML         SkillCategory = "ml"
	SkillTools      SkillCategory = "tools"
)

// SkillCategories is the display order of skill groups.
var SkillCategories = []SkillCategory{SkillFrontend, SkillBackend, SkillBlockchain, SkillML, SkillTools}

type ExperienceType string

const (
	ExperienceEducation     ExperienceType = "education"
	ExperienceWork          ExperienceType = "work"
	ExperienceCertification ExperienceType = "certification"
)

type SocialLink struct {
	Key   string `json:"key" yaml:"key" validate:"required"`
	Label string `json:"label" yaml:"label" validate:"required"`
	URL   string `json:"url" yaml:"url" validate:"required"`
	Icon  string `json:"icon,omitempty" yaml:"icon"`
}

type NavSection struct {
	ID          string `json:"id" yaml:"id" validate:"required,slug"`
	Label       string `json:"label" yaml:"label" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// Profile is the site owner's public card.
type Profile struct {
	Name        string       `json:"name" yaml:"name" validate:"required"`
	Title       string       `json:"title" yaml:"title" validate:"required"`
	Description string       `json:"description" yaml:"description"`
	URL         string       `json:"url,omitempty" yaml:"url" validate:"omitempty,url"`
	Location    string       `json:"location,omitempty" yaml:"location"`
	Email       string       `json:"email,omitempty" yaml:"email"`
	Keywords    []string     `json:"keywords,omitempty" yaml:"keywords"`
	Links       []SocialLink `json:"links,omitempty" yaml:"links" validate:"dive"`
	Sections    []NavSection `json:"sections,omitempty" yaml:"sections" validate:"dive"`
}

type Project struct {
	ID              string          `json:"id" yaml:"id" validate:"required,slug"`
	Title           string          `json:"title" yaml:"title" validate:"required"`
	Description     string          `json:"description" yaml:"description" validate:"required"`
	LongDescription string          `json:"longDescription" yaml:"longDescription"`
	Technologies    []string        `json:"technologies" yaml:"technologies"`
	Category        ProjectCategory `json:"category" yaml:"category" validate:"required,oneof=blockchain fullstack ml security"`
	DemoVideo       string          `json:"demoVideo,omitempty" yaml:"demoVideo"`
	LiveURL         string          `json:"liveUrl,omitempty" yaml:"liveUrl" validate:"omitempty,url"`
	GithubURL       string          `json:"githubUrl,omitempty" yaml:"githubUrl" validate:"omitempty,url"`
	Featured        bool            `json:"featured" yaml:"featured"`
	Color           string          `json:"color" yaml:"color" validate:"omitempty,hexcolor"`
	Icon            string          `json:"icon,omitempty" yaml:"icon"`
}

type Skill struct {
	Name     string        `json:"name" yaml:"name" validate:"required"`
	Level    int           `json:"level" yaml:"level" validate:"min=0,max=100"`
	Category SkillCategory `json:"category" yaml:"category" validate:"required,oneof=frontend backend blockchain ml tools"`
	Icon     string        `json:"icon,omitempty" yaml:"icon"`
	Projects []string      `json:"projects,omitempty" yaml:"projects"`
}

type Experience struct {
	ID           string         `json:"id" yaml:"id" validate:"required,slug"`
	Title        string         `json:"title" yaml:"title" validate:"required"`
	Company      string         `json:"company" yaml:"company" validate:"required"`
	Duration     string         `json:"duration" yaml:"duration"`
	Type         ExperienceType `json:"type" yaml:"type" validate:"required,oneof=education work certification"`
	Description  []string       `json:"description" yaml:"description"`
	Technologies []string       `json:"technologies,omitempty" yaml:"technologies"`
}

// SkillGroup is one category of skills in display order.
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Skills   []Skill       `json:"skills"`
}

type ProjectFilter struct {
	Category ProjectCategory
	Featured *bool
}

// ContentRepository provides read-only access to portfolio content
type ContentRepository interface {
	Profile(ctx context.Context) (*Profile, error)
	Projects(ctx context.Context) ([]Project, error)
	Skills(ctx context.Context) ([]Skill, error)
	Experiences(ctx context.Context) ([]Experience, error)
}

// PortfolioUsecase serves the content shown on the site
type PortfolioUsecase interface {
	GetProfile(ctx context.Context) (*Profile, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	ListSkills(ctx context.Context, category SkillCategory) ([]Skill, error)
	GroupSkills(ctx context.Context) ([]SkillGroup, error)
	ListJourney(ctx context.Context, kind ExperienceType) ([]Experience, error)
}

func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryBlockchain, CategoryFullstack, CategoryML, CategorySecurity:
		return true
	}
	return false
}

func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (t ExperienceType) Valid() bool {
	switch t {
	case ExperienceEducation, ExperienceWork, ExperienceCertification:
		return true
	}
	return false
}
