package content

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/validation"
)

//go:embed content.yaml
var embedded []byte

// document is the on-disk shape of the content file.
type document struct {
	Profile  domain.Profile      `yaml:"profile"`
	Projects []domain.Project    `yaml:"projects" validate:"dive"`
	Skills   []domain.Skill      `yaml:"skills" validate:"dive"`
	Journey  []domain.Experience `yaml:"journey" validate:"dive"`
}

type contentRepo struct {
	doc document
}

// NewContentRepository loads content from path, or from the embedded
// document when path is empty. Content is validated once and then served
// read-only.
func NewContentRepository(path string, validate *validator.Validate) (domain.ContentRepository, error) {
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", path, err)
		}
		raw = b
	}
	return Parse(raw, validate)
}

// Parse decodes and validates a content document.
func Parse(raw []byte, validate *validator.Validate) (domain.ContentRepository, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("content: invalid document: %v", validation.FormatValidationErrors(err))
	}
	if err := checkReferences(&doc); err != nil {
		return nil, err
	}
	return &contentRepo{doc: doc}, nil
}

func checkReferences(doc *document) error {
	projects := make(map[string]struct{}, len(doc.Projects))
	for _, p := range doc.Projects {
		if _, dup := projects[p.ID]; dup {
			return fmt.Errorf("content: duplicate project id %q", p.ID)
		}
		projects[p.ID] = struct{}{}
	}

	journey := make(map[string]struct{}, len(doc.Journey))
	for _, e := range doc.Journey {
		if _, dup := journey[e.ID]; dup {
			return fmt.Errorf("content: duplicate journey id %q", e.ID)
		}
		journey[e.ID] = struct{}{}
	}

	for _, s := range doc.Skills {
		for _, ref := range s.Projects {
			if _, ok := projects[ref]; !ok {
				return fmt.Errorf("content: skill %q references unknown project %q", s.Name, ref)
			}
		}
	}
	return nil
}

func (r *contentRepo) Profile(ctx context.Context) (*domain.Profile, error) {
	p := r.doc.Profile
	return &p, nil
}

func (r *contentRepo) Projects(ctx context.Context) ([]domain.Project, error) {
	return append([]domain.Project(nil), r.doc.Projects...), nil
}

func (r *contentRepo) Skills(ctx context.Context) ([]domain.Skill, error) {
	return append([]domain.Skill(nil), r.doc.Skills...), nil
}

func (r *contentRepo) Experiences(ctx context.Context) ([]domain.Experience, error) {
	return append([]domain.Experience(nil), r.doc.Journey...), nil
}
