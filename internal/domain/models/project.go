package models

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Project represents a portfolio project as stored by the backend.
// ID is assigned by the backend on create and never set by callers.
type Project struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	TechStack   string `json:"techStack" db:"tech_stack"`
	GithubURL   string `json:"githubUrl" db:"github_url"`
	LiveDemoURL string `json:"liveDemoUrl" db:"live_demo_url"`
}

// Draft returns the editable fields of the project, suitable for a
// full-replace update. Loading a record and submitting its draft
// unchanged is a no-op update.
func (p *Project) Draft() ProjectDraft {
	return ProjectDraft{
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		GithubURL:   p.GithubURL,
		LiveDemoURL: p.LiveDemoURL,
	}
}

// Technologies splits the free-text tech stack on commas for display
// tagging. The stored value is never normalized.
func (p *Project) Technologies() []string {
	if strings.TrimSpace(p.TechStack) == "" {
		return nil
	}
	parts := strings.Split(p.TechStack, ",")
	techs := make([]string, 0, len(parts))
	for _, part := range parts {
		if tech := strings.TrimSpace(part); tech != "" {
			techs = append(techs, tech)
		}
	}
	return techs
}

// ProjectDraft is the create/update payload: a project minus its
// identifier. Optional fields stay empty strings rather than being
// omitted so a created record redisplays with all fields present.
type ProjectDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
	GithubURL   string `json:"githubUrl"`
	LiveDemoURL string `json:"liveDemoUrl"`
}

// DraftOptions configures draft validation. The default (zero value)
// requires only the title; RequireDetails additionally requires
// description and tech stack, matching the stricter of the two form
// variants the frontend shipped with.
type DraftOptions struct {
	RequireDetails bool
}

// Validate checks the draft locally, before any network call. Errors
// come back as validation.Errors keyed by json field name, so callers
// can attach them to individual form fields.
func (d ProjectDraft) Validate(opts DraftOptions) error {
	fields := []*validation.FieldRules{
		validation.Field(&d.Title, validation.Required.Error("title is required"), validation.By(notBlank)),
		validation.Field(&d.GithubURL, validation.By(wellFormedURL)),
		validation.Field(&d.LiveDemoURL, validation.By(wellFormedURL)),
	}
	if opts.RequireDetails {
		fields = append(fields,
			validation.Field(&d.Description, validation.Required.Error("description is required"), validation.By(notBlank)),
			validation.Field(&d.TechStack, validation.Required.Error("tech stack is required"), validation.By(notBlank)),
		)
	}
	return validation.ValidateStruct(&d, fields...)
}

// notBlank rejects values that are empty after trimming whitespace.
func notBlank(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}

// wellFormedURL accepts the empty string (field absent) and otherwise
// requires an absolute URL with a scheme and host.
func wellFormedURL(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be a valid URL")
	}
	return nil
}
