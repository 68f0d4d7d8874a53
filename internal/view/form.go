package view

import (
	"context"
	"errors"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/domain/models"
)

// FormMode selects between the create and edit contracts. They share
// everything except the initial draft and the submit target.
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

// ErrNotLoaded is returned when an edit form is submitted before its
// record has loaded. The form never silently submits default values
// in place of a record it failed to fetch.
var ErrNotLoaded = errors.New("project not loaded")

// FormOptions configures form behavior.
type FormOptions struct {
	// RequireDetails additionally requires description and tech stack,
	// the stricter of the two validation rule sets.
	RequireDetails bool
}

// FormStore owns a mutable draft of one record. Validation runs on
// submit, not on every keystroke; field errors are scoped to fields
// and never reach the submit-level error slot.
type FormStore struct {
	mu         sync.Mutex
	coll       Collection
	nav        Navigator
	opts       models.DraftOptions
	mode       FormMode
	id         string
	gen        generation
	phase      Phase
	draft      models.ProjectDraft
	fieldErrs  map[string]string
	loadErr    string
	submitErr  string
	submitting bool
}

// FormSnapshot is an immutable view of the form's state. LoadErr and
// SubmitErr are distinct surfaces: one reports that an existing record
// could not be fetched, the other that a submission was rejected.
type FormSnapshot struct {
	Mode        FormMode
	Phase       Phase
	Draft       models.ProjectDraft
	FieldErrors map[string]string
	LoadErr     string
	SubmitErr   string
	Submitting  bool
}

// NewCreateForm creates a form in create mode with an empty draft.
func NewCreateForm(coll Collection, nav Navigator, opts FormOptions) *FormStore {
	if nav == nil {
		nav = discardNavigator{}
	}
	return &FormStore{
		coll:      coll,
		nav:       nav,
		opts:      models.DraftOptions{RequireDetails: opts.RequireDetails},
		mode:      ModeCreate,
		phase:     PhaseReady,
		fieldErrs: map[string]string{},
	}
}

// NewEditForm creates a form in edit mode for the given id. Load must
// run before the form is usable.
func NewEditForm(coll Collection, nav Navigator, id string, opts FormOptions) *FormStore {
	if nav == nil {
		nav = discardNavigator{}
	}
	return &FormStore{
		coll:      coll,
		nav:       nav,
		opts:      models.DraftOptions{RequireDetails: opts.RequireDetails},
		mode:      ModeEdit,
		id:        id,
		phase:     PhaseIdle,
		fieldErrs: map[string]string{},
	}
}

// Load populates the draft from the existing record (edit mode). In
// create mode it is a no-op. A load failure is surfaced as LoadErr,
// never as a validation failure.
func (s *FormStore) Load(ctx context.Context) {
	s.mu.Lock()
	if s.mode != ModeEdit {
		s.mu.Unlock()
		return
	}
	s.gen++
	gen := s.gen
	s.phase = PhaseLoading
	s.loadErr = ""
	id := s.id
	s.mu.Unlock()

	project, err := s.coll.GetByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	if err != nil || project == nil {
		s.phase = PhaseFailed
		s.loadErr = "Failed to load project data."
		return
	}
	s.phase = PhaseReady
	s.draft = project.Draft()
}

// SetTitle updates the draft title and clears its field error.
func (s *FormStore) SetTitle(v string) { s.setField(&s.draft.Title, "title", v) }

// SetDescription updates the draft description and clears its field error.
func (s *FormStore) SetDescription(v string) { s.setField(&s.draft.Description, "description", v) }

// SetTechStack updates the draft tech stack and clears its field error.
func (s *FormStore) SetTechStack(v string) { s.setField(&s.draft.TechStack, "techStack", v) }

// SetGithubURL updates the draft GitHub URL and clears its field error.
func (s *FormStore) SetGithubURL(v string) { s.setField(&s.draft.GithubURL, "githubUrl", v) }

// SetLiveDemoURL updates the draft live demo URL and clears its field error.
func (s *FormStore) SetLiveDemoURL(v string) { s.setField(&s.draft.LiveDemoURL, "liveDemoUrl", v) }

func (s *FormStore) setField(field *string, name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*field = value
	delete(s.fieldErrs, name)
}

// Submit validates the draft and, only if every field passes, calls
// create or update. While a call is in flight further submissions are
// ignored. On success the store navigates (create to the list, update
// to the record's detail); on failure the draft is left intact and a
// submit-level error is surfaced so the user can retry.
func (s *FormStore) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil
	}
	if s.mode == ModeEdit && s.phase != PhaseReady {
		s.mu.Unlock()
		return ErrNotLoaded
	}

	draft := s.draft
	if err := draft.Validate(s.opts); err != nil {
		s.fieldErrs = fieldErrors(err)
		s.mu.Unlock()
		return err
	}
	s.fieldErrs = map[string]string{}
	s.submitErr = ""
	s.submitting = true
	mode, id := s.mode, s.id
	s.mu.Unlock()

	var err error
	if mode == ModeCreate {
		_, err = s.coll.Create(ctx, draft)
	} else {
		_, err = s.coll.Update(ctx, id, draft)
	}

	s.mu.Lock()
	s.submitting = false
	if err != nil {
		if mode == ModeCreate {
			s.submitErr = "Failed to create project. Please try again."
		} else {
			s.submitErr = "Failed to update project."
		}
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	if mode == ModeCreate {
		s.nav.Navigate(ListRoute())
	} else {
		s.nav.Navigate(DetailRoute(id))
	}
	return nil
}

// Snapshot returns the current form state.
func (s *FormStore) Snapshot() FormSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	fieldErrs := make(map[string]string, len(s.fieldErrs))
	for k, v := range s.fieldErrs {
		fieldErrs[k] = v
	}

	return FormSnapshot{
		Mode:        s.mode,
		Phase:       s.phase,
		Draft:       s.draft,
		FieldErrors: fieldErrs,
		LoadErr:     s.loadErr,
		SubmitErr:   s.submitErr,
		Submitting:  s.submitting,
	}
}

// fieldErrors flattens an ozzo validation error into per-field
// messages keyed by json field name.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			out[field] = ferr.Error()
		}
		return out
	}
	out["_"] = err.Error()
	return out
}
