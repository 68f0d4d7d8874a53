package view

import (
	"context"
	"errors"
	"sync"

	"portfolio/internal/domain/models"
	"portfolio/internal/remote"
)

// DetailStore holds one record for the detail screen. Loads are
// keyed by whatever id was most recently requested: if the route id
// changes while a fetch is still in flight, the older fetch's result
// is discarded rather than applied to the new context.
type DetailStore struct {
	mu       sync.Mutex
	coll     Collection
	nav      Navigator
	gen      generation
	phase    Phase
	project  *models.Project
	notFound bool
	err      string
}

// DetailSnapshot is an immutable view of the detail screen's state.
// NotFound is distinct from a failed fetch: a backend that reports the
// record missing and a backend that could not be reached are different
// operator-visible conditions.
type DetailSnapshot struct {
	Phase    Phase
	Project  *models.Project
	NotFound bool
	Err      string
}

// NewDetailStore creates a detail store over the given collection.
// A nil navigator discards navigation intents.
func NewDetailStore(coll Collection, nav Navigator) *DetailStore {
	if nav == nil {
		nav = discardNavigator{}
	}
	return &DetailStore{
		coll:  coll,
		nav:   nav,
		phase: PhaseIdle,
	}
}

// Load fetches the record with the given id, re-entering Loading. A
// later Load supersedes this one regardless of completion order.
func (s *DetailStore) Load(ctx context.Context, id string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.phase = PhaseLoading
	s.project = nil
	s.notFound = false
	s.err = ""
	s.mu.Unlock()

	project, err := s.coll.GetByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	if err != nil {
		var remoteErr *remote.Error
		if errors.As(err, &remoteErr) && remoteErr.NotFound() {
			s.phase = PhaseReady
			s.notFound = true
			return
		}
		s.phase = PhaseFailed
		s.err = "Failed to load project details. Project may not exist."
		return
	}
	s.phase = PhaseReady
	s.project = project
	s.notFound = project == nil
}

// Delete removes the displayed record after the confirm callback
// approves it. On success the store navigates to the list, since the
// record can no longer be shown; on failure the record stays and the
// error is surfaced.
func (s *DetailStore) Delete(ctx context.Context, confirm func(models.Project) bool) error {
	s.mu.Lock()
	if s.project == nil {
		s.mu.Unlock()
		return nil
	}
	project := *s.project
	s.mu.Unlock()

	if !confirm(project) {
		return nil
	}

	err := s.coll.Delete(ctx, project.ID)

	s.mu.Lock()
	if err != nil {
		s.err = "Failed to delete project. Please try again."
		s.mu.Unlock()
		return err
	}
	s.err = ""
	s.mu.Unlock()

	s.nav.Navigate(ListRoute())
	return nil
}

// Snapshot returns the current detail state.
func (s *DetailStore) Snapshot() DetailSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DetailSnapshot{
		Phase:    s.phase,
		Project:  s.project,
		NotFound: s.notFound,
		Err:      s.err,
	}
}
