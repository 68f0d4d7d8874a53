package view

import (
	"context"
	"strings"
	"sync"

	"portfolio/internal/domain/models"
)

// PageSize is the fixed number of projects per list page.
const PageSize = 6

// ListStore holds the list screen's state: the full collection as a
// local cache, the search term, and the current page. Filtering and
// pagination are derived on every snapshot; the cached collection is
// never the source of truth and is replaced wholesale on each load.
type ListStore struct {
	mu       sync.Mutex
	coll     Collection
	gen      generation
	phase    Phase
	projects []models.Project
	err      string
	search   string
	page     int
}

// ListSnapshot is an immutable view of the list screen's state.
type ListSnapshot struct {
	Phase          Phase
	Err            string
	Search         string
	Page           int
	TotalPages     int
	FilteredCount  int
	Items          []models.Project // current page of the filtered set
	ShowPagination bool             // hidden when the filtered set fits one page
}

// NewListStore creates a list store over the given collection.
func NewListStore(coll Collection) *ListStore {
	return &ListStore{
		coll:  coll,
		phase: PhaseIdle,
		page:  1,
	}
}

// Load fetches the entire collection. A load initiated after this one
// supersedes it; a superseded result is discarded.
func (s *ListStore) Load(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.phase = PhaseLoading
	s.err = ""
	s.mu.Unlock()

	projects, err := s.coll.ListAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	if err != nil {
		s.phase = PhaseFailed
		s.projects = nil
		s.err = "Failed to load projects. Please check if the backend is running."
		return
	}
	s.phase = PhaseReady
	s.projects = projects
	s.err = ""
	s.page = 1
}

// SetSearch updates the search term and resets to the first page.
func (s *ListStore) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
	s.page = 1
}

// SetPage moves to the given page, clamped to the valid range for the
// current filtered set.
func (s *ListStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := totalPages(len(filter(s.projects, s.search)))
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	s.page = page
}

// Delete removes a project after the confirm callback approves it.
// A declined confirmation is a no-op: no call, no error. On success
// the record is patched out of the local cache; on failure the cache
// is left untouched and the error is surfaced.
func (s *ListStore) Delete(ctx context.Context, id string, confirm func(models.Project) bool) error {
	s.mu.Lock()
	var target *models.Project
	for i := range s.projects {
		if s.projects[i].ID == id {
			target = &s.projects[i]
			break
		}
	}
	if target == nil {
		s.mu.Unlock()
		return nil
	}
	project := *target
	s.mu.Unlock()

	// Confirmation may block on user input; never hold the lock here.
	if !confirm(project) {
		return nil
	}

	err := s.coll.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = "Failed to delete project."
		return err
	}

	kept := s.projects[:0:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	s.page = 1
	s.err = ""
	return nil
}

// Snapshot derives the current filtered, paginated view.
func (s *ListStore) Snapshot() ListSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := filter(s.projects, s.search)
	total := totalPages(len(filtered))

	page := s.page
	if total >= 1 && page > total {
		page = total
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return ListSnapshot{
		Phase:          s.phase,
		Err:            s.err,
		Search:         s.search,
		Page:           page,
		TotalPages:     total,
		FilteredCount:  len(filtered),
		Items:          filtered[start:end],
		ShowPagination: total > 1,
	}
}

// filter returns the projects matching the search term, preserving
// order. An empty term matches everything; otherwise the term must be
// a case-insensitive substring of the title or the tech stack.
func filter(projects []models.Project, term string) []models.Project {
	if term == "" {
		return projects
	}
	needle := strings.ToLower(term)
	var matched []models.Project
	for _, p := range projects {
		matchesTitle := strings.Contains(strings.ToLower(p.Title), needle)
		matchesStack := p.TechStack != "" && strings.Contains(strings.ToLower(p.TechStack), needle)
		if matchesTitle || matchesStack {
			matched = append(matched, p)
		}
	}
	return matched
}

// totalPages is ceil(n / PageSize); 0 when the filtered set is empty.
func totalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}
