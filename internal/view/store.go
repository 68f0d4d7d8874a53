// Package view holds the per-screen state stores that keep local
// copies of the remote project collection consistent: one fetch phase
// machine shared by every screen, a stale-response guard on all loads,
// and the derived state each screen needs (search, pages, drafts,
// field errors).
package view

import (
	"context"

	"portfolio/internal/domain/models"
)

// Collection is the remote project collection as seen by the views.
// *remote.Client satisfies it; tests substitute fakes.
type Collection interface {
	ListAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, draft models.ProjectDraft) (*models.Project, error)
	Update(ctx context.Context, id string, draft models.ProjectDraft) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}

// Phase is the fetch state of a store. Transitions:
//
//	Idle -> Loading          on the first load
//	Loading -> Ready         fetch resolved, data replaced wholesale
//	Loading -> Failed        fetch rejected, data left absent
//	Ready -> Loading         explicit re-fetch (new id, re-entry)
//
// Failed is terminal for a store until a new load is requested.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// generation tags each fetch so that only the most recently initiated
// one may publish its result. A fetch that finds its generation stale
// on completion discards the response silently; the displayed data
// always reflects the latest initiated fetch, regardless of the order
// in which responses arrive. Callers must hold the store's lock.
type generation uint64
