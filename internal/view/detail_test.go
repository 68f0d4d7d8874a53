package view

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"portfolio/internal/domain/models"
	"portfolio/internal/remote"
)

func TestDetailLoad(t *testing.T) {
	project := &models.Project{ID: "a", Title: "Demo"}
	store := NewDetailStore(&fakeCollection{
		getByID: func(_ context.Context, id string) (*models.Project, error) {
			if id == "a" {
				return project, nil
			}
			return nil, &remote.Error{Op: "get project", StatusCode: http.StatusNotFound, Message: "not found"}
		},
	}, nil)

	store.Load(context.Background(), "a")

	snap := store.Snapshot()
	if snap.Phase != PhaseReady {
		t.Fatalf("Phase = %s, want ready", snap.Phase)
	}
	if snap.Project == nil || snap.Project.ID != "a" {
		t.Errorf("Project = %+v, want id a", snap.Project)
	}
	if snap.NotFound {
		t.Error("NotFound = true, want false")
	}
}

func TestDetailNotFoundDistinctFromFailure(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantNotFound bool
		wantPhase    Phase
	}{
		{
			name:         "backend reports missing record",
			err:          &remote.Error{Op: "get project", StatusCode: http.StatusNotFound, Message: "not found"},
			wantNotFound: true,
			wantPhase:    PhaseReady,
		},
		{
			name:         "backend unreachable",
			err:          errors.New("connection refused"),
			wantNotFound: false,
			wantPhase:    PhaseFailed,
		},
		{
			name:         "backend errors",
			err:          &remote.Error{Op: "get project", StatusCode: http.StatusInternalServerError, Message: "boom"},
			wantNotFound: false,
			wantPhase:    PhaseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewDetailStore(&fakeCollection{
				getByID: func(context.Context, string) (*models.Project, error) {
					return nil, tt.err
				},
			}, nil)
			store.Load(context.Background(), "x")

			snap := store.Snapshot()
			if snap.Phase != tt.wantPhase {
				t.Errorf("Phase = %s, want %s", snap.Phase, tt.wantPhase)
			}
			if snap.NotFound != tt.wantNotFound {
				t.Errorf("NotFound = %v, want %v", snap.NotFound, tt.wantNotFound)
			}
			if tt.wantPhase == PhaseFailed && snap.Err == "" {
				t.Error("Err is empty, want a user-facing message")
			}
		})
	}
}

// TestDetailStaleFetchGuard issues loads for A then B before either
// resolves, then lets A's response arrive last. The displayed record
// must be B's.
func TestDetailStaleFetchGuard(t *testing.T) {
	enteredA := make(chan struct{})
	releaseA := make(chan struct{})

	store := NewDetailStore(&fakeCollection{
		getByID: func(_ context.Context, id string) (*models.Project, error) {
			if id == "a" {
				close(enteredA)
				<-releaseA
				return &models.Project{ID: "a", Title: "Old"}, nil
			}
			return &models.Project{ID: "b", Title: "New"}, nil
		},
	}, nil)

	done := make(chan struct{})
	go func() {
		store.Load(context.Background(), "a")
		close(done)
	}()
	<-enteredA

	store.Load(context.Background(), "b")
	if snap := store.Snapshot(); snap.Project == nil || snap.Project.ID != "b" {
		t.Fatalf("after load of b, Project = %+v, want id b", snap.Project)
	}

	// A resolves after B; its result must be discarded.
	close(releaseA)
	<-done

	snap := store.Snapshot()
	if snap.Project == nil || snap.Project.ID != "b" {
		t.Errorf("Project = %+v, want id b (stale A must not overwrite)", snap.Project)
	}
	if snap.Phase != PhaseReady {
		t.Errorf("Phase = %s, want ready", snap.Phase)
	}
}

func TestDetailDelete(t *testing.T) {
	t.Run("success navigates to the list", func(t *testing.T) {
		nav := &recordingNavigator{}
		store := NewDetailStore(&fakeCollection{
			getByID: func(context.Context, string) (*models.Project, error) {
				return &models.Project{ID: "a", Title: "Demo"}, nil
			},
			remove: func(context.Context, string) error { return nil },
		}, nav)
		store.Load(context.Background(), "a")

		if err := store.Delete(context.Background(), func(models.Project) bool { return true }); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if len(nav.routes) != 1 || nav.routes[0] != ListRoute() {
			t.Errorf("navigated to %v, want [%v]", nav.routes, ListRoute())
		}
	})

	t.Run("declined confirmation makes no call", func(t *testing.T) {
		calls := 0
		nav := &recordingNavigator{}
		store := NewDetailStore(&fakeCollection{
			getByID: func(context.Context, string) (*models.Project, error) {
				return &models.Project{ID: "a", Title: "Demo"}, nil
			},
			remove: func(context.Context, string) error { calls++; return nil },
		}, nav)
		store.Load(context.Background(), "a")

		if err := store.Delete(context.Background(), func(models.Project) bool { return false }); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if calls != 0 {
			t.Errorf("backend delete called %d times, want 0", calls)
		}
		if len(nav.routes) != 0 {
			t.Errorf("navigated to %v, want none", nav.routes)
		}
	})

	t.Run("failure stays on the page with the record", func(t *testing.T) {
		nav := &recordingNavigator{}
		store := NewDetailStore(&fakeCollection{
			getByID: func(context.Context, string) (*models.Project, error) {
				return &models.Project{ID: "a", Title: "Demo"}, nil
			},
			remove: func(context.Context, string) error { return errors.New("boom") },
		}, nav)
		store.Load(context.Background(), "a")

		if err := store.Delete(context.Background(), func(models.Project) bool { return true }); err == nil {
			t.Fatal("Delete() error = nil, want error")
		}

		snap := store.Snapshot()
		if snap.Project == nil {
			t.Error("Project = nil, want record preserved on failure")
		}
		if snap.Err == "" {
			t.Error("Err is empty, want a user-facing message")
		}
		if len(nav.routes) != 0 {
			t.Errorf("navigated to %v, want none", nav.routes)
		}
	})
}
