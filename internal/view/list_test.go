package view

import (
	"context"
	"errors"
	"testing"

	"portfolio/internal/domain/models"
)

func loadedListStore(t *testing.T, projects []models.Project) *ListStore {
	t.Helper()
	store := NewListStore(&fakeCollection{
		listAll: func(context.Context) ([]models.Project, error) {
			return projects, nil
		},
	})
	store.Load(context.Background())
	if snap := store.Snapshot(); snap.Phase != PhaseReady {
		t.Fatalf("after load, phase = %s, want ready", snap.Phase)
	}
	return store
}

func TestListFilter(t *testing.T) {
	projects := []models.Project{
		{ID: "1", Title: "Portfolio Site", TechStack: "React, CSS"},
		{ID: "2", Title: "Chat Server", TechStack: "Go, PostgreSQL"},
		{ID: "3", Title: "go-metrics", TechStack: ""},
		{ID: "4", Title: "Dashboard", TechStack: "Vue, Go"},
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "empty term matches everything", search: "", wantIDs: []string{"1", "2", "3", "4"}},
		{name: "title substring", search: "chat", wantIDs: []string{"2"}},
		{name: "case-insensitive title", search: "PORTFOLIO", wantIDs: []string{"1"}},
		{name: "tech stack substring", search: "go", wantIDs: []string{"2", "3", "4"}},
		{name: "tech stack case-insensitive", search: "postgres", wantIDs: []string{"2"}},
		{name: "no match", search: "rust", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := loadedListStore(t, projects)
			store.SetSearch(tt.search)

			snap := store.Snapshot()
			var gotIDs []string
			for _, p := range snap.Items {
				gotIDs = append(gotIDs, p.ID)
			}
			if len(gotIDs) != len(tt.wantIDs) {
				t.Fatalf("filtered IDs = %v, want %v", gotIDs, tt.wantIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.wantIDs[i] {
					t.Fatalf("filtered IDs = %v, want %v", gotIDs, tt.wantIDs)
				}
			}
			if snap.FilteredCount != len(tt.wantIDs) {
				t.Errorf("FilteredCount = %d, want %d", snap.FilteredCount, len(tt.wantIDs))
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	tests := []struct {
		name           string
		count          int
		wantTotalPages int
		wantShow       bool
	}{
		{name: "empty", count: 0, wantTotalPages: 0, wantShow: false},
		{name: "single partial page", count: 5, wantTotalPages: 1, wantShow: false},
		{name: "exactly one page", count: 6, wantTotalPages: 1, wantShow: false},
		{name: "one over", count: 7, wantTotalPages: 2, wantShow: true},
		{name: "several pages", count: 13, wantTotalPages: 3, wantShow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := numberedProjects(tt.count)
			store := loadedListStore(t, projects)

			snap := store.Snapshot()
			if snap.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", snap.TotalPages, tt.wantTotalPages)
			}
			if snap.ShowPagination != tt.wantShow {
				t.Errorf("ShowPagination = %v, want %v", snap.ShowPagination, tt.wantShow)
			}

			// Concatenating all pages must reproduce the filtered set
			// exactly once each, in order.
			var all []models.Project
			for page := 1; page <= snap.TotalPages; page++ {
				store.SetPage(page)
				pageSnap := store.Snapshot()
				if len(pageSnap.Items) == 0 {
					t.Fatalf("page %d is empty", page)
				}
				if len(pageSnap.Items) > PageSize {
					t.Fatalf("page %d has %d items, page size is %d", page, len(pageSnap.Items), PageSize)
				}
				all = append(all, pageSnap.Items...)
			}
			if len(all) != tt.count {
				t.Fatalf("concatenated pages have %d items, want %d", len(all), tt.count)
			}
			for i := range all {
				if all[i].ID != projects[i].ID {
					t.Fatalf("item %d = %s, want %s", i, all[i].ID, projects[i].ID)
				}
			}
		})
	}
}

func TestListSearchResetsPage(t *testing.T) {
	store := loadedListStore(t, numberedProjects(13))
	store.SetPage(3)
	if snap := store.Snapshot(); snap.Page != 3 {
		t.Fatalf("Page = %d, want 3", snap.Page)
	}

	store.SetSearch("Project 1")
	if snap := store.Snapshot(); snap.Page != 1 {
		t.Errorf("after search change, Page = %d, want 1", snap.Page)
	}
}

func TestListSetPageClamps(t *testing.T) {
	store := loadedListStore(t, numberedProjects(7))

	store.SetPage(99)
	if snap := store.Snapshot(); snap.Page != 2 {
		t.Errorf("Page = %d, want clamp to 2", snap.Page)
	}

	store.SetPage(0)
	if snap := store.Snapshot(); snap.Page != 1 {
		t.Errorf("Page = %d, want clamp to 1", snap.Page)
	}
}

func TestListEmptyCollection(t *testing.T) {
	store := loadedListStore(t, nil)

	snap := store.Snapshot()
	if snap.FilteredCount != 0 {
		t.Errorf("FilteredCount = %d, want 0", snap.FilteredCount)
	}
	if snap.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", snap.TotalPages)
	}
	if snap.ShowPagination {
		t.Error("ShowPagination = true, want false")
	}
	if len(snap.Items) != 0 {
		t.Errorf("Items = %v, want empty", snap.Items)
	}
}

func TestListLoadFailure(t *testing.T) {
	store := NewListStore(&fakeCollection{
		listAll: func(context.Context) ([]models.Project, error) {
			return nil, errors.New("connection refused")
		},
	})
	store.Load(context.Background())

	snap := store.Snapshot()
	if snap.Phase != PhaseFailed {
		t.Errorf("Phase = %s, want failed", snap.Phase)
	}
	if snap.Err == "" {
		t.Error("Err is empty, want a user-facing message")
	}
	if len(snap.Items) != 0 {
		t.Errorf("Items = %v, want empty", snap.Items)
	}
}

func TestListDelete(t *testing.T) {
	t.Run("confirmed success removes the record locally", func(t *testing.T) {
		var deletedID string
		projects := numberedProjects(3)
		store := NewListStore(&fakeCollection{
			listAll: func(context.Context) ([]models.Project, error) {
				return projects, nil
			},
			remove: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		})
		store.Load(context.Background())

		err := store.Delete(context.Background(), "p2", func(models.Project) bool { return true })
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if deletedID != "p2" {
			t.Errorf("backend delete called with %q, want p2", deletedID)
		}

		snap := store.Snapshot()
		for _, p := range snap.Items {
			if p.ID == "p2" {
				t.Error("deleted record still present in list")
			}
		}
		if snap.FilteredCount != 2 {
			t.Errorf("FilteredCount = %d, want 2", snap.FilteredCount)
		}
	})

	t.Run("declined confirmation makes no call and no error", func(t *testing.T) {
		calls := 0
		store := loadedStoreWithDelete(t, func(string) error { calls++; return nil })

		err := store.Delete(context.Background(), "p1", func(models.Project) bool { return false })
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if calls != 0 {
			t.Errorf("backend delete called %d times, want 0", calls)
		}
		if snap := store.Snapshot(); snap.FilteredCount != 3 {
			t.Errorf("FilteredCount = %d, want 3", snap.FilteredCount)
		}
	})

	t.Run("failure keeps the record and surfaces an error", func(t *testing.T) {
		store := loadedStoreWithDelete(t, func(string) error { return errors.New("boom") })

		err := store.Delete(context.Background(), "p1", func(models.Project) bool { return true })
		if err == nil {
			t.Fatal("Delete() error = nil, want error")
		}

		snap := store.Snapshot()
		if snap.FilteredCount != 3 {
			t.Errorf("FilteredCount = %d, want 3 (list must not shrink on failure)", snap.FilteredCount)
		}
		if snap.Err == "" {
			t.Error("Err is empty, want a user-facing message")
		}
		if snap.Phase != PhaseReady {
			t.Errorf("Phase = %s, want ready", snap.Phase)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		calls := 0
		store := loadedStoreWithDelete(t, func(string) error { calls++; return nil })

		if err := store.Delete(context.Background(), "missing", func(models.Project) bool { return true }); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if calls != 0 {
			t.Errorf("backend delete called %d times, want 0", calls)
		}
	})
}

func loadedStoreWithDelete(t *testing.T, remove func(id string) error) *ListStore {
	t.Helper()
	store := NewListStore(&fakeCollection{
		listAll: func(context.Context) ([]models.Project, error) {
			return numberedProjects(3), nil
		},
		remove: func(_ context.Context, id string) error {
			return remove(id)
		},
	})
	store.Load(context.Background())
	return store
}

func TestListStaleLoadDiscarded(t *testing.T) {
	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	calls := 0

	store := NewListStore(&fakeCollection{
		listAll: func(context.Context) ([]models.Project, error) {
			calls++
			if calls == 1 {
				close(firstEntered)
				<-releaseFirst
				return numberedProjects(1), nil
			}
			return numberedProjects(5), nil
		},
	})

	done := make(chan struct{})
	go func() {
		store.Load(context.Background())
		close(done)
	}()
	<-firstEntered

	// A second load supersedes the first while it is still in flight.
	store.Load(context.Background())

	close(releaseFirst)
	<-done

	snap := store.Snapshot()
	if snap.FilteredCount != 5 {
		t.Errorf("FilteredCount = %d, want 5 (stale first load must be discarded)", snap.FilteredCount)
	}
}
