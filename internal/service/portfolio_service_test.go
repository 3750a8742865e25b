package service_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/portfolio-json-api/internal/apperrors"
	"github.com/ndewijer/portfolio-json-api/internal/database"
	"github.com/ndewijer/portfolio-json-api/internal/model"
	"github.com/ndewijer/portfolio-json-api/internal/repository"
	"github.com/ndewijer/portfolio-json-api/internal/service"
	"github.com/ndewijer/portfolio-json-api/internal/testutil"
)

// TestPortfolioService_GetAllPortfolios tests the GetAllPortfolios method.
//
// WHY: Listing is the only read path. It must return records in insertion
// order and degrade to an empty list when the file cannot be parsed.
func TestPortfolioService_GetAllPortfolios(t *testing.T) {
	t.Run("returns empty slice when no portfolios exist", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)

		portfolios := svc.GetAllPortfolios()

		if len(portfolios) != 0 {
			t.Errorf("Expected empty slice, got %d portfolios", len(portfolios))
		}
	})

	t.Run("returns portfolios in insertion order", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)

		created := testutil.CreatePortfolios(t, file, 5)

		portfolios := svc.GetAllPortfolios()

		if len(portfolios) != 5 {
			t.Fatalf("Expected 5 portfolios, got %d", len(portfolios))
		}
		for i := range created {
			if portfolios[i].ID() != created[i].ID() {
				t.Errorf("Position %d: expected %s, got %s", i, created[i].ID(), portfolios[i].ID())
			}
		}
	})

	t.Run("returns empty slice for corrupt file", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		testutil.WriteRawDataFile(t, file, `[{"id":`)
		svc := testutil.NewTestPortfolioService(t, file)

		if got := svc.GetAllPortfolios(); len(got) != 0 {
			t.Errorf("Expected empty slice, got %d portfolios", len(got))
		}
	})
}

// TestPortfolioService_CreatePortfolio tests the CreatePortfolio method.
//
// WHY: Creation assigns identity and timestamps. Generated fields must win
// over caller fields and the record must survive a reload from disk.
func TestPortfolioService_CreatePortfolio(t *testing.T) {
	t.Run("assigns id and timestamps", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)

		before := time.Now().UTC().Truncate(time.Millisecond)
		p, err := svc.CreatePortfolio(map[string]any{"title": "My Site"})
		if err != nil {
			t.Fatalf("CreatePortfolio() returned unexpected error: %v", err)
		}
		after := time.Now().UTC()

		if _, err := uuid.Parse(p.ID()); err != nil {
			t.Errorf("Expected UUID id, got %q", p.ID())
		}
		if p["title"] != "My Site" {
			t.Errorf("Expected title 'My Site', got %v", p["title"])
		}

		createdAt, ok := p[model.FieldCreatedAt].(string)
		if !ok {
			t.Fatalf("Expected createdAt string, got %T", p[model.FieldCreatedAt])
		}
		if createdAt != p[model.FieldUpdatedAt] {
			t.Errorf("Expected createdAt == updatedAt, got %s and %v", createdAt, p[model.FieldUpdatedAt])
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			t.Fatalf("createdAt is not ISO-8601: %v", err)
		}
		if ts.Before(before) || ts.After(after) {
			t.Errorf("createdAt %s outside [%s, %s]", ts, before, after)
		}
	})

	t.Run("generated id overrides caller id", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)

		p, err := svc.CreatePortfolio(map[string]any{"id": "mine", "createdAt": "long ago"})
		if err != nil {
			t.Fatalf("CreatePortfolio() returned unexpected error: %v", err)
		}

		if p.ID() == "mine" {
			t.Error("Caller id must not override the generated id")
		}
		if p[model.FieldCreatedAt] == "long ago" {
			t.Error("Caller createdAt must not override the generated timestamp")
		}

		stored := svc.GetAllPortfolios()
		if len(stored) != 1 || stored[0].ID() != p.ID() {
			t.Errorf("Expected stored record with id %s, got %v", p.ID(), stored)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)

		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			p, err := svc.CreatePortfolio(map[string]any{})
			if err != nil {
				t.Fatalf("CreatePortfolio() returned unexpected error: %v", err)
			}
			if seen[p.ID()] {
				t.Fatalf("Duplicate id %s", p.ID())
			}
			seen[p.ID()] = true
		}
	})

	t.Run("persists across restart", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)

		a, _ := svc.CreatePortfolio(map[string]any{"title": "A"})
		b, _ := svc.CreatePortfolio(map[string]any{"title": "B"})

		reopened, err := database.Open(file.Path)
		if err != nil {
			t.Fatalf("Failed to reopen data file: %v", err)
		}
		restarted := service.NewPortfolioService(repository.NewPortfolioRepository(reopened))

		got := restarted.GetAllPortfolios()
		if len(got) != 2 {
			t.Fatalf("Expected 2 portfolios after restart, got %d", len(got))
		}
		if got[0].ID() != a.ID() || got[1].ID() != b.ID() {
			t.Error("Expected records to survive restart in order")
		}
	})

	t.Run("returns error when save fails", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)
		testutil.BreakDataDirectory(t, file)

		_, err := svc.CreatePortfolio(map[string]any{"title": "x"})
		if !errors.Is(err, apperrors.ErrFailedToSavePortfolios) {
			t.Errorf("Expected ErrFailedToSavePortfolios, got %v", err)
		}
	})

	t.Run("concurrent creates are all kept", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)

		const n = 25
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if _, err := svc.CreatePortfolio(map[string]any{"n": fmt.Sprint(i)}); err != nil {
					t.Errorf("CreatePortfolio() returned unexpected error: %v", err)
				}
			}(i)
		}
		wg.Wait()

		if got := len(svc.GetAllPortfolios()); got != n {
			t.Errorf("Expected %d portfolios, got %d", n, got)
		}
	})
}

// TestPortfolioService_DeletePortfolio tests the DeletePortfolio method.
//
// WHY: Deletion must remove exactly one record and report missing ids with
// a sentinel error the HTTP layer maps to 404.
func TestPortfolioService_DeletePortfolio(t *testing.T) {
	t.Run("removes exactly the matching record", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)

		p1 := testutil.CreatePortfolio(t, file, "One")
		p2 := testutil.CreatePortfolio(t, file, "Two")
		p3 := testutil.CreatePortfolio(t, file, "Three")

		deleted, err := svc.DeletePortfolio(p2.ID())
		if err != nil {
			t.Fatalf("DeletePortfolio() returned unexpected error: %v", err)
		}
		if deleted.ID() != p2.ID() || deleted["title"] != "Two" {
			t.Errorf("Expected deleted record Two, got %v", deleted)
		}

		remaining := svc.GetAllPortfolios()
		if len(remaining) != 2 {
			t.Fatalf("Expected 2 remaining, got %d", len(remaining))
		}
		if remaining[0].ID() != p1.ID() || remaining[1].ID() != p3.ID() {
			t.Error("Expected remaining records to keep their order")
		}
	})

	t.Run("returns ErrPortfolioNotFound for unknown id", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)
		testutil.CreatePortfolio(t, file, "One")

		_, err := svc.DeletePortfolio(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
		if len(svc.GetAllPortfolios()) != 1 {
			t.Error("Expected collection to be unchanged")
		}
	})

	t.Run("returns ErrPortfolioNotFound for empty id", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		testutil.WriteRawDataFile(t, file, `[{"title":"no id"}]`)
		svc := testutil.NewTestPortfolioService(t, file)

		_, err := svc.DeletePortfolio("")
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
	})

	t.Run("deletes only the first of duplicated ids", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		testutil.WriteRawDataFile(t, file, `[{"id":"dup","n":1},{"id":"dup","n":2}]`)
		svc := testutil.NewTestPortfolioService(t, file)

		if _, err := svc.DeletePortfolio("dup"); err != nil {
			t.Fatalf("DeletePortfolio() returned unexpected error: %v", err)
		}

		remaining := svc.GetAllPortfolios()
		if len(remaining) != 1 || fmt.Sprint(remaining[0]["n"]) != "2" {
			t.Errorf("Expected second duplicate to remain, got %v", remaining)
		}
	})

	t.Run("treats unreadable file as empty collection", func(t *testing.T) {
		file := testutil.SetupTestDataFile(t)
		svc := testutil.NewTestPortfolioService(t, file)
		p := testutil.CreatePortfolio(t, file, "One")

		testutil.BreakDataDirectory(t, file)

		_, err := svc.DeletePortfolio(p.ID())
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound after data loss, got %v", err)
		}
	})
}
