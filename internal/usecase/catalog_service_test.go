package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Waschdachs-Git/RepFinder/internal/domain"
)

// stubSource serves a fixed catalog.
type stubSource struct {
	catalog *domain.Catalog
	err     error
}

func (s *stubSource) Load(ctx context.Context) (*domain.Catalog, error) {
	return s.catalog, s.err
}

// stubClicks is an in-memory click store.
type stubClicks struct {
	counts map[string]int
}

func newStubClicks() *stubClicks {
	return &stubClicks{counts: map[string]int{}}
}

func (s *stubClicks) Increment(id string) (int, error) {
	s.counts[id]++
	return s.counts[id], nil
}

func (s *stubClicks) ReadAll() map[string]int {
	return s.counts
}

func sampleService(items []domain.Product, clicks *stubClicks) *CatalogService {
	if clicks == nil {
		clicks = newStubClicks()
	}
	source := &stubSource{catalog: &domain.Catalog{Items: items, Mode: domain.SourceBuiltin}}
	return NewCatalogService(source, clicks, CatalogServiceConfig{MaxPageSize: 60, DefaultPageSize: 24})
}

func sampleItems() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Nike Air Max 97", Agent: domain.AgentCnfans, Category: domain.CategoryShoes, Subcategory: "Sneakers", Price: 89.99, Clicks: 5},
		{ID: "p2", Name: "Puffer Jacket Black", Agent: domain.AgentSuperbuy, Category: domain.CategoryCoatsAndJackets, Subcategory: "Puffer", Price: 45.00, Clicks: 20},
		{ID: "p3", Name: "Éclair Tee", Agent: domain.AgentCnfans, Category: domain.CategoryTops, Subcategory: "T-Shirts", Price: 12.50, Clicks: 1},
		{ID: "p4", Name: "Adidas Samba OG", Agent: domain.AgentMulebuy, Category: domain.CategoryShoes, Subcategory: "Sneakers", Price: 55.00, Clicks: 10},
	}
}

func TestQuery_Filters(t *testing.T) {
	svc := sampleService(sampleItems(), nil)

	priceMin := 40.0
	priceMax := 60.0

	testCases := []struct {
		name    string
		params  QueryParams
		wantIDs []string
	}{
		{
			name:    "no filters returns everything",
			params:  QueryParams{Sort: domain.SortPriceAsc},
			wantIDs: []string{"p3", "p2", "p4", "p1"},
		},
		{
			name:    "agent filter",
			params:  QueryParams{Agent: domain.AgentCnfans, Sort: domain.SortPriceAsc},
			wantIDs: []string{"p3", "p1"},
		},
		{
			name:    "category filter",
			params:  QueryParams{Category: domain.CategoryShoes, Sort: domain.SortPriceAsc},
			wantIDs: []string{"p4", "p1"},
		},
		{
			name:    "subcategory filter is case-insensitive",
			params:  QueryParams{Subcategory: "sneakers", Sort: domain.SortPriceAsc},
			wantIDs: []string{"p4", "p1"},
		},
		{
			name:    "price range inclusive",
			params:  QueryParams{PriceMin: &priceMin, PriceMax: &priceMax, Sort: domain.SortPriceAsc},
			wantIDs: []string{"p2", "p4"},
		},
		{
			name:    "text search on name",
			params:  QueryParams{Text: "air max", Sort: domain.SortPriceAsc},
			wantIDs: []string{"p1"},
		},
		{
			name:    "text search folds case",
			params:  QueryParams{Text: "PUFFER", Sort: domain.SortPriceAsc},
			wantIDs: []string{"p2"},
		},
		{
			name:    "brand query matches brand bridge",
			params:  QueryParams{Text: "adidas", Sort: domain.SortPriceAsc},
			wantIDs: []string{"p4"},
		},
		{
			name:    "favorites filter",
			params:  QueryParams{FavoriteIDs: []string{"p2", "p3"}, Sort: domain.SortPriceAsc},
			wantIDs: []string{"p3", "p2"},
		},
		{
			name:    "combined filters AND together",
			params:  QueryParams{Agent: domain.AgentCnfans, Category: domain.CategoryTops, Sort: domain.SortPriceAsc},
			wantIDs: []string{"p3"},
		},
		{
			name:    "no matches",
			params:  QueryParams{Text: "does not exist"},
			wantIDs: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Query(context.Background(), tc.params)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if result.Total != len(tc.wantIDs) {
				t.Errorf("Total = %d, want %d", result.Total, len(tc.wantIDs))
			}
			gotIDs := make([]string, 0, len(result.Items))
			for _, p := range result.Items {
				gotIDs = append(gotIDs, p.ID)
			}
			if len(gotIDs) != len(tc.wantIDs) {
				t.Fatalf("got IDs %v, want %v", gotIDs, tc.wantIDs)
			}
			for i := range tc.wantIDs {
				if gotIDs[i] != tc.wantIDs[i] {
					t.Errorf("item %d = %s, want %s (all: %v)", i, gotIDs[i], tc.wantIDs[i], gotIDs)
				}
			}
		})
	}
}

func TestQuery_Sorting(t *testing.T) {
	testCases := []struct {
		name    string
		sort    domain.SortKey
		wantIDs []string
	}{
		{"price ascending", domain.SortPriceAsc, []string{"p3", "p2", "p4", "p1"}},
		{"price descending", domain.SortPriceDesc, []string{"p1", "p4", "p2", "p3"}},
		// "Éclair" sorts as "eclair", after "adidas".
		{"name ascending folds diacritics", domain.SortNameAsc, []string{"p4", "p3", "p1", "p2"}},
		{"popularity by default", "", []string{"p2", "p4", "p1", "p3"}},
		{"unknown key falls back to popularity", "bogus", []string{"p2", "p4", "p1", "p3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := sampleService(sampleItems(), nil)
			result, err := svc.Query(context.Background(), QueryParams{Sort: tc.sort})
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			for i, want := range tc.wantIDs {
				if result.Items[i].ID != want {
					t.Errorf("position %d = %s, want %s", i, result.Items[i].ID, want)
				}
			}
		})
	}
}

func TestQuery_SortStability(t *testing.T) {
	// Products with equal prices must keep their snapshot order.
	items := []domain.Product{
		{ID: "first", Name: "A", Agent: domain.AgentCnfans, Price: 10},
		{ID: "second", Name: "B", Agent: domain.AgentCnfans, Price: 10},
		{ID: "third", Name: "C", Agent: domain.AgentCnfans, Price: 10},
	}
	svc := sampleService(items, nil)

	result, err := svc.Query(context.Background(), QueryParams{Sort: domain.SortPriceAsc})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	for i, want := range []string{"first", "second", "third"} {
		if result.Items[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, result.Items[i].ID, want)
		}
	}
}

func TestQuery_PopularityIncludesRuntimeClicks(t *testing.T) {
	clicks := newStubClicks()
	clicks.counts["p3"] = 100 // persisted clicks outweigh the seed counts

	svc := sampleService(sampleItems(), clicks)

	result, err := svc.Query(context.Background(), QueryParams{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if result.Items[0].ID != "p3" {
		t.Errorf("top item = %s, want p3", result.Items[0].ID)
	}
	if result.Items[0].Clicks != 101 {
		t.Errorf("clicks = %d, want 101 (seed + runtime)", result.Items[0].Clicks)
	}
}

func TestQuery_Pagination(t *testing.T) {
	items := make([]domain.Product, 30)
	for i := range items {
		items[i] = domain.Product{
			ID:    string(rune('a' + i%26)) + string(rune('0'+i/26)),
			Name:  "Item",
			Agent: domain.AgentCnfans,
			Price: float64(i),
		}
	}
	svc := sampleService(items, nil)

	testCases := []struct {
		name      string
		page      int
		pageSize  int
		wantLen   int
		wantPage  int
		wantSize  int
		wantTotal int
	}{
		{"default page size", 1, 0, 24, 1, 24, 30},
		{"second page remainder", 2, 24, 6, 2, 24, 30},
		{"page past the end is empty", 3, 24, 0, 3, 24, 30},
		{"page below one clamps to one", 0, 10, 10, 1, 10, 30},
		{"page size above max clamps", 1, 500, 30, 1, 60, 30},
		{"exact boundary", 1, 30, 30, 1, 30, 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Query(context.Background(), QueryParams{
				Sort:     domain.SortPriceAsc,
				Page:     tc.page,
				PageSize: tc.pageSize,
			})
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if len(result.Items) != tc.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(result.Items), tc.wantLen)
			}
			if result.Page != tc.wantPage {
				t.Errorf("Page = %d, want %d", result.Page, tc.wantPage)
			}
			if result.PageSize != tc.wantSize {
				t.Errorf("PageSize = %d, want %d", result.PageSize, tc.wantSize)
			}
			if result.Total != tc.wantTotal {
				t.Errorf("Total = %d, want %d", result.Total, tc.wantTotal)
			}
		})
	}
}

func TestQuery_PaginationExactPageBoundary(t *testing.T) {
	// 24 items at the default page size: page 1 full, page 2 empty.
	items := make([]domain.Product, 24)
	for i := range items {
		items[i] = domain.Product{ID: string(rune('a' + i)), Name: "Item", Agent: domain.AgentCnfans}
	}
	svc := sampleService(items, nil)

	first, err := svc.Query(context.Background(), QueryParams{Page: 1})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(first.Items) != 24 || first.Total != 24 {
		t.Errorf("page 1: len = %d, total = %d, want 24/24", len(first.Items), first.Total)
	}

	second, err := svc.Query(context.Background(), QueryParams{Page: 2})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(second.Items) != 0 {
		t.Errorf("page 2: len = %d, want 0", len(second.Items))
	}
	if second.Total != 24 {
		t.Errorf("page 2: total = %d, want 24", second.Total)
	}
}

func TestQuery_SourceError(t *testing.T) {
	wantErr := errors.New("source down")
	svc := NewCatalogService(&stubSource{err: wantErr}, newStubClicks(), CatalogServiceConfig{})

	_, err := svc.Query(context.Background(), QueryParams{})
	if !errors.Is(err, wantErr) {
		t.Errorf("Query() error = %v, want %v", err, wantErr)
	}
}

func TestQuery_DoesNotMutateSnapshot(t *testing.T) {
	items := sampleItems()
	svc := sampleService(items, nil)

	_, err := svc.Query(context.Background(), QueryParams{Sort: domain.SortPriceDesc})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if items[0].ID != "p1" {
		t.Errorf("snapshot order changed, first item = %s", items[0].ID)
	}
}

func TestLookup(t *testing.T) {
	clicks := newStubClicks()
	clicks.counts["p1"] = 2
	svc := sampleService(sampleItems(), clicks)

	t.Run("found", func(t *testing.T) {
		p, mode, err := svc.Lookup(context.Background(), "p1")
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		if p.Name != "Nike Air Max 97" {
			t.Errorf("Name = %s", p.Name)
		}
		if p.Clicks != 7 {
			t.Errorf("Clicks = %d, want 7 (seed 5 + runtime 2)", p.Clicks)
		}
		if mode != domain.SourceBuiltin {
			t.Errorf("mode = %s", mode)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, _, err := svc.Lookup(context.Background(), "nope")
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
	})
}

func TestSuggest(t *testing.T) {
	svc := sampleService(sampleItems(), nil)

	t.Run("matches by name substring", func(t *testing.T) {
		got, err := svc.Suggest(context.Background(), "air", "")
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "p1" {
			t.Errorf("got %v, want [p1]", got)
		}
	})

	t.Run("agent restriction", func(t *testing.T) {
		got, err := svc.Suggest(context.Background(), "a", domain.AgentMulebuy)
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "p4" {
			t.Errorf("got %v, want [p4]", got)
		}
	})

	t.Run("blank query yields nothing", func(t *testing.T) {
		got, err := svc.Suggest(context.Background(), "   ", "")
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})

	t.Run("capped at eight", func(t *testing.T) {
		items := make([]domain.Product, 20)
		for i := range items {
			items[i] = domain.Product{ID: "x", Name: "Matching Name", Agent: domain.AgentCnfans}
		}
		capped := sampleService(items, nil)

		got, err := capped.Suggest(context.Background(), "matching", "")
		if err != nil {
			t.Fatalf("Suggest() error = %v", err)
		}
		if len(got) != maxSuggestions {
			t.Errorf("len = %d, want %d", len(got), maxSuggestions)
		}
	})
}

func TestStatus(t *testing.T) {
	svc := sampleService(sampleItems(), nil)

	mode, count, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if mode != domain.SourceBuiltin {
		t.Errorf("mode = %s, want builtin", mode)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
}

func TestNewCatalogService_Defaults(t *testing.T) {
	svc := NewCatalogService(&stubSource{}, newStubClicks(), CatalogServiceConfig{})

	if svc.maxPageSize != 60 {
		t.Errorf("maxPageSize = %d, want 60", svc.maxPageSize)
	}
	if svc.defaultPageSize != 24 {
		t.Errorf("defaultPageSize = %d, want 24", svc.defaultPageSize)
	}
}
