package usecase

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Waschdachs-Git/RepFinder/internal/domain"
	"github.com/Waschdachs-Git/RepFinder/internal/infrastructure/feed"
)

// maxSuggestions caps search-as-you-type results
const maxSuggestions = 8

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	MaxPageSize     int
	DefaultPageSize int
}

// CatalogService answers product queries against the loader's current
// snapshot: filtering, sorting, paging, single-product lookup and
// suggestions. It never mutates the snapshot; sorting works on a copy.
type CatalogService struct {
	source          domain.ProductSource
	clicks          domain.ClickStore
	maxPageSize     int
	defaultPageSize int
}

// NewCatalogService creates a catalog service with dependencies
func NewCatalogService(source domain.ProductSource, clicks domain.ClickStore, cfg CatalogServiceConfig) *CatalogService {
	maxPageSize := cfg.MaxPageSize
	if maxPageSize <= 0 {
		maxPageSize = 60
	}
	defaultPageSize := cfg.DefaultPageSize
	if defaultPageSize <= 0 || defaultPageSize > maxPageSize {
		defaultPageSize = min(24, maxPageSize)
	}

	return &CatalogService{
		source:          source,
		clicks:          clicks,
		maxPageSize:     maxPageSize,
		defaultPageSize: defaultPageSize,
	}
}

// QueryParams are the catalog query inputs. Zero values mean "no filter".
type QueryParams struct {
	Text        string
	Agent       domain.Agent
	Category    domain.Category
	Subcategory string
	PriceMin    *float64
	PriceMax    *float64
	FavoriteIDs []string
	Sort        domain.SortKey
	Page        int
	PageSize    int
}

// QueryResult is one catalog page plus the pre-page total.
type QueryResult struct {
	Items    []domain.Product  `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Mode     domain.SourceMode `json:"-"`
}

// Query filters, sorts and pages the catalog.
func (s *CatalogService) Query(ctx context.Context, params QueryParams) (*QueryResult, error) {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	items := s.withRuntimeClicks(catalog.Items)
	items = s.filter(items, params)
	s.sortItems(items, params.Sort)

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	total := len(items)
	start := (page - 1) * pageSize
	if start >= total {
		items = []domain.Product{}
	} else {
		end := start + pageSize
		if end > total {
			end = total
		}
		items = items[start:end]
	}

	return &QueryResult{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Mode:     catalog.Mode,
	}, nil
}

// Lookup returns a single product by ID, bypassing filtering and paging.
func (s *CatalogService) Lookup(ctx context.Context, id string) (*domain.Product, domain.SourceMode, error) {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return nil, "", err
	}

	runtime := s.clicks.ReadAll()
	for _, p := range catalog.Items {
		if p.ID == id {
			p.Clicks += runtime[p.ID]
			return &p, catalog.Mode, nil
		}
	}
	return nil, catalog.Mode, domain.ErrProductNotFound
}

// Suggest returns up to maxSuggestions products whose name contains the
// query, optionally restricted to one agent.
func (s *CatalogService) Suggest(ctx context.Context, text string, agent domain.Agent) ([]domain.Suggestion, error) {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return []domain.Suggestion{}, nil
	}

	catalog, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Suggestion, 0, maxSuggestions)
	for _, p := range catalog.Items {
		if agent != "" && p.Agent != agent {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, domain.Suggestion{ID: p.ID, Name: p.Name})
		if len(out) == maxSuggestions {
			break
		}
	}
	return out, nil
}

// Status reports the current snapshot's source mode and product count,
// used by the health endpoint.
func (s *CatalogService) Status(ctx context.Context) (domain.SourceMode, int, error) {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return "", 0, err
	}
	return catalog.Mode, len(catalog.Items), nil
}

// withRuntimeClicks copies the snapshot items with persisted click counts
// folded into the seed counts, so popularity sorting sees a single number.
func (s *CatalogService) withRuntimeClicks(items []domain.Product) []domain.Product {
	runtime := s.clicks.ReadAll()
	out := make([]domain.Product, len(items))
	copy(out, items)
	if len(runtime) == 0 {
		return out
	}
	for i := range out {
		out[i].Clicks += runtime[out[i].ID]
	}
	return out
}

// filter applies all requested filters, AND-combined.
func (s *CatalogService) filter(items []domain.Product, params QueryParams) []domain.Product {
	var favorites map[string]bool
	if len(params.FavoriteIDs) > 0 {
		favorites = make(map[string]bool, len(params.FavoriteIDs))
		for _, id := range params.FavoriteIDs {
			favorites[id] = true
		}
	}

	text := strings.ToLower(strings.TrimSpace(params.Text))
	subcategory := strings.ToLower(strings.TrimSpace(params.Subcategory))

	out := items[:0]
	for _, p := range items {
		if params.Agent != "" && p.Agent != params.Agent {
			continue
		}
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if subcategory != "" && strings.ToLower(p.Subcategory) != subcategory {
			continue
		}
		if text != "" && !matchesText(p, text) {
			continue
		}
		if params.PriceMin != nil && p.Price < *params.PriceMin {
			continue
		}
		if params.PriceMax != nil && p.Price > *params.PriceMax {
			continue
		}
		if favorites != nil && !favorites[p.ID] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesText checks the query against the raw name, the display title, and
// the brand-term bridge: a query that is (or contains) the product's detected
// brand matches even when the rest of the name differs.
func matchesText(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(DisplayTitle(p)), q) {
		return true
	}
	if brand := DetectBrandTerm(p.Name); brand != "" {
		return strings.Contains(q, brand) || strings.Contains(brand, q)
	}
	return false
}

// sortItems orders items in place. All sorts are stable so equal keys retain
// their snapshot order, which the popularity tie rule depends on.
func (s *CatalogService) sortItems(items []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case domain.SortNameAsc:
		type keyed struct {
			key     string
			product domain.Product
		}
		wrapped := make([]keyed, len(items))
		for i, p := range items {
			wrapped[i] = keyed{
				key:     strings.ToLower(strings.TrimSpace(feed.FoldDiacritics(p.Name))),
				product: p,
			}
		}
		// Collators are not safe for concurrent use, so build one per call.
		c := collate.New(language.English)
		sort.SliceStable(wrapped, func(i, j int) bool {
			return c.CompareString(wrapped[i].key, wrapped[j].key) < 0
		})
		for i := range wrapped {
			items[i] = wrapped[i].product
		}
	default: // popularity
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Clicks > items[j].Clicks
		})
	}
}
