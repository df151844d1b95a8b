package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Waschdachs-Git/RepFinder/config"
	"github.com/Waschdachs-Git/RepFinder/internal/domain"
	"github.com/Waschdachs-Git/RepFinder/internal/infrastructure/cache"
)

// Loader produces the current catalog snapshot, trying sources in priority
// order: published CSV URL, spreadsheet API, local JSON file, builtin sample
// list. The first source yielding at least one product wins. Failures are
// logged and swallowed; the builtin tail guarantees Load never returns an
// empty catalog.
type Loader struct {
	cfg       config.FeedConfig
	http      *resty.Client
	sheets    *SheetsClient
	snapshots *cache.SnapshotCache
	opts      MapperOptions
}

// NewLoader wires a loader against its snapshot cache. Spreadsheet
// credentials are validated once here; a misconfigured service account
// disables that source for the process lifetime rather than erroring on
// every request.
func NewLoader(cfg config.FeedConfig, snapshots *cache.SnapshotCache) *Loader {
	l := &Loader{
		cfg:       cfg,
		http:      resty.New().SetTimeout(30 * time.Second),
		snapshots: snapshots,
		opts:      MapperOptions{RequireAffiliate: cfg.RequireAffiliate},
	}

	sheets, err := NewSheetsClient(cfg)
	if err != nil {
		log.Printf("[loader] spreadsheet source disabled: %v", err)
	} else {
		l.sheets = sheets
	}
	return l
}

// Load returns the cached snapshot when fresh, otherwise reloads
// synchronously. It never fails: every source error degrades to the next
// source and ultimately to the builtin catalog.
func (l *Loader) Load(ctx context.Context) (*domain.Catalog, error) {
	if catalog, err := l.snapshots.Get(); err == nil {
		return catalog, nil
	}

	catalog := l.reload(ctx)
	l.snapshots.Set(catalog)
	return catalog, nil
}

// reload walks the source priority chain.
func (l *Loader) reload(ctx context.Context) *domain.Catalog {
	if strings.TrimSpace(l.cfg.CSVURL) != "" {
		items, err := l.loadCSV(ctx)
		if err != nil {
			log.Printf("[loader] csv source failed: %v", err)
		} else if len(items) > 0 {
			return &domain.Catalog{Items: items, Mode: domain.SourceCSV}
		}
	}

	if l.sheets != nil {
		items, err := l.loadSheets(ctx)
		if err != nil {
			log.Printf("[loader] sheets source failed: %v", err)
		} else if len(items) > 0 {
			return &domain.Catalog{Items: items, Mode: domain.SourceSheets}
		}
	}

	items, err := l.loadLocalJSON()
	if err != nil {
		log.Printf("[loader] local json source failed: %v", err)
	} else if len(items) > 0 {
		return &domain.Catalog{Items: items, Mode: domain.SourceLocalJSON}
	}

	log.Printf("[loader] all feed sources empty, serving builtin catalog")
	return &domain.Catalog{Items: Normalize(BuiltinProducts()), Mode: domain.SourceBuiltin}
}

// loadCSV fetches and parses the published CSV export.
func (l *Loader) loadCSV(ctx context.Context) ([]domain.Product, error) {
	resp, err := l.http.R().SetContext(ctx).Get(strings.TrimSpace(l.cfg.CSVURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: csv fetch status %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	rows := ParseCSV(string(resp.Body()))
	items := Normalize(MapRows(rows, l.opts))
	if len(items) == 0 {
		return nil, domain.ErrNoProducts
	}
	return items, nil
}

// loadSheets reads the configured spreadsheet tabs.
func (l *Loader) loadSheets(ctx context.Context) ([]domain.Product, error) {
	rows, err := l.sheets.Rows(ctx)
	if err != nil {
		return nil, err
	}
	items := Normalize(MapRows(rows, l.opts))
	if len(items) == 0 {
		return nil, domain.ErrNoProducts
	}
	return items, nil
}

// localFile mirrors the generated JSON file shape: either a bare product
// array or an object wrapping it in "items".
type localFile struct {
	Items []domain.Product `json:"items"`
}

// loadLocalJSON reads the generated products file from disk.
func (l *Loader) loadLocalJSON() ([]domain.Product, error) {
	data, err := os.ReadFile(l.cfg.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	var items []domain.Product
	if err := json.Unmarshal(data, &items); err != nil {
		var wrapped localFile
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: malformed products file: %v", domain.ErrSourceUnavailable, err)
		}
		items = wrapped.Items
	}
	normalized := Normalize(items)
	if len(normalized) == 0 {
		return nil, domain.ErrNoProducts
	}
	return normalized, nil
}
