package feed

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"golang.org/x/time/rate"

	"github.com/Waschdachs-Git/RepFinder/config"
	"github.com/Waschdachs-Git/RepFinder/internal/domain"
)

const (
	sheetsBaseURL      = "https://sheets.googleapis.com"
	scopeSheetsRead    = "https://www.googleapis.com/auth/spreadsheets.readonly"
	scopeSheetsWrite   = "https://www.googleapis.com/auth/spreadsheets"
	defaultSheetsRange = "A1:ZZ100000"
)

// defaultTabs are the conventional per-category tab names probed when no
// explicit tab list is configured and auto-discovery is enabled. Tabs that do
// not exist simply return errors and are skipped.
var defaultTabs = []string{
	"Footwear", "Tops", "Bottoms", "Outerwear", "Full-Body-Clothing",
	"Headwear", "Accessories", "Jewelry", "Other Stuff",
}

// SheetsClient reads product rows from a spreadsheet via the values API using
// a service account. It concatenates data rows from several tabs, taking the
// header row from the first non-empty tab only.
type SheetsClient struct {
	http          *resty.Client
	spreadsheetID string
	baseRange     string
	tab           string
	tabs          []string
	ignoreTabs    map[string]bool
	autoTabs      bool
	rateLimiter   *rate.Limiter
}

// NewSheetsClient builds a read-only spreadsheet client from the feed
// configuration. It fails fast on missing or malformed credentials so the
// loader can fall through to the next source.
func NewSheetsClient(cfg config.FeedConfig) (*SheetsClient, error) {
	httpClient, err := serviceAccountClient(cfg, scopeSheetsRead)
	if err != nil {
		return nil, err
	}

	spreadsheetID := normalizeEnvValue(cfg.SpreadsheetID)
	baseRange := strings.TrimSpace(cfg.Range)
	if baseRange == "" {
		baseRange = defaultSheetsRange
	}

	ignore := make(map[string]bool, len(cfg.IgnoreTabs))
	for _, t := range cfg.IgnoreTabs {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			ignore[t] = true
		}
	}

	var tabs []string
	for _, t := range cfg.Tabs {
		if t = strings.TrimSpace(t); t != "" {
			tabs = append(tabs, t)
		}
	}

	// The Sheets API allows 300 read requests per minute per project,
	// so 5 requests/sec with a small burst for multi-tab loads.
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return &SheetsClient{
		http:          resty.NewWithClient(httpClient).SetBaseURL(sheetsBaseURL).SetTimeout(30 * time.Second),
		spreadsheetID: spreadsheetID,
		baseRange:     baseRange,
		tab:           strings.TrimSpace(cfg.Tab),
		tabs:          tabs,
		ignoreTabs:    ignore,
		autoTabs:      cfg.AutoTabs,
		rateLimiter:   limiter,
	}, nil
}

// serviceAccountClient builds an authenticated HTTP client from the
// configured service-account credentials, validating them the same way for
// read and write use.
func serviceAccountClient(cfg config.FeedConfig, scope string) (*http.Client, error) {
	spreadsheetID := normalizeEnvValue(cfg.SpreadsheetID)
	clientEmail := normalizeEnvValue(cfg.ServiceAccountEmail)
	privateKey := resolvePrivateKey(cfg)

	if spreadsheetID == "" || clientEmail == "" || privateKey == "" {
		return nil, domain.ErrMissingCredentials
	}
	if !strings.HasSuffix(clientEmail, ".iam.gserviceaccount.com") {
		return nil, fmt.Errorf("%w: service account email must end with .iam.gserviceaccount.com", domain.ErrMissingCredentials)
	}
	if !strings.Contains(privateKey, "BEGIN PRIVATE KEY") || !strings.Contains(privateKey, "END PRIVATE KEY") {
		return nil, fmt.Errorf("%w: private key PEM is missing BEGIN/END markers", domain.ErrMissingCredentials)
	}

	jwtConfig := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{scope},
		TokenURL:   google.JWTTokenURL,
	}
	return jwtConfig.Client(context.Background()), nil
}

// normalizeEnvValue trims a value and strips one layer of surrounding quotes,
// which deployment tooling tends to leave on multi-line env vars.
func normalizeEnvValue(v string) string {
	s := strings.TrimSpace(v)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.TrimSpace(s)
}

// resolvePrivateKey picks the base64 key variant when present, otherwise the
// plain PEM, and normalizes line endings including literal "\n" escapes.
func resolvePrivateKey(cfg config.FeedConfig) string {
	if b64 := strings.TrimSpace(cfg.PrivateKeyBase64); b64 != "" {
		if decoded, err := base64.StdEncoding.DecodeString(b64); err == nil {
			return normalizePEM(string(decoded))
		}
	}
	if plain := strings.TrimSpace(cfg.PrivateKey); plain != "" {
		return normalizePEM(plain)
	}
	return ""
}

// normalizePEM fixes the usual transport damage on PEM keys: surrounding
// quotes, CRLF line endings, and "\n" written as two characters.
func normalizePEM(pem string) string {
	p := normalizeEnvValue(pem)
	p = strings.ReplaceAll(p, "\r\n", "\n")
	p = strings.ReplaceAll(p, "\r", "\n")
	p = strings.ReplaceAll(p, `\n`, "\n")
	return p
}

// valuesResponse is the spreadsheet values API response shape.
type valuesResponse struct {
	Values [][]any `json:"values"`
}

// ReadRange fetches one A1-notation range and returns its cells as strings.
func (c *SheetsClient) ReadRange(ctx context.Context, rangeStr string) ([][]string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	var body valuesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(fmt.Sprintf("/v4/spreadsheets/%s/values/%s",
			url.PathEscape(c.spreadsheetID), url.PathEscape(rangeStr)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: values API status %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}

	rows := make([][]string, 0, len(body.Values))
	for _, raw := range body.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// shouldIgnore reports whether a tab is excluded from product loading.
// The dropdown helper tab copies some sheet editors leave around are always
// skipped.
func (c *SheetsClient) shouldIgnore(tab string) bool {
	n := strings.ToLower(tab)
	if strings.Contains(n, "kopie von dropdown") {
		return true
	}
	return c.ignoreTabs[n]
}

// Rows assembles product rows across the configured tabs. Explicitly
// configured tabs win; otherwise auto-discovery probes the conventional tab
// names; as a last resort the single tab or bare base range is read. The
// header row comes from the first tab that returns data, later tabs
// contribute data rows only.
func (c *SheetsClient) Rows(ctx context.Context) ([][]string, error) {
	var rows [][]string

	appendTab := func(tabRows [][]string) {
		if len(tabRows) == 0 {
			return
		}
		if len(rows) == 0 {
			rows = append(rows, tabRows...)
		} else {
			rows = append(rows, tabRows[1:]...)
		}
	}

	if len(c.tabs) > 0 {
		for _, tab := range c.tabs {
			if c.shouldIgnore(tab) {
				continue
			}
			tabRows, err := c.ReadRange(ctx, tab+"!"+c.baseRange)
			if err != nil {
				log.Printf("[sheets] tab %q read failed: %v", tab, err)
				continue
			}
			appendTab(tabRows)
		}
	} else if c.autoTabs {
		for _, tab := range defaultTabs {
			if c.shouldIgnore(tab) {
				continue
			}
			tabRows, err := c.ReadRange(ctx, tab+"!"+c.baseRange)
			if err != nil {
				// Non-existent tabs are expected during discovery.
				continue
			}
			appendTab(tabRows)
		}
	}

	if len(rows) == 0 {
		rangeStr := c.baseRange
		if c.tab != "" && !c.shouldIgnore(c.tab) {
			rangeStr = c.tab + "!" + c.baseRange
		}
		return c.ReadRange(ctx, rangeStr)
	}
	return rows, nil
}
