package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Waschdachs-Git/RepFinder/config"
	"github.com/Waschdachs-Git/RepFinder/internal/domain"
)

// ContactSheet appends contact-form submissions as rows to a dedicated
// spreadsheet tab, reusing the feed's service-account credentials with write
// scope. When credentials are absent it reports itself unconfigured instead
// of failing, so the handler can acknowledge and log the message instead.
type ContactSheet struct {
	http          *resty.Client
	spreadsheetID string
	tab           string
	configured    bool
}

// NewContactSheet builds the contact sink. The contact sheet ID falls back to
// the feed spreadsheet when not set separately. CSV-mode deployments carry no
// credentials, making the sink unconfigured by construction.
func NewContactSheet(cfg *config.Config) *ContactSheet {
	feedCfg := cfg.Feed
	if id := strings.TrimSpace(cfg.Contact.SpreadsheetID); id != "" {
		feedCfg.SpreadsheetID = id
	}

	sink := &ContactSheet{
		spreadsheetID: normalizeEnvValue(feedCfg.SpreadsheetID),
		tab:           strings.TrimSpace(cfg.Contact.Tab),
	}
	if sink.tab == "" {
		sink.tab = "Contact"
	}

	httpClient, err := serviceAccountClient(feedCfg, scopeSheetsWrite)
	if err != nil {
		// Missing or malformed credentials: stay unconfigured.
		return sink
	}
	sink.http = resty.NewWithClient(httpClient).SetBaseURL(sheetsBaseURL).SetTimeout(30 * time.Second)
	sink.configured = true
	return sink
}

// Append writes one [timestamp, email, message, ip] row. It returns false
// without error when no write target is configured.
func (s *ContactSheet) Append(ctx context.Context, email, message, ip string) (bool, error) {
	if !s.configured {
		return false, nil
	}

	body := map[string]any{
		"values": [][]string{{time.Now().UTC().Format(time.RFC3339), email, message, ip}},
	}
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("valueInputOption", "RAW").
		SetQueryParam("insertDataOption", "INSERT_ROWS").
		SetBody(body).
		Post(fmt.Sprintf("/v4/spreadsheets/%s/values/%s:append",
			url.PathEscape(s.spreadsheetID), url.PathEscape(s.tab+"!A:D")))
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("%w: append status %d", domain.ErrSourceUnavailable, resp.StatusCode())
	}
	return true, nil
}
