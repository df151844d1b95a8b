package http

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Waschdachs-Git/RepFinder/config"
	"github.com/Waschdachs-Git/RepFinder/internal/domain"
	"github.com/Waschdachs-Git/RepFinder/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog *usecase.CatalogService
	clicks  domain.ClickStore
	contact domain.ContactSink
	cfg     *config.Config
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, clicks domain.ClickStore, contact domain.ContactSink, cfg *config.Config) *Handler {
	return &Handler{
		catalog: catalog,
		clicks:  clicks,
		contact: contact,
		cfg:     cfg,
	}
}

// HealthCheck returns the health status of the API, including which feed
// source currently backs the catalog and which sources are configured at
// all. Feed misconfiguration never fails the endpoint; it shows up as mode
// "builtin".
func (h *Handler) HealthCheck(c *gin.Context) {
	feed := h.cfg.Feed
	env := gin.H{
		"csvUrl":              strings.TrimSpace(feed.CSVURL) != "",
		"spreadsheetId":       strings.TrimSpace(feed.SpreadsheetID) != "",
		"serviceAccountEmail": strings.TrimSpace(feed.ServiceAccountEmail) != "",
		"privateKey":          strings.TrimSpace(feed.PrivateKey) != "" || strings.TrimSpace(feed.PrivateKeyBase64) != "",
	}

	mode, count, err := h.catalog.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "degraded",
			"service": "repfinder-backend",
			"env":     env,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "repfinder-backend",
		"version":  "1.0.0",
		"source":   mode,
		"products": count,
		"env":      env,
	})
}

// GetProducts handles catalog queries. With an "id" parameter it returns a
// single product (null when unknown); otherwise a filtered, sorted page.
func (h *Handler) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if id := strings.TrimSpace(c.Query("id")); id != "" {
		product, mode, err := h.catalog.Lookup(ctx, id)
		c.Header("X-Products-Source", string(mode))
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				c.JSON(http.StatusOK, gin.H{"item": nil})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": product})
		return
	}

	params := usecase.QueryParams{
		Text:        c.Query("q"),
		Agent:       domain.Agent(strings.ToLower(strings.TrimSpace(c.Query("agent")))),
		Category:    domain.Category(strings.ToLower(strings.TrimSpace(c.Query("category")))),
		Subcategory: firstNonEmpty(c.Query("subcategory"), c.Query("sub")),
		Sort:        domain.SortKey(c.DefaultQuery("sort", string(domain.SortPopularity))),
		Page:        intQuery(c, "page", 1),
		PageSize:    intQuery(c, "pageSize", 0),
		PriceMin:    floatQuery(c, "minPrice"),
		PriceMax:    floatQuery(c, "maxPrice"),
		FavoriteIDs: splitIDs(c.Query("ids")),
	}

	result, err := h.catalog.Query(ctx, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}

	c.Header("X-Products-Source", string(result.Mode))
	c.JSON(http.StatusOK, result)
}

// Suggest returns up to a handful of {id, name} matches for typeahead.
func (h *Handler) Suggest(c *gin.Context) {
	agent := domain.Agent(strings.ToLower(strings.TrimSpace(c.Query("agent"))))
	items, err := h.catalog.Suggest(c.Request.Context(), c.Query("q"), agent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// clickRequest is the body of POST /api/clicks
type clickRequest struct {
	ID string `json:"id"`
}

// PostClick increments the click counter for one product.
func (h *Handler) PostClick(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	count, err := h.clicks.Increment(req.ID)
	if err != nil {
		// A lost increment is acceptable; the caller still gets a count.
		log.Printf("[clicks] increment failed for %s: %v", req.ID, err)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "clicks": count})
}

// GetClicks returns all persisted click counts.
func (h *Handler) GetClicks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clicks": h.clicks.ReadAll()})
}

// GetMeta returns the static shop and category taxonomy for the UI.
func (h *Handler) GetMeta(c *gin.Context) {
	shops := make([]domain.Shop, 0, len(domain.Agents))
	for _, agent := range domain.Agents {
		shops = append(shops, domain.Shops[agent])
	}
	c.JSON(http.StatusOK, gin.H{
		"shops":         shops,
		"categories":    domain.CategoryInfos,
		"subcategories": domain.Subcategories,
	})
}

// emailPattern is deliberately loose; real validation happens by mailing.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactRequest is the body of POST /api/contact
type contactRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// PostContact validates a contact-form submission and appends it to the
// configured contact sheet. Without a configured sink the message is logged
// and still acknowledged.
func (h *Handler) PostContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid JSON"})
		return
	}

	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if !emailPattern.MatchString(email) || len(message) < 5 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid input"})
		return
	}

	stored, err := h.contact.Append(c.Request.Context(), email, message, c.ClientIP())
	if err != nil {
		log.Printf("[contact] append failed: %v", err)
	}
	if !stored {
		preview := message
		if len(preview) > 200 {
			preview = preview[:200]
		}
		log.Printf("[contact] new message from %s: %s", email, preview)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// firstNonEmpty returns the first non-blank value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// intQuery parses an integer query parameter with a fallback.
func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}

// floatQuery parses an optional float query parameter.
func floatQuery(c *gin.Context, name string) *float64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// splitIDs parses a comma-separated ID list parameter.
func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
