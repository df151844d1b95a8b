package feed

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/Waschdachs-Git/RepFinder/internal/domain"
)

// maxIDLength caps synthesized product IDs
const maxIDLength = 64

// fieldAliases maps each logical product field to the header names feeds have
// been observed to use, normalized (lowercase, punctuation stripped). The
// first alias present in the header wins. Kept declarative so the accepted
// spellings stay auditable in one place.
var fieldAliases = map[string][]string{
	"id":          {"id", "sku", "uid"},
	"name":        {"name", "title", "produkt", "product"},
	"agent":       {"agent", "agents", "shop", "store"},
	"category":    {"category", "kategorie", "cat"},
	"subcategory": {"subcategory", "subcat", "unterkategorie"},
	"price":       {"price", "preis", "cost", "amount"},
	"image":       {"image", "imageurl", "img", "bild", "picture", "photo", "image1", "imagemain"},
	"image2":      {"image2", "imagealt", "image2url", "imageurl2", "bild2"},
	"description": {"description", "desc", "beschreibung", "details"},
	"affiliate":   {"affiliateurl", "affiliate", "url", "link", "href"},
	"clicks":      {"clicks", "klicks", "popularity"},
}

// columnAbsent is the sentinel index for a logical field with no header match.
const columnAbsent = -1

// columns holds the resolved header index per logical field.
type columns struct {
	ID          int
	Name        int
	Agent       int
	Category    int
	Subcategory int
	Price       int
	Image       int
	Image2      int
	Description int
	Affiliate   int
	Clicks      int
}

// normalizeHeaderCell lowercases a header name and strips everything that is
// not a letter or digit, so "Image URL", "image-url" and "imageurl" all match.
func normalizeHeaderCell(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveColumns maps a raw header row to column indexes via the alias table.
func resolveColumns(header []string) columns {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeaderCell(h)
	}
	find := func(field string) int {
		for _, alias := range fieldAliases[field] {
			for i, h := range normalized {
				if h == alias {
					return i
				}
			}
		}
		return columnAbsent
	}
	return columns{
		ID:          find("id"),
		Name:        find("name"),
		Agent:       find("agent"),
		Category:    find("category"),
		Subcategory: find("subcategory"),
		Price:       find("price"),
		Image:       find("image"),
		Image2:      find("image2"),
		Description: find("description"),
		Affiliate:   find("affiliate"),
		Clicks:      find("clicks"),
	}
}

// cell safely reads one cell from a possibly ragged row.
func cell(row []string, idx int) string {
	if idx == columnAbsent || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// categoryAliases maps lowercase feed category values onto the closed
// category set. Unmapped values fall back to other-stuff.
var categoryAliases = map[string]domain.Category{
	"footwear":           domain.CategoryShoes,
	"shoes":              domain.CategoryShoes,
	"tops":               domain.CategoryTops,
	"bottoms":            domain.CategoryBottoms,
	"outerwear":          domain.CategoryCoatsAndJackets,
	"coats & jackets":    domain.CategoryCoatsAndJackets,
	"coats and jackets":  domain.CategoryCoatsAndJackets,
	"coats-and-jackets":  domain.CategoryCoatsAndJackets,
	"full-body-clothing": domain.CategoryFullBody,
	"full_body_clothing": domain.CategoryFullBody,
	"full body clothing": domain.CategoryFullBody,
	"headwear":           domain.CategoryHeadwear,
	"accessories":        domain.CategoryAccessories,
	"belts":              domain.CategoryAccessories,
	"jewelry":            domain.CategoryJewelry,
	"electronics":        domain.CategoryOther, // category retired, remap
	"other-stuff":        domain.CategoryOther,
	"other_stuff":        domain.CategoryOther,
	"other stuff":        domain.CategoryOther,
}

// MapCategory resolves a free-text feed category to a catalog category.
// The result is always a member of the closed category set.
func MapCategory(raw string) domain.Category {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return domain.CategoryOther
}

// MapAgent clamps a free-text feed agent to the closed agent set.
func MapAgent(raw string) domain.Agent {
	a := domain.Agent(strings.ToLower(strings.TrimSpace(raw)))
	if domain.ValidAgent(a) {
		return a
	}
	return domain.DefaultAgent
}

// splitMultiValue splits a feed cell that may contain several values
// separated by newline, comma, semicolon or pipe. Empty parts are dropped.
func splitMultiValue(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ',' || r == ';' || r == '|'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parsePrice parses a locale-ambiguous price cell. A leading "usd" or "eur"
// token sets the currency; the numeric part accepts either comma or dot as
// decimal separator. Unparseable cells yield 0.
func parsePrice(raw string) (float64, domain.Currency) {
	s := strings.TrimSpace(strings.Join(strings.Fields(raw), " "))
	var currency domain.Currency
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "usd"):
		currency = domain.CurrencyUSD
	case strings.HasPrefix(lower, "eur"):
		currency = domain.CurrencyEUR
	}
	var numeric strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			numeric.WriteRune(r)
		}
	}
	// Feeds use the comma as decimal separator; only the first one is
	// rewritten so thousand-separator abuse fails the parse instead of
	// silently producing a wrong value.
	n := strings.Replace(numeric.String(), ",", ".", 1)
	price, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0, currency
	}
	return price, currency
}

// diacriticFolder strips combining marks after NFKD decomposition, so
// "Éléphant" slugs and sorts as "elephant".
var diacriticFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldDiacritics removes diacritic marks from s.
func FoldDiacritics(s string) string {
	out, _, err := transform.String(diacriticFolder, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify derives a URL-safe slug: diacritics folded, lowercased,
// non-alphanumeric runs collapsed to single hyphens, trimmed of hyphens.
func Slugify(s string) string {
	folded := strings.ToLower(FoldDiacritics(s))
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ShortHash is a deterministic base-36 string hash of s.
//
// It reproduces the 31-multiplier 32-bit hash the previous implementation
// used, because synthesized product IDs embed it: changing the function would
// change every derived ID and orphan persisted click counts and favorites.
func ShortHash(s string) string {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return strconv.FormatInt(abs, 36)
}

// SynthesizeID derives a stable product ID for rows without one:
// "<agent>-<slug(name)>[-<shortHash(affiliateURL)[:6]>]", truncated.
func SynthesizeID(agent domain.Agent, name, affiliateURL string) string {
	id := string(agent) + "-" + Slugify(name)
	if affiliateURL != "" {
		h := ShortHash(affiliateURL)
		if len(h) > 6 {
			h = h[:6]
		}
		id += "-" + h
	}
	if len(id) > maxIDLength {
		id = id[:maxIDLength]
	}
	return id
}

// Normalize clamps every product onto the closed agent/category sets, fills
// subcategory and ID defaults, and drops rows without a name. Running it on
// already-normalized products yields identical records, so sources may apply
// it defensively without double effects.
func Normalize(items []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		if !domain.ValidAgent(p.Agent) {
			p.Agent = domain.DefaultAgent
		}
		if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(string(p.Category)))]; ok {
			p.Category = c
		} else {
			p.Category = domain.CategoryOther
		}
		if strings.TrimSpace(p.Subcategory) == "" {
			p.Subcategory = domain.DefaultSubcategory
		}
		if p.ID == "" {
			p.ID = SynthesizeID(p.Agent, p.Name, p.AffiliateURL)
		}
		out = append(out, p)
	}
	return out
}
