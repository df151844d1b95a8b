package domain

import "encoding/json"

// Agent identifies a purchasing agent through which a listed product can be
// ordered. The set is closed: feed values outside it are clamped to
// DefaultAgent during normalization.
type Agent string

const (
	AgentItaobuy     Agent = "itaobuy"
	AgentCnfans      Agent = "cnfans"
	AgentSuperbuy    Agent = "superbuy"
	AgentMulebuy     Agent = "mulebuy"
	AgentAllchinabuy Agent = "allchinabuy"
)

// DefaultAgent is used when a feed row carries no recognizable agent.
const DefaultAgent = AgentCnfans

// Agents lists all known agents in canonical order.
var Agents = []Agent{AgentItaobuy, AgentCnfans, AgentSuperbuy, AgentMulebuy, AgentAllchinabuy}

// ValidAgent reports whether a is one of the known agents.
func ValidAgent(a Agent) bool {
	for _, known := range Agents {
		if a == known {
			return true
		}
	}
	return false
}

// Category is a catalog category slug. Free-text feed values are mapped onto
// this closed set via the alias table in the feed mapper.
type Category string

const (
	CategoryShoes           Category = "shoes"
	CategoryTops            Category = "tops"
	CategoryBottoms         Category = "bottoms"
	CategoryCoatsAndJackets Category = "coats-and-jackets"
	CategoryFullBody        Category = "full-body-clothing"
	CategoryHeadwear        Category = "headwear"
	CategoryAccessories     Category = "accessories"
	CategoryJewelry         Category = "jewelry"
	CategoryOther           Category = "other-stuff"
)

// Categories lists all catalog categories in display order.
var Categories = []Category{
	CategoryShoes,
	CategoryTops,
	CategoryBottoms,
	CategoryCoatsAndJackets,
	CategoryFullBody,
	CategoryHeadwear,
	CategoryAccessories,
	CategoryJewelry,
	CategoryOther,
}

// Currency of a product price, inferred from a prefix token in the feed's
// price cell. Empty means the feed did not specify one.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// DefaultSubcategory is assigned when a feed row has no subcategory value.
const DefaultSubcategory = "General"

// Product is a single catalog entry. A feed row in the wide (multi-agent)
// schema expands into one Product per applicable agent.
type Product struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Agent        Agent      `json:"agent"`
	Category     Category   `json:"category"`
	Subcategory  string     `json:"subcategory"`
	Price        float64    `json:"price"`
	Currency     Currency   `json:"currency,omitempty"`
	Image        string     `json:"image"`
	ImageAlt     StringList `json:"imageAlt,omitempty"`
	Description  string     `json:"description,omitempty"`
	AffiliateURL string     `json:"affiliateUrl,omitempty"`
	Clicks       int        `json:"clicks,omitempty"`
}

// StringList accepts both a bare string and an array of strings when
// decoding. Feed JSON writes single-image cells as a scalar and multi-image
// cells as a list; internally both are a list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// SourceMode tells which feed source produced the current catalog snapshot.
type SourceMode string

const (
	SourceCSV       SourceMode = "csv"
	SourceSheets    SourceMode = "sheets"
	SourceLocalJSON SourceMode = "local-json"
	SourceBuiltin   SourceMode = "builtin"
)

// Catalog is an immutable product snapshot produced by one loader run. It is
// replaced wholesale on cache refresh and must not be mutated by consumers.
type Catalog struct {
	Items []Product
	Mode  SourceMode
}

// SortKey selects the ordering applied by the query engine.
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortNameAsc    SortKey = "name-asc"
)

// Suggestion is a lightweight search-as-you-type hit.
type Suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
