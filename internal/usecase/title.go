package usecase

import (
	"regexp"
	"strings"

	"github.com/Waschdachs-Git/RepFinder/internal/domain"
)

// brandTerms is the brand lexicon consulted by search matching, ordered so
// longer terms match before their substrings ("nike air jordan" before
// "nike").
var brandTerms = []string{
	"nike air jordan", "air jordan", "jordan", "nike", "adidas", "yeezy", "new balance", "puma", "reebok", "asics", "converse", "vans",
	"balenciaga", "gucci", "prada", "louis vuitton", "dior", "burberry", "moncler", "stone island", "off-white", "fear of god",
	"ralph lauren", "tommy hilfiger", "the north face", "canada goose", "hermes", "celine", "saint laurent",
}

// DetectBrandTerm returns the first known brand term contained in a product
// name, or "" when none matches.
func DetectBrandTerm(name string) string {
	n := strings.ToLower(name)
	for _, term := range brandTerms {
		if strings.Contains(n, term) {
			return term
		}
	}
	return ""
}

// subcategoryTypes maps subcategory text patterns to a product type label,
// checked in order: the specific outerwear and footwear patterns must win
// before the generic ones.
var subcategoryTypes = []struct {
	pattern *regexp.Regexp
	label   string
}{
	// Footwear
	{regexp.MustCompile(`(?i)\bsneakers?\b`), "Sneaker"},
	{regexp.MustCompile(`(?i)\bslides?\b`), "Slides"},
	{regexp.MustCompile(`(?i)\bsandals?\b`), "Sandals"},
	{regexp.MustCompile(`(?i)\bboots?\b`), "Boots"},
	{regexp.MustCompile(`(?i)\bloafers?\b`), "Loafer"},
	{regexp.MustCompile(`(?i)dress\s*shoes?|oxfords?`), "Dress shoes"},
	{regexp.MustCompile(`(?i)\bespadrilles?\b`), "Espadrilles"},
	{regexp.MustCompile(`(?i)slippers?|house\s*shoes?`), "Slippers"},
	{regexp.MustCompile(`(?i)\bheels?\b`), "Heels"},

	// Outerwear
	{regexp.MustCompile(`(?i)puffer`), "Puffer jacket"},
	{regexp.MustCompile(`(?i)leather\s*jacket`), "Leather jacket"},
	{regexp.MustCompile(`(?i)blazers?|suit\s*jacket`), "Blazer"},
	{regexp.MustCompile(`(?i)raincoat|windbreaker`), "Rain jacket"},
	{regexp.MustCompile(`(?i)jackets?|coats?`), "Jacket"},

	// Tops
	{regexp.MustCompile(`(?i)hoodies?|zip[- ]?ups?`), "Hoodie"},
	{regexp.MustCompile(`(?i)sweaters?|sweatshirts?`), "Sweatshirt"},
	{regexp.MustCompile(`(?i)t[- ]?shirt|tshirt|tee\b`), "T-shirt"},
	{regexp.MustCompile(`(?i)tank\s*tops?|camisoles?`), "Tanktop"},
	{regexp.MustCompile(`(?i)\bpolos?\b`), "Polo"},
	{regexp.MustCompile(`(?i)shirts?\b`), "Shirt"},
	{regexp.MustCompile(`(?i)vests?\b`), "Vest"},

	// Bottoms
	{regexp.MustCompile(`(?i)\bjeans?\b`), "Jeans"},
	{regexp.MustCompile(`(?i)\bjorts?\b`), "Jorts"},
	{regexp.MustCompile(`(?i)\bshorts?\b`), "Shorts"},
	{regexp.MustCompile(`(?i)trousers?|pants?`), "Trousers"},
	{regexp.MustCompile(`(?i)joggers?|sweatpants?`), "Joggers"},

	// Headwear
	{regexp.MustCompile(`(?i)caps?\b|baseball\s*caps?`), "Cap"},
	{regexp.MustCompile(`(?i)beanies?|knit\s*hats?`), "Beanie"},

	// Accessories
	{regexp.MustCompile(`(?i)\bbelts?\b`), "Belt"},
	{regexp.MustCompile(`(?i)scarves?|scarf`), "Scarf"},
	{regexp.MustCompile(`(?i)\bsunglasses?\b`), "Sunglasses"},
	{regexp.MustCompile(`(?i)bags?|backpacks?`), "Bag"},
	{regexp.MustCompile(`(?i)wallets?|pouches?`), "Wallet"},

	// Jewelry
	{regexp.MustCompile(`(?i)\brings?\b`), "Ring"},
	{regexp.MustCompile(`(?i)necklaces?`), "Necklace"},
	{regexp.MustCompile(`(?i)earrings?`), "Earrings"},
	{regexp.MustCompile(`(?i)\bwatches?\b`), "Watch"},
}

// categoryTypes is the per-category fallback when the subcategory gives no
// usable product type.
var categoryTypes = map[domain.Category]string{
	domain.CategoryShoes:           "Sneaker",
	domain.CategoryTops:            "Top",
	domain.CategoryBottoms:         "Bottom",
	domain.CategoryCoatsAndJackets: "Jacket",
	domain.CategoryFullBody:        "Full-body",
	domain.CategoryHeadwear:        "Headwear",
	domain.CategoryAccessories:     "Accessory",
	domain.CategoryJewelry:         "Jewelry",
	domain.CategoryOther:           "Product",
}

// ProductType infers a generic product type label from the subcategory,
// falling back to the category mapping.
func ProductType(p domain.Product) string {
	if sub := strings.TrimSpace(p.Subcategory); sub != "" {
		for _, entry := range subcategoryTypes {
			if entry.pattern.MatchString(sub) {
				return entry.label
			}
		}
	}
	if t, ok := categoryTypes[p.Category]; ok {
		return t
	}
	return "Product"
}

// DisplayTitle builds the legally safe listing title shown instead of the raw
// feed name. The phrasing is fixed even when no brand term is detected.
func DisplayTitle(p domain.Product) string {
	return ProductType(p) + " – inspired by " + p.Name
}
