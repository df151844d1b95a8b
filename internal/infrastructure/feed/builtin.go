package feed

import "github.com/Waschdachs-Git/RepFinder/internal/domain"

// builtinProducts is the last-resort sample catalog. It guarantees the
// service never serves an empty storefront, even with every feed source
// misconfigured or unreachable.
var builtinProducts = []domain.Product{
	{
		ID:           "nike-air-force-1-low-white",
		Name:         "Nike Air Force 1 Low White",
		Price:        89.99,
		Category:     domain.CategoryShoes,
		Subcategory:  "Sneakers",
		Agent:        domain.AgentCnfans,
		Image:        "https://images.unsplash.com/photo-1542293787938-c9e299b88054?q=80&w=1200&auto=format&fit=crop",
		Description:  "The classic Nike Air Force 1 in crisp white. A timeless sneaker with premium leather and legendary comfort.",
		AffiliateURL: "https://example.com/affiliate/nike-air-force-1",
		Clicks:       156,
	},
	{
		ID:           "adidas-ultraboost-22",
		Name:         "Adidas Ultraboost 22",
		Price:        149.99,
		Category:     domain.CategoryShoes,
		Subcategory:  "Sneakers",
		Agent:        domain.AgentItaobuy,
		Image:        "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?q=80&w=1200&auto=format&fit=crop",
		Description:  "Maximum comfort for long runs. Responsive cushioning and a breathable upper.",
		AffiliateURL: "https://example.com/affiliate/adidas-ultraboost-22",
		Clicks:       120,
	},
	{
		ID:           "puffer-jacket-black",
		Name:         "Puffer Jacket Black",
		Price:        129.99,
		Category:     domain.CategoryCoatsAndJackets,
		Subcategory:  "Puffer Jacket",
		Agent:        domain.AgentSuperbuy,
		Image:        "https://images.unsplash.com/photo-1548883354-92b2d566b223?q=80&w=1200&auto=format&fit=crop",
		Description:  "Warm, lightweight puffer jacket in classic black with a water-repellent finish.",
		AffiliateURL: "https://example.com/affiliate/puffer-jacket-black",
		Clicks:       180,
	},
	{
		ID:           "minimalist-backpack",
		Name:         "Minimalist Backpack",
		Price:        69.99,
		Category:     domain.CategoryAccessories,
		Subcategory:  "Bags",
		Agent:        domain.AgentCnfans,
		Image:        "https://images.unsplash.com/photo-1548337138-e87d889cc369?q=80&w=1200&auto=format&fit=crop",
		Description:  "Minimalist backpack with generous storage — perfect for work or travel.",
		AffiliateURL: "https://example.com/affiliate/minimalist-backpack",
		Clicks:       85,
	},
	{
		ID:           "wireless-earbuds-pro",
		Name:         "Wireless Earbuds Pro",
		Price:        99.99,
		Category:     domain.CategoryOther,
		Subcategory:  "General",
		Agent:        domain.AgentItaobuy,
		Image:        "https://images.unsplash.com/photo-1585386959984-a41552231658?q=80&w=1200&auto=format&fit=crop",
		Description:  "Wireless in-ear headphones with active noise cancellation and long battery life.",
		AffiliateURL: "https://example.com/affiliate/wireless-earbuds-pro",
		Clicks:       93,
	},
	{
		ID:           "leather-belt",
		Name:         "Classic Leather Belt",
		Price:        39.99,
		Category:     domain.CategoryAccessories,
		Subcategory:  "Belts",
		Agent:        domain.AgentMulebuy,
		Image:        "https://images.unsplash.com/photo-1511499767150-a48a237f0083?q=80&w=1200&auto=format&fit=crop",
		Description:  "Genuine leather belt with a classic buckle — durable and stylish.",
		AffiliateURL: "https://example.com/affiliate/classic-leather-belt",
		Clicks:       40,
	},
}

// BuiltinProducts returns a copy of the builtin sample catalog.
func BuiltinProducts() []domain.Product {
	out := make([]domain.Product, len(builtinProducts))
	copy(out, builtinProducts)
	return out
}
