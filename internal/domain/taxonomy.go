package domain

// Shop is static display metadata for a purchasing agent. Immutable for the
// process lifetime; not derived from the feed.
type Shop struct {
	Key       Agent  `json:"key"`
	Name      string `json:"name"`
	AccentHSL string `json:"accentHsl"`
}

// Shops maps each agent to its display metadata.
var Shops = map[Agent]Shop{
	AgentItaobuy:     {Key: AgentItaobuy, Name: "iTaobuy", AccentHSL: "19 100% 60%"},
	AgentCnfans:      {Key: AgentCnfans, Name: "CNFans", AccentHSL: "355 79% 41%"},
	AgentSuperbuy:    {Key: AgentSuperbuy, Name: "Superbuy", AccentHSL: "220 72% 55%"},
	AgentMulebuy:     {Key: AgentMulebuy, Name: "MuleBuy", AccentHSL: "268 62% 52%"},
	AgentAllchinabuy: {Key: AgentAllchinabuy, Name: "AllChinaBuy", AccentHSL: "188 70% 45%"},
}

// CategoryInfo pairs a category slug with its UI labeling.
type CategoryInfo struct {
	Slug     Category `json:"slug"`
	Label    string   `json:"label"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
}

// CategoryInfos lists labeling for all categories in display order.
var CategoryInfos = []CategoryInfo{
	{Slug: CategoryShoes, Label: "Footwear", Title: "Footwear", Subtitle: "From sneakers to dress shoes — find the perfect pair for any occasion."},
	{Slug: CategoryTops, Label: "Tops", Title: "Tops", Subtitle: "T-shirts, shirts and more — comfy and stylish."},
	{Slug: CategoryBottoms, Label: "Bottoms", Title: "Bottoms", Subtitle: "Trousers, jeans, and shorts — match any outfit."},
	{Slug: CategoryCoatsAndJackets, Label: "Outerwear", Title: "Outerwear", Subtitle: "Stay warm and stylish — jackets for every season."},
	{Slug: CategoryFullBody, Label: "Full-Body-Clothing", Title: "Full-Body-Clothing", Subtitle: "Complete fits: tracksuits and suits."},
	{Slug: CategoryHeadwear, Label: "Headwear", Title: "Headwear", Subtitle: "Caps, beanies and more to top off your style."},
	{Slug: CategoryAccessories, Label: "Accessories", Title: "Accessories", Subtitle: "Bags, wallets, sunglasses and more."},
	{Slug: CategoryJewelry, Label: "Jewelry", Title: "Jewelry", Subtitle: "Rings, necklaces, watches and more."},
	{Slug: CategoryOther, Label: "Other Stuff", Title: "Other Stuff", Subtitle: "Everything else that sparks joy."},
}

// Subcategories lists the known subcategory labels per category. The feed may
// carry arbitrary subcategory text; this table only drives UI grouping.
var Subcategories = map[Category][]string{
	CategoryShoes:           {"Sneakers", "Boots", "Loafers & dress shoes", "Sandals & slides", "Heels", "Espadrilles", "Slippers & house shoes"},
	CategoryTops:            {"T-shirts", "Tank tops & camisoles", "Shirts", "Polo shirts", "Sweaters & sweatshirts", "Hoodies & zip-ups", "Vests"},
	CategoryBottoms:         {"Jeans", "Jorts", "Shorts", "Trousers", "Joggers & sweatpants"},
	CategoryCoatsAndJackets: {"Jackets", "Coats", "Puffer Jacket", "Blazers & suit jackets", "Leather jackets", "Raincoats & windbreakers"},
	CategoryFullBody:        {"tracksuit", "Suits"},
	CategoryHeadwear:        {"Caps", "Beanies & knit hats"},
	CategoryAccessories:     {"Belts", "Scarves", "Sunglasses", "Bags", "Wallets & pouches"},
	CategoryJewelry:         {"Rings", "Necklaces", "Earrings", "Watches", "Body jewelry"},
	CategoryOther:           {"Underwear", "Socks", "Sportswear", "Gym wear", "Jerseys", "Workwear", "Winter gear", "Summer wear", "Haul Fillers"},
}
