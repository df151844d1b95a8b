package feed

import (
	"strconv"
	"strings"

	"github.com/Waschdachs-Git/RepFinder/internal/domain"
)

// Schema describes how a feed lays out agent data.
type Schema int

const (
	// SchemaLong has one agent per row with single agent/price/affiliate columns.
	SchemaLong Schema = iota
	// SchemaWide has per-agent price/affiliate columns, several agents per row.
	SchemaWide
)

func (s Schema) String() string {
	if s == SchemaWide {
		return "wide"
	}
	return "long"
}

// DetectSchema inspects a header row and reports whether the feed uses the
// wide (per-agent columns) or long (one agent per row) layout. Wide wins as
// soon as any column pairs a known agent name with a price or an
// affiliate/url/link term.
func DetectSchema(header []string) Schema {
	for _, h := range header {
		n := normalizeHeaderCell(h)
		for _, agent := range domain.Agents {
			a := string(agent)
			if !strings.Contains(n, a) {
				continue
			}
			if strings.Contains(n, "price") {
				return SchemaWide
			}
			if strings.Contains(n, "affiliate") || strings.Contains(n, "url") || strings.Contains(n, "link") {
				return SchemaWide
			}
		}
	}
	return SchemaLong
}

// agentColumns holds the per-agent wide-schema column indexes.
type agentColumns struct {
	Price     map[domain.Agent]int
	Affiliate map[domain.Agent]int
}

// resolveAgentColumns locates the per-agent price and affiliate columns.
// Exact "price<agent>"/"<agent>price" matches take precedence over loose
// containment so a column like "old price cnfans backup" cannot shadow the
// real one.
func resolveAgentColumns(header []string) agentColumns {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeaderCell(h)
	}
	cols := agentColumns{
		Price:     make(map[domain.Agent]int, len(domain.Agents)),
		Affiliate: make(map[domain.Agent]int, len(domain.Agents)),
	}
	for _, agent := range domain.Agents {
		a := string(agent)
		cols.Price[agent] = columnAbsent
		cols.Affiliate[agent] = columnAbsent
		for i, h := range normalized {
			if h == "price"+a || h == a+"price" {
				cols.Price[agent] = i
				break
			}
			if cols.Price[agent] == columnAbsent && strings.Contains(h, "price") && strings.Contains(h, a) {
				cols.Price[agent] = i
			}
		}
		for i, h := range normalized {
			if strings.Contains(h, a) &&
				(strings.Contains(h, "affiliate") || strings.Contains(h, "url") || strings.Contains(h, "link")) {
				cols.Affiliate[agent] = i
				break
			}
		}
	}
	return cols
}

// ParseAgentList splits an agents cell on whitespace, comma, semicolon or
// pipe, deduplicates, and keeps only known agents in canonical order.
func ParseAgentList(raw string) []domain.Agent {
	parts := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ',' || r == ';' || r == '|'
	})
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		seen[strings.TrimSpace(p)] = true
	}
	var out []domain.Agent
	for _, agent := range domain.Agents {
		if seen[string(agent)] {
			out = append(out, agent)
		}
	}
	return out
}

// MapperOptions tune row-to-product mapping.
type MapperOptions struct {
	// RequireAffiliate drops wide-schema agent variants without an affiliate URL.
	RequireAffiliate bool
}

// MapRows converts parsed feed rows (header first) into normalized products.
// Wide-schema rows expand into one product per applicable agent; rows without
// a name or, in the wide schema, without any applicable agent are dropped.
func MapRows(rows [][]string, opts MapperOptions) []domain.Product {
	if len(rows) < 2 {
		return nil
	}
	header := rows[0]
	cols := resolveColumns(header)
	schema := DetectSchema(header)

	var agentCols agentColumns
	if schema == SchemaWide {
		agentCols = resolveAgentColumns(header)
	}

	var out []domain.Product
	for _, row := range rows[1:] {
		name := cell(row, cols.Name)
		if name == "" {
			continue
		}
		shared := domain.Product{
			Name:        name,
			Category:    MapCategory(cell(row, cols.Category)),
			Subcategory: cell(row, cols.Subcategory),
			Image:       cell(row, cols.Image),
			ImageAlt:    domain.StringList(splitMultiValue(cell(row, cols.Image2))),
			Description: cell(row, cols.Description),
		}
		if shared.Subcategory == "" {
			shared.Subcategory = domain.DefaultSubcategory
		}
		if clicks, err := strconv.Atoi(cell(row, cols.Clicks)); err == nil && clicks > 0 {
			shared.Clicks = clicks
		}

		if schema == SchemaWide {
			out = append(out, expandWideRow(row, cols, agentCols, shared, opts)...)
			continue
		}

		p := shared
		p.Agent = MapAgent(cell(row, cols.Agent))
		p.Price, p.Currency = parsePrice(cell(row, cols.Price))
		p.AffiliateURL = cell(row, cols.Affiliate)
		p.ID = cell(row, cols.ID)
		if p.ID == "" {
			p.ID = SynthesizeID(p.Agent, p.Name, p.AffiliateURL)
		}
		out = append(out, p)
	}
	return out
}

// expandWideRow emits one product per applicable agent. The agent set comes
// from the agents cell; when that is empty it is inferred from which per-agent
// price or affiliate cells are non-empty. Inference treats any non-empty cell
// as participation, including a literal "0" price; feeds that want an agent
// excluded must leave its cells blank.
func expandWideRow(row []string, cols columns, agentCols agentColumns, shared domain.Product, opts MapperOptions) []domain.Product {
	agents := ParseAgentList(cell(row, cols.Agent))
	if len(agents) == 0 {
		for _, agent := range domain.Agents {
			if cell(row, agentCols.Price[agent]) != "" || cell(row, agentCols.Affiliate[agent]) != "" {
				agents = append(agents, agent)
			}
		}
	}
	if len(agents) == 0 {
		return nil
	}

	var out []domain.Product
	for _, agent := range agents {
		p := shared
		p.Agent = agent
		p.Price, p.Currency = parsePrice(cell(row, agentCols.Price[agent]))
		p.AffiliateURL = cell(row, agentCols.Affiliate[agent])
		if opts.RequireAffiliate && p.AffiliateURL == "" {
			continue
		}
		p.ID = cell(row, cols.ID)
		if p.ID == "" {
			p.ID = SynthesizeID(agent, p.Name, p.AffiliateURL)
		}
		out = append(out, p)
	}
	return out
}
