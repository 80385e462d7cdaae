package shopping

import (
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"AtelierAI/app/common/snowflake"
	"AtelierAI/app/services/stylist/plan"

	"github.com/zeromicro/go-zero/core/logx"
)

const searchResultCount = 6

// Retail domains the image search is restricted to.
var storeDomains = []string{
	"prada.com",
	"gucci.com",
	"louisvuitton.com",
	"nordstrom.com",
	"macys.com",
	"asos.com",
	"zara.com",
	"hm.com",
	"target.com",
	"uniqlo.com",
	"forever21.com",
	"fashionnova.com",
	"shein.com",
}

// Display names for known store domains. Unknown domains fall back to the
// uppercased bare domain.
var storeNames = map[string]string{
	"prada":        "PRADA",
	"gucci":        "GUCCI",
	"louisvuitton": "LOUIS VUITTON",
	"nordstrom":    "Nordstrom",
	"macys":        "Macy's",
	"asos":         "ASOS",
	"zara":         "ZARA",
	"hm":           "H&M",
	"target":       "Target",
	"uniqlo":       "UNIQLO",
	"forever21":    "Forever 21",
	"fashionnova":  "Fashion Nova",
	"shein":        "SHEIN",
}

var (
	displayDomain  = regexp.MustCompile(`(?:www\.)?([\w-]+)\.com`)
	titleDelimiter = regexp.MustCompile(`[|\-]`)
)

// CategoryResolver turns one garment description into shoppable products.
// Implementations must absorb provider failures and return an empty slice
// instead of an error; one bad category must never abort an outfit.
type CategoryResolver interface {
	ResolveCategory(ctx context.Context, category, description, gender string) []plan.Product
}

type productResolver struct {
	searcher ImageSearcher
}

// NewProductResolver builds the resolver on top of an image searcher.
func NewProductResolver(searcher ImageSearcher) CategoryResolver {
	return &productResolver{searcher: searcher}
}

// ResolveCategory normalizes the description for the gender preference,
// queries the image search provider restricted to the retail allow-list,
// and maps the raw results into products. Provider errors, malformed
// responses, and zero results all yield an empty slice.
func (r *productResolver) ResolveCategory(ctx context.Context, category, description, gender string) []plan.Product {
	log := logx.WithContext(ctx)

	query := buildQuery(category, description, gender)
	items, err := r.searcher.Search(ctx, query, searchResultCount)
	if err != nil {
		log.Errorf("image search for %s failed: %v", category, err)
		return nil
	}

	products := make([]plan.Product, 0, len(items))
	for _, item := range items {
		p := toProduct(item, category, description)
		if p.Link == "" || p.Image == "" {
			continue
		}
		products = append(products, p)
	}
	return products
}

func buildQuery(category, description, gender string) string {
	sites := make([]string, 0, len(storeDomains))
	for _, d := range storeDomains {
		sites = append(sites, "site:"+d)
	}
	restriction := "(" + strings.Join(sites, " OR ") + ")"

	terms := []string{Normalize(description, category, gender), "clothing"}
	if gender != plan.GenderAny {
		terms = append(terms, gender)
	}
	return strings.Join(terms, " ") + " " + restriction
}

func toProduct(item SearchItem, category, description string) plan.Product {
	store := ""
	if m := displayDomain.FindStringSubmatch(item.DisplayLink); m != nil {
		domain := strings.ToLower(m[1])
		if name, ok := storeNames[domain]; ok {
			store = name
		} else {
			store = strings.ToUpper(domain)
		}
	}

	title := strings.TrimSpace(titleDelimiter.Split(item.Title, 2)[0])

	link := item.Image.ContextLink
	if link == "" {
		link = item.Link
	}

	desc := item.Snippet
	if desc == "" {
		desc = description
	}

	return plan.Product{
		Id:          snowflake.NextString(),
		Title:       title,
		Link:        link,
		Image:       item.Link,
		Price:       syntheticPrice(),
		Store:       store,
		Category:    category,
		Description: desc,
	}
}

// The search provider returns no authoritative price; a display placeholder
// in a fixed range stands in for it.
func syntheticPrice() string {
	return fmt.Sprintf("$%d.00", 30+rand.IntN(150))
}
