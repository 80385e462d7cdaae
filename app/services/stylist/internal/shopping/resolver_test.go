package shopping

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"AtelierAI/app/services/stylist/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	query string
	num   int
	items []SearchItem
	err   error
}

func (f *fakeSearcher) Search(_ context.Context, query string, num int) ([]SearchItem, error) {
	f.query = query
	f.num = num
	return f.items, f.err
}

func item(title, imageLink, contextLink, displayLink, snippet string) SearchItem {
	it := SearchItem{
		Title:       title,
		Link:        imageLink,
		Snippet:     snippet,
		DisplayLink: displayLink,
	}
	it.Image.ContextLink = contextLink
	return it
}

func TestResolveCategoryMapsResults(t *testing.T) {
	searcher := &fakeSearcher{items: []SearchItem{
		item("Linen Shirt | ZARA United States", "https://img.zara.com/1.jpg", "https://www.zara.com/shirt", "www.zara.com", "A breezy linen shirt."),
		item("Oxford Shirt - Shop Online", "https://img.hm.com/2.jpg", "https://hm.com/oxford", "hm.com", ""),
	}}
	resolver := NewProductResolver(searcher)

	products := resolver.ResolveCategory(context.Background(), plan.SlotTop, "linen shirt", plan.GenderMale)
	require.Len(t, products, 2)

	first := products[0]
	assert.NotEmpty(t, first.Id)
	assert.Equal(t, "Linen Shirt", first.Title)
	assert.Equal(t, "https://www.zara.com/shirt", first.Link)
	assert.Equal(t, "https://img.zara.com/1.jpg", first.Image)
	assert.Equal(t, "ZARA", first.Store)
	assert.Equal(t, plan.SlotTop, first.Category)
	assert.Equal(t, "A breezy linen shirt.", first.Description)
	assert.Regexp(t, `^\$\d+\.00$`, first.Price)

	second := products[1]
	assert.Equal(t, "Oxford Shirt", second.Title)
	assert.Equal(t, "H&M", second.Store)
	// Empty snippets fall back to the garment description.
	assert.Equal(t, "linen shirt", second.Description)
	// Ids are unique per product.
	assert.NotEqual(t, first.Id, second.Id)
}

func TestResolveCategoryFiltersIncompleteItems(t *testing.T) {
	searcher := &fakeSearcher{items: []SearchItem{
		item("No image", "", "https://zara.com/a", "zara.com", ""),
		item("Keeper", "https://img.zara.com/b.jpg", "https://zara.com/b", "zara.com", ""),
		{Title: "No links at all"},
	}}
	resolver := NewProductResolver(searcher)

	products := resolver.ResolveCategory(context.Background(), plan.SlotShoes, "boots", plan.GenderAny)
	require.Len(t, products, 1)
	assert.Equal(t, "Keeper", products[0].Title)
}

func TestResolveCategoryAbsorbsSearchErrors(t *testing.T) {
	resolver := NewProductResolver(&fakeSearcher{err: fmt.Errorf("quota exceeded")})

	products := resolver.ResolveCategory(context.Background(), plan.SlotTop, "shirt", plan.GenderAny)
	assert.Empty(t, products)
}

func TestResolveCategoryQueryShape(t *testing.T) {
	searcher := &fakeSearcher{}
	resolver := NewProductResolver(searcher)

	resolver.ResolveCategory(context.Background(), plan.SlotTop, "flowy blouse", plan.GenderMale)

	assert.Equal(t, searchResultCount, searcher.num)
	assert.True(t, strings.HasPrefix(searcher.query, "men's flowy shirt top clothing male ("), searcher.query)
	for _, domain := range storeDomains {
		assert.Contains(t, searcher.query, "site:"+domain)
	}

	// Unset preference drops the gender term entirely.
	resolver.ResolveCategory(context.Background(), plan.SlotTop, "flowy blouse", plan.GenderAny)
	assert.True(t, strings.HasPrefix(searcher.query, "flowy blouse top clothing ("), searcher.query)
}

func TestToProductLinkFallback(t *testing.T) {
	// Without a context link the image url doubles as the product link.
	it := item("Plain Tee", "https://img.target.com/tee.jpg", "", "www.target.com", "")
	p := toProduct(it, plan.SlotTop, "tee")
	assert.Equal(t, "https://img.target.com/tee.jpg", p.Link)
	assert.Equal(t, "Target", p.Store)
}

func TestToProductUnknownStoreUppercased(t *testing.T) {
	it := item("Denim Jacket", "https://img.example-store.com/j.jpg", "https://example-store.com/j", "www.example-store.com", "")
	p := toProduct(it, plan.SlotOuter, "jacket")
	assert.Equal(t, "EXAMPLE-STORE", p.Store)
}

func TestToProductTitleSplit(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Wool Coat | Nordstrom", "Wool Coat"},
		{"Wool Coat - Winter Sale - Nordstrom", "Wool Coat"},
		{"Wool Coat", "Wool Coat"},
	}
	for _, tc := range cases {
		p := toProduct(item(tc.raw, "https://img.nordstrom.com/c.jpg", "https://nordstrom.com/c", "nordstrom.com", ""), plan.SlotOuter, "coat")
		assert.Equal(t, tc.want, p.Title)
	}
}
