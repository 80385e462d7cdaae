package shopping

import (
	"context"

	"AtelierAI/app/services/stylist/plan"

	"github.com/zeromicro/go-zero/core/mr"
)

// OutfitResolver resolves every garment slot of an outfit description into
// products.
type OutfitResolver struct {
	products CategoryResolver
}

func NewOutfitResolver(products CategoryResolver) *OutfitResolver {
	return &OutfitResolver{products: products}
}

type slotTask struct {
	index       int
	category    string
	description string
	firstOnly   bool
}

// ResolveOutfit fans the product resolver out across the outfit's slots.
// Singular slots (top, outer, bottom, shoes) resolve once each; every
// accessory item resolves separately but keeps only its first product. All
// resolutions run concurrently; products are reassembled in slot
// declaration order regardless of completion order. Absent slots contribute
// nothing.
func (r *OutfitResolver) ResolveOutfit(ctx context.Context, desc plan.OutfitDescription, gender string) plan.Outfit {
	tasks := make([]slotTask, 0, 4+len(desc.Accessories))
	singular := []struct {
		category    string
		description string
	}{
		{plan.SlotTop, desc.Top},
		{plan.SlotOuter, desc.Outer},
		{plan.SlotBottom, desc.Bottom},
		{plan.SlotShoes, desc.Shoes},
	}
	for _, s := range singular {
		if s.description == "" {
			continue
		}
		tasks = append(tasks, slotTask{
			index:       len(tasks),
			category:    s.category,
			description: s.description,
		})
	}
	for _, accessory := range desc.Accessories {
		if accessory == "" {
			continue
		}
		tasks = append(tasks, slotTask{
			index:       len(tasks),
			category:    plan.SlotAccessories,
			description: accessory,
			firstOnly:   true,
		})
	}

	// Results are keyed by task index, not completion order.
	results := make([][]plan.Product, len(tasks))
	mr.ForEach(func(source chan<- slotTask) {
		for _, t := range tasks {
			source <- t
		}
	}, func(t slotTask) {
		found := r.products.ResolveCategory(ctx, t.category, t.description, gender)
		if t.firstOnly && len(found) > 1 {
			found = found[:1]
		}
		results[t.index] = found
	})

	products := make([]plan.Product, 0, len(tasks))
	for _, found := range results {
		products = append(products, found...)
	}

	return plan.Outfit{
		Description: desc,
		Products:    products,
	}
}
