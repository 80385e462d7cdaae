package helper

import (
	"AtelierAI/app/api/stylist/internal/types"
	"AtelierAI/app/services/stylist/plan"
)

// ToTravelPlan maps a settled plan onto the wire shape the gateway returns.
func ToTravelPlan(p *plan.TravelPlan) types.TravelPlan {
	if p == nil {
		return types.TravelPlan{}
	}
	out := types.TravelPlan{
		Id:          p.Id,
		Type:        p.Type,
		Destination: p.Destination,
		Date:        p.Date,
		Event:       p.Event,
		Status:      p.Status,
		Warning:     p.Warning,
		Error:       p.Error,
	}
	if p.Weather != nil {
		out.Weather = &types.Weather{
			Destination:       p.Weather.Destination,
			Date:              p.Weather.Date,
			Conditions:        p.Weather.Conditions,
			Temperature_range: p.Weather.TemperatureRange,
			Warning:           p.Weather.Warning,
		}
	}
	for _, o := range p.Outfits {
		out.Outfits = append(out.Outfits, toOutfit(o))
	}
	return out
}

func toOutfit(o plan.Outfit) types.Outfit {
	converted := types.Outfit{
		Name: o.Name,
		Description: types.OutfitDescription{
			Top:         o.Description.Top,
			Outer:       o.Description.Outer,
			Bottom:      o.Description.Bottom,
			Shoes:       o.Description.Shoes,
			Accessories: o.Description.Accessories,
		},
	}
	for _, p := range o.Products {
		converted.Products = append(converted.Products, types.Product{
			Id:          p.Id,
			Title:       p.Title,
			Link:        p.Link,
			Image:       p.Image,
			Price:       p.Price,
			Store:       p.Store,
			Category:    p.Category,
			Description: p.Description,
		})
	}
	return converted
}
