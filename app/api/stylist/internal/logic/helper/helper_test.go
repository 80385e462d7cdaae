package helper

import (
	"testing"

	"AtelierAI/app/services/stylist/plan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTravelPlan(t *testing.T) {
	src := &plan.TravelPlan{
		Id:          "plan-1",
		Type:        plan.IntentTravel,
		Destination: "Tokyo",
		Date:        "2026-09-07",
		Weather: &plan.WeatherContext{
			Destination:      "Tokyo",
			Date:             "2026-09-07",
			Conditions:       "light rain",
			TemperatureRange: "18°C to 23°C",
			Warning:          "Typhoon approaching Kanto",
		},
		Outfits: []plan.Outfit{{
			Name: "Rainy Day Layers",
			Description: plan.OutfitDescription{
				Top:         "striped cotton shirt",
				Accessories: []string{"compact umbrella"},
			},
			Products: []plan.Product{{
				Id:    "p-1",
				Title: "Striped Shirt",
				Link:  "https://zara.com/1",
				Image: "https://img.zara.com/1.jpg",
				Price: "$49.00",
				Store: "ZARA",
			}},
		}},
		Status:  plan.StatusWarning,
		Warning: "Typhoon approaching Kanto",
	}

	out := ToTravelPlan(src)
	assert.Equal(t, "plan-1", out.Id)
	assert.Equal(t, plan.IntentTravel, out.Type)
	require.NotNil(t, out.Weather)
	assert.Equal(t, "18°C to 23°C", out.Weather.Temperature_range)
	require.Len(t, out.Outfits, 1)
	assert.Equal(t, "Rainy Day Layers", out.Outfits[0].Name)
	assert.Equal(t, []string{"compact umbrella"}, out.Outfits[0].Description.Accessories)
	require.Len(t, out.Outfits[0].Products, 1)
	assert.Equal(t, "ZARA", out.Outfits[0].Products[0].Store)
	assert.Equal(t, plan.StatusWarning, out.Status)
}

func TestToTravelPlanNil(t *testing.T) {
	out := ToTravelPlan(nil)
	assert.Empty(t, out.Id)
	assert.Nil(t, out.Weather)
	assert.Empty(t, out.Outfits)
}

func TestToTravelPlanErrorShape(t *testing.T) {
	out := ToTravelPlan(&plan.TravelPlan{
		Id:     "plan-2",
		Type:   plan.TypeError,
		Status: plan.StatusError,
		Error:  "Sorry, I couldn't understand that request. Please try rephrasing it.",
	})
	assert.Equal(t, plan.TypeError, out.Type)
	assert.Equal(t, plan.StatusError, out.Status)
	assert.NotEmpty(t, out.Error)
	assert.Nil(t, out.Weather)
}
