// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatRequest struct {
	Query string `json:"query"`
}

type ChatResponse struct {
	Status_code int        `json:"status_code"`
	Status_msg  string     `json:"status_msg"`
	Plan        TravelPlan `json:"plan"`
}

type GetPlanResponse struct {
	Status_code int         `json:"status_code"`
	Status_msg  string      `json:"status_msg"`
	Plan        *TravelPlan `json:"plan,omitempty"`
}

type GetPreferenceResponse struct {
	Status_code int    `json:"status_code"`
	Status_msg  string `json:"status_msg"`
	Gender      string `json:"gender"`
}

type SetPreferenceRequest struct {
	Gender string `json:"gender"`
}

type SetPreferenceResponse struct {
	Status_code int    `json:"status_code"`
	Status_msg  string `json:"status_msg"`
}

type TravelPlan struct {
	Id          string   `json:"id"`
	Type        string   `json:"type"`
	Destination string   `json:"destination,omitempty"`
	Date        string   `json:"date,omitempty"`
	Weather     *Weather `json:"weather,omitempty"`
	Event       string   `json:"event,omitempty"`
	Outfits     []Outfit `json:"outfits,omitempty"`
	Status      string   `json:"status"`
	Warning     string   `json:"warning,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type Weather struct {
	Destination       string `json:"destination"`
	Date              string `json:"date"`
	Conditions        string `json:"conditions"`
	Temperature_range string `json:"temperature_range"`
	Warning           string `json:"warning,omitempty"`
}

type Outfit struct {
	Name        string            `json:"name,omitempty"`
	Description OutfitDescription `json:"description"`
	Products    []Product         `json:"products"`
}

type OutfitDescription struct {
	Top         string   `json:"top,omitempty"`
	Outer       string   `json:"outer,omitempty"`
	Bottom      string   `json:"bottom,omitempty"`
	Shoes       string   `json:"shoes,omitempty"`
	Accessories []string `json:"accessories,omitempty"`
}

type Product struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Store       string `json:"store"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
