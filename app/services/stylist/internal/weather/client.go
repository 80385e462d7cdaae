package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"AtelierAI/app/services/stylist/plan"

	"github.com/go-resty/resty/v2"
)

// Conf configures the forecast provider.
type Conf struct {
	Endpoint string
	ApiKey   string `json:",optional"`
	Timeout  int64  `json:",default=5000"` // milliseconds
}

// Resolver fetches a destination forecast. May fail on unknown destinations
// or unparseable dates; failures are terminal for the travel branch.
type Resolver interface {
	Forecast(ctx context.Context, destination, date string) (*plan.WeatherContext, error)
}

type forecastAlert struct {
	Headline string `json:"headline"`
}

type forecastResponse struct {
	Date       string          `json:"date"`
	Conditions string          `json:"conditions"`
	TempMinC   float64         `json:"temp_min_c"`
	TempMaxC   float64         `json:"temp_max_c"`
	Alerts     []forecastAlert `json:"alerts"`
}

type client struct {
	conf   Conf
	client *resty.Client
}

func NewResolver(c Conf) Resolver {
	timeout := time.Duration(c.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &client{
		conf: c,
		client: resty.New().
			SetBaseURL(c.Endpoint).
			SetTimeout(timeout),
	}
}

func (c *client) Forecast(ctx context.Context, destination, date string) (*plan.WeatherContext, error) {
	if strings.TrimSpace(destination) == "" {
		return nil, fmt.Errorf("empty destination")
	}

	var out forecastResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":    destination,
			"date": date,
			"key":  c.conf.ApiKey,
		}).
		SetResult(&out).
		Get("/forecast")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("forecast status %d for %q", resp.StatusCode(), destination)
	}
	if out.Conditions == "" {
		return nil, fmt.Errorf("no forecast for %q", destination)
	}

	forecastDate := out.Date
	if forecastDate == "" {
		forecastDate = date
	}

	wc := &plan.WeatherContext{
		Destination:      destination,
		Date:             forecastDate,
		Conditions:       out.Conditions,
		TemperatureRange: fmt.Sprintf("%.0f°C to %.0f°C", out.TempMinC, out.TempMaxC),
	}
	if len(out.Alerts) > 0 {
		wc.Warning = out.Alerts[0].Headline
	}
	return wc, nil
}
