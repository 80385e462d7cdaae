package outfit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"AtelierAI/app/services/stylist/plan"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Context carries exactly one of the two generation inputs plus the gender
// preference snapshot.
type Context struct {
	Weather *plan.WeatherContext
	Event   string
	Gender  string
}

// Generated is one candidate outfit before product resolution.
type Generated struct {
	Name        string                 `json:"name,omitempty"`
	Description plan.OutfitDescription `json:"description"`
}

// Generator produces a small ordered list of candidate outfit descriptions.
type Generator struct {
	log      logx.Logger
	runnable compose.Runnable[Context, []Generated]
}

func NewGenerator(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*Generator, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	chain := compose.NewChain[Context, []Generated]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, in Context) ([]*schema.Message, error) {
		systemPrompt := `You are a personal stylist. Suggest 2 to 3 complete outfits for the situation described and output a JSON array only, no prose, no markdown fences. Each element:
{
  "name": "short outfit name",
  "description": {
    "top": "description of the top garment",
    "outer": "outer layer, omit when not needed",
    "bottom": "description of the bottom garment",
    "shoes": "description of the shoes",
    "accessories": ["one entry per accessory"]
  }
}
Descriptions are search phrases for real products: concrete fabric, color and style words, no brand names. Respect the stated gender preference. Omit slots that do not apply. Return valid JSON with no extra characters.`

		var user strings.Builder
		switch {
		case in.Weather != nil:
			user.WriteString("Trip to ")
			user.WriteString(in.Weather.Destination)
			user.WriteString(" on ")
			user.WriteString(in.Weather.Date)
			user.WriteString(". Forecast: ")
			user.WriteString(in.Weather.Conditions)
			user.WriteString(", ")
			user.WriteString(in.Weather.TemperatureRange)
			user.WriteString(".")
			if in.Weather.Warning != "" {
				user.WriteString(" Advisory: ")
				user.WriteString(in.Weather.Warning)
				user.WriteString(".")
			}
		default:
			user.WriteString("Occasion: ")
			user.WriteString(in.Event)
			user.WriteString(".")
		}
		user.WriteString(" Gender preference: ")
		user.WriteString(in.Gender)
		user.WriteString(".")

		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(user.String()),
		}, nil
	}))

	chain.AppendChatModel(chatModel)

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) ([]Generated, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return nil, fmt.Errorf("empty response")
		}

		outfits, err := ParseOutfits(content)
		if err != nil {
			return nil, err
		}
		return outfits, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &Generator{
		log:      logger,
		runnable: runnable,
	}, nil
}

func (g *Generator) Generate(ctx context.Context, in Context) ([]Generated, error) {
	if g == nil || g.runnable == nil {
		return nil, fmt.Errorf("outfit generator unavailable")
	}
	return g.runnable.Invoke(ctx, in)
}

// ParseOutfits extracts the JSON array from model output, tolerating stray
// text around it.
func ParseOutfits(content string) ([]Generated, error) {
	clean := trimJSONArray(content)

	var outfits []Generated
	if err := json.Unmarshal([]byte(clean), &outfits); err != nil {
		return nil, fmt.Errorf("unmarshal outfit suggestions: %w", err)
	}
	return outfits, nil
}

func trimJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start > end {
		return content
	}
	return content[start : end+1]
}
