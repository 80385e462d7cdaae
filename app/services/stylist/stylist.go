// Package stylist turns free-text styling requests into gender-aware,
// shoppable outfit recommendations. The gateway consumes this package
// in-process; everything below it lives in internal packages.
package stylist

import (
	"context"
	"fmt"

	"AtelierAI/app/services/stylist/internal/agent/intent"
	"AtelierAI/app/services/stylist/internal/agent/outfit"
	"AtelierAI/app/services/stylist/internal/mq"
	"AtelierAI/app/services/stylist/internal/pipeline"
	"AtelierAI/app/services/stylist/internal/preference"
	"AtelierAI/app/services/stylist/internal/shopping"
	"AtelierAI/app/services/stylist/internal/weather"
	"AtelierAI/app/services/stylist/plan"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// Stylist is the engine behind the gateway: one Submit call runs the whole
// extract -> weather -> generate -> resolve pipeline.
type Stylist struct {
	planner  *pipeline.Planner
	prefs    preference.Store
	producer *mq.Producer
}

func MustNew(ctx context.Context, c Config, rds *redis.Redis) *Stylist {
	s, err := New(ctx, c, rds)
	if err != nil {
		logx.Must(err)
	}
	return s
}

func New(ctx context.Context, c Config, rds *redis.Redis) (*Stylist, error) {
	log := logx.WithContext(ctx)

	chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}

	extractor, err := intent.NewExtractor(ctx, log, chatModel)
	if err != nil {
		return nil, fmt.Errorf("init intent extractor: %w", err)
	}
	generator, err := outfit.NewGenerator(ctx, log, chatModel)
	if err != nil {
		return nil, fmt.Errorf("init outfit generator: %w", err)
	}

	prefs := preference.NewStore(rds)
	producer := mq.NewProducer(c.Kafka)
	outfits := shopping.NewOutfitResolver(shopping.NewProductResolver(shopping.NewImageSearcher(c.Search)))

	planner := pipeline.NewPlanner(
		intentAdapter{extractor: extractor},
		weather.NewResolver(c.Weather),
		generator,
		outfits,
		prefs,
		producer,
	)

	return &Stylist{
		planner:  planner,
		prefs:    prefs,
		producer: producer,
	}, nil
}

// Submit runs one pipeline for the user's message and returns the settled
// plan. Stage failures settle as an error-typed plan, never as a Go error.
func (s *Stylist) Submit(ctx context.Context, userId int64, text string) *plan.TravelPlan {
	return s.planner.Submit(ctx, userId, text)
}

// Latest returns the user's most recent settled plan, nil before the first
// submission.
func (s *Stylist) Latest(userId int64) *plan.TravelPlan {
	return s.planner.Latest(userId)
}

func (s *Stylist) GetPreference(ctx context.Context, userId int64) (string, error) {
	return s.prefs.Get(ctx, userId)
}

func (s *Stylist) SetPreference(ctx context.Context, userId int64, gender string) error {
	return s.prefs.Set(ctx, userId, gender)
}

func (s *Stylist) Close() error {
	return s.producer.Close()
}

// intentAdapter narrows the eino extractor to the pipeline's contract.
type intentAdapter struct {
	extractor *intent.Extractor
}

func (a intentAdapter) Extract(ctx context.Context, query string) (plan.Intent, error) {
	decision, err := a.extractor.Extract(ctx, intent.Input{Query: query})
	if err != nil {
		return plan.Intent{}, err
	}
	return decision.Intent(), nil
}
