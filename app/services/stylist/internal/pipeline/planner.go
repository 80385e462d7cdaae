package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"AtelierAI/app/common/snowflake"
	"AtelierAI/app/services/stylist/internal/agent/outfit"
	"AtelierAI/app/services/stylist/internal/mq"
	"AtelierAI/app/services/stylist/internal/preference"
	"AtelierAI/app/services/stylist/plan"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

// Pipeline stages, in order. A submission always terminates in Settled;
// there is no retry transition.
const (
	stageExtracting        = "extracting"
	stageFetchingWeather   = "fetching_weather"
	stageGeneratingOutfits = "generating_outfits"
	stageResolvingProducts = "resolving_products"
	stageSettled           = "settled"
)

// Terminal stage failures. Product resolution failures never surface here;
// they are absorbed inside the shopping package.
var (
	ErrExtraction = errors.New("intent extraction failed")
	ErrWeather    = errors.New("weather fetch failed")
	ErrGeneration = errors.New("outfit generation failed")
)

// Extractor classifies free text into a travel or event intent.
type Extractor interface {
	Extract(ctx context.Context, query string) (plan.Intent, error)
}

// WeatherResolver returns the forecast for a travel destination.
type WeatherResolver interface {
	Forecast(ctx context.Context, destination, date string) (*plan.WeatherContext, error)
}

// Generator produces candidate outfit descriptions.
type Generator interface {
	Generate(ctx context.Context, in outfit.Context) ([]outfit.Generated, error)
}

// OutfitResolver resolves one outfit description into products. Never fails.
type OutfitResolver interface {
	ResolveOutfit(ctx context.Context, desc plan.OutfitDescription, gender string) plan.Outfit
}

type userState struct {
	issued    uint64 // latest generation token handed out
	committed uint64 // token of the stored plan
	plan      *plan.TravelPlan
}

// Planner runs the request-to-recommendation pipeline. One logical pipeline
// per submission; a later submission for the same user supersedes an
// in-flight one, whose result is then discarded at commit time.
type Planner struct {
	extractor Extractor
	weather   WeatherResolver
	generator Generator
	outfits   OutfitResolver
	prefs     preference.Store
	events    *mq.Producer

	mu    sync.Mutex
	users map[int64]*userState
}

func NewPlanner(extractor Extractor, weather WeatherResolver, generator Generator, outfits OutfitResolver, prefs preference.Store, events *mq.Producer) *Planner {
	return &Planner{
		extractor: extractor,
		weather:   weather,
		generator: generator,
		outfits:   outfits,
		prefs:     prefs,
		events:    events,
		users:     make(map[int64]*userState),
	}
}

// Submit runs one full pipeline for the user's message and returns the
// settled plan. Stage failures settle as an error plan rather than a Go
// error; the only plan shape a caller ever sees is a settled one.
func (p *Planner) Submit(ctx context.Context, userId int64, text string) *plan.TravelPlan {
	log := logx.WithContext(ctx)
	token := p.issueToken(userId)

	// Snapshot the preference once; a change mid-pipeline applies only to
	// the next submission.
	gender, err := p.prefs.Get(ctx, userId)
	if err != nil {
		log.Errorf("read gender preference for user %d failed, using any: %v", userId, err)
		gender = plan.GenderAny
	}

	result := p.run(ctx, log, text, gender)
	committed := p.commit(userId, token, result)
	if !committed {
		log.Infof("user %d: stale pipeline result %s discarded", userId, result.Id)
		return result
	}

	if err := p.events.PublishPlanSettled(ctx, settledEvent(userId, gender, result)); err != nil {
		log.Errorf("publish plan settled event failed: %v", err)
	}
	return result
}

// Latest returns the most recently committed plan for the user, or nil
// before the first settled submission.
func (p *Planner) Latest(userId int64) *plan.TravelPlan {
	p.mu.Lock()
	defer p.mu.Unlock()
	if st, ok := p.users[userId]; ok {
		return st.plan
	}
	return nil
}

func (p *Planner) run(ctx context.Context, log logx.Logger, text, gender string) *plan.TravelPlan {
	log.Infof("pipeline: %s", stageExtracting)
	intent, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return errorPlan(fmt.Errorf("%w: %v", ErrExtraction, err))
	}

	var weatherCtx *plan.WeatherContext
	if intent.Type == plan.IntentTravel {
		log.Infof("pipeline: %s destination=%s", stageFetchingWeather, intent.Destination)
		weatherCtx, err = p.weather.Forecast(ctx, intent.Destination, intent.Date)
		if err != nil {
			return errorPlan(fmt.Errorf("%w: %v", ErrWeather, err))
		}
	}

	log.Infof("pipeline: %s", stageGeneratingOutfits)
	generated, err := p.generator.Generate(ctx, outfit.Context{
		Weather: weatherCtx,
		Event:   intent.Event,
		Gender:  gender,
	})
	if err != nil {
		return errorPlan(fmt.Errorf("%w: %v", ErrGeneration, err))
	}

	log.Infof("pipeline: %s outfits=%d", stageResolvingProducts, len(generated))
	outfits := p.resolveAll(ctx, generated, gender)

	result := assemble(intent, weatherCtx, outfits)
	log.Infof("pipeline: %s plan=%s status=%s", stageSettled, result.Id, result.Status)
	return result
}

// resolveAll resolves every generated outfit concurrently and keeps the
// generator's order in the result, whatever the completion order.
func (p *Planner) resolveAll(ctx context.Context, generated []outfit.Generated, gender string) []plan.Outfit {
	outfits := make([]plan.Outfit, len(generated))
	mr.ForEach(func(source chan<- int) {
		for i := range generated {
			source <- i
		}
	}, func(i int) {
		resolved := p.outfits.ResolveOutfit(ctx, generated[i].Description, gender)
		resolved.Name = generated[i].Name
		outfits[i] = resolved
	})
	return outfits
}

func assemble(intent plan.Intent, weatherCtx *plan.WeatherContext, outfits []plan.Outfit) *plan.TravelPlan {
	result := &plan.TravelPlan{
		Id:      snowflake.NextString(),
		Outfits: outfits,
		Status:  plan.StatusSuccess,
	}
	if intent.Type == plan.IntentTravel {
		result.Type = plan.IntentTravel
		result.Destination = intent.Destination
		result.Weather = weatherCtx
		result.Date = intent.Date
		if weatherCtx != nil {
			result.Date = weatherCtx.Date
			if weatherCtx.Warning != "" {
				result.Status = plan.StatusWarning
				result.Warning = weatherCtx.Warning
			}
		}
	} else {
		result.Type = plan.IntentEvent
		result.Event = intent.Event
	}
	return result
}

func errorPlan(err error) *plan.TravelPlan {
	return &plan.TravelPlan{
		Id:     snowflake.NextString(),
		Type:   plan.TypeError,
		Status: plan.StatusError,
		Error:  friendlyMessage(err),
	}
}

// friendlyMessage keeps stage detail where it is safe to show and falls
// back to generic wording otherwise.
func friendlyMessage(err error) string {
	switch {
	case errors.Is(err, ErrExtraction):
		return "Sorry, I couldn't understand that request. Please try rephrasing it."
	case errors.Is(err, ErrWeather):
		return "Could not fetch the weather for that destination. Please check the place and date."
	case errors.Is(err, ErrGeneration):
		return "Outfit suggestions are unavailable right now. Please try again."
	default:
		return "Failed to process your request. Please try again."
	}
}

func (p *Planner) issueToken(userId int64) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	st, ok := p.users[userId]
	if !ok {
		st = &userState{}
		p.users[userId] = st
	}
	st.issued++
	return st.issued
}

// commit stores the result only when its token is still the latest issued
// one; a superseded pipeline's result is dropped silently.
func (p *Planner) commit(userId int64, token uint64, result *plan.TravelPlan) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	st, ok := p.users[userId]
	if !ok || token != st.issued {
		return false
	}
	st.committed = token
	st.plan = result
	return true
}

func settledEvent(userId int64, gender string, result *plan.TravelPlan) mq.PlanSettledEvent {
	productCount := 0
	for _, o := range result.Outfits {
		productCount += len(o.Products)
	}
	return mq.PlanSettledEvent{
		PlanId:       result.Id,
		UserId:       userId,
		Type:         result.Type,
		Status:       result.Status,
		Gender:       gender,
		OutfitCount:  len(result.Outfits),
		ProductCount: productCount,
	}
}
