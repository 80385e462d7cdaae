package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	extractorModelNodeKey = "intent_extractor_model"
	extractorToolName     = "submit_styling_intent"
)

// Extractor classifies free text into a travel or event styling intent and
// pulls out the slot values each needs.
type Extractor struct {
	log      logx.Logger
	runnable compose.Runnable[Input, *Decision]
	tools    []*schema.ToolInfo
}

type Input struct {
	Query string
}

func NewExtractor(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*Extractor, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	intentTool := buildIntentTool()
	tools := []*schema.ToolInfo{intentTool}

	extractorModel := chatModel
	if toolCapable, ok := chatModel.(model.ToolCallingChatModel); ok {
		if modelWithTools, err := toolCapable.WithTools(tools); err != nil {
			logger.Errorf("bind intent tool failed: %v", err)
		} else {
			extractorModel = modelWithTools
		}
	}

	chain := compose.NewChain[Input, *Decision]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, in Input) ([]*schema.Message, error) {
		systemPrompt := `You are the intent analyst of a personal stylist. Read the user's message and decide whether they are planning a trip or dressing for an event, then submit the result through the tool submit_styling_intent. Field rules:
- type: "travel" when the message names or implies a destination to travel to; "event" otherwise.
- destination: the travel destination, required for travel.
- date: the travel date or period as the user phrased it ("next week", "in December"); empty when unknown.
- event: a concise description of the occasion ("job interview", "wedding"), required for event.
Do not answer in prose. Submit exactly one tool call.`

		var user strings.Builder
		user.WriteString("User message: ")
		user.WriteString(in.Query)

		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(user.String()),
		}, nil
	}))

	chain.AppendChatModel(extractorModel, compose.WithNodeKey(extractorModelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*Decision, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}

		payload := extractToolArguments(msg)
		if payload == "" {
			// Some models answer inline JSON instead of calling the tool.
			payload = trimJSONBlock(msg.Content)
		}
		if strings.TrimSpace(payload) == "" {
			return nil, fmt.Errorf("intent payload missing")
		}

		var decision Decision
		if err := json.Unmarshal([]byte(payload), &decision); err != nil {
			return nil, fmt.Errorf("unmarshal intent decision: %w", err)
		}
		decision.RawOutput = payload
		if err := decision.Validate(); err != nil {
			return nil, err
		}
		return &decision, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		log:      logger,
		runnable: runnable,
		tools:    tools,
	}, nil
}

func (e *Extractor) Extract(ctx context.Context, in Input) (*Decision, error) {
	if e == nil || e.runnable == nil {
		return nil, fmt.Errorf("intent extractor unavailable")
	}

	var opts []compose.Option
	if len(e.tools) > 0 {
		opt := compose.WithChatModelOption(
			model.WithTools(e.tools),
			model.WithToolChoice(schema.ToolChoiceForced),
		).DesignateNode(extractorModelNodeKey)
		opts = append(opts, opt)
	}

	return e.runnable.Invoke(ctx, in, opts...)
}

func extractToolArguments(msg *schema.Message) string {
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, extractorToolName) {
			return strings.TrimSpace(call.Function.Arguments)
		}
	}
	return ""
}

func trimJSONBlock(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start > end {
		return content
	}
	return content[start : end+1]
}

func buildIntentTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: extractorToolName,
		Desc: "Submit the structured styling intent extracted from the user's message",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"type": {
				Type:     schema.String,
				Desc:     "travel when the user is going somewhere, event when dressing for an occasion",
				Enum:     []string{"travel", "event"},
				Required: true,
			},
			"destination": {
				Type: schema.String,
				Desc: "Travel destination, required for travel",
			},
			"date": {
				Type: schema.String,
				Desc: "Travel date or period as the user phrased it, empty when unknown",
			},
			"event": {
				Type: schema.String,
				Desc: "Short description of the occasion, required for event",
			},
			"explanation": {
				Type: schema.String,
				Desc: "Brief reasoning",
			},
		}),
	}
}
