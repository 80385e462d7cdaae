package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer publishes plan lifecycle events. A nil Producer (or one built
// from empty config) drops every event.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(c KafkaConf) *Producer {
	if len(c.Broker) == 0 || c.PlanSettledTopic == "" {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(c.Broker...),
			Topic:                  c.PlanSettledTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Producer) PublishPlanSettled(ctx context.Context, evt PlanSettledEvent) error {
	if p == nil || p.writer == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.PlanId),
		Value: body,
	})
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
