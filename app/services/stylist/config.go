package stylist

import (
	"AtelierAI/app/services/stylist/internal/mq"
	"AtelierAI/app/services/stylist/internal/shopping"
	"AtelierAI/app/services/stylist/internal/weather"
)

// ModelConf mirrors the shape used across services for LLM endpoints.
type ModelConf struct {
	BaseUrl string
	APIKey  string
	Model   string
}

// Config wires the stylist pipeline's collaborators.
type Config struct {
	ChatModel ModelConf
	Search    shopping.SearchConf
	Weather   weather.Conf
	Kafka     mq.KafkaConf
}
