package mq

// KafkaConf configures the plan event producer. Empty broker list disables
// publishing.
type KafkaConf struct {
	Broker           []string `json:",optional"`
	PlanSettledTopic string   `json:",optional"`
}

// PlanSettledEvent is published after a submission settles, for analytics
// consumers. Best effort: publish failures never affect the plan.
type PlanSettledEvent struct {
	PlanId       string `json:"plan_id"`
	UserId       int64  `json:"user_id"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Gender       string `json:"gender"`
	OutfitCount  int    `json:"outfit_count"`
	ProductCount int    `json:"product_count"`
}
