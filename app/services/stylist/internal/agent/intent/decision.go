package intent

import (
	"fmt"
	"strings"

	"AtelierAI/app/services/stylist/plan"
)

// Decision is the extractor's structured reading of one user message.
type Decision struct {
	Type        string `json:"type"`
	Destination string `json:"destination,omitempty"`
	Date        string `json:"date,omitempty"`
	Event       string `json:"event,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	RawOutput   string `json:"-"`
}

// Validate rejects decisions whose shape cannot drive the pipeline.
func (d *Decision) Validate() error {
	if d == nil {
		return fmt.Errorf("empty intent decision")
	}
	switch d.Type {
	case plan.IntentTravel:
		if strings.TrimSpace(d.Destination) == "" {
			return fmt.Errorf("travel intent without destination")
		}
	case plan.IntentEvent:
		if strings.TrimSpace(d.Event) == "" {
			return fmt.Errorf("event intent without event description")
		}
	default:
		return fmt.Errorf("unknown intent type %q", d.Type)
	}
	return nil
}

// Intent converts the decision into the pipeline's intent record.
func (d *Decision) Intent() plan.Intent {
	return plan.Intent{
		Type:        d.Type,
		Destination: strings.TrimSpace(d.Destination),
		Date:        strings.TrimSpace(d.Date),
		Event:       strings.TrimSpace(d.Event),
	}
}
