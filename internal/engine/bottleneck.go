package engine

import (
	"math"

	"github.com/dmagro/tracao/internal/domain"
)

// Synthetic bucket keys for events that carry no failure reason.
const (
	bucketReagendamento = "reagendamento"
	bucketFalhaExecucao = "falha_execucao"
)

// EventSample is the slice of an execution event the aggregator cares about.
type EventSample struct {
	Type          domain.EventType
	FailureReason *domain.FailureReason
}

// Bottleneck is the dominant delay/failure bucket over a window.
type Bottleneck struct {
	Key     string
	Label   string
	Percent int
}

// DominantBottleneck tallies delayed/failed events by failure reason and
// returns the biggest bucket with its share of all bucketed events. Ties keep
// the first-encountered bucket. Returns nil when the window has no delayed or
// failed events at all.
func DominantBottleneck(events []EventSample) *Bottleneck {
	counts := make(map[string]int)
	var order []string

	for _, ev := range events {
		if ev.Type != domain.EventDelayed && ev.Type != domain.EventFailed {
			continue
		}
		key := syntheticKey(ev.Type)
		if ev.FailureReason != nil && *ev.FailureReason != "" {
			key = string(*ev.FailureReason)
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	if len(order) == 0 {
		return nil
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	denom := total
	if denom < 1 {
		denom = 1
	}

	dominant := order[0]
	for _, key := range order[1:] {
		if counts[key] > counts[dominant] {
			dominant = key
		}
	}

	label := domain.FailureReasonLabels[dominant]
	if label == "" {
		label = dominant
	}

	return &Bottleneck{
		Key:     dominant,
		Label:   label,
		Percent: int(math.Round(float64(counts[dominant]) / float64(denom) * 100)),
	}
}

func syntheticKey(t domain.EventType) string {
	if t == domain.EventDelayed {
		return bucketReagendamento
	}
	return bucketFalhaExecucao
}
