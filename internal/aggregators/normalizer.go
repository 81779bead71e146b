package aggregators

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pageview-analytics/internal/models"
)

// ErrTimestampUnresolved marks a raw event with no parseable timestamp field.
// Such events are dropped and counted, never partially processed.
var ErrTimestampUnresolved = errors.New("no parseable timestamp field")

// timestampLayouts are the ISO-8601 shapes observed across historical tracker
// versions. Layouts without an offset parse as UTC, so naive timestamps are
// interpreted as UTC by construction.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

//go:generate mockgen -source=normalizer.go -destination=./mocks/normalizer_mock.go -package=mocks
type EventNormalizer interface {
	// Normalize extracts the canonical (timestamp, visitor, time-on-page)
	// triple from a raw pageview document. The only failure mode is
	// ErrTimestampUnresolved; every other field degrades to a safe default.
	Normalize(raw models.RawEvent) (*models.NormalizedEvent, error)
}

type eventNormalizer struct{}

func NewEventNormalizer() EventNormalizer {
	return &eventNormalizer{}
}

func (n *eventNormalizer) Normalize(raw models.RawEvent) (*models.NormalizedEvent, error) {
	timestamp, err := n.resolveTimestamp(raw)
	if err != nil {
		return nil, err
	}

	visitorID := models.VisitorUnknown
	if id, ok := raw.DailyID(); ok {
		visitorID = id
	}

	return &models.NormalizedEvent{
		Timestamp:  timestamp.UTC(),
		VisitorID:  visitorID,
		TimeOnPage: n.resolveTimeOnPage(raw),
	}, nil
}

// resolveTimestamp resolves in priority order: visitedTimestamp as string,
// visitedTimestamp as native value, then timestamp as native value.
func (n *eventNormalizer) resolveTimestamp(raw models.RawEvent) (time.Time, error) {
	visited := raw.VisitedTimestamp()
	switch visited.Kind {
	case models.TimestampString:
		if t, ok := parseISOTimestamp(visited.String); ok {
			return t, nil
		}
		// unparseable string falls through to the timestamp field
	case models.TimestampNative:
		return visited.Native, nil
	}

	// String values of the timestamp field are not parsed: tracker versions
	// disagreed on their encoding and the field is unreliable as text.
	if recorded := raw.RecordedTimestamp(); recorded.Kind == models.TimestampNative {
		return recorded.Native, nil
	}

	return time.Time{}, fmt.Errorf("%w: document %q", ErrTimestampUnresolved, raw.ID)
}

// resolveTimeOnPage coerces timeOnPage given as a number or numeric string.
// Anything else, including negative values, degrades to 0.
func (n *eventNormalizer) resolveTimeOnPage(raw models.RawEvent) float64 {
	var seconds float64
	switch v := raw.TimeOnPageValue().(type) {
	case float64:
		seconds = v
	case int:
		seconds = float64(v)
	case int64:
		seconds = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		seconds = parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		seconds = parsed
	default:
		return 0
	}

	if seconds < 0 {
		return 0
	}
	return seconds
}

func parseISOTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
