package models

import (
	"encoding/json"
	"strconv"
	"time"

	"pageview-analytics/internal/shared/docstores"
)

// Field names as recorded by the website tracker. Historical documents are
// inconsistent: timestamps appear as ISO-8601 strings or native values, IDs and
// durations may be missing, null, or mis-typed.
const (
	FieldVisitedTimestamp = "visitedTimestamp"
	FieldTimestamp        = "timestamp"
	FieldDailyID          = "dailyId"
	FieldTimeOnPage       = "timeOnPage"
	FieldPath             = "path"
	FieldReferrer         = "referrer"
)

// dailyIDNullSentinel is the literal string some tracker versions wrote in
// place of a missing visitor ID.
const dailyIDNullSentinel = "null"

// TimestampKind tags the shape a timestamp field arrived in.
type TimestampKind int

const (
	TimestampMissing TimestampKind = iota
	TimestampString
	TimestampNative
	TimestampMalformed
)

// TimestampValue is the tagged representation of a raw timestamp field. It
// replaces ad-hoc runtime type inspection at the normalizer boundary.
type TimestampValue struct {
	Kind   TimestampKind
	String string    // set when Kind == TimestampString
	Native time.Time // set when Kind == TimestampNative
}

// RawEvent is a single pageview document as read from a country collection.
type RawEvent struct {
	ID     string
	Fields map[string]any
}

// NewRawEvent wraps a document-store document.
func NewRawEvent(doc docstores.Document) RawEvent {
	return RawEvent{ID: doc.ID, Fields: doc.Fields}
}

// VisitedTimestamp returns the tagged visitedTimestamp field.
func (e RawEvent) VisitedTimestamp() TimestampValue {
	return e.timestampField(FieldVisitedTimestamp)
}

// RecordedTimestamp returns the tagged timestamp field.
func (e RawEvent) RecordedTimestamp() TimestampValue {
	return e.timestampField(FieldTimestamp)
}

func (e RawEvent) timestampField(name string) TimestampValue {
	value, ok := e.Fields[name]
	if !ok || value == nil {
		return TimestampValue{Kind: TimestampMissing}
	}
	switch v := value.(type) {
	case string:
		return TimestampValue{Kind: TimestampString, String: v}
	case time.Time:
		return TimestampValue{Kind: TimestampNative, Native: v}
	}
	return TimestampValue{Kind: TimestampMalformed}
}

// DailyID returns the visitor identifier and whether a usable one is present.
// Absent, null, and the literal string "null" all count as not present.
// Numeric IDs some tracker versions wrote are used in their string form, so
// they stay distinct visitors instead of collapsing into "unknown".
func (e RawEvent) DailyID() (string, bool) {
	value, ok := e.Fields[FieldDailyID]
	if !ok || value == nil {
		return "", false
	}
	switch v := value.(type) {
	case string:
		if v == dailyIDNullSentinel {
			return "", false
		}
		return v, true
	case float64:
		// integral values print without a decimal point
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	}
	return "", false
}

// TimeOnPageValue returns the raw timeOnPage field value, or nil when absent.
func (e RawEvent) TimeOnPageValue() any {
	return e.Fields[FieldTimeOnPage]
}

// Path returns the visited path, or "" when absent or mis-typed.
func (e RawEvent) Path() string {
	return e.stringField(FieldPath)
}

// Referrer returns the referrer, or "" when absent or mis-typed.
func (e RawEvent) Referrer() string {
	return e.stringField(FieldReferrer)
}

func (e RawEvent) stringField(name string) string {
	if v, ok := e.Fields[name].(string); ok {
		return v
	}
	return ""
}
