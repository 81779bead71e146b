package models

import "time"

// VisitorUnknown is the synthetic visitor bucket for events without a usable
// dailyId. All such events on a day collapse into one distinct visitor, which
// undercounts unique visitors when many events lack an ID. That collapse is the
// established counting convention for this dataset and is relied on downstream.
const VisitorUnknown = "unknown"

// NormalizedEvent is the canonical form of a raw pageview document. Timestamp
// is always timezone-aware and UTC-normalized; raw events without a parseable
// timestamp never become NormalizedEvents.
type NormalizedEvent struct {
	Timestamp  time.Time
	VisitorID  string
	TimeOnPage float64 // seconds, never negative
}
