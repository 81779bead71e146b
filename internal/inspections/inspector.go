package inspections

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"pageview-analytics/internal/aggregators"
	"pageview-analytics/internal/models"
	"pageview-analytics/internal/stores"
)

const (
	topPathsCount      = 5
	sampleDocumentSize = 3
)

// Inspector answers ad-hoc questions about the raw collections: whether data
// arrived today and what shape historical documents actually have. Output is
// plain text for a human at a terminal, not for machines.
type Inspector interface {
	CheckToday(ctx context.Context, countries []string) error
	DebugCollections(ctx context.Context, countries []string) error
}

type inspector struct {
	pageViewStore stores.PageViewStore
	normalizer    aggregators.EventNormalizer
	out           io.Writer

	now func() time.Time
}

func NewInspector(pageViewStore stores.PageViewStore, normalizer aggregators.EventNormalizer, out io.Writer) Inspector {
	return &inspector{
		pageViewStore: pageViewStore,
		normalizer:    normalizer,
		out:           out,
		now:           time.Now,
	}
}

// CheckToday prints, per country, today's pageviews, unique visitors, average
// time-on-page, and the most viewed paths.
func (i *inspector) CheckToday(ctx context.Context, countries []string) error {
	today := models.DateOf(i.now())
	fmt.Fprintf(i.out, "pageviews for %s\n", today)

	for _, country := range countries {
		events, err := i.pageViewStore.GetAll(ctx, country)
		if err != nil {
			return fmt.Errorf("country %s: %w", country, err)
		}

		var (
			pageviews   int
			totalTime   float64
			unresolved  int
			visitors    = map[string]struct{}{}
			viewsByPath = map[string]int{}
		)
		for _, event := range events {
			normalized, err := i.normalizer.Normalize(event)
			if err != nil {
				unresolved++
				continue
			}
			if !models.DateOf(normalized.Timestamp).Equal(today) {
				continue
			}
			pageviews++
			totalTime += normalized.TimeOnPage
			visitors[normalized.VisitorID] = struct{}{}
			if path := event.Path(); path != "" {
				viewsByPath[path]++
			}
		}

		averageTime := 0.0
		if pageviews > 0 {
			averageTime = totalTime / float64(pageviews)
		}

		fmt.Fprintf(i.out, "\n%s: %d pageviews, %d unique visitors, %.1fs avg time on page (%d unresolved timestamps)\n",
			country, pageviews, len(visitors), averageTime, unresolved)
		for _, entry := range topPaths(viewsByPath, topPathsCount) {
			fmt.Fprintf(i.out, "  %5d  %s\n", entry.views, entry.path)
		}
	}
	return nil
}

// DebugCollections prints a few sample documents per country with the shape of
// their timestamp fields, enough to spot which tracker version wrote them.
func (i *inspector) DebugCollections(ctx context.Context, countries []string) error {
	for _, country := range countries {
		events, err := i.pageViewStore.GetAll(ctx, country)
		if err != nil {
			return fmt.Errorf("country %s: %w", country, err)
		}

		fmt.Fprintf(i.out, "\n%s (%d documents)\n", stores.PageViewCollection(country), len(events))
		for n, event := range events {
			if n == sampleDocumentSize {
				break
			}
			fmt.Fprintf(i.out, "  %s\n", event.ID)
			fmt.Fprintf(i.out, "    visitedTimestamp: %s\n", describeTimestamp(event.VisitedTimestamp()))
			fmt.Fprintf(i.out, "    timestamp:        %s\n", describeTimestamp(event.RecordedTimestamp()))
			if id, ok := event.DailyID(); ok {
				fmt.Fprintf(i.out, "    dailyId:          %q\n", id)
			} else {
				fmt.Fprintf(i.out, "    dailyId:          absent\n")
			}
		}
	}
	return nil
}

func describeTimestamp(value models.TimestampValue) string {
	switch value.Kind {
	case models.TimestampString:
		return fmt.Sprintf("string %q", value.String)
	case models.TimestampNative:
		return fmt.Sprintf("native %s", value.Native.UTC().Format(time.RFC3339))
	case models.TimestampMalformed:
		return "malformed"
	}
	return "absent"
}

type pathViews struct {
	path  string
	views int
}

func topPaths(viewsByPath map[string]int, n int) []pathViews {
	entries := make([]pathViews, 0, len(viewsByPath))
	for path, views := range viewsByPath {
		entries = append(entries, pathViews{path: path, views: views})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].views != entries[j].views {
			return entries[i].views > entries[j].views
		}
		return entries[i].path < entries[j].path
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
