package stores

import (
	"context"
	"fmt"
	"strings"

	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/docstores"
)

const pageViewCollectionPrefix = "pageViews_"

// pathPrefixUpperBound closes a path-prefix range query: every path starting
// with the prefix sorts below prefix + U+F8FF.
const pathPrefixUpperBound = "\uf8ff"

//go:generate mockgen -source=page_view_store.go -destination=./mocks/page_view_store_mock.go -package=mocks
type PageViewStore interface {
	// GetAll reads a country's entire pageview collection. No server-side
	// date filtering: historical timestamp encodings are too inconsistent
	// for store-level queries to be trusted, so callers filter in memory.
	GetAll(ctx context.Context, country string) ([]models.RawEvent, error)

	// QueryByPathPrefix returns the country's pageviews whose path starts
	// with pathPrefix.
	QueryByPathPrefix(ctx context.Context, country string, pathPrefix string) ([]models.RawEvent, error)
}

type pageViewStore struct {
	docStore docstores.Store
}

func NewPageViewStore(docStore docstores.Store) PageViewStore {
	return &pageViewStore{docStore: docStore}
}

// PageViewCollection returns the collection name for a country code.
func PageViewCollection(country string) string {
	return pageViewCollectionPrefix + strings.ToLower(country)
}

func (s *pageViewStore) GetAll(ctx context.Context, country string) ([]models.RawEvent, error) {
	collection := PageViewCollection(country)
	documents, err := s.docStore.GetAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", collection, err)
	}
	return toRawEvents(documents), nil
}

func (s *pageViewStore) QueryByPathPrefix(ctx context.Context, country string, pathPrefix string) ([]models.RawEvent, error) {
	collection := PageViewCollection(country)
	documents, err := s.docStore.Query(ctx, collection,
		docstores.Filter{Field: models.FieldPath, Op: docstores.OpGreaterOrEqual, Value: pathPrefix},
		docstores.Filter{Field: models.FieldPath, Op: docstores.OpLessOrEqual, Value: pathPrefix + pathPrefixUpperBound},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %q: %w", collection, err)
	}
	return toRawEvents(documents), nil
}

func toRawEvents(documents []docstores.Document) []models.RawEvent {
	events := make([]models.RawEvent, 0, len(documents))
	for _, document := range documents {
		events = append(events, models.NewRawEvent(document))
	}
	return events
}
