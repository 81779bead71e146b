package stores

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pageview-analytics/internal/models"
	"pageview-analytics/internal/shared/docstores"
)

const trendingCollection = "trendingContent"

// trendingDocument keeps the field names the consuming websites expect.
type trendingDocument struct {
	Races     []models.TrendingPage `json:"races"`
	UpdatedAt time.Time             `json:"updated_at"`
}

//go:generate mockgen -source=trending_store.go -destination=./mocks/trending_store_mock.go -package=mocks
type TrendingStore interface {
	// SetTrending overwrites a country's trending list.
	SetTrending(ctx context.Context, country string, pages []models.TrendingPage) error
}

type trendingStore struct {
	docStore docstores.Store
	now      func() time.Time
}

func NewTrendingStore(docStore docstores.Store) TrendingStore {
	return &trendingStore{docStore: docStore, now: time.Now}
}

func (s *trendingStore) SetTrending(ctx context.Context, country string, pages []models.TrendingPage) error {
	document := trendingDocument{
		Races:     pages,
		UpdatedAt: s.now().UTC(),
	}
	documentID := strings.ToUpper(country)
	if err := s.docStore.Set(ctx, trendingCollection, documentID, document); err != nil {
		return fmt.Errorf("failed to write trending document %q: %w", documentID, err)
	}
	return nil
}
