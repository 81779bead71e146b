package docstores

import (
	"context"
	"errors"
)

var (
	ErrInvalidName    = errors.New("invalid collection or document name")
	ErrInvalidRootDir = errors.New("invalid root directory")
	ErrInvalidFilter  = errors.New("invalid query filter")
)

// Document is one record from a collection. Field values keep the shape the
// backing store decoded them to: strings, numbers, booleans, nil, and (for
// stores with a native timestamp type) time.Time.
type Document struct {
	ID     string
	Fields map[string]any
}

// Op is a query comparison operator.
type Op string

const (
	OpEqual          Op = "=="
	OpGreaterOrEqual Op = ">="
	OpLessOrEqual    Op = "<="
)

// Filter compares one document field against a value. String fields compare
// lexically, numeric fields numerically.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Store is the narrow document-store surface the analytics jobs depend on.
// Reads return whole collections or filter-matched subsets; Set fully
// overwrites the target document, no merge.
//
//go:generate mockgen -source=doc_store.go -destination=./mocks/doc_store_mock.go -package=mocks
type Store interface {
	GetAll(ctx context.Context, collection string) ([]Document, error)
	Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Set(ctx context.Context, collection string, documentID string, value any) error
}
