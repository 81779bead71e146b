package docstores

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// fileStore is a directory-per-collection, file-per-document store. It mirrors
// the hosted document store closely enough for local runs and tests: reads see
// whole collections, writes are full overwrites, and a missing collection reads
// as empty rather than failing.
type fileStore struct {
	dir string
}

// NewFileStore creates a file-backed Store rooted at rootDir.
func NewFileStore(rootDir string) (Store, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStore{dir: absRootDir}, nil
}

func (s *fileStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	if err := s.validateName(collection); err != nil {
		return nil, err
	}

	collectionDir := filepath.Join(s.dir, collection)
	dirEntries, err := os.ReadDir(collectionDir)
	if err != nil {
		if os.IsNotExist(err) {
			// An unwritten collection reads as empty.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read collection %q: %w", collection, err)
	}

	documents := make([]Document, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		name := dirEntry.Name()
		if dirEntry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(collectionDir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %q: %w", name, err)
		}

		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode document %q: %w", name, err)
		}

		documents = append(documents, Document{
			ID:     strings.TrimSuffix(name, ".json"),
			Fields: fields,
		})
	}

	// Directory order is platform-dependent; keep reads deterministic.
	sort.Slice(documents, func(i, j int) bool { return documents[i].ID < documents[j].ID })

	return documents, nil
}

func (s *fileStore) Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	documents, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	matched := make([]Document, 0, len(documents))
	for _, document := range documents {
		match, err := matchesAll(document, filters)
		if err != nil {
			return nil, err
		}
		if match {
			matched = append(matched, document)
		}
	}
	return matched, nil
}

func (s *fileStore) Set(ctx context.Context, collection string, documentID string, value any) error {
	if err := s.validateName(collection); err != nil {
		return err
	}
	if err := s.validateName(documentID); err != nil {
		return err
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal document %q: %w", documentID, err)
	}

	collectionDir := filepath.Join(s.dir, collection)
	if err := os.MkdirAll(collectionDir, 0755); err != nil {
		return err
	}

	// Write to temp and rename so readers never observe a partial document.
	tmp, err := os.CreateTemp(collectionDir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(jsonData); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	finalPath := filepath.Join(collectionDir, documentID+".json")
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return err
	}

	return nil
}

// validateName rejects names that would escape the store's root directory.
func (s *fileStore) validateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	if filepath.IsAbs(name) {
		return ErrInvalidName
	}
	cleanName := filepath.Clean(name)
	if cleanName != name || strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}
	if cleanName == "." || cleanName == ".." {
		return ErrInvalidName
	}
	return nil
}

func matchesAll(document Document, filters []Filter) (bool, error) {
	for _, filter := range filters {
		match, err := matches(document, filter)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

func matches(document Document, filter Filter) (bool, error) {
	fieldValue, ok := document.Fields[filter.Field]
	if !ok {
		return false, nil
	}

	cmp, comparable := compare(fieldValue, filter.Value)
	if !comparable {
		return false, nil
	}

	switch filter.Op {
	case OpEqual:
		return cmp == 0, nil
	case OpGreaterOrEqual:
		return cmp >= 0, nil
	case OpLessOrEqual:
		return cmp <= 0, nil
	}
	return false, fmt.Errorf("%w: unsupported operator %q", ErrInvalidFilter, filter.Op)
}

// compare orders two field values of like type. Mixed or unsupported types are
// reported as not comparable and the document simply does not match.
func compare(fieldValue, filterValue any) (int, bool) {
	switch fv := fieldValue.(type) {
	case string:
		qv, ok := filterValue.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(fv, qv), true
	case time.Time:
		qv, ok := filterValue.(time.Time)
		if !ok {
			return 0, false
		}
		if fv.Before(qv) {
			return -1, true
		}
		if fv.After(qv) {
			return 1, true
		}
		return 0, true
	}

	fn, fok := asFloat(fieldValue)
	qn, qok := asFloat(filterValue)
	if !fok || !qok {
		return 0, false
	}
	if fn < qn {
		return -1, true
	}
	if fn > qn {
		return 1, true
	}
	return 0, true
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
