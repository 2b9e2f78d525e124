package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

// Record is any entity carried by a Collection.
type Record interface {
	GetID() string
	SetID(id string)
}

type recordPtr[T any] interface {
	*T
	Record
}

// Collection is a generic entity store: one record kind serialized as a JSON
// array under a single backend key. Reads load the whole collection, writes
// store it back; read-modify-write is not atomic, which is acceptable for a
// single logical writer but loses updates under concurrent writers.
type Collection[T any, PT recordPtr[T]] struct {
	backend Backend
	key     string
}

func NewCollection[T any, PT recordPtr[T]](backend Backend, prefix, name string) *Collection[T, PT] {
	return &Collection[T, PT]{backend: backend, key: prefix + "_" + name}
}

func (c *Collection[T, PT]) load(ctx context.Context) ([]T, error) {
	data, err := c.backend.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	return items, nil
}

func (c *Collection[T, PT]) save(ctx context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.backend.Set(ctx, c.key, data)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

func generateID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), randomSuffix(9))
}

func containsID[T any, PT recordPtr[T]](items []T, id string) bool {
	for i := range items {
		if PT(&items[i]).GetID() == id {
			return true
		}
	}
	return false
}

// Create assigns a fresh id, appends the record and persists the collection.
func (c *Collection[T, PT]) Create(ctx context.Context, item PT) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	id := generateID()
	for containsID[T, PT](items, id) {
		id = generateID()
	}
	item.SetID(id)
	items = append(items, *item)
	return c.save(ctx, items)
}

// FindByID returns the record or (nil, nil) when the id is unknown.
func (c *Collection[T, PT]) FindByID(ctx context.Context, id string) (PT, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if PT(&items[i]).GetID() == id {
			item := items[i]
			return PT(&item), nil
		}
	}
	return nil, nil
}

// FindAll returns every record in insertion order.
func (c *Collection[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// Filter returns the records matching pred, preserving insertion order.
func (c *Collection[T, PT]) Filter(ctx context.Context, pred func(PT) bool) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	var out []T
	for i := range items {
		if pred(PT(&items[i])) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// FindOne returns the first record matching pred, or (nil, nil).
func (c *Collection[T, PT]) FindOne(ctx context.Context, pred func(PT) bool) (PT, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if pred(PT(&items[i])) {
			item := items[i]
			return PT(&item), nil
		}
	}
	return nil, nil
}

// Update merges patch shallowly into the record's JSON form and persists the
// result. Returns (nil, nil) when the id is unknown. Patch keys are the JSON
// field names.
func (c *Collection[T, PT]) Update(ctx context.Context, id string, patch map[string]any) (PT, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range items {
		if PT(&items[i]).GetID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	raw, err := json.Marshal(items[idx])
	if err != nil {
		return nil, fmt.Errorf("encode %s record: %w", c.key, err)
	}
	merged := map[string]any{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, fmt.Errorf("decode %s record: %w", c.key, err)
	}
	for k, v := range patch {
		merged[k] = v
	}
	raw, err = json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encode %s patch: %w", c.key, err)
	}
	var updated T
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, fmt.Errorf("apply %s patch: %w", c.key, err)
	}

	items[idx] = updated
	if err := c.save(ctx, items); err != nil {
		return nil, err
	}
	item := items[idx]
	return PT(&item), nil
}

// Delete removes the record and reports whether one was removed.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	kept := items[:0:0]
	for i := range items {
		if PT(&items[i]).GetID() != id {
			kept = append(kept, items[i])
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if err := c.save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
