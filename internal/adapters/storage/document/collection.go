package document

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"pet-care-records/internal/adapters/storage/blob"
	"pet-care-records/internal/domain/petcare"
)

// collection es un blob JSON (array de registros) protegido por su propio RWMutex.
// Toda mutación es read-modify-write del array completo; el lock hace que dos saves
// concurrentes sobre la misma colección no se pisen.
type collection[T petcare.Keyed] struct {
	name  petcare.Collection
	store blob.Store
	mu    sync.RWMutex
}

func newCollection[T petcare.Keyed](name petcare.Collection, store blob.Store) *collection[T] {
	return &collection[T]{name: name, store: store}
}

// load no toma el lock; lo hace el caller.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.store.Get(ctx, string(c.name))
	if err != nil {
		return nil, petcare.Unavailable("read "+string(c.name), err)
	}
	out := make([]T, 0)
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, petcare.Unavailable("decode "+string(c.name), err)
	}
	return out, nil
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return petcare.Unavailable("encode "+string(c.name), err)
	}
	if err := c.store.Put(ctx, string(c.name), raw); err != nil {
		return petcare.Unavailable("write "+string(c.name), err)
	}
	return nil
}

func (c *collection[T]) all(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.load(ctx)
}

func (c *collection[T]) find(ctx context.Context, id string) (*T, error) {
	items, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].RecordID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// upsert reemplaza en el lugar si el id existe (scan lineal), si no agrega al final.
// check recibe el registro previo (nil si es nuevo) y puede vetar la escritura.
func (c *collection[T]) upsert(ctx context.Context, item T, check func(prev *T) error) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	idx := -1
	for i := range items {
		if items[i].RecordID() == item.RecordID() {
			idx = i
			break
		}
	}

	var prev *T
	if idx >= 0 {
		prev = &items[idx]
	}
	if check != nil {
		if err := check(prev); err != nil {
			return false, err
		}
	}

	if idx >= 0 {
		items[idx] = item
	} else {
		items = append(items, item)
	}

	if err := c.save(ctx, items); err != nil {
		return false, err
	}
	return idx < 0, nil
}

// remove devuelve false, sin escribir, si el id no estaba.
func (c *collection[T]) remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() != id {
			kept = append(kept, it)
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

type ownedRecord interface {
	petcare.Keyed
	petcare.Owned
}

// removeOwnedBy reescribe la colección sin los registros de petID.
func removeOwnedBy[T ownedRecord](ctx context.Context, c *collection[T], petID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	kept, removed := petcare.WithoutPet(items, petID)
	if removed == 0 {
		return 0, nil
	}
	if err := c.save(ctx, kept); err != nil {
		return 0, fmt.Errorf("rewrite without pet %s: %w", petID, err)
	}
	return removed, nil
}
