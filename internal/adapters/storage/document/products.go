package document

import (
	"context"
	"strings"

	"pet-care-records/internal/domain/petcare"
)

// ListProducts carga Pets y productos y completa pet_name en cada uno.
func (a *Adapter) ListProducts(ctx context.Context) ([]petcare.Product, error) {
	names, err := a.petNames(ctx)
	if err != nil {
		return nil, err
	}
	items, err := a.products.all(ctx)
	if err != nil {
		a.log.Error("error retrieving products", map[string]any{"error": err.Error()})
		return nil, err
	}
	a.log.Debug("retrieved products", map[string]any{"count": len(items)})
	return petcare.EnrichProducts(items, names), nil
}

func (a *Adapter) GetProduct(ctx context.Context, id string) (*petcare.Product, error) {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("product id", id); err != nil {
		return nil, err
	}
	names, err := a.petNames(ctx)
	if err != nil {
		return nil, err
	}
	p, err := a.products.find(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	p.PetName = names.Lookup(p.PetID)
	return p, nil
}

func (a *Adapter) SaveProduct(ctx context.Context, p petcare.Product) (petcare.Product, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return petcare.Product{}, err
	}
	names, err := a.petNames(ctx)
	if err != nil {
		return petcare.Product{}, err
	}

	inserted, err := a.products.upsert(ctx, p, func(prev *petcare.Product) error {
		previous := ""
		if prev != nil {
			previous = prev.PetID
		}
		return petcare.CheckPetReference("product", p.ID, p.PetID, prev != nil, previous, names)
	})
	if err != nil {
		a.log.Error("error saving product", map[string]any{"id": p.ID, "error": err.Error()})
		return petcare.Product{}, err
	}
	a.logSaved("product", p.ID, inserted)

	p.PetName = names.Lookup(p.PetID)
	return p, nil
}

func (a *Adapter) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("product id", id); err != nil {
		return err
	}
	removed, err := a.products.remove(ctx, id)
	if err != nil {
		a.log.Error("error deleting product", map[string]any{"id": id, "error": err.Error()})
		return err
	}
	if !removed {
		a.log.Warn("product not found for deletion", map[string]any{"id": id})
		return nil
	}
	a.log.Info("product deleted", map[string]any{"id": id})
	return nil
}

func (a *Adapter) ListProductsByPet(ctx context.Context, petID string) ([]petcare.Product, error) {
	petID = strings.TrimSpace(petID)
	if err := petcare.RequireID("pet id", petID); err != nil {
		return nil, err
	}
	items, err := a.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := petcare.FilterByPet(items, petID)
	a.log.Debug("retrieved products for pet", map[string]any{"pet_id": petID, "count": len(out)})
	return out, nil
}
