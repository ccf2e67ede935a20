package document

import (
	"context"
	"strings"

	"pet-care-records/internal/domain/petcare"
)

func (a *Adapter) ListHealthRecords(ctx context.Context) ([]petcare.HealthRecord, error) {
	names, err := a.petNames(ctx)
	if err != nil {
		return nil, err
	}
	items, err := a.healthRecs.all(ctx)
	if err != nil {
		a.log.Error("error retrieving health records", map[string]any{"error": err.Error()})
		return nil, err
	}
	a.log.Debug("retrieved health records", map[string]any{"count": len(items)})
	return petcare.EnrichHealthRecords(items, names), nil
}

func (a *Adapter) GetHealthRecord(ctx context.Context, id string) (*petcare.HealthRecord, error) {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("health record id", id); err != nil {
		return nil, err
	}
	names, err := a.petNames(ctx)
	if err != nil {
		return nil, err
	}
	h, err := a.healthRecs.find(ctx, id)
	if err != nil || h == nil {
		return nil, err
	}
	h.PetName = names.Lookup(h.PetID)
	return h, nil
}

func (a *Adapter) SaveHealthRecord(ctx context.Context, h petcare.HealthRecord) (petcare.HealthRecord, error) {
	h = h.Normalize()
	if err := h.Validate(); err != nil {
		return petcare.HealthRecord{}, err
	}
	names, err := a.petNames(ctx)
	if err != nil {
		return petcare.HealthRecord{}, err
	}

	inserted, err := a.healthRecs.upsert(ctx, h, func(prev *petcare.HealthRecord) error {
		previous := ""
		if prev != nil {
			previous = prev.PetID
		}
		return petcare.CheckPetReference("health record", h.ID, h.PetID, prev != nil, previous, names)
	})
	if err != nil {
		a.log.Error("error saving health record", map[string]any{"id": h.ID, "error": err.Error()})
		return petcare.HealthRecord{}, err
	}
	a.logSaved("health record", h.ID, inserted)

	h.PetName = names.Lookup(h.PetID)
	return h, nil
}

func (a *Adapter) DeleteHealthRecord(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("health record id", id); err != nil {
		return err
	}
	removed, err := a.healthRecs.remove(ctx, id)
	if err != nil {
		a.log.Error("error deleting health record", map[string]any{"id": id, "error": err.Error()})
		return err
	}
	if !removed {
		a.log.Warn("health record not found for deletion", map[string]any{"id": id})
		return nil
	}
	a.log.Info("health record deleted", map[string]any{"id": id})
	return nil
}

func (a *Adapter) ListHealthRecordsByPet(ctx context.Context, petID string) ([]petcare.HealthRecord, error) {
	petID = strings.TrimSpace(petID)
	if err := petcare.RequireID("pet id", petID); err != nil {
		return nil, err
	}
	items, err := a.ListHealthRecords(ctx)
	if err != nil {
		return nil, err
	}
	out := petcare.FilterByPet(items, petID)
	a.log.Debug("retrieved health records for pet", map[string]any{"pet_id": petID, "count": len(out)})
	return out, nil
}
