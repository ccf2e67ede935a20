package document

import (
	"context"
	"strings"

	"pet-care-records/internal/domain/petcare"
)

func (a *Adapter) ListPets(ctx context.Context) ([]petcare.Pet, error) {
	pets, err := a.pets.all(ctx)
	if err != nil {
		a.log.Error("error retrieving pets", map[string]any{"error": err.Error()})
		return nil, err
	}
	a.log.Debug("retrieved pets", map[string]any{"count": len(pets)})
	return pets, nil
}

func (a *Adapter) GetPet(ctx context.Context, id string) (*petcare.Pet, error) {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("pet id", id); err != nil {
		return nil, err
	}
	return a.pets.find(ctx, id)
}

func (a *Adapter) SavePet(ctx context.Context, p petcare.Pet) (petcare.Pet, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return petcare.Pet{}, err
	}

	inserted, err := a.pets.upsert(ctx, p, nil)
	if err != nil {
		a.log.Error("error saving pet", map[string]any{"id": p.ID, "error": err.Error()})
		return petcare.Pet{}, err
	}
	a.logSaved("pet", p.ID, inserted)
	return p, nil
}

// DeletePet: primero la mascota, después cada colección dependiente por separado.
// Una limpieza fallida no deshace el borrado ni impide intentar las siguientes.
// La limpieza corre aunque la mascota ya no exista, así reintentar completa una cascada parcial.
func (a *Adapter) DeletePet(ctx context.Context, id string) (petcare.CascadeReport, error) {
	id = strings.TrimSpace(id)
	report := petcare.NewCascadeReport(id)
	if err := petcare.RequireID("pet id", id); err != nil {
		return report, err
	}

	removed, err := a.pets.remove(ctx, id)
	if err != nil {
		a.log.Error("error deleting pet", map[string]any{"id": id, "error": err.Error()})
		return report, err
	}
	report.PetDeleted = removed
	if !removed {
		a.log.Warn("pet not found for deletion", map[string]any{"id": id})
	}

	n, err := removeOwnedBy(ctx, a.products, id)
	report.Record(petcare.CollectionProducts, n, err)

	n, err = removeOwnedBy(ctx, a.healthRecs, id)
	report.Record(petcare.CollectionHealthRecords, n, err)

	n, err = removeOwnedBy(ctx, a.appointments, id)
	report.Record(petcare.CollectionAppointments, n, err)

	if cerr := report.Err(); cerr != nil {
		fields := report.Fields()
		fields["error"] = cerr.Error()
		a.log.Warn("error cleaning up associated data", fields)
	} else if removed || report.TotalRemoved() > 0 {
		a.log.Info("pet deleted", report.Fields())
	}
	return report, nil
}
