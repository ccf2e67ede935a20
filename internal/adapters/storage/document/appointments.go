package document

import (
	"context"
	"strings"
	"time"

	"pet-care-records/internal/domain/petcare"
)

func (a *Adapter) ListAppointments(ctx context.Context) ([]petcare.Appointment, error) {
	names, err := a.petNames(ctx)
	if err != nil {
		return nil, err
	}
	items, err := a.appointments.all(ctx)
	if err != nil {
		a.log.Error("error retrieving appointments", map[string]any{"error": err.Error()})
		return nil, err
	}
	a.log.Debug("retrieved appointments", map[string]any{"count": len(items)})
	return petcare.EnrichAppointments(items, names), nil
}

func (a *Adapter) GetAppointment(ctx context.Context, id string) (*petcare.Appointment, error) {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("appointment id", id); err != nil {
		return nil, err
	}
	names, err := a.petNames(ctx)
	if err != nil {
		return nil, err
	}
	ap, err := a.appointments.find(ctx, id)
	if err != nil || ap == nil {
		return nil, err
	}
	ap.PetName = names.Lookup(ap.PetID)
	return ap, nil
}

func (a *Adapter) SaveAppointment(ctx context.Context, ap petcare.Appointment) (petcare.Appointment, error) {
	ap = ap.Normalize()
	if err := ap.Validate(); err != nil {
		return petcare.Appointment{}, err
	}
	names, err := a.petNames(ctx)
	if err != nil {
		return petcare.Appointment{}, err
	}

	inserted, err := a.appointments.upsert(ctx, ap, func(prev *petcare.Appointment) error {
		previous := ""
		if prev != nil {
			previous = prev.PetID
		}
		return petcare.CheckPetReference("appointment", ap.ID, ap.PetID, prev != nil, previous, names)
	})
	if err != nil {
		a.log.Error("error saving appointment", map[string]any{"id": ap.ID, "error": err.Error()})
		return petcare.Appointment{}, err
	}
	a.logSaved("appointment", ap.ID, inserted)

	ap.PetName = names.Lookup(ap.PetID)
	return ap, nil
}

func (a *Adapter) DeleteAppointment(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("appointment id", id); err != nil {
		return err
	}
	removed, err := a.appointments.remove(ctx, id)
	if err != nil {
		a.log.Error("error deleting appointment", map[string]any{"id": id, "error": err.Error()})
		return err
	}
	if !removed {
		a.log.Warn("appointment not found for deletion", map[string]any{"id": id})
		return nil
	}
	a.log.Info("appointment deleted", map[string]any{"id": id})
	return nil
}

func (a *Adapter) ListAppointmentsByPet(ctx context.Context, petID string) ([]petcare.Appointment, error) {
	petID = strings.TrimSpace(petID)
	if err := petcare.RequireID("pet id", petID); err != nil {
		return nil, err
	}
	items, err := a.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	out := petcare.FilterByPet(items, petID)
	a.log.Debug("retrieved appointments for pet", map[string]any{"pet_id": petID, "count": len(out)})
	return out, nil
}

// ListAppointmentsByDateRange carga todas las citas y filtra por fecha, ambos extremos incluidos.
func (a *Adapter) ListAppointmentsByDateRange(ctx context.Context, start, end time.Time) ([]petcare.Appointment, error) {
	r, err := petcare.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	items, err := a.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	out := petcare.FilterByDateRange(items, r)
	a.log.Debug("retrieved appointments in date range", map[string]any{
		"start": petcare.FormatDate(r.Start),
		"end":   petcare.FormatDate(r.End),
		"count": len(out),
	})
	return out, nil
}
