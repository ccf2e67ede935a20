package relational

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-care-records/internal/domain/petcare"
)

const appointmentSelect = `
	SELECT ap.id, ap.type, ap.date, ap.time, ap.dose, ap.expiry_date, ap.notes, ap.pet_id, pt.name
	FROM appointments ap
	LEFT JOIN pets pt ON pt.id = ap.pet_id
`

func scanAppointment(row interface{ Scan(dest ...any) error }) (petcare.Appointment, error) {
	var (
		ap             petcare.Appointment
		date           string
		expiry         sql.NullString
		petID, petName sql.NullString
	)
	if err := row.Scan(&ap.ID, &ap.Type, &date, &ap.Time, &ap.Dose, &expiry, &ap.Notes, &petID, &petName); err != nil {
		return petcare.Appointment{}, err
	}
	d, err := petcare.ParseDate(date)
	if err != nil {
		return petcare.Appointment{}, err
	}
	ap.Date = d
	if ap.ExpiryDate, err = scanOptionalDate(expiry); err != nil {
		return petcare.Appointment{}, err
	}
	ap.PetID = petID.String
	ap.PetName = petNameOf(ap.PetID, petName)
	return ap, nil
}

func (a *Adapter) queryAppointments(ctx context.Context, where string, args ...any) ([]petcare.Appointment, error) {
	rows, err := a.db.QueryContext(ctx, a.q(appointmentSelect+where+` ORDER BY ap.seq ASC`), args...)
	if err != nil {
		a.log.Error("error retrieving appointments", map[string]any{"error": err.Error()})
		return nil, petcare.Unavailable("list appointments", err)
	}
	defer rows.Close()

	out := make([]petcare.Appointment, 0)
	for rows.Next() {
		ap, err := scanAppointment(rows)
		if err != nil {
			return nil, petcare.Unavailable("scan appointment", err)
		}
		out = append(out, ap)
	}
	if err := rows.Err(); err != nil {
		return nil, petcare.Unavailable("list appointments", err)
	}
	return out, nil
}

func (a *Adapter) ListAppointments(ctx context.Context) ([]petcare.Appointment, error) {
	out, err := a.queryAppointments(ctx, "")
	if err != nil {
		return nil, err
	}
	a.log.Debug("retrieved appointments", map[string]any{"count": len(out)})
	return out, nil
}

func (a *Adapter) GetAppointment(ctx context.Context, id string) (*petcare.Appointment, error) {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("appointment id", id); err != nil {
		return nil, err
	}
	ap, err := scanAppointment(a.db.QueryRowContext(ctx, a.q(appointmentSelect+` WHERE ap.id = ?`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, petcare.Unavailable("get appointment", err)
	}
	return &ap, nil
}

func (a *Adapter) SaveAppointment(ctx context.Context, ap petcare.Appointment) (petcare.Appointment, error) {
	ap = ap.Normalize()
	if err := ap.Validate(); err != nil {
		return petcare.Appointment{}, err
	}
	date := petcare.FormatDate(ap.Date)

	inserted, petName, err := a.saveOwned(ctx, petcare.CollectionAppointments, "appointment", ap.ID, ap.PetID,
		func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, a.q(`
				INSERT INTO appointments (id, type, date, time, dose, expiry_date, notes, pet_id)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`), ap.ID, ap.Type, date, ap.Time, ap.Dose, optionalDateArg(ap.ExpiryDate), ap.Notes, nullString(ap.PetID))
			return err
		},
		func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, a.q(`
				UPDATE appointments
				SET type = ?, date = ?, time = ?, dose = ?, expiry_date = ?, notes = ?, pet_id = ?
				WHERE id = ?
			`), ap.Type, date, ap.Time, ap.Dose, optionalDateArg(ap.ExpiryDate), ap.Notes, nullString(ap.PetID), ap.ID)
			return err
		},
	)
	if err != nil {
		a.log.Error("error saving appointment", map[string]any{"id": ap.ID, "error": err.Error()})
		return petcare.Appointment{}, err
	}
	a.logSaved("appointment", ap.ID, inserted)

	ap.PetName = petName
	return ap, nil
}

func (a *Adapter) DeleteAppointment(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("appointment id", id); err != nil {
		return err
	}
	removed, err := a.deleteByID(ctx, petcare.CollectionAppointments, id)
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
	out, err := a.queryAppointments(ctx, ` WHERE ap.pet_id = ?`, petID)
	if err != nil {
		return nil, err
	}
	a.log.Debug("retrieved appointments for pet", map[string]any{"pet_id": petID, "count": len(out)})
	return out, nil
}

// ListAppointmentsByDateRange compara los primeros diez caracteres de la columna: YYYY-MM-DD ordena
// igual que la fecha y los timestamps RFC3339 heredados empiezan con su fecha de calendario.
func (a *Adapter) ListAppointmentsByDateRange(ctx context.Context, start, end time.Time) ([]petcare.Appointment, error) {
	r, err := petcare.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	out, err := a.queryAppointments(ctx, ` WHERE substr(ap.date, 1, 10) >= ? AND substr(ap.date, 1, 10) <= ?`,
		petcare.FormatDate(r.Start), petcare.FormatDate(r.End))
	if err != nil {
		return nil, err
	}
	a.log.Debug("retrieved appointments in date range", map[string]any{
		"start": petcare.FormatDate(r.Start),
		"end":   petcare.FormatDate(r.End),
		"count": len(out),
	})
	return out, nil
}
