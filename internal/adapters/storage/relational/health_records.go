package relational

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-records/internal/domain/petcare"
)

const healthRecordSelect = `
	SELECT h.id, h.type, h.date, h.dose, h.expiry_date, h.notes, h.pet_id, pt.name
	FROM health_records h
	LEFT JOIN pets pt ON pt.id = h.pet_id
`

func scanHealthRecord(row interface{ Scan(dest ...any) error }) (petcare.HealthRecord, error) {
	var (
		h       petcare.HealthRecord
		date    string
		expiry  sql.NullString
		petName sql.NullString
	)
	if err := row.Scan(&h.ID, &h.Type, &date, &h.Dose, &expiry, &h.Notes, &h.PetID, &petName); err != nil {
		return petcare.HealthRecord{}, err
	}
	d, err := petcare.ParseDate(date)
	if err != nil {
		return petcare.HealthRecord{}, err
	}
	h.Date = d
	if h.ExpiryDate, err = scanOptionalDate(expiry); err != nil {
		return petcare.HealthRecord{}, err
	}
	h.PetName = petNameOf(h.PetID, petName)
	return h, nil
}

func (a *Adapter) queryHealthRecords(ctx context.Context, where string, args ...any) ([]petcare.HealthRecord, error) {
	rows, err := a.db.QueryContext(ctx, a.q(healthRecordSelect+where+` ORDER BY h.seq ASC`), args...)
	if err != nil {
		a.log.Error("error retrieving health records", map[string]any{"error": err.Error()})
		return nil, petcare.Unavailable("list health records", err)
	}
	defer rows.Close()

	out := make([]petcare.HealthRecord, 0)
	for rows.Next() {
		h, err := scanHealthRecord(rows)
		if err != nil {
			return nil, petcare.Unavailable("scan health record", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, petcare.Unavailable("list health records", err)
	}
	return out, nil
}

func (a *Adapter) ListHealthRecords(ctx context.Context) ([]petcare.HealthRecord, error) {
	out, err := a.queryHealthRecords(ctx, "")
	if err != nil {
		return nil, err
	}
	a.log.Debug("retrieved health records", map[string]any{"count": len(out)})
	return out, nil
}

func (a *Adapter) GetHealthRecord(ctx context.Context, id string) (*petcare.HealthRecord, error) {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("health record id", id); err != nil {
		return nil, err
	}
	h, err := scanHealthRecord(a.db.QueryRowContext(ctx, a.q(healthRecordSelect+` WHERE h.id = ?`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, petcare.Unavailable("get health record", err)
	}
	return &h, nil
}

func (a *Adapter) SaveHealthRecord(ctx context.Context, h petcare.HealthRecord) (petcare.HealthRecord, error) {
	h = h.Normalize()
	if err := h.Validate(); err != nil {
		return petcare.HealthRecord{}, err
	}
	date := petcare.FormatDate(h.Date)

	inserted, petName, err := a.saveOwned(ctx, petcare.CollectionHealthRecords, "health record", h.ID, h.PetID,
		func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, a.q(`
				INSERT INTO health_records (id, type, date, dose, expiry_date, notes, pet_id)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`), h.ID, h.Type, date, h.Dose, optionalDateArg(h.ExpiryDate), h.Notes, h.PetID)
			return err
		},
		func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, a.q(`
				UPDATE health_records
				SET type = ?, date = ?, dose = ?, expiry_date = ?, notes = ?, pet_id = ?
				WHERE id = ?
			`), h.Type, date, h.Dose, optionalDateArg(h.ExpiryDate), h.Notes, h.PetID, h.ID)
			return err
		},
	)
	if err != nil {
		a.log.Error("error saving health record", map[string]any{"id": h.ID, "error": err.Error()})
		return petcare.HealthRecord{}, err
	}
	a.logSaved("health record", h.ID, inserted)

	h.PetName = petName
	return h, nil
}

func (a *Adapter) DeleteHealthRecord(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("health record id", id); err != nil {
		return err
	}
	removed, err := a.deleteByID(ctx, petcare.CollectionHealthRecords, id)
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
	out, err := a.queryHealthRecords(ctx, ` WHERE h.pet_id = ?`, petID)
	if err != nil {
		return nil, err
	}
	a.log.Debug("retrieved health records for pet", map[string]any{"pet_id": petID, "count": len(out)})
	return out, nil
}
