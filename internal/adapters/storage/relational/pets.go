package relational

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-records/internal/domain/petcare"
)

const petColumns = `id, name, species, breed, dob, notes`

func scanPet(row interface{ Scan(dest ...any) error }) (petcare.Pet, error) {
	var (
		p   petcare.Pet
		dob sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Species, &p.Breed, &dob, &p.Notes); err != nil {
		return petcare.Pet{}, err
	}
	d, err := scanOptionalDate(dob)
	if err != nil {
		return petcare.Pet{}, err
	}
	p.DOB = d
	return p, nil
}

func (a *Adapter) ListPets(ctx context.Context) ([]petcare.Pet, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets ORDER BY seq ASC`)
	if err != nil {
		a.log.Error("error retrieving pets", map[string]any{"error": err.Error()})
		return nil, petcare.Unavailable("list pets", err)
	}
	defer rows.Close()

	out := make([]petcare.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, petcare.Unavailable("scan pet", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, petcare.Unavailable("list pets", err)
	}
	a.log.Debug("retrieved pets", map[string]any{"count": len(out)})
	return out, nil
}

func (a *Adapter) GetPet(ctx context.Context, id string) (*petcare.Pet, error) {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("pet id", id); err != nil {
		return nil, err
	}
	row := a.db.QueryRowContext(ctx, a.q(`SELECT `+petColumns+` FROM pets WHERE id = ?`), id)
	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, petcare.Unavailable("get pet", err)
	}
	return &p, nil
}

// SavePet prueba el id dentro de la transacción y según eso inserta o actualiza.
func (a *Adapter) SavePet(ctx context.Context, p petcare.Pet) (petcare.Pet, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return petcare.Pet{}, err
	}

	var inserted bool
	err := a.withTx(ctx, petcare.CollectionPets, func(tx *sql.Tx) error {
		exists, err := a.recordExists(ctx, tx, petcare.CollectionPets, p.ID)
		if err != nil {
			return err
		}
		if exists {
			_, err = tx.ExecContext(ctx, a.q(`
				UPDATE pets
				SET name = ?, species = ?, breed = ?, dob = ?, notes = ?
				WHERE id = ?
			`), p.Name, p.Species, p.Breed, optionalDateArg(p.DOB), p.Notes, p.ID)
		} else {
			_, err = tx.ExecContext(ctx, a.q(`
				INSERT INTO pets (id, name, species, breed, dob, notes)
				VALUES (?, ?, ?, ?, ?, ?)
			`), p.ID, p.Name, p.Species, p.Breed, optionalDateArg(p.DOB), p.Notes)
		}
		if err != nil {
			return petcare.Unavailable("save pet", err)
		}
		inserted = !exists
		return nil
	})
	if err != nil {
		a.log.Error("error saving pet", map[string]any{"id": p.ID, "error": err.Error()})
		return petcare.Pet{}, err
	}
	a.logSaved("pet", p.ID, inserted)
	return p, nil
}

// DeletePet: con foreign keys el motor borra los dependientes; antes se cuentan para el reporte.
// Sin foreign keys (sqlite configurado así) cada tabla dependiente se limpia por separado.
func (a *Adapter) DeletePet(ctx context.Context, id string) (petcare.CascadeReport, error) {
	id = strings.TrimSpace(id)
	report := petcare.NewCascadeReport(id)
	if err := petcare.RequireID("pet id", id); err != nil {
		return report, err
	}

	if a.cascade {
		counts, removed, err := a.deletePetCascading(ctx, id)
		if err != nil {
			a.log.Error("error deleting pet", map[string]any{"id": id, "error": err.Error()})
			return report, err
		}
		report.PetDeleted = removed
		for _, c := range petcare.DependentCollections() {
			report.Record(c, counts[c], nil)
		}
	} else {
		removed, err := a.deleteByID(ctx, petcare.CollectionPets, id)
		if err != nil {
			a.log.Error("error deleting pet", map[string]any{"id": id, "error": err.Error()})
			return report, err
		}
		report.PetDeleted = removed
		for _, c := range petcare.DependentCollections() {
			n, err := a.deleteOwnedBy(ctx, c, id)
			report.Record(c, n, err)
		}
	}

	if !report.PetDeleted {
		a.log.Warn("pet not found for deletion", map[string]any{"id": id})
	}
	if cerr := report.Err(); cerr != nil {
		fields := report.Fields()
		fields["error"] = cerr.Error()
		a.log.Warn("error cleaning up associated data", fields)
	} else if report.PetDeleted || report.TotalRemoved() > 0 {
		a.log.Info("pet deleted", report.Fields())
	}
	return report, nil
}

func (a *Adapter) deletePetCascading(ctx context.Context, id string) (counts map[petcare.Collection]int, removed bool, err error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, petcare.Unavailable("begin delete pet", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	counts = make(map[petcare.Collection]int, 3)
	for _, c := range petcare.DependentCollections() {
		var n int
		if err = tx.QueryRowContext(ctx, a.q(`SELECT COUNT(*) FROM `+tables[c]+` WHERE pet_id = ?`), id).Scan(&n); err != nil {
			return nil, false, petcare.Unavailable("count "+string(c), err)
		}
		counts[c] = n
	}

	res, err := tx.ExecContext(ctx, a.q(`DELETE FROM pets WHERE id = ?`), id)
	if err != nil {
		return nil, false, petcare.Unavailable("delete pet", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, false, petcare.Unavailable("delete pet", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, false, petcare.Unavailable("commit delete pet", err)
	}
	if n == 0 {
		// sin mascota no hay cascada
		return map[petcare.Collection]int{}, false, nil
	}
	return counts, true, nil
}
