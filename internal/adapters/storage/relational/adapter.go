// Package relational implementa el adapter sobre database/sql: una tabla por colección,
// pet_id con foreign key a pets(id) y cascada del motor al borrar una mascota.
// sqlite (modernc) y Postgres (pgx) comparten las consultas; sólo cambian los placeholders.
package relational

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-care-records/internal/domain/petcare"
	"pet-care-records/internal/platform/logger"
)

type Adapter struct {
	db      *sql.DB
	driver  Driver
	cascade bool
	log     logger.Logger
}

var _ petcare.Adapter = (*Adapter)(nil)

// Open abre la base, aplica migraciones y devuelve el adapter listo.
func Open(ctx context.Context, opts Options, log logger.Logger) (*Adapter, error) {
	db, err := openDB(ctx, opts)
	if err != nil {
		return nil, petcare.Unavailable("open "+string(opts.Driver), err)
	}
	if err := MigrateUp(db, opts); err != nil {
		_ = db.Close()
		return nil, petcare.Unavailable("migrate "+string(opts.Driver), err)
	}
	return New(db, opts, log), nil
}

// New envuelve un *sql.DB ya migrado.
func New(db *sql.DB, opts Options, log logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		db:      db,
		driver:  opts.Driver,
		cascade: opts.Driver == DriverPostgres || opts.ForeignKeys,
		log:     log.With(map[string]any{"adapter": "relational", "driver": string(opts.Driver)}),
	}
}

func (a *Adapter) Close() error {
	return a.db.Close()
}

// DB expone el pool, para tests y herramientas.
func (a *Adapter) DB() *sql.DB { return a.db }

func (a *Adapter) q(query string) string {
	return rebind(a.driver, query)
}

func (a *Adapter) logSaved(what, id string, inserted bool) {
	action := "updated"
	if inserted {
		action = "added"
	}
	a.log.Info(what+" "+action, map[string]any{"id": id})
}

var tables = map[petcare.Collection]string{
	petcare.CollectionPets:          "pets",
	petcare.CollectionProducts:      "products",
	petcare.CollectionHealthRecords: "health_records",
	petcare.CollectionAppointments:  "appointments",
}

// currentPetID busca el pet_id guardado de un registro. exists es false si el id no está.
func (a *Adapter) currentPetID(ctx context.Context, q querier, c petcare.Collection, id string) (string, bool, error) {
	var petID sql.NullString
	err := q.QueryRowContext(ctx, a.q(`SELECT pet_id FROM `+tables[c]+` WHERE id = ?`), id).Scan(&petID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, petcare.Unavailable("lookup "+string(c), err)
	}
	return petID.String, true, nil
}

// recordExists es la consulta puntual por id previa a un upsert.
func (a *Adapter) recordExists(ctx context.Context, q querier, c petcare.Collection, id string) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, a.q(`SELECT 1 FROM `+tables[c]+` WHERE id = ?`), id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, petcare.Unavailable("lookup "+string(c), err)
	}
	return true, nil
}

// withTx corre fn en una transacción; cualquier error de fn la descarta.
func (a *Adapter) withTx(ctx context.Context, c petcare.Collection, fn func(tx *sql.Tx) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return petcare.Unavailable("begin "+string(c), err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return petcare.Unavailable("commit "+string(c), err)
	}
	return nil
}

// petNamesFor arma la foto de nombres limitada a petID.
func (a *Adapter) petNamesFor(ctx context.Context, q querier, petID string) (petcare.PetNames, error) {
	names := petcare.PetNames{}
	if petID == "" {
		return names, nil
	}
	var name string
	err := q.QueryRowContext(ctx, a.q(`SELECT name FROM pets WHERE id = ?`), petID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return names, nil
	}
	if err != nil {
		return nil, petcare.Unavailable("lookup pet", err)
	}
	names[petID] = name
	return names, nil
}

// saveOwned resuelve el upsert de un registro dependiente dentro de una transacción:
// prueba el id, aplica la regla de referencia y corre insert o update.
func (a *Adapter) saveOwned(
	ctx context.Context,
	c petcare.Collection,
	what, id, petID string,
	insert func(ctx context.Context, tx *sql.Tx) error,
	update func(ctx context.Context, tx *sql.Tx) error,
) (inserted bool, petName string, err error) {
	var names petcare.PetNames
	err = a.withTx(ctx, c, func(tx *sql.Tx) error {
		previous, exists, err := a.currentPetID(ctx, tx, c, id)
		if err != nil {
			return err
		}
		names, err = a.petNamesFor(ctx, tx, petID)
		if err != nil {
			return err
		}
		if err := petcare.CheckPetReference(what, id, petID, exists, previous, names); err != nil {
			return err
		}

		if exists {
			err = update(ctx, tx)
		} else {
			err = insert(ctx, tx)
		}
		if err != nil {
			return petcare.Unavailable("save "+string(c), err)
		}
		inserted = !exists
		return nil
	})
	if err != nil {
		return false, "", err
	}
	return inserted, names.Lookup(petID), nil
}

// deleteByID borra por id; false si no existía.
func (a *Adapter) deleteByID(ctx context.Context, c petcare.Collection, id string) (bool, error) {
	res, err := a.db.ExecContext(ctx, a.q(`DELETE FROM `+tables[c]+` WHERE id = ?`), id)
	if err != nil {
		return false, petcare.Unavailable("delete "+string(c), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, petcare.Unavailable("delete "+string(c), err)
	}
	return n > 0, nil
}

func (a *Adapter) deleteOwnedBy(ctx context.Context, c petcare.Collection, petID string) (int, error) {
	res, err := a.db.ExecContext(ctx, a.q(`DELETE FROM `+tables[c]+` WHERE pet_id = ?`), petID)
	if err != nil {
		return 0, petcare.Unavailable(fmt.Sprintf("delete %s of pet %s", c, petID), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, petcare.Unavailable(fmt.Sprintf("delete %s of pet %s", c, petID), err)
	}
	return int(n), nil
}

func scanOptionalDate(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	return petcare.ParseOptionalDate(s.String)
}

func optionalDateArg(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return petcare.FormatDate(*t)
}

// petNameOf mapea el LEFT JOIN: NULL es una mascota inexistente.
func petNameOf(petID string, name sql.NullString) string {
	if petID == "" || !name.Valid {
		return petcare.UnknownPetName
	}
	return name.String
}
