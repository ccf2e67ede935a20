package relational

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-records/internal/domain/petcare"
)

const productSelect = `
	SELECT p.id, p.name, p.type, p.application_date, p.expiry_date, p.notes, p.pet_id, pt.name
	FROM products p
	LEFT JOIN pets pt ON pt.id = p.pet_id
`

func scanProduct(row interface{ Scan(dest ...any) error }) (petcare.Product, error) {
	var (
		p               petcare.Product
		applied, expiry sql.NullString
		petID, petName  sql.NullString
		productType     string
	)
	if err := row.Scan(&p.ID, &p.Name, &productType, &applied, &expiry, &p.Notes, &petID, &petName); err != nil {
		return petcare.Product{}, err
	}
	p.Type = petcare.ProductType(productType)
	var err error
	if p.ApplicationDate, err = scanOptionalDate(applied); err != nil {
		return petcare.Product{}, err
	}
	if p.ExpiryDate, err = scanOptionalDate(expiry); err != nil {
		return petcare.Product{}, err
	}
	p.PetID = petID.String
	p.PetName = petNameOf(p.PetID, petName)
	return p, nil
}

func (a *Adapter) queryProducts(ctx context.Context, where string, args ...any) ([]petcare.Product, error) {
	rows, err := a.db.QueryContext(ctx, a.q(productSelect+where+` ORDER BY p.seq ASC`), args...)
	if err != nil {
		a.log.Error("error retrieving products", map[string]any{"error": err.Error()})
		return nil, petcare.Unavailable("list products", err)
	}
	defer rows.Close()

	out := make([]petcare.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, petcare.Unavailable("scan product", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, petcare.Unavailable("list products", err)
	}
	return out, nil
}

func (a *Adapter) ListProducts(ctx context.Context) ([]petcare.Product, error) {
	out, err := a.queryProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	a.log.Debug("retrieved products", map[string]any{"count": len(out)})
	return out, nil
}

func (a *Adapter) GetProduct(ctx context.Context, id string) (*petcare.Product, error) {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("product id", id); err != nil {
		return nil, err
	}
	p, err := scanProduct(a.db.QueryRowContext(ctx, a.q(productSelect+` WHERE p.id = ?`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, petcare.Unavailable("get product", err)
	}
	return &p, nil
}

func (a *Adapter) SaveProduct(ctx context.Context, p petcare.Product) (petcare.Product, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return petcare.Product{}, err
	}

	inserted, petName, err := a.saveOwned(ctx, petcare.CollectionProducts, "product", p.ID, p.PetID,
		func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, a.q(`
				INSERT INTO products (id, name, type, application_date, expiry_date, notes, pet_id)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`), p.ID, p.Name, string(p.Type), optionalDateArg(p.ApplicationDate), optionalDateArg(p.ExpiryDate), p.Notes, nullString(p.PetID))
			return err
		},
		func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, a.q(`
				UPDATE products
				SET name = ?, type = ?, application_date = ?, expiry_date = ?, notes = ?, pet_id = ?
				WHERE id = ?
			`), p.Name, string(p.Type), optionalDateArg(p.ApplicationDate), optionalDateArg(p.ExpiryDate), p.Notes, nullString(p.PetID), p.ID)
			return err
		},
	)
	if err != nil {
		a.log.Error("error saving product", map[string]any{"id": p.ID, "error": err.Error()})
		return petcare.Product{}, err
	}
	a.logSaved("product", p.ID, inserted)

	p.PetName = petName
	return p, nil
}

func (a *Adapter) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := petcare.RequireID("product id", id); err != nil {
		return err
	}
	removed, err := a.deleteByID(ctx, petcare.CollectionProducts, id)
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
	out, err := a.queryProducts(ctx, ` WHERE p.pet_id = ?`, petID)
	if err != nil {
		return nil, err
	}
	a.log.Debug("retrieved products for pet", map[string]any{"pet_id": petID, "count": len(out)})
	return out, nil
}
