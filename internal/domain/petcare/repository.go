package petcare

import (
	"context"
	"time"
)

// PetStore cubre la colección raíz.
type PetStore interface {
	ListPets(ctx context.Context) ([]Pet, error)
	// GetPet devuelve (nil, nil) si no existe.
	GetPet(ctx context.Context, id string) (*Pet, error)
	SavePet(ctx context.Context, p Pet) (Pet, error)
	// DeletePet borra la mascota y, best-effort, sus productos, registros y citas.
	// El error sólo refleja el borrado de la mascota; las fallas de limpieza van en el reporte.
	DeletePet(ctx context.Context, id string) (CascadeReport, error)
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	SaveProduct(ctx context.Context, p Product) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProductsByPet(ctx context.Context, petID string) ([]Product, error)
}

type HealthRecordStore interface {
	ListHealthRecords(ctx context.Context) ([]HealthRecord, error)
	GetHealthRecord(ctx context.Context, id string) (*HealthRecord, error)
	SaveHealthRecord(ctx context.Context, h HealthRecord) (HealthRecord, error)
	DeleteHealthRecord(ctx context.Context, id string) error
	ListHealthRecordsByPet(ctx context.Context, petID string) ([]HealthRecord, error)
}

type AppointmentStore interface {
	ListAppointments(ctx context.Context) ([]Appointment, error)
	GetAppointment(ctx context.Context, id string) (*Appointment, error)
	SaveAppointment(ctx context.Context, a Appointment) (Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	ListAppointmentsByPet(ctx context.Context, petID string) ([]Appointment, error)
	// ListAppointmentsByDateRange incluye ambos extremos.
	ListAppointmentsByDateRange(ctx context.Context, start, end time.Time) ([]Appointment, error)
}

// Adapter es el contrato que implementa cada backend (documento, relacional).
// Dos adapters distintos deben ser intercambiables sin que el caller lo note.
type Adapter interface {
	PetStore
	ProductStore
	HealthRecordStore
	AppointmentStore

	Close() error
}

// RequireID valida los ids de Get/Delete/ListBy*.
func RequireID(what, id string) error {
	if id == "" {
		return InvalidArgument("%s required", what)
	}
	return nil
}
