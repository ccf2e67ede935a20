// Package persistence es el único punto de entrada al almacenamiento: elige el adapter una vez
// y reenvía cada operación sin validar ni traducir nada.
package persistence

import (
	"context"
	"fmt"
	"time"

	"pet-care-records/internal/adapters/storage/blob"
	"pet-care-records/internal/adapters/storage/document"
	"pet-care-records/internal/adapters/storage/relational"
	"pet-care-records/internal/config"
	"pet-care-records/internal/domain/petcare"
	"pet-care-records/internal/platform/logger"
)

type Facade struct {
	adapter petcare.Adapter
	backend string
}

var _ petcare.Adapter = (*Facade)(nil)

// New envuelve un adapter ya construido.
func New(adapter petcare.Adapter) *Facade {
	return &Facade{adapter: adapter, backend: backendOf(adapter)}
}

// Open construye el adapter que indica cfg.
func Open(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (*Facade, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, petcare.InvalidArgument("storage config: %v", err)
	}

	switch cfg.Backend {
	case config.BackendRelational:
		driver, err := relational.ParseDriver(cfg.Relational.Driver)
		if err != nil {
			return nil, petcare.InvalidArgument("%v", err)
		}
		a, err := relational.Open(ctx, relational.Options{
			Driver:      driver,
			DSN:         cfg.Relational.DSN,
			Path:        cfg.Relational.Path,
			ForeignKeys: cfg.Relational.ForeignKeys,
		}, log)
		if err != nil {
			return nil, err
		}
		log.Info("storage ready", map[string]any{"backend": cfg.Backend, "driver": string(driver)})
		return &Facade{adapter: a, backend: cfg.Backend + "/" + string(driver)}, nil

	default:
		store, err := openBlobStore(ctx, cfg.Document, log)
		if err != nil {
			return nil, petcare.Unavailable("open "+cfg.Document.Medium, err)
		}
		log.Info("storage ready", map[string]any{"backend": cfg.Backend, "medium": cfg.Document.Medium})
		return &Facade{adapter: document.New(store, log), backend: cfg.Backend + "/" + cfg.Document.Medium}, nil
	}
}

func openBlobStore(ctx context.Context, cfg config.DocumentConfig, log logger.Logger) (blob.Store, error) {
	switch cfg.Medium {
	case config.MediumMemory:
		return blob.NewMemory(), nil
	case config.MediumFile:
		return blob.NewFile(cfg.Dir)
	case config.MediumBadger:
		return blob.NewBadger(cfg.Dir, log)
	case config.MediumRedis:
		return blob.NewRedis(ctx, blob.RedisOptions{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	default:
		return nil, fmt.Errorf("unknown document medium %q", cfg.Medium)
	}
}

func backendOf(a petcare.Adapter) string {
	switch v := a.(type) {
	case *document.Adapter:
		return config.BackendDocument
	case *relational.Adapter:
		return config.BackendRelational
	case *Facade:
		return v.backend
	default:
		return fmt.Sprintf("%T", a)
	}
}

// Backend es sólo para diagnóstico.
func (f *Facade) Backend() string { return f.backend }

func (f *Facade) Close() error { return f.adapter.Close() }

func (f *Facade) ListPets(ctx context.Context) ([]petcare.Pet, error) {
	return f.adapter.ListPets(ctx)
}

func (f *Facade) GetPet(ctx context.Context, id string) (*petcare.Pet, error) {
	return f.adapter.GetPet(ctx, id)
}

func (f *Facade) SavePet(ctx context.Context, p petcare.Pet) (petcare.Pet, error) {
	return f.adapter.SavePet(ctx, p)
}

func (f *Facade) DeletePet(ctx context.Context, id string) (petcare.CascadeReport, error) {
	return f.adapter.DeletePet(ctx, id)
}

func (f *Facade) ListProducts(ctx context.Context) ([]petcare.Product, error) {
	return f.adapter.ListProducts(ctx)
}

func (f *Facade) GetProduct(ctx context.Context, id string) (*petcare.Product, error) {
	return f.adapter.GetProduct(ctx, id)
}

func (f *Facade) SaveProduct(ctx context.Context, p petcare.Product) (petcare.Product, error) {
	return f.adapter.SaveProduct(ctx, p)
}

func (f *Facade) DeleteProduct(ctx context.Context, id string) error {
	return f.adapter.DeleteProduct(ctx, id)
}

func (f *Facade) ListProductsByPet(ctx context.Context, petID string) ([]petcare.Product, error) {
	return f.adapter.ListProductsByPet(ctx, petID)
}

func (f *Facade) ListHealthRecords(ctx context.Context) ([]petcare.HealthRecord, error) {
	return f.adapter.ListHealthRecords(ctx)
}

func (f *Facade) GetHealthRecord(ctx context.Context, id string) (*petcare.HealthRecord, error) {
	return f.adapter.GetHealthRecord(ctx, id)
}

func (f *Facade) SaveHealthRecord(ctx context.Context, h petcare.HealthRecord) (petcare.HealthRecord, error) {
	return f.adapter.SaveHealthRecord(ctx, h)
}

func (f *Facade) DeleteHealthRecord(ctx context.Context, id string) error {
	return f.adapter.DeleteHealthRecord(ctx, id)
}

func (f *Facade) ListHealthRecordsByPet(ctx context.Context, petID string) ([]petcare.HealthRecord, error) {
	return f.adapter.ListHealthRecordsByPet(ctx, petID)
}

func (f *Facade) ListAppointments(ctx context.Context) ([]petcare.Appointment, error) {
	return f.adapter.ListAppointments(ctx)
}

func (f *Facade) GetAppointment(ctx context.Context, id string) (*petcare.Appointment, error) {
	return f.adapter.GetAppointment(ctx, id)
}

func (f *Facade) SaveAppointment(ctx context.Context, a petcare.Appointment) (petcare.Appointment, error) {
	return f.adapter.SaveAppointment(ctx, a)
}

func (f *Facade) DeleteAppointment(ctx context.Context, id string) error {
	return f.adapter.DeleteAppointment(ctx, id)
}

func (f *Facade) ListAppointmentsByPet(ctx context.Context, petID string) ([]petcare.Appointment, error) {
	return f.adapter.ListAppointmentsByPet(ctx, petID)
}

func (f *Facade) ListAppointmentsByDateRange(ctx context.Context, start, end time.Time) ([]petcare.Appointment, error) {
	return f.adapter.ListAppointmentsByDateRange(ctx, start, end)
}
