// Package document implementa el adapter sobre un medio de blobs: un array JSON por colección.
//
// Cada colección tiene su propio lock y nunca se sostienen dos a la vez; las operaciones
// que cruzan colecciones (enriquecimiento, cascada) leen Pets primero y sueltan el lock
// antes de tocar la colección dependiente.
package document

import (
	"context"

	"pet-care-records/internal/adapters/storage/blob"
	"pet-care-records/internal/domain/petcare"
	"pet-care-records/internal/platform/logger"
)

type Adapter struct {
	store blob.Store
	log   logger.Logger

	pets         *collection[petcare.Pet]
	products     *collection[petcare.Product]
	healthRecs   *collection[petcare.HealthRecord]
	appointments *collection[petcare.Appointment]
}

var _ petcare.Adapter = (*Adapter)(nil)

func New(store blob.Store, log logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		store:        store,
		log:          log.With(map[string]any{"adapter": "document"}),
		pets:         newCollection[petcare.Pet](petcare.CollectionPets, store),
		products:     newCollection[petcare.Product](petcare.CollectionProducts, store),
		healthRecs:   newCollection[petcare.HealthRecord](petcare.CollectionHealthRecords, store),
		appointments: newCollection[petcare.Appointment](petcare.CollectionAppointments, store),
	}
}

func (a *Adapter) Close() error {
	return a.store.Close()
}

// petNames toma la foto de Pets que usa una llamada para enriquecer o validar.
func (a *Adapter) petNames(ctx context.Context) (petcare.PetNames, error) {
	pets, err := a.pets.all(ctx)
	if err != nil {
		return nil, err
	}
	return petcare.NewPetNames(pets), nil
}

func (a *Adapter) logSaved(what, id string, inserted bool) {
	action := "updated"
	if inserted {
		action = "added"
	}
	a.log.Info(what+" "+action, map[string]any{"id": id})
}
