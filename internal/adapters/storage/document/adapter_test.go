package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-records/internal/adapters/storage/blob"
	"pet-care-records/internal/domain/petcare"
	"pet-care-records/internal/platform/logger"
	"pet-care-records/internal/storagetest"
)

func TestAdapter_Memory(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) petcare.Adapter {
		a := New(blob.NewMemory(), logger.Nop())
		t.Cleanup(func() { _ = a.Close() })
		return a
	})
}

func TestAdapter_File(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) petcare.Adapter {
		store, err := blob.NewFile(t.TempDir())
		require.NoError(t, err)
		a := New(store, logger.Nop())
		t.Cleanup(func() { _ = a.Close() })
		return a
	})
}

func TestAdapter_Badger(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) petcare.Adapter {
		store, err := blob.NewBadger("", logger.Nop())
		require.NoError(t, err)
		a := New(store, logger.Nop())
		t.Cleanup(func() { _ = a.Close() })
		return a
	})
}

func TestAdapter_Redis(t *testing.T) {
	addr := os.Getenv("PETCARE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PETCARE_TEST_REDIS_ADDR not set")
	}
	storagetest.Run(t, func(t *testing.T) petcare.Adapter {
		store, err := blob.NewRedis(context.Background(), blob.RedisOptions{
			Addr:   addr,
			Prefix: fmt.Sprintf("petcare-test-%d:", time.Now().UnixNano()),
		})
		require.NoError(t, err)
		a := New(store, logger.Nop())
		t.Cleanup(func() { _ = a.Close() })
		return a
	})
}

func TestAdapter_FilePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := blob.NewFile(dir)
	require.NoError(t, err)
	a := New(store, logger.Nop())
	_, err = a.SavePet(ctx, petcare.Pet{ID: "p1", Name: "Rex", Species: "Dog"})
	require.NoError(t, err)
	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Flea drops", Type: petcare.ProductMedicine, PetID: "p1"})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	store, err = blob.NewFile(dir)
	require.NoError(t, err)
	b := New(store, logger.Nop())
	defer b.Close()

	p, err := b.GetProduct(ctx, "pr1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Rex", p.PetName)
}

func TestAdapter_PersistsDatesAsCalendarDays(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemory()
	a := New(store, logger.Nop())

	loc := time.FixedZone("BRT", -3*3600)
	_, err := a.SaveAppointment(ctx, petcare.Appointment{
		ID:   "a1",
		Type: "Consulta",
		Date: time.Date(2024, 5, 1, 22, 30, 0, 0, loc),
	})
	require.NoError(t, err)

	raw, err := store.Get(ctx, string(petcare.CollectionAppointments))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"date":"2024-05-01"`)
	assert.NotContains(t, string(raw), "pet_name")
}

func TestAdapter_DanglingReferenceReadsAsUnknownPet(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemory()
	require.NoError(t, store.Put(ctx, string(petcare.CollectionProducts),
		[]byte(`[{"id":"pr1","name":"Flea drops","type":"Medicamento","pet_id":"gone"}]`)))
	a := New(store, logger.Nop())

	products, err := a.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, petcare.UnknownPetName, products[0].PetName)

	// actualizar sin cambiar de mascota no revalida la referencia
	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Flea drops 2", Type: petcare.ProductMedicine, PetID: "gone"})
	require.NoError(t, err)
}

func TestAdapter_AcceptsLegacyTimestamps(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemory()
	require.NoError(t, store.Put(ctx, string(petcare.CollectionProducts),
		[]byte(`[{"id":"pr1","name":"Vacina V10","type":"Vacina","application_date":"2024-05-01T13:45:00.000Z"}]`)))
	a := New(store, logger.Nop())

	p, err := a.GetProduct(ctx, "pr1")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NotNil(t, p.ApplicationDate)
	assert.Equal(t, "2024-05-01", petcare.FormatDate(*p.ApplicationDate))
}

func TestAdapter_CorruptBlobIsStorageUnavailable(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemory()
	require.NoError(t, store.Put(ctx, string(petcare.CollectionPets), []byte(`{not json`)))
	a := New(store, logger.Nop())

	_, err := a.ListPets(ctx)
	assert.ErrorIs(t, err, petcare.ErrStorageUnavailable)

	_, err = a.ListProducts(ctx)
	assert.ErrorIs(t, err, petcare.ErrStorageUnavailable, "enriquecer necesita leer pets")
}

// failingStore falla las escrituras de las colecciones indicadas.
type failingStore struct {
	blob.Store
	failPut map[string]bool
}

func (s *failingStore) Put(ctx context.Context, name string, data []byte) error {
	if s.failPut[name] {
		return errors.New("disk full")
	}
	return s.Store.Put(ctx, name, data)
}

func TestAdapter_DeletePetContinuesAfterCleanupFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: blob.NewMemory(), failPut: map[string]bool{}}
	a := New(store, logger.Nop())

	_, err := a.SavePet(ctx, petcare.Pet{ID: "p1", Name: "Rex", Species: "Dog"})
	require.NoError(t, err)
	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Flea drops", Type: petcare.ProductMedicine, PetID: "p1"})
	require.NoError(t, err)
	_, err = a.SaveHealthRecord(ctx, petcare.HealthRecord{ID: "h1", Type: petcare.HealthVaccine, Date: storagetest.Day("2024-01-01"), PetID: "p1"})
	require.NoError(t, err)
	_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a1", Type: "Consulta", Date: storagetest.Day("2024-01-02"), PetID: "p1"})
	require.NoError(t, err)

	store.failPut[string(petcare.CollectionProducts)] = true

	report, err := a.DeletePet(ctx, "p1")
	require.NoError(t, err, "la falla de limpieza no falla el borrado")
	assert.True(t, report.PetDeleted)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, petcare.CollectionProducts, report.Failures[0].Collection)
	assert.ErrorIs(t, report.Err(), petcare.ErrStorageUnavailable)
	assert.Equal(t, 1, report.Removed[petcare.CollectionHealthRecords])
	assert.Equal(t, 1, report.Removed[petcare.CollectionAppointments])

	pet, err := a.GetPet(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, pet)

	// el producto quedó colgando y se lee con el placeholder
	p, err := a.GetProduct(ctx, "pr1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, petcare.UnknownPetName, p.PetName)

	// reintentar completa la cascada aunque la mascota ya no exista
	store.failPut[string(petcare.CollectionProducts)] = false
	report, err = a.DeletePet(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, report.PetDeleted)
	assert.NoError(t, report.Err())
	assert.Equal(t, 1, report.Removed[petcare.CollectionProducts])

	p, err = a.GetProduct(ctx, "pr1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestAdapter_SaveFailureIsStorageUnavailable(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: blob.NewMemory(), failPut: map[string]bool{string(petcare.CollectionPets): true}}
	a := New(store, logger.Nop())

	_, err := a.SavePet(ctx, petcare.Pet{ID: "p1", Name: "Rex", Species: "Dog"})
	require.Error(t, err)
	assert.ErrorIs(t, err, petcare.ErrStorageUnavailable)

	var se *petcare.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "write pets", se.Op)
}
