// Package storagetest es la batería de comportamiento que todo petcare.Adapter tiene que pasar.
// Cada backend la corre con su propia factory; si dos adapters la pasan son intercambiables.
package storagetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"pet-care-records/internal/domain/petcare"
)

// Factory devuelve un adapter vacío y se encarga de cerrarlo con t.Cleanup.
type Factory func(t *testing.T) petcare.Adapter

// Run corre la batería completa, un subtest por propiedad y un adapter nuevo por subtest.
func Run(t *testing.T, newAdapter Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, a petcare.Adapter)
	}{
		{"RoundTrip", testRoundTrip},
		{"UpsertKeepsSingleRecord", testUpsert},
		{"UpsertKeepsPosition", testUpsertKeepsPosition},
		{"DeleteIsIdempotent", testDeleteIdempotent},
		{"GetMissingReturnsNil", testGetMissing},
		{"DeletePetCascades", testDeletePetCascades},
		{"DeleteMissingPet", testDeleteMissingPet},
		{"Enrichment", testEnrichment},
		{"EnrichmentFollowsRename", testEnrichmentFollowsRename},
		{"CreationRequiresExistingPet", testCreationRequiresExistingPet},
		{"ListByPet", testListByPet},
		{"DateRangeInclusive", testDateRange},
		{"DateRangeInvalid", testDateRangeInvalid},
		{"EmptyIDs", testEmptyIDs},
		{"Validation", testValidation},
		{"FreeTextTime", testFreeTextTime},
		{"ConcurrentSaves", testConcurrentSaves},
		{"RexScenario", testRexScenario},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newAdapter(t))
		})
	}
}

// Day arma una fecha de calendario en UTC.
func Day(s string) time.Time {
	t, err := time.Parse(petcare.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	d := Day(s)
	return &d
}

func mustSavePet(t *testing.T, a petcare.Adapter, id, name string) petcare.Pet {
	t.Helper()
	p, err := a.SavePet(context.Background(), petcare.Pet{ID: id, Name: name, Species: "Dog"})
	require.NoError(t, err)
	return p
}

func testRoundTrip(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()

	pet := petcare.Pet{ID: "p1", Name: "Rex", Species: "Dog", Breed: "Beagle", DOB: dayPtr("2020-03-14"), Notes: "alérgico al pollo"}
	saved, err := a.SavePet(ctx, pet)
	require.NoError(t, err)
	assert.Equal(t, pet, saved)

	gotPet, err := a.GetPet(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, gotPet)
	assert.Equal(t, pet, *gotPet)

	product := petcare.Product{
		ID:              "pr1",
		Name:            "Flea drops",
		Type:            petcare.ProductMedicine,
		ApplicationDate: dayPtr("2024-05-01"),
		ExpiryDate:      dayPtr("2025-05-01"),
		Notes:           "aplicar en la nuca",
		PetID:           "p1",
	}
	savedProduct, err := a.SaveProduct(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "Rex", savedProduct.PetName)

	gotProduct, err := a.GetProduct(ctx, "pr1")
	require.NoError(t, err)
	require.NotNil(t, gotProduct)
	gotProduct.PetName = ""
	assert.Equal(t, product, *gotProduct)

	record := petcare.HealthRecord{
		ID:         "h1",
		Type:       petcare.HealthVaccine,
		Date:       Day("2024-04-10"),
		Dose:       "1 ml",
		ExpiryDate: dayPtr("2025-04-10"),
		Notes:      "antirrábica",
		PetID:      "p1",
	}
	_, err = a.SaveHealthRecord(ctx, record)
	require.NoError(t, err)

	gotRecord, err := a.GetHealthRecord(ctx, "h1")
	require.NoError(t, err)
	require.NotNil(t, gotRecord)
	gotRecord.PetName = ""
	assert.Equal(t, record, *gotRecord)

	appt := petcare.Appointment{
		ID:    "a1",
		Type:  "Consulta",
		Date:  Day("2024-06-02"),
		Time:  "09:30",
		Notes: "control anual",
		PetID: "p1",
	}
	_, err = a.SaveAppointment(ctx, appt)
	require.NoError(t, err)

	gotAppt, err := a.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, gotAppt)
	gotAppt.PetName = ""
	assert.Equal(t, appt, *gotAppt)
}

func testUpsert(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	mustSavePet(t, a, "p1", "Rex")

	_, err := a.SavePet(ctx, petcare.Pet{ID: "p1", Name: "Rex II", Species: "Dog"})
	require.NoError(t, err)

	pets, err := a.ListPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Rex II", pets[0].Name)

	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Shampoo", Type: petcare.ProductHygiene})
	require.NoError(t, err)
	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Shampoo neutro", Type: petcare.ProductHygiene, PetID: "p1"})
	require.NoError(t, err)

	products, err := a.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Shampoo neutro", products[0].Name)
	assert.Equal(t, "p1", products[0].PetID)

	for i := 0; i < 2; i++ {
		_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a1", Type: "Banho", Date: Day("2024-07-01"), Time: fmt.Sprintf("1%d:00", i)})
		require.NoError(t, err)
	}
	appts, err := a.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, "11:00", appts[0].Time)
}

func testUpsertKeepsPosition(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	for _, id := range []string{"p1", "p2", "p3"} {
		mustSavePet(t, a, id, "pet "+id)
	}
	_, err := a.SavePet(ctx, petcare.Pet{ID: "p1", Name: "renamed", Species: "Cat"})
	require.NoError(t, err)

	pets, err := a.ListPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{pets[0].ID, pets[1].ID, pets[2].ID})
	assert.Equal(t, "renamed", pets[0].Name)
}

func testDeleteIdempotent(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	mustSavePet(t, a, "p1", "Rex")

	_, err := a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Ração", Type: petcare.ProductFood, PetID: "p1"})
	require.NoError(t, err)
	_, err = a.SaveHealthRecord(ctx, petcare.HealthRecord{ID: "h1", Type: petcare.HealthDeworming, Date: Day("2024-01-01"), PetID: "p1"})
	require.NoError(t, err)
	_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a1", Type: "Consulta", Date: Day("2024-01-02")})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, a.DeleteProduct(ctx, "pr1"))
		require.NoError(t, a.DeleteHealthRecord(ctx, "h1"))
		require.NoError(t, a.DeleteAppointment(ctx, "a1"))
		_, err := a.DeletePet(ctx, "p1")
		require.NoError(t, err)

		p, err := a.GetProduct(ctx, "pr1")
		require.NoError(t, err)
		assert.Nil(t, p)
		h, err := a.GetHealthRecord(ctx, "h1")
		require.NoError(t, err)
		assert.Nil(t, h)
		ap, err := a.GetAppointment(ctx, "a1")
		require.NoError(t, err)
		assert.Nil(t, ap)
		pet, err := a.GetPet(ctx, "p1")
		require.NoError(t, err)
		assert.Nil(t, pet)
	}
}

func testGetMissing(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()

	pet, err := a.GetPet(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, pet)

	pets, err := a.ListPets(ctx)
	require.NoError(t, err)
	assert.NotNil(t, pets)
	assert.Empty(t, pets)

	products, err := a.ListProductsByPet(ctx, "nope")
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func testDeletePetCascades(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	mustSavePet(t, a, "p1", "Rex")
	mustSavePet(t, a, "p2", "Mia")

	for _, petID := range []string{"p1", "p2"} {
		_, err := a.SaveProduct(ctx, petcare.Product{ID: "pr-" + petID, Name: "Coleira", Type: petcare.ProductOther, PetID: petID})
		require.NoError(t, err)
		_, err = a.SaveHealthRecord(ctx, petcare.HealthRecord{ID: "h-" + petID, Type: petcare.HealthVaccine, Date: Day("2024-02-01"), PetID: petID})
		require.NoError(t, err)
		_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a-" + petID, Type: "Vacina", Date: Day("2024-03-01"), PetID: petID})
		require.NoError(t, err)
	}
	_, err := a.SaveHealthRecord(ctx, petcare.HealthRecord{ID: "h-p1-b", Type: petcare.HealthMedication, Date: Day("2024-02-15"), PetID: "p1"})
	require.NoError(t, err)

	report, err := a.DeletePet(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, report.PetDeleted)
	assert.NoError(t, report.Err())
	assert.Equal(t, 1, report.Removed[petcare.CollectionProducts])
	assert.Equal(t, 2, report.Removed[petcare.CollectionHealthRecords])
	assert.Equal(t, 1, report.Removed[petcare.CollectionAppointments])
	assert.Equal(t, 4, report.TotalRemoved())

	pets, err := a.ListPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "p2", pets[0].ID)

	products, err := a.ListProducts(ctx)
	require.NoError(t, err)
	for _, p := range products {
		assert.NotEqual(t, "p1", p.PetID)
	}
	assert.Len(t, products, 1)

	records, err := a.ListHealthRecords(ctx)
	require.NoError(t, err)
	for _, h := range records {
		assert.NotEqual(t, "p1", h.PetID)
	}
	assert.Len(t, records, 1)

	appts, err := a.ListAppointments(ctx)
	require.NoError(t, err)
	for _, ap := range appts {
		assert.NotEqual(t, "p1", ap.PetID)
	}
	assert.Len(t, appts, 1)
}

func testDeleteMissingPet(t *testing.T, a petcare.Adapter) {
	report, err := a.DeletePet(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, report.PetDeleted)
	assert.Equal(t, "ghost", report.PetID)
	assert.Zero(t, report.TotalRemoved())
	assert.NoError(t, report.Err())
}

func testEnrichment(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	mustSavePet(t, a, "p1", "Rex")

	_, err := a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Flea drops", Type: petcare.ProductMedicine, PetID: "p1"})
	require.NoError(t, err)
	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr2", Name: "Brinquedo", Type: petcare.ProductOther})
	require.NoError(t, err)
	_, err = a.SaveHealthRecord(ctx, petcare.HealthRecord{ID: "h1", Type: petcare.HealthVaccine, Date: Day("2024-01-10"), PetID: "p1"})
	require.NoError(t, err)
	_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a1", Type: "Consulta", Date: Day("2024-01-11"), PetID: "p1"})
	require.NoError(t, err)
	_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a2", Type: "Consulta", Date: Day("2024-01-12")})
	require.NoError(t, err)

	products, err := a.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Rex", products[0].PetName)
	assert.Equal(t, petcare.UnknownPetName, products[1].PetName)

	p, err := a.GetProduct(ctx, "pr1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Rex", p.PetName)

	byPet, err := a.ListProductsByPet(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, byPet, 1)
	assert.Equal(t, "Rex", byPet[0].PetName)

	records, err := a.ListHealthRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Rex", records[0].PetName)

	h, err := a.GetHealthRecord(ctx, "h1")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Rex", h.PetName)

	appts, err := a.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "Rex", appts[0].PetName)
	assert.Equal(t, petcare.UnknownPetName, appts[1].PetName)

	ranged, err := a.ListAppointmentsByDateRange(ctx, Day("2024-01-01"), Day("2024-01-31"))
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "Rex", ranged[0].PetName)
}

func testEnrichmentFollowsRename(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	mustSavePet(t, a, "p1", "Rex")
	_, err := a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Flea drops", Type: petcare.ProductMedicine, PetID: "p1"})
	require.NoError(t, err)

	mustSavePet(t, a, "p1", "Rex Jr")

	p, err := a.GetProduct(ctx, "pr1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Rex Jr", p.PetName)
}

func testCreationRequiresExistingPet(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()

	_, err := a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Flea drops", Type: petcare.ProductMedicine, PetID: "ghost"})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.SaveHealthRecord(ctx, petcare.HealthRecord{ID: "h1", Type: petcare.HealthVaccine, Date: Day("2024-01-01"), PetID: "ghost"})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a1", Type: "Consulta", Date: Day("2024-01-01"), PetID: "ghost"})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	products, err := a.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	// reasignar a una mascota inexistente también se rechaza
	mustSavePet(t, a, "p1", "Rex")
	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr2", Name: "Shampoo", Type: petcare.ProductHygiene, PetID: "p1"})
	require.NoError(t, err)
	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr2", Name: "Shampoo", Type: petcare.ProductHygiene, PetID: "ghost"})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	got, err := a.GetProduct(ctx, "pr2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.PetID)
}

func testListByPet(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	mustSavePet(t, a, "p1", "Rex")
	mustSavePet(t, a, "p2", "Mia")

	for i, petID := range []string{"p1", "p2", "p1"} {
		id := fmt.Sprintf("%d", i)
		_, err := a.SaveProduct(ctx, petcare.Product{ID: "pr" + id, Name: "x", Type: petcare.ProductFood, PetID: petID})
		require.NoError(t, err)
		_, err = a.SaveHealthRecord(ctx, petcare.HealthRecord{ID: "h" + id, Type: petcare.HealthVaccine, Date: Day("2024-01-01"), PetID: petID})
		require.NoError(t, err)
		_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a" + id, Type: "Consulta", Date: Day("2024-01-01"), PetID: petID})
		require.NoError(t, err)
	}

	products, err := a.ListProductsByPet(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "pr0", products[0].ID)
	assert.Equal(t, "pr2", products[1].ID)

	records, err := a.ListHealthRecordsByPet(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "h1", records[0].ID)
	assert.Equal(t, "Mia", records[0].PetName)

	appts, err := a.ListAppointmentsByPet(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "a0", appts[0].ID)
	assert.Equal(t, "a2", appts[1].ID)
}

func testDateRange(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	for _, d := range []string{"2024-05-01", "2024-05-10", "2024-05-15", "2024-05-20", "2024-05-21"} {
		_, err := a.SaveAppointment(ctx, petcare.Appointment{ID: "a-" + d, Type: "Consulta", Date: Day(d)})
		require.NoError(t, err)
	}

	got, err := a.ListAppointmentsByDateRange(ctx, Day("2024-05-10"), Day("2024-05-20"))
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, ap := range got {
		ids = append(ids, ap.ID)
	}
	assert.Equal(t, []string{"a-2024-05-10", "a-2024-05-15", "a-2024-05-20"}, ids)

	// un solo día
	got, err = a.ListAppointmentsByDateRange(ctx, Day("2024-05-21"), Day("2024-05-21"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a-2024-05-21", got[0].ID)

	// la hora de los extremos no importa
	start := time.Date(2024, 5, 10, 18, 45, 0, 0, time.UTC)
	end := time.Date(2024, 5, 10, 6, 0, 0, 0, time.UTC)
	got, err = a.ListAppointmentsByDateRange(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a-2024-05-10", got[0].ID)

	got, err = a.ListAppointmentsByDateRange(ctx, Day("2023-01-01"), Day("2023-12-31"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func testDateRangeInvalid(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()

	_, err := a.ListAppointmentsByDateRange(ctx, Day("2024-05-20"), Day("2024-05-10"))
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.ListAppointmentsByDateRange(ctx, time.Time{}, Day("2024-05-10"))
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.ListAppointmentsByDateRange(ctx, Day("2024-05-10"), time.Time{})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)
}

func testEmptyIDs(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()

	_, err := a.GetPet(ctx, "")
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)
	_, err = a.DeletePet(ctx, "   ")
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.GetProduct(ctx, "")
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)
	assert.ErrorIs(t, a.DeleteProduct(ctx, " "), petcare.ErrInvalidArgument)
	_, err = a.ListProductsByPet(ctx, "")
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.GetHealthRecord(ctx, "")
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)
	assert.ErrorIs(t, a.DeleteHealthRecord(ctx, ""), petcare.ErrInvalidArgument)
	_, err = a.ListHealthRecordsByPet(ctx, "")
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.GetAppointment(ctx, "")
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)
	assert.ErrorIs(t, a.DeleteAppointment(ctx, ""), petcare.ErrInvalidArgument)
	_, err = a.ListAppointmentsByPet(ctx, "")
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)
}

func testValidation(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()

	_, err := a.SavePet(ctx, petcare.Pet{Name: "Rex", Species: "Dog"})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)
	_, err = a.SavePet(ctx, petcare.Pet{ID: "p1", Species: "Dog"})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "x", Type: "Brinquedo"})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.SaveHealthRecord(ctx, petcare.HealthRecord{ID: "h1", Type: petcare.HealthVaccine, Date: Day("2024-01-01")})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	_, err = a.SaveAppointment(ctx, petcare.Appointment{ID: "a1", Type: "Consulta"})
	assert.ErrorIs(t, err, petcare.ErrInvalidArgument)

	pets, err := a.ListPets(ctx)
	require.NoError(t, err)
	assert.Empty(t, pets)
}

func testFreeTextTime(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()

	for i, tm := range []string{"14h30", "2:30 PM", "9:30", "depois do almoço"} {
		id := fmt.Sprintf("a%d", i)
		saved, err := a.SaveAppointment(ctx, petcare.Appointment{ID: id, Type: "Consulta", Date: Day("2024-01-01"), Time: "  " + tm + " "})
		require.NoError(t, err, tm)
		assert.Equal(t, tm, saved.Time)

		got, err := a.GetAppointment(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, tm, got.Time)
	}
}

func testConcurrentSaves(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()
	mustSavePet(t, a, "p1", "Rex")

	const n = 25
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			_, err := a.SaveProduct(gctx, petcare.Product{
				ID:    fmt.Sprintf("pr%02d", i),
				Name:  "Ração",
				Type:  petcare.ProductFood,
				PetID: "p1",
			})
			return err
		})
		g.Go(func() error {
			_, err := a.SaveAppointment(gctx, petcare.Appointment{
				ID:   fmt.Sprintf("a%02d", i),
				Type: "Consulta",
				Date: Day("2024-09-01").AddDate(0, 0, i),
			})
			return err
		})
	}
	require.NoError(t, g.Wait())

	products, err := a.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, n)

	appts, err := a.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Len(t, appts, n)
}

func testRexScenario(t *testing.T, a petcare.Adapter) {
	ctx := context.Background()

	_, err := a.SavePet(ctx, petcare.Pet{ID: "p1", Name: "Rex", Species: "Dog"})
	require.NoError(t, err)
	_, err = a.SaveProduct(ctx, petcare.Product{ID: "pr1", Name: "Flea drops", Type: petcare.ProductMedicine, PetID: "p1"})
	require.NoError(t, err)

	products, err := a.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "pr1", products[0].ID)
	assert.Equal(t, "Rex", products[0].PetName)

	_, err = a.DeletePet(ctx, "p1")
	require.NoError(t, err)

	products, err = a.ListProducts(ctx)
	require.NoError(t, err)
	for _, p := range products {
		assert.NotEqual(t, "pr1", p.ID)
	}
}
