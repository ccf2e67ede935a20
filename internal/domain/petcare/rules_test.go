package petcare

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPetNames_Lookup(t *testing.T) {
	names := NewPetNames([]Pet{{ID: "p1", Name: "Rex"}, {ID: "p2", Name: "Mia"}})

	assert.Equal(t, "Rex", names.Lookup("p1"))
	assert.Equal(t, UnknownPetName, names.Lookup(""))
	assert.Equal(t, UnknownPetName, names.Lookup("ghost"))
	assert.True(t, names.Has("p2"))
	assert.False(t, names.Has("ghost"))
}

func TestEnrich(t *testing.T) {
	names := NewPetNames([]Pet{{ID: "p1", Name: "Rex"}})

	products := EnrichProducts([]Product{{ID: "a", PetID: "p1"}, {ID: "b"}}, names)
	assert.Equal(t, "Rex", products[0].PetName)
	assert.Equal(t, UnknownPetName, products[1].PetName)

	records := EnrichHealthRecords([]HealthRecord{{ID: "h", PetID: "gone"}}, names)
	assert.Equal(t, UnknownPetName, records[0].PetName)

	appts := EnrichAppointments([]Appointment{{ID: "x", PetID: "p1"}}, names)
	assert.Equal(t, "Rex", appts[0].PetName)
}

func TestFilterByPet_KeepsOrder(t *testing.T) {
	items := []Product{{ID: "1", PetID: "a"}, {ID: "2", PetID: "b"}, {ID: "3", PetID: "a"}}

	got := FilterByPet(items, "a")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	none := FilterByPet(items, "zzz")
	assert.NotNil(t, none)
	assert.Empty(t, none)

	kept, removed := WithoutPet(items, "a")
	assert.Equal(t, 2, removed)
	require.Len(t, kept, 1)
	assert.Equal(t, "2", kept[0].ID)
}

func TestCheckPetReference(t *testing.T) {
	names := NewPetNames([]Pet{{ID: "p1", Name: "Rex"}})

	tests := []struct {
		name     string
		petID    string
		exists   bool
		previous string
		wantErr  bool
	}{
		{"sin mascota", "", false, "", false},
		{"alta con mascota existente", "p1", false, "", false},
		{"alta con mascota inexistente", "ghost", false, "", true},
		{"update sin cambio de mascota colgante", "ghost", true, "ghost", false},
		{"update que cambia a inexistente", "ghost", true, "p1", true},
		{"update que cambia a existente", "p1", true, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPetReference("product", "pr1", tt.petID, tt.exists, tt.previous, names)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCascadeReport(t *testing.T) {
	r := NewCascadeReport("p1")
	r.PetDeleted = true
	r.Record(CollectionProducts, 2, nil)
	r.Record(CollectionHealthRecords, 0, Unavailable("write healthRecords", errors.New("disk full")))
	r.Record(CollectionAppointments, 1, nil)

	assert.Equal(t, 3, r.TotalRemoved())
	require.Len(t, r.Failures, 1)

	err := r.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "healthRecords")

	f := r.Fields()
	assert.Equal(t, "p1", f["pet_id"])
	assert.Equal(t, 2, f["removed_products"])
	assert.Equal(t, 1, f["cascade_failures"])

	assert.NoError(t, NewCascadeReport("p2").Err())
}

func TestDateRange(t *testing.T) {
	r, err := NewDateRange(day("2024-05-10"), day("2024-05-20"))
	require.NoError(t, err)

	assert.True(t, r.Contains(day("2024-05-10")))
	assert.True(t, r.Contains(day("2024-05-20")))
	assert.True(t, r.Contains(time.Date(2024, 5, 20, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(day("2024-05-09")))
	assert.False(t, r.Contains(day("2024-05-21")))

	_, err = NewDateRange(day("2024-05-21"), day("2024-05-20"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewDateRange(time.Time{}, day("2024-05-20"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, day("2024-05-01"), d)

	d, err = ParseDate("2024-05-01T23:10:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, day("2024-05-01"), d)

	_, err = ParseDate("01/05/2024")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	p, err := ParseOptionalDate("  ")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNormalize(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	dob := time.Date(2020, 3, 14, 21, 0, 0, 0, loc)

	p := Pet{ID: " p1 ", Name: " Rex ", Species: "Dog", DOB: &dob}.Normalize()
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Rex", p.Name)
	require.NotNil(t, p.DOB)
	assert.Equal(t, day("2020-03-14"), *p.DOB)

	pr := Product{ID: "pr1", PetName: "stale"}.Normalize()
	assert.Empty(t, pr.PetName)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Pet{ID: "p1", Name: "Rex", Species: "Dog"}.Validate())
	assert.ErrorIs(t, Pet{ID: "p1", Name: "Rex"}.Validate(), ErrInvalidArgument)

	for _, pt := range ProductTypes() {
		assert.NoError(t, Product{ID: "x", Name: "y", Type: pt}.Validate())
	}
	assert.ErrorIs(t, Product{ID: "x", Name: "y", Type: "Brinquedo"}.Validate(), ErrInvalidArgument)

	assert.ErrorIs(t, HealthRecord{ID: "h", Type: "Vacina", Date: day("2024-01-01")}.Validate(), ErrInvalidArgument)
	assert.NoError(t, HealthRecord{ID: "h", Type: "Vacina", Date: day("2024-01-01"), PetID: "p1"}.Validate())

	assert.NoError(t, Appointment{ID: "a", Type: "Consulta", Date: day("2024-01-01"), Time: "08:15"}.Validate())
	for _, tm := range []string{"8h", "14h30", "2:30 PM", "de tarde"} {
		assert.NoError(t, Appointment{ID: "a", Type: "Consulta", Date: day("2024-01-01"), Time: tm}.Validate(), tm)
	}
}

func TestJSON_DatesAsCalendarDays(t *testing.T) {
	exp := day("2025-01-31")
	h := HealthRecord{ID: "h1", Type: "Vacina", Date: day("2024-01-31"), ExpiryDate: &exp, PetID: "p1", PetName: "Rex"}

	raw, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"h1","type":"Vacina","date":"2024-01-31","expiry_date":"2025-01-31","pet_id":"p1","pet_name":"Rex"}`, string(raw))

	var back HealthRecord
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, h, back)

	var bad Appointment
	err = json.Unmarshal([]byte(`{"id":"a1","type":"Consulta","date":"31/01/2024"}`), &bad)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("read pets", cause)

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "read pets")

	inv := InvalidArgument("pet id required")
	assert.Same(t, inv, Unavailable("save", inv))
	assert.Nil(t, Unavailable("noop", nil))
}

func TestNewID(t *testing.T) {
	a := NewID(KindPet)
	b := NewID(KindPet)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^pet_[0-9a-f-]{36}$`, a)
}
