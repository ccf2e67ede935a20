package petcare

import (
	"errors"
	"fmt"
	"sort"
)

// UnknownPetName es el placeholder para pet_id vacío o colgante.
const UnknownPetName = "Unknown Pet"

// Collection nombra cada colección tal como se direcciona en el medio de documentos.
type Collection string

const (
	CollectionPets          Collection = "pets"
	CollectionProducts      Collection = "products"
	CollectionHealthRecords Collection = "healthRecords"
	CollectionAppointments  Collection = "appointments"
)

// DependentCollections son las que referencian a Pet y se limpian en cascada, en este orden.
func DependentCollections() []Collection {
	return []Collection{CollectionProducts, CollectionHealthRecords, CollectionAppointments}
}

// PetNames es una foto id->nombre tomada al inicio de una llamada.
type PetNames map[string]string

func NewPetNames(pets []Pet) PetNames {
	out := make(PetNames, len(pets))
	for _, p := range pets {
		out[p.ID] = p.Name
	}
	return out
}

// Lookup nunca falla: sin pet o con pet inexistente devuelve UnknownPetName.
func (n PetNames) Lookup(petID string) string {
	if petID == "" {
		return UnknownPetName
	}
	if name, ok := n[petID]; ok {
		return name
	}
	return UnknownPetName
}

func (n PetNames) Has(petID string) bool {
	_, ok := n[petID]
	return ok
}

func EnrichProducts(items []Product, names PetNames) []Product {
	for i := range items {
		items[i].PetName = names.Lookup(items[i].PetID)
	}
	return items
}

func EnrichHealthRecords(items []HealthRecord, names PetNames) []HealthRecord {
	for i := range items {
		items[i].PetName = names.Lookup(items[i].PetID)
	}
	return items
}

func EnrichAppointments(items []Appointment, names PetNames) []Appointment {
	for i := range items {
		items[i].PetName = names.Lookup(items[i].PetID)
	}
	return items
}

// Keyed es cualquier registro con ID estable.
type Keyed interface {
	RecordID() string
}

// Owned es cualquier registro que referencia (débilmente) a una mascota.
type Owned interface {
	OwnerID() string
}

// FilterByPet preserva el orden de entrada y devuelve un slice no-nil.
func FilterByPet[T Owned](items []T, petID string) []T {
	out := make([]T, 0)
	for _, it := range items {
		if it.OwnerID() == petID {
			out = append(out, it)
		}
	}
	return out
}

// WithoutPet es el complemento de FilterByPet; devuelve también cuántos se quitaron.
func WithoutPet[T Owned](items []T, petID string) ([]T, int) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.OwnerID() != petID {
			out = append(out, it)
		}
	}
	return out, len(items) - len(out)
}

// FilterByDateRange se queda con las citas cuya fecha cae en r.
func FilterByDateRange(items []Appointment, r DateRange) []Appointment {
	out := make([]Appointment, 0)
	for _, a := range items {
		if r.Contains(a.Date) {
			out = append(out, a)
		}
	}
	return out
}

// CheckPetReference aplica la regla de creación: un pet_id no vacío tiene que existir
// cuando el registro se inserta o cuando cambia de mascota. previous es el pet_id guardado
// ("" si el registro es nuevo); exists indica si ya había un registro con ese id.
func CheckPetReference(what, id, petID string, exists bool, previous string, names PetNames) error {
	if petID == "" {
		return nil
	}
	if exists && previous == petID {
		return nil
	}
	if !names.Has(petID) {
		return InvalidArgument("%s %s: pet %s does not exist", what, id, petID)
	}
	return nil
}

// CascadeFailure es una limpieza de colección dependiente que no se pudo completar.
type CascadeFailure struct {
	Collection Collection
	Err        error
}

// CascadeReport describe el efecto de DeletePet sobre las colecciones dependientes.
type CascadeReport struct {
	PetID string
	// PetDeleted es false cuando la mascota ya no existía (borrado idempotente).
	PetDeleted bool
	Removed    map[Collection]int
	Failures   []CascadeFailure
}

func NewCascadeReport(petID string) CascadeReport {
	return CascadeReport{PetID: petID, Removed: map[Collection]int{}}
}

func (r *CascadeReport) Record(c Collection, removed int, err error) {
	if err != nil {
		r.Failures = append(r.Failures, CascadeFailure{Collection: c, Err: err})
		return
	}
	if r.Removed == nil {
		r.Removed = map[Collection]int{}
	}
	r.Removed[c] = removed
}

// TotalRemoved suma los registros dependientes eliminados.
func (r CascadeReport) TotalRemoved() int {
	n := 0
	for _, v := range r.Removed {
		n += v
	}
	return n
}

// Err junta las fallas de limpieza; nil si la cascada fue completa.
func (r CascadeReport) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs = append(errs, fmt.Errorf("cascade %s for pet %s: %w", f.Collection, r.PetID, f.Err))
	}
	return errors.Join(errs...)
}

// Fields resume el reporte para logging.
func (r CascadeReport) Fields() map[string]any {
	out := map[string]any{
		"pet_id":      r.PetID,
		"pet_deleted": r.PetDeleted,
	}
	keys := make([]string, 0, len(r.Removed))
	for c := range r.Removed {
		keys = append(keys, string(c))
	}
	sort.Strings(keys)
	for _, k := range keys {
		out["removed_"+k] = r.Removed[Collection(k)]
	}
	if len(r.Failures) > 0 {
		out["cascade_failures"] = len(r.Failures)
	}
	return out
}
