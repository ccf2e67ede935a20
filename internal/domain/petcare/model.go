package petcare

import (
	"strings"
	"time"
)

// ProductType define las categorías de producto soportadas.
// @Enum Medicamento, Vacina, Higiene, Alimento, Outro
type ProductType string

const (
	ProductMedicine ProductType = "Medicamento"
	ProductVaccine  ProductType = "Vacina"
	ProductHygiene  ProductType = "Higiene"
	ProductFood     ProductType = "Alimento"
	ProductOther    ProductType = "Outro"
)

// ProductTypes devuelve las categorías válidas en el orden en que se muestran.
func ProductTypes() []ProductType {
	return []ProductType{ProductMedicine, ProductVaccine, ProductHygiene, ProductFood, ProductOther}
}

func (t ProductType) Valid() bool {
	for _, v := range ProductTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Tipos sugeridos de registro de salud. El campo es libre; estos son los habituales.
const (
	HealthVaccine    = "Vacina"
	HealthDeworming  = "Vermífugo"
	HealthMedication = "Medicamento"
)

// Pet es la entidad raíz; el resto de colecciones la referencian por ID.
type Pet struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Species string     `json:"species"`
	Breed   string     `json:"breed,omitempty"`
	DOB     *time.Time `json:"dob,omitempty" format:"date"`
	Notes   string     `json:"notes,omitempty"`
}

// Product es un producto de cuidado o tienda, opcionalmente asociado a una mascota.
type Product struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            ProductType `json:"type"`
	ApplicationDate *time.Time  `json:"application_date,omitempty" format:"date"`
	ExpiryDate      *time.Time  `json:"expiry_date,omitempty" format:"date"`
	Notes           string      `json:"notes,omitempty"`
	PetID           string      `json:"pet_id,omitempty"`

	// PetName se calcula en cada lectura; nunca se persiste.
	PetName string `json:"pet_name,omitempty"`
}

// HealthRecord es una entrada del historial de salud (vacuna, vermífugo, etc.).
type HealthRecord struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Date       time.Time  `json:"date" format:"date"`
	Dose       string     `json:"dose,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty" format:"date"`
	Notes      string     `json:"notes,omitempty"`
	PetID      string     `json:"pet_id"`

	PetName string `json:"pet_name,omitempty"`
}

// Appointment es una cita agendada; Time es texto libre opcional ("09:30", "2:30 PM").
type Appointment struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Date       time.Time  `json:"date" format:"date"`
	Time       string     `json:"time,omitempty"`
	Dose       string     `json:"dose,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty" format:"date"`
	Notes      string     `json:"notes,omitempty"`
	PetID      string     `json:"pet_id,omitempty"`

	PetName string `json:"pet_name,omitempty"`
}

func (p Pet) RecordID() string          { return p.ID }
func (p Product) RecordID() string      { return p.ID }
func (h HealthRecord) RecordID() string { return h.ID }
func (a Appointment) RecordID() string  { return a.ID }

func (p Product) OwnerID() string      { return p.PetID }
func (h HealthRecord) OwnerID() string { return h.PetID }
func (a Appointment) OwnerID() string  { return a.PetID }

// Normalize recorta espacios y lleva las fechas a medianoche UTC.
// Se aplica antes de validar y persistir, así lo que devuelve Save es lo que se lee después.
func (p Pet) Normalize() Pet {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Species = strings.TrimSpace(p.Species)
	p.Breed = strings.TrimSpace(p.Breed)
	p.Notes = strings.TrimSpace(p.Notes)
	p.DOB = datePtr(p.DOB)
	return p
}

func (p Product) Normalize() Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Type = ProductType(strings.TrimSpace(string(p.Type)))
	p.Notes = strings.TrimSpace(p.Notes)
	p.PetID = strings.TrimSpace(p.PetID)
	p.ApplicationDate = datePtr(p.ApplicationDate)
	p.ExpiryDate = datePtr(p.ExpiryDate)
	p.PetName = ""
	return p
}

func (h HealthRecord) Normalize() HealthRecord {
	h.ID = strings.TrimSpace(h.ID)
	h.Type = strings.TrimSpace(h.Type)
	h.Dose = strings.TrimSpace(h.Dose)
	h.Notes = strings.TrimSpace(h.Notes)
	h.PetID = strings.TrimSpace(h.PetID)
	if !h.Date.IsZero() {
		h.Date = DateOf(h.Date)
	}
	h.ExpiryDate = datePtr(h.ExpiryDate)
	h.PetName = ""
	return h
}

func (a Appointment) Normalize() Appointment {
	a.ID = strings.TrimSpace(a.ID)
	a.Type = strings.TrimSpace(a.Type)
	a.Time = strings.TrimSpace(a.Time)
	a.Dose = strings.TrimSpace(a.Dose)
	a.Notes = strings.TrimSpace(a.Notes)
	a.PetID = strings.TrimSpace(a.PetID)
	if !a.Date.IsZero() {
		a.Date = DateOf(a.Date)
	}
	a.ExpiryDate = datePtr(a.ExpiryDate)
	a.PetName = ""
	return a
}

func (p Pet) Validate() error {
	if p.ID == "" {
		return InvalidArgument("pet id required")
	}
	if p.Name == "" {
		return InvalidArgument("pet %s: name required", p.ID)
	}
	if p.Species == "" {
		return InvalidArgument("pet %s: species required", p.ID)
	}
	return nil
}

func (p Product) Validate() error {
	if p.ID == "" {
		return InvalidArgument("product id required")
	}
	if p.Name == "" {
		return InvalidArgument("product %s: name required", p.ID)
	}
	if !p.Type.Valid() {
		return InvalidArgument("product %s: unknown type %q", p.ID, p.Type)
	}
	return nil
}

func (h HealthRecord) Validate() error {
	if h.ID == "" {
		return InvalidArgument("health record id required")
	}
	if h.Type == "" {
		return InvalidArgument("health record %s: type required", h.ID)
	}
	if h.Date.IsZero() {
		return InvalidArgument("health record %s: date required", h.ID)
	}
	if h.PetID == "" {
		return InvalidArgument("health record %s: pet_id required", h.ID)
	}
	return nil
}

func (a Appointment) Validate() error {
	if a.ID == "" {
		return InvalidArgument("appointment id required")
	}
	if a.Type == "" {
		return InvalidArgument("appointment %s: type required", a.ID)
	}
	if a.Date.IsZero() {
		return InvalidArgument("appointment %s: date required", a.ID)
	}
	return nil
}
