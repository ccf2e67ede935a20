package petcare

import (
	"github.com/google/uuid"
)

// Kind identifica la colección para la que se genera un ID.
type Kind string

const (
	KindPet         Kind = "pet"
	KindProduct     Kind = "product"
	KindHealth      Kind = "health"
	KindAppointment Kind = "appointment"
)

// NewID devuelve "<kind>_<uuid v7>"; ordenados por momento de creación.
func NewID(kind Kind) string {
	return string(kind) + "_" + uuid.Must(uuid.NewV7()).String()
}
