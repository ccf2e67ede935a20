package petcare

import (
	"encoding/json"
	"time"
)

// Las fechas viajan y se persisten como "YYYY-MM-DD". Al leer se acepta también RFC3339.

type petWire struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed,omitempty"`
	DOB     string `json:"dob,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type productWire struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Type            ProductType `json:"type"`
	ApplicationDate string      `json:"application_date,omitempty"`
	ExpiryDate      string      `json:"expiry_date,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	PetID           string      `json:"pet_id,omitempty"`
	PetName         string      `json:"pet_name,omitempty"`
}

type healthRecordWire struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	Dose       string `json:"dose,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	Notes      string `json:"notes,omitempty"`
	PetID      string `json:"pet_id"`
	PetName    string `json:"pet_name,omitempty"`
}

type appointmentWire struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	Time       string `json:"time,omitempty"`
	Dose       string `json:"dose,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
	Notes      string `json:"notes,omitempty"`
	PetID      string `json:"pet_id,omitempty"`
	PetName    string `json:"pet_name,omitempty"`
}

func formatOptional(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return FormatDate(*t)
}

func formatRequired(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return FormatDate(t)
}

// parseRequired deja la fecha en cero si viene vacía; Validate decide si falta.
func parseRequired(s string) (time.Time, error) {
	t, err := ParseOptionalDate(s)
	if err != nil || t == nil {
		return time.Time{}, err
	}
	return *t, nil
}

func (p Pet) MarshalJSON() ([]byte, error) {
	return json.Marshal(petWire{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
		Breed:   p.Breed,
		DOB:     formatOptional(p.DOB),
		Notes:   p.Notes,
	})
}

func (p *Pet) UnmarshalJSON(b []byte) error {
	var w petWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	dob, err := ParseOptionalDate(w.DOB)
	if err != nil {
		return err
	}
	*p = Pet{ID: w.ID, Name: w.Name, Species: w.Species, Breed: w.Breed, DOB: dob, Notes: w.Notes}
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productWire{
		ID:              p.ID,
		Name:            p.Name,
		Type:            p.Type,
		ApplicationDate: formatOptional(p.ApplicationDate),
		ExpiryDate:      formatOptional(p.ExpiryDate),
		Notes:           p.Notes,
		PetID:           p.PetID,
		PetName:         p.PetName,
	})
}

func (p *Product) UnmarshalJSON(b []byte) error {
	var w productWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	applied, err := ParseOptionalDate(w.ApplicationDate)
	if err != nil {
		return err
	}
	expiry, err := ParseOptionalDate(w.ExpiryDate)
	if err != nil {
		return err
	}
	*p = Product{
		ID:              w.ID,
		Name:            w.Name,
		Type:            w.Type,
		ApplicationDate: applied,
		ExpiryDate:      expiry,
		Notes:           w.Notes,
		PetID:           w.PetID,
		PetName:         w.PetName,
	}
	return nil
}

func (h HealthRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(healthRecordWire{
		ID:         h.ID,
		Type:       h.Type,
		Date:       formatRequired(h.Date),
		Dose:       h.Dose,
		ExpiryDate: formatOptional(h.ExpiryDate),
		Notes:      h.Notes,
		PetID:      h.PetID,
		PetName:    h.PetName,
	})
}

func (h *HealthRecord) UnmarshalJSON(b []byte) error {
	var w healthRecordWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	date, err := parseRequired(w.Date)
	if err != nil {
		return err
	}
	expiry, err := ParseOptionalDate(w.ExpiryDate)
	if err != nil {
		return err
	}
	*h = HealthRecord{
		ID:         w.ID,
		Type:       w.Type,
		Date:       date,
		Dose:       w.Dose,
		ExpiryDate: expiry,
		Notes:      w.Notes,
		PetID:      w.PetID,
		PetName:    w.PetName,
	}
	return nil
}

func (a Appointment) MarshalJSON() ([]byte, error) {
	return json.Marshal(appointmentWire{
		ID:         a.ID,
		Type:       a.Type,
		Date:       formatRequired(a.Date),
		Time:       a.Time,
		Dose:       a.Dose,
		ExpiryDate: formatOptional(a.ExpiryDate),
		Notes:      a.Notes,
		PetID:      a.PetID,
		PetName:    a.PetName,
	})
}

func (a *Appointment) UnmarshalJSON(b []byte) error {
	var w appointmentWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	date, err := parseRequired(w.Date)
	if err != nil {
		return err
	}
	expiry, err := ParseOptionalDate(w.ExpiryDate)
	if err != nil {
		return err
	}
	*a = Appointment{
		ID:         w.ID,
		Type:       w.Type,
		Date:       date,
		Time:       w.Time,
		Dose:       w.Dose,
		ExpiryDate: expiry,
		Notes:      w.Notes,
		PetID:      w.PetID,
		PetName:    w.PetName,
	}
	return nil
}
