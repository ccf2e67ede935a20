package petcare

import (
	"net/http"
	"sort"
)

type deletePetResponse struct {
	PetID      string         `json:"pet_id"`
	PetDeleted bool           `json:"pet_deleted"`
	Removed    map[string]int `json:"removed"`
	Failures   []string       `json:"failures,omitempty"`
}

func toDeletePetResponse(rep CascadeReport) deletePetResponse {
	out := deletePetResponse{
		PetID:      rep.PetID,
		PetDeleted: rep.PetDeleted,
		Removed:    make(map[string]int, len(rep.Removed)),
	}
	for c, n := range rep.Removed {
		out.Removed[string(c)] = n
	}
	for _, f := range rep.Failures {
		out.Failures = append(out.Failures, string(f.Collection)+": "+f.Err.Error())
	}
	sort.Strings(out.Failures)
	return out
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} Pet
// @Failure 503 {string} string "storage unavailable"
// @Router /pets [get]
func listPetsHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := rt.store.ListPets(r.Context())
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Genera el id; cualquier id del body se ignora. dob en formato YYYY-MM-DD.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body Pet true "Datos de la mascota"
// @Success 201 {object} Pet
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Router /pets [post]
func createPetHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Pet
		if !decodeBody(w, r, &p) {
			return
		}
		p.ID = NewID(KindPet)

		saved, err := rt.store.SavePet(r.Context(), p)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := rt.store.GetPet(r.Context(), pathID(r, "petID"))
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		if p == nil {
			notFound(w, "pet")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// savePetHandler godoc
// @Summary Crear o reemplazar mascota
// @Description Upsert por id; el id del path manda sobre el del body.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body Pet true "Datos de la mascota"
// @Success 200 {object} Pet
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Router /pets/{petID} [put]
func savePetHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p Pet
		if !decodeBody(w, r, &p) {
			return
		}
		p.ID = pathID(r, "petID")

		saved, err := rt.store.SavePet(r.Context(), p)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota y sus datos asociados
// @Description Idempotente. La respuesta detalla cuántos productos, registros y citas se limpiaron y qué limpiezas fallaron.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} deletePetResponse
// @Failure 503 {string} string "storage unavailable"
// @Router /pets/{petID} [delete]
func deletePetHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := rt.store.DeletePet(r.Context(), pathID(r, "petID"))
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toDeletePetResponse(rep))
	}
}
