package petcare

import (
	"net/http"
)

// @Summary Listar registros de salud
// @Tags health-records
// @Produce json
// @Success 200 {array} HealthRecord
// @Router /health-records [get]
func listHealthRecordsHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := rt.store.ListHealthRecords(r.Context())
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createHealthRecordHandler godoc
// @Summary Crear registro de salud
// @Description pet_id es obligatorio y tiene que existir. date en formato YYYY-MM-DD.
// @Tags health-records
// @Accept json
// @Produce json
// @Param payload body HealthRecord true "Datos del registro"
// @Success 201 {object} HealthRecord
// @Failure 400 {string} string "invalid json / campos requeridos / pet inexistente"
// @Router /health-records [post]
func createHealthRecordHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var h HealthRecord
		if !decodeBody(w, r, &h) {
			return
		}
		h.ID = NewID(KindHealth)

		saved, err := rt.store.SaveHealthRecord(r.Context(), h)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	}
}

// @Summary Obtener registro de salud
// @Tags health-records
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} HealthRecord
// @Failure 404 {string} string "health record not found"
// @Router /health-records/{recordID} [get]
func getHealthRecordHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := rt.store.GetHealthRecord(r.Context(), pathID(r, "recordID"))
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		if h == nil {
			notFound(w, "health record")
			return
		}
		writeJSON(w, http.StatusOK, h)
	}
}

// @Summary Crear o reemplazar registro de salud
// @Tags health-records
// @Accept json
// @Produce json
// @Param recordID path string true "ID del registro"
// @Param payload body HealthRecord true "Datos del registro"
// @Success 200 {object} HealthRecord
// @Router /health-records/{recordID} [put]
func saveHealthRecordHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var h HealthRecord
		if !decodeBody(w, r, &h) {
			return
		}
		h.ID = pathID(r, "recordID")

		saved, err := rt.store.SaveHealthRecord(r.Context(), h)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// @Summary Borrar registro de salud
// @Tags health-records
// @Param recordID path string true "ID del registro"
// @Success 204
// @Router /health-records/{recordID} [delete]
func deleteHealthRecordHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := rt.store.DeleteHealthRecord(r.Context(), pathID(r, "recordID")); err != nil {
			rt.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Listar registros de salud de una mascota
// @Tags health-records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} HealthRecord
// @Router /pets/{petID}/health-records [get]
func listHealthRecordsByPetHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := rt.store.ListHealthRecordsByPet(r.Context(), pathID(r, "petID"))
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}
