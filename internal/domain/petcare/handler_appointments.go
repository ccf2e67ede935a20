package petcare

import (
	"net/http"
	"strings"
)

// listAppointmentsHandler godoc
// @Summary Listar citas
// @Description Con from y to (YYYY-MM-DD) filtra por fecha, ambos extremos incluidos. Hay que mandar los dos o ninguno.
// @Tags appointments
// @Produce json
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Success 200 {array} Appointment
// @Failure 400 {string} string "rango inválido"
// @Router /appointments [get]
func listAppointmentsHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from := strings.TrimSpace(q.Get("from"))
		to := strings.TrimSpace(q.Get("to"))

		if from == "" && to == "" {
			items, err := rt.store.ListAppointments(r.Context())
			if err != nil {
				rt.writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, items)
			return
		}

		if from == "" || to == "" {
			http.Error(w, "from and to must be sent together", http.StatusBadRequest)
			return
		}
		start, err := ParseDate(from)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		end, err := ParseDate(to)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}

		items, err := rt.store.ListAppointmentsByDateRange(r.Context(), start, end)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createAppointmentHandler godoc
// @Summary Agendar cita
// @Description date en YYYY-MM-DD, time opcional (texto libre). pet_id, si viene, tiene que existir.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body Appointment true "Datos de la cita"
// @Success 201 {object} Appointment
// @Failure 400 {string} string "invalid json / campos requeridos / pet inexistente"
// @Router /appointments [post]
func createAppointmentHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a Appointment
		if !decodeBody(w, r, &a) {
			return
		}
		a.ID = NewID(KindAppointment)

		saved, err := rt.store.SaveAppointment(r.Context(), a)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, saved)
	}
}

// @Summary Obtener cita
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Success 200 {object} Appointment
// @Failure 404 {string} string "appointment not found"
// @Router /appointments/{appointmentID} [get]
func getAppointmentHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := rt.store.GetAppointment(r.Context(), pathID(r, "appointmentID"))
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		if a == nil {
			notFound(w, "appointment")
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// @Summary Crear o reemplazar cita
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID de la cita"
// @Param payload body Appointment true "Datos de la cita"
// @Success 200 {object} Appointment
// @Router /appointments/{appointmentID} [put]
func saveAppointmentHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a Appointment
		if !decodeBody(w, r, &a) {
			return
		}
		a.ID = pathID(r, "appointmentID")

		saved, err := rt.store.SaveAppointment(r.Context(), a)
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// @Summary Cancelar (borrar) cita
// @Tags appointments
// @Param appointmentID path string true "ID de la cita"
// @Success 204
// @Router /appointments/{appointmentID} [delete]
func deleteAppointmentHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := rt.store.DeleteAppointment(r.Context(), pathID(r, "appointmentID")); err != nil {
			rt.writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Listar citas de una mascota
// @Tags appointments
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Appointment
// @Router /pets/{petID}/appointments [get]
func listAppointmentsByPetHandler(rt *routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := rt.store.ListAppointmentsByPet(r.Context(), pathID(r, "petID"))
		if err != nil {
			rt.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}
