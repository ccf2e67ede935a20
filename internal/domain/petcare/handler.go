package petcare

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pet-care-records/internal/platform/logger"
)

// routes es lo que comparten los handlers: el store (la facade en producción) y el logger.
type routes struct {
	store Adapter
	log   logger.Logger
}

func RegisterRoutes(r chi.Router, store Adapter, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}
	rt := &routes{store: store, log: log}

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(rt))
		pr.Post("/", createPetHandler(rt))
		pr.Get("/{petID}", getPetHandler(rt))
		pr.Put("/{petID}", savePetHandler(rt))
		pr.Delete("/{petID}", deletePetHandler(rt))

		// Colecciones dependientes filtradas por mascota
		pr.Get("/{petID}/products", listProductsByPetHandler(rt))
		pr.Get("/{petID}/health-records", listHealthRecordsByPetHandler(rt))
		pr.Get("/{petID}/appointments", listAppointmentsByPetHandler(rt))
	})

	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(rt))
		pr.Post("/", createProductHandler(rt))
		pr.Get("/{productID}", getProductHandler(rt))
		pr.Put("/{productID}", saveProductHandler(rt))
		pr.Delete("/{productID}", deleteProductHandler(rt))
	})

	r.Route("/health-records", func(hr chi.Router) {
		hr.Get("/", listHealthRecordsHandler(rt))
		hr.Post("/", createHealthRecordHandler(rt))
		hr.Get("/{recordID}", getHealthRecordHandler(rt))
		hr.Put("/{recordID}", saveHealthRecordHandler(rt))
		hr.Delete("/{recordID}", deleteHealthRecordHandler(rt))
	})

	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(rt))
		ar.Post("/", createAppointmentHandler(rt))
		ar.Get("/{appointmentID}", getAppointmentHandler(rt))
		ar.Put("/{appointmentID}", saveAppointmentHandler(rt))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(rt))
	})
}

// writeError traduce los errores tipados a status HTTP.
func (rt *routes) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrStorageUnavailable):
		rt.log.Error("storage unavailable", map[string]any{"path": r.URL.Path, "error": err.Error()})
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
	default:
		rt.log.Error("unexpected error", map[string]any{"path": r.URL.Path, "error": err.Error()})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// decodeBody distingue JSON roto de fechas mal formadas; ambos son 400.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return false
		}
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

func notFound(w http.ResponseWriter, what string) {
	http.Error(w, what+" not found", http.StatusNotFound)
}

func pathID(r *http.Request, key string) string {
	return strings.TrimSpace(chi.URLParam(r, key))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
