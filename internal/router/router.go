package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-care-records/docs"
	"pet-care-records/internal/domain/petcare"
	"pet-care-records/internal/middleware"
	"pet-care-records/internal/platform/logger"
)

type Options struct {
	// Store es la facade de persistencia, construida una sola vez en main.
	Store petcare.Adapter

	// Logger puede ser nil (descarta todo).
	Logger logger.Logger

	// Backend se informa en /health. Opcional.
	Backend string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		msg := "ok"
		if opts.Backend != "" {
			msg += " " + opts.Backend
		}
		_, _ = w.Write([]byte(msg))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petcare.RegisterRoutes(r, opts.Store, log)

	return r
}
