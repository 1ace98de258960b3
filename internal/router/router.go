package router

import (
	"net/http"

	mem "days-since/internal/adapters/storage/memory"
	_ "days-since/internal/docs"
	"days-since/internal/domain/events"
	"days-since/internal/middleware"
	"days-since/internal/platform/logger"
	"days-since/internal/platform/metrics"
	"days-since/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, in-memory.
	Store events.Store

	Logger logger.Logger

	// Opcional: si no viene, se crea uno propio para /metrics.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Store
	if store == nil {
		store = mem.NewEventRepo()
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.InvocationID)
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := events.NewService(store, log)
	m := metrics.NewCommands(reg)

	r.Group(func(cr chi.Router) {
		cr.Use(middleware.RequireDispatcher(opts.AuthVerifier))
		cr.Use(middleware.CommunityContext)

		events.RegisterRoutes(cr, svc, log, m)
	})

	return r
}
