package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"cryptospins/internal/app/casino"
	"cryptospins/internal/config"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(svc *casino.Service, cfg config.ServerConfig) *chi.Mux {
	handlers := NewPublicHandlers(svc)
	metricsHandlers := NewMetricsHandlers(svc, cfg.MetricsNamespace)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(APILogMiddleware())

	r.Get("/", handlers.Root())
	r.Get("/health", handlers.Health())

	r.Get("/balance/{user_id}", handlers.Balance())
	r.With(BodyCaptureMiddleware(4096)).Post("/bet", handlers.PlaceBet())
	r.Get("/bet/{bet_id}", handlers.Bet())
	r.Get("/stats", handlers.Stats())

	r.Get("/metrics", metricsHandlers.Metrics())
	r.Get("/debug/vars", expvar.Handler().ServeHTTP)

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
