// internal/wire/wire.go
package wire

import (
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds everything main needs after wiring
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router
func Wiring(
	repo *repository.Repository,
	tx database.TxManager,
	config *utils.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, tx, config, m, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, m, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	r.Route("/api/v1", func(r chi.Router) {
		wireAuth(r, handler, repo, config, logger)
		wireUser(r, handler.User, repo, config, logger)
		wireCatalog(r, handler, repo, config, logger)
		wireBooking(r, handler.Booking, repo, config, logger)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	return r
}

// authenticated returns the session check every non-public route runs behind.
func authenticated(repo *repository.Repository, config *utils.Config, log *zap.Logger) func(http.Handler) http.Handler {
	return middleware.AuthSession(config.JWT.Secret, repo.Session, repo.User, log)
}
