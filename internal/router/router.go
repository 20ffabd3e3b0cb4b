package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-weight-tracker/docs"
	mem "pet-weight-tracker/internal/adapters/storage/memory"
	pg "pet-weight-tracker/internal/adapters/storage/postgres"
	"pet-weight-tracker/internal/domain/pets"
	"pet-weight-tracker/internal/domain/weights"
	"pet-weight-tracker/internal/middleware"
	"pet-weight-tracker/internal/platform/logger"
)

type Options struct {
	// Si DB es nil, se usan repos in-memory (modo dev/test).
	DB *sql.DB

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		petRepo    pets.Repository
		weightRepo weights.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		weightRepo = pg.NewWeightsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		weightRepo = mem.NewWeightRepo()
	}

	// Services por módulo; weights consume el repo de pets para el
	// chequeo de existencia previo a crear/listar.
	petsSvc := pets.NewService(petRepo)
	weightsSvc := weights.NewService(weightRepo, petRepo)

	pets.RegisterRoutes(r, petsSvc, log)
	weights.RegisterRoutes(r, weightsSvc, log)

	return r
}
