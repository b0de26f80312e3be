package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "pet-adoption-api/internal/adapters/storage/memory"
	pg "pet-adoption-api/internal/adapters/storage/postgres"
	"pet-adoption-api/internal/domain/adoptions"
	"pet-adoption-api/internal/domain/donations"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory (dev/tests).
	DB *sql.DB

	// Opcional: logger de requests.
	Logger *logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Use(middleware.AuthContext)

	// Liveness en texto plano, fuera del prefijo /api.
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pet adoption server is running"))
	})

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	var (
		userRepo     users.Repository
		petRepo      pets.Repository
		adoptionRepo adoptions.Repository
		donationRepo donations.Repository
	)

	if db != nil {
		userRepo = pg.NewUsersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		adoptionRepo = pg.NewAdoptionsRepo(db)
		donationRepo = pg.NewDonationsRepo(db)
	} else {
		userRepo = mem.NewUsersRepo()
		petRepo = mem.NewPetsRepo()
		adoptionRepo = mem.NewAdoptionsRepo()
		donationRepo = mem.NewDonationsRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo)
	petsSvc := pets.NewService(petRepo)
	adoptionsSvc := adoptions.NewService(adoptionRepo)
	donationsSvc := donations.NewService(donationRepo)

	// Guard único para rutas admin; el allow-list vive en los RegisterRoutes.
	adminOnly := middleware.RequireAdmin(usersSvc)

	r.Route("/api", func(api chi.Router) {
		users.RegisterRoutes(api, usersSvc, adminOnly)
		pets.RegisterRoutes(api, petsSvc)
		adoptions.RegisterRoutes(api, adoptionsSvc)
		donations.RegisterRoutes(api, donationsSvc)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
