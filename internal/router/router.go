package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "medicare-companion/internal/adapters/storage/memory"
	pg "medicare-companion/internal/adapters/storage/postgres"
	"medicare-companion/internal/domain/adherence"
	"medicare-companion/internal/domain/medications"
	"medicare-companion/internal/domain/medlogs"
	"medicare-companion/internal/domain/profiles"
	"medicare-companion/internal/middleware"
	"medicare-companion/internal/platform/logger"
	"medicare-companion/internal/platform/validation"
	"medicare-companion/internal/ports/auth"

	_ "medicare-companion/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger logger.Logger // nil = sin logs

	// Zona donde se evalúan "hoy" y las franjas horarias (nil = time.Local).
	Location *time.Location

	CORSOrigins []string

	// Límite de escrituras por usuario; RPS <= 0 lo desactiva.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	// Sin cookies: la auth viaja en el header Authorization.
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.DebugUserHeader},
			MaxAge:         300,
		}))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		profileRepo profiles.Repository
		medRepo     medications.Repository
		logRepo     medlogs.Repository
	)

	if opts.DB != nil {
		profileRepo = pg.NewProfilesRepo(opts.DB)
		medRepo = pg.NewMedicationsRepo(opts.DB)
		logRepo = pg.NewMedLogsRepo(opts.DB)
	} else {
		profileRepo = mem.NewProfileRepo()
		medRepo, logRepo = mem.NewMedicationAndLogRepos()
	}

	// Services por módulo
	profilesSvc := profiles.NewService(profileRepo)
	medsSvc := medications.NewService(medRepo)
	logsSvc := medlogs.NewService(logRepo, opts.Location)
	adherenceSvc := adherence.NewService(medsSvc, logsSvc, profilesSvc, opts.Location)

	v := validation.New()
	profiles.RegisterValidations(v)
	medications.RegisterValidations(v)

	var writeLimit func(http.Handler) http.Handler
	if opts.RateLimitRPS > 0 {
		writeLimit = middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Limit
	}

	// Rutas por módulo
	profiles.RegisterRoutes(r, profilesSvc, v)
	medications.RegisterRoutes(r, medsSvc, profilesSvc, v)
	medlogs.RegisterRoutes(r, logsSvc, medsSvc, v, log, writeLimit)
	adherence.RegisterRoutes(r, adherenceSvc)

	return r
}
