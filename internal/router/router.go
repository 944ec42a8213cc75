package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "vax-tracker/internal/adapters/storage/memory"
	pg "vax-tracker/internal/adapters/storage/postgres"
	_ "vax-tracker/internal/docs"
	"vax-tracker/internal/domain/admin"
	"vax-tracker/internal/domain/calendar"
	"vax-tracker/internal/domain/dashboard"
	"vax-tracker/internal/domain/pets"
	"vax-tracker/internal/domain/rabiescases"
	"vax-tracker/internal/domain/reports"
	"vax-tracker/internal/domain/session"
	"vax-tracker/internal/domain/vaccinations"
	"vax-tracker/internal/middleware"
	"vax-tracker/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil = descartar

	// Opcional: si viene, mascotas y registro diario van a Postgres. Si no, in-memory con datos demo.
	DB *sql.DB

	// Now fija el reloj de los servicios (nil = time.Now).
	Now        func() time.Time
	LoginDelay time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	var (
		petRepo pets.Repository
		logRepo vaccinations.Repository
	)
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		logRepo = pg.NewVaccinationLogRepo(opts.DB)
	} else {
		petRepo = mem.NewSeededPetRepo()
		logRepo = mem.NewSeededVaccinationLogRepo(now())
	}

	// admin primero: es el activity recorder del resto de los módulos
	adminSvc := admin.NewService(mem.NewSeededAdminRepo(), petRepo, now)

	sessionSvc := session.NewService(mem.NewSessionRepo(), session.Options{
		Recorder:   adminSvc,
		LoginDelay: opts.LoginDelay,
		Now:        now,
	})
	petsSvc := pets.NewService(petRepo, pets.Options{Recorder: adminSvc, Now: now})
	vaxSvc := vaccinations.NewService(logRepo, petsSvc, vaccinations.Options{Recorder: adminSvc, Now: now})
	casesSvc := rabiescases.NewService(mem.NewRabiesCaseRepo(), rabiescases.Options{Recorder: adminSvc, Now: now})
	calendarSvc := calendar.NewService(mem.NewSeededCalendarRepo(), calendar.Options{Recorder: adminSvc, Now: now})
	reportsSvc := reports.NewService(petRepo, now)
	dashboardSvc := dashboard.NewService(petRepo, vaxSvc, casesSvc, adminSvc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(sessionSvc))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	session.RegisterRoutes(r, sessionSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)
	pets.RegisterRoutes(r, petsSvc)
	vaccinations.RegisterRoutes(r, vaxSvc, petsSvc)
	rabiescases.RegisterRoutes(r, casesSvc)
	reports.RegisterRoutes(r, reportsSvc)
	calendar.RegisterRoutes(r, calendarSvc)
	admin.RegisterRoutes(r, adminSvc)

	return r
}
