package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "clinical-records-api/docs"
	mem "clinical-records-api/internal/adapters/storage/memory"
	"clinical-records-api/internal/domain/admissions"
	"clinical-records-api/internal/domain/caregivers"
	"clinical-records-api/internal/domain/patients"
	"clinical-records-api/internal/domain/prescriptions"
	"clinical-records-api/internal/middleware"
	"clinical-records-api/internal/platform/logger"
	"clinical-records-api/internal/platform/respond"
)

// Pinger lo implementa sqldb.Factory.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Repositories struct {
	Caregivers    caregivers.Repository
	Admissions    admissions.Repository
	Patients      patients.Repository
	Prescriptions prescriptions.Repository
}

func (r Repositories) complete() bool {
	return r.Caregivers != nil && r.Admissions != nil && r.Patients != nil && r.Prescriptions != nil
}

type Options struct {
	Logger logger.Logger

	// Opcional: si faltan repos se usa storage en memoria con datos de demo.
	Repos Repositories
	// Health hace ping a la base; nil responde ok sin tocar storage.
	Health Pinger

	SeedRecords int
	// HealthTimeout acota el ping; 0 deja sólo el timeout de conexión.
	HealthTimeout time.Duration
}

// MemoryRepositories arma los cuatro repos in-memory sobre un dataset generado.
func MemoryRepositories(seed uint64, n int) Repositories {
	ds := mem.Seed(seed, n)
	return Repositories{
		Caregivers:    mem.NewCaregiversRepo(ds.Caregivers),
		Admissions:    mem.NewAdmissionsRepo(ds.Admissions),
		Patients:      mem.NewPatientsRepo(ds.Patients),
		Prescriptions: mem.NewPrescriptionsRepo(ds.Prescriptions),
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("SQL DATABASE"))
	})

	r.Get("/health", healthHandler(opts.Health, opts.HealthTimeout))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	repos := opts.Repos
	if !repos.complete() {
		n := opts.SeedRecords
		if n <= 0 {
			n = 60
		}
		log.Info("using in-memory storage", map[string]any{"patients": n})
		repos = MemoryRepositories(1, n)
	}

	// Services por tipo de registro
	caregiversSvc := caregivers.NewService(repos.Caregivers)
	admissionsSvc := admissions.NewService(repos.Admissions)
	patientsSvc := patients.NewService(repos.Patients)
	prescriptionsSvc := prescriptions.NewService(repos.Prescriptions)

	caregivers.RegisterRoutes(r, caregiversSvc, log)
	admissions.RegisterRoutes(r, admissionsSvc, log)
	patients.RegisterRoutes(r, patientsSvc, log)
	prescriptions.RegisterRoutes(r, prescriptionsSvc, log)

	return r
}

func healthHandler(p Pinger, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p != nil {
			ctx := r.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			if err := p.Ping(ctx); err != nil {
				respond.Error(w, err, "database unreachable")
				return
			}
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
