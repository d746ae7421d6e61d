package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	calculatorhandler "github.com/boca-banker/boca-banker/pkg/handlers/calculator"
	leadhandler "github.com/boca-banker/boca-banker/pkg/handlers/lead"
	studyhandler "github.com/boca-banker/boca-banker/pkg/handlers/study"
	bocamiddleware "github.com/boca-banker/boca-banker/pkg/server/middleware"
	studysvc "github.com/boca-banker/boca-banker/pkg/services/study"
	leadstore "github.com/boca-banker/boca-banker/pkg/store/duckdb/lead"
	studystore "github.com/boca-banker/boca-banker/pkg/store/duckdb/study"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Calculator studysvc.Calculator
	Studies    studystore.Store
	Leads      leadstore.Store
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the handlers onto a chi mux. Exposed separately from
// NewWebAPI so tests can drive the router through httptest.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	calcHandler := calculatorhandler.NewHandler()
	studyHandler := studyhandler.NewHandler(deps.Calculator, deps.Studies)
	leadHandler := leadhandler.NewHandler(deps.Leads)

	router := chi.NewRouter()

	router.Use(bocamiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/calculators/depreciation", calcHandler.CalculateDepreciation)
		r.Post("/calculators/bonus", calcHandler.CalculateBonus)
		r.Post("/calculators/npv", calcHandler.CalculateNPV)
		r.Get("/allocations/{propertyType}", calcHandler.GetAllocation)

		r.Post("/studies", studyHandler.CreateStudy)
		r.Get("/studies", studyHandler.ListStudies)
		r.Get("/studies/{studyID}", studyHandler.GetStudy)
		r.Post("/studies/{studyID}/recalculate", studyHandler.RecalculateStudy)

		r.Post("/leads/import", leadHandler.ImportLeads)
		r.Get("/leads", leadHandler.ListLeads)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
