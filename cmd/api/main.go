package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"clinical-records-api/internal/adapters/storage/sqldb"
	"clinical-records-api/internal/config"
	"clinical-records-api/internal/platform/credential"
	"clinical-records-api/internal/platform/httpclient"
	"clinical-records-api/internal/platform/logger"
	"clinical-records-api/internal/router"
)

// @title Clinical Records API
// @version 1.0
// @description API de sólo lectura sobre caregivers, admisiones, pacientes y prescripciones.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "clinical-records-api",
		Short: "Read-only clinical records API over Azure SQL",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(probeCmd())
	rootCmd.AddCommand(connInfoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func probeCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check /health of a running instance (container healthcheck)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := httpclient.New(baseURL, timeout, nil)
			if err != nil {
				return err
			}
			st, err := c.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), st)
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "base URL of the API")
	cmd.Flags().DurationVar(&timeout, "timeout", 45*time.Second, "request timeout")
	return cmd
}

func connInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conninfo",
		Short: "Print the credential-free connection string derived from config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := cfg.Database().WithDefaults()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "driver: %s\n", db.Driver)
			fmt.Fprintf(out, "scope:  %s\n", db.TokenScope)
			fmt.Fprintf(out, "dsn:    %s\n", db.ConnString())
			return nil
		},
	}
}

func runServer(cfg *config.Config) error {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{
		Logger:      log,
		SeedRecords: cfg.MemorySeedRecords,
	}

	if !cfg.UseMemory() {
		chain, err := credential.NewChain(credential.ChainOptions{Interactive: cfg.Interactive()})
		if err != nil {
			return err
		}
		tokens := credential.NewProvider(chain, credential.Options{
			Cache:       cfg.TokenCacheEnabled(),
			RefreshSkew: cfg.TokenRefreshSkew,
			Logger:      log,
		})

		factory, err := sqldb.NewFactory(cfg.Database(), tokens, sqldb.WithLogger(log))
		if err != nil {
			return err
		}
		dbc := factory.Config()
		log.Info("sql storage configured", map[string]any{
			"driver":   dbc.Driver,
			"server":   dbc.Server,
			"database": dbc.Database,
			"schema":   dbc.Schema,
		})

		opts.Repos = router.Repositories{
			Caregivers:    sqldb.NewCaregiversRepo(factory),
			Admissions:    sqldb.NewAdmissionsRepo(factory),
			Patients:      sqldb.NewPatientsRepo(factory),
			Prescriptions: sqldb.NewPrescriptionsRepo(factory),
		}
		opts.Health = factory
		opts.HealthTimeout = dbc.ConnectionTimeout + 5*time.Second
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		// El handshake con token puede tardar hasta el timeout de conexión.
		WriteTimeout: 2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env, "storage": cfg.Storage})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err})
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
