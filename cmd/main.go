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

	"duckgate/backend/internal/config"
	"duckgate/backend/internal/handler"
	"duckgate/backend/internal/logger"
	"duckgate/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type cmdServe struct {
	envFile string
}

func (c *cmdServe) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duckgate",
		Short: "HTTP gateway running SQL against a local DuckDB or Parquet file",
		Long: `Description:
  Exposes POST /query, which runs the given SQL against data/vendas.parquet
  (through an in-memory DuckDB session) or, when that file is missing,
  against data/vendas.duckdb opened read-only.

  Every flag can also be set through a DUCKGATE_* environment variable,
  e.g. DUCKGATE_PARQUET_PATH.
`,
		SilenceUsage: true,
		RunE:         c.Run,
	}
	cmd.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}

	flags := cmd.Flags()
	flags.StringVar(&c.envFile, "env-file", ".env", "Optional dotenv file loaded before reading configuration")
	flags.Int("port", 8000, "Listen port")
	flags.String("data-dir", "data", "Directory holding vendas.parquet and vendas.duckdb")
	flags.String("parquet-path", "", "Parquet file path (default <data-dir>/vendas.parquet)")
	flags.String("database-path", "", "DuckDB file path (default <data-dir>/vendas.duckdb)")
	flags.Duration("query-timeout", 0, "Per-query timeout, 0 disables it")
	flags.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text or json)")
	flags.String("cors-origin", "*", "Allowed CORS origin")
	flags.Int("rate-limit", 0, "Requests per minute per client IP on /query, 0 disables it")
	flags.Int("rate-burst", 10, "Rate limiter burst size")
	flags.Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")

	return cmd
}

func (c *cmdServe) Run(cmd *cobra.Command, args []string) error {
	if c.envFile != "" {
		err := godotenv.Load(c.envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", c.envFile, err)
		}
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	engine := service.NewDuckDBClient(service.DuckDBOptions{
		ParquetPath:  cfg.ParquetPath,
		DatabasePath: cfg.DatabasePath,
		QueryTimeout: cfg.QueryTimeout,
	}, log)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.New(engine, log), cfg, log)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.With(log, logger.Ctx{
			"addr":          srv.Addr,
			"parquet_path":  cfg.ParquetPath,
			"database_path": cfg.DatabasePath,
		}).Info("Starting query gateway")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}

func main() {
	serve := cmdServe{}
	if err := serve.Command().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
