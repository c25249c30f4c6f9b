package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/muutmoku/ao-build-share/internal/config"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/handlers/buildshare/v1alpha1"
	httpv1 "github.com/muutmoku/ao-build-share/internal/handlers/http/v1"
	buildorch "github.com/muutmoku/ao-build-share/internal/orchestrators/build"
	previeworch "github.com/muutmoku/ao-build-share/internal/orchestrators/preview"
	"github.com/muutmoku/ao-build-share/internal/pkg/clock"
	catalogsvc "github.com/muutmoku/ao-build-share/internal/services/catalog"
)

const shutdownTimeout = 30 * time.Second

var refreshInterval time.Duration

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long: `Start the build share servers. Catalogs load in the background; until a slot
is loaded, enchant operations on it fail with FAILED_PRECONDITION.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().Int("grpc-port", config.DefaultGRPCPort, "gRPC server port")
	serverCmd.Flags().Int("http-port", config.DefaultHTTPPort, "HTTP server port, 0 disables the HTTP API")
	serverCmd.Flags().DurationVar(&refreshInterval, "refresh-interval", 0, "re-download all catalogs on this interval (0 disables)")
	catalogFlags(serverCmd)
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	catalogOrchestrator, closeRepo, err := newCatalogOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	snapshot := catalogOrchestrator.Snapshot()

	buildOrchestrator, err := buildorch.New(&buildorch.Config{Indexes: snapshot})
	if err != nil {
		return err
	}

	previewOrchestrator, err := previeworch.New(&previeworch.Config{
		Records:       snapshot,
		Indexes:       snapshot,
		RenderBaseURL: cfg.Preview.RenderBaseURL,
		DefaultLang:   cfg.Preview.DefaultLang,
	})
	if err != nil {
		return err
	}

	grpcHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BuildService:   buildOrchestrator,
		CatalogService: catalogOrchestrator,
		PreviewService: previewOrchestrator,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create gRPC handler")
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
	v1alpha1.RegisterBuildServiceServer(srv, grpcHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to listen on %d", cfg.Server.GRPCPort)
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "gRPC server failed")
		}
	}()

	var httpServer *http.Server
	if cfg.Server.HTTPPort != 0 {
		httpHandler, err := httpv1.NewHandler(&httpv1.HandlerConfig{
			BuildService:   buildOrchestrator,
			CatalogService: catalogOrchestrator,
			PreviewService: previewOrchestrator,
			Loaded:         snapshot.Loaded,
			Clock:          clock.New(),
		})
		if err != nil {
			srv.Stop()
			return errors.Wrap(err, "failed to create HTTP handler")
		}

		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           httpHandler.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			slog.Info("HTTP server starting", "port", cfg.Server.HTTPPort)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errChan <- errors.Wrap(err, "HTTP server failed")
			}
		}()
	}

	go func() {
		warmCatalogs(ctx, catalogOrchestrator, false)
		healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
		if refreshInterval > 0 {
			refreshCatalogs(ctx, catalogOrchestrator, refreshInterval)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")
	case err := <-errChan:
		srv.Stop()
		if httpServer != nil {
			_ = httpServer.Close() // nolint:errcheck // already failing
		}
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("HTTP shutdown incomplete", "error", err)
		}
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}

	return nil
}

// warmCatalogs loads every slot. Failed slots stay unavailable until the next refresh.
func warmCatalogs(ctx context.Context, loader catalogsvc.Service, refresh bool) {
	out, err := loader.LoadAll(ctx, &catalogsvc.LoadAllInput{Refresh: refresh})
	if err != nil {
		slog.ErrorContext(ctx, "Catalog load failed", "error", err)
		return
	}
	slog.InfoContext(ctx, "Catalogs loaded", "loaded", len(out.Loaded), "failed", len(out.Failed))
}

func refreshCatalogs(ctx context.Context, loader catalogsvc.Service, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			warmCatalogs(ctx, loader, true)
		}
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
