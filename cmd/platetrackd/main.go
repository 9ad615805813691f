package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	platev1 "github.com/autocare/platetrack/gen/plate/v1"
	"github.com/autocare/platetrack/internal/common"
	"github.com/autocare/platetrack/internal/detect"
	"github.com/autocare/platetrack/internal/export"
	"github.com/autocare/platetrack/internal/ocr"
	"github.com/autocare/platetrack/internal/repository"
	"github.com/autocare/platetrack/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	detector, err := buildDetector(cfg, logger)
	if err != nil {
		logger.Error("failed to build detector", "error", err)
		os.Exit(1)
	}

	imagesRepo := repository.NewSourceImageRepository(entc, logger)
	jobsRepo := repository.NewDetectionJobRepository(entc, logger)
	exporter := export.NewService(jobsRepo, imagesRepo, logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewPlateService(detector, jobsRepo, exporter, cfg.Detection.DebugDir, logger)
	platev1.RegisterPlateServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("grpc listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	go func() {
		logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	// HTTP server
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	server.NewHTTPHandler(detector, logger).Register(router)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: router,
	}
	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

func buildDetector(cfg *common.Config, logger *slog.Logger) (*detect.Detector, error) {
	engine := ocr.NewEngine(ocr.Config{
		Tesseract:   cfg.Detection.Tesseract,
		Lang:        cfg.Detection.TesseractLang,
		TessdataDir: cfg.Detection.TessdataDir,
	}, logger)

	opts := []detect.DetectorOption{
		detect.WithMinConfidence(cfg.Detection.MinConfidence),
	}
	if cfg.Detection.ProfilesFile != "" {
		fileOpts, err := detect.LoadProfilesFile(cfg.Detection.ProfilesFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fileOpts...)
	}
	return detect.NewDetector(engine, logger, opts...), nil
}
