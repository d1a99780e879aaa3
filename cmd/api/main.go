package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"proximity-ai/internal/config"
	apihttp "proximity-ai/internal/http"
	"proximity-ai/internal/repository"
	"proximity-ai/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	responseSvc, err := buildResponseService(cfg)
	if err != nil {
		logger.Fatal("load response rules", zap.Error(err), zap.String("file", cfg.ResponseRulesFile))
	}

	if cfg.SMTP.Enabled() {
		logger.Info("smtp configured, email delivery not wired",
			zap.String("host", cfg.SMTP.Host),
			zap.Int("port", cfg.SMTP.Port),
			zap.String("recipient", cfg.SMTP.RecipientEmail),
		)
	} else {
		logger.Info("smtp not configured")
	}

	transcriptRepo := repository.NewFileTranscriptRepository(cfg.TranscriptLogPath)
	transcriptSvc := service.NewTranscriptService(logger, transcriptRepo)

	chatHandler := apihttp.NewChatHandler(logger, responseSvc)
	transcriptHandler := apihttp.NewTranscriptHandler(logger, transcriptSvc)
	staticHandler := apihttp.NewStaticHandler(logger, cfg.StaticDir, cfg.StaticIndex)
	router := apihttp.NewRouter(logger, chatHandler, transcriptHandler, staticHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           apihttp.NewHandler(router, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("static_dir", cfg.StaticDir),
		zap.String("transcript_log", transcriptRepo.Path()),
	)

	if err := runServer(ctx, server); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func buildResponseService(cfg *config.Config) (*service.ResponseService, error) {
	if cfg.ResponseRulesFile == "" {
		return service.NewDefaultResponseService(), nil
	}
	rules, fallback, err := service.LoadRules(cfg.ResponseRulesFile)
	if err != nil {
		return nil, err
	}
	return service.NewResponseService(rules, fallback), nil
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
