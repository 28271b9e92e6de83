package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/apigateway"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/logging"
	"github.com/spacesedan/emotion-detector/internal/scorers"
	"github.com/spacesedan/emotion-detector/internal/web"
)

// handler is built once per cold start and reused across invocations.
var handler *apigateway.Handler

func init() {
	config.LoadEnv(config.AppEnv())

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logging.InitLogger("info")
		slog.Error("[Lambda] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel)
	slog.Info("Lambda cold start: Initializing...", slog.String("backend", cfg.ScorerBackend))

	// The scorer lives for the life of the execution environment.
	scorer, _, err := scorers.New(context.Background(), cfg)
	if err != nil {
		slog.Error("[Lambda] Failed to build scorer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	home, err := web.NewHomePage()
	if err != nil {
		slog.Error("[Lambda] Failed to render home page", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handler = apigateway.NewHandler(emotion.NewDetector(scorer, cfg.ScorerTimeout), home)
	slog.Info("Initialization complete.")
}

func main() {
	lambda.Start(handler.Handle)
}
