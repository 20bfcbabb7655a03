package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rug-radar/internal/advisor"
	"rug-radar/internal/bot"
	"rug-radar/internal/cache"
	"rug-radar/internal/config"
	"rug-radar/internal/handler"
	"rug-radar/internal/provider"
	"rug-radar/internal/riskengine"
	"rug-radar/internal/service"
	"rug-radar/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "rug-radar/docs"
)

var (
	loadEnvFunc      = godotenv.Load
	loadConfigFunc   = config.Load
	connectRedisFunc = cache.Connect
	initTracerFunc   = tracing.InitTracer
	newRugcheckFunc  = func(tracer trace.Tracer, baseURL string) riskengine.HolderFetcher {
		return provider.NewRugcheckProvider(tracer).WithBaseURL(baseURL)
	}
	newDexScreenerFunc = func(tracer trace.Tracer, baseURL string) riskengine.MarketFetcher {
		return provider.NewDexScreenerProvider(tracer).WithBaseURL(baseURL)
	}
	newEngineFunc          = riskengine.New
	newAnalysisServiceFunc = service.NewAnalysisService
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Rug Radar API
// @version         1.0
// @description     Rug pull risk scoring for Solana tokens.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := connectRedisFunc(ctx, cfg.RedisURL)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	holderProvider := newRugcheckFunc(tracer, cfg.RugcheckBaseURL)
	marketProvider := newDexScreenerFunc(tracer, cfg.DexScreenerBaseURL)
	engine := newEngineFunc(holderProvider, marketProvider, riskengine.DefaultScoring(), tracer)

	var redisIface service.RedisClient
	if redisClient != nil {
		redisIface = redisClient
	}
	analysisService := newAnalysisServiceFunc(
		tracer, engine, redisIface,
		time.Duration(cfg.AnalysisCacheSecs)*time.Second,
	)

	var advisorService *advisor.AdvisorService
	if cfg.OpenAIAPIKey != "" {
		llm := advisor.NewOpenAIClient(cfg.OpenAIAPIKey)
		advisorService = advisor.NewAdvisorService(tracer, llm, analysisService, cfg.OpenAIModel)
	}

	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(analysisService, advisorService)

	h := newHandlerFunc(tracer, analysisService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("rug-radar"))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
