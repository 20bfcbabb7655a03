package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"rug-radar/internal/advisor"
	"rug-radar/internal/config"
	"rug-radar/internal/provider"
	"rug-radar/internal/riskengine"
	"rug-radar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := stubServerDeps()
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
}

func stubServerDeps() func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origConnectRedis := connectRedisFunc
	origInitTracer := initTracerFunc
	origNewRugcheck := newRugcheckFunc
	origNewDexScreener := newDexScreenerFunc
	origStartTelegram := startTelegramBotFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{Port: "0", AnalysisCacheSecs: 1}
	}
	connectRedisFunc = func(context.Context, string) *redis.Client { return nil }
	initTracerFunc = func(ctx context.Context) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	newRugcheckFunc = func(trace.Tracer, string) riskengine.HolderFetcher { return stubHolder{} }
	newDexScreenerFunc = func(trace.Tracer, string) riskengine.MarketFetcher { return stubMarket{} }
	startTelegramBotFunc = func(*service.AnalysisService, *advisor.AdvisorService) {}
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) {}
	startHTTPServerFunc = func(*http.Server) error { return http.ErrServerClosed }
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		connectRedisFunc = origConnectRedis
		initTracerFunc = origInitTracer
		newRugcheckFunc = origNewRugcheck
		newDexScreenerFunc = origNewDexScreener
		startTelegramBotFunc = origStartTelegram
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
	}
}

type stubHolder struct{}

func (stubHolder) FetchReport(ctx context.Context, mint string) (*provider.HolderReport, error) {
	return &provider.HolderReport{Mint: mint}, nil
}

type stubMarket struct{}

func (stubMarket) FetchMarketData(ctx context.Context, mint string) (*provider.MarketReport, error) {
	return &provider.MarketReport{Mint: mint}, nil
}
