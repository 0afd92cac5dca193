package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/api-sage/currency-converter/internal/adapter/cache"
	"github.com/api-sage/currency-converter/internal/adapter/feed"
	"github.com/api-sage/currency-converter/internal/adapter/http/controller"
	"github.com/api-sage/currency-converter/internal/adapter/http/middleware"
	"github.com/api-sage/currency-converter/internal/adapter/http/router"
	"github.com/api-sage/currency-converter/internal/config"
	"github.com/api-sage/currency-converter/internal/logger"
	"github.com/api-sage/currency-converter/internal/usecase/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	feedClient := feed.NewClient(cfg.FeedURL, cfg.FeedTimeout)

	var rateCache cache.RateCache
	if cfg.RedisAddr != "" {
		rateCache = cache.NewRedisCache(cfg.RedisAddr, "", 0)
	} else {
		rateCache = cache.NewMemoryCache()
	}

	rateService := services.NewRateService(feedClient, rateCache, cfg.CacheTTL)

	if cfg.RefreshSchedule != "" {
		refresher, err := services.NewRefresher(rateService, cfg.RefreshSchedule)
		if err != nil {
			log.Fatalf("invalid refresh schedule: %v", err)
		}
		refresher.Start()
		defer refresher.Stop()
	}

	mux := router.New(
		controller.NewRateController(rateService),
		controller.NewStaticController(cfg.WebRoot),
	)
	handler := middleware.RequestLog()(mux)

	logger.Info("server starting", logger.Fields{
		"port":    cfg.Port,
		"webRoot": cfg.WebRoot,
		"feedURL": cfg.FeedURL,
	})

	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
