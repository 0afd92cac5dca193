package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultPort = "3000"
const defaultFeedURL = "https://rate.bot.com.tw/xrt/flcsv/0/day"
const defaultFeedTimeoutSeconds = 10
const defaultCacheTTLSeconds = 300
const defaultWebRoot = "web"
const defaultAPIBaseURL = "http://localhost:3000"
const defaultRefreshIntervalSeconds = 60

type Config struct {
	// server
	Port            string
	FeedURL         string
	FeedTimeout     time.Duration
	RedisAddr       string
	CacheTTL        time.Duration
	WebRoot         string
	RefreshSchedule string

	// client
	APIBaseURL      string
	RefreshInterval time.Duration
}

func Load() (Config, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}
	if _, err := strconv.Atoi(port); err != nil {
		return Config{}, fmt.Errorf("invalid port number: %s", port)
	}

	feedURL := strings.TrimSpace(os.Getenv("FEED_URL"))
	if feedURL == "" {
		feedURL = defaultFeedURL
	}

	feedTimeout, err := secondsEnv("FEED_TIMEOUT_SECONDS", defaultFeedTimeoutSeconds)
	if err != nil {
		return Config{}, err
	}

	cacheTTL, err := secondsEnv("CACHE_TTL_SECONDS", defaultCacheTTLSeconds)
	if err != nil {
		return Config{}, err
	}

	refreshInterval, err := secondsEnv("REFRESH_INTERVAL_SECONDS", defaultRefreshIntervalSeconds)
	if err != nil {
		return Config{}, err
	}

	webRoot := strings.TrimSpace(os.Getenv("WEB_ROOT"))
	if webRoot == "" {
		webRoot = defaultWebRoot
	}

	apiBaseURL := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}

	return Config{
		Port:            port,
		FeedURL:         feedURL,
		FeedTimeout:     feedTimeout,
		RedisAddr:       strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		CacheTTL:        cacheTTL,
		WebRoot:         webRoot,
		RefreshSchedule: strings.TrimSpace(os.Getenv("REFRESH_SCHEDULE")),
		APIBaseURL:      strings.TrimRight(apiBaseURL, "/"),
		RefreshInterval: refreshInterval,
	}, nil
}

func secondsEnv(key string, fallback int) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return time.Duration(fallback) * time.Second, nil
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0, fmt.Errorf("invalid %s: %s", key, raw)
	}

	return time.Duration(seconds) * time.Second, nil
}
