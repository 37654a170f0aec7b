package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// apiConfig holds the shared dependencies of the service: the outbound
// provider clients, the model fallback list and the logger. All HTTP
// handlers are methods on this struct.
type apiConfig struct {
	geocoder       GeocodingService
	weather        WeatherService
	chat           ChatService
	fallbackModels []string
	typeInterval   time.Duration
	httpClient     *http.Client
	port           string
	devMode        bool
	logger         *slog.Logger
}

// defaultFallbackModels is the ordered list of chat models tried on
// rate-limit. The order is fixed at build time; FALLBACK_MODELS overrides it.
var defaultFallbackModels = []string{
	"tngtech/tng-r1t-chimera:free",
	"deepseek/deepseek-chat-v3-0324:free",
	"deepseek/deepseek-r1:free",
	"qwen/qwen3-235b-a22b:free",
	"meta-llama/llama-3.3-70b-instruct:free",
	"google/gemini-2.0-flash-exp:free",
}

// getRequiredEnv retrieves an environment variable by key, and fatals if it's not set.
func getRequiredEnv(key string, logger *slog.Logger) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		logger.Error("environment variable must be set", "key", key)
		os.Exit(1)
	}
	return val
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

func config() *apiConfig {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	owmKey := getRequiredEnv("OWM_API_KEY", logger)
	openRouterKey := getRequiredEnv("OPENROUTER_API_KEY", logger)

	providerTimeout := time.Duration(getEnvAsInt("PROVIDER_TIMEOUT_SEC", 10, logger)) * time.Second
	chatTimeout := time.Duration(getEnvAsInt("CHAT_TIMEOUT_SEC", 90, logger)) * time.Second
	httpClient := &http.Client{Timeout: providerTimeout}

	fallbackModels := defaultFallbackModels
	if modelsStr, ok := os.LookupEnv("FALLBACK_MODELS"); ok {
		var models []string
		for _, m := range strings.Split(modelsStr, ",") {
			if m = strings.TrimSpace(m); m != "" {
				models = append(models, m)
			}
		}
		if len(models) > 0 {
			fallbackModels = models
		} else {
			logger.Warn("FALLBACK_MODELS is set but empty, using built-in model list")
		}
	}

	typeIntervalMs := getEnvAsInt("TYPE_INTERVAL_MS", 20, logger)

	cfg := apiConfig{
		geocoder: NewOMeteoGeocodingService(
			getEnv("GEOCODE_URL", "https://geocoding-api.open-meteo.com/v1/search", logger),
			getEnv("GEOCODE_LANGUAGE", "ru", logger),
			httpClient,
		),
		weather: NewOWMWeatherService(
			getEnv("OWM_WEATHER_URL", "https://api.openweathermap.org/data/2.5/weather", logger),
			owmKey,
			httpClient,
		),
		chat: NewOpenRouterChatService(
			getEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions", logger),
			openRouterKey,
			&http.Client{Timeout: chatTimeout},
		),
		fallbackModels: fallbackModels,
		typeInterval:   time.Duration(typeIntervalMs) * time.Millisecond,
		httpClient:     httpClient,
		port:           getEnv("PORT", "8080", logger),
		devMode:        devMode,
		logger:         logger,
	}

	return &cfg
}
