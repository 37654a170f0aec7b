package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config()
	cfg.logger.Debug("configuration loaded")

	mux := http.NewServeMux()

	mux.HandleFunc("/api/forecast", cfg.handlerForecast)
	mux.HandleFunc("/api/forecast/stream", cfg.handlerForecastStream)
	mux.HandleFunc("/api/suggest", cfg.handlerSuggest)
	mux.HandleFunc("/api/resolve", cfg.handlerResolve)
	mux.HandleFunc("/api/config", cfg.handlerConfig)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", widgetPageHandler())

	handler := cfg.requestIDMiddleware(metricsMiddleware(corsMiddleware(mux)))

	server := &http.Server{
		Addr:    ":" + cfg.port,
		Handler: handler,
	}

	cfg.logger.Info("starting server", "port", cfg.port, "models", len(cfg.fallbackModels))
	err := server.ListenAndServe()
	if err != nil {
		cfg.logger.Error("server startup failed", "error", err)
		os.Exit(1)
	}
}
