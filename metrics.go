package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// This file defines the Prometheus metrics that are exposed by the application.

// httpRequestsTotal tracks HTTP requests partitioned by the request's URL
// path, HTTP method and the resulting status code.
var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aiweather_http_requests_total",
	Help: "Total number of HTTP requests by path, method and code.",
}, []string{"path", "method", "code"})

// generationAttemptsTotal counts every text-generation attempt across the
// model fallback list. Outcome is one of ok, rate_limited or error.
var generationAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aiweather_generation_attempts_total",
	Help: "Total number of text-generation attempts by model and outcome.",
}, []string{"model", "outcome"})

// providerErrorsTotal counts failed calls to the outbound providers.
var providerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "aiweather_provider_errors_total",
	Help: "Total number of failed upstream provider calls by provider.",
}, []string{"provider"})
