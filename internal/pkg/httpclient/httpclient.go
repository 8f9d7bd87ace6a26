package httpclient

import (
	"cinema-web/config"
	"net/http"

	circuit "github.com/rubyist/circuitbreaker"
	"go.elastic.co/apm/module/apmhttp"
)

const (
	TypeConsecutive = "consecutive"
	TypeRate        = "rate"
	TypeThreshold   = "threshold"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case TypeRate:
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	case TypeThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailures)
	}
}

// InitHttpClient returns the client used for every backend API call.
func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.Tracing {
		client = apmhttp.WrapClient(client)
	}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
