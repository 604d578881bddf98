package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the rate-limit configuration for a request. Exact
// path+method matches win over prefix matches; a config path ending in "/"
// covers everything beneath it, so "/forms/" limits "/forms/validate" without
// listing each route. A nil return means the request falls back to the
// limiter's default tier.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never throttled; load balancers probe them constantly.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{
			Limit:  0,
			Window: 0,
			Burst:  0,
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") {
			if strings.HasPrefix(path, config.Path) {
				return config
			}
		}
	}

	return nil
}
