package ratelimit

import (
	"strings"
)

// MatchRoute matches a request path and method to a route limit.
// Returns the matching RouteLimit or nil if no match is found.
// Path matching supports prefix matching (e.g., "/export/" matches "/export/job").
func MatchRoute(path string, method string, routes []RouteLimit) *RouteLimit {
	// Special case: health check endpoint is unlimited
	if path == "/health" && method == "GET" {
		return &RouteLimit{Limit: 0}
	}

	// Try exact match first
	for i := range routes {
		route := &routes[i]
		if route.Path == path && route.Method == method {
			return route
		}
	}

	// Try prefix match (for paths ending with "/")
	for i := range routes {
		route := &routes[i]
		if route.Method == method && strings.HasSuffix(route.Path, "/") && strings.HasPrefix(path, route.Path) {
			return route
		}
	}

	return nil
}
