package core

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
)

// APIHandlerFunc returns the value encoded as the JSON response body.
type APIHandlerFunc func(r *http.Request, params map[string]string) (any, error)

type APIRouteSpec struct {
	Path    string
	Handler APIHandlerFunc
}

type APIRoute struct {
	Spec       APIRouteSpec
	URLPattern *regexp.Regexp
	ParamKeys  []string
}

// SiteAPIRoutes lists the read-only JSON endpoints under /api/.
func SiteAPIRoutes(cfg Config) []APIRouteSpec {
	return []APIRouteSpec{
		{
			Path: "/api/services",
			Handler: func(r *http.Request, params map[string]string) (any, error) {
				return homeServices, nil
			},
		},
		{
			Path: "/api/stats",
			Handler: func(r *http.Request, params map[string]string) (any, error) {
				return homeStats, nil
			},
		},
	}
}

func compileAPIRoutes(specs []APIRouteSpec) ([]APIRoute, error) {
	routeSpecs := make([]RouteSpec, len(specs))
	for i, s := range specs {
		routeSpecs[i] = RouteSpec{Path: s.Path}
	}

	compiled, err := compileRoutes(routeSpecs)
	if err != nil {
		return nil, err
	}

	routes := make([]APIRoute, len(specs))
	for i, s := range specs {
		routes[i] = APIRoute{
			Spec:       s,
			URLPattern: compiled[i].URLPattern,
			ParamKeys:  compiled[i].ParamKeys,
		}
	}
	return routes, nil
}

func (r *Router) handleAPI(w http.ResponseWriter, req *http.Request, route APIRoute, params map[string]string) {
	result, err := route.Spec.Handler(req, params)
	if err != nil {
		if IsNotFoundError(err) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		http.Error(w, "Server error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func isAPIPath(path string) bool {
	return path == "api" || strings.HasPrefix(path, "api/")
}
