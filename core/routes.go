package core

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// PageDataFunc produces the view-model a page template is executed with.
type PageDataFunc func(r *http.Request, params map[string]string) (any, error)

// RouteSpec is one declared entry of the site's route table.
type RouteSpec struct {
	Path     string
	Title    string
	Template string
	Data     PageDataFunc
}

type Route struct {
	Spec       RouteSpec
	URLPattern *regexp.Regexp
	ParamKeys  []string
}

// SiteRoutes is the route table. Display order is declaration order; paths
// must be unique, which compileRoutes enforces at startup.
func SiteRoutes(cfg Config) []RouteSpec {
	return []RouteSpec{
		{
			Path:     "/",
			Title:    "Home",
			Template: "home.html",
			Data:     HomePageData(cfg),
		},
	}
}

// compileRoutes turns declared paths into match patterns. Segments wrapped
// in brackets ("[slug]") become capture groups keyed by the segment name.
func compileRoutes(specs []RouteSpec) ([]Route, error) {
	seen := map[string]bool{}
	routes := make([]Route, 0, len(specs))

	for _, spec := range specs {
		clean := strings.Trim(spec.Path, "/")
		if seen[clean] {
			return nil, fmt.Errorf("duplicate route path: %q", spec.Path)
		}
		seen[clean] = true

		paramKeys := []string{}
		pattern := ""

		if clean != "" {
			for _, part := range strings.Split(clean, "/") {
				if strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") {
					paramKeys = append(paramKeys, part[1:len(part)-1])
					pattern += "/([^/]+)"
				} else {
					pattern += "/" + regexp.QuoteMeta(part)
				}
			}
		}

		regex, err := regexp.Compile("^" + strings.TrimPrefix(pattern, "/") + "$")
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", spec.Path, err)
		}

		routes = append(routes, Route{
			Spec:       spec,
			URLPattern: regex,
			ParamKeys:  paramKeys,
		})
	}

	return routes, nil
}
