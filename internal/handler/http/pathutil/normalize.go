package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern maps a dynamic route to its metrics label.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns are evaluated in order, most specific first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/articles/\d+$`), Template: "/articles/:id"},
	{Pattern: regexp.MustCompile(`^/articles/\d+/products$`), Template: "/articles/:id/products"},
	{Pattern: regexp.MustCompile(`^/products/\d+$`), Template: "/products/:id"},
}

// NormalizePath converts paths carrying IDs into templates so that metric labels and
// span names stay low-cardinality. Unknown paths are returned unchanged.
//
//	NormalizePath("/articles/123")           // "/articles/:id"
//	NormalizePath("/articles/7/products")    // "/articles/:id/products"
//	NormalizePath("/products/9?x=1")         // "/products/:id"
//	NormalizePath("/health")                 // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}

// GetExpectedCardinality estimates the number of distinct path labels: templates plus
// the static routes (/articles, /products, /health, /ready, /live, /metrics, /swagger).
func GetExpectedCardinality() int {
	return len(pathPatterns) + 7
}
