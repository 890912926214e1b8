package web

import (
	"strings"
)

// Route is a client-side view path. Segments starting with ':' match any
// single non-empty segment.
type Route struct {
	Pattern string `json:"pattern"`
	View    string `json:"view"`
}

var Routes = []Route{
	{"/", "home"},
	{"/colours", "catalogue"},
	{"/colours/:category", "catalogue"},
	{"/product/:slug", "product"},
	{"/materials/:type", "material"},
	{"/inspiration", "inspiration"},
	{"/inspiration/:slug", "article"},
	{"/about", "about"},
	{"/contact", "contact"},
	{"/showrooms", "showrooms"},
	{"/careers", "careers"},
	{"/measuring-guide", "measuring-guide"},
	{"/design-options", "design-options"},
	{"/how-to-buy", "how-to-buy"},
	{"/installation-coverage", "installation-coverage"},
	{"/warranty", "warranty"},
	{"/finance", "finance"},
	{"/sale", "sale"},
	{"/quote", "quote"},
	{"/privacy", "privacy"},
	{"/terms", "terms"},
	{"/cookies", "cookies"},
}

// Match finds the view for path. Trailing slashes are ignored.
func Match(path string) (Route, bool) {
	segs := split(path)
	for _, r := range Routes {
		if matchSegments(split(r.Pattern), segs) {
			return r, true
		}
	}
	return Route{}, false
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func matchSegments(pattern, segs []string) bool {
	if len(pattern) != len(segs) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return false
			}
			continue
		}
		if p != segs[i] {
			return false
		}
	}
	return true
}
