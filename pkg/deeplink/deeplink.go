// Package deeplink parses the vibeflip:// URIs the widget uses to call
// back into the app.
package deeplink

import (
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the custom URI scheme the widget links under.
const Scheme = "vibeflip"

// Route is a recognized deep-link destination.
type Route string

const (
	// RouteReveal asks the app to trigger today's interactive reveal.
	RouteReveal Route = "reveal"
	// RouteHome asks the app to open on the home surface.
	RouteHome Route = "home"
)

// Parse resolves a raw URI to a route. Only the two recognized routes
// are accepted.
func Parse(raw string) (Route, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("deeplink: parse %q: %w", raw, err)
	}
	if u.Scheme != Scheme {
		return "", fmt.Errorf("deeplink: unrecognized scheme %q", u.Scheme)
	}
	// Both vibeflip://reveal and vibeflip:reveal forms resolve.
	host := u.Host
	if host == "" {
		host = strings.Trim(u.Opaque+u.Path, "/")
	}
	switch Route(host) {
	case RouteReveal:
		return RouteReveal, nil
	case RouteHome:
		return RouteHome, nil
	}
	return "", fmt.Errorf("deeplink: unrecognized route %q", host)
}

// URL renders the canonical URI for a route.
func URL(r Route) string {
	return fmt.Sprintf("%s://%s", Scheme, r)
}
