package application

import (
	"context"
	"fmt"

	"github.com/bnema/chatline/internal/domain"
	"github.com/samber/lo"
)

type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// Navigator resolves a path against the route table and applies the
// authentication precondition of protected routes.
type Navigator struct {
	routes []domain.Route
	auth   Authenticator
}

func NewNavigator(auth Authenticator, routes []domain.Route) *Navigator {
	if routes == nil {
		routes = domain.DefaultRoutes()
	}

	return &Navigator{routes: routes, auth: auth}
}

func (n *Navigator) Routes() []domain.Route {
	return n.routes
}

func (n *Navigator) Resolve(ctx context.Context, path string) (domain.Decision, error) {
	route, err := n.lookup(path)
	if err != nil {
		return domain.Decision{}, err
	}

	authenticated := n.auth.IsAuthenticated(ctx)
	switch {
	case route.RequiresAuth && !authenticated:
		return domain.Decision{Route: route, RedirectTo: domain.RouteLogin}, nil
	case route.Path == domain.RouteLogin && authenticated:
		return domain.Decision{Route: route, RedirectTo: domain.RouteChat}, nil
	default:
		return domain.Decision{Route: route}, nil
	}
}

// lookup follows static redirects until it reaches a concrete route.
func (n *Navigator) lookup(path string) (domain.Route, error) {
	current := path
	for hops := 0; hops <= len(n.routes); hops++ {
		route, ok := lo.Find(n.routes, func(r domain.Route) bool {
			return r.Path == current
		})
		if !ok {
			return domain.Route{}, fmt.Errorf("%w: %s", domain.ErrRouteNotFound, current)
		}
		if route.RedirectTo == "" {
			return route, nil
		}
		current = route.RedirectTo
	}

	return domain.Route{}, fmt.Errorf("resolve %s: redirect loop", path)
}
