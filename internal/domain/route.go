package domain

const (
	RouteRoot     = "/"
	RouteLogin    = "/login"
	RouteChat     = "/chat"
	RouteRegister = "/register"
)

type Route struct {
	Path         string
	Name         string
	RedirectTo   string
	RequiresAuth bool
}

type Decision struct {
	Route      Route
	RedirectTo string
}

func (d Decision) Admitted() bool {
	return d.RedirectTo == ""
}

func DefaultRoutes() []Route {
	return []Route{
		{Path: RouteRoot, RedirectTo: RouteChat},
		{Path: RouteLogin, Name: "Login"},
		{Path: RouteChat, Name: "Chat", RequiresAuth: true},
		{Path: RouteRegister, Name: "Register"},
	}
}
