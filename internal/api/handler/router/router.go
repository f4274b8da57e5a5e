package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithNotFound troca a resposta padrão de rota inexistente do httprouter
	WithNotFound = func(handler http.Handler) ConfigRouter {
		return func(router *Router) {
			router.router.NotFound = handler
		}
	}

	WithMethodNotAllowed = func(handler http.Handler) ConfigRouter {
		return func(router *Router) {
			router.router.HandleMethodNotAllowed = true
			router.router.MethodNotAllowed = handler
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}
	// OPTIONS é respondido pelo middleware de CORS
	router.router.HandleOPTIONS = false

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas, envolvendo cada handler nos middlewares da própria rota.
// O primeiro middleware da lista é o mais externo.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
