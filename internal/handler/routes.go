package handler

import (
	"net/http"

	"github.com/msomdec/userdesk/internal/config"
	"github.com/msomdec/userdesk/internal/service"
)

// Mutation endpoints share one limiter so a single client cannot flood
// the store.
const (
	mutationRatePerSecond = 5
	mutationBurst         = 20
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, users *service.UserService, rules config.Rules) {
	uh := NewUserHandler(users, rules)
	ah := NewAPIHandler(users)
	limiter := service.NewTokenBucket(mutationRatePerSecond, mutationBurst)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.HandleFunc("GET /", uh.HandleIndex)

	mux.HandleFunc("GET /users", uh.HandleList)
	mux.HandleFunc("GET /users/new", uh.HandleNewForm)
	mux.HandleFunc("GET /users/{id}/edit", uh.HandleEditForm)
	mux.HandleFunc("GET /users/{id}/delete", uh.HandleDeleteConfirm)
	mux.HandleFunc("GET /users/dialog/close", uh.HandleDialogClose)
	mux.HandleFunc("GET /users/{id}/toggle", uh.HandleToggle)
	mux.HandleFunc("GET /users/cities", uh.HandleCities)
	mux.HandleFunc("GET /users/next", uh.HandleNextPage)
	mux.HandleFunc("GET /users/prev", uh.HandlePrevPage)
	mux.HandleFunc("GET /users/page/{n}", uh.HandlePage)

	mux.Handle("POST /users", RateLimit(limiter, http.HandlerFunc(uh.HandleCreate)))
	mux.Handle("POST /users/{id}", RateLimit(limiter, http.HandlerFunc(uh.HandleUpdate)))
	mux.Handle("POST /users/{id}/delete", RateLimit(limiter, http.HandlerFunc(uh.HandleDeleteApply)))

	mux.HandleFunc("GET /api/users", ah.HandleList)
	mux.HandleFunc("GET /api/users/{id}", ah.HandleGet)
}
