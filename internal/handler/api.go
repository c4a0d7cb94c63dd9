package handler

import (
	"errors"
	"net/http"

	"github.com/msomdec/userdesk/internal/domain"
	"github.com/msomdec/userdesk/internal/service"
)

// APIHandler exposes the user collection as read-only JSON.
type APIHandler struct {
	users *service.UserService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(users *service.UserService) *APIHandler {
	return &APIHandler{users: users}
}

// HandleList returns all users in insertion order.
func (h *APIHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toUserDTOs(h.users.List(r.Context())))
}

// HandleGet returns a single user by ID.
func (h *APIHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}
