package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/userdesk/internal/config"
	"github.com/msomdec/userdesk/internal/domain"
	"github.com/msomdec/userdesk/internal/refdata"
	"github.com/msomdec/userdesk/internal/service"
	"github.com/msomdec/userdesk/internal/view"
)

// UserHandler serves the user-management screen. It owns the screen's
// UI state: dialog visibility, the current edit target, the pending
// delete ID, the page index, and per-row expansion. The store is only
// ever mutated through the service; the handler just routes intents.
type UserHandler struct {
	users *service.UserService
	rules config.Rules

	mu         sync.Mutex
	page       int
	dialogOpen bool
	editID     string
	pendingDel string
	expanded   map[string]bool
}

// NewUserHandler creates a UserHandler with a closed dialog and no
// expanded rows.
func NewUserHandler(users *service.UserService, rules config.Rules) *UserHandler {
	return &UserHandler{
		users:    users,
		rules:    rules,
		expanded: make(map[string]bool),
	}
}

// HandleIndex redirects the root path to the user screen.
func (h *UserHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleList renders the full page, reflecting whatever UI state the
// screen currently holds: the open dialog (add, edit, or delete
// confirmation), the page index, and per-row expansion.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			h.page = parsed
		}
	}
	page := h.users.Page(h.page)
	h.page = page.Index
	expanded := h.expandedCopy()
	dialog := h.currentDialogLocked()
	h.mu.Unlock()

	view.UsersDocument(page, h.rules.Editable, expanded, dialog).Render(r.Context(), w)
}

// currentDialogLocked builds the dialog component for the current UI
// state. The dialog is visible when a delete is pending or the form is
// open, in either add or edit mode. Callers must hold h.mu.
func (h *UserHandler) currentDialogLocked() templ.Component {
	switch {
	case h.pendingDel != "":
		return view.DeleteConfirmDialog(h.pendingDel)
	case h.dialogOpen && h.editID != "":
		user, ok := h.users.Lookup(h.editID)
		if !ok {
			return nil
		}
		return view.UserFormDialog(view.FormData{
			EditID: user.ID,
			Values: userToInput(user),
			States: refdata.States(),
			Cities: refdata.Cities(user.Address.State),
		})
	case h.dialogOpen:
		return view.UserFormDialog(view.FormData{
			Values: service.UserInput{Gender: string(domain.GenderOther)},
			States: refdata.States(),
		})
	}
	return nil
}

// HandleNewForm opens the add dialog. Opening add clears any edit target.
func (h *UserHandler) HandleNewForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditable(w) {
		return
	}

	h.mu.Lock()
	h.dialogOpen = true
	h.editID = ""
	h.pendingDel = ""
	h.mu.Unlock()

	form := view.FormData{
		Values: service.UserInput{Gender: string(domain.GenderOther)},
		States: refdata.States(),
	}
	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.UserFormDialog(form))
}

// HandleEditForm opens the edit dialog pre-populated with an existing user.
func (h *UserHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditable(w) {
		return
	}

	user, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("get user for edit", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.mu.Lock()
	h.dialogOpen = true
	h.editID = user.ID
	h.pendingDel = ""
	h.mu.Unlock()

	form := view.FormData{
		EditID: user.ID,
		Values: userToInput(user),
		States: refdata.States(),
		Cities: refdata.Cities(user.Address.State),
	}
	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.UserFormDialog(form))
}

// HandleCreate processes the add form. Validation failures re-render
// the dialog with inline field errors and no mutation happens.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditable(w) {
		return
	}
	input, err := parseUserForm(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	input.ID = ""

	sse := datastar.NewSSE(w, r)
	if _, err := h.users.Create(r.Context(), input); err != nil {
		h.renderFormWithErrors(sse, "", input, err)
		return
	}

	h.mu.Lock()
	h.dialogOpen = false
	h.editID = ""
	h.mu.Unlock()

	sse.PatchElementTempl(view.EmptyDialog())
	h.patchTableRegion(sse)
}

// HandleUpdate processes the edit form. The ID comes from the path and
// is preserved; an ID no longer in the store is a silent no-op.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditable(w) {
		return
	}
	input, err := parseUserForm(r)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	input.ID = r.PathValue("id")

	sse := datastar.NewSSE(w, r)
	if _, err := h.users.Update(r.Context(), input); err != nil {
		h.renderFormWithErrors(sse, input.ID, input, err)
		return
	}

	h.mu.Lock()
	h.dialogOpen = false
	h.editID = ""
	h.mu.Unlock()

	sse.PatchElementTempl(view.EmptyDialog())
	h.patchTableRegion(sse)
}

// HandleDeleteConfirm is phase one of deletion: record the pending ID
// and show the confirmation dialog. Nothing is mutated yet.
func (h *UserHandler) HandleDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditable(w) {
		return
	}
	id := r.PathValue("id")

	h.mu.Lock()
	h.pendingDel = id
	h.dialogOpen = false
	h.editID = ""
	h.mu.Unlock()

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.DeleteConfirmDialog(id))
}

// HandleDeleteApply is phase two: apply the delete only when it matches
// the pending ID, then clear it. The page index re-clamps afterwards.
func (h *UserHandler) HandleDeleteApply(w http.ResponseWriter, r *http.Request) {
	if !h.requireEditable(w) {
		return
	}
	id := r.PathValue("id")

	h.mu.Lock()
	pending := h.pendingDel
	h.pendingDel = ""
	h.mu.Unlock()

	if pending == id {
		h.users.Delete(r.Context(), id)
		h.mu.Lock()
		delete(h.expanded, id)
		h.mu.Unlock()
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.EmptyDialog())
	h.patchTableRegion(sse)
}

// HandleDialogClose cancels whichever dialog is open. Pending deletes
// are dropped without mutating the store.
func (h *UserHandler) HandleDialogClose(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.dialogOpen = false
	h.editID = ""
	h.pendingDel = ""
	h.mu.Unlock()

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.EmptyDialog())
}

// HandleToggle expands or collapses one row's address detail. State is
// keyed by user ID, so other rows and other pages are unaffected.
func (h *UserHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	h.mu.Lock()
	h.expanded[id] = !h.expanded[id]
	h.mu.Unlock()

	sse := datastar.NewSSE(w, r)
	h.patchTableRegion(sse)
}

// HandleCities re-renders the city selector for the requested state
// with no selection, clearing any previously chosen city.
func (h *UserHandler) HandleCities(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.CityField(refdata.Cities(state), "", ""))
}

// HandleNextPage advances one page, clamped to the last page.
func (h *UserHandler) HandleNextPage(w http.ResponseWriter, r *http.Request) {
	h.movePage(w, r, +1)
}

// HandlePrevPage goes back one page, clamped to the first page.
func (h *UserHandler) HandlePrevPage(w http.ResponseWriter, r *http.Request) {
	h.movePage(w, r, -1)
}

// HandlePage jumps directly to the page index in the path.
func (h *UserHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.page = n
	h.mu.Unlock()

	sse := datastar.NewSSE(w, r)
	h.patchTableRegion(sse)
}

func (h *UserHandler) movePage(w http.ResponseWriter, r *http.Request, delta int) {
	h.mu.Lock()
	h.page += delta
	h.mu.Unlock()

	sse := datastar.NewSSE(w, r)
	h.patchTableRegion(sse)
}

// patchTableRegion re-renders the table and pagination controls from
// the live collection, clamping the page index first.
func (h *UserHandler) patchTableRegion(sse *datastar.ServerSentEventGenerator) {
	h.mu.Lock()
	page := h.users.Page(h.page)
	h.page = page.Index
	expanded := h.expandedCopy()
	h.mu.Unlock()

	table := view.TableData{Users: page.Users, Editable: h.rules.Editable, Expanded: expanded}
	sse.PatchElementTempl(view.TableRegion(table, page))
}

func (h *UserHandler) renderFormWithErrors(sse *datastar.ServerSentEventGenerator, editID string, input service.UserInput, err error) {
	var fields domain.FieldErrors
	if !errors.As(err, &fields) {
		slog.Error("validate user form", "error", err)
		fields = domain.FieldErrors{"": "an unexpected error occurred"}
	}
	form := view.FormData{
		EditID: editID,
		Values: input,
		Errors: fields,
		States: refdata.States(),
		Cities: refdata.Cities(input.Address.State),
	}
	sse.PatchElementTempl(view.UserFormDialog(form))
}

func (h *UserHandler) requireEditable(w http.ResponseWriter) bool {
	if h.rules.Editable {
		return true
	}
	http.Error(w, "Forbidden", http.StatusForbidden)
	return false
}

func (h *UserHandler) expandedCopy() map[string]bool {
	out := make(map[string]bool, len(h.expanded))
	for id, open := range h.expanded {
		if open {
			out[id] = true
		}
	}
	return out
}

// parseUserForm reads a user form submission into a UserInput.
func parseUserForm(r *http.Request) (service.UserInput, error) {
	if err := r.ParseForm(); err != nil {
		return service.UserInput{}, err
	}
	return service.UserInput{
		ID:          r.FormValue("id"),
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		LinkedinURL: r.FormValue("linkedinUrl"),
		Gender:      r.FormValue("gender"),
		Address: service.AddressInput{
			Line1: r.FormValue("address.line1"),
			Line2: r.FormValue("address.line2"),
			State: r.FormValue("address.state"),
			City:  r.FormValue("address.city"),
			PIN:   r.FormValue("address.pin"),
		},
	}, nil
}

func userToInput(u domain.User) service.UserInput {
	return service.UserInput{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		LinkedinURL: u.LinkedinURL,
		Gender:      string(u.Gender),
		Address: service.AddressInput{
			Line1: u.Address.Line1,
			Line2: u.Address.Line2,
			State: u.Address.State,
			City:  u.Address.City,
			PIN:   u.Address.PIN,
		},
	}
}
