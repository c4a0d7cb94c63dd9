package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/msomdec/userdesk/internal/domain"
	"github.com/msomdec/userdesk/internal/service"
)

// TableData is everything the user table needs to render.
type TableData struct {
	Users    []domain.User
	Editable bool
	Expanded map[string]bool
}

// UsersPage is the full user-management page. dialog may be nil, in
// which case the dialog container renders empty.
func UsersPage(page service.Page, editable bool, expanded map[string]bool, dialog templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<h1>User Management</h1>`)
		h.raw(`<div class="toolbar">`)
		h.raw(`<button type="button" data-on-click="@get('/users/new')">Add User</button>`)
		h.raw(`</div>`)
		if h.err != nil {
			return h.err
		}

		table := TableData{Users: page.Users, Editable: editable, Expanded: expanded}
		if err := TableRegion(table, page).Render(ctx, w); err != nil {
			return err
		}

		if dialog == nil {
			dialog = EmptyDialog()
		}
		return dialog.Render(ctx, w)
	})
}

// TableRegion wraps the table and pagination controls in one patchable
// element, so navigation and mutations swap both together.
func TableRegion(table TableData, page service.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div id="table-region">`)
		if h.err != nil {
			return h.err
		}
		if err := UserTable(table).Render(ctx, w); err != nil {
			return err
		}
		if err := PaginationNav(page).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</div>`)
		return h.err
	})
}

// UserTable renders one row per user plus an expandable address row for
// each expanded user. Edit and delete actions only render when the
// editability flag is set; the expand toggle always renders.
func UserTable(data TableData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<table id="users-table"><thead><tr>`)
		h.raw(`<th>Name</th><th>Email</th><th>LinkedIn URL</th><th>Gender</th><th>Actions</th>`)
		h.raw(`</tr></thead><tbody>`)
		for _, u := range data.Users {
			writeUserRow(h, u, data.Editable)
			if data.Expanded[u.ID] {
				writeAddressRow(h, u)
			}
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

func writeUserRow(h *html, u domain.User, editable bool) {
	h.rawf(`<tr id="user-row-%s">`, templ.EscapeString(u.ID))
	h.raw(`<td>`)
	h.text(u.Name)
	h.raw(`</td><td>`)
	h.text(u.Email)
	h.raw(`</td><td>`)
	h.text(u.LinkedinURL)
	h.raw(`</td><td>`)
	h.text(string(u.Gender))
	h.raw(`</td><td class="actions">`)
	id := templ.EscapeString(u.ID)
	if editable {
		h.rawf(`<button type="button" data-on-click="@get('/users/%s/edit')">Edit</button>`, id)
		h.rawf(`<button type="button" class="danger" data-on-click="@get('/users/%s/delete')">Delete</button>`, id)
	}
	h.rawf(`<button type="button" data-on-click="@get('/users/%s/toggle')">Details</button>`, id)
	h.raw(`</td></tr>`)
}

func writeAddressRow(h *html, u domain.User) {
	h.rawf(`<tr id="user-detail-%s" class="detail"><td colspan="5">`, templ.EscapeString(u.ID))
	h.raw(`<p>Address:</p><p>`)
	h.text(u.Address.Line1)
	h.raw(`</p>`)
	if u.Address.Line2 != "" {
		h.raw(`<p>`)
		h.text(u.Address.Line2)
		h.raw(`</p>`)
	}
	h.raw(`<p>`)
	h.text(u.Address.City + ", " + u.Address.State + " - " + u.Address.PIN)
	h.raw(`</p></td></tr>`)
}

// PaginationNav renders previous/next and direct page links. Previous
// and next clamp server-side, so the buttons are always safe to click.
func PaginationNav(page service.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<nav id="pagination" class="pagination">`)
		h.raw(`<button type="button" data-on-click="@get('/users/prev')">Previous</button>`)
		for i := 0; i < page.TotalPages; i++ {
			class := "page-link"
			if i == page.Index {
				class = "page-link current"
			}
			h.rawf(`<button type="button" class="%s" data-on-click="@get('/users/page/%d')">%d</button>`,
				class, i, i+1)
		}
		h.raw(`<button type="button" data-on-click="@get('/users/next')">Next</button>`)
		h.raw(`</nav>`)
		return h.err
	})
}

// pageTitle composes the browser title for a given page index.
func pageTitle(index int) string {
	if index == 0 {
		return "User Management"
	}
	return "User Management - Page " + strconv.Itoa(index+1)
}

// UsersDocument is the complete document for GET /users.
func UsersDocument(page service.Page, editable bool, expanded map[string]bool, dialog templ.Component) templ.Component {
	return Layout(pageTitle(page.Index), UsersPage(page, editable, expanded, dialog))
}
