package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/msomdec/userdesk/internal/domain"
	"github.com/msomdec/userdesk/internal/service"
)

// FormData is everything the user form dialog needs to render. EditID
// is empty in create mode. Cities holds the options for the currently
// selected state; it is empty until a state is chosen.
type FormData struct {
	EditID string
	Values service.UserInput
	Errors domain.FieldErrors
	States []string
	Cities []string
}

// UserFormDialog renders the add/edit dialog. It replaces the #dialog
// element, so opening, validation re-render, and closing are all a
// single element patch.
func UserFormDialog(data FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div id="dialog" class="dialog-open"><div class="dialog-panel">`)
		if data.EditID == "" {
			h.raw(`<h2>Add User</h2><p>Enter user details below.</p>`)
		} else {
			h.raw(`<h2>Edit User</h2><p>Edit user details below.</p>`)
		}

		action := "/users"
		if data.EditID != "" {
			action = "/users/" + data.EditID
		}
		h.rawf(`<form data-on-submit="@post('%s', {contentType: 'form'})">`, templ.EscapeString(action))
		if data.EditID != "" {
			h.rawf(`<input type="hidden" name="id" value="%s"/>`, templ.EscapeString(data.EditID))
		}

		textField(h, "Name", "name", data.Values.Name, "John Doe", data.Errors)
		textField(h, "Email", "email", data.Values.Email, "john@example.com", data.Errors)
		textField(h, "LinkedIn URL", "linkedinUrl", data.Values.LinkedinURL, "https://www.linkedin.com/in/johndoe", data.Errors)
		genderField(h, data.Values.Gender, data.Errors)
		textField(h, "Address Line 1", "address.line1", data.Values.Address.Line1, "", data.Errors)
		textField(h, "Address Line 2", "address.line2", data.Values.Address.Line2, "", data.Errors)
		stateField(h, data.States, data.Values.Address.State, data.Errors)
		if h.err != nil {
			return h.err
		}
		if err := CityField(data.Cities, data.Values.Address.City, data.Errors["address.city"]).Render(ctx, w); err != nil {
			return err
		}
		textField(h, "PIN Code", "address.pin", data.Values.Address.PIN, "", data.Errors)

		h.raw(`<div class="dialog-actions">`)
		h.raw(`<button type="submit">Submit</button>`)
		h.raw(`<button type="button" data-on-click="@get('/users/dialog/close')">Cancel</button>`)
		h.raw(`</div></form></div></div>`)
		return h.err
	})
}

// CityField is the dependent city selector. It is its own patchable
// element: when the state changes, the server re-renders it with the
// new state's cities and no selection.
func CityField(cities []string, selected, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div id="city-field" class="field"><label for="city">City</label>`)
		h.raw(`<select id="city" name="address.city">`)
		h.raw(`<option value="">Select city</option>`)
		for _, city := range cities {
			h.rawf(`<option value="%s"`, templ.EscapeString(city))
			if city == selected {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(city)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		fieldError(h, errMsg)
		h.raw(`</div>`)
		return h.err
	})
}

func textField(h *html, label, name, value, placeholder string, errs domain.FieldErrors) {
	esc := templ.EscapeString[string]
	h.rawf(`<div class="field"><label for="%s">`, esc(name))
	h.text(label)
	h.raw(`</label>`)
	h.rawf(`<input id="%s" name="%s" value="%s"`, esc(name), esc(name), esc(value))
	if placeholder != "" {
		h.rawf(` placeholder="%s"`, esc(placeholder))
	}
	h.raw(`/>`)
	fieldError(h, errs[name])
	h.raw(`</div>`)
}

func genderField(h *html, selected string, errs domain.FieldErrors) {
	h.raw(`<div class="field"><label for="gender">Gender</label>`)
	h.raw(`<select id="gender" name="gender">`)
	for _, g := range []string{"male", "female", "other"} {
		h.rawf(`<option value="%s"`, g)
		if g == selected {
			h.raw(` selected`)
		}
		h.rawf(`>%s</option>`, genderLabel(g))
	}
	h.raw(`</select>`)
	fieldError(h, errs["gender"])
	h.raw(`</div>`)
}

// stateField re-fetches the city options whenever the selection
// changes, which also clears any previously selected city.
func stateField(h *html, states []string, selected string, errs domain.FieldErrors) {
	h.raw(`<div class="field"><label for="state">State</label>`)
	h.raw(`<select id="state" name="address.state" data-on-change="@get('/users/cities?state=' + encodeURIComponent(evt.target.value))">`)
	h.raw(`<option value="">Select state</option>`)
	for _, state := range states {
		h.rawf(`<option value="%s"`, templ.EscapeString(state))
		if state == selected {
			h.raw(` selected`)
		}
		h.raw(`>`)
		h.text(state)
		h.raw(`</option>`)
	}
	h.raw(`</select>`)
	fieldError(h, errs["address.state"])
	h.raw(`</div>`)
}

func fieldError(h *html, msg string) {
	if msg == "" {
		return
	}
	h.raw(`<p class="field-error">`)
	h.text(msg)
	h.raw(`</p>`)
}

func genderLabel(g string) string {
	switch g {
	case "male":
		return "Male"
	case "female":
		return "Female"
	default:
		return "Other"
	}
}
