package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// EmptyDialog is the closed dialog container. Patching it over an open
// dialog closes the dialog.
func EmptyDialog() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div id="dialog"></div>`)
		return h.err
	})
}

// DeleteConfirmDialog asks for confirmation before a delete is applied.
// Nothing is mutated until the confirm button posts back.
func DeleteConfirmDialog(id string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<div id="dialog" class="dialog-open"><div class="dialog-panel">`)
		h.raw(`<h2>Are you sure you want to delete this user?</h2>`)
		h.raw(`<p>This action cannot be undone. This will permanently delete the user's record.</p>`)
		h.raw(`<div class="dialog-actions">`)
		h.raw(`<button type="button" data-on-click="@get('/users/dialog/close')">Cancel</button>`)
		h.rawf(`<button type="button" class="danger" data-on-click="@post('/users/%s/delete')">Delete</button>`,
			templ.EscapeString(id))
		h.raw(`</div></div></div>`)
		return h.err
	})
}
