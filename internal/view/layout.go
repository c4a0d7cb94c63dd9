package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// Layout wraps body in the shared page chrome.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		h.rawf(`<script type="module" src="%s"></script>`, datastarCDN)
		h.raw(`</head><body><main class="container">`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main></body></html>`)
		return h.err
	})
}
