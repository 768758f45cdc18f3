package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Avatar renders a round profile image, or a pulsing placeholder when src is empty.
func Avatar(src, size string) g.Node {
	if src == "" {
		return h.P(
			h.Class("rounded-full "+size+" ring-1 ring-slate-200 bg-gray-100 animate-pulse"),
			g.Attr("data-placeholder", "avatar"),
		)
	}
	return h.Img(
		h.Class("rounded-full "+size+" ring-1 ring-slate-200"),
		h.Src(src),
		h.Alt("profile"),
	)
}
