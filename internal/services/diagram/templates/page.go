package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/synapse.space/internal/services/diagram/platform/i18n"
	"github.com/louisbranch/synapse.space/internal/services/diagram/routepath"
)

// HTMXScriptURL is the htmx build referenced by every page.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"

// PageView carries everything the full page needs.
type PageView struct {
	Lang      string
	Loc       Localizer
	Languages []webi18n.LanguageOption
	Stage     StageView
	// LiveURL enables the websocket client when set.
	LiveURL string
}

// Page renders the full HTML document.
func Page(view PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		lang := view.Lang
		if lang == "" {
			lang = "en-US"
		}
		hw.raw("<!DOCTYPE html><html")
		hw.attr("lang", lang)
		hw.raw("><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"><title>")
		hw.text(T(view.Loc, "page.title"))
		hw.raw("</title><meta name=\"description\"")
		hw.attr("content", T(view.Loc, "page.meta_description"))
		hw.raw("><link rel=\"stylesheet\"")
		hw.attr("href", routepath.StaticPrefix+"diagram.css")
		hw.raw("><script defer")
		hw.attr("src", HTMXScriptURL)
		hw.raw("></script><script defer")
		hw.attr("src", routepath.StaticPrefix+"diagram.js")
		hw.raw("></script></head><body")
		if view.LiveURL != "" {
			hw.attr("data-live-url", view.LiveURL)
		}
		hw.raw(">")
		hw.render(ctx, iconSprite())
		hw.raw("<main class=\"page\"><header class=\"page-header\"><h1>")
		hw.text(T(view.Loc, "page.title"))
		hw.raw("</h1><p>")
		hw.text(T(view.Loc, "page.subtitle"))
		hw.raw("</p>")
		hw.render(ctx, languageNav(view.Languages))
		hw.raw("</header>")
		hw.render(ctx, Stage(view.Stage))
		hw.raw("</main></body></html>")
		return hw.err
	})
}

func languageNav(options []webi18n.LanguageOption) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(options) == 0 {
			return nil
		}
		hw := &htmlWriter{w: w}
		hw.raw("<nav class=\"language-nav\">")
		for _, option := range options {
			hw.raw("<a")
			hw.attr("href", routepath.WithLang(option.Tag))
			hw.attr("hreflang", option.Tag)
			if option.Active {
				hw.classes("language-link", "is-active")
				hw.attr("aria-current", "true")
			} else {
				hw.classes("language-link")
			}
			hw.raw(">")
			hw.text(option.Label)
			hw.raw("</a>")
		}
		hw.raw("</nav>")
		return hw.err
	})
}
