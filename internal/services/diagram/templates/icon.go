package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/synapse.space/internal/network"
	"github.com/louisbranch/synapse.space/internal/platform/icons"
)

func icon(name network.Icon) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<svg class="layer-icon" width="32" height="32"`)
		if def, ok := icons.Lookup(name); ok {
			hw.raw(` role="img"`)
			hw.attr("aria-label", def.Name)
		} else {
			hw.raw(` aria-hidden="true"`)
		}
		hw.attr("data-icon", string(name))
		hw.raw("><use")
		hw.attr("href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(name)))
		hw.raw("></use></svg>")
		return hw.err
	})
}

func iconSprite() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, icons.LucideSprite())
		return err
	})
}
