package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/synapse.space/internal/services/diagram/routepath"
)

// ErrorFragment renders a localized error in place of the stage.
func ErrorFragment(loc Localizer, key string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if key == "" {
			key = "error.internal"
		}
		hw := &htmlWriter{w: w}
		hw.raw("<section")
		hw.attr("id", StageID)
		hw.classes("stage", "is-error")
		hw.raw(" role=\"alert\"><p>")
		hw.text(T(loc, key))
		hw.raw("</p><a")
		hw.attr("href", routepath.Root)
		hw.raw(">↺</a></section>")
		return hw.err
	})
}
