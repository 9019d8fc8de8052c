package diagram

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/synapse.space/internal/network"
	apperrors "github.com/louisbranch/synapse.space/internal/services/diagram/platform/errors"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/httpx"
	webi18n "github.com/louisbranch/synapse.space/internal/services/diagram/platform/i18n"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/requestmeta"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/sessioncookie"
	"github.com/louisbranch/synapse.space/internal/services/diagram/routepath"
	"github.com/louisbranch/synapse.space/internal/services/diagram/session"
	"github.com/louisbranch/synapse.space/internal/services/diagram/templates"
)

type handler struct {
	catalog  *network.Catalog
	sessions *session.Store
	policy   requestmeta.SchemePolicy
	live     bool
	logger   *log.Logger
}

// mutate runs fn against the viewer's controller, issuing a session cookie
// when the viewer has none, and returns the resulting snapshot.
func (h *handler) mutate(w http.ResponseWriter, r *http.Request, fn func(*network.Controller) error) (network.State, error) {
	current, _ := sessioncookie.Read(r)
	id, created := h.sessions.Acquire(current)
	if created {
		sessioncookie.Write(w, id, requestmeta.IsHTTPS(r, h.policy))
	}
	var (
		state network.State
		err   error
	)
	ok := h.sessions.With(id, func(c *network.Controller) {
		if fn != nil {
			err = fn(c)
		}
		state = c.State()
	})
	if !ok {
		return network.State{Selected: network.ExampleNone}, apperrors.E(apperrors.KindUnknown, "session vanished")
	}
	return state, err
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, tag := webi18n.ResolveLocalizer(w, r)
	state, err := h.mutate(w, r, nil)
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	stage := templates.StageView{Diagram: network.BuildDiagram(h.catalog, state), Loc: loc}
	if httpx.IsHTMXRequest(r) {
		h.writeComponent(w, r, http.StatusOK, templates.Stage(stage))
		return
	}
	view := templates.PageView{
		Lang:      tag.String(),
		Loc:       loc,
		Languages: webi18n.LanguageOptions(loc, tag),
		Stage:     stage,
	}
	if h.live {
		view.LiveURL = routepath.Live
	}
	h.writeComponent(w, r, http.StatusOK, templates.Page(view))
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *handler) handleCategoryToggle(w http.ResponseWriter, r *http.Request) {
	category, err := network.ParseCategory(r.PathValue("category"))
	if err != nil {
		h.respond(w, r, network.State{}, apperrors.Wrap(apperrors.KindNotFound, "error.not_found", err))
		return
	}
	state, err := h.mutate(w, r, func(c *network.Controller) error {
		c.ToggleCategory(category)
		return nil
	})
	h.respond(w, r, state, err)
}

func (h *handler) handleExampleSelect(w http.ResponseWriter, r *http.Request) {
	id, err := network.ParseExampleID(r.PathValue("example"))
	if err != nil {
		h.respond(w, r, network.State{}, apperrors.Wrap(apperrors.KindNotFound, "error.not_found", err))
		return
	}
	state, err := h.mutate(w, r, func(c *network.Controller) error {
		c.SelectExample(id)
		return nil
	})
	h.respond(w, r, state, err)
}

func (h *handler) handleNeuronEnter(w http.ResponseWriter, r *http.Request) {
	coord, err := parseCoord(r.PathValue("layer"), r.PathValue("neuron"))
	if err != nil {
		h.respond(w, r, network.State{}, err)
		return
	}
	state, err := h.mutate(w, r, func(c *network.Controller) error {
		return enterNeuron(h.catalog, c, coord)
	})
	h.respond(w, r, state, err)
}

func (h *handler) handleNeuronLeave(w http.ResponseWriter, r *http.Request) {
	state, err := h.mutate(w, r, func(c *network.Controller) error {
		c.NeuronLeave()
		return nil
	})
	h.respond(w, r, state, err)
}

// respond answers a state-changing request. htmx requests get the updated
// stage; plain form posts are redirected back to the page.
func (h *handler) respond(w http.ResponseWriter, r *http.Request, state network.State, err error) {
	loc, _ := webi18n.ResolveLocalizer(w, r)
	if err != nil {
		h.writeError(w, r, loc, err)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
		return
	}
	stage := templates.StageView{Diagram: network.BuildDiagram(h.catalog, state), Loc: loc}
	h.writeComponent(w, r, http.StatusOK, templates.Stage(stage))
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, err error) {
	status := apperrors.HTTPStatus(err)
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = "error.internal"
	}
	if status >= http.StatusInternalServerError {
		h.logger.Printf("diagram request failed method=%s path=%s request_id=%s err=%v", r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
	}
	h.writeComponent(w, r, status, templates.ErrorFragment(loc, key))
}

func (h *handler) writeComponent(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		h.logger.Printf("diagram render failed path=%s request_id=%s err=%v", r.URL.Path, httpx.RequestIDFrom(r), err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "HX-Request")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func parseCoord(rawLayer, rawNeuron string) (network.Coord, error) {
	layer, err := strconv.Atoi(rawLayer)
	if err != nil {
		return network.Coord{}, apperrors.Wrap(apperrors.KindInvalidInput, "error.bad_request", fmt.Errorf("parse layer index: %w", err))
	}
	neuron, err := strconv.Atoi(rawNeuron)
	if err != nil {
		return network.Coord{}, apperrors.Wrap(apperrors.KindInvalidInput, "error.bad_request", fmt.Errorf("parse neuron index: %w", err))
	}
	return network.Coord{Layer: layer, Neuron: neuron}, nil
}

// enterNeuron hovers coord when it addresses a drawn neuron.
func enterNeuron(catalog *network.Catalog, c *network.Controller, coord network.Coord) error {
	diagram := network.BuildDiagram(catalog, c.State())
	if !diagram.Contains(coord) {
		return apperrors.EK(apperrors.KindNotFound, "error.not_found", fmt.Sprintf("no neuron at layer %d index %d", coord.Layer, coord.Neuron))
	}
	c.NeuronEnter(coord.Layer, coord.Neuron)
	return nil
}
