package diagram

import (
	"errors"
	"net/http"

	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/httpx"
	"github.com/louisbranch/synapse.space/internal/services/diagram/routepath"
	diagramstatic "github.com/louisbranch/synapse.space/internal/services/diagram/static"
)

func registerRoutes(mux *http.ServeMux, h *handler) error {
	if mux == nil {
		return errors.New("mux is required")
	}
	if h == nil {
		return errors.New("handler is required")
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.Root+"{$}", httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(diagramstatic.FS))))

	mux.HandleFunc(http.MethodPost+" "+routepath.CategoryPattern, h.handleCategoryToggle)
	mux.HandleFunc(routepath.CategoryPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.ExamplePattern, h.handleExampleSelect)
	mux.HandleFunc(routepath.ExamplePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.NeuronEnterPattern, h.handleNeuronEnter)
	mux.HandleFunc(routepath.NeuronEnterPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.NeuronLeave, h.handleNeuronLeave)
	mux.HandleFunc(routepath.NeuronLeave, httpx.MethodNotAllowed(http.MethodPost))

	if h.live {
		mux.HandleFunc(http.MethodGet+" "+routepath.Live, h.handleLive)
		mux.HandleFunc(routepath.Live, httpx.MethodNotAllowed(http.MethodGet))
	}
	return nil
}
