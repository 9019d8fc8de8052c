package diagram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/synapse.space/internal/network"
	platformi18n "github.com/louisbranch/synapse.space/internal/platform/i18n"
	"github.com/louisbranch/synapse.space/internal/platform/timeouts"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/httpx"
	webi18n "github.com/louisbranch/synapse.space/internal/services/diagram/platform/i18n"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/requestmeta"
	"github.com/louisbranch/synapse.space/internal/services/diagram/platform/sessioncookie"
	"github.com/louisbranch/synapse.space/internal/services/diagram/templates"
	"golang.org/x/net/websocket"
)

const (
	maxFramePayloadBytes   = 4 * 1024
	maxFramesPerSecond     = 40
	maxDecodeErrorsPerConn = 3
)

const (
	frameNeuronEnter    = "neuron.enter"
	frameNeuronLeave    = "neuron.leave"
	frameExampleSelect  = "example.select"
	frameCategoryToggle = "category.toggle"
	frameDiagramRender  = "diagram.render"
	frameDiagramError   = "diagram.error"
)

type liveFrame struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

type neuronPayload struct {
	Layer  *int `json:"layer"`
	Neuron *int `json:"neuron"`
}

type examplePayload struct {
	Example string `json:"example"`
}

type categoryPayload struct {
	Category string `json:"category"`
}

type renderPayload struct {
	HTML string `json:"html"`
}

type liveError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type livePeer struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

func (p *livePeer) writeFrame(frame liveFrame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encoder.Encode(frame)
}

// liveConn owns one controller for the lifetime of a websocket connection
// and processes frames sequentially.
type liveConn struct {
	h          *handler
	peer       *livePeer
	controller *network.Controller
	loc        webi18n.Localizer
	sessionID  string
}

func (h *handler) handleLive(w http.ResponseWriter, r *http.Request) {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" || !requestmeta.IsSameOrigin(r, origin, h.policy) {
		h.logger.Printf("diagram live rejected cross-origin handshake origin=%q host=%q request_id=%s", origin, r.Host, httpx.RequestIDFrom(r))
		http.Error(w, "cross-origin websocket rejected", http.StatusForbidden)
		return
	}
	websocket.Handler(h.serveLive).ServeHTTP(w, r)
}

func (h *handler) serveLive(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()
	conn.MaxPayloadBytes = 4 * maxFramePayloadBytes

	request := conn.Request()
	tag, _ := webi18n.ResolveTag(request)
	lc := &liveConn{
		h:          h,
		peer:       &livePeer{encoder: json.NewEncoder(conn)},
		controller: network.NewController(),
		loc:        platformi18n.Printer(tag),
	}
	if id, ok := sessioncookie.Read(request); ok {
		h.sessions.With(id, func(c *network.Controller) {
			lc.controller.SelectExample(c.State().Selected)
			lc.sessionID = id
		})
	}

	decoder := json.NewDecoder(conn)
	windowStart := time.Now()
	framesInWindow := 0
	decodeErrors := 0

	for {
		_ = conn.SetReadDeadline(time.Now().Add(timeouts.LiveRead))
		var frame liveFrame
		if err := decoder.Decode(&frame); err != nil {
			if errors.Is(err, io.EOF) || isTimeout(err) {
				return
			}
			decodeErrors++
			_ = lc.writeError("", "INVALID_ARGUMENT", "invalid frame payload")
			if decodeErrors >= maxDecodeErrorsPerConn {
				return
			}
			// The decoder cannot resync after a syntax error.
			decoder = json.NewDecoder(conn)
			continue
		}
		decodeErrors = 0

		if len(frame.Payload) > maxFramePayloadBytes {
			_ = lc.writeError(frame.RequestID, "INVALID_ARGUMENT", "payload too large")
			continue
		}

		now := time.Now()
		if now.Sub(windowStart) >= time.Second {
			windowStart = now
			framesInWindow = 0
		}
		framesInWindow++
		if framesInWindow > maxFramesPerSecond {
			_ = lc.writeError(frame.RequestID, "RESOURCE_EXHAUSTED", "rate limit exceeded")
			return
		}

		if err := lc.handleFrame(request.Context(), frame); err != nil {
			h.logger.Printf("diagram live write failed request_id=%s err=%v", frame.RequestID, err)
			return
		}
	}
}

func (lc *liveConn) handleFrame(ctx context.Context, frame liveFrame) error {
	switch frame.Type {
	case frameNeuronEnter:
		var payload neuronPayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil || payload.Layer == nil || payload.Neuron == nil {
			return lc.writeError(frame.RequestID, "INVALID_ARGUMENT", "layer and neuron are required")
		}
		coord := network.Coord{Layer: *payload.Layer, Neuron: *payload.Neuron}
		if err := enterNeuron(lc.h.catalog, lc.controller, coord); err != nil {
			return lc.writeError(frame.RequestID, "NOT_FOUND", err.Error())
		}
	case frameNeuronLeave:
		lc.controller.NeuronLeave()
	case frameExampleSelect:
		var payload examplePayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return lc.writeError(frame.RequestID, "INVALID_ARGUMENT", "invalid example payload")
		}
		id, err := network.ParseExampleID(payload.Example)
		if err != nil {
			return lc.writeError(frame.RequestID, "NOT_FOUND", err.Error())
		}
		lc.controller.SelectExample(id)
		lc.syncSelection()
	case frameCategoryToggle:
		var payload categoryPayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return lc.writeError(frame.RequestID, "INVALID_ARGUMENT", "invalid category payload")
		}
		category, err := network.ParseCategory(payload.Category)
		if err != nil {
			return lc.writeError(frame.RequestID, "NOT_FOUND", err.Error())
		}
		lc.controller.ToggleCategory(category)
		lc.syncSelection()
	default:
		return lc.writeError(frame.RequestID, "INVALID_ARGUMENT", "unsupported frame type")
	}
	return lc.writeRender(ctx, frame.RequestID)
}

// syncSelection copies the connection's selection into the browser session
// so a reload or an htmx fallback starts from the same example.
func (lc *liveConn) syncSelection() {
	if lc.sessionID == "" {
		return
	}
	selected := lc.controller.State().Selected
	lc.h.sessions.With(lc.sessionID, func(c *network.Controller) {
		c.SelectExample(selected)
	})
}

func (lc *liveConn) writeRender(ctx context.Context, requestID string) error {
	stage := templates.StageView{
		Diagram: network.BuildDiagram(lc.h.catalog, lc.controller.State()),
		Loc:     lc.loc,
	}
	var buf bytes.Buffer
	if err := templates.Stage(stage).Render(ctx, &buf); err != nil {
		return lc.writeError(requestID, "INTERNAL", "render failed")
	}
	return lc.peer.writeFrame(liveFrame{
		Type:      frameDiagramRender,
		RequestID: requestID,
		Payload:   mustJSON(renderPayload{HTML: buf.String()}),
	})
}

func (lc *liveConn) writeError(requestID, code, message string) error {
	return lc.peer.writeFrame(liveFrame{
		Type:      frameDiagramError,
		RequestID: requestID,
		Payload:   mustJSON(liveError{Code: code, Message: message}),
	})
}

func isTimeout(err error) bool {
	var timeout interface{ Timeout() bool }
	return errors.As(err, &timeout) && timeout.Timeout()
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return data
}
