package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/synapse.space/internal/network"
	webi18n "github.com/louisbranch/synapse.space/internal/services/diagram/platform/i18n"
	"github.com/louisbranch/synapse.space/internal/services/diagram/routepath"
)

// StageID is the element htmx and the live client swap on every update.
const StageID = "diagram-stage"

// StageView is the swappable part of the page.
type StageView struct {
	Diagram network.Diagram
	Loc     Localizer
}

// Stage renders the selector, example image, network and explanation.
func Stage(view StageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<section")
		hw.attr("id", StageID)
		hw.classes("stage")
		hw.attr("data-selected", string(view.Diagram.Selected))
		hw.raw(">")
		hw.render(ctx, selector(view))
		if view.Diagram.HasSelection() {
			hw.render(ctx, exampleImage(view))
		}
		hw.render(ctx, networkPanel(view))
		hw.render(ctx, explanation(view))
		hw.raw("</section>")
		return hw.err
	})
}

func (hw *htmlWriter) swapStage(method, url string) {
	hw.attr("hx-"+method, url)
	hw.attr("hx-target", "#"+StageID)
	hw.attr("hx-swap", "outerHTML")
}

func selector(view StageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		active := view.Diagram.Category
		hw.raw("<div class=\"selector\"><div class=\"selector-categories\">")
		for _, category := range network.Categories() {
			hw.raw("<button type=\"button\"")
			if category == active {
				hw.classes("category-button", "is-active")
				hw.attr("aria-pressed", "true")
			} else {
				hw.classes("category-button")
				hw.attr("aria-pressed", "false")
			}
			hw.swapStage("post", routepath.Category(string(category)))
			hw.attr("data-live-type", "category.toggle")
			hw.attr("data-live-value", string(category))
			hw.raw(">")
			hw.text(T(view.Loc, "selector."+string(category)))
			hw.raw("</button>")
		}
		hw.raw("</div>")
		if active != network.CategoryNone {
			hw.raw("<div class=\"selector-examples\">")
			for _, id := range active.Members() {
				hw.raw("<button type=\"button\"")
				if id == view.Diagram.Selected {
					hw.classes("example-button", "is-active")
				} else {
					hw.classes("example-button")
				}
				hw.swapStage("post", routepath.Example(string(id)))
				hw.attr("data-live-type", "example.select")
				hw.attr("data-live-value", string(id))
				hw.raw(">")
				hw.text(T(view.Loc, "selector."+string(id)))
				hw.raw("</button>")
			}
			hw.raw("</div>")
		}
		hw.raw("</div>")
		return hw.err
	})
}

func exampleImage(view StageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		selected := string(view.Diagram.Selected)
		hw.raw("<figure class=\"example\"><div class=\"example-frame\"><img")
		hw.attr("src", view.Diagram.ImageURL)
		hw.attr("alt", T(view.Loc, "image.alt", selected))
		hw.raw(" width=\"256\" height=\"256\"></div><figcaption>")
		hw.text(T(view.Loc, "caption."+selected))
		hw.raw("</figcaption></figure>")
		return hw.err
	})
}

func networkPanel(view StageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<div class=\"network\">")
		for _, layer := range view.Diagram.Layers {
			hw.render(ctx, layerColumn(view.Loc, layer))
		}
		hw.raw("</div>")
		return hw.err
	})
}

func layerColumn(loc Localizer, layer network.LayerView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<div")
		if layer.IsLast {
			hw.classes("layer", "is-last")
		} else {
			hw.classes("layer")
		}
		hw.attr("data-layer", strconv.Itoa(layer.Index))
		hw.raw("><div class=\"layer-header\">")
		hw.render(ctx, icon(layer.Icon))
		hw.raw("<h3>")
		hw.text(layer.Name)
		hw.raw("</h3><p>")
		hw.text(layer.Description)
		hw.raw("</p></div><div class=\"layer-neurons\">")
		for _, neuron := range layer.Neurons {
			hw.render(ctx, neuronNode(loc, neuron))
		}
		hw.raw("</div></div>")
		return hw.err
	})
}

func neuronNode(loc Localizer, neuron network.NeuronView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		layer := strconv.Itoa(neuron.Coord.Layer)
		index := strconv.Itoa(neuron.Coord.Neuron)

		hw.raw("<div class=\"neuron-slot\"")
		hw.swapStage("post", routepath.NeuronLeave)
		hw.attr("hx-trigger", "mouseleave")
		hw.attr("data-live-type", "neuron.leave")
		hw.raw("><div")
		if neuron.Style.Emphasized {
			hw.classes("neuron", "is-emphasized")
		} else {
			hw.classes("neuron")
		}
		hw.attr("id", "neuron-"+layer+"-"+index)
		hw.attr("style", NeuronStyleAttr(neuron.Style))
		hw.attr("data-rule", string(neuron.Style.Rule))
		// The hovered neuron is swapped in under the pointer; an enter trigger
		// there would fire again on every swap.
		if !neuron.Style.Emphasized {
			hw.swapStage("post", routepath.NeuronEnter(neuron.Coord.Layer, neuron.Coord.Neuron))
			hw.attr("hx-trigger", "mouseenter")
			hw.attr("data-live-type", "neuron.enter")
		}
		hw.attr("data-layer", layer)
		hw.attr("data-neuron", index)
		hw.raw("><span class=\"neuron-label\">")
		hw.text(neuron.Label)
		hw.raw("</span>")
		if neuron.HasActivation {
			hw.raw("<span class=\"neuron-activation\">")
			hw.text(webi18n.Percent(loc, neuron.Activation))
			hw.raw("</span>")
		}
		hw.raw("</div></div>")
		return hw.err
	})
}

// NeuronStyleAttr renders the inline fill and scale of a neuron.
func NeuronStyleAttr(style network.NeuronStyle) string {
	return "background-color: " + style.Color.CSS() +
		"; transform: scale(" + strconv.FormatFloat(style.Scale(), 'f', -1, 64) + ")"
}

func explanation(view StageView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		prefix := "explain." + string(view.Diagram.ExplanationCategory()) + "."
		sections := []string{"features", "confidence"}
		if view.Diagram.ExplanationCategory() == network.CategoryHouse {
			sections = []string{"features", "price"}
		}
		hw.raw("<aside class=\"explanation\"><h3>")
		hw.text(T(view.Loc, "explain.title"))
		hw.raw("</h3><div class=\"explanation-grid\">")
		for _, section := range sections {
			hw.raw("<article><h4>")
			hw.text(T(view.Loc, prefix+section+".title"))
			hw.raw("</h4><p>")
			hw.text(T(view.Loc, prefix+section+".body"))
			hw.raw("</p></article>")
		}
		hw.raw("</div></aside>")
		return hw.err
	})
}
