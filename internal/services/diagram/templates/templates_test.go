package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/synapse.space/internal/network"
	platformi18n "github.com/louisbranch/synapse.space/internal/platform/i18n"
	webi18n "github.com/louisbranch/synapse.space/internal/services/diagram/platform/i18n"
	"golang.org/x/text/language"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	return b.String()
}

func stageFor(state network.State) StageView {
	return StageView{
		Diagram: network.BuildDiagram(network.DefaultCatalog(), state),
		Loc:     platformi18n.Printer(language.MustParse("en-US")),
	}
}

func TestStageWithoutSelectionHidesImageAndSiblings(t *testing.T) {
	t.Parallel()

	got := render(t, Stage(stageFor(network.State{Selected: network.ExampleNone})))
	if !strings.Contains(got, `id="diagram-stage"`) {
		t.Fatalf("missing stage id: %q", got)
	}
	if strings.Contains(got, "<img") {
		t.Fatal("image rendered without a selection")
	}
	if strings.Contains(got, "example-button") {
		t.Fatal("sibling buttons rendered without an active category")
	}
	if strings.Contains(got, "neuron-activation") {
		t.Fatal("activation percentages rendered without a selection")
	}
	if !strings.Contains(got, "Cat vs Dog Example") || !strings.Contains(got, "House Price Example") {
		t.Fatal("missing category buttons")
	}
	if !strings.Contains(got, "Feature Detection") {
		t.Fatal("expected animal explanation by default")
	}
}

func TestStageWithCatSelection(t *testing.T) {
	t.Parallel()

	got := render(t, Stage(stageFor(network.State{Selected: network.ExampleCat})))
	for _, want := range []string{
		`hx-post="/categories/animal"`,
		`hx-post="/examples/dog"`,
		`alt="cat example"`,
		"Observe how neurons activate for this cat image",
		`background-color: rgba(59, 130, 246, 0.92)`,
		"92%",
		`data-icon="brain"`,
		`href="#lucide-brain"`,
		`aria-label="Grid"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("stage missing %q", want)
		}
	}
	if strings.Contains(got, `hx-post="/examples/starter-house"`) {
		t.Error("house siblings rendered for animal category")
	}
}

func TestStageHouseExplanation(t *testing.T) {
	t.Parallel()

	got := render(t, Stage(stageFor(network.State{Selected: network.ExampleLuxuryHouse})))
	if !strings.Contains(got, "Price Prediction") {
		t.Fatal("expected house explanation")
	}
	if strings.Contains(got, "Classification Confidence") {
		t.Fatal("animal explanation rendered for house example")
	}
}

func TestStageHoverEmphasizesNeuron(t *testing.T) {
	t.Parallel()

	got := render(t, Stage(stageFor(network.State{Hover: network.HoverAt(1, 0), Selected: network.ExampleNone})))
	if !strings.Contains(got, `id="neuron-1-0" style="background-color: rgb(59, 130, 246); transform: scale(1.1)"`) {
		t.Fatalf("hovered neuron not emphasized: %q", got)
	}
	if !strings.Contains(got, `id="neuron-0-0" style="background-color: rgb(147, 197, 253); transform: scale(1)"`) {
		t.Fatal("earlier layer not drawn in past color")
	}
	if !strings.Contains(got, `id="neuron-2-0" style="background-color: rgb(209, 213, 219); transform: scale(1)"`) {
		t.Fatal("later layer not drawn in future color")
	}
}

func TestHoveredNeuronDropsEnterTrigger(t *testing.T) {
	t.Parallel()

	got := render(t, Stage(stageFor(network.State{Hover: network.HoverAt(1, 2), Selected: network.ExampleCat})))
	start := strings.Index(got, `id="neuron-1-2"`)
	if start < 0 {
		t.Fatal("hovered neuron missing")
	}
	end := strings.Index(got[start:], ">")
	tag := got[start : start+end]
	for _, unwanted := range []string{`hx-trigger="mouseenter"`, `/neurons/1/2/enter`, `data-live-type="neuron.enter"`} {
		if strings.Contains(tag, unwanted) {
			t.Fatalf("hovered neuron still carries %s: %q", unwanted, tag)
		}
	}
	if !strings.Contains(got, `hx-post="/neurons/1/1/enter"`) {
		t.Fatal("sibling neurons lost their enter trigger")
	}
	if !strings.Contains(got, `hx-post="/neurons/leave"`) {
		t.Fatal("leave trigger missing")
	}
}

func TestPageEscapesAndLinksLanguages(t *testing.T) {
	t.Parallel()

	loc := platformi18n.Printer(language.MustParse("pt-BR"))
	got := render(t, Page(PageView{
		Lang:      "pt-BR",
		Loc:       loc,
		Languages: webi18n.LanguageOptions(loc, language.MustParse("pt-BR")),
		Stage:     StageView{Diagram: network.BuildDiagram(network.DefaultCatalog(), network.State{Selected: network.ExampleNone}), Loc: loc},
		LiveURL:   "/live",
	}))
	for _, want := range []string{
		`<html lang="pt-BR">`,
		"<title>Rede Neural em Ação</title>",
		`href="/?lang=pt-BR"`,
		`aria-current="true"`,
		`data-live-url="/live"`,
		HTMXScriptURL,
		`href="/static/diagram.css"`,
		`<symbol id="lucide-brain"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestErrorFragment(t *testing.T) {
	t.Parallel()

	got := render(t, ErrorFragment(nil, "error.not_found"))
	if !strings.Contains(got, "error.not_found") || !strings.Contains(got, `role="alert"`) {
		t.Fatalf("ErrorFragment() = %q", got)
	}
	got = render(t, ErrorFragment(platformi18n.Printer(language.MustParse("en-US")), ""))
	if !strings.Contains(got, "Something went wrong") {
		t.Fatalf("ErrorFragment(empty) = %q", got)
	}
}

func TestTFallsBackToKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "image.alt %s", "cat"); got != "image.alt cat" {
		t.Fatalf("T(nil) = %q", got)
	}
}

func TestNeuronStyleAttr(t *testing.T) {
	t.Parallel()

	style := network.DeriveStyle(network.Coord{Layer: 3, Neuron: 1}, network.NoHover, []float64{0.92, 0.08})
	if got, want := NeuronStyleAttr(style), "background-color: rgba(59, 130, 246, 0.08); transform: scale(1)"; got != want {
		t.Fatalf("NeuronStyleAttr() = %q, want %q", got, want)
	}
}
