package network

import "math"

// Diagram is the render surface for one controller snapshot. It is built in
// one pass from a single State, so a diagram never mixes two examples.
type Diagram struct {
	Selected ExampleID
	Category Category
	// ImageURL is empty while nothing is selected.
	ImageURL string
	Layers   []LayerView
}

// LayerView is one rendered layer column.
type LayerView struct {
	Index       int
	Name        string
	Description string
	Icon        Icon
	IsLast      bool
	Neurons     []NeuronView
}

// NeuronView is one rendered neuron node.
type NeuronView struct {
	Coord         Coord
	Label         string
	Style         NeuronStyle
	Activation    float64
	HasActivation bool
}

// Percent returns the activation as a rounded percentage.
func (n NeuronView) Percent() int {
	return int(math.Round(n.Activation * 100))
}

// HasSelection reports whether an example is selected.
func (d Diagram) HasSelection() bool {
	return d.Selected != ExampleNone
}

// ExplanationCategory picks the explanation copy: house copy for house
// examples, animal copy otherwise.
func (d Diagram) ExplanationCategory() Category {
	if d.Category == CategoryHouse {
		return CategoryHouse
	}
	return CategoryAnimal
}

// StyleAt returns the derived style at coord, idle when out of range.
func (d Diagram) StyleAt(coord Coord) NeuronStyle {
	if coord.Layer < 0 || coord.Layer >= len(d.Layers) {
		return idleStyle()
	}
	neurons := d.Layers[coord.Layer].Neurons
	if coord.Neuron < 0 || coord.Neuron >= len(neurons) {
		return idleStyle()
	}
	return neurons[coord.Neuron].Style
}

// Contains reports whether coord addresses a drawn neuron.
func (d Diagram) Contains(coord Coord) bool {
	return coord.Layer >= 0 && coord.Layer < len(d.Layers) &&
		coord.Neuron >= 0 && coord.Neuron < len(d.Layers[coord.Layer].Neurons)
}

// BuildDiagram composes the catalog and a controller snapshot.
func BuildDiagram(catalog *Catalog, state State) Diagram {
	selected := state.Selected
	if _, ok := catalog.Entry(selected); !ok {
		selected = ExampleNone
	}
	layers := catalog.DisplayLayers(selected)
	diagram := Diagram{
		Selected: selected,
		Category: selected.Category(),
		ImageURL: catalog.ImageURL(selected),
		Layers:   make([]LayerView, 0, len(layers)),
	}
	for layerIndex, layer := range layers {
		var activations []float64
		if selected != ExampleNone {
			activations = layer.Activations()
		}
		view := LayerView{
			Index:       layerIndex,
			Name:        layer.Name(),
			Description: layer.Description(),
			Icon:        layer.Icon(),
			IsLast:      layerIndex == len(layers)-1,
			Neurons:     make([]NeuronView, 0, layer.NeuronCount()),
		}
		for neuronIndex := range layer.NeuronCount() {
			coord := Coord{Layer: layerIndex, Neuron: neuronIndex}
			neuron := NeuronView{
				Coord: coord,
				Label: layer.FeatureLabel(neuronIndex),
				Style: DeriveStyle(coord, state.Hover, activations),
			}
			if neuronIndex < len(activations) {
				neuron.Activation = activations[neuronIndex]
				neuron.HasActivation = true
			}
			view.Neurons = append(view.Neurons, neuron)
		}
		diagram.Layers = append(diagram.Layers, view)
	}
	return diagram
}
