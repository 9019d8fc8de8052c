package network

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

var (
	// ErrNegativeNeuronCount indicates a layer declared fewer than zero neurons.
	ErrNegativeNeuronCount = errors.New("neuron count must be >= 0")
	// ErrLabelCountMismatch indicates feature labels are not index-aligned with neurons.
	ErrLabelCountMismatch = errors.New("feature label count does not match neuron count")
	// ErrActivationCountMismatch indicates activations are not index-aligned with neurons.
	ErrActivationCountMismatch = errors.New("activation count does not match neuron count")
	// ErrActivationOutOfRange indicates an activation outside [0,1].
	ErrActivationOutOfRange = errors.New("activation must be within [0,1]")
	// ErrLayerNameRequired indicates a layer without a display name.
	ErrLayerNameRequired = errors.New("layer name is required")
)

// Icon names the glyph drawn above a layer column.
type Icon string

const (
	IconGrid        Icon = "grid"
	IconEye         Icon = "eye"
	IconFingerprint Icon = "fingerprint"
	IconBrain       Icon = "brain"
)

// LayerSpec is the authoring form of a layer, validated by NewLayer.
type LayerSpec struct {
	Name          string
	NeuronCount   int
	FeatureLabels []string
	Description   string
	Icon          Icon
	Activations   []float64
}

// Layer is a validated, immutable group of neurons sharing a label and
// activation schema. Feature labels and activations are index-aligned with
// neuron position.
type Layer struct {
	name        string
	description string
	icon        Icon
	labels      []string
	activations []float64
}

// NewLayer validates spec and returns an immutable Layer.
func NewLayer(spec LayerSpec) (Layer, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return Layer{}, ErrLayerNameRequired
	}
	if spec.NeuronCount < 0 {
		return Layer{}, fmt.Errorf("layer %q: %w", name, ErrNegativeNeuronCount)
	}
	if len(spec.FeatureLabels) != spec.NeuronCount {
		return Layer{}, fmt.Errorf("layer %q: %w: got %d labels for %d neurons", name, ErrLabelCountMismatch, len(spec.FeatureLabels), spec.NeuronCount)
	}
	if len(spec.Activations) != spec.NeuronCount {
		return Layer{}, fmt.Errorf("layer %q: %w: got %d activations for %d neurons", name, ErrActivationCountMismatch, len(spec.Activations), spec.NeuronCount)
	}
	for idx, value := range spec.Activations {
		if math.IsNaN(value) || value < 0 || value > 1 {
			return Layer{}, fmt.Errorf("layer %q neuron %d: %w: %v", name, idx, ErrActivationOutOfRange, value)
		}
	}
	return Layer{
		name:        name,
		description: strings.TrimSpace(spec.Description),
		icon:        spec.Icon,
		labels:      slices.Clone(spec.FeatureLabels),
		activations: slices.Clone(spec.Activations),
	}, nil
}

// Name returns the layer's display name.
func (l Layer) Name() string { return l.name }

// Description returns the layer's one-line explanation.
func (l Layer) Description() string { return l.description }

// Icon returns the layer glyph.
func (l Layer) Icon() Icon { return l.icon }

// NeuronCount returns the number of neurons in the layer.
func (l Layer) NeuronCount() int { return len(l.labels) }

// FeatureLabel returns the label for neuron idx, or "" when out of range.
func (l Layer) FeatureLabel(idx int) string {
	if idx < 0 || idx >= len(l.labels) {
		return ""
	}
	return l.labels[idx]
}

// FeatureLabels returns a copy of the labels.
func (l Layer) FeatureLabels() []string { return slices.Clone(l.labels) }

// Activations returns a copy of the activation values.
func (l Layer) Activations() []float64 { return slices.Clone(l.activations) }
