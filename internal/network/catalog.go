package network

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDuplicateExample indicates two catalog entries share an identifier.
	ErrDuplicateExample = errors.New("duplicate example")
	// ErrEmptyExample indicates a catalog entry without layers.
	ErrEmptyExample = errors.New("example has no layers")
)

// EntrySpec is the authoring form of one catalog example.
type EntrySpec struct {
	ID       ExampleID
	ImageURL string
	Layers   []LayerSpec
}

// Entry is one validated catalog example.
type Entry struct {
	id       ExampleID
	imageURL string
	layers   []Layer
}

// ID returns the example identifier.
func (e Entry) ID() ExampleID { return e.id }

// ImageURL returns the opaque illustration URL.
func (e Entry) ImageURL() string { return e.imageURL }

// Layers returns the ordered layer list.
func (e Entry) Layers() []Layer { return slices.Clone(e.layers) }

// Catalog is the immutable, fail-fast validated example table.
type Catalog struct {
	entries  map[ExampleID]Entry
	fallback ExampleID
}

// NewCatalog validates every entry. fallback names the entry whose layers are
// displayed, without activations, while no example is selected.
func NewCatalog(fallback ExampleID, specs ...EntrySpec) (*Catalog, error) {
	entries := make(map[ExampleID]Entry, len(specs))
	for _, spec := range specs {
		id, err := ParseExampleID(string(spec.ID))
		if err != nil {
			return nil, err
		}
		if id == ExampleNone {
			return nil, fmt.Errorf("catalog entry: %w: %q is reserved", ErrUnknownExample, ExampleNone)
		}
		if _, exists := entries[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateExample, id)
		}
		if len(spec.Layers) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyExample, id)
		}
		layers := make([]Layer, 0, len(spec.Layers))
		for idx, layerSpec := range spec.Layers {
			layer, err := NewLayer(layerSpec)
			if err != nil {
				return nil, fmt.Errorf("example %s layer %d: %w", id, idx, err)
			}
			layers = append(layers, layer)
		}
		entries[id] = Entry{
			id:       id,
			imageURL: strings.TrimSpace(spec.ImageURL),
			layers:   layers,
		}
	}
	if _, ok := entries[fallback]; !ok {
		return nil, fmt.Errorf("fallback %w: %q", ErrUnknownExample, fallback)
	}
	return &Catalog{entries: entries, fallback: fallback}, nil
}

// MustCatalog is NewCatalog for statically authored tables; it panics on
// invalid input.
func MustCatalog(fallback ExampleID, specs ...EntrySpec) *Catalog {
	catalog, err := NewCatalog(fallback, specs...)
	if err != nil {
		panic(fmt.Sprintf("network catalog: %v", err))
	}
	return catalog
}

// Entry returns the catalog entry for id.
func (c *Catalog) Entry(id ExampleID) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	entry, ok := c.entries[id]
	return entry, ok
}

// DisplayLayers returns the layers drawn for a selection. ExampleNone shows
// the fallback entry's layers.
func (c *Catalog) DisplayLayers(id ExampleID) []Layer {
	if c == nil {
		return nil
	}
	if entry, ok := c.entries[id]; ok {
		return entry.Layers()
	}
	return c.entries[c.fallback].Layers()
}

// ImageURL returns the illustration for id, or "" when nothing is selected.
func (c *Catalog) ImageURL(id ExampleID) string {
	entry, ok := c.Entry(id)
	if !ok {
		return ""
	}
	return entry.imageURL
}

// Activations returns the selected example's activations for one layer. The
// bool is false when nothing is selected or the layer does not exist.
func (c *Catalog) Activations(id ExampleID, layerIndex int) ([]float64, bool) {
	entry, ok := c.Entry(id)
	if !ok || layerIndex < 0 || layerIndex >= len(entry.layers) {
		return nil, false
	}
	return entry.layers[layerIndex].Activations(), true
}
