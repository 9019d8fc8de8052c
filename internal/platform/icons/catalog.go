package icons

import "github.com/louisbranch/synapse.space/internal/network"

// Definition describes a layer icon entry.
type Definition struct {
	ID          network.Icon
	Name        string
	Description string
}

var catalog = []Definition{
	{
		ID:          network.IconGrid,
		Name:        "Grid",
		Description: "Raw input values laid out as a grid.",
	},
	{
		ID:          network.IconEye,
		Name:        "Eye",
		Description: "Low-level feature detection.",
	},
	{
		ID:          network.IconFingerprint,
		Name:        "Fingerprint",
		Description: "Combined, distinctive patterns.",
	},
	{
		ID:          network.IconBrain,
		Name:        "Brain",
		Description: "The network's final decision.",
	},
}

// Catalog returns every known layer icon in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id.
func Lookup(id network.Icon) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
