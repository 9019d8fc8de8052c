package icons

import (
	"strings"
	"testing"

	"github.com/louisbranch/synapse.space/internal/network"
)

func TestEveryLayerIconHasLucideGlyph(t *testing.T) {
	t.Parallel()

	sprite := LucideSprite()
	for _, def := range Catalog() {
		name, ok := LucideName(def.ID)
		if !ok {
			t.Fatalf("icon %q has no lucide name", def.ID)
		}
		if !strings.Contains(sprite, `id="`+LucideSymbolID(name)+`"`) {
			t.Fatalf("sprite missing symbol for %q", name)
		}
	}
}

func TestLucideNameOrDefault(t *testing.T) {
	t.Parallel()

	if got := LucideNameOrDefault(network.IconBrain); got != "brain" {
		t.Fatalf("LucideNameOrDefault(brain) = %q", got)
	}
	if got := LucideNameOrDefault(network.Icon("unknown")); got != lucideFallbackName {
		t.Fatalf("LucideNameOrDefault(unknown) = %q", got)
	}
	if !strings.Contains(LucideSprite(), `id="lucide-circle"`) {
		t.Fatal("sprite missing fallback symbol")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	def, ok := Lookup(network.IconEye)
	if !ok || def.Name != "Eye" {
		t.Fatalf("Lookup(eye) = %+v, %t", def, ok)
	}
	if _, ok := Lookup(network.Icon("unknown")); ok {
		t.Fatal("Lookup(unknown) = true")
	}
	catalog := Catalog()
	catalog[0].Name = "mutated"
	if again := Catalog(); again[0].Name == "mutated" {
		t.Fatal("Catalog() exposed internal slice")
	}
}
