package routepath

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"
	Live         = "/live"
)

const (
	Categories  = "/categories"
	Examples    = "/examples"
	Neurons     = "/neurons"
	NeuronLeave = "/neurons/leave"
)

// ServeMux patterns.
const (
	CategoryPattern    = Categories + "/{category}"
	ExamplePattern     = Examples + "/{example}"
	NeuronEnterPattern = Neurons + "/{layer}/{neuron}/enter"
)

func Category(category string) string {
	return Categories + "/" + escapeSegment(category)
}

func Example(example string) string {
	return Examples + "/" + escapeSegment(example)
}

func NeuronEnter(layer, neuron int) string {
	return Neurons + "/" + strconv.Itoa(layer) + "/" + strconv.Itoa(neuron) + "/enter"
}

// WithLang returns the root page in the given language.
func WithLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Root
	}
	return Root + "?" + url.Values{"lang": {lang}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
