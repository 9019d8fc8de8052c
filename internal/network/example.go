package network

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownExample indicates an example identifier outside the closed set.
	ErrUnknownExample = errors.New("unknown example")
	// ErrUnknownCategory indicates a category identifier outside the closed set.
	ErrUnknownCategory = errors.New("unknown category")
)

// ExampleID identifies one preset example, or ExampleNone for no selection.
type ExampleID string

const (
	ExampleNone         ExampleID = "none"
	ExampleCat          ExampleID = "cat"
	ExampleDog          ExampleID = "dog"
	ExampleStarterHouse ExampleID = "starter-house"
	ExampleLuxuryHouse  ExampleID = "luxury-house"
)

// Examples lists every selectable example in display order.
func Examples() []ExampleID {
	return []ExampleID{ExampleCat, ExampleDog, ExampleStarterHouse, ExampleLuxuryHouse}
}

// ParseExampleID resolves a raw identifier. An empty value maps to ExampleNone.
func ParseExampleID(raw string) (ExampleID, error) {
	value := ExampleID(strings.ToLower(strings.TrimSpace(raw)))
	switch value {
	case "", ExampleNone:
		return ExampleNone, nil
	case ExampleCat, ExampleDog, ExampleStarterHouse, ExampleLuxuryHouse:
		return value, nil
	default:
		return ExampleNone, fmt.Errorf("%w: %q", ErrUnknownExample, raw)
	}
}

// Category returns the top-level button group the example belongs to.
func (id ExampleID) Category() Category {
	switch id {
	case ExampleCat, ExampleDog:
		return CategoryAnimal
	case ExampleStarterHouse, ExampleLuxuryHouse:
		return CategoryHouse
	default:
		return CategoryNone
	}
}

// Category groups sibling examples behind one top-level toggle button.
type Category string

const (
	CategoryNone   Category = "none"
	CategoryAnimal Category = "animal"
	CategoryHouse  Category = "house"
)

// Categories lists the toggleable categories in display order.
func Categories() []Category {
	return []Category{CategoryAnimal, CategoryHouse}
}

// ParseCategory resolves a raw category identifier. CategoryNone is not
// toggleable and is rejected.
func ParseCategory(raw string) (Category, error) {
	value := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch value {
	case CategoryAnimal, CategoryHouse:
		return value, nil
	default:
		return CategoryNone, fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
}

// DefaultExample is the example a category selects when toggled on.
func (c Category) DefaultExample() ExampleID {
	switch c {
	case CategoryAnimal:
		return ExampleCat
	case CategoryHouse:
		return ExampleStarterHouse
	default:
		return ExampleNone
	}
}

// Members lists the sibling examples inside the category.
func (c Category) Members() []ExampleID {
	switch c {
	case CategoryAnimal:
		return []ExampleID{ExampleCat, ExampleDog}
	case CategoryHouse:
		return []ExampleID{ExampleStarterHouse, ExampleLuxuryHouse}
	default:
		return nil
	}
}
