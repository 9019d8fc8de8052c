// Package network models the illustrative feed-forward network diagram.
//
// It owns three pieces:
//
//   - the example catalog: fixed, hand-authored layer tables for each preset
//     example (cat/dog classification, starter/luxury house regression)
//   - the visual state deriver: the precedence rule that maps hover and
//     activation state to a neuron's color and emphasis
//   - the hover/selection controller: the two independent UI state fields a
//     viewer mutates by pointing at neurons and clicking example buttons
//
// Nothing here learns or computes activations; every activation value is a
// constant looked up from the catalog. Rendering lives in
// internal/services/diagram, which consumes the Diagram values built here.
package network
