package network

// State is an immutable snapshot of the controller's two fields.
type State struct {
	Hover    HoverState
	Selected ExampleID
}

// Category returns the category of the selected example.
func (s State) Category() Category {
	return s.Selected.Category()
}

// Controller owns hover and example selection for one viewer. It is not safe
// for concurrent use; callers serialize access.
type Controller struct {
	hover    HoverState
	selected ExampleID
}

// NewController returns a controller with no hover and no selection.
func NewController() *Controller {
	return &Controller{selected: ExampleNone}
}

// NeuronEnter points the hover at (layer, neuron).
func (c *Controller) NeuronEnter(layer, neuron int) {
	c.hover = HoverAt(layer, neuron)
}

// NeuronLeave clears the hover regardless of the previous coordinate.
func (c *Controller) NeuronLeave() {
	c.hover = NoHover
}

// SelectExample switches directly to id. Sibling buttons use this path, so
// selecting the current example again keeps it selected.
func (c *Controller) SelectExample(id ExampleID) {
	if id == "" {
		id = ExampleNone
	}
	c.selected = id
}

// ToggleCategory acts on a top-level category button. When the current
// selection already belongs to category it clears to ExampleNone; otherwise
// it selects the category's default example.
func (c *Controller) ToggleCategory(category Category) {
	if category == CategoryNone {
		return
	}
	if c.selected.Category() == category {
		c.selected = ExampleNone
		return
	}
	c.selected = category.DefaultExample()
}

// State returns the current snapshot.
func (c *Controller) State() State {
	if c == nil {
		return State{Selected: ExampleNone}
	}
	selected := c.selected
	if selected == "" {
		selected = ExampleNone
	}
	return State{Hover: c.hover, Selected: selected}
}
